package magna

import "github.com/annel0/magna-tools/world"

// Processor преобразует дроп перед попаданием в мир. Вызывается один
// раз на каждый дроп разрушенного блока. Чистое преобразование:
// возвращенный пустой стек (или nil) подавляет дроп, подмененный
// стек замещает исходный (автопереплавка и подобное).
type Processor func(tool world.Stack, drop world.Stack) world.Stack

// IdentityProcessor возвращает дроп без изменений
func IdentityProcessor(tool world.Stack, drop world.Stack) world.Stack {
	return drop
}

// SmeltingProcessor возвращает процессор автопереплавки: дропы,
// для которых в таблице рецептов есть результат, подменяются на него.
// Работает только с world.ItemStack; прочие стеки проходят без изменений.
func SmeltingProcessor(recipes map[string]string) Processor {
	return func(tool world.Stack, drop world.Stack) world.Stack {
		item, ok := drop.(world.ItemStack)
		if !ok {
			return drop
		}
		smelted, ok := recipes[item.Item]
		if !ok {
			return drop
		}
		return world.ItemStack{Item: smelted, Count: item.Count}
	}
}
