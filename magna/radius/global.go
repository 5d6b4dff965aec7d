package radius

import "github.com/annel0/magna-tools/world"

// Глобальная цепочка по умолчанию: через нее проходят все вызовы
// AttemptBreak. Расширения регистрируются при инициализации процесса.
var defaultChain = NewChain()

// Register добавляет слушателя в глобальную цепочку
func Register(l Listener) Subscription {
	return defaultChain.Register(l)
}

// Resolve разрешает радиус через глобальную цепочку
func Resolve(stack world.Stack, base int) int {
	return defaultChain.Resolve(stack, base)
}

// Reset снимает всех слушателей глобальной цепочки.
// Используется при останове и в тестах.
func Reset() {
	defaultChain = NewChain()
}
