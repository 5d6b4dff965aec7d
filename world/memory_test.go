package world

import (
	"testing"

	"github.com/annel0/magna-tools/vec"
	"github.com/annel0/magna-tools/world/block"

	// Импортируем реализации блоков для регистрации в init()
	_ "github.com/annel0/magna-tools/world/block/implementations"
)

func TestMemoryWorldSetGet(t *testing.T) {
	w := NewMemoryWorld()
	pos := vec.Vec3{X: 1, Y: 2, Z: 3}

	// Пустой мир — везде воздух
	if !w.GetBlockState(pos).IsAir() {
		t.Error("Новый мир должен состоять из воздуха")
	}

	w.SetBlock(pos, block.StoneBlockID)
	if w.GetBlockState(pos).ID != block.StoneBlockID {
		t.Errorf("Ожидался камень, получен %d", w.GetBlockState(pos).ID)
	}

	// Установка воздуха удаляет блок
	w.SetBlock(pos, block.AirBlockID)
	if !w.GetBlockState(pos).IsAir() {
		t.Error("Установка воздуха должна очищать позицию")
	}
	if w.BlockCount() != 0 {
		t.Errorf("Ожидался пустой мир, осталось %d блоков", w.BlockCount())
	}
}

func TestMemoryWorldBreakBlock(t *testing.T) {
	w := NewMemoryWorld()
	pos := vec.Vec3{X: 0, Y: 0, Z: 0}
	w.SetBlock(pos, block.StoneBlockID)

	drops := w.BreakBlock(pos)

	if !w.GetBlockState(pos).IsAir() {
		t.Error("После разрушения позиция должна быть воздухом")
	}

	if len(drops) != 1 {
		t.Fatalf("Ожидался один дроп, получено %d", len(drops))
	}

	item, ok := drops[0].(ItemStack)
	if !ok {
		t.Fatalf("Ожидался ItemStack, получен %T", drops[0])
	}
	if item.Item != "cobblestone" {
		t.Errorf("Камень должен дропать булыжник, получен %s", item.Item)
	}
}

func TestMemoryWorldBreakAir(t *testing.T) {
	w := NewMemoryWorld()

	if drops := w.BreakBlock(vec.Vec3{X: 9, Y: 9, Z: 9}); drops != nil {
		t.Errorf("Разрушение воздуха не должно давать дропов, получено %d", len(drops))
	}
}

func TestBlockStateUnregistered(t *testing.T) {
	// Незарегистрированный блок считается неразрушаемым
	state := BlockState{ID: block.BlockID(60000)}

	if state.Hardness() != block.UnbreakableHardness {
		t.Errorf("Незарегистрированный блок должен быть неразрушаем, прочность %f", state.Hardness())
	}
	if !state.RequiresTool() {
		t.Error("Незарегистрированный блок должен требовать инструмент")
	}
}

func TestToolStackSuitability(t *testing.T) {
	pickaxe := ToolStack{Kind: KindPickaxe, Speed: 4}
	shovel := ToolStack{Kind: KindShovel, Speed: 4}

	stone := BlockState{ID: block.StoneBlockID}
	dirt := BlockState{ID: block.DirtBlockID}
	air := BlockState{ID: block.AirBlockID}

	if !pickaxe.IsSuitableFor(stone) {
		t.Error("Кирка должна подходить для камня")
	}
	if pickaxe.IsSuitableFor(dirt) {
		t.Error("Кирка не должна подходить для земли")
	}
	if !shovel.IsSuitableFor(dirt) {
		t.Error("Лопата должна подходить для земли")
	}
	if shovel.IsSuitableFor(air) {
		t.Error("Никакой инструмент не подходит для воздуха")
	}

	if pickaxe.MiningSpeedMultiplier(stone) != 4 {
		t.Errorf("Ожидался множитель 4 против камня, получен %f", pickaxe.MiningSpeedMultiplier(stone))
	}
	if pickaxe.MiningSpeedMultiplier(dirt) != 1.0 {
		t.Errorf("Ожидался множитель 1.0 против земли, получен %f", pickaxe.MiningSpeedMultiplier(dirt))
	}
}

func TestGenerateTerrain(t *testing.T) {
	w := NewMemoryWorld()
	GenerateTerrain(w, 8, 8, 6, 42)

	if w.BlockCount() == 0 {
		t.Fatal("Генерация не создала ни одного блока")
	}

	for x := 0; x < 8; x++ {
		for z := 0; z < 8; z++ {
			// Дно колонки — бедрок
			bottom := w.GetBlockState(vec.Vec3{X: x, Y: 0, Z: z})
			if bottom.ID != block.BedrockBlockID {
				t.Fatalf("Колонка (%d,%d): на дне ожидался бедрок, получен %d", x, z, bottom.ID)
			}

			// Вершина колонки — трава
			top := -1
			for y := 0; y < 32; y++ {
				if !w.GetBlockState(vec.Vec3{X: x, Y: y, Z: z}).IsAir() {
					top = y
				}
			}
			if top < 0 {
				t.Fatalf("Колонка (%d,%d) пуста", x, z)
			}
			if w.GetBlockState(vec.Vec3{X: x, Y: top, Z: z}).ID != block.GrassBlockID {
				t.Errorf("Колонка (%d,%d): на вершине ожидалась трава", x, z)
			}
		}
	}
}

func TestGenerateTerrainDeterministic(t *testing.T) {
	a := NewMemoryWorld()
	b := NewMemoryWorld()
	GenerateTerrain(a, 6, 6, 5, 7)
	GenerateTerrain(b, 6, 6, 5, 7)

	if a.BlockCount() != b.BlockCount() {
		t.Errorf("Одинаковый сид должен давать одинаковый рельеф: %d и %d блоков",
			a.BlockCount(), b.BlockCount())
	}
}
