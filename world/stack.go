package world

import "github.com/annel0/magna-tools/world/block"

// ItemStack — простейшая реализация стека-дропа.
// Не является инструментом: пригодность всегда false, множитель 1.0.
type ItemStack struct {
	Item  string
	Count int
}

// IsEmpty проверяет, пуст ли стек
func (s ItemStack) IsEmpty() bool {
	return s.Item == "" || s.Count <= 0
}

// IsSuitableFor предмет-дроп не является инструментом
func (s ItemStack) IsSuitableFor(state BlockState) bool {
	return false
}

// MiningSpeedMultiplier предмет-дроп не дает бонуса к скорости
func (s ItemStack) MiningSpeedMultiplier(state BlockState) float64 {
	return 1.0
}

// ToolKind определяет вид инструмента
type ToolKind uint8

const (
	KindNone    ToolKind = iota
	KindPickaxe          // Кирка — для камня и руд
	KindShovel           // Лопата — для земли, песка, гравия
	KindAxe              // Топор — для древесины
)

// suitableMaterial возвращает материал, для которого предназначен инструмент
func (k ToolKind) suitableMaterial() block.Material {
	switch k {
	case KindPickaxe:
		return block.MaterialRock
	case KindShovel:
		return block.MaterialEarth
	case KindAxe:
		return block.MaterialWood
	default:
		return block.MaterialNone
	}
}

// ToolStack — простейшая реализация стека-инструмента.
// Хост-движки со своим представлением предметов реализуют Stack сами.
type ToolStack struct {
	Kind  ToolKind
	Speed float64 // Множитель скорости против подходящего материала
}

// IsEmpty инструмент в руке не бывает пустым
func (s ToolStack) IsEmpty() bool {
	return s.Kind == KindNone
}

// IsSuitableFor проверяет соответствие вида инструмента материалу блока
func (s ToolStack) IsSuitableFor(state BlockState) bool {
	material := state.Material()
	return material != block.MaterialNone && material == s.Kind.suitableMaterial()
}

// MiningSpeedMultiplier возвращает бонус скорости против подходящего материала
func (s ToolStack) MiningSpeedMultiplier(state BlockState) float64 {
	if s.IsSuitableFor(state) && s.Speed > 0 {
		return s.Speed
	}
	return 1.0
}
