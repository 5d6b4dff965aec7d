// Package world определяет контракты хост-движка, с которыми работает
// пайплайн радиусного разрушения: просмотр и мутация мира, агент
// (игрок) и стек предмета. Пакет также содержит эталонную in-memory
// реализацию мира для тестов и примеров.
package world

import (
	"github.com/annel0/magna-tools/vec"
	"github.com/annel0/magna-tools/world/block"
)

// BlockState описывает наблюдаемое состояние блока в точке мира.
// Свойства берутся из регистра поведений по идентификатору блока.
type BlockState struct {
	ID block.BlockID
}

// IsAir проверяет, пуст ли блок
func (s BlockState) IsAir() bool {
	return s.ID == block.AirBlockID
}

// Behavior возвращает зарегистрированное поведение блока
func (s BlockState) Behavior() (block.Behavior, bool) {
	return block.Get(s.ID)
}

// Hardness возвращает прочность блока.
// Незарегистрированный блок считается неразрушаемым.
func (s BlockState) Hardness() float64 {
	behavior, ok := block.Get(s.ID)
	if !ok {
		return block.UnbreakableHardness
	}
	return behavior.Hardness()
}

// RequiresTool сообщает, обязателен ли инструмент для разрушения.
// Незарегистрированный блок требует инструмент.
func (s BlockState) RequiresTool() bool {
	behavior, ok := block.Get(s.ID)
	if !ok {
		return true
	}
	return behavior.RequiresTool()
}

// Material возвращает материал блока
func (s BlockState) Material() block.Material {
	behavior, ok := block.Get(s.ID)
	if !ok {
		return block.MaterialNone
	}
	return behavior.Material()
}

// Stack представляет стек предмета: то, что лежит в руке агента,
// и то, что выпадает из разрушенного блока. Представление стека
// принадлежит хосту — ядру нужны только эти запросы.
type Stack interface {
	// IsEmpty проверяет, пуст ли стек
	IsEmpty() bool
	// IsSuitableFor сообщает, является ли стек подходящим инструментом
	// для данного состояния блока.
	IsSuitableFor(state BlockState) bool
	// MiningSpeedMultiplier возвращает множитель скорости добычи
	// против данного состояния блока (1.0 — без бонуса).
	MiningSpeedMultiplier(state BlockState) float64
}

// BlockView предоставляет доступ к миру только на чтение
type BlockView interface {
	// GetBlockState возвращает состояние блока в указанной позиции
	GetBlockState(pos vec.Vec3) BlockState
}

// World расширяет BlockView деструктивными примитивами хоста
type World interface {
	BlockView

	// BreakBlock разрушает блок в указанной позиции и возвращает
	// выпавшие стеки. Разрушение воздуха возвращает nil.
	BreakBlock(pos vec.Vec3) []Stack

	// SpawnDrop помещает дроп в мир в указанной позиции
	SpawnDrop(pos vec.Vec3, drop Stack)

	// PlayBreakEffects проигрывает звук и частицы разрушения блока
	PlayBreakEffects(pos vec.Vec3, state BlockState)
}

// Agent представляет действующее лицо (игрока), выполняющее разрушение
type Agent interface {
	// IsSneaking проверяет, крадется ли агент
	IsSneaking() bool
	// MainHandStack возвращает стек в основной руке
	MainHandStack() Stack
	// Facing возвращает направление взгляда агента
	Facing() vec.Face
}
