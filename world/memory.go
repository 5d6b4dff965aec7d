package world

import (
	"github.com/annel0/magna-tools/vec"
	"github.com/annel0/magna-tools/world/block"
)

// MemoryWorld — эталонная in-memory реализация World.
// Используется в тестах и примерах; реальные хост-движки
// реализуют World поверх собственного хранилища чанков.
//
// Все операции выполняются на потоке взаимодействия,
// синхронизация не требуется.
type MemoryWorld struct {
	blocks  map[vec.Vec3]block.BlockID
	drops   []Stack
	effects []vec.Vec3
}

// NewMemoryWorld создает пустой мир (все позиции — воздух)
func NewMemoryWorld() *MemoryWorld {
	return &MemoryWorld{
		blocks: make(map[vec.Vec3]block.BlockID),
	}
}

// SetBlock устанавливает блок в указанной позиции
func (w *MemoryWorld) SetBlock(pos vec.Vec3, id block.BlockID) {
	if id == block.AirBlockID {
		delete(w.blocks, pos)
		return
	}
	w.blocks[pos] = id
}

// GetBlockState возвращает состояние блока в указанной позиции
func (w *MemoryWorld) GetBlockState(pos vec.Vec3) BlockState {
	id, ok := w.blocks[pos]
	if !ok {
		return BlockState{ID: block.AirBlockID}
	}
	return BlockState{ID: id}
}

// BreakBlock разрушает блок и возвращает выпавшие стеки
func (w *MemoryWorld) BreakBlock(pos vec.Vec3) []Stack {
	state := w.GetBlockState(pos)
	if state.IsAir() {
		return nil
	}

	w.SetBlock(pos, block.AirBlockID)

	behavior, ok := state.Behavior()
	if !ok {
		return nil
	}

	var drops []Stack
	for _, d := range behavior.Drops() {
		drops = append(drops, ItemStack{Item: d.Item, Count: d.Count})
	}
	return drops
}

// SpawnDrop помещает дроп в мир
func (w *MemoryWorld) SpawnDrop(pos vec.Vec3, drop Stack) {
	w.drops = append(w.drops, drop)
}

// PlayBreakEffects запоминает позицию проигранного эффекта
func (w *MemoryWorld) PlayBreakEffects(pos vec.Vec3, state BlockState) {
	w.effects = append(w.effects, pos)
}

// Drops возвращает все дропы, попавшие в мир
func (w *MemoryWorld) Drops() []Stack {
	return w.drops
}

// Effects возвращает позиции всех проигранных эффектов разрушения
func (w *MemoryWorld) Effects() []vec.Vec3 {
	return w.effects
}

// BlockCount возвращает число непустых блоков в мире
func (w *MemoryWorld) BlockCount() int {
	return len(w.blocks)
}
