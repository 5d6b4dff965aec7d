package magna

import (
	"github.com/annel0/magna-tools/vec"
	"github.com/annel0/magna-tools/world"
	"github.com/annel0/magna-tools/world/block"
)

// EligibilityFunc проверяет, пригодна ли позиция для разрушения.
// Чистая функция состояния мира: видимых эффектов не имеет.
type EligibilityFunc func(view world.BlockView, pos vec.Vec3) bool

// IsBlockValidForBreaking проверяет, является ли блок в указанной позиции
// допустимой целью разрушения для данного стека.
//
// Порядок правил существенен:
//  1. неразрушаемый блок (прочность -1) отсекает все остальное;
//  2. явная пригодность инструмента разрешает разрушение,
//     перекрывая требование инструмента;
//  3. блок, требующий инструмент, без подходящего инструмента не ломается;
//  4. иначе инструмент должен быть хотя бы номинально эффективен:
//     множитель скорости строго больше 1.0.
func IsBlockValidForBreaking(view world.BlockView, pos vec.Vec3, stack world.Stack) bool {
	state := view.GetBlockState(pos)

	if state.Hardness() == block.UnbreakableHardness {
		return false
	}

	if stack.IsSuitableFor(state) {
		return true
	}

	if state.RequiresTool() {
		return false
	}

	return stack.MiningSpeedMultiplier(state) > 1.0
}
