package magna

import "github.com/annel0/magna-tools/vec"

// BlockFinder — стратегия перечисления кандидатов на разрушение.
// Инструмент выбирает стратегию через FinderProvider; по умолчанию
// используется DefaultFinder.
type BlockFinder interface {
	// FindPositions возвращает все позиции объема разрушения вокруг
	// центра для данного направления взгляда. Последовательность
	// конечна, детерминирована и строится заново на каждый вызов:
	// состояния между вызовами стратегия не хранит.
	FindPositions(center vec.Vec3, facing vec.Face, radius, depth int) []vec.Vec3
}

// DefaultFinder перечисляет кубоид (1+2r)^2 x (d+1): квадрат со стороной
// 1+2r перпендикулярно взгляду и d+1 слоев вглубь от целевой грани
// в направлении взгляда.
//
// Порядок обхода фиксирован: сначала слои по глубине от целевой грани
// вглубь, внутри слоя — обе поперечные оси по возрастанию (в порядке
// X < Y < Z). От порядка зависит согласованность визуальных эффектов
// и порядка дропов.
var DefaultFinder BlockFinder = cuboidFinder{}

type cuboidFinder struct{}

func (cuboidFinder) FindPositions(center vec.Vec3, facing vec.Face, radius, depth int) []vec.Vec3 {
	if radius < 0 {
		radius = 0
	}
	if depth < 0 {
		depth = 0
	}

	side := 1 + 2*radius
	positions := make([]vec.Vec3, 0, side*side*(depth+1))

	inward := facing.Normal()
	crossA, crossB := facing.Axis().Cross()
	unitA := crossA.Unit()
	unitB := crossB.Unit()

	for layer := 0; layer <= depth; layer++ {
		layerCenter := center.Add(inward.Mul(layer))
		for da := -radius; da <= radius; da++ {
			for db := -radius; db <= radius; db++ {
				positions = append(positions, layerCenter.Add(unitA.Mul(da)).Add(unitB.Mul(db)))
			}
		}
	}

	return positions
}
