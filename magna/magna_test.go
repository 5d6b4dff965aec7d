package magna

import (
	"github.com/annel0/magna-tools/vec"
	"github.com/annel0/magna-tools/world"

	// Импортируем реализации блоков для регистрации в init()
	_ "github.com/annel0/magna-tools/world/block/implementations"
)

// stubStack — стек с фиксированными ответами на запросы способностей
type stubStack struct {
	suitable bool
	speed    float64
}

func (s stubStack) IsEmpty() bool { return false }

func (s stubStack) IsSuitableFor(state world.BlockState) bool {
	// Инструмент не может быть пригоден против воздуха
	return s.suitable && !state.IsAir()
}

func (s stubStack) MiningSpeedMultiplier(state world.BlockState) float64 { return s.speed }

// stubAgent — агент с фиксированным состоянием
type stubAgent struct {
	sneaking bool
	stack    world.Stack
	facing   vec.Face
}

func (a stubAgent) IsSneaking() bool { return a.sneaking }

func (a stubAgent) MainHandStack() world.Stack { return a.stack }

func (a stubAgent) Facing() vec.Face { return a.facing }

// recordingFinder запоминает факт вызова и делегирует стандартной стратегии
type recordingFinder struct {
	calls int
}

func (f *recordingFinder) FindPositions(center vec.Vec3, facing vec.Face, radius, depth int) []vec.Vec3 {
	f.calls++
	return DefaultFinder.FindPositions(center, facing, radius, depth)
}

// finderTool — инструмент с подменяемой стратегией поиска
type finderTool struct {
	radius  int
	effects bool
	finder  BlockFinder
}

func (t finderTool) Radius(stack world.Stack) int { return t.radius }

func (t finderTool) PlayBreakEffects() bool { return t.effects }

func (t finderTool) Finder() BlockFinder { return t.finder }

// plainTool — минимальный инструмент без опциональных способностей
type plainTool struct {
	radius  int
	effects bool
}

func (t plainTool) Radius(stack world.Stack) int { return t.radius }

func (t plainTool) PlayBreakEffects() bool { return t.effects }
