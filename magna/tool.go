// Package magna реализует пайплайн радиусного разрушения блоков:
// инструмент ломает не один блок, а конфигурируемый объем вокруг цели.
//
// Точка входа — AttemptBreak: хост вызывает ее из своего обработчика
// разрушения блока, передавая мир, цель, агента и инструмент.
package magna

import (
	"github.com/annel0/magna-tools/vec"
	"github.com/annel0/magna-tools/world"
)

// Tool — контракт инструмента с радиусным разрушением.
// Обязательны только радиус и флаг эффектов; остальные способности
// (глубина, переопределение центра, процессора, поиска, контур)
// объявляются опциональными интерфейсами ниже. Инструмент реализует
// лишь то, что хочет изменить — для остального действуют функции
// по умолчанию.
type Tool interface {
	// Radius возвращает базовый радиус разрушения для данного стека.
	// Полная ширина области — 1 + 2*Radius: радиус 1 дает 3x3,
	// радиус 2 — 5x5 и так далее. Радиус 0 — одиночный блок.
	Radius(stack world.Stack) int

	// PlayBreakEffects сообщает, проигрывать ли звук и частицы
	// при разрушении соседних блоков.
	PlayBreakEffects() bool
}

// DepthProvider — опциональная способность: глубина разрушения.
// Глубина — число дополнительных слоев вдоль направления взгляда
// за первым. Без этой способности глубина равна 0 (один слой).
type DepthProvider interface {
	Depth(stack world.Stack) int
}

// CenterProvider — опциональная способность: переопределение центра
// области. Полезно инструментам с большим радиусом, чтобы не ломать
// блоки под ногами агента.
type CenterProvider interface {
	CenterPosition(w world.World, agent world.Agent, hit vec.Vec3, stack world.Stack) vec.Vec3
}

// ProcessorProvider — опциональная способность: процессор дропов
// по умолчанию для данного инструмента (автопереплавка и подобное).
type ProcessorProvider interface {
	Processor(w world.World, agent world.Agent, pos vec.Vec3, stack world.Stack) Processor
}

// FinderProvider — опциональная способность: стратегия поиска
// кандидатов, отличная от стандартного кубоида.
type FinderProvider interface {
	Finder() BlockFinder
}

// OutlineProvider — опциональная способность: отключение отрисовки
// контура области на клиенте. Может помочь производительности
// при очень больших радиусах.
type OutlineProvider interface {
	RenderOutline(w world.World, hit vec.Vec3, agent world.Agent, stack world.Stack) bool
}

// DepthOf возвращает глубину инструмента или 0 по умолчанию
func DepthOf(t Tool, stack world.Stack) int {
	if p, ok := t.(DepthProvider); ok {
		return p.Depth(stack)
	}
	return 0
}

// CenterOf возвращает центр области: переопределенный инструментом
// или саму целевую позицию.
func CenterOf(t Tool, w world.World, agent world.Agent, hit vec.Vec3, stack world.Stack) vec.Vec3 {
	if p, ok := t.(CenterProvider); ok {
		return p.CenterPosition(w, agent, hit, stack)
	}
	return hit
}

// ProcessorOf возвращает процессор дропов инструмента или identity
func ProcessorOf(t Tool, w world.World, agent world.Agent, pos vec.Vec3, stack world.Stack) Processor {
	if p, ok := t.(ProcessorProvider); ok {
		return p.Processor(w, agent, pos, stack)
	}
	return IdentityProcessor
}

// FinderOf возвращает стратегию поиска инструмента или стандартный кубоид
func FinderOf(t Tool) BlockFinder {
	if p, ok := t.(FinderProvider); ok {
		return p.Finder()
	}
	return DefaultFinder
}

// RenderOutlineOf возвращает решение инструмента об отрисовке контура
// (по умолчанию true).
func RenderOutlineOf(t Tool, w world.World, hit vec.Vec3, agent world.Agent, stack world.Stack) bool {
	if p, ok := t.(OutlineProvider); ok {
		return p.RenderOutline(w, hit, agent, stack)
	}
	return true
}
