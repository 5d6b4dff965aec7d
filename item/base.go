// Package item содержит готовые основы инструментов радиусного
// разрушения. Свой инструмент удобно собирать встраиванием BaseTool
// и переопределением нужных способностей.
package item

import (
	"github.com/annel0/magna-tools/magna"
	"github.com/annel0/magna-tools/world"
)

// BaseTool — основа инструмента с фиксированными радиусом и глубиной
type BaseTool struct {
	BreakRadius int
	BreakDepth  int
	Effects     bool
}

// Radius возвращает фиксированный радиус разрушения
func (t BaseTool) Radius(stack world.Stack) int {
	return t.BreakRadius
}

// Depth возвращает фиксированную глубину разрушения
func (t BaseTool) Depth(stack world.Stack) int {
	return t.BreakDepth
}

// PlayBreakEffects сообщает, проигрывать ли эффекты
func (t BaseTool) PlayBreakEffects() bool {
	return t.Effects
}

var (
	_ magna.Tool          = BaseTool{}
	_ magna.DepthProvider = BaseTool{}
)
