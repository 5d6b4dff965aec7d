package event

import (
	"github.com/annel0/magna-tools/vec"
	"github.com/annel0/magna-tools/world/block"
)

// Типы событий разрушения
const (
	TypeBlockBroken = "BlockBroken"
	TypeBreakSweep  = "BreakSweep"
)

// BlockBrokenPayload описывает разрушение одного блока внутри прохода
type BlockBrokenPayload struct {
	Pos   vec.Vec3      // Позиция разрушенного блока
	Block block.BlockID // Тип блока до разрушения
	Drops int           // Число дропов после обработки
}

// BreakSweepPayload описывает завершенный проход разрушения
type BreakSweepPayload struct {
	Center vec.Vec3 // Центр прохода
	Radius int      // Эффективный радиус
	Depth  int      // Эффективная глубина
	Broken int      // Число разрушенных блоков
}
