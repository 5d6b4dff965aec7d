package implementations

import "github.com/annel0/magna-tools/world/block"

// StoneBehavior реализует поведение блока камня
type StoneBehavior struct{}

// ID возвращает идентификатор блока
func (b *StoneBehavior) ID() block.BlockID {
	return block.StoneBlockID
}

// Name возвращает имя блока
func (b *StoneBehavior) Name() string {
	return "Stone"
}

// Hardness возвращает прочность блока
func (b *StoneBehavior) Hardness() float64 {
	return 1.5
}

// RequiresTool камень требует кирку, иначе дропа нет
func (b *StoneBehavior) RequiresTool() bool {
	return true
}

// Material возвращает материал блока
func (b *StoneBehavior) Material() block.Material {
	return block.MaterialRock
}

// Drops камень дропает булыжник
func (b *StoneBehavior) Drops() []block.Drop {
	return []block.Drop{{Item: "cobblestone", Count: 1}}
}
