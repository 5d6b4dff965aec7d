package implementations

import "github.com/annel0/magna-tools/world/block"

// IronOreBehavior реализует поведение блока железной руды
type IronOreBehavior struct{}

// ID возвращает идентификатор блока
func (b *IronOreBehavior) ID() block.BlockID {
	return block.IronOreBlockID
}

// Name возвращает имя блока
func (b *IronOreBehavior) Name() string {
	return "Iron Ore"
}

// Hardness возвращает прочность блока
func (b *IronOreBehavior) Hardness() float64 {
	return 3.0
}

// RequiresTool руда требует кирку
func (b *IronOreBehavior) RequiresTool() bool {
	return true
}

// Material возвращает материал блока
func (b *IronOreBehavior) Material() block.Material {
	return block.MaterialRock
}

// Drops руда дропает сырое железо
func (b *IronOreBehavior) Drops() []block.Drop {
	return []block.Drop{{Item: "raw_iron", Count: 1}}
}
