package implementations

import "github.com/annel0/magna-tools/world/block"

// DirtBehavior реализует поведение блока земли
type DirtBehavior struct{}

// ID возвращает идентификатор блока
func (b *DirtBehavior) ID() block.BlockID {
	return block.DirtBlockID
}

// Name возвращает имя блока
func (b *DirtBehavior) Name() string {
	return "Dirt"
}

// Hardness возвращает прочность блока
func (b *DirtBehavior) Hardness() float64 {
	return 0.5
}

// RequiresTool земля копается и рукой
func (b *DirtBehavior) RequiresTool() bool {
	return false
}

// Material возвращает материал блока
func (b *DirtBehavior) Material() block.Material {
	return block.MaterialEarth
}

// Drops возвращает дропы при разрушении блока
func (b *DirtBehavior) Drops() []block.Drop {
	return []block.Drop{{Item: "dirt", Count: 1}}
}
