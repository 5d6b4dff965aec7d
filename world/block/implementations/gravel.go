package implementations

import "github.com/annel0/magna-tools/world/block"

// GravelBehavior реализует поведение блока гравия
type GravelBehavior struct{}

// ID возвращает идентификатор блока
func (b *GravelBehavior) ID() block.BlockID {
	return block.GravelBlockID
}

// Name возвращает имя блока
func (b *GravelBehavior) Name() string {
	return "Gravel"
}

// Hardness возвращает прочность блока
func (b *GravelBehavior) Hardness() float64 {
	return 0.6
}

// RequiresTool гравий копается и рукой
func (b *GravelBehavior) RequiresTool() bool {
	return false
}

// Material возвращает материал блока
func (b *GravelBehavior) Material() block.Material {
	return block.MaterialEarth
}

// Drops возвращает дропы при разрушении блока
func (b *GravelBehavior) Drops() []block.Drop {
	return []block.Drop{{Item: "gravel", Count: 1}}
}
