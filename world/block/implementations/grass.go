package implementations

import "github.com/annel0/magna-tools/world/block"

// GrassBehavior реализует поведение блока травы
type GrassBehavior struct{}

// ID возвращает идентификатор блока
func (b *GrassBehavior) ID() block.BlockID {
	return block.GrassBlockID
}

// Name возвращает имя блока
func (b *GrassBehavior) Name() string {
	return "Grass"
}

// Hardness возвращает прочность блока
func (b *GrassBehavior) Hardness() float64 {
	return 0.6
}

// RequiresTool трава копается и рукой
func (b *GrassBehavior) RequiresTool() bool {
	return false
}

// Material возвращает материал блока
func (b *GrassBehavior) Material() block.Material {
	return block.MaterialEarth
}

// Drops трава дропает землю
func (b *GrassBehavior) Drops() []block.Drop {
	return []block.Drop{{Item: "dirt", Count: 1}}
}
