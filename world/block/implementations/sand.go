package implementations

import "github.com/annel0/magna-tools/world/block"

// SandBehavior реализует поведение блока песка
type SandBehavior struct{}

// ID возвращает идентификатор блока
func (b *SandBehavior) ID() block.BlockID {
	return block.SandBlockID
}

// Name возвращает имя блока
func (b *SandBehavior) Name() string {
	return "Sand"
}

// Hardness возвращает прочность блока
func (b *SandBehavior) Hardness() float64 {
	return 0.5
}

// RequiresTool песок копается и рукой
func (b *SandBehavior) RequiresTool() bool {
	return false
}

// Material возвращает материал блока
func (b *SandBehavior) Material() block.Material {
	return block.MaterialEarth
}

// Drops возвращает дропы при разрушении блока
func (b *SandBehavior) Drops() []block.Drop {
	return []block.Drop{{Item: "sand", Count: 1}}
}
