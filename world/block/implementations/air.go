package implementations

import "github.com/annel0/magna-tools/world/block"

// AirBehavior реализует поведение пустого блока
type AirBehavior struct{}

// ID возвращает идентификатор блока
func (b *AirBehavior) ID() block.BlockID {
	return block.AirBlockID
}

// Name возвращает имя блока
func (b *AirBehavior) Name() string {
	return "Air"
}

// Hardness возвращает прочность блока
func (b *AirBehavior) Hardness() float64 {
	return 0
}

// RequiresTool воздух не требует инструмента
func (b *AirBehavior) RequiresTool() bool {
	return false
}

// Material возвращает материал блока
func (b *AirBehavior) Material() block.Material {
	return block.MaterialNone
}

// Drops воздух ничего не дропает
func (b *AirBehavior) Drops() []block.Drop {
	return nil
}
