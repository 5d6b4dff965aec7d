package implementations

import "github.com/annel0/magna-tools/world/block"

// BedrockBehavior реализует поведение неразрушаемого основания мира
type BedrockBehavior struct{}

// ID возвращает идентификатор блока
func (b *BedrockBehavior) ID() block.BlockID {
	return block.BedrockBlockID
}

// Name возвращает имя блока
func (b *BedrockBehavior) Name() string {
	return "Bedrock"
}

// Hardness бедрок неразрушаем
func (b *BedrockBehavior) Hardness() float64 {
	return block.UnbreakableHardness
}

// RequiresTool значение не имеет смысла для неразрушаемого блока
func (b *BedrockBehavior) RequiresTool() bool {
	return true
}

// Material возвращает материал блока
func (b *BedrockBehavior) Material() block.Material {
	return block.MaterialRock
}

// Drops бедрок ничего не дропает
func (b *BedrockBehavior) Drops() []block.Drop {
	return nil
}
