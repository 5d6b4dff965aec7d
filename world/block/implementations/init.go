package implementations

import "github.com/annel0/magna-tools/world/block"

// Регистрируем все типы блоков при импорте пакета
func init() {
	// Базовые блоки
	block.Register(block.AirBlockID, &AirBehavior{})
	block.Register(block.DirtBlockID, &DirtBehavior{})
	block.Register(block.GrassBlockID, &GrassBehavior{})
	block.Register(block.SandBlockID, &SandBehavior{})
	block.Register(block.GravelBlockID, &GravelBehavior{})
	block.Register(block.StoneBlockID, &StoneBehavior{})

	// Руды
	block.Register(block.IronOreBlockID, &IronOreBehavior{})

	// Специальные блоки
	block.Register(block.BedrockBlockID, &BedrockBehavior{})
}
