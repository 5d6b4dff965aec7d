package world

import (
	"github.com/aquilax/go-perlin"

	"github.com/annel0/magna-tools/vec"
	"github.com/annel0/magna-tools/world/block"
)

// Параметры шума Перлина
const (
	noiseAlpha   = 2.0 // Сглаживание шума
	noiseBeta    = 2.0 // Частота шума
	noiseOctaves = 3   // Количество октав
)

// GenerateTerrain заполняет мир простым рельефом на основе шума Перлина:
// бедрок на дне, камень с вкраплениями руды, слой земли, трава сверху.
// Колонки генерируются в области [0, width) x [0, length) по осям X и Z.
func GenerateTerrain(w *MemoryWorld, width, length, baseHeight int, seed int64) {
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)

	for x := 0; x < width; x++ {
		for z := 0; z < length; z++ {
			// Шум от -1 до 1 приводим к диапазону от 0 до 1
			noise := (p.Noise2D(float64(x)/10.0, float64(z)/10.0) + 1.0) / 2.0
			height := baseHeight + int(noise*4.0)

			for y := 0; y <= height; y++ {
				pos := vec.Vec3{X: x, Y: y, Z: z}
				switch {
				case y == 0:
					w.SetBlock(pos, block.BedrockBlockID)
				case y == height:
					w.SetBlock(pos, block.GrassBlockID)
				case y >= height-2:
					w.SetBlock(pos, block.DirtBlockID)
				default:
					// Редкие вкрапления железной руды в камне
					ore := p.Noise3D(float64(x)/4.0, float64(y)/4.0, float64(z)/4.0)
					if ore > 0.45 {
						w.SetBlock(pos, block.IronOreBlockID)
					} else {
						w.SetBlock(pos, block.StoneBlockID)
					}
				}
			}
		}
	}
}
