package util

import (
	"github.com/aquilax/go-perlin"
)

var perlinNoise *perlin.Perlin
var perlinSeed int64

// InitPerlinNoise инициализирует генератор шума Перлина с указанным сидом
func InitPerlinNoise(seed int64) {
	alpha := 2.0  // Сглаживание шума
	beta := 2.0   // Частота шума
	n := int32(3) // Количество октав
	perlinNoise = perlin.NewPerlin(alpha, beta, n, seed)
	perlinSeed = seed
}

// PerlinNoise2D возвращает значение шума Перлина для указанных координат (от 0 до 1)
func PerlinNoise2D(x, y float64, seed int64) float64 {
	if perlinNoise == nil || perlinSeed != seed {
		InitPerlinNoise(seed)
	}

	// Получаем значение шума (от -1 до 1)
	noise := perlinNoise.Noise2D(x, y)

	// Преобразуем в диапазон от 0 до 1
	return (noise + 1.0) / 2.0
}

// PerlinNoise3D возвращает значение объёмного шума Перлина (от 0 до 1)
func PerlinNoise3D(x, y, z float64, seed int64) float64 {
	if perlinNoise == nil || perlinSeed != seed {
		InitPerlinNoise(seed)
	}

	noise := perlinNoise.Noise3D(x, y, z)

	return (noise + 1.0) / 2.0
}
