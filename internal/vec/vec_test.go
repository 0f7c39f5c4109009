package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3_ChunkCoords(t *testing.T) {
	// Тест преобразования в координаты чанка
	assert.Equal(t, Vec2{X: 0, Y: 0}, Vec3{X: 15, Y: 100, Z: 15}.ToChunkCoords())
	assert.Equal(t, Vec2{X: 1, Y: 2}, Vec3{X: 16, Y: 0, Z: 40}.ToChunkCoords())
	assert.Equal(t, Vec2{X: -1, Y: -1}, Vec3{X: -1, Y: 0, Z: -16}.ToChunkCoords(),
		"Отрицательные координаты округляются вниз")
}

func TestVec2_LocalInChunk(t *testing.T) {
	// Тест локальных координат внутри чанка
	assert.Equal(t, Vec2{X: 1, Y: 8}, Vec2{X: 17, Y: 40}.LocalInChunk())
	assert.Equal(t, Vec2{X: 15, Y: 0}, Vec2{X: -1, Y: -16}.LocalInChunk(),
		"Отрицательные координаты дают корректный локальный индекс")
}

func TestVec3_Arithmetic(t *testing.T) {
	// Тест арифметики векторов
	v := Vec3{X: 1, Y: 2, Z: 3}
	assert.Equal(t, Vec3{X: 2, Y: 4, Z: 6}, v.Add(v))
	assert.Equal(t, Vec3{X: 0, Y: 0, Z: 0}, v.Sub(v))
	assert.Equal(t, Vec3{X: 3, Y: 6, Z: 9}, v.Mul(3))
	assert.Equal(t, Vec3{X: 1, Y: 7, Z: 3}, v.WithY(7))
	assert.InDelta(t, 5.0, Vec3{X: 3, Y: 4, Z: 0}.DistanceTo(Vec3{}), 1e-9)
}

func TestVec3Float_FloorDiv(t *testing.T) {
	// Тест покомпонентных операций с плавающей точкой
	v := Vec3Float{X: 3.7, Y: -1.2, Z: 0.5}
	assert.Equal(t, Vec3{X: 3, Y: -2, Z: 0}, v.Floor(), "Floor округляет вниз, не к нулю")

	d := Vec3Float{X: 4, Y: 8, Z: 2}.Div(Vec3Float{X: 2, Y: 4, Z: 2})
	assert.Equal(t, Vec3Float{X: 2, Y: 2, Z: 1}, d)
}
