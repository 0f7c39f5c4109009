package edit

import (
	"github.com/annel0/mmo-editor/internal/vec"
)

// Region — множество координат с оценкой габаритов.
// Обход идёт в детерминированном порядке (x, затем y, затем z).
type Region interface {
	// MinimumPoint возвращает минимальный угол охватывающего кубоида
	MinimumPoint() vec.Vec3
	// MaximumPoint возвращает максимальный угол охватывающего кубоида
	MaximumPoint() vec.Vec3
	// Contains проверяет принадлежность координаты региону
	Contains(pos vec.Vec3) bool
	// Center возвращает геометрический центр региона
	Center() vec.Vec3Float
	// Volume возвращает число координат региона
	Volume() int
	// ForEach обходит все координаты; ненулевая ошибка прерывает обход
	ForEach(fn func(pos vec.Vec3) error) error
}

// CuboidRegion — осевой кубоид, заданный двумя противоположными углами
type CuboidRegion struct {
	min vec.Vec3
	max vec.Vec3
}

// NewCuboidRegion создаёт кубоид; углы нормализуются покомпонентно
func NewCuboidRegion(a, b vec.Vec3) *CuboidRegion {
	return &CuboidRegion{
		min: vec.Vec3{X: min(a.X, b.X), Y: min(a.Y, b.Y), Z: min(a.Z, b.Z)},
		max: vec.Vec3{X: max(a.X, b.X), Y: max(a.Y, b.Y), Z: max(a.Z, b.Z)},
	}
}

func (r *CuboidRegion) MinimumPoint() vec.Vec3 { return r.min }
func (r *CuboidRegion) MaximumPoint() vec.Vec3 { return r.max }

func (r *CuboidRegion) Contains(pos vec.Vec3) bool {
	return pos.X >= r.min.X && pos.X <= r.max.X &&
		pos.Y >= r.min.Y && pos.Y <= r.max.Y &&
		pos.Z >= r.min.Z && pos.Z <= r.max.Z
}

func (r *CuboidRegion) Center() vec.Vec3Float {
	return vec.Vec3Float{
		X: float64(r.min.X+r.max.X) / 2,
		Y: float64(r.min.Y+r.max.Y) / 2,
		Z: float64(r.min.Z+r.max.Z) / 2,
	}
}

func (r *CuboidRegion) Volume() int {
	return (r.max.X - r.min.X + 1) * (r.max.Y - r.min.Y + 1) * (r.max.Z - r.min.Z + 1)
}

func (r *CuboidRegion) ForEach(fn func(pos vec.Vec3) error) error {
	for x := r.min.X; x <= r.max.X; x++ {
		for y := r.min.Y; y <= r.max.Y; y++ {
			for z := r.min.Z; z <= r.max.Z; z++ {
				if err := fn(vec.Vec3{X: x, Y: y, Z: z}); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
