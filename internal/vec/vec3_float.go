package vec

import "math"

// Vec3Float представляет трехмерный вектор с плавающими координатами.
// Применяется для нормализации локальных координат в выражениях форм.
type Vec3Float struct {
	X float64
	Y float64
	Z float64
}

// Add складывает два вектора
func (v Vec3Float) Add(other Vec3Float) Vec3Float {
	return Vec3Float{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Sub вычитает другой вектор
func (v Vec3Float) Sub(other Vec3Float) Vec3Float {
	return Vec3Float{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Div делит покомпонентно на другой вектор
func (v Vec3Float) Div(other Vec3Float) Vec3Float {
	return Vec3Float{X: v.X / other.X, Y: v.Y / other.Y, Z: v.Z / other.Z}
}

// MulVec умножает покомпонентно на другой вектор
func (v Vec3Float) MulVec(other Vec3Float) Vec3Float {
	return Vec3Float{X: v.X * other.X, Y: v.Y * other.Y, Z: v.Z * other.Z}
}

// Floor возвращает целочисленный вектор, округляя каждую компоненту вниз
func (v Vec3Float) Floor() Vec3 {
	return Vec3{
		X: int(math.Floor(v.X)),
		Y: int(math.Floor(v.Y)),
		Z: int(math.Floor(v.Z)),
	}
}
