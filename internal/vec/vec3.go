package vec

import "math"

// Vec3 представляет трехмерный вектор с целочисленными координатами.
// Используется как адрес одного вокселя в мире.
type Vec3 struct {
	X int
	Y int
	Z int
}

// ToChunkCoords преобразует координаты блока в координаты чанка (столбец X/Z)
func (v Vec3) ToChunkCoords() Vec2 {
	return Vec2{X: v.X >> 4, Y: v.Z >> 4} // Деление на 16
}

// ToVec2 возвращает горизонтальную проекцию (X/Z), игнорируя высоту
func (v Vec3) ToVec2() Vec2 {
	return Vec2{X: v.X, Y: v.Z}
}

// Add складывает два вектора
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// AddXYZ складывает вектор с покомпонентным смещением
func (v Vec3) AddXYZ(dx, dy, dz int) Vec3 {
	return Vec3{X: v.X + dx, Y: v.Y + dy, Z: v.Z + dz}
}

// Sub вычитает другой вектор
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Mul умножает вектор на целый скаляр
func (v Vec3) Mul(scalar int) Vec3 {
	return Vec3{X: v.X * scalar, Y: v.Y * scalar, Z: v.Z * scalar}
}

// WithY возвращает копию вектора с заменённой высотой
func (v Vec3) WithY(y int) Vec3 {
	return Vec3{X: v.X, Y: y, Z: v.Z}
}

// Equals проверяет равенство векторов
func (v Vec3) Equals(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// DistanceSq возвращает квадрат расстояния до другого вектора
func (v Vec3) DistanceSq(other Vec3) float64 {
	dx := float64(v.X - other.X)
	dy := float64(v.Y - other.Y)
	dz := float64(v.Z - other.Z)
	return dx*dx + dy*dy + dz*dz
}

// DistanceTo возвращает расстояние до другого вектора
func (v Vec3) DistanceTo(other Vec3) float64 {
	return math.Sqrt(v.DistanceSq(other))
}

// ToFloat преобразует в вектор с плавающими координатами
func (v Vec3) ToFloat() Vec3Float {
	return Vec3Float{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}
