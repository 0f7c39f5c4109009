package edit

import (
	"math"

	"github.com/annel0/mmo-editor/internal/vec"
)

func lengthSq2(x, z float64) float64    { return x*x + z*z }
func lengthSq3(x, y, z float64) float64 { return x*x + y*y + z*z }

// MakeCylinder строит вертикальный круговой цилиндр
func (es *Session) MakeCylinder(pos vec.Vec3, pat Pattern, radius float64, height int, filled bool) (int, error) {
	return es.MakeEllipticCylinder(pos, pat, radius, radius, height, filled)
}

// MakeEllipticCylinder строит вертикальный эллиптический цилиндр.
// Радиусы расширяются на 0.5, чтобы стенка проходила по центрам
// граничных вокселей. Отрицательная высота растёт вниз от pos.
// При filled=false остаётся только оболочка.
func (es *Session) MakeEllipticCylinder(pos vec.Vec3, pat Pattern, radiusX, radiusZ float64, height int, filled bool) (int, error) {
	metricOperations.WithLabelValues("makeCylinder").Inc()

	affected := 0

	radiusX += 0.5
	radiusZ += 0.5

	if height == 0 {
		return 0, nil
	} else if height < 0 {
		height = -height
		pos = pos.AddXYZ(0, -height, 0)
	}

	// Вертикальное усечение по границам мира
	if pos.Y < 0 {
		pos = pos.WithY(0)
	} else if pos.Y+height-1 > es.world.MaxY() {
		height = es.world.MaxY() - pos.Y + 1
	}

	invRadiusX := 1 / radiusX
	invRadiusZ := 1 / radiusZ

	ceilRadiusX := int(math.Ceil(radiusX))
	ceilRadiusZ := int(math.Ceil(radiusZ))

	nextXn := 0.0
forX:
	for x := 0; x <= ceilRadiusX; x++ {
		xn := nextXn
		nextXn = float64(x+1) * invRadiusX
		nextZn := 0.0
	forZ:
		for z := 0; z <= ceilRadiusZ; z++ {
			zn := nextZn
			nextZn = float64(z+1) * invRadiusZ

			if lengthSq2(xn, zn) > 1 {
				if z == 0 {
					break forX
				}
				break forZ
			}

			// Оболочка: воксель внутренний, если и следующий шаг
			// по каждой оси остаётся внутри эллипса
			if !filled {
				if lengthSq2(nextXn, zn) <= 1 && lengthSq2(xn, nextZn) <= 1 {
					continue
				}
			}

			for y := 0; y < height; y++ {
				for _, p := range [4]vec.Vec3{
					pos.AddXYZ(x, y, z),
					pos.AddXYZ(-x, y, z),
					pos.AddXYZ(x, y, -z),
					pos.AddXYZ(-x, y, -z),
				} {
					ok, err := es.SetBlock(p, pat.Next(p))
					if err != nil {
						return affected, err
					}
					if ok {
						affected++
					}
				}
			}
		}
	}

	return affected, nil
}

// MakeSphere строит сферу
func (es *Session) MakeSphere(pos vec.Vec3, pat Pattern, radius float64, filled bool) (int, error) {
	return es.MakeEllipsoid(pos, pat, radius, radius, radius, filled)
}

// MakeEllipsoid строит эллипсоид с центром pos. Радиусы расширяются
// на 0.5; октанты зеркалируются от положительного. При filled=false
// остаётся оболочка толщиной в один воксель.
func (es *Session) MakeEllipsoid(pos vec.Vec3, pat Pattern, radiusX, radiusY, radiusZ float64, filled bool) (int, error) {
	metricOperations.WithLabelValues("makeSphere").Inc()

	affected := 0

	radiusX += 0.5
	radiusY += 0.5
	radiusZ += 0.5

	invRadiusX := 1 / radiusX
	invRadiusY := 1 / radiusY
	invRadiusZ := 1 / radiusZ

	ceilRadiusX := int(math.Ceil(radiusX))
	ceilRadiusY := int(math.Ceil(radiusY))
	ceilRadiusZ := int(math.Ceil(radiusZ))

	nextXn := 0.0
forX:
	for x := 0; x <= ceilRadiusX; x++ {
		xn := nextXn
		nextXn = float64(x+1) * invRadiusX
		nextYn := 0.0
	forY:
		for y := 0; y <= ceilRadiusY; y++ {
			yn := nextYn
			nextYn = float64(y+1) * invRadiusY
			nextZn := 0.0
		forZ:
			for z := 0; z <= ceilRadiusZ; z++ {
				zn := nextZn
				nextZn = float64(z+1) * invRadiusZ

				if lengthSq3(xn, yn, zn) > 1 {
					if z == 0 {
						if y == 0 {
							break forX
						}
						break forY
					}
					break forZ
				}

				if !filled {
					if lengthSq3(nextXn, yn, zn) <= 1 &&
						lengthSq3(xn, nextYn, zn) <= 1 &&
						lengthSq3(xn, yn, nextZn) <= 1 {
						continue
					}
				}

				for _, p := range [8]vec.Vec3{
					pos.AddXYZ(x, y, z),
					pos.AddXYZ(-x, y, z),
					pos.AddXYZ(x, -y, z),
					pos.AddXYZ(x, y, -z),
					pos.AddXYZ(-x, -y, z),
					pos.AddXYZ(x, -y, -z),
					pos.AddXYZ(-x, y, -z),
					pos.AddXYZ(-x, -y, -z),
				} {
					ok, err := es.SetBlock(p, pat.Next(p))
					if err != nil {
						return affected, err
					}
					if ok {
						affected++
					}
				}
			}
		}
	}

	return affected, nil
}

// MakePyramid строит четырёхгранную пирамиду: основание со стороной
// 2*size+1 в позиции pos, каждый следующий ярус уже на один воксель.
// При filled=false каждый ярус — только рамка.
func (es *Session) MakePyramid(pos vec.Vec3, pat Pattern, size int, filled bool) (int, error) {
	metricOperations.WithLabelValues("makePyramid").Inc()

	affected := 0
	height := size

	for y := 0; y <= height; y++ {
		size--
		for x := 0; x <= size; x++ {
			for z := 0; z <= size; z++ {
				if filled || z == size || x == size {
					for _, p := range [4]vec.Vec3{
						pos.AddXYZ(x, y, z),
						pos.AddXYZ(-x, y, z),
						pos.AddXYZ(x, y, -z),
						pos.AddXYZ(-x, y, -z),
					} {
						ok, err := es.SetBlock(p, pat.Next(p))
						if err != nil {
							return affected, err
						}
						if ok {
							affected++
						}
					}
				}
			}
		}
	}

	return affected, nil
}
