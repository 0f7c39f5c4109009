package edit

import (
	"math"

	"github.com/annel0/mmo-editor/internal/vec"
	"github.com/annel0/mmo-editor/internal/world/block"
)

// FillXZ заливает полость вокруг точки origin узором pat.
// В нерекурсивном режиме обход идёт по горизонтали в круге радиуса
// radius, и каждая пустая колонка заливается вниз не глубже depth.
// В рекурсивном режиме обход расширяется и по вертикали (не выше
// origin) в сфере радиуса radius. Заполняются только пустые блоки.
func (es *Session) FillXZ(origin vec.Vec3, pat Pattern, radius float64, depth int, recursive bool) (int, error) {
	metricOperations.WithLabelValues("fillXZ").Inc()

	affected := 0
	visited := make(map[vec.Vec3]struct{})
	stack := []vec.Vec3{origin}

	for len(stack) > 0 {
		pt := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if pt.Y < 0 || pt.Y > origin.Y {
			continue
		}
		if _, seen := visited[pt]; seen {
			continue
		}
		visited[pt] = struct{}{}

		if recursive {
			if origin.DistanceTo(pt) > radius {
				continue
			}
			if !es.GetBlock(pt).IsAir() {
				continue
			}
			ok, err := es.SetBlock(pt, pat.Next(pt))
			if err != nil {
				return affected, err
			}
			if ok {
				affected++
			}
			stack = append(stack, pt.AddXYZ(0, 1, 0), pt.AddXYZ(0, -1, 0))
		} else {
			dx := float64(origin.X - pt.X)
			dz := float64(origin.Z - pt.Z)
			if math.Sqrt(dx*dx+dz*dz) > radius {
				continue
			}
			if !es.GetBlock(pt).IsAir() {
				continue
			}
			n, err := es.fillY(pt, pat, origin.Y-depth+1)
			affected += n
			if err != nil {
				return affected, err
			}
		}

		stack = append(stack,
			pt.AddXYZ(1, 0, 0), pt.AddXYZ(-1, 0, 0),
			pt.AddXYZ(0, 0, 1), pt.AddXYZ(0, 0, -1))
	}

	return affected, nil
}

// fillY заливает колонку вниз от pt до первого непустого блока,
// но не ниже minY
func (es *Session) fillY(pt vec.Vec3, pat Pattern, minY int) (int, error) {
	if minY < 0 {
		minY = 0
	}
	affected := 0
	for y := pt.Y; y >= minY; y-- {
		pos := pt.WithY(y)
		if !es.GetBlock(pos).IsAir() {
			break
		}
		ok, err := es.SetBlock(pos, pat.Next(pos))
		if err != nil {
			return affected, err
		}
		if ok {
			affected++
		}
	}
	return affected, nil
}

// DrainArea осушает связный объём жидкости вокруг точки pos в сфере
// радиуса radius. Затравка — куб 3×3×3 вокруг точки; обход идёт по
// всем 26 соседям, жидкость заменяется воздухом.
func (es *Session) DrainArea(pos vec.Vec3, radius float64) (int, error) {
	metricOperations.WithLabelValues("drainArea").Inc()

	affected := 0
	visited := make(map[vec.Vec3]struct{})
	var stack []vec.Vec3

	for dx := -1; dx <= 1; dx++ {
		for dz := -1; dz <= 1; dz++ {
			for dy := -1; dy <= 1; dy++ {
				stack = append(stack, pos.AddXYZ(dx, dy, dz))
			}
		}
	}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !block.IsLiquid(es.GetBlock(cur).ID) {
			continue
		}
		if _, seen := visited[cur]; seen {
			continue
		}
		visited[cur] = struct{}{}

		if pos.DistanceTo(cur) > radius {
			continue
		}

		for dx := -1; dx <= 1; dx++ {
			for dz := -1; dz <= 1; dz++ {
				for dy := -1; dy <= 1; dy++ {
					if dx == 0 && dy == 0 && dz == 0 {
						continue
					}
					stack = append(stack, cur.AddXYZ(dx, dy, dz))
				}
			}
		}

		ok, err := es.SetBlock(cur, block.Air())
		if err != nil {
			return affected, err
		}
		if ok {
			affected++
		}
	}

	return affected, nil
}

// FixLiquid превращает связный объём жидкости вокруг точки pos в
// стоячую форму, затягивая и пустоты внутри объёма. Затравка — куб
// 3×3×3 вокруг точки; обход идёт по четырём горизонтальным соседям.
// Проверка радиуса стоит после преобразования: фронт обхода может
// выйти на один шаг за границу сферы.
func (es *Session) FixLiquid(pos vec.Vec3, radius float64, moving, stationary block.BlockID) (int, error) {
	metricOperations.WithLabelValues("fixLiquid").Inc()

	affected := 0
	visited := make(map[vec.Vec3]struct{})
	var stack []vec.Vec3

	for dx := -1; dx <= 1; dx++ {
		for dz := -1; dz <= 1; dz++ {
			for dy := -1; dy <= 1; dy++ {
				p := pos.AddXYZ(dx, dy, dz)
				id := es.GetBlock(p).ID
				if id == moving || id == stationary {
					stack = append(stack, p)
				}
			}
		}
	}

	stationaryState := block.NewState(stationary)

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		id := es.GetBlock(cur).ID
		if id != moving && id != stationary && id != block.AirBlockID {
			continue
		}
		if _, seen := visited[cur]; seen {
			continue
		}
		visited[cur] = struct{}{}

		ok, err := es.SetBlock(cur, stationaryState)
		if err != nil {
			return affected, err
		}
		if ok {
			affected++
		}

		if pos.DistanceTo(cur) > radius {
			continue
		}

		stack = append(stack,
			cur.AddXYZ(1, 0, 0), cur.AddXYZ(-1, 0, 0),
			cur.AddXYZ(0, 0, 1), cur.AddXYZ(0, 0, -1))
	}

	return affected, nil
}
