package edit

import (
	"math"

	"github.com/annel0/mmo-editor/internal/vec"
	"github.com/annel0/mmo-editor/internal/world/block"
)

// SetBlocks заполняет регион узором
func (es *Session) SetBlocks(region Region, pat Pattern) (int, error) {
	metricOperations.WithLabelValues("setBlocks").Inc()

	affected := 0
	err := region.ForEach(func(pos vec.Vec3) error {
		ok, err := es.SetBlock(pos, pat.Next(pos))
		if err != nil {
			return err
		}
		if ok {
			affected++
		}
		return nil
	})
	return affected, err
}

// ReplaceBlocks заменяет в регионе блоки, входящие в filter, узором.
// filter=nil заменяет все непустые блоки.
func (es *Session) ReplaceBlocks(region Region, filter *block.StateSet, pat Pattern) (int, error) {
	metricOperations.WithLabelValues("replaceBlocks").Inc()

	affected := 0
	err := region.ForEach(func(pos vec.Vec3) error {
		cur := es.GetBlock(pos)
		if filter == nil {
			if cur.IsAir() {
				return nil
			}
		} else if !filter.Contains(cur) {
			return nil
		}
		ok, err := es.SetBlock(pos, pat.Next(pos))
		if err != nil {
			return err
		}
		if ok {
			affected++
		}
		return nil
	})
	return affected, err
}

// Center ставит узор в геометрическом центре региона. При чётных
// габаритах центр «размазан» на два вокселя по соответствующей оси.
func (es *Session) Center(region Region, pat Pattern) (int, error) {
	metricOperations.WithLabelValues("center").Inc()

	c := region.Center()
	lo := c.Floor()
	hi := vec.Vec3{
		X: int(math.Ceil(c.X)),
		Y: int(math.Ceil(c.Y)),
		Z: int(math.Ceil(c.Z)),
	}
	return es.SetBlocks(NewCuboidRegion(lo, hi), pat)
}

// MakeCuboidFaces строит все шесть граней кубоида
func (es *Session) MakeCuboidFaces(region Region, pat Pattern) (int, error) {
	metricOperations.WithLabelValues("makeFaces").Inc()

	affected := 0
	lo := region.MinimumPoint()
	hi := region.MaximumPoint()

	set := func(pos vec.Vec3) error {
		ok, err := es.SetBlock(pos, pat.Next(pos))
		if err != nil {
			return err
		}
		if ok {
			affected++
		}
		return nil
	}

	for x := lo.X; x <= hi.X; x++ {
		for z := lo.Z; z <= hi.Z; z++ {
			if err := set(vec.Vec3{X: x, Y: lo.Y, Z: z}); err != nil {
				return affected, err
			}
			if err := set(vec.Vec3{X: x, Y: hi.Y, Z: z}); err != nil {
				return affected, err
			}
		}
	}
	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			if err := set(vec.Vec3{X: x, Y: y, Z: lo.Z}); err != nil {
				return affected, err
			}
			if err := set(vec.Vec3{X: x, Y: y, Z: hi.Z}); err != nil {
				return affected, err
			}
		}
	}
	for y := lo.Y; y <= hi.Y; y++ {
		for z := lo.Z; z <= hi.Z; z++ {
			if err := set(vec.Vec3{X: lo.X, Y: y, Z: z}); err != nil {
				return affected, err
			}
			if err := set(vec.Vec3{X: hi.X, Y: y, Z: z}); err != nil {
				return affected, err
			}
		}
	}

	return affected, nil
}

// MakeCuboidWalls строит четыре вертикальные стены кубоида
func (es *Session) MakeCuboidWalls(region Region, pat Pattern) (int, error) {
	metricOperations.WithLabelValues("makeWalls").Inc()

	affected := 0
	lo := region.MinimumPoint()
	hi := region.MaximumPoint()

	set := func(pos vec.Vec3) error {
		ok, err := es.SetBlock(pos, pat.Next(pos))
		if err != nil {
			return err
		}
		if ok {
			affected++
		}
		return nil
	}

	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			if err := set(vec.Vec3{X: x, Y: y, Z: lo.Z}); err != nil {
				return affected, err
			}
			if err := set(vec.Vec3{X: x, Y: y, Z: hi.Z}); err != nil {
				return affected, err
			}
		}
	}
	for y := lo.Y; y <= hi.Y; y++ {
		for z := lo.Z; z <= hi.Z; z++ {
			if err := set(vec.Vec3{X: lo.X, Y: y, Z: z}); err != nil {
				return affected, err
			}
			if err := set(vec.Vec3{X: hi.X, Y: y, Z: z}); err != nil {
				return affected, err
			}
		}
	}

	return affected, nil
}

// OverlayCuboidBlocks накрывает верхнюю поверхность региона узором:
// в каждой колонке узор ставится над первым непроходимым блоком
func (es *Session) OverlayCuboidBlocks(region Region, pat Pattern) (int, error) {
	metricOperations.WithLabelValues("overlay").Inc()

	affected := 0
	lo := region.MinimumPoint()
	hi := region.MaximumPoint()

	upperY := min(es.world.MaxY(), hi.Y+1)
	lowerY := max(0, lo.Y-1)

	for x := lo.X; x <= hi.X; x++ {
		for z := lo.Z; z <= hi.Z; z++ {
			for y := upperY; y >= lowerY; y-- {
				pos := vec.Vec3{X: x, Y: y, Z: z}
				if block.CanPassThrough(es.GetBlock(pos).ID) {
					continue
				}
				if y < es.world.MaxY() {
					above := pos.AddXYZ(0, 1, 0)
					ok, err := es.SetBlock(above, pat.Next(above))
					if err != nil {
						return affected, err
					}
					if ok {
						affected++
					}
				}
				break
			}
		}
	}

	return affected, nil
}

// Naturalize приводит колонки региона к естественному профилю:
// верхний преобразуемый слой становится травой, следующие три —
// землёй, всё глубже — камнем. Преобразуются только трава, земля
// и камень; остальные блоки пропускаются, но углубляют уровень.
func (es *Session) Naturalize(region Region) (int, error) {
	metricOperations.WithLabelValues("naturalize").Inc()

	affected := 0
	lo := region.MinimumPoint()
	hi := region.MaximumPoint()

	layers := [3]block.State{
		block.NewState(block.GrassBlockID),
		block.NewState(block.DirtBlockID),
		block.NewState(block.StoneBlockID),
	}

	for x := lo.X; x <= hi.X; x++ {
		for z := lo.Z; z <= hi.Z; z++ {
			level := -1
			for y := hi.Y; y >= lo.Y; y-- {
				pos := vec.Vec3{X: x, Y: y, Z: z}
				id := es.GetBlock(pos).ID
				transformable := id == block.GrassBlockID || id == block.DirtBlockID || id == block.StoneBlockID

				// Поверхность колонки ещё не найдена
				if level == -1 {
					if !transformable {
						continue
					}
					level = 0
				}

				if transformable {
					var layer block.State
					switch {
					case level == 0:
						layer = layers[0]
					case level <= 3:
						layer = layers[1]
					default:
						layer = layers[2]
					}
					ok, err := es.SetBlock(pos, layer)
					if err != nil {
						return affected, err
					}
					if ok {
						affected++
					}
				}
				level++
			}
		}
	}

	return affected, nil
}

// StackCuboidRegion тиражирует содержимое региона count раз в
// направлении dir со сдвигом на габарит региона
func (es *Session) StackCuboidRegion(region Region, dir vec.Vec3, count int, copyAir bool) (int, error) {
	metricOperations.WithLabelValues("stack").Inc()

	affected := 0
	lo := region.MinimumPoint()
	hi := region.MaximumPoint()
	dims := hi.Sub(lo).AddXYZ(1, 1, 1)
	shift := vec.Vec3{X: dir.X * dims.X, Y: dir.Y * dims.Y, Z: dir.Z * dims.Z}

	err := region.ForEach(func(pos vec.Vec3) error {
		s := es.GetBlock(pos)
		if s.IsAir() && !copyAir {
			return nil
		}
		for i := 1; i <= count; i++ {
			ok, err := es.SetBlock(pos.Add(shift.Mul(i)), s)
			if err != nil {
				return err
			}
			if ok {
				affected++
			}
		}
		return nil
	})
	return affected, err
}

// MoveCuboidRegion сдвигает содержимое региона на dir*distance.
// Перенос строго двухпроходный: сначала все исходные блоки читаются
// в буфер, затем записываются в новые позиции — перекрытие исходного
// и целевого объёмов не искажает результат. Исходные позиции вне
// целевого объёма заполняются replace.
func (es *Session) MoveCuboidRegion(region Region, dir vec.Vec3, distance int, copyAir bool, replace block.State) (int, error) {
	metricOperations.WithLabelValues("move").Inc()

	affected := 0
	shift := dir.Mul(distance)
	newMin := region.MinimumPoint().Add(shift)
	newMax := region.MaximumPoint().Add(shift)
	dest := NewCuboidRegion(newMin, newMax)

	buffer := make([]changeEntry, 0, region.Volume())

	err := region.ForEach(func(pos vec.Vec3) error {
		s := es.GetBlock(pos)
		if !s.IsAir() || copyAir {
			buffer = append(buffer, changeEntry{pos: pos.Add(shift), state: s})
		}
		// Исходная позиция внутри целевого объёма будет перезаписана
		// вторым проходом, заполнять её нет смысла
		if !dest.Contains(pos) {
			if _, err := es.SetBlock(pos, replace); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return affected, err
	}

	for _, e := range buffer {
		ok, err := es.SetBlock(e.pos, e.state)
		if err != nil {
			return affected, err
		}
		if ok {
			affected++
		}
	}

	return affected, nil
}

// RemoveAbove удаляет блоки над позицией в квадрате с апофемой
// apothem, не выше height блоков от pos.Y
func (es *Session) RemoveAbove(pos vec.Vec3, apothem, height int) (int, error) {
	metricOperations.WithLabelValues("removeAbove").Inc()

	affected := 0
	size := apothem - 1
	maxY := min(es.world.MaxY(), pos.Y+height-1)

	for x := pos.X - size; x <= pos.X+size; x++ {
		for z := pos.Z - size; z <= pos.Z+size; z++ {
			for y := pos.Y; y <= maxY; y++ {
				p := vec.Vec3{X: x, Y: y, Z: z}
				if es.GetBlock(p).IsAir() {
					continue
				}
				ok, err := es.SetBlock(p, block.Air())
				if err != nil {
					return affected, err
				}
				if ok {
					affected++
				}
			}
		}
	}
	return affected, nil
}

// RemoveBelow удаляет блоки под позицией в квадрате с апофемой
// apothem, не ниже height блоков от pos.Y
func (es *Session) RemoveBelow(pos vec.Vec3, apothem, height int) (int, error) {
	metricOperations.WithLabelValues("removeBelow").Inc()

	affected := 0
	size := apothem - 1
	minY := max(0, pos.Y-height+1)

	for x := pos.X - size; x <= pos.X+size; x++ {
		for z := pos.Z - size; z <= pos.Z+size; z++ {
			for y := pos.Y; y >= minY; y-- {
				p := vec.Vec3{X: x, Y: y, Z: z}
				if es.GetBlock(p).IsAir() {
					continue
				}
				ok, err := es.SetBlock(p, block.Air())
				if err != nil {
					return affected, err
				}
				if ok {
					affected++
				}
			}
		}
	}
	return affected, nil
}

// RemoveNear удаляет блоки указанного типа в кубе с апофемой apothem
// вокруг позиции (любой data-вариант)
func (es *Session) RemoveNear(pos vec.Vec3, id block.BlockID, apothem int) (int, error) {
	metricOperations.WithLabelValues("removeNear").Inc()

	affected := 0
	size := apothem - 1

	for dx := -size; dx <= size; dx++ {
		for dy := -size; dy <= size; dy++ {
			for dz := -size; dz <= size; dz++ {
				p := pos.AddXYZ(dx, dy, dz)
				if es.GetBlock(p).ID != id {
					continue
				}
				ok, err := es.SetBlock(p, block.Air())
				if err != nil {
					return affected, err
				}
				if ok {
					affected++
				}
			}
		}
	}
	return affected, nil
}

// Green озеленяет поверхность: в круге радиуса radius верхний блок
// земли каждой колонки становится травой. Жидкость и непроходимые
// блоки закрывают колонку.
func (es *Session) Green(pos vec.Vec3, radius float64) (int, error) {
	metricOperations.WithLabelValues("green").Inc()

	affected := 0
	radiusSq := radius * radius
	ceilRadius := int(math.Ceil(radius))
	grass := block.NewState(block.GrassBlockID)

	for x := pos.X - ceilRadius; x <= pos.X+ceilRadius; x++ {
		for z := pos.Z - ceilRadius; z <= pos.Z+ceilRadius; z++ {
			if (vec.Vec3{X: x, Y: pos.Y, Z: z}).DistanceSq(pos) > radiusSq {
				continue
			}
		column:
			for y := es.world.MaxY(); y >= 1; y-- {
				p := vec.Vec3{X: x, Y: y, Z: z}
				id := es.GetBlock(p).ID
				switch {
				case id == block.DirtBlockID:
					ok, err := es.SetBlock(p, grass)
					if err != nil {
						return affected, err
					}
					if ok {
						affected++
					}
					break column
				case block.IsLiquid(id):
					break column
				case block.CanPassThrough(id):
					continue
				default:
					break column
				}
			}
		}
	}
	return affected, nil
}

// Thaw растапливает снег и лёд в круге радиуса radius: снежный
// покров становится воздухом, лёд — стоячей водой
func (es *Session) Thaw(pos vec.Vec3, radius float64) (int, error) {
	metricOperations.WithLabelValues("thaw").Inc()

	affected := 0
	radiusSq := radius * radius
	ceilRadius := int(math.Ceil(radius))
	air := block.Air()
	water := block.NewState(block.StationaryWaterBlockID)

	for x := pos.X - ceilRadius; x <= pos.X+ceilRadius; x++ {
		for z := pos.Z - ceilRadius; z <= pos.Z+ceilRadius; z++ {
			if (vec.Vec3{X: x, Y: pos.Y, Z: z}).DistanceSq(pos) > radiusSq {
				continue
			}
		column:
			for y := es.world.MaxY(); y >= 1; y-- {
				p := vec.Vec3{X: x, Y: y, Z: z}
				switch es.GetBlock(p).ID {
				case block.IceBlockID:
					ok, err := es.SetBlock(p, water)
					if err != nil {
						return affected, err
					}
					if ok {
						affected++
					}
					break column
				case block.SnowBlockID:
					ok, err := es.SetBlock(p, air)
					if err != nil {
						return affected, err
					}
					if ok {
						affected++
					}
					break column
				case block.AirBlockID:
					continue
				default:
					break column
				}
			}
		}
	}
	return affected, nil
}

// SimulateSnow засыпает поверхность снегом в круге радиуса radius:
// вода замерзает в лёд, над первым твёрдым блоком каждой колонки
// появляется снежный покров
func (es *Session) SimulateSnow(pos vec.Vec3, radius float64) (int, error) {
	metricOperations.WithLabelValues("simulateSnow").Inc()

	affected := 0
	radiusSq := radius * radius
	ceilRadius := int(math.Ceil(radius))
	ice := block.NewState(block.IceBlockID)
	snow := block.NewState(block.SnowBlockID)

	for x := pos.X - ceilRadius; x <= pos.X+ceilRadius; x++ {
		for z := pos.Z - ceilRadius; z <= pos.Z+ceilRadius; z++ {
			if (vec.Vec3{X: x, Y: pos.Y, Z: z}).DistanceSq(pos) > radiusSq {
				continue
			}
		column:
			for y := es.world.MaxY(); y >= 1; y-- {
				p := vec.Vec3{X: x, Y: y, Z: z}
				id := es.GetBlock(p).ID
				switch {
				case id == block.AirBlockID:
					continue
				case id == block.WaterBlockID || id == block.StationaryWaterBlockID:
					ok, err := es.SetBlock(p, ice)
					if err != nil {
						return affected, err
					}
					if ok {
						affected++
					}
					break column
				case block.CanPassThrough(id):
					// Декорации и жидкости снег не держат
					break column
				default:
					if y < es.world.MaxY() {
						above := p.AddXYZ(0, 1, 0)
						if es.GetBlock(above).IsAir() {
							ok, err := es.SetBlock(above, snow)
							if err != nil {
								return affected, err
							}
							if ok {
								affected++
							}
						}
					}
					break column
				}
			}
		}
	}
	return affected, nil
}

// HighestTerrainBlock возвращает высоту верхнего блока рельефа в
// колонке (x, z) в пределах [minY, maxY]. При naturalOnly
// учитываются только естественные блоки рельефа, иначе — любые
// непроходимые.
func (es *Session) HighestTerrainBlock(x, z, minY, maxY int, naturalOnly bool) int {
	for y := maxY; y >= minY; y-- {
		id := es.GetBlock(vec.Vec3{X: x, Y: y, Z: z}).ID
		if naturalOnly {
			if block.IsNaturalTerrain(id) {
				return y
			}
		} else if !block.CanPassThrough(id) {
			return y
		}
	}
	return minY
}
