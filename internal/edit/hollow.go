package edit

import (
	"github.com/annel0/mmo-editor/internal/vec"
	"github.com/annel0/mmo-editor/internal/world/block"
)

var recurseDirections = [6]vec.Vec3{
	{X: 1}, {X: -1},
	{Y: 1}, {Y: -1},
	{Z: 1}, {Z: -1},
}

// HollowOutRegion выдалбливает регион: «внешность» находится обходом
// проходимых блоков от всех шести граней, затем наращивается на
// thickness-1 слоёв; всё, что не примыкает к внешности, заполняется
// узором. Остаётся оболочка толщиной thickness.
func (es *Session) HollowOutRegion(region Region, thickness int, pat Pattern) (int, error) {
	metricOperations.WithLabelValues("hollow").Inc()

	affected := 0
	lo := region.MinimumPoint()
	hi := region.MaximumPoint()

	outside := make(map[vec.Vec3]struct{})

	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			es.recurseHollow(region, vec.Vec3{X: x, Y: y, Z: lo.Z}, outside)
			es.recurseHollow(region, vec.Vec3{X: x, Y: y, Z: hi.Z}, outside)
		}
	}
	for y := lo.Y; y <= hi.Y; y++ {
		for z := lo.Z; z <= hi.Z; z++ {
			es.recurseHollow(region, vec.Vec3{X: lo.X, Y: y, Z: z}, outside)
			es.recurseHollow(region, vec.Vec3{X: hi.X, Y: y, Z: z}, outside)
		}
	}
	for x := lo.X; x <= hi.X; x++ {
		for z := lo.Z; z <= hi.Z; z++ {
			es.recurseHollow(region, vec.Vec3{X: x, Y: lo.Y, Z: z}, outside)
			es.recurseHollow(region, vec.Vec3{X: x, Y: hi.Y, Z: z}, outside)
		}
	}

	// Каждый дополнительный слой толщины: клетки, граничащие с
	// внешностью, сами становятся внешностью
	for i := 1; i < thickness; i++ {
		grown := make(map[vec.Vec3]struct{})
		_ = region.ForEach(func(pos vec.Vec3) error {
			for _, d := range recurseDirections {
				if _, ok := outside[pos.Add(d)]; ok {
					grown[pos] = struct{}{}
					return nil
				}
			}
			return nil
		})
		for pos := range grown {
			outside[pos] = struct{}{}
		}
	}

	err := region.ForEach(func(pos vec.Vec3) error {
		for _, d := range recurseDirections {
			if _, ok := outside[pos.Add(d)]; ok {
				return nil
			}
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

// recurseHollow помечает связную проходимую область от origin как внешность
func (es *Session) recurseHollow(region Region, origin vec.Vec3, outside map[vec.Vec3]struct{}) {
	stack := []vec.Vec3{origin}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, seen := outside[cur]; seen {
			continue
		}
		if !region.Contains(cur) {
			continue
		}
		if !block.CanPassThrough(es.GetBlock(cur).ID) {
			continue
		}

		outside[cur] = struct{}{}
		for _, d := range recurseDirections {
			stack = append(stack, cur.Add(d))
		}
	}
}
