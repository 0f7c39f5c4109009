package edit

import (
	"github.com/annel0/mmo-editor/internal/expr"
	"github.com/annel0/mmo-editor/internal/logging"
	"github.com/annel0/mmo-editor/internal/vec"
	"github.com/annel0/mmo-editor/internal/world/block"
)

// MakeShape заполняет регион произвольной формой, заданной формулой.
// Координаты нормализуются: scaled = (pos - zero) / unit. Переменные
// формулы: x, y, z, type, data (материал узора по умолчанию).
// Скалярный результат <= 0 исключает воксель; вектор [sel, type, data]
// дополнительно переопределяет материал. Ошибка вычисления исключает
// воксель и логируется, но не прерывает операцию.
// При hollow=true остаётся только оболочка формы.
func (es *Session) MakeShape(region Region, zero, unit vec.Vec3Float, pat Pattern, formula string, hollow bool) (int, error) {
	metricOperations.WithLabelValues("makeShape").Inc()

	e, err := expr.Compile(formula, "x", "y", "z", "type", "data")
	if err != nil {
		return 0, err
	}

	materialAt := func(pos vec.Vec3) (block.State, bool) {
		scaled := pos.ToFloat().Sub(zero).Div(unit)
		def := pat.Next(pos)
		out, err := e.Eval(scaled.X, scaled.Y, scaled.Z, float64(def.ID), float64(def.Data))
		if err != nil {
			logging.Debug("Формула формы в %v: %v", pos, err)
			return block.State{}, false
		}

		if v, ok := expr.ToVector(out); ok {
			if len(v) != 3 {
				logging.Debug("Формула формы в %v: вектор из %d компонент вместо 3", pos, len(v))
				return block.State{}, false
			}
			if v[0] <= 0 {
				return block.State{}, false
			}
			return block.State{ID: block.BlockID(v[1]), Data: int16(v[2])}, true
		}
		if f, ok := expr.ToFloat(out); ok {
			if f <= 0 {
				return block.State{}, false
			}
			return def, true
		}
		logging.Debug("Формула формы в %v: неподдерживаемый результат %T", pos, out)
		return block.State{}, false
	}

	// Кеш включённости для проверки соседей в полом режиме
	included := make(map[vec.Vec3]bool)
	isIncluded := func(pos vec.Vec3) bool {
		if v, ok := included[pos]; ok {
			return v
		}
		_, ok := materialAt(pos)
		included[pos] = ok
		return ok
	}

	affected := 0
	err = region.ForEach(func(pos vec.Vec3) error {
		material, ok := materialAt(pos)
		if !ok {
			return nil
		}

		if hollow {
			interior := true
			for _, d := range recurseDirections {
				n := pos.Add(d)
				if !region.Contains(n) || !isIncluded(n) {
					interior = false
					break
				}
			}
			if interior {
				return nil
			}
		}

		set, err := es.SetBlock(pos, material)
		if err != nil {
			return err
		}
		if set {
			affected++
		}
		return nil
	})
	return affected, err
}

// DeformRegion деформирует регион формулой: для каждой целевой
// координаты формула по нормализованной позиции возвращает вектор
// [x, y, z] — нормализованную координату-источник. Материал источника
// читается из мира до начала записи (два прохода), поэтому пересечение
// источников и целей не искажает результат. Ошибка вычисления
// пропускает воксель, логируется и не прерывает операцию.
func (es *Session) DeformRegion(region Region, zero, unit vec.Vec3Float, formula string) (int, error) {
	metricOperations.WithLabelValues("deform").Inc()

	e, err := expr.Compile(formula, "x", "y", "z")
	if err != nil {
		return 0, err
	}

	// +0.5 — выборка из центра вокселя-источника
	zeroCenter := zero.Add(vec.Vec3Float{X: 0.5, Y: 0.5, Z: 0.5})

	buffer := make([]changeEntry, 0, region.Volume())
	_ = region.ForEach(func(pos vec.Vec3) error {
		scaled := pos.ToFloat().Sub(zero).Div(unit)
		out, err := e.EvaluateVector(scaled.X, scaled.Y, scaled.Z)
		if err != nil {
			logging.Debug("Формула деформации в %v: %v", pos, err)
			return nil
		}
		if len(out) != 3 {
			logging.Debug("Формула деформации в %v: вектор из %d компонент вместо 3", pos, len(out))
			return nil
		}

		src := (vec.Vec3Float{X: out[0], Y: out[1], Z: out[2]}).MulVec(unit).Add(zeroCenter).Floor()
		// Чтение напрямую из мира: все записи идут вторым проходом,
		// поэтому источники видят состояние до деформации
		buffer = append(buffer, changeEntry{pos: pos, state: es.world.GetBlock(src)})
		return nil
	})

	affected := 0
	for _, entry := range buffer {
		ok, err := es.SetBlock(entry.pos, entry.state)
		if err != nil {
			return affected, err
		}
		if ok {
			affected++
		}
	}
	return affected, nil
}

// unitOrOne защищает от нулевых компонент единичного вектора
func unitOrOne(unit vec.Vec3Float) vec.Vec3Float {
	if unit.X == 0 {
		unit.X = 1
	}
	if unit.Y == 0 {
		unit.Y = 1
	}
	if unit.Z == 0 {
		unit.Z = 1
	}
	return unit
}

// MakeShapeCentered — вариант MakeShape с нормализацией от центра
// региона: zero — центр, unit — полуразмеры по осям
func (es *Session) MakeShapeCentered(region Region, pat Pattern, formula string, hollow bool) (int, error) {
	zero := region.Center()
	lo := region.MinimumPoint().ToFloat()
	hi := region.MaximumPoint().ToFloat()
	unit := unitOrOne(vec.Vec3Float{
		X: (hi.X - lo.X) / 2,
		Y: (hi.Y - lo.Y) / 2,
		Z: (hi.Z - lo.Z) / 2,
	})
	return es.MakeShape(region, zero, unit, pat, formula, hollow)
}

// DeformRegionCentered — вариант DeformRegion с нормализацией от центра
func (es *Session) DeformRegionCentered(region Region, formula string) (int, error) {
	zero := region.Center()
	lo := region.MinimumPoint().ToFloat()
	hi := region.MaximumPoint().ToFloat()
	unit := unitOrOne(vec.Vec3Float{
		X: (hi.X - lo.X) / 2,
		Y: (hi.Y - lo.Y) / 2,
		Z: (hi.Z - lo.Z) / 2,
	})
	return es.DeformRegion(region, zero, unit, formula)
}
