package edit

import (
	"testing"

	"github.com/annel0/mmo-editor/internal/vec"
	"github.com/annel0/mmo-editor/internal/world"
	"github.com/annel0/mmo-editor/internal/world/block"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeBasin строит каменную чашу с дном на уровне floor и стенами
// вокруг квадрата [-r, r], открытую сверху
func makeBasin(w *world.MemoryWorld, r, floor, wallTop int) {
	stone := block.NewState(block.StoneBlockID)
	for x := -r - 1; x <= r+1; x++ {
		for z := -r - 1; z <= r+1; z++ {
			w.SetBlock(vec.Vec3{X: x, Y: floor, Z: z}, stone, false)
			if x == -r-1 || x == r+1 || z == -r-1 || z == r+1 {
				for y := floor; y <= wallTop; y++ {
					w.SetBlock(vec.Vec3{X: x, Y: y, Z: z}, stone, false)
				}
			}
		}
	}
}

func TestFillXZ_Column(t *testing.T) {
	// Тест нерекурсивной заливки: пустые колонки заливаются вниз
	// не глубже depth
	w := world.NewMemoryWorld()
	makeBasin(w, 4, 5, 12)

	es := NewSession(w, UnlimitedBlocks)
	origin := vec.Vec3{X: 0, Y: 8, Z: 0}
	water := NewSinglePattern(block.NewState(block.StationaryWaterBlockID))

	affected, err := es.FillXZ(origin, water, 3, 2, false)
	require.NoError(t, err)
	assert.Greater(t, affected, 0)

	// Глубина 2: уровни 8 и 7 залиты, ниже — нет
	assert.Equal(t, block.StationaryWaterBlockID, w.GetBlock(vec.Vec3{X: 0, Y: 8, Z: 0}).ID)
	assert.Equal(t, block.StationaryWaterBlockID, w.GetBlock(vec.Vec3{X: 0, Y: 7, Z: 0}).ID)
	assert.True(t, w.GetBlock(vec.Vec3{X: 0, Y: 6, Z: 0}).IsAir(), "Глубже depth не заливается")

	// Радиус по горизонтали
	assert.Equal(t, block.StationaryWaterBlockID, w.GetBlock(vec.Vec3{X: 3, Y: 8, Z: 0}).ID)
	assert.True(t, w.GetBlock(vec.Vec3{X: 4, Y: 8, Z: 0}).IsAir(), "За радиусом не заливается")
}

func TestFillXZ_Recursive(t *testing.T) {
	// Тест рекурсивной заливки: фронт спускается по вертикали,
	// но не поднимается выше точки старта
	w := world.NewMemoryWorld()
	makeBasin(w, 4, 2, 12)

	es := NewSession(w, UnlimitedBlocks)
	origin := vec.Vec3{X: 0, Y: 6, Z: 0}
	stone := NewSinglePattern(block.NewState(block.StoneBlockID))

	_, err := es.FillXZ(origin, stone, 3, 1, true)
	require.NoError(t, err)

	assert.Equal(t, block.StoneBlockID, w.GetBlock(vec.Vec3{X: 0, Y: 6, Z: 0}).ID)
	assert.Equal(t, block.StoneBlockID, w.GetBlock(vec.Vec3{X: 0, Y: 4, Z: 0}).ID,
		"Рекурсивный фронт спускается вниз в пределах сферы")
	assert.True(t, w.GetBlock(vec.Vec3{X: 0, Y: 7, Z: 0}).IsAir(),
		"Выше точки старта заливка не идёт")
	assert.True(t, w.GetBlock(vec.Vec3{X: 0, Y: 1, Z: 0}).IsAir(),
		"Сферический радиус ограничивает глубину")
}

func TestFillXZ_StopsAtSolid(t *testing.T) {
	// Тест остановки фронта: непустой блок не перезаписывается
	// и не расширяет фронт
	w := world.NewMemoryWorld()
	makeBasin(w, 4, 5, 12)
	wallX := 1
	for z := -4; z <= 4; z++ {
		for y := 6; y <= 10; y++ {
			w.SetBlock(vec.Vec3{X: wallX, Y: y, Z: z}, block.NewState(block.StoneBlockID), false)
		}
	}

	es := NewSession(w, UnlimitedBlocks)
	_, err := es.FillXZ(vec.Vec3{X: 0, Y: 8, Z: 0},
		NewSinglePattern(block.NewState(block.StationaryWaterBlockID)), 3, 1, false)
	require.NoError(t, err)

	assert.Equal(t, block.StoneBlockID, w.GetBlock(vec.Vec3{X: 1, Y: 8, Z: 0}).ID,
		"Стена не перезаписана")
	assert.True(t, w.GetBlock(vec.Vec3{X: 2, Y: 8, Z: 0}).IsAir(),
		"За стеной заливки нет")
	assert.Equal(t, block.StationaryWaterBlockID, w.GetBlock(vec.Vec3{X: -1, Y: 8, Z: 0}).ID)
}

func TestDrainArea(t *testing.T) {
	// Тест осушения: связная жидкость в радиусе заменяется воздухом
	w := world.NewMemoryWorld()
	water := block.NewState(block.StationaryWaterBlockID)
	for x := -2; x <= 2; x++ {
		for z := -2; z <= 2; z++ {
			w.SetBlock(vec.Vec3{X: x, Y: 5, Z: z}, water, false)
		}
	}
	// Несвязная лужа далеко за радиусом
	w.SetBlock(vec.Vec3{X: 40, Y: 5, Z: 40}, water, false)

	es := NewSession(w, UnlimitedBlocks)
	affected, err := es.DrainArea(vec.Vec3{X: 0, Y: 5, Z: 0}, 10)
	require.NoError(t, err)
	assert.Equal(t, 25, affected, "Вся связная жидкость осушена")

	assert.True(t, w.GetBlock(vec.Vec3{X: 2, Y: 5, Z: 2}).IsAir())
	assert.Equal(t, block.StationaryWaterBlockID, w.GetBlock(vec.Vec3{X: 40, Y: 5, Z: 40}).ID,
		"Несвязная жидкость не тронута")
}

func TestDrainArea_RespectsRadius(t *testing.T) {
	// Тест радиуса осушения: жидкость за сферой остаётся
	w := world.NewMemoryWorld()
	water := block.NewState(block.WaterBlockID)
	for x := 0; x <= 10; x++ {
		w.SetBlock(vec.Vec3{X: x, Y: 5, Z: 0}, water, false)
	}

	es := NewSession(w, UnlimitedBlocks)
	_, err := es.DrainArea(vec.Vec3{X: 0, Y: 5, Z: 0}, 4)
	require.NoError(t, err)

	assert.True(t, w.GetBlock(vec.Vec3{X: 4, Y: 5, Z: 0}).IsAir())
	assert.Equal(t, block.WaterBlockID, w.GetBlock(vec.Vec3{X: 10, Y: 5, Z: 0}).ID,
		"Жидкость за радиусом не осушается")
}

func TestFixLiquid(t *testing.T) {
	// Тест стабилизации жидкости: текущая вода и пустоты внутри
	// объёма становятся стоячей водой
	w := world.NewMemoryWorld()
	moving := block.NewState(block.WaterBlockID)
	for x := -2; x <= 2; x++ {
		w.SetBlock(vec.Vec3{X: x, Y: 5, Z: 0}, moving, false)
	}
	// Пузырь воздуха внутри объёма
	w.SetBlock(vec.Vec3{X: 0, Y: 5, Z: 0}, block.Air(), false)

	es := NewSession(w, UnlimitedBlocks)
	affected, err := es.FixLiquid(vec.Vec3{X: 0, Y: 5, Z: 0}, 10,
		block.WaterBlockID, block.StationaryWaterBlockID)
	require.NoError(t, err)
	assert.Greater(t, affected, 0)

	for x := -2; x <= 2; x++ {
		assert.Equal(t, block.StationaryWaterBlockID, w.GetBlock(vec.Vec3{X: x, Y: 5, Z: 0}).ID,
			"Колонка x=%d должна стать стоячей водой", x)
	}
}

func TestFixLiquid_FrontOutrunsRadius(t *testing.T) {
	// Тест границы: радиус проверяется после преобразования,
	// поэтому фронт выходит на один шаг за сферу
	w := world.NewMemoryWorld()
	moving := block.NewState(block.WaterBlockID)
	for x := 0; x <= 8; x++ {
		w.SetBlock(vec.Vec3{X: x, Y: 5, Z: 0}, moving, false)
	}

	es := NewSession(w, UnlimitedBlocks)
	_, err := es.FixLiquid(vec.Vec3{X: 0, Y: 5, Z: 0}, 3,
		block.WaterBlockID, block.StationaryWaterBlockID)
	require.NoError(t, err)

	assert.Equal(t, block.StationaryWaterBlockID, w.GetBlock(vec.Vec3{X: 3, Y: 5, Z: 0}).ID)
	assert.Equal(t, block.StationaryWaterBlockID, w.GetBlock(vec.Vec3{X: 4, Y: 5, Z: 0}).ID,
		"Один шаг за радиусом ещё преобразуется")
	assert.Equal(t, block.WaterBlockID, w.GetBlock(vec.Vec3{X: 5, Y: 5, Z: 0}).ID,
		"Дальше фронт не распространяется")
}
