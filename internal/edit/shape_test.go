package edit

import (
	"testing"

	"github.com/annel0/mmo-editor/internal/vec"
	"github.com/annel0/mmo-editor/internal/world"
	"github.com/annel0/mmo-editor/internal/world/block"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeShape_ScalarFormula(t *testing.T) {
	// Тест формулы-предиката: единичный шар в нормализованных
	// координатах
	w := world.NewMemoryWorld()
	es := NewSession(w, UnlimitedBlocks)

	region := NewCuboidRegion(vec.Vec3{X: -5, Y: 45, Z: -5}, vec.Vec3{X: 5, Y: 55, Z: 5})
	zero := vec.Vec3Float{X: 0, Y: 50, Z: 0}
	unit := vec.Vec3Float{X: 5, Y: 5, Z: 5}

	affected, err := es.MakeShape(region, zero, unit,
		NewSinglePattern(block.NewState(block.StoneBlockID)),
		"x*x + y*y + z*z <= 1", false)
	require.NoError(t, err)
	assert.Greater(t, affected, 0)

	assert.Equal(t, block.StoneBlockID, w.GetBlock(vec.Vec3{X: 0, Y: 50, Z: 0}).ID, "Центр внутри")
	assert.Equal(t, block.StoneBlockID, w.GetBlock(vec.Vec3{X: 5, Y: 50, Z: 0}).ID,
		"Точка на нормализованной единичной сфере входит")
	assert.True(t, w.GetBlock(vec.Vec3{X: 5, Y: 53, Z: 0}).IsAir(), "Угол региона снаружи")
}

func TestMakeShape_VectorFormula(t *testing.T) {
	// Тест векторного результата: [sel, type, data] переопределяет
	// материал по месту
	w := world.NewMemoryWorld()
	es := NewSession(w, UnlimitedBlocks)

	region := NewCuboidRegion(vec.Vec3{X: 0, Y: 10, Z: 0}, vec.Vec3{X: 3, Y: 10, Z: 0})
	zero := vec.Vec3Float{X: 0, Y: 10, Z: 0}
	unit := vec.Vec3Float{X: 1, Y: 1, Z: 1}

	// Чётные X — камень, нечётные — песок
	formula := "x == 0 || x == 2 ? [1, 1, 0] : [1, 4, 0]"
	affected, err := es.MakeShape(region, zero, unit,
		NewSinglePattern(block.NewState(block.DirtBlockID)), formula, false)
	require.NoError(t, err)
	assert.Equal(t, 4, affected)

	assert.Equal(t, block.StoneBlockID, w.GetBlock(vec.Vec3{X: 0, Y: 10, Z: 0}).ID)
	assert.Equal(t, block.SandBlockID, w.GetBlock(vec.Vec3{X: 1, Y: 10, Z: 0}).ID)
	assert.Equal(t, block.StoneBlockID, w.GetBlock(vec.Vec3{X: 2, Y: 10, Z: 0}).ID)
}

func TestMakeShape_VectorExcludes(t *testing.T) {
	// Тест исключения через векторный sel <= 0
	w := world.NewMemoryWorld()
	es := NewSession(w, UnlimitedBlocks)

	region := NewCuboidRegion(vec.Vec3{X: 0, Y: 10, Z: 0}, vec.Vec3{X: 1, Y: 10, Z: 0})
	formula := "x == 0 ? [1, 1, 0] : [0, 1, 0]"
	affected, err := es.MakeShape(region, vec.Vec3Float{Y: 10}, vec.Vec3Float{X: 1, Y: 1, Z: 1},
		NewSinglePattern(block.NewState(block.DirtBlockID)), formula, false)
	require.NoError(t, err)
	assert.Equal(t, 1, affected)
	assert.True(t, w.GetBlock(vec.Vec3{X: 1, Y: 10, Z: 0}).IsAir(), "sel=0 исключает воксель")
}

func TestMakeShape_Hollow(t *testing.T) {
	// Тест полого режима: внутренние воксели формы пропускаются
	w := world.NewMemoryWorld()
	es := NewSession(w, UnlimitedBlocks)

	region := NewCuboidRegion(vec.Vec3{X: 0, Y: 10, Z: 0}, vec.Vec3{X: 6, Y: 16, Z: 6})
	zero := vec.Vec3Float{X: 3, Y: 13, Z: 3}
	unit := vec.Vec3Float{X: 1, Y: 1, Z: 1}

	// Куб 5x5x5 в нормализованных координатах
	_, err := es.MakeShape(region, zero, unit,
		NewSinglePattern(block.NewState(block.StoneBlockID)),
		"abs(x) <= 2 && abs(y) <= 2 && abs(z) <= 2", true)
	require.NoError(t, err)

	assert.True(t, w.GetBlock(vec.Vec3{X: 3, Y: 13, Z: 3}).IsAir(), "Центр полой формы пуст")
	assert.Equal(t, block.StoneBlockID, w.GetBlock(vec.Vec3{X: 1, Y: 13, Z: 3}).ID,
		"Грань формы на месте")
}

func TestMakeShape_FaultExcludesVoxel(t *testing.T) {
	// Тест ошибки вычисления: деление на ноль исключает воксель,
	// операция продолжается
	w := world.NewMemoryWorld()
	es := NewSession(w, UnlimitedBlocks)

	region := NewCuboidRegion(vec.Vec3{X: 0, Y: 10, Z: 0}, vec.Vec3{X: 2, Y: 10, Z: 0})
	// Индекс выходит за границы при x=2; остальные воксели дают 1
	affected, err := es.MakeShape(region, vec.Vec3Float{Y: 10}, vec.Vec3Float{X: 1, Y: 1, Z: 1},
		NewSinglePattern(block.NewState(block.StoneBlockID)), "[1, 1][int(x)]", false)
	require.NoError(t, err, "Ошибка вычисления не прерывает операцию")
	assert.Equal(t, 2, affected)
	assert.True(t, w.GetBlock(vec.Vec3{X: 2, Y: 10, Z: 0}).IsAir(),
		"Сбойный воксель исключён")
}

func TestMakeShape_CompileError(t *testing.T) {
	// Тест синтаксической ошибки: операция не начинается
	w := world.NewMemoryWorld()
	es := NewSession(w, UnlimitedBlocks)

	region := NewCuboidRegion(vec.Vec3{X: 0, Y: 10, Z: 0}, vec.Vec3{X: 1, Y: 10, Z: 0})
	_, err := es.MakeShape(region, vec.Vec3Float{}, vec.Vec3Float{X: 1, Y: 1, Z: 1},
		NewSinglePattern(block.NewState(block.StoneBlockID)), "x +* y", false)
	assert.Error(t, err, "Некомпилируемая формула должна вернуть ошибку")
	assert.Equal(t, 0, es.Size(), "Мир не тронут")
}

func TestDeformRegion_Shift(t *testing.T) {
	// Тест деформации-сдвига: формула [x, y-1, z] читает материал
	// на воксель ниже — колонна поднимается на один блок
	w := world.NewMemoryWorld()
	es := NewSession(w, UnlimitedBlocks)

	w.SetBlock(vec.Vec3{X: 0, Y: 10, Z: 0}, block.NewState(block.StoneBlockID), false)

	region := NewCuboidRegion(vec.Vec3{X: 0, Y: 10, Z: 0}, vec.Vec3{X: 0, Y: 12, Z: 0})
	zero := vec.Vec3Float{X: 0, Y: 10, Z: 0}
	unit := vec.Vec3Float{X: 1, Y: 1, Z: 1}

	affected, err := es.DeformRegion(region, zero, unit, "[x, y - 1, z]")
	require.NoError(t, err)
	assert.Greater(t, affected, 0)

	assert.Equal(t, block.StoneBlockID, w.GetBlock(vec.Vec3{X: 0, Y: 11, Z: 0}).ID,
		"Камень поднялся на воксель выше")
	assert.True(t, w.GetBlock(vec.Vec3{X: 0, Y: 10, Z: 0}).IsAir(),
		"Источник ниже региона пуст — нижний воксель стал воздухом")
	assert.True(t, w.GetBlock(vec.Vec3{X: 0, Y: 12, Z: 0}).IsAir())
}

func TestDeformRegion_ReadsPreEditState(t *testing.T) {
	// Тест двухпроходности: перестановка двух вокселей местами
	// не теряет ни одного материала
	w := world.NewMemoryWorld()
	es := NewSession(w, UnlimitedBlocks)

	w.SetBlock(vec.Vec3{X: 0, Y: 10, Z: 0}, block.NewState(block.StoneBlockID), false)
	w.SetBlock(vec.Vec3{X: 1, Y: 10, Z: 0}, block.NewState(block.SandBlockID), false)

	region := NewCuboidRegion(vec.Vec3{X: 0, Y: 10, Z: 0}, vec.Vec3{X: 1, Y: 10, Z: 0})
	zero := vec.Vec3Float{X: 0, Y: 10, Z: 0}
	unit := vec.Vec3Float{X: 1, Y: 1, Z: 1}

	// Отражение по X вокруг середины отрезка [0,1]
	_, err := es.DeformRegion(region, zero, unit, "[1 - x, y, z]")
	require.NoError(t, err)

	assert.Equal(t, block.SandBlockID, w.GetBlock(vec.Vec3{X: 0, Y: 10, Z: 0}).ID,
		"Песок переехал влево")
	assert.Equal(t, block.StoneBlockID, w.GetBlock(vec.Vec3{X: 1, Y: 10, Z: 0}).ID,
		"Камень переехал вправо")
}
