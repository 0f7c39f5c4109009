package edit

import (
	"testing"

	"github.com/annel0/mmo-editor/internal/vec"
	"github.com/annel0/mmo-editor/internal/world"
	"github.com/annel0/mmo-editor/internal/world/block"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetBlocks_FillsRegion(t *testing.T) {
	// Тест заливки региона
	w := world.NewMemoryWorld()
	es := NewSession(w, UnlimitedBlocks)
	region := NewCuboidRegion(vec.Vec3{X: 0, Y: 0, Z: 0}, vec.Vec3{X: 2, Y: 2, Z: 2})

	affected, err := es.SetBlocks(region, NewSinglePattern(block.NewState(block.StoneBlockID)))
	require.NoError(t, err)
	assert.Equal(t, 27, affected, "Кубоид 3x3x3 содержит 27 вокселей")
	assert.Equal(t, block.StoneBlockID, w.GetBlock(vec.Vec3{X: 1, Y: 1, Z: 1}).ID)
}

func TestReplaceBlocks(t *testing.T) {
	// Тест замены: фильтр по множеству и замена всего непустого
	w := world.NewMemoryWorld()
	es := NewSession(w, UnlimitedBlocks)
	w.SetBlock(vec.Vec3{X: 0, Y: 0, Z: 0}, block.NewState(block.DirtBlockID), false)
	w.SetBlock(vec.Vec3{X: 1, Y: 0, Z: 0}, block.NewState(block.StoneBlockID), false)

	region := NewCuboidRegion(vec.Vec3{X: 0, Y: 0, Z: 0}, vec.Vec3{X: 2, Y: 0, Z: 0})
	sand := NewSinglePattern(block.NewState(block.SandBlockID))

	affected, err := es.ReplaceBlocks(region, block.NewTypeSet(block.DirtBlockID), sand)
	require.NoError(t, err)
	assert.Equal(t, 1, affected, "Заменена только земля")
	assert.Equal(t, block.SandBlockID, w.GetBlock(vec.Vec3{X: 0, Y: 0, Z: 0}).ID)
	assert.Equal(t, block.StoneBlockID, w.GetBlock(vec.Vec3{X: 1, Y: 0, Z: 0}).ID)
	assert.True(t, w.GetBlock(vec.Vec3{X: 2, Y: 0, Z: 0}).IsAir(), "Воздух не затронут")

	// filter=nil: заменяется всё непустое
	affected, err = es.ReplaceBlocks(region, nil, NewSinglePattern(block.NewState(block.GrassBlockID)))
	require.NoError(t, err)
	assert.Equal(t, 2, affected)
	assert.True(t, w.GetBlock(vec.Vec3{X: 2, Y: 0, Z: 0}).IsAir(), "Пустые воксели не заполняются")
}

func TestMoveCuboidRegion_Overlap(t *testing.T) {
	// Тест переноса с перекрытием: двухпроходная семантика не
	// затирает ещё не скопированные источники
	w := world.NewMemoryWorld()
	es := NewSession(w, UnlimitedBlocks)

	// Градиент: каждый столбец со своим типом
	types := []block.BlockID{block.StoneBlockID, block.DirtBlockID, block.SandBlockID}
	for i, id := range types {
		w.SetBlock(vec.Vec3{X: i, Y: 1, Z: 0}, block.NewState(id), false)
	}

	region := NewCuboidRegion(vec.Vec3{X: 0, Y: 1, Z: 0}, vec.Vec3{X: 2, Y: 1, Z: 0})
	// Сдвиг на 1 по X: целевой объём перекрывает источник в двух колонках
	affected, err := es.MoveCuboidRegion(region, vec.Vec3{X: 1}, 1, false, block.Air())
	require.NoError(t, err)
	assert.Equal(t, 3, affected)

	assert.True(t, w.GetBlock(vec.Vec3{X: 0, Y: 1, Z: 0}).IsAir(), "Освобождённый столбец пуст")
	assert.Equal(t, block.StoneBlockID, w.GetBlock(vec.Vec3{X: 1, Y: 1, Z: 0}).ID)
	assert.Equal(t, block.DirtBlockID, w.GetBlock(vec.Vec3{X: 2, Y: 1, Z: 0}).ID)
	assert.Equal(t, block.SandBlockID, w.GetBlock(vec.Vec3{X: 3, Y: 1, Z: 0}).ID)
}

func TestStackCuboidRegion(t *testing.T) {
	// Тест тиражирования: копии со сдвигом на габарит региона
	w := world.NewMemoryWorld()
	es := NewSession(w, UnlimitedBlocks)
	w.SetBlock(vec.Vec3{X: 0, Y: 1, Z: 0}, block.NewState(block.StoneBlockID), false)

	region := NewCuboidRegion(vec.Vec3{X: 0, Y: 1, Z: 0}, vec.Vec3{X: 1, Y: 1, Z: 1})
	affected, err := es.StackCuboidRegion(region, vec.Vec3{X: 1}, 2, false)
	require.NoError(t, err)
	assert.Equal(t, 2, affected, "Один непустой блок тиражирован дважды")

	assert.Equal(t, block.StoneBlockID, w.GetBlock(vec.Vec3{X: 2, Y: 1, Z: 0}).ID,
		"Первая копия со сдвигом на ширину региона")
	assert.Equal(t, block.StoneBlockID, w.GetBlock(vec.Vec3{X: 4, Y: 1, Z: 0}).ID,
		"Вторая копия со сдвигом на две ширины")
}

func TestMakeCuboidWallsAndFaces(t *testing.T) {
	// Тест стен и граней кубоида
	w := world.NewMemoryWorld()
	es := NewSession(w, UnlimitedBlocks)
	region := NewCuboidRegion(vec.Vec3{X: 0, Y: 10, Z: 0}, vec.Vec3{X: 4, Y: 14, Z: 4})
	stone := NewSinglePattern(block.NewState(block.StoneBlockID))

	_, err := es.MakeCuboidWalls(region, stone)
	require.NoError(t, err)
	assert.Equal(t, block.StoneBlockID, w.GetBlock(vec.Vec3{X: 0, Y: 12, Z: 2}).ID, "Стена по X")
	assert.Equal(t, block.StoneBlockID, w.GetBlock(vec.Vec3{X: 2, Y: 12, Z: 4}).ID, "Стена по Z")
	assert.True(t, w.GetBlock(vec.Vec3{X: 2, Y: 10, Z: 2}).IsAir(), "Пол стенами не строится")

	_, err = es.MakeCuboidFaces(region, stone)
	require.NoError(t, err)
	assert.Equal(t, block.StoneBlockID, w.GetBlock(vec.Vec3{X: 2, Y: 10, Z: 2}).ID, "Пол появился")
	assert.Equal(t, block.StoneBlockID, w.GetBlock(vec.Vec3{X: 2, Y: 14, Z: 2}).ID, "Потолок появился")
	assert.True(t, w.GetBlock(vec.Vec3{X: 2, Y: 12, Z: 2}).IsAir(), "Внутренность пуста")
}

func TestCenter(t *testing.T) {
	// Тест центра: при чётной стороне центр занимает два вокселя
	w := world.NewMemoryWorld()
	es := NewSession(w, UnlimitedBlocks)
	stone := NewSinglePattern(block.NewState(block.StoneBlockID))

	// Нечётные габариты: ровно один воксель
	odd := NewCuboidRegion(vec.Vec3{X: 0, Y: 0, Z: 0}, vec.Vec3{X: 2, Y: 2, Z: 2})
	affected, err := es.Center(odd, stone)
	require.NoError(t, err)
	assert.Equal(t, 1, affected)
	assert.Equal(t, block.StoneBlockID, w.GetBlock(vec.Vec3{X: 1, Y: 1, Z: 1}).ID)

	// Чётная сторона по X: два вокселя
	even := NewCuboidRegion(vec.Vec3{X: 10, Y: 0, Z: 0}, vec.Vec3{X: 13, Y: 2, Z: 2})
	affected, err = es.Center(even, stone)
	require.NoError(t, err)
	assert.Equal(t, 2, affected)
	assert.Equal(t, block.StoneBlockID, w.GetBlock(vec.Vec3{X: 11, Y: 1, Z: 1}).ID)
	assert.Equal(t, block.StoneBlockID, w.GetBlock(vec.Vec3{X: 12, Y: 1, Z: 1}).ID)
}

func TestOverlayCuboidBlocks(t *testing.T) {
	// Тест накрытия поверхности: узор ложится над первым
	// непроходимым блоком каждой колонки
	w := world.NewMemoryWorld()
	es := NewSession(w, UnlimitedBlocks)
	w.SetBlock(vec.Vec3{X: 0, Y: 5, Z: 0}, block.NewState(block.StoneBlockID), false)
	w.SetBlock(vec.Vec3{X: 1, Y: 3, Z: 0}, block.NewState(block.StoneBlockID), false)

	region := NewCuboidRegion(vec.Vec3{X: 0, Y: 0, Z: 0}, vec.Vec3{X: 1, Y: 10, Z: 0})
	affected, err := es.OverlayCuboidBlocks(region, NewSinglePattern(block.NewState(block.GrassBlockID)))
	require.NoError(t, err)
	assert.Equal(t, 2, affected)
	assert.Equal(t, block.GrassBlockID, w.GetBlock(vec.Vec3{X: 0, Y: 6, Z: 0}).ID)
	assert.Equal(t, block.GrassBlockID, w.GetBlock(vec.Vec3{X: 1, Y: 4, Z: 0}).ID)
}

func TestNaturalize(t *testing.T) {
	// Тест натурализации: трава, три слоя земли, ниже камень
	w := world.NewMemoryWorld()
	es := NewSession(w, UnlimitedBlocks)
	for y := 0; y <= 8; y++ {
		w.SetBlock(vec.Vec3{X: 0, Y: y, Z: 0}, block.NewState(block.StoneBlockID), false)
	}

	region := NewCuboidRegion(vec.Vec3{X: 0, Y: 0, Z: 0}, vec.Vec3{X: 0, Y: 8, Z: 0})
	_, err := es.Naturalize(region)
	require.NoError(t, err)

	assert.Equal(t, block.GrassBlockID, w.GetBlock(vec.Vec3{X: 0, Y: 8, Z: 0}).ID, "Верхний слой — трава")
	for y := 5; y <= 7; y++ {
		assert.Equal(t, block.DirtBlockID, w.GetBlock(vec.Vec3{X: 0, Y: y, Z: 0}).ID,
			"Слой %d — земля", y)
	}
	for y := 0; y <= 4; y++ {
		assert.Equal(t, block.StoneBlockID, w.GetBlock(vec.Vec3{X: 0, Y: y, Z: 0}).ID,
			"Слой %d — камень", y)
	}
}

func TestRemoveAboveBelowNear(t *testing.T) {
	// Тест зачисток вокруг позиции
	w := world.NewMemoryWorld()
	es := NewSession(w, UnlimitedBlocks)
	pos := vec.Vec3{X: 10, Y: 10, Z: 10}

	w.SetBlock(pos.AddXYZ(0, 2, 0), block.NewState(block.StoneBlockID), false)
	w.SetBlock(pos.AddXYZ(1, 0, 1), block.NewState(block.SandBlockID), false)
	w.SetBlock(pos.AddXYZ(0, -2, 0), block.NewState(block.StoneBlockID), false)

	// Зачистка вверх включает уровень самой позиции
	affected, err := es.RemoveAbove(pos, 2, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, affected)
	assert.True(t, w.GetBlock(pos.AddXYZ(0, 2, 0)).IsAir())
	assert.True(t, w.GetBlock(pos.AddXYZ(1, 0, 1)).IsAir())
	assert.Equal(t, block.StoneBlockID, w.GetBlock(pos.AddXYZ(0, -2, 0)).ID, "Низ не тронут")

	affected, err = es.RemoveBelow(pos, 2, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, affected)
	assert.True(t, w.GetBlock(pos.AddXYZ(0, -2, 0)).IsAir())

	w.SetBlock(pos.AddXYZ(1, 1, 0), block.NewState(block.SandBlockID), false)
	w.SetBlock(pos.AddXYZ(-1, 1, 0), block.NewState(block.StoneBlockID), false)
	affected, err = es.RemoveNear(pos, block.SandBlockID, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, affected, "Удаляется только указанный тип")
	assert.True(t, w.GetBlock(pos.AddXYZ(1, 1, 0)).IsAir())
	assert.Equal(t, block.StoneBlockID, w.GetBlock(pos.AddXYZ(-1, 1, 0)).ID)
}

func TestGreenThawSnow(t *testing.T) {
	// Тест сезонных операций: озеленение, таяние, снегопад
	w := world.NewMemoryWorld()
	es := NewSession(w, UnlimitedBlocks)
	pos := vec.Vec3{X: 0, Y: 10, Z: 0}

	// Колонка земли под воздухом
	w.SetBlock(vec.Vec3{X: 0, Y: 5, Z: 0}, block.NewState(block.DirtBlockID), false)
	affected, err := es.Green(pos, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, affected)
	assert.Equal(t, block.GrassBlockID, w.GetBlock(vec.Vec3{X: 0, Y: 5, Z: 0}).ID,
		"Верхняя земля озеленена")

	// Лёд и снег тают
	w.SetBlock(vec.Vec3{X: 1, Y: 5, Z: 0}, block.NewState(block.IceBlockID), false)
	w.SetBlock(vec.Vec3{X: 2, Y: 5, Z: 0}, block.NewState(block.SnowBlockID), false)
	affected, err = es.Thaw(pos, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, affected)
	assert.Equal(t, block.StationaryWaterBlockID, w.GetBlock(vec.Vec3{X: 1, Y: 5, Z: 0}).ID,
		"Лёд стал стоячей водой")
	assert.True(t, w.GetBlock(vec.Vec3{X: 2, Y: 5, Z: 0}).IsAir(), "Снег растаял")

	// Снегопад: вода замерзает, поверх травы ложится снег
	affected, err = es.SimulateSnow(pos, 2)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, affected, 1)
	assert.Equal(t, block.SnowBlockID, w.GetBlock(vec.Vec3{X: 0, Y: 6, Z: 0}).ID,
		"Снег лёг поверх травы")
}

func TestHighestTerrainBlock(t *testing.T) {
	// Тест поиска верхнего блока рельефа
	w := world.NewMemoryWorld()
	es := NewSession(w, UnlimitedBlocks)

	w.SetBlock(vec.Vec3{X: 0, Y: 5, Z: 0}, block.NewState(block.StoneBlockID), false)
	w.SetBlock(vec.Vec3{X: 0, Y: 8, Z: 0}, block.NewState(block.TorchBlockID), false)

	assert.Equal(t, 5, es.HighestTerrainBlock(0, 0, 0, 20, false),
		"Факел проходим и не считается рельефом")
	assert.Equal(t, 5, es.HighestTerrainBlock(0, 0, 0, 20, true))
	assert.Equal(t, 0, es.HighestTerrainBlock(5, 5, 0, 20, true),
		"Пустая колонка возвращает minY")
}
