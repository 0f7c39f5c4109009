package world

import (
	"github.com/annel0/mmo-editor/internal/vec"
	"github.com/annel0/mmo-editor/internal/world/block"
)

// ChunkSize размер чанка по горизонтали
const ChunkSize = 16

// Chunk представляет вертикальный столб мира размером 16x16 блоков.
// Колонки блоков выделяются при создании чанка на всю высоту мира.
type Chunk struct {
	Coords vec.Vec2 // Координаты чанка в мире

	// Blocks[x][z] — колонка состояний от y=0 до высоты мира
	Blocks [ChunkSize][ChunkSize][]block.State

	ChangeCounter int // Счетчик изменений
}

// NewChunk создаёт новый чанк с указанными координатами и высотой
func NewChunk(coords vec.Vec2, height int) *Chunk {
	c := &Chunk{Coords: coords}
	for x := 0; x < ChunkSize; x++ {
		for z := 0; z < ChunkSize; z++ {
			c.Blocks[x][z] = make([]block.State, height)
		}
	}
	return c
}

// GetBlock возвращает состояние блока по локальным координатам
func (c *Chunk) GetBlock(local vec.Vec2, y int) block.State {
	column := c.Blocks[local.X][local.Y]
	if y < 0 || y >= len(column) {
		return block.Air()
	}
	return column[y]
}

// SetBlock устанавливает блок по локальным координатам.
// Возвращает false, если высота вне колонки.
func (c *Chunk) SetBlock(local vec.Vec2, y int, s block.State) bool {
	column := c.Blocks[local.X][local.Y]
	if y < 0 || y >= len(column) {
		return false
	}
	column[y] = s
	c.ChangeCounter++
	return true
}

// HasChanges возвращает true, если в чанке есть изменения
func (c *Chunk) HasChanges() bool {
	return c.ChangeCounter > 0
}

// ClearChanges очищает счётчик изменений
func (c *Chunk) ClearChanges() {
	c.ChangeCounter = 0
}
