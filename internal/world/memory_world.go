package world

import (
	"sync"

	"github.com/annel0/mmo-editor/internal/logging"
	"github.com/annel0/mmo-editor/internal/vec"
	"github.com/annel0/mmo-editor/internal/world/block"
)

// DefaultWorldHeight высота мира по умолчанию
const DefaultWorldHeight = 256

// MemoryWorld хранит мир целиком в памяти, чанки создаются лениво.
// Используется демо-утилитой и тестами; контракт World при этом
// полностью соблюдается, включая fast mode и контейнеры.
type MemoryWorld struct {
	mu     sync.RWMutex
	chunks map[vec.Vec2]*Chunk
	height int

	// Содержимое блоков-контейнеров
	containers map[vec.Vec3][]block.State

	// Счётчики для наблюдения за поведением редактора
	notifyCount int // Установки с уведомлением соседей
	fastCount   int // Установки в fast mode
	fixedChunks int // Чанки, восстановленные после fast mode
}

// NewMemoryWorld создаёт пустой мир стандартной высоты
func NewMemoryWorld() *MemoryWorld {
	return NewMemoryWorldWithHeight(DefaultWorldHeight)
}

// NewMemoryWorldWithHeight создаёт пустой мир указанной высоты
func NewMemoryWorldWithHeight(height int) *MemoryWorld {
	return &MemoryWorld{
		chunks:     make(map[vec.Vec2]*Chunk),
		containers: make(map[vec.Vec3][]block.State),
		height:     height,
	}
}

// MaxY возвращает максимальную допустимую высоту блока
func (w *MemoryWorld) MaxY() int {
	return w.height - 1
}

// getOrCreateChunk возвращает чанк, создавая его при необходимости
func (w *MemoryWorld) getOrCreateChunk(coords vec.Vec2) *Chunk {
	w.mu.RLock()
	chunk, exists := w.chunks[coords]
	w.mu.RUnlock()
	if exists {
		return chunk
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	// Проверяем еще раз на случай гонки
	if chunk, exists = w.chunks[coords]; exists {
		return chunk
	}

	chunk = NewChunk(coords, w.height)
	w.chunks[coords] = chunk
	return chunk
}

// GetBlock возвращает состояние блока в указанной позиции
func (w *MemoryWorld) GetBlock(pos vec.Vec3) block.State {
	if pos.Y < 0 || pos.Y > w.MaxY() {
		return block.Air()
	}
	chunk := w.getOrCreateChunk(pos.ToChunkCoords())
	return chunk.GetBlock(pos.ToVec2().LocalInChunk(), pos.Y)
}

// SetBlock устанавливает блок с уведомлением соседей
func (w *MemoryWorld) SetBlock(pos vec.Vec3, s block.State, notifyAdjacent bool) bool {
	changed := w.setBlock(pos, s)
	if changed && notifyAdjacent {
		w.mu.Lock()
		w.notifyCount++
		w.mu.Unlock()
	}
	return changed
}

// SetBlockFast устанавливает блок без уведомлений движка
func (w *MemoryWorld) SetBlockFast(pos vec.Vec3, s block.State) bool {
	changed := w.setBlock(pos, s)
	if changed {
		w.mu.Lock()
		w.fastCount++
		w.mu.Unlock()
	}
	return changed
}

func (w *MemoryWorld) setBlock(pos vec.Vec3, s block.State) bool {
	if pos.Y < 0 || pos.Y > w.MaxY() {
		return false
	}
	chunk := w.getOrCreateChunk(pos.ToChunkCoords())
	local := pos.ToVec2().LocalInChunk()

	old := chunk.GetBlock(local, pos.Y)
	if !chunk.SetBlock(local, pos.Y, s) {
		return false
	}
	return !old.Equals(s)
}

// IsValidBlockType проверяет тип по регистру блоков
func (w *MemoryWorld) IsValidBlockType(id block.BlockID) bool {
	return block.IsValidBlockID(id)
}

// CheckLoadedChunk гарантирует, что чанк с указанным блоком загружен
func (w *MemoryWorld) CheckLoadedChunk(pos vec.Vec3) {
	w.getOrCreateChunk(pos.ToChunkCoords())
}

// ClearContainerContents очищает инвентарь блока-контейнера
func (w *MemoryWorld) ClearContainerContents(pos vec.Vec3) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.containers, pos)
}

// SetContainerContents задаёт инвентарь контейнера (для тестов и демо)
func (w *MemoryWorld) SetContainerContents(pos vec.Vec3, contents []block.State) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.containers[pos] = contents
}

// ContainerContents возвращает инвентарь контейнера
func (w *MemoryWorld) ContainerContents(pos vec.Vec3) []block.State {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.containers[pos]
}

// FixAfterFastMode пакетно восстанавливает чанки после fast mode
func (w *MemoryWorld) FixAfterFastMode(chunks map[vec.Vec2]struct{}) {
	w.mu.Lock()
	w.fixedChunks += len(chunks)
	w.mu.Unlock()
	logging.Debug("FixAfterFastMode: восстановлено %d чанков", len(chunks))
}

// NotifyCount возвращает число установок с уведомлением соседей
func (w *MemoryWorld) NotifyCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.notifyCount
}

// FastCount возвращает число установок в fast mode
func (w *MemoryWorld) FastCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.fastCount
}

// FixedChunkCount возвращает число чанков, восстановленных после fast mode
func (w *MemoryWorld) FixedChunkCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.fixedChunks
}

// LoadedChunkCount возвращает число загруженных чанков
func (w *MemoryWorld) LoadedChunkCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.chunks)
}
