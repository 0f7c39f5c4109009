package world

import (
	"github.com/annel0/mmo-editor/internal/vec"
	"github.com/annel0/mmo-editor/internal/world/block"
)

// World определяет контракт живого мира, через который редактор
// читает и изменяет блоки. Реализация может блокироваться
// (например, на загрузке чанка) — для редактора это непрозрачная
// стоимость коллаборатора.
type World interface {
	// MaxY возвращает максимальную допустимую высоту блока
	MaxY() int

	// GetBlock возвращает состояние блока в указанной позиции
	GetBlock(pos vec.Vec3) block.State

	// SetBlock устанавливает блок; notifyAdjacent управляет уведомлением
	// соседей движком. Возвращает, изменилось ли видимое состояние.
	SetBlock(pos vec.Vec3, s block.State, notifyAdjacent bool) bool

	// SetBlockFast устанавливает блок без уведомлений движка (fast mode)
	SetBlockFast(pos vec.Vec3, s block.State) bool

	// IsValidBlockType проверяет, допустим ли тип блока в этом мире
	IsValidBlockType(id block.BlockID) bool

	// CheckLoadedChunk гарантирует, что чанк с указанным блоком загружен
	CheckLoadedChunk(pos vec.Vec3)

	// ClearContainerContents очищает инвентарь блока-контейнера
	ClearContainerContents(pos vec.Vec3)

	// FixAfterFastMode пакетно восстанавливает чанки, затронутые
	// установками в fast mode (пересчёт освещения, рассылка клиентам)
	FixAfterFastMode(chunks map[vec.Vec2]struct{})
}
