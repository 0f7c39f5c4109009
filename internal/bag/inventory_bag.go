package bag

import (
	"github.com/annel0/mmo-editor/internal/world/block"
)

// InventoryBag хранит конечный запас блоков по типам в памяти.
// Доступ не синхронизирован: bag принадлежит одной сессии.
type InventoryBag struct {
	counts map[block.BlockID]int

	// Типы, которые нельзя ставить из этого источника вовсе
	unplaceable map[block.BlockID]struct{}
}

// NewInventoryBag создаёт пустой запас
func NewInventoryBag() *InventoryBag {
	return &InventoryBag{
		counts:      make(map[block.BlockID]int),
		unplaceable: make(map[block.BlockID]struct{}),
	}
}

// AddBlock пополняет запас указанного типа
func (b *InventoryBag) AddBlock(id block.BlockID, count int) {
	b.counts[id] += count
}

// MarkUnplaceable запрещает установку блоков указанного типа
func (b *InventoryBag) MarkUnplaceable(id block.BlockID) {
	b.unplaceable[id] = struct{}{}
}

// Count возвращает остаток запаса по типу
func (b *InventoryBag) Count(id block.BlockID) int {
	return b.counts[id]
}

// FetchPlacedBlock списывает один блок указанного типа
func (b *InventoryBag) FetchPlacedBlock(id block.BlockID, _ int16) error {
	if _, banned := b.unplaceable[id]; banned {
		return ErrUnplaceableBlock
	}
	if b.counts[id] <= 0 {
		return ErrBagEmpty
	}
	b.counts[id]--
	return nil
}

// StoreDroppedBlock возвращает заменённый блок в запас
func (b *InventoryBag) StoreDroppedBlock(id block.BlockID, _ int16) error {
	if _, banned := b.unplaceable[id]; banned {
		return ErrUnplaceableBlock
	}
	b.counts[id]++
	return nil
}
