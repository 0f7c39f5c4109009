package edit

import (
	"github.com/annel0/mmo-editor/internal/vec"
	"github.com/annel0/mmo-editor/internal/world/block"
)

// Mask ограничивает область действия записей сессии. Проверка идёт
// по видимому состоянию мира (с учётом отложенных очередей).
type Mask interface {
	Matches(es *Session, pos vec.Vec3) bool
}

// BlockMask пропускает запись, только если текущий блок в позиции
// входит в заданное множество (с поддержкой wildcard-data).
type BlockMask struct {
	set *block.StateSet
}

func NewBlockMask(set *block.StateSet) *BlockMask {
	return &BlockMask{set: set}
}

func (m *BlockMask) Matches(es *Session, pos vec.Vec3) bool {
	return m.set.Contains(es.GetBlock(pos))
}

// RegionMask пропускает записи только внутри региона
type RegionMask struct {
	region Region
}

func NewRegionMask(r Region) *RegionMask {
	return &RegionMask{region: r}
}

func (m *RegionMask) Matches(_ *Session, pos vec.Vec3) bool {
	return m.region.Contains(pos)
}
