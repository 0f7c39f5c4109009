package edit

import (
	"sort"

	"github.com/annel0/mmo-editor/internal/vec"
	"github.com/annel0/mmo-editor/internal/world/block"
)

// TypeCount — число вокселей одного типа в регионе
type TypeCount struct {
	ID    block.BlockID
	Count int
}

// StateCount — число вокселей одного состояния (тип + data) в регионе
type StateCount struct {
	State block.State
	Count int
}

// CountBlocks считает воксели региона, входящие в множество.
// Элементы с WildcardData совпадают с любым data-вариантом типа.
func (es *Session) CountBlocks(region Region, set *block.StateSet) int {
	count := 0
	_ = region.ForEach(func(pos vec.Vec3) error {
		if set.Contains(es.GetBlock(pos)) {
			count++
		}
		return nil
	})
	return count
}

// BlockDistribution возвращает распределение типов блоков региона,
// отсортированное по возрастанию количества
func (es *Session) BlockDistribution(region Region) []TypeCount {
	counts := make(map[block.BlockID]int)
	_ = region.ForEach(func(pos vec.Vec3) error {
		counts[es.GetBlock(pos).ID]++
		return nil
	})

	result := make([]TypeCount, 0, len(counts))
	for id, n := range counts {
		result = append(result, TypeCount{ID: id, Count: n})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count < result[j].Count
		}
		return result[i].ID < result[j].ID
	})
	return result
}

// BlockDistributionWithData возвращает распределение состояний
// (тип + data-вариант), отсортированное по возрастанию количества
func (es *Session) BlockDistributionWithData(region Region) []StateCount {
	counts := make(map[block.State]int)
	_ = region.ForEach(func(pos vec.Vec3) error {
		counts[es.GetBlock(pos)]++
		return nil
	})

	result := make([]StateCount, 0, len(counts))
	for s, n := range counts {
		result = append(result, StateCount{State: s, Count: n})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count < result[j].Count
		}
		if result[i].State.ID != result[j].State.ID {
			return result[i].State.ID < result[j].State.ID
		}
		return result[i].State.Data < result[j].State.Data
	})
	return result
}
