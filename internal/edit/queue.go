package edit

import (
	"context"

	"github.com/annel0/mmo-editor/internal/eventbus"
	"github.com/annel0/mmo-editor/internal/logging"
	"github.com/annel0/mmo-editor/internal/vec"
	"github.com/annel0/mmo-editor/internal/world/block"
)

// SmartSetBlock распределяет запись по очередям отложенной установки.
// Вне отложенного режима — немедленная запись через шлюз.
// Возвращает, изменится ли видимое состояние после сброса очередей.
func (es *Session) SmartSetBlock(pos vec.Vec3, s block.State) bool {
	if es.queued {
		switch {
		case block.ShouldPlaceLast(s.ID):
			// Съёмные декорации ставятся после основной очереди,
			// когда опорные блоки уже на месте
			es.queueLast.Put(pos, s)
			return !es.GetBlock(pos).Equals(s)

		case block.ShouldPlaceFinal(s.ID):
			// Зависимые конструкции — в самом конце, с учётом
			// порядка опор внутри яруса
			es.queueFinal.Put(pos, s)
			return !es.GetBlock(pos).Equals(s)

		case block.ShouldPlaceLast(es.GetBlock(pos).ID):
			// На месте стоит съёмная декорация: снимаем её сразу,
			// иначе установка основного блока уронит её дропом
			es.RawSetBlock(pos, block.Air())

		default:
			es.queueAfter.Put(pos, s)
			return !es.GetBlock(pos).Equals(s)
		}
	}
	return es.RawSetBlock(pos, s)
}

// FlushQueue применяет отложенные очереди: основной ярус, затем
// декорации, затем зависимые конструкции в порядке опор. Если при
// сбросе основного яруса зафиксирована нехватка блоков в запасе,
// остальные ярусы пропускаются — декорации без опор не ставятся.
func (es *Session) FlushQueue() {
	if !es.queued {
		return
	}

	// Чанки, затронутые быстрыми записями; восстанавливаются пакетно
	dirty := make(map[vec.Vec2]struct{})
	mark := func(pos vec.Vec3) {
		if es.fastMode {
			dirty[pos.ToChunkCoords()] = struct{}{}
		}
	}

	applied := 0
	es.queueAfter.Each(func(pos vec.Vec3, s block.State) {
		if es.RawSetBlock(pos, s) {
			applied++
		}
		mark(pos)
	})

	if es.blockBag == nil || len(es.missing) == 0 {
		es.queueLast.Each(func(pos vec.Vec3, s block.State) {
			if es.RawSetBlock(pos, s) {
				applied++
			}
			mark(pos)
		})
		applied += es.flushFinal(mark)
	} else {
		logging.Warn("Сброс очереди: нехватка %d типов блоков, ярусы декораций пропущены", len(es.missing))
	}

	if es.fastMode && len(dirty) > 0 {
		es.world.FixAfterFastMode(dirty)
	}

	es.queueAfter.Clear()
	es.queueLast.Clear()
	es.queueFinal.Clear()

	metricQueueFlushes.Inc()
	_ = eventbus.Publish(context.Background(),
		eventbus.NewEnvelope(eventbus.EventQueueFlushed, "edit-session", es.id.String(), applied))
}

// flushFinal применяет финальный ярус, разворачивая цепочки опор:
// каждый блок может крепиться к соседней координате; если опора тоже
// стоит в очереди, она ставится раньше зависимого блока.
func (es *Session) flushFinal(mark func(vec.Vec3)) int {
	unresolved := make(map[vec.Vec3]block.State, es.queueFinal.Len())
	order := make([]vec.Vec3, 0, es.queueFinal.Len())
	es.queueFinal.Each(func(pos vec.Vec3, s block.State) {
		if _, seen := unresolved[pos]; !seen {
			order = append(order, pos)
		}
		unresolved[pos] = s
	})

	applied := 0
	for _, start := range order {
		if _, pending := unresolved[start]; !pending {
			continue
		}

		// Цепочка в порядке установки: опоры в начале, зависимые в конце
		walked := make([]vec.Vec3, 0, 4)
		cur := start
		for {
			walked = append([]vec.Vec3{cur}, walked...)
			s := unresolved[cur]

			// Нижняя половинка двери тянет верхнюю вперёд себя:
			// половинки ставятся одной связкой
			if block.HasPairedHalves(s.ID) && s.Data&block.DoorUpperHalfBit == 0 {
				upper := cur.AddXYZ(0, 1, 0)
				if _, pending := unresolved[upper]; pending && !containsVec(walked, upper) {
					walked = append([]vec.Vec3{upper}, walked...)
				}
			}

			off, attached := block.Attachment(s.ID, s.Data)
			if !attached {
				break
			}
			cur = cur.Add(off)
			if _, pending := unresolved[cur]; !pending {
				// Опора вне очереди — уже стоит в мире
				break
			}
			if containsVec(walked, cur) {
				// Цикл опор: корректного порядка не существует,
				// ставим как есть
				break
			}
		}

		for _, pos := range walked {
			s, pending := unresolved[pos]
			if !pending {
				continue
			}
			if es.RawSetBlock(pos, s) {
				applied++
			}
			mark(pos)
			delete(unresolved, pos)
		}
	}
	return applied
}

func containsVec(list []vec.Vec3, pos vec.Vec3) bool {
	for _, v := range list {
		if v.Equals(pos) {
			return true
		}
	}
	return false
}
