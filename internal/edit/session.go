package edit

import (
	"context"
	"errors"

	"github.com/annel0/mmo-editor/internal/bag"
	"github.com/annel0/mmo-editor/internal/eventbus"
	"github.com/annel0/mmo-editor/internal/logging"
	"github.com/annel0/mmo-editor/internal/vec"
	"github.com/annel0/mmo-editor/internal/world"
	"github.com/annel0/mmo-editor/internal/world/block"
	"github.com/google/uuid"
)

// UnlimitedBlocks снимает лимит изменений сессии
const UnlimitedBlocks = -1

// Session — транзакционный буфер редактирования поверх живого мира.
// Все записи проходят через единый шлюз (RawSetBlock) и журналируются
// для отката/повтора. Сессия не потокобезопасна: один редактор — одна
// горутина, как и у остальных изменяющих операций мира.
type Session struct {
	world world.World
	id    uuid.UUID

	// original — состояния «до» (первая запись по координате выигрывает),
	// его размер — авторитетный счётчик изменений для лимита.
	original *changeLog
	// current — полная хронология записей «после» для повтора
	current *changeLog

	// Отложенные очереди трёх ярусов; внутри яруса повторная запись
	// по координате заменяет прежнюю на месте.
	queueAfter *changeLog // Обычные блоки
	queueLast  *changeLog // Съёмные декорации (факелы, снег)
	queueFinal *changeLog // Зависимые конструкции (двери, таблички)

	maxBlocks int
	queued    bool
	fastMode  bool

	blockBag bag.BlockBag
	missing  map[block.BlockID]int

	mask Mask
}

// NewSession создаёт сессию с лимитом изменений.
// maxBlocks: неотрицательное число или UnlimitedBlocks.
func NewSession(w world.World, maxBlocks int) *Session {
	if maxBlocks < UnlimitedBlocks {
		logging.Warn("Некорректный лимит изменений %d, лимит снят", maxBlocks)
		maxBlocks = UnlimitedBlocks
	}
	es := &Session{
		world:      w,
		id:         uuid.New(),
		original:   newChangeLog(keepFirst),
		current:    newChangeLog(keepAll),
		queueAfter: newChangeLog(overwrite),
		queueLast:  newChangeLog(overwrite),
		queueFinal: newChangeLog(overwrite),
		maxBlocks:  maxBlocks,
		missing:    make(map[block.BlockID]int),
	}
	logging.Debug("Создана сессия редактирования %s (лимит=%d)", es.id, maxBlocks)
	return es
}

// NewSessionWithBag создаёт сессию, списывающую блоки из внешнего запаса
func NewSessionWithBag(w world.World, maxBlocks int, b bag.BlockBag) *Session {
	es := NewSession(w, maxBlocks)
	es.blockBag = b
	return es
}

// ID возвращает идентификатор сессии
func (es *Session) ID() uuid.UUID { return es.id }

// World возвращает мир, поверх которого работает сессия
func (es *Session) World() world.World { return es.world }

// RawSetBlock — единый шлюз записи. Все установки блоков, немедленные
// и отложенные, проходят через него. Проверки идут в фиксированном
// порядке; непрошедшая запись не попадает в мир.
// Возвращает, изменилось ли видимое состояние мира.
func (es *Session) RawSetBlock(pos vec.Vec3, s block.State) bool {
	// 1. Вертикальные границы мира
	if pos.Y < 0 || pos.Y > es.world.MaxY() {
		return false
	}

	// 2. Чанк должен быть загружен до любого чтения
	es.world.CheckLoadedChunk(pos)

	// 3. Неизвестные типы отбрасываются
	if !es.world.IsValidBlockType(s.ID) {
		return false
	}

	// 4. Маска сессии
	if es.mask != nil && !es.mask.Matches(es, pos) {
		return false
	}

	existing := es.world.GetBlock(pos)

	// 5. Контейнер очищается перед заменой, чтобы не потерять инвентарь.
	// Лёд сначала превращается в воздух: иначе движок при замене
	// сгенерирует воду на месте растаявшего льда.
	if block.IsContainer(existing.ID) {
		es.world.ClearContainerContents(pos)
	} else if existing.ID == block.IceBlockID {
		es.world.SetBlock(pos, block.Air(), true)
	}

	// 6. Списание из запаса блоков
	if es.blockBag != nil {
		if s.ID != block.AirBlockID {
			if err := es.blockBag.FetchPlacedBlock(s.ID, s.Data); err != nil {
				if !errors.Is(err, bag.ErrUnplaceableBlock) {
					es.missing[s.ID]++
				}
				return false
			}
		}
		if existing.ID != block.AirBlockID {
			// Возврат заменённого блока — best-effort
			if err := es.blockBag.StoreDroppedBlock(existing.ID, existing.Data); err != nil {
				logging.Trace("Заменённый блок %d не возвращён в запас: %v", existing.ID, err)
			}
		}
	}

	// 7. Запись. Воздух в fast mode идёт быстрым путём без уведомлений,
	// непустые блоки уведомляют соседей всегда.
	var result bool
	if s.IsAir() && es.fastMode {
		result = es.world.SetBlockFast(pos, s)
	} else {
		result = es.world.SetBlock(pos, s, true)
	}
	if result {
		metricBlocksChanged.Inc()
	}
	return result
}

// RawGetBlock читает блок напрямую из мира, гарантируя загрузку чанка
func (es *Session) RawGetBlock(pos vec.Vec3) block.State {
	es.world.CheckLoadedChunk(pos)
	return es.world.GetBlock(pos)
}

// GetBlock возвращает видимое состояние блока
func (es *Session) GetBlock(pos vec.Vec3) block.State {
	return es.RawGetBlock(pos)
}

// SetBlock устанавливает блок с журналированием и учётом лимита.
// Новая координата сверх лимита даёт MaxChangedBlocksError; успешные
// записи до неё остаются в силе, отката не происходит.
func (es *Session) SetBlock(pos vec.Vec3, s block.State) (bool, error) {
	if !es.original.Contains(pos) && es.maxBlocks != UnlimitedBlocks &&
		es.original.Distinct() >= es.maxBlocks {
		metricLimitRejections.Inc()
		return false, &MaxChangedBlocksError{Limit: es.maxBlocks}
	}
	es.original.Put(pos, es.RawGetBlock(pos))
	es.current.Put(pos, s)
	return es.SmartSetBlock(pos, s), nil
}

// SetBlockIfAir устанавливает блок, только если позиция пуста
func (es *Session) SetBlockIfAir(pos vec.Vec3, s block.State) (bool, error) {
	if !es.GetBlock(pos).IsAir() {
		return false, nil
	}
	return es.SetBlock(pos, s)
}

// SetChanceBlockIfAir устанавливает блок в пустую позицию с вероятностью
// chance (0..1); roll — внешний бросок из [0,1).
func (es *Session) SetChanceBlockIfAir(pos vec.Vec3, s block.State, chance, roll float64) (bool, error) {
	if roll > chance {
		return false, nil
	}
	return es.SetBlockIfAir(pos, s)
}

// RememberChange вносит запись в журнал задним числом, не трогая мир.
// Применяется, когда изменение уже внесено в мир внешним кодом.
func (es *Session) RememberChange(pos vec.Vec3, previous, current block.State) {
	es.original.Put(pos, previous)
	es.current.Put(pos, current)
}

// Size возвращает число изменённых координат
func (es *Session) Size() int {
	return es.original.Distinct()
}

// GetBlockChangeCount синоним Size для отчётов операций
func (es *Session) GetBlockChangeCount() int {
	return es.Size()
}

// Undo откатывает все изменения сессии, применяя состояния «до»
// через целевую сессию (обычно свежую, чтобы откат журналировался
// отдельно и сам мог быть повторён).
func (es *Session) Undo(target *Session) {
	es.original.Each(func(pos vec.Vec3, s block.State) {
		target.SmartSetBlock(pos, s)
	})
	target.FlushQueue()
	logging.Info("↩️ Сессия %s откатана (%d блоков)", es.id, es.original.Distinct())
	_ = eventbus.Publish(context.Background(),
		eventbus.NewEnvelope(eventbus.EventEditUndone, "edit-session", es.id.String(), es.original.Distinct()))
}

// Redo повторяет изменения сессии в хронологическом порядке
func (es *Session) Redo(target *Session) {
	es.current.Each(func(pos vec.Vec3, s block.State) {
		target.SmartSetBlock(pos, s)
	})
	target.FlushQueue()
	logging.Info("↪️ Сессия %s повторена (%d записей)", es.id, es.current.Len())
	_ = eventbus.Publish(context.Background(),
		eventbus.NewEnvelope(eventbus.EventEditRedone, "edit-session", es.id.String(), es.current.Len()))
}

// BlockChangeLimit возвращает текущий лимит изменений
func (es *Session) BlockChangeLimit() int { return es.maxBlocks }

// SetBlockChangeLimit задаёт лимит изменений; уже записанные
// координаты лимит не пересматривает
func (es *Session) SetBlockChangeLimit(limit int) {
	if limit < UnlimitedBlocks {
		limit = UnlimitedBlocks
	}
	es.maxBlocks = limit
}

// EnableQueue включает отложенный режим установки
func (es *Session) EnableQueue() { es.queued = true }

// DisableQueue сбрасывает очереди и выключает отложенный режим
func (es *Session) DisableQueue() {
	if es.queued {
		es.FlushQueue()
	}
	es.queued = false
}

// IsQueueEnabled возвращает, включён ли отложенный режим
func (es *Session) IsQueueEnabled() bool { return es.queued }

// SetFastMode переключает быстрый режим записи
func (es *Session) SetFastMode(enabled bool) { es.fastMode = enabled }

// HasFastMode возвращает, включён ли быстрый режим
func (es *Session) HasFastMode() bool { return es.fastMode }

// Mask возвращает маску сессии (nil — маски нет)
func (es *Session) Mask() Mask { return es.mask }

// SetMask задаёт маску сессии; nil снимает ограничение
func (es *Session) SetMask(m Mask) { es.mask = m }

// BlockBag возвращает подключённый запас блоков
func (es *Session) BlockBag() bag.BlockBag { return es.blockBag }

// SetBlockBag подключает запас блоков; nil отключает списание
func (es *Session) SetBlockBag(b bag.BlockBag) { es.blockBag = b }

// PopMissingBlocks возвращает накопленную статистику нехватки
// блоков и обнуляет её
func (es *Session) PopMissingBlocks() map[block.BlockID]int {
	missing := es.missing
	es.missing = make(map[block.BlockID]int)
	return missing
}
