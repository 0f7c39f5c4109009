package edit

import (
	"github.com/annel0/mmo-editor/internal/vec"
	"github.com/annel0/mmo-editor/internal/world/block"
)

// logMode определяет политику повторных записей по одной координате
type logMode int

const (
	// keepFirst — сохраняется первая запись (журнал исходных состояний)
	keepFirst logMode = iota
	// keepAll — полная история в хронологическом порядке (журнал текущих состояний)
	keepAll
	// overwrite — последняя запись заменяет прежнюю на месте (отложенные очереди)
	overwrite
)

type changeEntry struct {
	pos   vec.Vec3
	state block.State
}

// changeLog — упорядоченное отображение координата -> состояние:
// срез записей для воспроизведения в хронологическом порядке плюс
// индекс по координате для O(1) проверки существования.
type changeLog struct {
	mode    logMode
	entries []changeEntry
	index   map[vec.Vec3]int // позиция последней записи координаты
}

func newChangeLog(mode logMode) *changeLog {
	return &changeLog{
		mode:  mode,
		index: make(map[vec.Vec3]int),
	}
}

// Put добавляет запись согласно политике журнала
func (l *changeLog) Put(pos vec.Vec3, s block.State) {
	if i, exists := l.index[pos]; exists {
		switch l.mode {
		case keepFirst:
			return
		case overwrite:
			l.entries[i].state = s
			return
		}
	}
	l.entries = append(l.entries, changeEntry{pos: pos, state: s})
	l.index[pos] = len(l.entries) - 1
}

// Contains проверяет, встречалась ли координата
func (l *changeLog) Contains(pos vec.Vec3) bool {
	_, exists := l.index[pos]
	return exists
}

// Get возвращает последнюю записанную для координаты запись
func (l *changeLog) Get(pos vec.Vec3) (block.State, bool) {
	i, exists := l.index[pos]
	if !exists {
		return block.State{}, false
	}
	return l.entries[i].state, true
}

// Distinct возвращает число различных координат в журнале
func (l *changeLog) Distinct() int {
	return len(l.index)
}

// Len возвращает общее число записей
func (l *changeLog) Len() int {
	return len(l.entries)
}

// Each обходит записи в хронологическом порядке
func (l *changeLog) Each(fn func(pos vec.Vec3, s block.State)) {
	for _, e := range l.entries {
		fn(e.pos, e.state)
	}
}

// Clear очищает журнал
func (l *changeLog) Clear() {
	l.entries = l.entries[:0]
	l.index = make(map[vec.Vec3]int)
}
