package block

// WildcardData значение data-варианта, совпадающее с любым вариантом того же типа
const WildcardData int16 = -1

// State описывает состояние блока: пара (тип, data-вариант).
// Нулевое значение — воздух без данных.
type State struct {
	ID   BlockID
	Data int16
}

// Air возвращает состояние воздуха
func Air() State {
	return State{ID: AirBlockID}
}

// NewState создаёт состояние с нулевым data-вариантом
func NewState(id BlockID) State {
	return State{ID: id}
}

// IsAir возвращает true для воздуха
func (s State) IsAir() bool {
	return s.ID == AirBlockID
}

// Equals проверяет точное равенство: тип и data-вариант
func (s State) Equals(other State) bool {
	return s.ID == other.ID && s.Data == other.Data
}

// EqualsFuzzy проверяет «нечёткое» равенство: типы совпадают,
// а wildcard data-вариант с любой из сторон совпадает с чем угодно.
func (s State) EqualsFuzzy(other State) bool {
	if s.ID != other.ID {
		return false
	}
	return s.Data == other.Data || s.Data == WildcardData || other.Data == WildcardData
}

// StateSet множество состояний блоков для поиска.
// Элементы с WildcardData совпадают с любым data-вариантом своего типа.
type StateSet struct {
	exact map[State]struct{}
	wild  map[BlockID]struct{}
}

// NewStateSet создаёт множество из перечисленных состояний
func NewStateSet(states ...State) *StateSet {
	set := &StateSet{
		exact: make(map[State]struct{}),
		wild:  make(map[BlockID]struct{}),
	}
	for _, s := range states {
		set.Add(s)
	}
	return set
}

// NewTypeSet создаёт множество, совпадающее с любым data-вариантом перечисленных типов
func NewTypeSet(ids ...BlockID) *StateSet {
	set := NewStateSet()
	for _, id := range ids {
		set.Add(State{ID: id, Data: WildcardData})
	}
	return set
}

// Add добавляет состояние в множество
func (set *StateSet) Add(s State) {
	if s.Data == WildcardData {
		set.wild[s.ID] = struct{}{}
		return
	}
	set.exact[s] = struct{}{}
}

// Contains проверяет принадлежность состояния множеству с учётом wildcard элементов
func (set *StateSet) Contains(s State) bool {
	if _, ok := set.wild[s.ID]; ok {
		return true
	}
	_, ok := set.exact[s]
	return ok
}

// Size возвращает число различных элементов множества
func (set *StateSet) Size() int {
	return len(set.exact) + len(set.wild)
}
