package edit

import "fmt"

// MaxChangedBlocksError возвращается, когда запись новой координаты
// в журнал превысила бы лимит изменений сессии. Ошибается только
// вызвавшая запись; ранее успешные записи остаются в силе.
type MaxChangedBlocksError struct {
	Limit int
}

func (e *MaxChangedBlocksError) Error() string {
	return fmt.Sprintf("превышен лимит изменений: %d блоков", e.Limit)
}
