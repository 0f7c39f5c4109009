package bag

import (
	"errors"

	"github.com/annel0/mmo-editor/internal/world/block"
)

// ErrBagEmpty возвращается, когда запас блоков данного типа исчерпан
var ErrBagEmpty = errors.New("bag: запас блоков исчерпан")

// ErrUnplaceableBlock возвращается, когда блок данного типа
// в принципе нельзя ставить из этого источника
var ErrUnplaceableBlock = errors.New("bag: блок нельзя установить")

// BlockBag определяет внешний источник блоков с конечным запасом.
// Редактор списывает блок перед каждой установкой и по возможности
// возвращает заменённый блок обратно.
type BlockBag interface {
	// FetchPlacedBlock списывает один блок указанного типа.
	// ErrUnplaceableBlock — тип нельзя ставить; ErrBagEmpty — запас кончился.
	FetchPlacedBlock(id block.BlockID, data int16) error

	// StoreDroppedBlock возвращает заменённый блок в запас (best-effort)
	StoreDroppedBlock(id block.BlockID, data int16) error
}
