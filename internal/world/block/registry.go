package block

import (
	"github.com/annel0/mmo-editor/internal/vec"
)

// Placement определяет очередь отложенной установки блока
type Placement int

const (
	// PlaceNormal — блок ставится в основной очереди
	PlaceNormal Placement = iota
	// PlaceLast — съёмные декорации (факелы, рычаги), ставятся после основной очереди
	PlaceLast
	// PlaceFinal — зависимые конструкции (таблички, двери), ставятся в самом конце
	PlaceFinal
)

// Descriptor описывает закрытую классификацию типа блока.
// Вместо подкласса на каждый вид блока редактору достаточно
// таблицы свойств: очередь установки, проходимость, опора.
type Descriptor struct {
	Name        string
	Placement   Placement
	Container   bool // Блок хранит инвентарь (нужно очистить перед заменой)
	PassThrough bool // Не препятствует BFS-обходу (воздух, жидкости, декорации)
	Liquid      bool
	Natural     bool // Естественный блок рельефа (камень, земля, песок)

	// Attachment возвращает смещение к координате-опоре для данного
	// data-варианта. Второй результат false — блок ни к чему не крепится.
	Attachment func(data int16) (vec.Vec3, bool)

	// PairedHalves блок состоит из двух вертикальных половинок (двери)
	PairedHalves bool
}

var registry = make(map[BlockID]Descriptor)

// Register добавляет описание блока в регистр
func Register(id BlockID, desc Descriptor) {
	registry[id] = desc
}

// Get возвращает описание для указанного ID
func Get(id BlockID) (Descriptor, bool) {
	desc, exists := registry[id]
	return desc, exists
}

// IsValidBlockID проверяет, является ли ID допустимым идентификатором блока
func IsValidBlockID(id BlockID) bool {
	_, exists := registry[id]
	return exists
}

// ShouldPlaceLast возвращает true для съёмных декораций
func ShouldPlaceLast(id BlockID) bool {
	desc, exists := registry[id]
	return exists && desc.Placement == PlaceLast
}

// ShouldPlaceFinal возвращает true для зависимых конструкций
func ShouldPlaceFinal(id BlockID) bool {
	desc, exists := registry[id]
	return exists && desc.Placement == PlaceFinal
}

// IsContainer возвращает true, если блок хранит инвентарь
func IsContainer(id BlockID) bool {
	desc, exists := registry[id]
	return exists && desc.Container
}

// CanPassThrough возвращает true, если блок не препятствует обходу
func CanPassThrough(id BlockID) bool {
	desc, exists := registry[id]
	return exists && desc.PassThrough
}

// IsLiquid возвращает true для жидкостей
func IsLiquid(id BlockID) bool {
	desc, exists := registry[id]
	return exists && desc.Liquid
}

// IsNaturalTerrain возвращает true для естественных блоков рельефа
func IsNaturalTerrain(id BlockID) bool {
	desc, exists := registry[id]
	return exists && desc.Natural
}

// Attachment возвращает смещение к опоре блока для данного data-варианта.
// Второй результат false — блок ни к чему не крепится.
func Attachment(id BlockID, data int16) (vec.Vec3, bool) {
	desc, exists := registry[id]
	if !exists || desc.Attachment == nil {
		return vec.Vec3{}, false
	}
	return desc.Attachment(data)
}

// HasPairedHalves возвращает true для блоков из двух вертикальных половинок
func HasPairedHalves(id BlockID) bool {
	desc, exists := registry[id]
	return exists && desc.PairedHalves
}
