package block

// BlockID представляет идентификатор типа блока
type BlockID uint16

// Константы ID блоков
const (
	// Базовые типы блоков
	AirBlockID             BlockID = iota // 0
	StoneBlockID                          // 1
	GrassBlockID                          // 2
	WaterBlockID                          // 3 - текущая вода
	SandBlockID                           // 4
	DirtBlockID                           // 5
	StationaryWaterBlockID                // 6 - стоячая вода
	LavaBlockID                           // 7 - текущая лава
	StationaryLavaBlockID                 // 8 - стоячая лава
	IceBlockID                            // 9
	SnowBlockID                           // 10 - снежный покров (слой)

	// Для возможности расширения, оставляем большие промежутки между категориями

	// Декоративные блоки (начиная с 100)
	FlowerBlockID    BlockID = 100 // Цветок
	TreeBlockID      BlockID = 101 // Ствол дерева
	CactusBlockID    BlockID = 102 // Кактус, ставится на песок
	TorchBlockID     BlockID = 103 // Факел, крепится к опоре
	LeverBlockID     BlockID = 104 // Рычаг
	LadderBlockID    BlockID = 105 // Лестница, крепится к стене
	TallGrassBlockID BlockID = 106 // Высокая трава
	SaplingBlockID   BlockID = 107 // Саженец
	ReedBlockID      BlockID = 108 // Тростник

	// Интерактивные блоки (начиная с 200)
	ChestBlockID      BlockID = 200 // Сундук (хранит инвентарь)
	WoodenDoorBlockID BlockID = 201 // Деревянная дверь, две половинки
	IronDoorBlockID   BlockID = 202 // Железная дверь, две половинки
	SignPostBlockID   BlockID = 203 // Табличка на столбе
	WallSignBlockID   BlockID = 204 // Настенная табличка
	FurnaceBlockID    BlockID = 205 // Печь (хранит инвентарь)
	ButtonBlockID     BlockID = 206 // Кнопка

	// Специальные блоки (начиная с 1000)
	PortalBlockID  BlockID = 1000 // Портал
	SpawnerBlockID BlockID = 1001 // Спаунер
)

// DoorUpperHalfBit бит данных, отмечающий верхнюю половинку двери
const DoorUpperHalfBit int16 = 0x8
