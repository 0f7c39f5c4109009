package block

import (
	"github.com/annel0/mmo-editor/internal/vec"
)

// Смещения к опоре для боковых креплений.
// data: 0 — пол, 1..4 — стороны света.
func sideAttachment(data int16) (vec.Vec3, bool) {
	switch data {
	case 1:
		return vec.Vec3{X: -1}, true
	case 2:
		return vec.Vec3{X: 1}, true
	case 3:
		return vec.Vec3{Z: -1}, true
	case 4:
		return vec.Vec3{Z: 1}, true
	default:
		return vec.Vec3{Y: -1}, true
	}
}

// Крепление только к стене; data-варианты как у sideAttachment,
// но пол опорой не бывает — по умолчанию северная стена.
func wallAttachment(data int16) (vec.Vec3, bool) {
	switch data {
	case 1:
		return vec.Vec3{X: -1}, true
	case 2:
		return vec.Vec3{X: 1}, true
	case 3:
		return vec.Vec3{Z: -1}, true
	default:
		return vec.Vec3{Z: 1}, true
	}
}

// Крепление к полу независимо от data-варианта
func floorAttachment(_ int16) (vec.Vec3, bool) {
	return vec.Vec3{Y: -1}, true
}

// Дверные половинки: обе крепятся вниз — нижняя к полу,
// верхняя к нижней половинке.
func doorAttachment(_ int16) (vec.Vec3, bool) {
	return vec.Vec3{Y: -1}, true
}

// Регистрируем все типы блоков при импорте пакета
func init() {
	// Базовые блоки
	Register(AirBlockID, Descriptor{Name: "Air", PassThrough: true})
	Register(StoneBlockID, Descriptor{Name: "Stone", Natural: true})
	Register(GrassBlockID, Descriptor{Name: "Grass", Natural: true})
	Register(WaterBlockID, Descriptor{Name: "Water", PassThrough: true, Liquid: true})
	Register(SandBlockID, Descriptor{Name: "Sand", Natural: true})
	Register(DirtBlockID, Descriptor{Name: "Dirt", Natural: true})
	Register(StationaryWaterBlockID, Descriptor{Name: "StationaryWater", PassThrough: true, Liquid: true})
	Register(LavaBlockID, Descriptor{Name: "Lava", PassThrough: true, Liquid: true})
	Register(StationaryLavaBlockID, Descriptor{Name: "StationaryLava", PassThrough: true, Liquid: true})
	Register(IceBlockID, Descriptor{Name: "Ice", Natural: true})
	Register(SnowBlockID, Descriptor{Name: "Snow", Placement: PlaceLast, PassThrough: true, Attachment: floorAttachment})

	// Декоративные блоки
	Register(FlowerBlockID, Descriptor{Name: "Flower", Placement: PlaceLast, PassThrough: true, Attachment: floorAttachment})
	Register(TreeBlockID, Descriptor{Name: "Tree"})
	Register(CactusBlockID, Descriptor{Name: "Cactus", Placement: PlaceFinal, Attachment: floorAttachment})
	Register(TorchBlockID, Descriptor{Name: "Torch", Placement: PlaceLast, PassThrough: true, Attachment: sideAttachment})
	Register(LeverBlockID, Descriptor{Name: "Lever", Placement: PlaceLast, PassThrough: true, Attachment: sideAttachment})
	Register(LadderBlockID, Descriptor{Name: "Ladder", Placement: PlaceLast, PassThrough: true, Attachment: wallAttachment})
	Register(TallGrassBlockID, Descriptor{Name: "TallGrass", Placement: PlaceLast, PassThrough: true, Attachment: floorAttachment})
	Register(SaplingBlockID, Descriptor{Name: "Sapling", Placement: PlaceLast, PassThrough: true, Attachment: floorAttachment})
	Register(ReedBlockID, Descriptor{Name: "Reed", Placement: PlaceFinal, PassThrough: true, Attachment: floorAttachment})

	// Интерактивные блоки
	Register(ChestBlockID, Descriptor{Name: "Chest", Container: true})
	Register(WoodenDoorBlockID, Descriptor{Name: "WoodenDoor", Placement: PlaceFinal, Attachment: doorAttachment, PairedHalves: true})
	Register(IronDoorBlockID, Descriptor{Name: "IronDoor", Placement: PlaceFinal, Attachment: doorAttachment, PairedHalves: true})
	Register(SignPostBlockID, Descriptor{Name: "SignPost", Placement: PlaceFinal, PassThrough: true, Attachment: floorAttachment})
	Register(WallSignBlockID, Descriptor{Name: "WallSign", Placement: PlaceFinal, PassThrough: true, Attachment: wallAttachment})
	Register(FurnaceBlockID, Descriptor{Name: "Furnace", Container: true})
	Register(ButtonBlockID, Descriptor{Name: "Button", Placement: PlaceLast, PassThrough: true, Attachment: wallAttachment})

	// Специальные блоки
	Register(PortalBlockID, Descriptor{Name: "Portal", PassThrough: true})
	Register(SpawnerBlockID, Descriptor{Name: "Spawner"})
}
