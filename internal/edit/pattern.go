package edit

import (
	"math/rand"

	"github.com/annel0/mmo-editor/internal/util"
	"github.com/annel0/mmo-editor/internal/vec"
	"github.com/annel0/mmo-editor/internal/world/block"
)

// Pattern выдаёт состояние блока для каждой заполняемой координаты
type Pattern interface {
	Next(pos vec.Vec3) block.State
}

// SinglePattern всегда возвращает одно и то же состояние
type SinglePattern struct {
	state block.State
}

func NewSinglePattern(s block.State) *SinglePattern {
	return &SinglePattern{state: s}
}

func (p *SinglePattern) Next(_ vec.Vec3) block.State {
	return p.state
}

// RandomPattern выбирает состояние случайно с учётом весов
type RandomPattern struct {
	entries []weightedState
	total   float64
	rng     *rand.Rand
}

type weightedState struct {
	state  block.State
	weight float64
}

func NewRandomPattern(seed int64) *RandomPattern {
	return &RandomPattern{rng: rand.New(rand.NewSource(seed))}
}

// Add регистрирует состояние с весом; вес <= 0 игнорируется
func (p *RandomPattern) Add(s block.State, weight float64) {
	if weight <= 0 {
		return
	}
	p.entries = append(p.entries, weightedState{state: s, weight: weight})
	p.total += weight
}

func (p *RandomPattern) Next(_ vec.Vec3) block.State {
	if len(p.entries) == 0 {
		return block.Air()
	}
	r := p.rng.Float64() * p.total
	for _, e := range p.entries {
		r -= e.weight
		if r <= 0 {
			return e.state
		}
	}
	return p.entries[len(p.entries)-1].state
}

// NoisePattern выбирает между двумя состояниями по шуму Перлина:
// там, где значение шума не ниже порога, ставится primary.
type NoisePattern struct {
	primary   block.State
	secondary block.State
	threshold float64
	scale     float64
	seed      int64
}

func NewNoisePattern(primary, secondary block.State, threshold, scale float64, seed int64) *NoisePattern {
	util.InitPerlinNoise(seed)
	return &NoisePattern{
		primary:   primary,
		secondary: secondary,
		threshold: threshold,
		scale:     scale,
		seed:      seed,
	}
}

func (p *NoisePattern) Next(pos vec.Vec3) block.State {
	n := util.PerlinNoise3D(float64(pos.X)*p.scale, float64(pos.Y)*p.scale, float64(pos.Z)*p.scale, p.seed)
	if n >= p.threshold {
		return p.primary
	}
	return p.secondary
}
