package common

// SeededRNG is a Mulberry32 generator. The same seed always yields the same
// sequence, which keeps synthetic clips and traces reproducible.
type SeededRNG struct {
	state uint32
	seed  uint32
}

// NewSeededRNG creates a generator starting at seed.
func NewSeededRNG(seed uint32) *SeededRNG {
	return &SeededRNG{state: seed, seed: seed}
}

// Seed returns the seed the generator was created with.
func (r *SeededRNG) Seed() uint32 {
	return r.seed
}

// Reset rewinds the generator to its seed.
func (r *SeededRNG) Reset() {
	r.state = r.seed
}

// Random returns the next value in [0, 1).
func (r *SeededRNG) Random() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// RandomFloat returns the next value in [min, max).
func (r *SeededRNG) RandomFloat(min, max float64) float64 {
	return r.Random()*(max-min) + min
}

// Signed returns the next value in [-1, 1), suitable as an audio sample.
func (r *SeededRNG) Signed() float64 {
	return r.RandomFloat(-1, 1)
}
