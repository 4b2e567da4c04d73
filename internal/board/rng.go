package board

// RNG is a seedable xorshift64 generator. The board owns one instance so
// tile generation is fully reproducible from the seed: two peers fed the
// same seed and the same tap sequence draw identical tile streams, which
// is what keeps networked boards in lockstep without state sync.
type RNG struct {
	state uint64
}

// NewRNG seeds the generator. A zero seed is replaced with 1 because the
// all-zero state is a fixed point of xorshift.
func NewRNG(seed uint64) RNG {
	if seed == 0 {
		seed = 1
	}
	return RNG{state: seed}
}

// Next returns the next value in the stream.
func (r *RNG) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	r.state = x
	return x
}

// Intn returns a value in [0, n). n must be positive.
func (r *RNG) Intn(n int) int {
	return int(r.Next() % uint64(n))
}
