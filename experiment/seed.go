package experiment

// trialSeed derives an independent RNG seed for one trial with splitmix64
// finalization over (base, n, k, trial).
func trialSeed(base int64, n, k, trial int) int64 {
	h := uint64(base)
	for _, x := range [...]int{n, k, trial} {
		h = mix(h ^ uint64(x))
	}
	return int64(h)
}

func mix(z uint64) uint64 {
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
