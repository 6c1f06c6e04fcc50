package girgrand

// SamplePositions draws n points uniformly on the D-dimensional unit torus
// [0,1)^D.
func SamplePositions(n, dimension int, rng Source) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		coord := make([]float64, dimension)
		for a := range coord {
			coord[a] = rng.Float64()
		}
		out[i] = coord
	}
	return out
}
