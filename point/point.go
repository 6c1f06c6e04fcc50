// Package point defines the Point value shared by the partition, layer, and
// sampler packages: a spatial position plus whatever scalar the active model
// uses to pick its connection threshold.
package point

// Point is immutable once a Partition has placed it into a Layer. Coord
// holds the D-dimensional torus position for GIRG; Radius and Angle hold the
// native hyperbolic disk position for HRG. A point only ever populates the
// fields its model uses.
type Point struct {
	ID     int32
	Coord  []float64 // GIRG: torus position in [0,1)^D
	Weight float64   // GIRG: sampling weight
	Radius float64   // HRG: radial coordinate in [0,R]
	Angle  float64   // HRG: angular coordinate in [0,2*pi)
	Cell   int       // cell id at the owning band's target level
}
