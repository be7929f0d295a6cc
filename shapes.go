package bezier

// Polar is an offset from an anchor point given as an angle in radians and a
// distance in unscaled pixels.
type Polar struct {
	Angle, Dist float64
}

// PolarControl holds the two cubic control offsets leading into a path point.
type PolarControl struct {
	Angle1, Dist1 float64
	Angle2, Dist2 float64
}

// ShapeStroke is one independently stroked sub-path of a silhouette.
// Controls[i] bridges Points[i] to Points[i+1].
type ShapeStroke struct {
	Points   []Polar
	Controls []PolarControl
	Closed   bool
	Scale    float64
}

// SilhouetteShape is a read-only template made of one or more strokes.
type SilhouetteShape []ShapeStroke

// Birds is the catalog of bird silhouettes scattered along the curve.
var Birds = []SilhouetteShape{
	{
		{
			Points: []Polar{
				{-2.75, 178.15},
				{-1.8, 109.81},
				{-1.39, 139.32},
				{-0.99, 182.42},
				{-0.88, 192.01},
				{-0.98, 156.06},
				{-2.18, 46.42},
				{-2.36, 99.47},
				{-2.75, 178.15},
			},
			Controls: []PolarControl{
				{-2.64, 153.41, -2.17, 107.21},
				{-1.68, 125.74, -1.45, 131.89},
				{-1.35, 185.59, -1.14, 192.46},
				{-0.97, 184.14, -0.9, 199.74},
				{-0.98, 174.86, -0.96, 163.09},
				{-0.33, 102.4, -2.15, 35.04},
				{-2.33, 58.61, -2.26, 83.47},
				{-2.47, 123.65, -2.75, 154.17},
			},
			Closed: true,
			Scale:  1,
		},
		{
			Points:   []Polar{{-2.21, 44.8}, {2.74, 25.69}},
			Controls: []PolarControl{{-2.34, 37.39, -3.02, 26.46}},
			Scale:    1,
		},
		{
			Points:   []Polar{{-1.18, 40.05}, {0.11, 44.61}},
			Controls: []PolarControl{{-0.91, 17.92, -0.07, 38.83}},
			Scale:    1,
		},
	},
	{
		{
			Points: []Polar{
				{-2.87, 37.04},
				{-1.1, 187.09},
				{-1.1, 209.01},
				{-0.99, 221.79},
				{-1.1, 233.15},
				{-1.56, 204.0},
				{2.47, 159.82},
				{2.45, 137.51},
				{2.3, 134.31},
				{-2.87, 37.04},
			},
			Controls: []PolarControl{
				{0.15, 40.21, -0.81, 142.96},
				{-1.16, 198.52, -1.15, 209.62},
				{-1.06, 211.77, -0.99, 218.79},
				{-0.94, 226.67, -1.06, 230.32},
				{-1.23, 271.73, -1.53, 262.04},
				{-2.66, 138.63, 3.0, 70.21},
				{2.4, 171.02, 2.45, 151.72},
				{2.38, 131.31, 2.35, 147.55},
				{2.28, 118.08, 2.73, 58.47},
			},
			Closed: true,
			Scale:  0.8,
		},
		{
			Points:   []Polar{{-0.92, 18.8}, {0.08, 50.49}},
			Controls: []PolarControl{{-0.27, 15.71, 0.12, 33.8}},
			Scale:    0.8,
		},
	},
}
