package twirl

// Point is a position in the host's coordinate space. The coordinate system
// has its origin at the top-left, with Y increasing downward. Points are
// plain values; operations that move geometry return or mutate shapes, never
// a Point in place.
type Point struct {
	X, Y float64
}

// Bounds is an axis-aligned bounding box in the Y-down coordinate space, so
// Bottom is the maximum Y and Top the minimum. The zero value is the empty
// bounds of an empty shape.
type Bounds struct {
	Left, Top, Right, Bottom float64
}

// Width returns the horizontal extent. Never negative for bounds produced by
// this package.
func (b Bounds) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent.
func (b Bounds) Height() float64 {
	return b.Bottom - b.Top
}

// BottomLeft returns the bottom-left corner (min X, max Y).
func (b Bounds) BottomLeft() Point {
	return Point{X: b.Left, Y: b.Bottom}
}

// union returns the smallest bounds covering both b and o.
func (b Bounds) union(o Bounds) Bounds {
	if o.Left < b.Left {
		b.Left = o.Left
	}
	if o.Top < b.Top {
		b.Top = o.Top
	}
	if o.Right > b.Right {
		b.Right = o.Right
	}
	if o.Bottom > b.Bottom {
		b.Bottom = o.Bottom
	}
	return b
}

// boundsOf scans a point slice and returns its axis-aligned bounds.
// Returns the zero Bounds for an empty slice.
func boundsOf(pts []Point) Bounds {
	if len(pts) == 0 {
		return Bounds{}
	}
	b := Bounds{Left: pts[0].X, Top: pts[0].Y, Right: pts[0].X, Bottom: pts[0].Y}
	for i := 1; i < len(pts); i++ {
		p := pts[i]
		if p.X < b.Left {
			b.Left = p.X
		}
		if p.X > b.Right {
			b.Right = p.X
		}
		if p.Y < b.Top {
			b.Top = p.Y
		}
		if p.Y > b.Bottom {
			b.Bottom = p.Y
		}
	}
	return b
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Style controls how a host surface renders a shape. A fill with zero alpha
// means no fill; a stroke width of zero means no stroke.
type Style struct {
	Stroke Color   // outline color
	Width  float64 // outline width in host units
	Fill   Color   // interior color for closed shapes
}

// DefaultStyle is the style applied to the working shape when Options.Style
// is left zero.
var DefaultStyle = Style{
	Stroke: Color{R: 0.2, G: 0.533, B: 1, A: 1},
	Width:  2,
	Fill:   Color{R: 0.2, G: 0.533, B: 1, A: 0.2},
}

// State identifies the tracker's position in the session lifecycle.
type State uint8

const (
	StateIdle     State = iota // no active session
	StateDragging              // between pointer-down and pointer-up/leave
)

// String returns the state name for logs and test failures.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	default:
		return "unknown"
	}
}
