package twirl

// Shape is the geometry capability set the engine needs from a piece of
// geometry. The tracker calls nothing else, so any host geometry that can
// clone itself, report axis-aligned bounds, and transform in place can be
// driven by a Tracker.
//
// Bounds must be recomputed from the current coordinates on every call;
// implementations must not cache across mutations.
type Shape interface {
	// Clone returns a deep copy sharing no mutable state with the receiver.
	Clone() Shape
	// Bounds returns the axis-aligned bounding box of the current geometry.
	Bounds() Bounds
	// Move translates every coordinate by (dx, dy).
	Move(dx, dy float64)
	// Rotate rotates every coordinate by deltaDeg degrees clockwise about pivot.
	Rotate(deltaDeg float64, pivot Point)
	// Resize scales every coordinate's distance from pivot by factor,
	// uniformly in both axes.
	Resize(factor float64, pivot Point)
}

// Outliner is implemented by shapes the shipped hosts know how to render.
// Each returned slice is an open polyline; closed shapes repeat their first
// point. Hosts that render custom Shape implementations can ignore it.
type Outliner interface {
	AppendOutline(dst [][]Point) [][]Point
}

// markerArm is the half-length of a Marker's rendered cross, in host units.
const markerArm = 4.0

// --- Marker ---

// Marker is a single point, rendered by the shipped hosts as a fixed-size
// cross. Its bounds are degenerate (zero width and height), which makes it
// the canonical zero-width template for the tracker's radius seeding.
type Marker struct {
	P Point
}

// NewMarker returns a Marker at p.
func NewMarker(p Point) *Marker {
	return &Marker{P: p}
}

// Clone returns a copy of the marker.
func (m *Marker) Clone() Shape {
	return &Marker{P: m.P}
}

// Bounds returns the degenerate bounds at the marker's point.
func (m *Marker) Bounds() Bounds {
	return Bounds{Left: m.P.X, Top: m.P.Y, Right: m.P.X, Bottom: m.P.Y}
}

// Move translates the marker by (dx, dy).
func (m *Marker) Move(dx, dy float64) {
	m.P.X += dx
	m.P.Y += dy
}

// Rotate rotates the marker's point about pivot.
func (m *Marker) Rotate(deltaDeg float64, pivot Point) {
	m.P = rotatePoint(m.P, deltaDeg, pivot)
}

// Resize scales the marker's distance from pivot by factor.
func (m *Marker) Resize(factor float64, pivot Point) {
	m.P = scalePoint(m.P, factor, pivot)
}

// AppendOutline appends the two cross segments.
func (m *Marker) AppendOutline(dst [][]Point) [][]Point {
	dst = append(dst, []Point{
		{X: m.P.X - markerArm, Y: m.P.Y},
		{X: m.P.X + markerArm, Y: m.P.Y},
	})
	dst = append(dst, []Point{
		{X: m.P.X, Y: m.P.Y - markerArm},
		{X: m.P.X, Y: m.P.Y + markerArm},
	})
	return dst
}

// --- Polyline ---

// Polyline is an open chain of points.
type Polyline struct {
	pts []Point
}

// NewPolyline creates a polyline from a copy of pts.
// Panics if fewer than 2 points are given.
func NewPolyline(pts []Point) *Polyline {
	if len(pts) < 2 {
		panic("twirl: polyline needs at least 2 points")
	}
	return &Polyline{pts: append([]Point(nil), pts...)}
}

// Points returns the polyline's points. The slice is live; mutating it
// mutates the shape.
func (l *Polyline) Points() []Point {
	return l.pts
}

// Clone returns a deep copy of the polyline.
func (l *Polyline) Clone() Shape {
	return &Polyline{pts: append([]Point(nil), l.pts...)}
}

// Bounds scans the current points. Never cached.
func (l *Polyline) Bounds() Bounds {
	return boundsOf(l.pts)
}

// Move translates every point by (dx, dy).
func (l *Polyline) Move(dx, dy float64) {
	for i := range l.pts {
		l.pts[i].X += dx
		l.pts[i].Y += dy
	}
}

// Rotate rotates every point about pivot.
func (l *Polyline) Rotate(deltaDeg float64, pivot Point) {
	for i := range l.pts {
		l.pts[i] = rotatePoint(l.pts[i], deltaDeg, pivot)
	}
}

// Resize scales every point's distance from pivot by factor.
func (l *Polyline) Resize(factor float64, pivot Point) {
	for i := range l.pts {
		l.pts[i] = scalePoint(l.pts[i], factor, pivot)
	}
}

// AppendOutline appends the open chain as-is.
func (l *Polyline) AppendOutline(dst [][]Point) [][]Point {
	return append(dst, l.pts)
}

// --- Polygon ---

// Polygon is a closed ring of points. The closing edge from the last point
// back to the first is implicit; don't repeat the first point.
type Polygon struct {
	pts []Point
}

// NewPolygon creates a polygon from a copy of pts.
// Panics if fewer than 3 points are given.
func NewPolygon(pts []Point) *Polygon {
	if len(pts) < 3 {
		panic("twirl: polygon needs at least 3 points")
	}
	return &Polygon{pts: append([]Point(nil), pts...)}
}

// Points returns the polygon's ring. The slice is live; mutating it mutates
// the shape.
func (p *Polygon) Points() []Point {
	return p.pts
}

// Clone returns a deep copy of the polygon.
func (p *Polygon) Clone() Shape {
	return &Polygon{pts: append([]Point(nil), p.pts...)}
}

// Bounds scans the current ring. Never cached.
func (p *Polygon) Bounds() Bounds {
	return boundsOf(p.pts)
}

// Move translates every point by (dx, dy).
func (p *Polygon) Move(dx, dy float64) {
	for i := range p.pts {
		p.pts[i].X += dx
		p.pts[i].Y += dy
	}
}

// Rotate rotates every point about pivot.
func (p *Polygon) Rotate(deltaDeg float64, pivot Point) {
	for i := range p.pts {
		p.pts[i] = rotatePoint(p.pts[i], deltaDeg, pivot)
	}
}

// Resize scales every point's distance from pivot by factor.
func (p *Polygon) Resize(factor float64, pivot Point) {
	for i := range p.pts {
		p.pts[i] = scalePoint(p.pts[i], factor, pivot)
	}
}

// AppendOutline appends the ring closed by repeating the first point.
func (p *Polygon) AppendOutline(dst [][]Point) [][]Point {
	ring := make([]Point, 0, len(p.pts)+1)
	ring = append(ring, p.pts...)
	ring = append(ring, p.pts[0])
	return append(dst, ring)
}

// --- Group ---

// Group is an ordered collection of sub-shapes. Every Shape method fans out
// to the members in order.
type Group struct {
	shapes []Shape
}

// NewGroup creates a group over the given sub-shapes.
// Panics if any member is nil.
func NewGroup(shapes ...Shape) *Group {
	for _, s := range shapes {
		if s == nil {
			panic("twirl: nil shape in group")
		}
	}
	return &Group{shapes: append([]Shape(nil), shapes...)}
}

// Add appends a sub-shape. Panics if s is nil.
func (g *Group) Add(s Shape) {
	if s == nil {
		panic("twirl: nil shape in group")
	}
	g.shapes = append(g.shapes, s)
}

// Shapes returns the member slice in order. The slice is live.
func (g *Group) Shapes() []Shape {
	return g.shapes
}

// Clone deep-copies the group and every member.
func (g *Group) Clone() Shape {
	out := &Group{shapes: make([]Shape, len(g.shapes))}
	for i, s := range g.shapes {
		out.shapes[i] = s.Clone()
	}
	return out
}

// Bounds returns the union of the members' bounds, or the zero Bounds for an
// empty group.
func (g *Group) Bounds() Bounds {
	if len(g.shapes) == 0 {
		return Bounds{}
	}
	b := g.shapes[0].Bounds()
	for _, s := range g.shapes[1:] {
		b = b.union(s.Bounds())
	}
	return b
}

// Move translates every member by (dx, dy).
func (g *Group) Move(dx, dy float64) {
	for _, s := range g.shapes {
		s.Move(dx, dy)
	}
}

// Rotate rotates every member about pivot.
func (g *Group) Rotate(deltaDeg float64, pivot Point) {
	for _, s := range g.shapes {
		s.Rotate(deltaDeg, pivot)
	}
}

// Resize scales every member about pivot.
func (g *Group) Resize(factor float64, pivot Point) {
	for _, s := range g.shapes {
		s.Resize(factor, pivot)
	}
}

// AppendOutline appends the outlines of every member that can produce one.
func (g *Group) AppendOutline(dst [][]Point) [][]Point {
	for _, s := range g.shapes {
		if o, ok := s.(Outliner); ok {
			dst = o.AppendOutline(dst)
		}
	}
	return dst
}
