package cad

import (
	"fmt"
	"strings"
)

// MemContext is an in-memory ModelingContext. It stands in for a real
// CAD host in tests and in the server's dry-run mode: selections,
// sketches, and features are tracked, geometry is approximated just
// far enough to exercise the protocol (an extrude publishes the six
// planar faces of its bounding box).
type MemContext struct {
	planes    map[string]bool
	faces     []Face
	selection int
	inSketch  bool
	features  []string
	dims      map[string]float64
	calls     []string

	// failOn maps a call name to an injected error, for exercising
	// the dispatcher's failure conversion.
	failOn map[string]error

	bodyW, bodyH, bodyD float64
}

type memFeature struct{ name string }

func (f memFeature) Name() string { return f.name }

type memDimension struct {
	ctx  *MemContext
	name string
}

func (d memDimension) Name() string   { return d.name }
func (d memDimension) Value() float64 { return d.ctx.dims[d.name] }

// NewMemContext builds an empty document with the three standard
// reference planes.
func NewMemContext() *MemContext {
	return &MemContext{
		planes: map[string]bool{"front": true, "top": true, "right": true},
		dims:   make(map[string]float64),
		failOn: make(map[string]error),
	}
}

// FailOn injects an error for the named call (e.g. "extrude").
func (m *MemContext) FailOn(call string, err error) { m.failOn[call] = err }

// SetSelectionCount fakes a user-made selection.
func (m *MemContext) SetSelectionCount(n int) { m.selection = n }

// SetDimensionValue seeds a driving dimension.
func (m *MemContext) SetDimensionValue(name string, v float64) { m.dims[name] = v }

// Calls returns the ordered log of modeling calls, for assertions.
func (m *MemContext) Calls() []string { return m.calls }

// Features returns the names of created features.
func (m *MemContext) Features() []string { return m.features }

func (m *MemContext) record(format string, args ...any) {
	m.calls = append(m.calls, fmt.Sprintf(format, args...))
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func (m *MemContext) SelectPlane(name string) bool {
	ok := m.planes[strings.ToLower(strings.TrimSpace(name))]
	if ok {
		m.selection = 1
		m.record("select_plane %s", strings.ToLower(name))
	}
	return ok
}

func (m *MemContext) SelectFace(id string) bool {
	for _, f := range m.faces {
		if f.ID == id {
			m.selection = 1
			m.record("select_face %s", id)
			return true
		}
	}
	return false
}

func (m *MemContext) SelectionCount() int { return m.selection }

func (m *MemContext) ClearSelection() {
	m.selection = 0
	m.record("clear_selection")
}

func (m *MemContext) PlanarFaces() []Face { return m.faces }

func (m *MemContext) SketchOn(reference string) error {
	if err := m.failOn["sketch"]; err != nil {
		return err
	}
	m.inSketch = true
	m.record("sketch_on %s", reference)
	return nil
}

func (m *MemContext) DrawRectangle(x1, y1, x2, y2 float64) error {
	if !m.inSketch {
		return fmt.Errorf("no active sketch")
	}
	m.bodyW, m.bodyH = abs(x2-x1), abs(y2-y1)
	m.record("rectangle %.4f,%.4f %.4f,%.4f", x1, y1, x2, y2)
	return nil
}

func (m *MemContext) DrawCircle(cx, cy, r float64) error {
	if !m.inSketch {
		return fmt.Errorf("no active sketch")
	}
	if r <= 0 {
		return fmt.Errorf("circle radius must be positive, got %v", r)
	}
	m.record("circle %.4f,%.4f r=%.4f", cx, cy, r)
	return nil
}

func (m *MemContext) ExitSketch() {
	m.inSketch = false
	m.record("exit_sketch")
}

func (m *MemContext) Extrude(depth float64, reversed, bothSides bool) (FeatureHandle, error) {
	if err := m.failOn["extrude"]; err != nil {
		return nil, err
	}
	if depth <= 0 {
		return nil, fmt.Errorf("extrude depth must be positive, got %v", depth)
	}
	name := fmt.Sprintf("Boss-Extrude%d", len(m.features)+1)
	m.features = append(m.features, name)
	m.record("extrude d=%.4f reversed=%v both=%v", depth, reversed, bothSides)
	m.publishBoxFaces(depth)
	m.selection = 0
	return memFeature{name: name}, nil
}

func (m *MemContext) Cut(depth float64, throughAll bool) (FeatureHandle, error) {
	if err := m.failOn["cut"]; err != nil {
		return nil, err
	}
	if !throughAll && depth <= 0 {
		return nil, fmt.Errorf("cut depth must be positive, got %v", depth)
	}
	name := fmt.Sprintf("Cut-Extrude%d", len(m.features)+1)
	m.features = append(m.features, name)
	m.record("cut d=%.4f through=%v", depth, throughAll)
	m.selection = 0
	return memFeature{name: name}, nil
}

func (m *MemContext) Fillet(radius float64) (FeatureHandle, error) {
	if err := m.failOn["fillet"]; err != nil {
		return nil, err
	}
	if m.selection == 0 {
		return nil, fmt.Errorf("fillet requires selected edges")
	}
	name := fmt.Sprintf("Fillet%d", len(m.features)+1)
	m.features = append(m.features, name)
	m.record("fillet r=%.4f", radius)
	m.selection = 0
	return memFeature{name: name}, nil
}

func (m *MemContext) Chamfer(distance, angleDeg float64) (FeatureHandle, error) {
	if err := m.failOn["chamfer"]; err != nil {
		return nil, err
	}
	if m.selection == 0 {
		return nil, fmt.Errorf("chamfer requires selected edges")
	}
	name := fmt.Sprintf("Chamfer%d", len(m.features)+1)
	m.features = append(m.features, name)
	m.record("chamfer d=%.4f a=%.1f", distance, angleDeg)
	m.selection = 0
	return memFeature{name: name}, nil
}

func (m *MemContext) FindDimension(name string) (DimensionHandle, bool) {
	if _, ok := m.dims[name]; !ok {
		return nil, false
	}
	return memDimension{ctx: m, name: name}, true
}

func (m *MemContext) SetDimension(h DimensionHandle, value float64) error {
	if err := m.failOn["set_dimension"]; err != nil {
		return err
	}
	m.dims[h.Name()] = value
	m.record("set_dimension %s=%.4f", h.Name(), value)
	return nil
}

func (m *MemContext) Rebuild() error {
	if err := m.failOn["rebuild"]; err != nil {
		return err
	}
	m.record("rebuild")
	return nil
}

func (m *MemContext) DeleteSelection() error {
	if err := m.failOn["delete"]; err != nil {
		return err
	}
	if m.selection == 0 {
		return fmt.Errorf("nothing selected")
	}
	if n := len(m.features); n > 0 {
		m.features = m.features[:n-1]
	}
	m.selection = 0
	m.record("delete_selection")
	return nil
}

// publishBoxFaces exposes the bounding-box faces of the last extrude
// so oriented face searches have something to work with.
func (m *MemContext) publishBoxFaces(depth float64) {
	w, h := m.bodyW, m.bodyH
	if w == 0 {
		w = depth
	}
	if h == 0 {
		h = depth
	}
	m.faces = []Face{
		{ID: "face-top", Normal: Vec3{Z: 1}, Point: Vec3{X: w / 2, Y: h / 2, Z: depth}},
		{ID: "face-bottom", Normal: Vec3{Z: -1}, Point: Vec3{X: w / 2, Y: h / 2, Z: 0}},
		{ID: "face-left", Normal: Vec3{X: -1}, Point: Vec3{Y: h / 2, Z: depth / 2}},
		{ID: "face-right", Normal: Vec3{X: 1}, Point: Vec3{X: w, Y: h / 2, Z: depth / 2}},
		{ID: "face-front", Normal: Vec3{Y: -1}, Point: Vec3{X: w / 2, Z: depth / 2}},
		{ID: "face-back", Normal: Vec3{Y: 1}, Point: Vec3{X: w / 2, Y: h, Z: depth / 2}},
	}
}
