// Package cad defines the capability boundary between the command
// protocol and a live CAD session. The protocol layer only states
// what to do with selections, sketches, and features; a concrete
// implementation against a real CAD API supplies the geometry.
package cad

// Vec3 is a point or direction in model space, meters.
type Vec3 struct {
	X, Y, Z float64
}

// Face describes one planar face of the active body: its outward
// normal and a representative point. These are the only facts the
// protocol's face-selection rule needs.
type Face struct {
	ID     string
	Normal Vec3
	Point  Vec3
}

// FeatureHandle identifies a feature created by a modeling call.
type FeatureHandle interface {
	Name() string
}

// DimensionHandle identifies a driving dimension of the model.
type DimensionHandle interface {
	Name() string
	Value() float64 // current value, meters
}

// ModelingContext is the live CAD session: one active document, one
// current selection, both externally mutable. Callers must serialize
// commands — at most one dispatch in flight — because handlers depend
// on selection state left by the user or by a prior step.
//
// All lengths are in meters. Selection calls report success as a
// bool; modeling calls return an error which the dispatcher converts
// to a textual result, never a panic.
type ModelingContext interface {
	// Selection
	SelectPlane(name string) bool
	SelectFace(id string) bool
	SelectionCount() int
	ClearSelection()

	// Face facts for the orientation predicate.
	PlanarFaces() []Face

	// Sketching
	SketchOn(reference string) error
	DrawRectangle(x1, y1, x2, y2 float64) error
	DrawCircle(cx, cy, r float64) error
	ExitSketch()

	// Features
	Extrude(depth float64, reversed, bothSides bool) (FeatureHandle, error)
	Cut(depth float64, throughAll bool) (FeatureHandle, error)
	Fillet(radius float64) (FeatureHandle, error)
	Chamfer(distance, angleDeg float64) (FeatureHandle, error)

	// Dimensions
	FindDimension(name string) (DimensionHandle, bool)
	SetDimension(h DimensionHandle, value float64) error

	// Document
	Rebuild() error
	DeleteSelection() error
}
