package cad

import (
	"math"
	"strings"
)

// Orientation names the oriented face searches the protocol supports.
type Orientation int

const (
	OrientTop Orientation = iota
	OrientBottom
)

// normalTolerance is the angular tolerance (radians) for treating a
// face normal as aligned with ±Z.
const normalTolerance = 0.05

// ParseOrientation maps the "face" parameter to an orientation.
func ParseOrientation(s string) (Orientation, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top", "":
		return OrientTop, true
	case "bottom":
		return OrientBottom, true
	default:
		return OrientTop, false
	}
}

func (o Orientation) String() string {
	if o == OrientBottom {
		return "bottom"
	}
	return "top"
}

// PickFace selects the face whose outward normal is within tolerance
// of +Z (top) or -Z (bottom) and whose representative point has the
// extreme Z value in that direction. This is the single statement of
// the orientation rule; implementations supply only the face facts.
func PickFace(faces []Face, orient Orientation) (Face, bool) {
	sign := 1.0
	if orient == OrientBottom {
		sign = -1.0
	}
	minCos := math.Cos(normalTolerance)

	var best Face
	found := false
	for _, f := range faces {
		n := f.Normal
		mag := math.Sqrt(n.X*n.X + n.Y*n.Y + n.Z*n.Z)
		if mag == 0 {
			continue
		}
		if sign*n.Z/mag < minCos {
			continue
		}
		if !found || sign*f.Point.Z > sign*best.Point.Z {
			best = f
			found = true
		}
	}
	return best, found
}

// FirstPlanar is the documented last resort when the oriented search
// finds nothing: the first planar face reported by the context.
func FirstPlanar(faces []Face) (Face, bool) {
	if len(faces) == 0 {
		return Face{}, false
	}
	return faces[0], true
}
