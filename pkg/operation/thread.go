package operation

import "strings"

// tapDrillMM maps a nominal metric thread size to its tap-drill
// diameter in millimeters, the pilot hole bored before threading.
var tapDrillMM = map[string]float64{
	"M2":   1.6,
	"M2.5": 2.05,
	"M3":   2.5,
	"M4":   3.3,
	"M5":   4.2,
	"M6":   5.0,
	"M8":   6.8,
	"M10":  8.5,
	"M12":  10.2,
	"M14":  12.0,
	"M16":  14.0,
	"M20":  17.5,
}

// TapDrill resolves a thread size spelling ("M6", "m6") to its
// tap-drill diameter in millimeters.
func TapDrill(size string) (float64, bool) {
	d, ok := tapDrillMM[strings.ToUpper(strings.TrimSpace(size))]
	return d, ok
}
