package block

// ZoneSeparator marks boolean-derived entities: a zone name containing
// it was produced by a merge rather than declared directly. Simple
// unregistration skips such volumes; the boolean pass removes only them.
const ZoneSeparator = "-"

// Default zone names encode orientation semantics: octant codes for the
// 8 corner points, axis+index for the 12 curves, face direction for the
// 6 surfaces.
var (
	defaultPointZones = []string{
		"X_Y_NZ", "N_XY_NZ", "NX_NY_NZ", "X_NY_NZ",
		"X_Y_Z", "N_XY_Z", "NX_NY_Z", "X_NY_Z",
	}
	defaultCurveZones = []string{
		"X1", "X2", "X3", "X4",
		"Y1", "Y2", "Y3", "Y4",
		"Z1", "Z2", "Z3", "Z4",
	}
	defaultSurfaceZones = []string{"NX", "X", "NY", "Y", "NZ", "Z"}
	defaultVolumeZones  = []string{"V"}
)

// DefaultPointZones returns a copy of the default point zone names.
func DefaultPointZones() []string { return append([]string(nil), defaultPointZones...) }

// DefaultCurveZones returns a copy of the default curve zone names.
func DefaultCurveZones() []string { return append([]string(nil), defaultCurveZones...) }

// DefaultSurfaceZones returns a copy of the default surface zone names.
func DefaultSurfaceZones() []string { return append([]string(nil), defaultSurfaceZones...) }

// DefaultVolumeZones returns a copy of the default volume zone names.
func DefaultVolumeZones() []string { return append([]string(nil), defaultVolumeZones...) }
