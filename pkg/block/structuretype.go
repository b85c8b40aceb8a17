package block

import (
	"errors"
	"fmt"

	"github.com/somesortofme/gmsh-scripts/pkg/geometry"
)

// ErrNotImplemented marks structure-type permutations that have no known
// consistent corner ordering. Callers must treat it as fatal rather than
// approximate with a neighbouring type.
var ErrNotImplemented = errors.New("structure type not implemented")

// ParseStructureType resolves a structure-type code into the per-face
// triangle arrangement (order: NX, X, NY, Y, NZ, Z) and the permutation
// of the 8 corner indices defining the volume's parametric corner order.
//
// The code's three letters give the arrangement of the X, Y and Z face
// pairs: LRR means Left for X/NX, Right for Y/NY, Right for Z/NZ. Only
// LLL, RRL, LRR and RLR have a consistent volume corner permutation;
// RLL, LRL, LLR and RRR return ErrNotImplemented.
func ParseStructureType(code string) ([6]geometry.Arrangement, [8]int, error) {
	switch code {
	case "LLL":
		return [6]geometry.Arrangement{
				geometry.Left, geometry.Left, geometry.Left,
				geometry.Left, geometry.Left, geometry.Left,
			},
			[8]int{0, 1, 2, 3, 4, 5, 6, 7}, nil
	case "RRL":
		return [6]geometry.Arrangement{
				geometry.Right, geometry.Right, geometry.Right,
				geometry.Right, geometry.Left, geometry.Left,
			},
			[8]int{2, 3, 0, 1, 6, 7, 4, 5}, nil
	case "LRR":
		return [6]geometry.Arrangement{
				geometry.Left, geometry.Left, geometry.Right,
				geometry.Right, geometry.Right, geometry.Right,
			},
			[8]int{1, 2, 3, 0, 5, 6, 7, 4}, nil
	case "RLR":
		return [6]geometry.Arrangement{
				geometry.Right, geometry.Right, geometry.Left,
				geometry.Left, geometry.Right, geometry.Right,
			},
			[8]int{3, 0, 1, 2, 7, 4, 5, 6}, nil
	case "RLL", "LRL", "LLR", "RRR":
		return [6]geometry.Arrangement{}, [8]int{}, fmt.Errorf("%w: %s", ErrNotImplemented, code)
	default:
		return [6]geometry.Arrangement{}, [8]int{}, fmt.Errorf("unknown structure type %q", code)
	}
}
