package block

import (
	"errors"
	"testing"

	"github.com/somesortofme/gmsh-scripts/pkg/geometry"
)

func TestParseStructureType(t *testing.T) {
	tests := []struct {
		code  string
		order [8]int
	}{
		{"LLL", [8]int{0, 1, 2, 3, 4, 5, 6, 7}},
		{"RRL", [8]int{2, 3, 0, 1, 6, 7, 4, 5}},
		{"LRR", [8]int{1, 2, 3, 0, 5, 6, 7, 4}},
		{"RLR", [8]int{3, 0, 1, 2, 7, 4, 5, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			arr, order, err := ParseStructureType(tt.code)
			if err != nil {
				t.Fatalf("ParseStructureType(%q): %v", tt.code, err)
			}
			if order != tt.order {
				t.Errorf("order = %v, want %v", order, tt.order)
			}
			// The code letters give the arrangement of the X, Y and Z
			// face pairs in that order.
			pairs := [3][2]int{{FaceNX, FaceX}, {FaceNY, FaceY}, {FaceNZ, FaceZ}}
			for axis, pair := range pairs {
				want := geometry.Left
				if tt.code[axis] == 'R' {
					want = geometry.Right
				}
				for _, face := range pair {
					if arr[face] != want {
						t.Errorf("%s: face %d arrangement = %s, want %s", tt.code, face, arr[face], want)
					}
				}
			}
		})
	}
}

func TestParseStructureTypePermutationIsBijection(t *testing.T) {
	for _, code := range []string{"LLL", "RRL", "LRR", "RLR"} {
		_, order, err := ParseStructureType(code)
		if err != nil {
			t.Fatal(err)
		}
		seen := [8]bool{}
		for _, i := range order {
			if seen[i] {
				t.Errorf("%s: corner %d repeated", code, i)
			}
			seen[i] = true
		}
	}
}

func TestParseStructureTypeNotImplemented(t *testing.T) {
	for _, code := range []string{"RLL", "LRL", "LLR", "RRR"} {
		_, _, err := ParseStructureType(code)
		if !errors.Is(err, ErrNotImplemented) {
			t.Errorf("ParseStructureType(%q) = %v, want ErrNotImplemented", code, err)
		}
	}
}

func TestParseStructureTypeUnknown(t *testing.T) {
	_, _, err := ParseStructureType("ZZZ")
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrNotImplemented) {
		t.Error("unknown code must not report ErrNotImplemented")
	}
}
