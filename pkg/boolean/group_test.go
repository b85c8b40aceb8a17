package boolean

import (
	"reflect"
	"testing"
)

func TestGroup(t *testing.T) {
	tests := []struct {
		name string
		in   [][]int
		want [][]int
	}{
		{
			name: "empty input",
			in:   nil,
			want: nil,
		},
		{
			name: "disjoint lists stay apart",
			in:   [][]int{{1, 2}, {3, 4}},
			want: [][]int{{1, 2}, {3, 4}},
		},
		{
			name: "shared tag merges",
			in:   [][]int{{1, 2, 3}, {3, 4, 5}, {9, 10}},
			want: [][]int{{1, 2, 3, 4, 5}, {9, 10}},
		},
		{
			name: "transitive merge across three lists",
			in:   [][]int{{1, 2}, {4, 5}, {2, 4}},
			want: [][]int{{1, 2, 4, 5}},
		},
		{
			name: "empty lists are skipped",
			in:   [][]int{{}, {7}, {}},
			want: [][]int{{7}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Group(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Group(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestGroupKeepsFirstEncounterOrder(t *testing.T) {
	got := Group([][]int{{20, 21}, {1, 2}, {21, 30}})
	want := [][]int{{20, 21, 30}, {1, 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Group = %v, want %v", got, want)
	}
}
