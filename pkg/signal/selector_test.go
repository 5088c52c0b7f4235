package signal

import (
	"math"
	"testing"
)

// box is a comparable struct type that can hold uncomparable contents.
type box struct {
	V any
}

func TestSameValue(t *testing.T) {
	sharedSlice := []int{1, 2}
	sharedMap := map[string]int{"a": 1}
	sharedBox := box{V: sharedSlice}

	cases := []struct {
		name string
		a, b any
		want bool
	}{
		{"both nil", nil, nil, true},
		{"nil vs value", nil, 0, false},
		{"equal ints", 1, 1, true},
		{"different ints", 1, 2, false},
		{"different types", 1, int64(1), false},
		{"equal strings", "x", "x", true},
		{"NaN equals NaN", math.NaN(), math.NaN(), true},
		{"zero vs negative zero", 0.0, math.Copysign(0, -1), false},
		{"same slice reference", sharedSlice, sharedSlice, true},
		{"distinct equal slices", []int{1, 2}, []int{1, 2}, false},
		{"same map reference", sharedMap, sharedMap, true},
		{"distinct equal maps", map[string]int{"a": 1}, map[string]int{"a": 1}, false},
		{"equal structs", user{Name: "ada"}, user{Name: "ada"}, true},
		{"struct holding slice", box{V: []int{1}}, box{V: []int{1}}, false},
		{"identical struct holding slice", sharedBox, sharedBox, false},
		{"struct holding comparable value", box{V: 1}, box{V: 1}, true},
		{"array of slices", [1][]int{{1}}, [1][]int{{1}}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SameValue(tc.a, tc.b); got != tc.want {
				t.Errorf("SameValue(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestNewSelectorNilFallsBackToIdentity(t *testing.T) {
	if NewSelector(nil) != Identity {
		t.Error("NewSelector(nil) should return Identity")
	}
	if NewEquality(nil) != Strict {
		t.Error("NewEquality(nil) should return Strict")
	}
}
