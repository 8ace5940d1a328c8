package httpkit

import "testing"

func TestClampInt(t *testing.T) {
	cases := []struct {
		name string
		v    int
		def  int
		max  int
		want int
	}{
		{"unset uses default", 0, 6, 6, 6},
		{"in range passes", 4, 6, 6, 4},
		{"above max ceilings", 50, 3, 10, 10},
		{"negative floors to one", -2, 3, 10, 1},
		{"max passes", 10, 3, 10, 10},
		{"one passes", 1, 6, 6, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampInt(tc.v, tc.def, tc.max); got != tc.want {
				t.Fatalf("ClampInt(%d, %d, %d) = %d, want %d", tc.v, tc.def, tc.max, got, tc.want)
			}
		})
	}
}
