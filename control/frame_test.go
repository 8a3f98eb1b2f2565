package control

import "testing"

func TestFrameDelta(t *testing.T) {
	cases := []struct {
		name     string
		readings []float64
		want     []float64
	}{
		{"first_is_baseline", []float64{42}, []float64{0}},
		{"steady", []float64{1, 1.5, 2.25}, []float64{0, 0.5, 0.75}},
		{"backwards", []float64{5, 4, 4.5}, []float64{0, 0, 0.5}},
		{"stalled", []float64{2, 2}, []float64{0, 0}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var d FrameDelta
			for i, now := range c.readings {
				if got := d.Next(now); !approx(got, c.want[i]) {
					t.Fatalf("reading %d (%v): dt = %v, want %v", i, now, got, c.want[i])
				}
			}
		})
	}
}
