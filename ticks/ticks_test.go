package ticks

import "testing"

func TestDiff(t *testing.T) {
	tests := []struct {
		name string
		a, b uint32
		want int32
	}{
		{
			name: "no elapsed time",
			a:    100,
			b:    100,
			want: 0,
		},
		{
			name: "forward difference",
			a:    1800,
			b:    1000,
			want: 800,
		},
		{
			name: "negative difference",
			a:    1000,
			b:    1800,
			want: -800,
		},
		{
			name: "wraparound",
			a:    5,
			b:    0xFFFFFFFF - 4,
			want: 10,
		},
		{
			name: "wraparound backwards",
			a:    0xFFFFFFFF - 4,
			b:    5,
			want: -10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Diff(tt.a, tt.b); got != tt.want {
				t.Errorf("Diff(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestManualAdvance(t *testing.T) {
	m := &Manual{}
	if m.NowMS() != 0 {
		t.Errorf("wanted fresh manual clock at 0, got %d", m.NowMS())
	}
	m.Advance(800)
	m.Advance(25)
	if m.NowMS() != 825 {
		t.Errorf("wanted 825, got %d", m.NowMS())
	}
	if d := Diff(m.NowMS(), 25); d != 800 {
		t.Errorf("wanted diff 800, got %d", d)
	}
}

func TestSystemMonotonic(t *testing.T) {
	c := System()
	a := c.NowMS()
	b := c.NowMS()
	if Diff(b, a) < 0 {
		t.Errorf("system clock went backwards: %d then %d", a, b)
	}
}
