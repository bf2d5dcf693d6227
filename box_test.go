package weldpath

import "testing"

func TestBox(t *testing.T) {
	b := NewBoxFromPoints(Pt(4, 0, 2), Pt(0, 2, 0))
	diff(t, Box{Pt(0, 0, 0), Pt(4, 2, 2)}, b)
	diff(t, Pt(2, 1, 1), b.Center())
	diff(t, Vec(4, 2, 2), b.Size())
	if v := b.Volume(); v != 16 {
		t.Errorf("got volume %v, want 16", v)
	}

	for _, tc := range []struct {
		pt   Point
		want bool
	}{
		{Pt(0, 0, 0), true},
		{Pt(4, 2, 2), true},
		{Pt(2, 1, 1), true},
		{Pt(4.5, 1, 1), false},
		{Pt(2, -0.1, 1), false},
	} {
		if got := b.Contains(tc.pt); got != tc.want {
			t.Errorf("Contains(%s) = %t, want %t", tc.pt, got, tc.want)
		}
	}
}

func TestBoxSetOperations(t *testing.T) {
	a := Box{Pt(0, 0, 0), Pt(2, 2, 2)}
	b := Box{Pt(1, 1, 1), Pt(3, 3, 3)}
	diff(t, Box{Pt(0, 0, 0), Pt(3, 3, 3)}, a.Union(b))
	diff(t, Box{Pt(1, 1, 1), Pt(2, 2, 2)}, a.Intersect(b))
	diff(t, Box{Pt(-1, 0, 0), Pt(2, 2, 2)}, a.UnionPoint(Pt(-1, 1, 1)))

	c := a.Intersect(Box{Pt(5, 5, 5), Pt(6, 6, 6)})
	if !c.IsEmpty() {
		t.Errorf("got %v, want an empty box", c)
	}
	if v := c.Volume(); v != 0 {
		t.Errorf("got volume %v for an empty box", v)
	}
	if flat := (Box{Pt(0, 0, 0), Pt(1, 0, 1)}); flat.IsEmpty() {
		t.Errorf("flat box %v shouldn't be empty", flat)
	}
	diff(t, Box{Pt(-1, -2, -3), Pt(1, 2, 3)}, NewBoxFromCenter(Pt(0, 0, 0), Vec(1, 2, 3)))
}
