package geom

import "testing"

func TestNewAABB(t *testing.T) {
	a := NewAABB(5, 6, 4, 10)
	if a.CX != 5 || a.CY != 6 || a.HalfWidth != 2 || a.HalfHeight != 5 {
		t.Errorf("NewAABB(5, 6, 4, 10) = %+v", a)
	}
	if a.Width() != 4 || a.Height() != 10 {
		t.Errorf("Width/Height = %v/%v, want 4/10", a.Width(), a.Height())
	}
}

func TestAABB_ToRect(t *testing.T) {
	a := NewAABB(5, 6, 4, 10)
	want := Rectangle{3, 1, 4, 10}
	if got := a.ToRect(); !got.Equals(want) {
		t.Errorf("ToRect() = %v, want %v", got, want)
	}
	var b AABB
	if got := b.FromRect(want); got != &b || !b.Equals(a) {
		t.Errorf("FromRect(%v) = %+v, want %+v", want, b, a)
	}
}

func TestAABB_RectRoundTrip(t *testing.T) {
	boxes := []AABB{
		{},
		NewAABB(0, 0, 1, 1),
		NewAABB(-3.3, 7.7, 0.1, 12.9),
		NewAABB(1e6, -1e6, 3, 5),
		{CX: 0.1, CY: 0.2, HalfWidth: 0.3, HalfHeight: 0.7},
	}
	for _, a := range boxes {
		var got AABB
		got.FromRect(a.ToRect())
		if !got.EqualsApprox(a, 1e-9) {
			t.Errorf("FromRect(%+v.ToRect()) = %+v", a, got)
		}
	}
}

func TestAABB_Position(t *testing.T) {
	var a AABB
	a.SetPosition(3, 4)
	if !a.Position().Equals(Pt(3, 4)) {
		t.Errorf("SetPosition: %+v", a)
	}
	a.SetPositionPoint(Pt(-1, 2))
	if a.CX != -1 || a.CY != 2 {
		t.Errorf("SetPositionPoint: %+v", a)
	}
}

func TestAABB_Copy(t *testing.T) {
	src := NewAABB(1, 2, 3, 4)
	var dst AABB
	if got := dst.CopyFrom(src); got != &dst || !dst.Equals(src) {
		t.Errorf("CopyFrom: %+v", dst)
	}
	var target AABB
	if got := src.CopyTo(&target); got != &target || !target.Equals(src) {
		t.Errorf("CopyTo: %+v", target)
	}
	if c := src.Clone(); !c.Equals(src) {
		t.Errorf("Clone: %+v", c)
	}
	if src.EqualsApprox(NewAABB(1, 2, 3, 4.1), 0.01) {
		t.Error("EqualsApprox accepted a difference above tolerance")
	}
}
