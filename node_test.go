package dllist

import "testing"

func TestNodeEqual(t *testing.T) {
	a, b, c := 1, 1, 2
	na := NewNode(&a)
	nb := NewNode(&b)
	nc := NewNode(&c)

	if !na.Equal(na) {
		t.Error("node must be equal to itself")
	}
	if !na.Equal(nb) {
		t.Error("unlinked nodes with equal values must be equal")
	}
	if na.Equal(nc) {
		t.Error("nodes with different values must not be equal")
	}
	if na.Equal(nil) || (*Node[int])(nil).Equal(na) {
		t.Error("node must not be equal to nil")
	}

	na.next = nc
	if na.Equal(nb) {
		t.Error("nodes with different links must not be equal")
	}
}

func TestNodeAssign(t *testing.T) {
	a, b := 1, 2
	na := NewNode(&a)
	nb := NewNode(&b)
	na.next = nb

	na.Assign(nb)
	if a != 2 {
		t.Errorf("assignment must copy the value payload, got %d", a)
	}
	if na.Ref() != &a {
		t.Error("assignment must not rebind the node")
	}
	if na.Next() != nb || na.Prev() != nil {
		t.Error("assignment must not touch links")
	}
}
