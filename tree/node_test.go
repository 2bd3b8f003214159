package tree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNode_SetGet(t *testing.T) {
	tbl := NewTable()
	tbl.Set("a", FromInt(1))
	tbl.Set("b", FromString("x"))
	tbl.Set("a", FromInt(2)) // rebind keeps position

	if got := tbl.TableKeys(); !cmp.Equal(got, []string{"a", "b"}) {
		t.Errorf("keys = %v, want [a b]", got)
	}
	a := tbl.Get("a")
	if a == nil || a.Int64 == nil || *a.Int64 != 2 {
		t.Errorf("a = %v, want 2", a)
	}
	if tbl.Get("missing") != nil {
		t.Error("expected nil for missing key")
	}
	if !tbl.Has("b") || tbl.Has("c") {
		t.Error("Has gave wrong answers")
	}
}

func TestNode_Delete(t *testing.T) {
	tbl := NewTable()
	tbl.Set("a", FromInt(1))
	tbl.Set("b", FromInt(2))
	tbl.Set("c", FromInt(3))

	if !tbl.Delete("b") {
		t.Fatal("delete of bound key reported false")
	}
	if tbl.Delete("b") {
		t.Fatal("delete of unbound key reported true")
	}
	if got := tbl.TableKeys(); !cmp.Equal(got, []string{"a", "c"}) {
		t.Errorf("keys = %v, want [a c]", got)
	}
	if tbl.Len() != 2 {
		t.Errorf("len = %d, want 2", tbl.Len())
	}
}

func TestNode_GetOnNonTable(t *testing.T) {
	if FromString("x").Get("a") != nil {
		t.Error("Get on scalar should be nil")
	}
}

func TestNode_Clone(t *testing.T) {
	tbl := NewTable()
	sub := NewTable()
	sub.Set("k", FromFloat(1.5))
	tbl.Set("sub", sub)
	tbl.Set("arr", FromSlice([]*Node{FromBool(true), Null()}))

	clone := tbl.Clone()
	if d := cmp.Diff(tbl.ToGo(), clone.ToGo()); d != "" {
		t.Fatalf("clone differs: %s", d)
	}
	sub.Set("k", FromFloat(2.5))
	ck := clone.Get("sub").Get("k")
	if *ck.Float64 != 1.5 {
		t.Error("clone shares storage with original")
	}
}

func TestNode_Visit(t *testing.T) {
	tbl := NewTable()
	sub := NewTable()
	sub.Set("k", FromInt(1))
	tbl.Set("sub", sub)
	tbl.Set("v", FromString("x"))

	count := 0
	err := tbl.Visit(func(n *Node, isPost bool) (bool, error) {
		if !isPost {
			count++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if count != 4 {
		t.Errorf("visited %d nodes, want 4", count)
	}
}
