package retained

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
	"testing"
)

func TestNodeIdentity(t *testing.T) {
	a := NewBlock(V2(1, 1), color.RGBA{})
	b := NewBlock(V2(1, 1), color.RGBA{})
	c := a

	if a != c {
		t.Error("copies of a node should be equal")
	}
	if a == b {
		t.Error("distinct nodes should not be equal")
	}
	set := map[Node]bool{a: true}
	if !set[c] || set[b] {
		t.Error("node map keys should follow identity")
	}
	if !(Node{}).IsNil() || a.IsNil() {
		t.Error("IsNil mismatch")
	}
}

func TestBorrowRules(t *testing.T) {
	tests := []struct {
		name      string
		first     func(Node) *Ref
		second    func(Node) *Ref
		wantPanic bool
	}{
		{"shared then shared", Node.Get, Node.Get, false},
		{"shared then exclusive", Node.Get, Node.GetMut, true},
		{"exclusive then shared", Node.GetMut, Node.Get, true},
		{"exclusive then exclusive", Node.GetMut, Node.GetMut, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewBlock(V2(1, 1), color.RGBA{})
			r := tt.first(n)
			defer r.Release()

			panicked := func() (p bool) {
				defer func() { p = recover() != nil }()
				tt.second(n).Release()
				return false
			}()
			if panicked != tt.wantPanic {
				t.Errorf("panicked = %v, want %v", panicked, tt.wantPanic)
			}
		})
	}
}

func TestBorrowReleased(t *testing.T) {
	n := NewBlock(V2(1, 1), color.RGBA{})
	r := n.GetMut()
	r.Release()
	r.Release()

	shared := n.Get()
	shared.Release()
	n.GetMut().Release()
}

func TestBorrowErrorCarriesStack(t *testing.T) {
	n := NewBlock(V2(1, 1), color.RGBA{})
	r := n.GetMut()
	defer r.Release()

	var got any
	func() {
		defer func() { got = recover() }()
		n.Get()
	}()

	err, ok := got.(error)
	if !ok {
		t.Fatalf("panic value %T is not an error", got)
	}
	var be *BorrowError
	if !errors.As(err, &be) {
		t.Fatalf("panic value %v is not a *BorrowError", err)
	}
	if be.Op != "Get" || be.Widget != "*retained.Block" {
		t.Errorf("got op %q widget %q", be.Op, be.Widget)
	}
	if len(be.StackTrace()) == 0 {
		t.Error("expected a stack trace")
	}
	if s := fmt.Sprintf("%+v", be); !strings.Contains(s, "handle_test.go") {
		t.Errorf("%%+v output does not include the caller:\n%s", s)
	}
}

func TestReadMutateTypeMismatch(t *testing.T) {
	n := NewLabel("hi")

	called := false
	if Read(n, func(*Block) { called = true }) || called {
		t.Error("Read should not call fn for a different widget type")
	}
	if !Mutate(n, func(l *Label) { l.SetText("bye") }) {
		t.Fatal("Mutate should match *Label")
	}
	Read(n, func(l *Label) {
		if l.Text() != "bye" {
			t.Errorf("Text() = %q, want %q", l.Text(), "bye")
		}
	})
}

func TestBuildSetsParent(t *testing.T) {
	child := NewBlock(V2(1, 1), color.RGBA{})
	box := NewBox(child).Build()

	parent, ok := child.Parent()
	if !ok || parent != box {
		t.Errorf("Parent() = %v, %v; want %v", parent, ok, box)
	}
	if _, ok := box.Parent(); ok {
		t.Error("root should have no parent")
	}
}

func TestWeakNodeUnset(t *testing.T) {
	var w WeakNode
	if _, ok := w.Upgrade(); ok {
		t.Error("zero WeakNode should not upgrade")
	}
	if _, ok := (Node{}).Downgrade().Upgrade(); ok {
		t.Error("weak ref to nil node should not upgrade")
	}
}

func TestBorrowNilNode(t *testing.T) {
	for _, op := range []string{"Get", "GetMut"} {
		t.Run(op, func(t *testing.T) {
			var got any
			func() {
				defer func() { got = recover() }()
				if op == "Get" {
					Node{}.Get()
				} else {
					Node{}.GetMut()
				}
			}()
			be, ok := got.(*BorrowError)
			if !ok {
				t.Fatalf("panic value %v (%T) is not a *BorrowError", got, got)
			}
			if be.Op != op || be.Widget != "<nil>" {
				t.Errorf("got op %q widget %q", be.Op, be.Widget)
			}
			if !strings.Contains(be.Error(), "nil node") {
				t.Errorf("Error() = %q", be.Error())
			}
		})
	}
}
