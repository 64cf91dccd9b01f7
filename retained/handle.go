package retained

import (
	"fmt"
	"weak"

	"github.com/pkg/errors"
)

// ============================================================================
// Node Handle
// ============================================================================

// Node is a shared handle to one widget. Copying a Node shares the widget;
// it never copies widget state. Two Nodes are equal iff they refer to the
// same widget, so Node can be used as a map key.
//
// Access to the widget goes through Get and GetMut, which track borrows at
// runtime: any number of shared borrows, or exactly one exclusive borrow.
// Violating that panics with a *BorrowError.
type Node struct {
	c *cell
}

type cell struct {
	widget  Widget
	readers int
	writing bool
}

// NewNode wraps w in a new handle.
func NewNode(w Widget) Node {
	return Node{c: &cell{widget: w}}
}

// IsNil reports whether the handle refers to no widget.
func (n Node) IsNil() bool { return n.c == nil }

// String names the widget's dynamic type. It does not borrow.
func (n Node) String() string {
	if n.c == nil {
		return "Node(nil)"
	}
	return fmt.Sprintf("Node(%T@%p)", n.c.widget, n.c)
}

// Get takes a shared borrow. It panics if the widget is exclusively borrowed
// or n is nil.
func (n Node) Get() *Ref {
	if n.c == nil || n.c.writing {
		panic(newBorrowError("Get", n))
	}
	n.c.readers++
	return &Ref{c: n.c}
}

// GetMut takes an exclusive borrow. It panics if any borrow is outstanding
// or n is nil.
func (n Node) GetMut() *Ref {
	if n.c == nil || n.c.writing || n.c.readers > 0 {
		panic(newBorrowError("GetMut", n))
	}
	n.c.writing = true
	return &Ref{c: n.c, mut: true}
}

// With runs fn under a shared borrow.
func (n Node) With(fn func(w Widget)) {
	r := n.Get()
	defer r.Release()
	fn(r.Widget())
}

// WithMut runs fn under an exclusive borrow.
func (n Node) WithMut(fn func(w Widget)) {
	r := n.GetMut()
	defer r.Release()
	fn(r.Widget())
}

// Downgrade returns a non-owning reference to the same widget.
func (n Node) Downgrade() WeakNode {
	if n.c == nil {
		return WeakNode{}
	}
	return WeakNode{p: weak.Make(n.c)}
}

// Ref is an outstanding borrow. Release must be called exactly once.
type Ref struct {
	c        *cell
	mut      bool
	released bool
}

// Widget returns the borrowed widget. It must not be retained past Release.
func (r *Ref) Widget() Widget { return r.c.widget }

// Release ends the borrow. Extra calls are ignored.
func (r *Ref) Release() {
	if r.released {
		return
	}
	r.released = true
	if r.mut {
		r.c.writing = false
	} else {
		r.c.readers--
	}
}

// Read borrows n shared and type-asserts the widget to T. ok is false when
// the widget is not a T; fn is not called in that case.
func Read[T Widget](n Node, fn func(w T)) (ok bool) {
	r := n.Get()
	defer r.Release()
	w, ok := r.Widget().(T)
	if ok {
		fn(w)
	}
	return ok
}

// Mutate borrows n exclusively and type-asserts the widget to T.
func Mutate[T Widget](n Node, fn func(w T)) (ok bool) {
	r := n.GetMut()
	defer r.Release()
	w, ok := r.Widget().(T)
	if ok {
		fn(w)
	}
	return ok
}

// WeakNode refers to a widget without keeping it alive. Children hold their
// parent this way so the tree has no ownership cycles.
type WeakNode struct {
	p weak.Pointer[cell]
}

// Upgrade returns the strong handle, or ok=false if the widget is gone or
// the reference was never set.
func (w WeakNode) Upgrade() (n Node, ok bool) {
	c := w.p.Value()
	if c == nil {
		return Node{}, false
	}
	return Node{c: c}, true
}

// ============================================================================
// Borrow Errors
// ============================================================================

// BorrowError is the panic value raised when a widget is borrowed while an
// incompatible borrow is outstanding, or when a nil Node is borrowed. It is a
// programming error: a handler re-entered a widget that was already being
// read or written.
type BorrowError struct {
	Op     string
	Widget string
	err    error
}

func newBorrowError(op string, n Node) *BorrowError {
	if n.c == nil {
		return &BorrowError{Op: op, Widget: "<nil>", err: errors.Errorf("%s: nil node", op)}
	}
	name := fmt.Sprintf("%T", n.c.widget)
	state := "shared"
	if n.c.writing {
		state = "exclusive"
	}
	return &BorrowError{
		Op:     op,
		Widget: name,
		err:    errors.Errorf("%s: %s already has an outstanding %s borrow", op, name, state),
	}
}

func (e *BorrowError) Error() string { return "retained: " + e.err.Error() }

// Unwrap returns the underlying error, which carries the stack trace.
func (e *BorrowError) Unwrap() error { return e.err }

// Cause implements the github.com/pkg/errors causer interface.
func (e *BorrowError) Cause() error { return e.err }

// StackTrace returns the stack captured where the violation was detected.
func (e *BorrowError) StackTrace() errors.StackTrace {
	if st, ok := e.err.(interface{ StackTrace() errors.StackTrace }); ok {
		return st.StackTrace()
	}
	return nil
}

// Format supports %+v to print the stack trace.
func (e *BorrowError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "retained: %+v", e.err)
		return
	}
	fmt.Fprint(s, e.Error())
}
