package formatter

import (
	"fmt"
	"slices"
	"weak"
)

// Ref is an index or closed index range into a Formatter that is kept
// numerically valid as the buffer is mutated.
//
// The Formatter holds refs weakly: a Ref that is no longer reachable is
// dropped from the registry the next time the buffer changes. Release
// unregisters a Ref immediately.
type Ref struct {
	owner *Formatter
	lower int
	upper int
}

// NewRangeRef registers a reference to the closed range [lower, upper].
func (f *Formatter) NewRangeRef(lower, upper int) *Ref {
	if lower < 0 || upper < lower {
		panic(fmt.Sprintf("formatter: invalid reference range [%d, %d]", lower, upper))
	}
	ref := &Ref{owner: f, lower: lower, upper: upper}
	f.refs = append(f.refs, weak.Make(ref))
	return ref
}

// NewIndexRef registers a reference to a single index.
func (f *Formatter) NewIndexRef(index int) *Ref {
	return f.NewRangeRef(index, index)
}

// Index returns the lower bound of the reference.
func (r *Ref) Index() int { return r.lower }

// Range returns the bounds of the reference.
func (r *Ref) Range() (lower, upper int) { return r.lower, r.upper }

// Release stops the reference from being updated. It is safe to call more
// than once.
func (r *Ref) Release() {
	if r.owner == nil {
		return
	}
	self := weak.Make(r)
	r.owner.refs = slices.DeleteFunc(r.owner.refs, func(ptr weak.Pointer[Ref]) bool {
		return ptr == self
	})
	r.owner = nil
}

// shift applies a mutation at index with a signed length delta.
func (r *Ref) shift(index, delta int) {
	switch {
	case index < r.lower:
		r.lower += delta
		r.upper += delta
		// A removal that swallowed the lower bound leaves it at the
		// removal point.
		r.lower = max(r.lower, index)
	case index <= r.upper:
		r.upper += delta
	}
	if r.lower > r.upper {
		r.upper = r.lower
	}
}

// updateRefs shifts every live reference and prunes collected ones.
func (f *Formatter) updateRefs(index, delta int) {
	live := f.refs[:0]
	for _, ptr := range f.refs {
		ref := ptr.Value()
		if ref == nil {
			continue
		}
		ref.shift(index, delta)
		live = append(live, ptr)
	}
	clear(f.refs[len(live):])
	f.refs = live
}
