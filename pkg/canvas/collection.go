package canvas

import (
	"errors"
	"slices"
)

var (
	// ErrEmptyID is returned by [Collection.Append] when an element has no id.
	ErrEmptyID = errors.New("element ID must not be empty")

	// ErrDuplicateID is returned by [Collection.Append] when an element's id
	// is already present. Element ids are unique within a collection.
	ErrDuplicateID = errors.New("duplicate element ID")
)

// Collection is an immutable, ordered sequence of elements. Order is
// z-order: later elements are drawn on top. The zero value is empty and
// ready to use.
//
// Every method that changes the sequence returns a new Collection and
// leaves the receiver untouched, so a snapshot handed to an observer never
// changes underneath it.
type Collection struct {
	elems []Element
}

// NewCollection builds a collection from elems in order.
func NewCollection(elems ...Element) (Collection, error) {
	return Collection{}.Append(elems...)
}

// Len returns the number of elements.
func (c Collection) Len() int { return len(c.elems) }

// At returns the element at z-position i.
func (c Collection) At(i int) Element { return c.elems[i] }

// Elements returns a copy of the elements in z-order.
func (c Collection) Elements() []Element { return slices.Clone(c.elems) }

// IDs returns the element ids in z-order.
func (c Collection) IDs() []ID {
	ids := make([]ID, len(c.elems))
	for i, e := range c.elems {
		ids[i] = e.ID
	}
	return ids
}

// Index returns the z-position of id, or -1 if absent.
func (c Collection) Index(id ID) int {
	return slices.IndexFunc(c.elems, func(e Element) bool { return e.ID == id })
}

// Has reports whether an element with id exists.
func (c Collection) Has(id ID) bool { return c.Index(id) >= 0 }

// Get returns the element with id.
func (c Collection) Get(id ID) (Element, bool) {
	if i := c.Index(id); i >= 0 {
		return c.elems[i], true
	}
	return Element{}, false
}

// Append returns a collection with elems added on top, in order.
func (c Collection) Append(elems ...Element) (Collection, error) {
	out := Collection{elems: slices.Clip(slices.Clone(c.elems))}
	for _, e := range elems {
		if e.ID == "" {
			return c, ErrEmptyID
		}
		if out.Has(e.ID) {
			return c, ErrDuplicateID
		}
		out.elems = append(out.elems, e)
	}
	return out, nil
}

// Remove returns a collection without the elements whose ids are selected.
func (c Collection) Remove(sel Selection) Collection {
	out := Collection{elems: make([]Element, 0, len(c.elems))}
	for _, e := range c.elems {
		if !sel.Has(e.ID) {
			out.elems = append(out.elems, e)
		}
	}
	return out
}

// Update returns a collection where every element whose id is in ids has
// been replaced by fn(element). The id and kind of the result are forced
// back to the original values.
func (c Collection) Update(ids []ID, fn func(Element) Element) Collection {
	out := Collection{elems: slices.Clone(c.elems)}
	for i, e := range out.elems {
		if !slices.Contains(ids, e.ID) {
			continue
		}
		n := fn(e)
		n.ID, n.Kind = e.ID, e.Kind
		out.elems[i] = n
	}
	return out
}

// Selected returns the selected elements in z-order. Selected ids that are
// not in the collection are skipped.
func (c Collection) Selected(sel Selection) []Element {
	var out []Element
	for _, e := range c.elems {
		if sel.Has(e.ID) {
			out = append(out, e)
		}
	}
	return out
}

// Bounds returns the box enclosing every element. The second result is
// false for an empty collection.
func (c Collection) Bounds() (Rect, bool) {
	if len(c.elems) == 0 {
		return Rect{}, false
	}
	b := c.elems[0].Rect
	for _, e := range c.elems[1:] {
		b = b.Union(e.Rect)
	}
	return b, true
}

// SelectedIDs returns the ids of [Collection.Selected].
func (c Collection) SelectedIDs(sel Selection) []ID {
	var ids []ID
	for _, e := range c.elems {
		if sel.Has(e.ID) {
			ids = append(ids, e.ID)
		}
	}
	return ids
}
