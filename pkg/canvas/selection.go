package canvas

import "slices"

// Selection is an ordered set of element ids. The zero value is an empty
// selection. Methods never modify the receiver; they return a new value.
type Selection struct {
	ids []ID
}

// NewSelection returns a selection of ids with duplicates dropped.
func NewSelection(ids ...ID) Selection {
	var s Selection
	for _, id := range ids {
		if !s.Has(id) {
			s.ids = append(s.ids, id)
		}
	}
	return s
}

// SelectSingle replaces the selection with exactly id.
func (s Selection) SelectSingle(id ID) Selection {
	return Selection{ids: []ID{id}}
}

// Toggle adds id if absent and removes it if present.
func (s Selection) Toggle(id ID) Selection {
	if i := slices.Index(s.ids, id); i >= 0 {
		return Selection{ids: slices.Delete(slices.Clone(s.ids), i, i+1)}
	}
	return Selection{ids: append(slices.Clone(s.ids), id)}
}

// Clear returns the empty selection.
func (s Selection) Clear() Selection { return Selection{} }

// Has reports whether id is selected.
func (s Selection) Has(id ID) bool { return slices.Contains(s.ids, id) }

// Len returns the number of selected ids.
func (s Selection) Len() int { return len(s.ids) }

// Empty reports whether nothing is selected.
func (s Selection) Empty() bool { return len(s.ids) == 0 }

// IDs returns a copy of the selected ids in selection order.
func (s Selection) IDs() []ID { return slices.Clone(s.ids) }

// Single returns the selected id when exactly one element is selected.
func (s Selection) Single() (ID, bool) {
	if len(s.ids) != 1 {
		return "", false
	}
	return s.ids[0], true
}

// Equal reports whether both selections hold the same ids in the same order.
func (s Selection) Equal(o Selection) bool { return slices.Equal(s.ids, o.ids) }

// Prune drops ids that are not present in c.
func (s Selection) Prune(c Collection) Selection {
	var out Selection
	for _, id := range s.ids {
		if c.Has(id) {
			out.ids = append(out.ids, id)
		}
	}
	return out
}
