package session

import (
	"encoding/json"
	"slices"
)

// Selection is the set of document names the user has opted into as query
// context. It is a value type: every mutating method returns a new Selection
// and leaves the receiver untouched, so snapshots handed to readers never
// change underneath them. The zero value is an empty selection.
//
// A Selection is not required to be a subset of the document list.
type Selection struct {
	items map[string]struct{}
}

// NewSelection builds a selection holding names.
func NewSelection(names ...string) Selection {
	return Selection{}.Add(names...)
}

func (s Selection) Contains(name string) bool {
	_, ok := s.items[name]
	return ok
}

func (s Selection) Len() int {
	return len(s.items)
}

// Toggle adds name when absent and removes it when present.
func (s Selection) Toggle(name string) Selection {
	if s.Contains(name) {
		return s.Remove(name)
	}
	return s.Add(name)
}

// Add returns a selection that also holds names.
func (s Selection) Add(names ...string) Selection {
	next := s.clone(len(names))
	for _, name := range names {
		next[name] = struct{}{}
	}
	return Selection{items: next}
}

// Remove returns a selection without name.
func (s Selection) Remove(name string) Selection {
	if !s.Contains(name) {
		return s
	}
	next := s.clone(0)
	delete(next, name)
	return Selection{items: next}
}

// Items returns the selected names in sorted order.
func (s Selection) Items() []string {
	out := make([]string, 0, len(s.items))
	for name := range s.items {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

func (s Selection) Equal(other Selection) bool {
	if s.Len() != other.Len() {
		return false
	}
	for name := range s.items {
		if !other.Contains(name) {
			return false
		}
	}
	return true
}

func (s Selection) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Items())
}

func (s *Selection) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	*s = NewSelection(names...)
	return nil
}

func (s Selection) clone(extra int) map[string]struct{} {
	next := make(map[string]struct{}, len(s.items)+extra)
	for name := range s.items {
		next[name] = struct{}{}
	}
	return next
}
