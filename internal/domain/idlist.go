package domain

import "encoding/json"

// IDList is a category or sub-category reference field. Legacy catalog records
// store a single id as a bare JSON string; newer records store an ordered list.
// Both shapes decode into an IDList, so callers never branch on the raw form.
type IDList []string

// UnmarshalJSON accepts null, a single string, or an array of strings.
func (l *IDList) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*l = nil
		return nil
	}
	var single string
	if err := json.Unmarshal(b, &single); err == nil {
		*l = IDList{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return err
	}
	*l = IDList(many)
	return nil
}

// MarshalJSON writes a single id back as a bare string so legacy records keep
// their original shape on round trip.
func (l IDList) MarshalJSON() ([]byte, error) {
	if len(l) == 1 {
		return json.Marshal(l[0])
	}
	return json.Marshal([]string(l))
}

// Contains reports whether id is one of the referenced ids.
func (l IDList) Contains(id string) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}

// Primary returns the first referenced id. The second return is false when the
// field is absent.
func (l IDList) Primary() (string, bool) {
	if len(l) == 0 {
		return "", false
	}
	return l[0], true
}
