// Package changes tracks which fields of an aggregate were modified.
package changes

import "sort"

// Tracker records which fields of an aggregate were modified so the
// repository can write only those columns.
type Tracker struct {
	dirtyFields map[string]bool
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{
		dirtyFields: make(map[string]bool),
	}
}

// MarkDirty marks a field as modified.
func (ct *Tracker) MarkDirty(field string) {
	ct.dirtyFields[field] = true
}

// Dirty checks if a field has been modified.
func (ct *Tracker) Dirty(field string) bool {
	return ct.dirtyFields[field]
}

// Clear clears all dirty field markers.
func (ct *Tracker) Clear() {
	ct.dirtyFields = make(map[string]bool)
}

// HasChanges returns true if any field has been modified.
func (ct *Tracker) HasChanges() bool {
	return len(ct.dirtyFields) > 0
}

// DirtyFields returns the modified field names in sorted order.
func (ct *Tracker) DirtyFields() []string {
	fields := make([]string, 0, len(ct.dirtyFields))
	for field := range ct.dirtyFields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}
