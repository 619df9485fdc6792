package fieldindex

import "sync"

// Dictionary interns document identities to dense uint32 rows.
//
// Rows are assigned in first-seen order and never reused, so the row
// order of any bitmap built on one dictionary is stable across calls.
// One dictionary is shared by every index of a registry.
type Dictionary struct {
	mu   sync.RWMutex
	rows map[string]uint32
	ids  []string
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{
		rows: make(map[string]uint32),
	}
}

// Intern returns the row for id, assigning the next free row on first
// sight.
func (d *Dictionary) Intern(id string) uint32 {
	d.mu.RLock()
	row, ok := d.rows[id]
	d.mu.RUnlock()
	if ok {
		return row
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	// Re-check: another writer may have interned id meanwhile.
	if row, ok := d.rows[id]; ok {
		return row
	}
	row = uint32(len(d.ids))
	d.rows[id] = row
	d.ids = append(d.ids, id)
	return row
}

// Row returns the row for id without assigning one.
func (d *Dictionary) Row(id string) (uint32, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	row, ok := d.rows[id]
	return row, ok
}

// ID resolves a row back to its document identity.
func (d *Dictionary) ID(row uint32) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if int(row) >= len(d.ids) {
		return "", false
	}
	return d.ids[row], true
}

// Len returns the number of interned identities.
func (d *Dictionary) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.ids)
}
