package book

// AddressBook owns a set of records keyed by their normalized name.
// Iteration order is insertion order, which keeps listings and snapshots
// reproducible for a given in-memory instance.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// NewAddressBook creates an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// AddRecord inserts the record, replacing any existing entry with the same
// name. An overwrite keeps the original insertion position.
func (b *AddressBook) AddRecord(rec *Record) {
	key := rec.Name().String()
	if _, exists := b.records[key]; !exists {
		b.order = append(b.order, key)
	}
	b.records[key] = rec
}

// Find returns the record for the given name, if any.
func (b *AddressBook) Find(name string) (*Record, bool) {
	rec, ok := b.records[name]
	return rec, ok
}

// Delete removes the record for the given name and reports whether one
// existed. Deleting an absent name is not an error.
func (b *AddressBook) Delete(name string) bool {
	if _, ok := b.records[name]; !ok {
		return false
	}
	delete(b.records, name)
	for i, key := range b.order {
		if key == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return true
}

// Records returns all records in insertion order.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, key := range b.order {
		out = append(out, b.records[key])
	}
	return out
}

// Len returns the number of records.
func (b *AddressBook) Len() int {
	return len(b.records)
}
