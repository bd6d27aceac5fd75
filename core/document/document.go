package document

// Document is an ordered mapping from string keys to decoded values.
// The zero value is not usable; use New.
type Document struct {
	keys   []string
	values map[string]any
}

// New returns an empty document.
func New() *Document {
	return &Document{values: make(map[string]any)}
}

// Set stores v under key. A new key is appended; an existing key keeps its position.
func (d *Document) Set(key string, v any) {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = v
}

// Get returns the value stored under key.
func (d *Document) Get(key string) (any, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Has reports whether key is present.
func (d *Document) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

// Delete removes key. Missing keys are ignored.
func (d *Document) Delete(key string) {
	if _, ok := d.values[key]; !ok {
		return
	}
	delete(d.values, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in document order.
func (d *Document) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Len returns the number of keys.
func (d *Document) Len() int {
	return len(d.keys)
}

// Reordered returns a new document holding the keys of order that exist in d,
// in that order. Keys of d not listed in order are dropped.
func (d *Document) Reordered(order []string) *Document {
	out := New()
	for _, k := range order {
		if v, ok := d.values[k]; ok {
			out.Set(k, v)
		}
	}
	return out
}

// Clone returns a shallow copy of d.
func (d *Document) Clone() *Document {
	return d.Reordered(d.keys)
}

// normalize turns lists whose elements are all strings into []string so the
// engine sees one list type regardless of the backend.
func normalize(v any) any {
	list, ok := v.([]any)
	if !ok {
		return v
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return v
		}
		out = append(out, s)
	}
	return out
}
