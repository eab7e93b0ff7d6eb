package table

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by IndexedTable.At for an index with no entry.
var ErrIndexOutOfRange = errors.New("table: index out of range")

// IndexedTable holds values for consecutive integer keys first..first+len-1.
// It backs discrete corrections such as the conductor-count factor k_n.
type IndexedTable struct {
	name   string
	first  int
	values []float64
}

// NewIndexedTable returns a table whose first entry belongs to key first.
func NewIndexedTable(name string, first int, values []float64) (*IndexedTable, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrTooShort, name)
	}

	for i, v := range values {
		if !isFinite(v) {
			return nil, fmt.Errorf("%w: %s index %d", ErrNonFinite, name, first+i)
		}
	}

	return &IndexedTable{
		name:   name,
		first:  first,
		values: append([]float64(nil), values...),
	}, nil
}

// MustIndexedTable is like NewIndexedTable but panics on malformed data.
func MustIndexedTable(name string, first int, values []float64) *IndexedTable {
	t, err := NewIndexedTable(name, first, values)
	if err != nil {
		panic(err)
	}

	return t
}

// Name returns the table label.
func (t *IndexedTable) Name() string { return t.name }

// Range returns the smallest and largest valid key.
func (t *IndexedTable) Range() (first, last int) {
	return t.first, t.first + len(t.values) - 1
}

// At returns the value stored for key n.
func (t *IndexedTable) At(n int) (float64, error) {
	idx := n - t.first
	if idx < 0 || idx >= len(t.values) {
		first, last := t.Range()
		return 0, fmt.Errorf("%w: %s has keys %d..%d, got %d", ErrIndexOutOfRange, t.name, first, last, n)
	}

	return t.values[idx], nil
}
