package value

import "fmt"

// Table is svpack's associative/array container: an ordered array-part
// plus a hash-part keyed on any non-Nil scalar.
//
// The array-part is always exactly the longest contiguous prefix
// [1..n] of integer keys with no gaps; Set and Delete maintain that
// invariant as entries come and go, so the encoder never has to
// recompute the split — it's already correct by construction.
type Table struct {
	Array []Value
	Hash  map[Key]Value
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{}
}

// Len returns the total number of entries across both parts.
func (t *Table) Len() int {
	return len(t.Array) + len(t.Hash)
}

// Append adds val at the next array-part index (len(Array)+1).
func (t *Table) Append(val Value) error {
	return t.Set(IntOf(int64(len(t.Array))+1), val)
}

// Set assigns val at key. Assigning Nil deletes the key, mirroring the
// host scripting language's table-assignment semantics, where assigning
// nil to a key is how a table drops that entry.
//
// An integer key inside the array-part's contiguous prefix replaces
// that Array entry. An integer key that exactly extends the prefix is
// appended to Array, draining any hash-part entries that become
// contiguous as a result. Every other key — non-integer, zero or
// negative, or past a gap — lands in Hash.
func (t *Table) Set(key, val Value) error {
	k, ok := KeyOf(key)
	if !ok {
		return fmt.Errorf("value: key %v is not a valid table key (Nil and Table are not allowed)", key.Kind)
	}

	if val.IsNil() {
		t.delete(k)
		return nil
	}

	if idx, isInt := k.AsArrayIndex(); isInt && idx >= 1 && idx <= int64(len(t.Array)) {
		t.Array[idx-1] = val
		return nil
	}

	if idx, isInt := k.AsArrayIndex(); isInt && idx == int64(len(t.Array))+1 {
		t.Array = append(t.Array, val)
		for {
			nextKey := Key{kind: KindInt, i: int64(len(t.Array)) + 1}
			v, exists := t.Hash[nextKey]
			if !exists {
				break
			}
			t.Array = append(t.Array, v)
			delete(t.Hash, nextKey)
		}

		return nil
	}

	if t.Hash == nil {
		t.Hash = make(map[Key]Value)
	}
	t.Hash[k] = val

	return nil
}

// Get retrieves the value at key.
func (t *Table) Get(key Value) (Value, bool) {
	k, ok := KeyOf(key)
	if !ok {
		return Value{}, false
	}

	if idx, isInt := k.AsArrayIndex(); isInt && idx >= 1 && idx <= int64(len(t.Array)) {
		return t.Array[idx-1], true
	}

	v, exists := t.Hash[k]

	return v, exists
}

// Delete removes key from the table, moving any array-part entries that
// follow a deleted array index into the hash-part so the array-part
// invariant (no gaps) keeps holding.
func (t *Table) Delete(key Value) {
	k, ok := KeyOf(key)
	if !ok {
		return
	}
	t.delete(k)
}

func (t *Table) delete(k Key) {
	if idx, isInt := k.AsArrayIndex(); isInt && idx >= 1 && idx <= int64(len(t.Array)) {
		pos := int(idx - 1)
		tail := t.Array[pos+1:]
		t.Array = t.Array[:pos]
		if len(tail) > 0 {
			if t.Hash == nil {
				t.Hash = make(map[Key]Value, len(tail))
			}
			for i, v := range tail {
				t.Hash[Key{kind: KindInt, i: idx + 1 + int64(i)}] = v
			}
		}

		return
	}

	if t.Hash != nil {
		delete(t.Hash, k)
	}
}

// Equal reports whether t and other hold the same array-part and
// hash-part entries under structural equality.
func (t *Table) Equal(other *Table) bool {
	if t == nil || other == nil {
		return t == other
	}
	if len(t.Array) != len(other.Array) || len(t.Hash) != len(other.Hash) {
		return false
	}
	for i, v := range t.Array {
		if !v.Equal(other.Array[i]) {
			return false
		}
	}
	for k, v := range t.Hash {
		ov, ok := other.Hash[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}

	return true
}
