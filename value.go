// Package ako parses and serializes the ako configuration format: a
// compact, human-authored document format supporting an implicit
// top-level table, dotted-key nesting, value-first boolean/null
// shorthands, short-type literals, and a numeric vector shorthand.
package ako

import "fmt"

// Kind is the tag of a Value's variant.
type Kind int

const (
	Null Kind = iota
	Bool
	Int
	Float
	String
	ShortType
	Table
	Array
	Error
)

var kindNames = [...]string{
	Null:      "null",
	Bool:      "bool",
	Int:       "int",
	Float:     "float",
	String:    "string",
	ShortType: "shorttype",
	Table:     "table",
	Array:     "array",
	Error:     "error",
}

// String returns the kind's diagnostic name, matching AkoType_Strings in
// the original implementation.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// entry is one (key, value) pair of a Table, in insertion order.
type entry struct {
	key   string
	value *Value
}

// Value is a tagged-variant document node: one of Null, Bool, Int,
// Float, String, ShortType, Table, Array, or Error. Exactly one payload
// field is meaningful at a time, selected by Kind.
//
// There is no Destroy operation: a Value owns only plain Go slices and
// strings, reachable and reclaimed by the garbage collector like any
// other Go value. The allocator-hook protocol the original C library
// exposes is out of scope here (spec.md §1) for the same reason.
type Value struct {
	kind Kind

	b     bool
	i     int64
	f     float64
	str   string // String, ShortType, Error payload
	table []entry
	array []*Value
}

// New creates a Value of the given kind, with a zero payload. Table and
// Array kinds start with an empty (non-nil) child collection.
func New(kind Kind) *Value {
	v := &Value{}
	v.SetKind(kind)
	return v
}

func isContainer(k Kind) bool {
	return k == Table || k == Array
}

// SetKind changes v's kind, converting its internal storage as needed:
// transitioning out of Table/Array discards the child collection;
// transitioning into Table/Array allocates an empty one. This mirrors
// ako_elem_set_type's container-storage acquire/release contract.
func (v *Value) SetKind(kind Kind) {
	if v.kind == kind {
		return
	}

	if isContainer(v.kind) {
		v.table = nil
		v.array = nil
	}
	switch kind {
	case Table:
		v.table = []entry{}
	case Array:
		v.array = []*Value{}
	}

	v.kind = kind
}

// Kind reports v's current kind.
func (v *Value) Kind() Kind { return v.kind }

// IsError reports whether v is an Error value.
func (v *Value) IsError() bool { return v.kind == Error }

// --- scalar constructors ---

// NewInt creates an Int value.
func NewInt(value int64) *Value {
	v := New(Int)
	v.SetInt(value)
	return v
}

// NewFloat creates a Float value.
func NewFloat(value float64) *Value {
	v := New(Float)
	v.SetFloat(value)
	return v
}

// NewString creates a String value.
func NewString(s string) *Value {
	v := New(String)
	v.SetString(s)
	return v
}

// NewShortType creates a ShortType value.
func NewShortType(s string) *Value {
	v := New(ShortType)
	v.SetShortType(s)
	return v
}

// NewBool creates a Bool value.
func NewBool(b bool) *Value {
	v := New(Bool)
	v.SetBool(b)
	return v
}

// NewError creates an Error value carrying msg as its diagnostic. An
// Error value is never inserted into a Table or Array; it is only ever
// returned directly from Parse.
func NewError(msg string) *Value {
	v := New(Error)
	v.str = msg
	return v
}

// NewErrorf is NewError with fmt.Sprintf formatting.
func NewErrorf(format string, args ...any) *Value {
	return NewError(fmt.Sprintf(format, args...))
}

// --- scalar setters ---

// SetNull sets v's kind to Null.
func (v *Value) SetNull() { v.SetKind(Null) }

// SetString sets v's kind to String and its payload to s.
func (v *Value) SetString(s string) {
	v.SetKind(String)
	v.str = s
}

// SetInt sets v's kind to Int and its payload to value.
func (v *Value) SetInt(value int64) {
	v.SetKind(Int)
	v.i = value
}

// SetFloat sets v's kind to Float and its payload to value.
func (v *Value) SetFloat(value float64) {
	v.SetKind(Float)
	v.f = value
}

// SetShortType sets v's kind to ShortType and its payload to s.
func (v *Value) SetShortType(s string) {
	v.SetKind(ShortType)
	v.str = s
}

// SetBool sets v's kind to Bool and its payload to b.
func (v *Value) SetBool(b bool) {
	v.SetKind(Bool)
	v.b = b
}

// --- scalar getters ---
//
// Getters assume the caller already checked Kind; calling one on a
// mismatched kind returns the zero value rather than panicking, since a
// malformed document must never crash the host program (spec.md §7).

// Str returns v's String or Error payload.
func (v *Value) Str() string {
	if v.kind != String && v.kind != Error {
		return ""
	}
	return v.str
}

// Int returns v's Int payload.
func (v *Value) Int() int64 {
	if v.kind != Int {
		return 0
	}
	return v.i
}

// Float returns v's Float payload.
func (v *Value) Float() float64 {
	if v.kind != Float {
		return 0
	}
	return v.f
}

// ShortType returns v's ShortType payload.
func (v *Value) ShortType() string {
	if v.kind != ShortType {
		return ""
	}
	return v.str
}

// Bool returns v's Bool payload.
func (v *Value) Bool() bool {
	if v.kind != Bool {
		return false
	}
	return v.b
}

// Err returns the diagnostic message of an Error value, or "" otherwise.
func (v *Value) Err() string {
	if v.kind != Error {
		return ""
	}
	return v.str
}

// --- table operations ---

// TableAdd appends (key, value) to v's table, transferring ownership of
// value to v. Duplicate keys are allowed: lookups return the first
// match in insertion order (spec.md §3, §9's resolved Open Question).
func (v *Value) TableAdd(key string, value *Value) *Value {
	v.table = append(v.table, entry{key: key, value: value})
	return value
}

// TableGet returns the first value stored under key, or nil if absent.
func (v *Value) TableGet(key string) *Value {
	for _, e := range v.table {
		if e.key == key {
			return e.value
		}
	}
	return nil
}

// TableLen returns the number of entries in v's table.
func (v *Value) TableLen() int {
	return len(v.table)
}

// TableKeyAt returns the key at index i, in insertion order.
func (v *Value) TableKeyAt(i int) string {
	return v.table[i].key
}

// TableValueAt returns the value at index i, in insertion order.
func (v *Value) TableValueAt(i int) *Value {
	return v.table[i].value
}

// TableRemove deletes the last entry matching key, if any. This mirrors
// ako_elem_table_remove's scan-to-the-end behavior, which is the
// opposite end from TableGet's first-match lookup (documented in
// DESIGN.md).
func (v *Value) TableRemove(key string) {
	last := -1
	for i, e := range v.table {
		if e.key == key {
			last = i
		}
	}
	if last < 0 {
		return
	}
	v.table = append(v.table[:last], v.table[last+1:]...)
}

// TableContains reports whether key is present in v's table.
func (v *Value) TableContains(key string) bool {
	return v.TableGet(key) != nil
}

// --- array operations ---

// ArrayAdd appends value to v's array, transferring ownership of value
// to v.
func (v *Value) ArrayAdd(value *Value) *Value {
	v.array = append(v.array, value)
	return value
}

// ArrayGet returns the element at index i.
func (v *Value) ArrayGet(i int) *Value {
	return v.array[i]
}

// ArrayLen returns the number of elements in v's array.
func (v *Value) ArrayLen() int {
	return len(v.array)
}

// ArrayRemove deletes the element at index i.
func (v *Value) ArrayRemove(i int) {
	v.array = append(v.array[:i], v.array[i+1:]...)
}

// Version reports the library's semantic version, matching
// AKO_VMAJOR/AKO_VMINOR/AKO_VPATCH in the original implementation.
func Version() (major, minor, patch int) {
	return 0, 1, 0
}
