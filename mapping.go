package easydata

import (
	"fmt"
	"reflect"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Comparator orders mapping keys. It returns a negative number when a < b,
// zero when equal and a positive number when a > b.
type Comparator func(a, b any) int

// MappingData wraps a key-value mapping.
type MappingData struct {
	mapping Mapping
	cmp     Comparator
}

// NewMappingData creates a MappingData reading from m.
// When cmp is nil the mapping is default-ordered.
func NewMappingData(m Mapping, cmp Comparator) *MappingData {
	return &MappingData{
		mapping: m,
		cmp:     cmp,
	}
}

func (*MappingData) data() {}

// Kind implements the Data interface method.
func (m *MappingData) Kind() Kind {
	return MappingKind
}

// Value returns the underlying mapping payload, e.g. the native map.
func (m *MappingData) Value() any {
	switch s := m.mapping.(type) {
	case reflectMapping:
		return s.val.Interface()
	case structMapping:
		return s.st
	}
	return m.mapping
}

// Mapping returns the mapping the data reads from.
func (m *MappingData) Mapping() Mapping {
	return m.mapping
}

// Comparator returns the key comparator, nil when default-ordered.
func (m *MappingData) Comparator() Comparator {
	return m.cmp
}

func (m *MappingData) Len() int {
	return m.mapping.Len()
}

func (m *MappingData) Lookup(key any) (any, bool) {
	return m.mapping.Lookup(key)
}

// Keys returns the keys in iteration order.
// With a comparator they are sorted by it. Without one, a mapping that keeps
// its own order is left as is and an unordered one is sorted by DefaultCompare.
func (m *MappingData) Keys() []any {
	keys := slices.Clone(m.mapping.Keys())
	if m.cmp != nil {
		slices.SortStableFunc(keys, m.cmp)
		return keys
	}
	if _, ok := m.mapping.(unordered); ok {
		slices.SortStableFunc(keys, DefaultCompare)
	}
	return keys
}

// Range calls fn for each pair in key order until fn returns false.
func (m *MappingData) Range(fn func(key, value any) bool) {
	for _, k := range m.Keys() {
		v, ok := m.mapping.Lookup(k)
		if !ok {
			continue
		}
		if !fn(k, v) {
			return
		}
	}
}

type keyClass int

const (
	nilClass keyClass = iota
	boolClass
	intClass
	uintClass
	floatClass
	stringClass
	otherClass
)

func classOf(val reflect.Value) keyClass {
	if !val.IsValid() {
		return nilClass
	}
	switch val.Kind() {
	case reflect.Bool:
		return boolClass
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return intClass
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return uintClass
	case reflect.Float32, reflect.Float64:
		return floatClass
	case reflect.String:
		return stringClass
	}
	return otherClass
}

func isNumberClass(c keyClass) bool {
	return c == intClass || c == uintClass || c == floatClass
}

// DefaultCompare is the key order of default-ordered mappings:
// nil, then booleans, numbers by value, strings lexically, and any other
// key by its formatted value.
func DefaultCompare(a, b any) int {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	ca, cb := classOf(va), classOf(vb)
	if isNumberClass(ca) && isNumberClass(cb) {
		return compareNumbers(va, ca, vb, cb)
	}
	if isNumberClass(ca) {
		ca = intClass
	}
	if isNumberClass(cb) {
		cb = intClass
	}
	if ca != cb {
		return compareOrdered(ca, cb)
	}
	switch ca {
	case nilClass:
		return 0
	case boolClass:
		return compareOrdered(boolRank(va.Bool()), boolRank(vb.Bool()))
	case stringClass:
		return strings.Compare(va.String(), vb.String())
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func compareNumbers(va reflect.Value, ca keyClass, vb reflect.Value, cb keyClass) int {
	switch {
	case ca == intClass && cb == intClass:
		return compareOrdered(va.Int(), vb.Int())
	case ca == uintClass && cb == uintClass:
		return compareOrdered(va.Uint(), vb.Uint())
	case ca == intClass && cb == uintClass:
		if va.Int() < 0 {
			return -1
		}
		return compareOrdered(uint64(va.Int()), vb.Uint())
	case ca == uintClass && cb == intClass:
		if vb.Int() < 0 {
			return 1
		}
		return compareOrdered(va.Uint(), uint64(vb.Int()))
	}
	return compareOrdered(toFloat(va), toFloat(vb))
}

func toFloat(val reflect.Value) float64 {
	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(val.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(val.Uint())
	}
	return val.Float()
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
