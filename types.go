package easydata

import (
	"math"
	"reflect"
	"time"
)

var (
	timestampType = reflect.TypeOf(time.Time{})
	durationType  = reflect.TypeOf(time.Nanosecond)
	bytesType     = reflect.TypeOf([]byte(nil))
	sequenceType  = reflect.TypeOf((*Sequence)(nil)).Elem()
	mappingType   = reflect.TypeOf((*Mapping)(nil)).Elem()
)

var scalarTypes = map[reflect.Kind]reflect.Type{
	reflect.Bool:    reflect.TypeOf(false),
	reflect.Int:     reflect.TypeOf(int(0)),
	reflect.Int8:    reflect.TypeOf(int8(0)),
	reflect.Int16:   reflect.TypeOf(int16(0)),
	reflect.Int32:   reflect.TypeOf(int32(0)),
	reflect.Int64:   reflect.TypeOf(int64(0)),
	reflect.Uint:    reflect.TypeOf(uint(0)),
	reflect.Uint8:   reflect.TypeOf(uint8(0)),
	reflect.Uint16:  reflect.TypeOf(uint16(0)),
	reflect.Uint32:  reflect.TypeOf(uint32(0)),
	reflect.Uint64:  reflect.TypeOf(uint64(0)),
	reflect.Float32: reflect.TypeOf(float32(0)),
	reflect.Float64: reflect.TypeOf(float64(0)),
	reflect.String:  reflect.TypeOf(""),
}

// baseLiteral converts a value of a named scalar type, such as an enum
// declared as `type Status string`, to its predeclared base type.
// time.Duration is left alone as it has a CEL type of its own.
func baseLiteral(val any) any {
	refVal := reflect.ValueOf(val)
	if !refVal.IsValid() {
		return val
	}
	typ := refVal.Type()
	if typ == durationType {
		return val
	}
	if typ.Kind() == reflect.Slice && typ.Elem().Kind() == reflect.Uint8 {
		if typ == bytesType {
			return val
		}
		return refVal.Convert(bytesType).Interface()
	}
	base, ok := scalarTypes[typ.Kind()]
	if !ok || typ == base {
		return val
	}
	return refVal.Convert(base).Interface()
}

// indirect follows pointers and interfaces down to the value they hold.
// It reports false when a nil is found on the way.
func indirect(val reflect.Value) (reflect.Value, bool) {
	for val.IsValid() {
		switch val.Kind() {
		case reflect.Pointer, reflect.Interface:
			if val.IsNil() {
				return reflect.Value{}, false
			}
			val = val.Elem()
		default:
			return val, true
		}
	}
	return reflect.Value{}, false
}

func isListType(typ reflect.Type) bool {
	switch typ.Kind() {
	case reflect.Slice:
		return typ.Elem().Kind() != reflect.Uint8
	case reflect.Array:
		return true
	}
	return false
}

func isMappingType(typ reflect.Type) bool {
	return typ.Kind() == reflect.Map
}

// reflectSequence reads a native slice or array.
type reflectSequence struct {
	val reflect.Value
}

func (s reflectSequence) Len() int {
	return s.val.Len()
}

func (s reflectSequence) Index(i int) any {
	return s.val.Index(i).Interface()
}

// reflectMapping reads a native map. Go maps have no order.
type reflectMapping struct {
	val reflect.Value
}

func (m reflectMapping) Len() int {
	return m.val.Len()
}

func (m reflectMapping) Keys() []any {
	keys := m.val.MapKeys()
	out := make([]any, 0, len(keys))
	for _, k := range keys {
		out = append(out, k.Interface())
	}
	return out
}

func (m reflectMapping) Lookup(key any) (any, bool) {
	k, ok := convertKey(reflect.ValueOf(key), m.val.Type().Key())
	if !ok {
		return nil, false
	}
	v := m.val.MapIndex(k)
	if !v.IsValid() {
		return nil, false
	}
	return v.Interface(), true
}

func (reflectMapping) unordered() {}

// convertKey makes key usable as an index into a map whose key type is typ.
func convertKey(key reflect.Value, typ reflect.Type) (reflect.Value, bool) {
	if !key.IsValid() {
		if typ.Kind() == reflect.Interface {
			return reflect.Zero(typ), true
		}
		return reflect.Value{}, false
	}
	if !key.Type().Comparable() {
		return reflect.Value{}, false
	}
	if key.Type().AssignableTo(typ) {
		return key, true
	}
	if key.Kind() == typ.Kind() && key.Type().ConvertibleTo(typ) {
		return key.Convert(typ), true
	}
	return convertInteger(key, typ)
}

// convertInteger converts between integer kinds when the value fits in typ.
func convertInteger(key reflect.Value, typ reflect.Type) (reflect.Value, bool) {
	out := reflect.New(typ).Elem()
	switch from, to := classOf(key), classOf(out); {
	case from == intClass && to == intClass:
		if out.OverflowInt(key.Int()) {
			return reflect.Value{}, false
		}
		out.SetInt(key.Int())
	case from == intClass && to == uintClass:
		if key.Int() < 0 || out.OverflowUint(uint64(key.Int())) {
			return reflect.Value{}, false
		}
		out.SetUint(uint64(key.Int()))
	case from == uintClass && to == intClass:
		if key.Uint() > math.MaxInt64 || out.OverflowInt(int64(key.Uint())) {
			return reflect.Value{}, false
		}
		out.SetInt(int64(key.Uint()))
	case from == uintClass && to == uintClass:
		if out.OverflowUint(key.Uint()) {
			return reflect.Value{}, false
		}
		out.SetUint(key.Uint())
	default:
		return reflect.Value{}, false
	}
	return out, true
}
