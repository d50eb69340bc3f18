package easydata

import (
	"reflect"

	"github.com/google/cel-go/cel"
)

// celTypeOf returns the CEL type a variable holding d is declared with.
func celTypeOf(d Data) *cel.Type {
	switch d.Kind() {
	case ListKind:
		return cel.ListType(cel.DynType)
	case MappingKind:
		return cel.MapType(cel.DynType, cel.DynType)
	case LiteralKind:
		if d.Value() == nil {
			return cel.DynType
		}
		if t, ok := convertToCelType(reflect.TypeOf(d.Value())); ok {
			return t
		}
	}
	return cel.DynType
}

// convertToCelType converts the Golang reflect.Type of a literal to CEL type
func convertToCelType(refType reflect.Type) (*cel.Type, bool) {
	switch refType.Kind() {
	case reflect.Bool:
		return cel.BoolType, true
	case reflect.Float32, reflect.Float64:
		return cel.DoubleType, true
	case reflect.Int64:
		if refType == durationType {
			return cel.DurationType, true
		}
		return cel.IntType, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32:
		return cel.IntType, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return cel.UintType, true
	case reflect.String:
		return cel.StringType, true
	case reflect.Slice:
		if refType.Elem().Kind() == reflect.Uint8 {
			return cel.BytesType, true
		}
	case reflect.Struct:
		if refType == timestampType {
			return cel.TimestampType, true
		}
	}
	return nil, false
}
