package easydata

import (
	"fmt"
	"reflect"

	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	"github.com/google/cel-go/common/types/traits"
)

var (
	_ traits.Indexer     = (*structObject)(nil)
	_ traits.FieldTester = (*structObject)(nil)
)

func newStructObject(adapter types.Adapter, d *ObjectData) ref.Val {
	return &structObject{
		Adapter: adapter,
		data:    d,
		valType: newStructType(d.TypeName()),
	}
}

// structObject exposes an ObjectData to CEL with field selection and has() support.
type structObject struct {
	types.Adapter
	data    *ObjectData
	valType *structType
}

// ConvertToNative implements the ref.Val interface method.
func (o *structObject) ConvertToNative(typeDesc reflect.Type) (any, error) {
	refValue := reflect.ValueOf(o.data.Value())
	if refValue.Type() == typeDesc {
		return o.data.Value(), nil
	}
	if refValue.Kind() == reflect.Pointer && refValue.Type().Elem() == typeDesc {
		return refValue.Elem().Interface(), nil
	}
	if typeDesc.Kind() == reflect.Pointer && refValue.Type() == typeDesc.Elem() {
		ptr := reflect.New(typeDesc.Elem())
		ptr.Elem().Set(refValue)
		return ptr.Interface(), nil
	}
	return nil, fmt.Errorf("type conversion error from '%v' to '%v'", o.Type(), typeDesc)
}

// ConvertToType implements the ref.Val interface method.
func (o *structObject) ConvertToType(typeVal ref.Type) ref.Val {
	switch typeVal {
	case types.TypeType:
		return o.valType
	}
	if typeVal.TypeName() == o.valType.TypeName() {
		return o
	}
	return types.NewErr("type conversion error from '%s' to '%s'", o.Type(), typeVal)
}

// Equal implements the ref.Val interface method.
// Objects holding the same pointer are equal, others are compared deeply.
func (o *structObject) Equal(other ref.Val) ref.Val {
	otherObj, ok := other.(*structObject)
	if !ok {
		return types.False
	}
	val := o.data.Value()
	otherVal := otherObj.data.Value()
	refVal := reflect.ValueOf(val)
	otherRefVal := reflect.ValueOf(otherVal)
	if refVal.Kind() != otherRefVal.Kind() {
		if refVal.Kind() == reflect.Pointer {
			val = refVal.Elem().Interface()
		} else if otherRefVal.Kind() == reflect.Pointer {
			otherVal = otherRefVal.Elem().Interface()
		}
	}
	return types.Bool(reflect.DeepEqual(val, otherVal))
}

// IsSet implements the traits.FieldTester interface method.
func (o *structObject) IsSet(field ref.Val) ref.Val {
	fieldName, ok := field.(types.String)
	if !ok {
		return types.MaybeNoSuchOverloadErr(field)
	}
	if _, found := o.data.Field(string(fieldName)); !found {
		return types.NewErr("no such field: %s", fieldName)
	}
	return types.Bool(o.data.IsSet(string(fieldName)))
}

// Get implements the traits.Indexer interface method.
func (o *structObject) Get(field ref.Val) ref.Val {
	fieldName, ok := field.(types.String)
	if !ok {
		return types.MaybeNoSuchOverloadErr(field)
	}
	val, found := o.data.Field(string(fieldName))
	if !found {
		return types.NewErr("no such field: %s", fieldName)
	}
	if val == nil {
		return types.NullValue
	}
	if refVal := reflect.ValueOf(val); refVal.Kind() == reflect.Pointer && refVal.IsNil() {
		return types.NullValue
	}
	return o.NativeToValue(val)
}

// Type implements the ref.Val interface method.
func (o *structObject) Type() ref.Type {
	return o.valType
}

// Value implements the ref.Val interface method.
func (o *structObject) Value() any {
	return o.data.Value()
}
