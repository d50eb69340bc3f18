package easydata

import (
	"fmt"
	"reflect"
	"strings"
)

// ObjectData wraps a composite value that is neither a sequence nor a mapping.
// It keeps the reference it was built from, so pointer identity is preserved.
type ObjectData struct {
	val        any
	refValue   reflect.Value
	fields     *structFields
	classifier *Classifier
}

// NewObjectData creates an ObjectData referencing obj.
// Fields are named by the "easydata" struct tag.
func NewObjectData(obj any) *ObjectData {
	refValue, _ := indirect(reflect.ValueOf(obj))
	return defaultClassifier.newObjectData(obj, refValue)
}

func (c *Classifier) newObjectData(obj any, refValue reflect.Value) *ObjectData {
	o := &ObjectData{
		val:        obj,
		refValue:   refValue,
		classifier: c,
	}
	if refValue.IsValid() && refValue.Kind() == reflect.Struct {
		o.fields = c.structFields(refValue.Type())
	}
	return o
}

func (*ObjectData) data() {}

// Kind implements the Data interface method.
func (o *ObjectData) Kind() Kind {
	return ObjectKind
}

// Value returns the object reference itself.
func (o *ObjectData) Value() any {
	return o.val
}

// Type returns the Go type of the object reference.
func (o *ObjectData) Type() reflect.Type {
	return reflect.TypeOf(o.val)
}

// TypeName returns the name of the object's struct type.
func (o *ObjectData) TypeName() string {
	if !o.refValue.IsValid() {
		return ""
	}
	return o.refValue.Type().String()
}

// Fields returns the visible field names in declaration order.
func (o *ObjectData) Fields() []string {
	if o.fields == nil {
		return nil
	}
	out := make([]string, len(o.fields.names))
	copy(out, o.fields.names)
	return out
}

// Field returns the value of the named field.
func (o *ObjectData) Field(name string) (any, bool) {
	refField, ok := o.field(name)
	if !ok {
		return nil, false
	}
	return refField.Interface(), true
}

// FieldData classifies the value of the named field with the Classifier
// that built the object.
func (o *ObjectData) FieldData(name string) (Data, error) {
	val, ok := o.Field(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchField, name)
	}
	d, err := o.classifier.Classify(val)
	if err != nil {
		return nil, fmt.Errorf("field %s: %w", name, err)
	}
	return d, nil
}

// IsSet reports whether the named field exists and holds a non-zero value.
func (o *ObjectData) IsSet(name string) bool {
	refField, ok := o.field(name)
	return ok && !refField.IsZero()
}

func (o *ObjectData) field(name string) (reflect.Value, bool) {
	if o.fields == nil {
		return reflect.Value{}, false
	}
	index, ok := o.fields.index[name]
	if !ok {
		return reflect.Value{}, false
	}
	return o.refValue.FieldByIndex(index), true
}

type structFields struct {
	names []string
	index map[string][]int
}

func (c *Classifier) structFields(typ reflect.Type) *structFields {
	if fields, ok := c.fields.Load(typ); ok {
		return fields.(*structFields)
	}
	fields := &structFields{
		index: map[string][]int{},
	}
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name, ok := fieldNameWithTag(field, c.tagName)
		if !ok {
			continue
		}
		if c.fieldNamer != nil && tagNameOf(field, c.tagName) == "" {
			name = c.fieldNamer(field.Name)
		}
		if _, dup := fields.index[name]; dup {
			continue
		}
		fields.names = append(fields.names, name)
		fields.index[name] = field.Index
	}
	actual, _ := c.fields.LoadOrStore(typ, fields)
	return actual.(*structFields)
}

func tagNameOf(field reflect.StructField, tagName string) string {
	return strings.Split(field.Tag.Get(tagName), ",")[0]
}

func fieldNameWithTag(field reflect.StructField, tagName string) (name string, exported bool) {
	value, ok := field.Tag.Lookup(tagName)
	if !ok {
		return field.Name, true
	}

	name = strings.Split(value, ",")[0]
	if name == "-" {
		return "", false
	}

	if name == "" {
		name = field.Name
	}
	return name, true
}
