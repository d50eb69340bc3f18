package easydata

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
)

// unwrapStructValue replaces a *structpb.Value with the payload it carries.
// Lists and structs stay wrapped so that they classify as list and mapping.
func unwrapStructValue(v *structpb.Value) (any, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil %T", ErrInvalidInput, v)
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_ListValue:
		if k.ListValue == nil {
			return nil, fmt.Errorf("%w: nil list value", ErrInvalidInput)
		}
		return k.ListValue, nil
	case *structpb.Value_StructValue:
		if k.StructValue == nil {
			return nil, fmt.Errorf("%w: nil struct value", ErrInvalidInput)
		}
		return k.StructValue, nil
	case *structpb.Value_StringValue:
		return k.StringValue, nil
	case *structpb.Value_NumberValue:
		return k.NumberValue, nil
	case *structpb.Value_BoolValue:
		return k.BoolValue, nil
	case *structpb.Value_NullValue:
		return nil, fmt.Errorf("%w: null value", ErrInvalidInput)
	}
	return nil, fmt.Errorf("%w: unset %T", ErrInvalidInput, v)
}

// listValueSequence reads a *structpb.ListValue. Elements are handed out
// unwrapped so that nested values classify like their plain Go equivalents.
type listValueSequence struct {
	list *structpb.ListValue
}

func (s listValueSequence) Len() int {
	return len(s.list.GetValues())
}

func (s listValueSequence) Index(i int) any {
	return s.list.GetValues()[i].AsInterface()
}

// structMapping reads a *structpb.Struct.
type structMapping struct {
	st *structpb.Struct
}

func (m structMapping) Len() int {
	return len(m.st.GetFields())
}

func (m structMapping) Keys() []any {
	fields := m.st.GetFields()
	out := make([]any, 0, len(fields))
	for k := range fields {
		out = append(out, k)
	}
	return out
}

func (m structMapping) Lookup(key any) (any, bool) {
	k, ok := key.(string)
	if !ok {
		return nil, false
	}
	v, ok := m.st.GetFields()[k]
	if !ok {
		return nil, false
	}
	return v.AsInterface(), true
}

func (structMapping) unordered() {}
