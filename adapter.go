package easydata

import (
	"errors"
	"fmt"

	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	"github.com/google/cel-go/common/types/traits"
)

// Adapter converts native values to CEL values by classifying them first.
// It implements types.Adapter.
type Adapter struct {
	classifier *Classifier
	base       types.Adapter
}

// NewAdapter creates an Adapter classifying with c. A nil c uses the default Classifier.
func NewAdapter(c *Classifier) (*Adapter, error) {
	if c == nil {
		c = defaultClassifier
	}
	registry, err := types.NewRegistry()
	if err != nil {
		return nil, err
	}
	return &Adapter{
		classifier: c,
		base:       registry,
	}, nil
}

// Classifier returns the Classifier used by the adapter.
func (a *Adapter) Classifier() *Classifier {
	return a.classifier
}

// NativeToValue implements the types.Adapter interface method.
// Nil pointers and interfaces nested in lists, maps and objects become null.
func (a *Adapter) NativeToValue(value any) ref.Val {
	switch v := value.(type) {
	case nil:
		return types.NullValue
	case ref.Val:
		return v
	case CelVal:
		return v.CelVal()
	case Data:
		return a.DataToValue(v)
	}
	d, err := a.classifier.Classify(value)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			return types.NullValue
		}
		return types.WrapErr(err)
	}
	return a.DataToValue(d)
}

// DataToValue converts classified data to a CEL value.
func (a *Adapter) DataToValue(d Data) ref.Val {
	switch d := d.(type) {
	case *ListData:
		return newListObject(a, d)
	case *MappingData:
		return newMapObject(a, d)
	case *ObjectData:
		return newStructObject(a, d)
	case *LiteralData:
		return a.base.NativeToValue(baseLiteral(d.Value()))
	}
	return types.NewErr("unsupported data %T", d)
}

// ValueToData converts a CEL value back to native values and classifies the result.
func (a *Adapter) ValueToData(val ref.Val) (Data, error) {
	if types.IsError(val) {
		return nil, fmt.Errorf("%v", val.Value())
	}
	native, err := valueToNative(val)
	if err != nil {
		return nil, err
	}
	return a.classifier.Classify(native)
}

func valueToNative(val ref.Val) (any, error) {
	switch v := val.(type) {
	case *structObject:
		return v.data.Value(), nil
	case traits.Lister:
		out := []any{}
		it := v.Iterator()
		for it.HasNext() == types.True {
			elem, err := valueToNative(it.Next())
			if err != nil {
				return nil, err
			}
			out = append(out, elem)
		}
		return out, nil
	case traits.Mapper:
		out := map[any]any{}
		it := v.Iterator()
		for it.HasNext() == types.True {
			key := it.Next()
			k, err := valueToNative(key)
			if err != nil {
				return nil, err
			}
			elem, err := valueToNative(v.Get(key))
			if err != nil {
				return nil, err
			}
			out[k] = elem
		}
		return out, nil
	}
	if types.IsError(val) {
		return nil, fmt.Errorf("%v", val.Value())
	}
	if val == types.NullValue {
		return nil, nil
	}
	return val.Value(), nil
}
