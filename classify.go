package easydata

import (
	"fmt"
	"reflect"
	"sync"

	"google.golang.org/protobuf/types/known/structpb"
)

var (
	listValueType   = reflect.TypeOf((*structpb.ListValue)(nil))
	structValueType = reflect.TypeOf((*structpb.Struct)(nil))
)

// Classifier turns dynamically typed values into Data.
// A Classifier is safe for concurrent use.
type Classifier struct {
	tagName      string
	fieldNamer   func(string) string
	literalTypes map[reflect.Type]struct{}

	kinds  sync.Map // reflect.Type -> Kind
	fields sync.Map // reflect.Type -> *structFields
}

type ClassifierOption func(*Classifier)

// WithTagName sets the struct tag used to name object fields.
func WithTagName(tagName string) ClassifierOption {
	return func(c *Classifier) {
		c.tagName = tagName
	}
}

// WithFieldNamer sets the function that names object fields that carry no tag name.
func WithFieldNamer(namer func(string) string) ClassifierOption {
	return func(c *Classifier) {
		c.fieldNamer = namer
	}
}

// WithLiteralTypes registers struct types that classify as literals instead of objects.
func WithLiteralTypes(typs ...reflect.Type) ClassifierOption {
	return func(c *Classifier) {
		for _, typ := range typs {
			c.literalTypes[typ] = struct{}{}
		}
	}
}

// NewClassifier creates a new Classifier.
func NewClassifier(opts ...ClassifierOption) *Classifier {
	c := &Classifier{
		tagName: "easydata",
		literalTypes: map[reflect.Type]struct{}{
			timestampType: {},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultClassifier = NewClassifier()

// Classify classifies value with the default Classifier.
func Classify(value any) (Data, error) {
	return defaultClassifier.Classify(value)
}

// MustClassify is like Classify but panics on invalid input.
func MustClassify(value any) Data {
	d, err := defaultClassifier.Classify(value)
	if err != nil {
		panic(err)
	}
	return d
}

// KindOf reports the kind value would be classified as, without building the Data.
func KindOf(value any) (Kind, error) {
	return defaultClassifier.KindOf(value)
}

// Classify wraps value in exactly one Data variant. The first matching rule wins:
// sequences become ListData, mappings MappingData, structs ObjectData,
// and anything else LiteralData.
func (c *Classifier) Classify(value any) (Data, error) {
	value, refVal, err := c.inspect(value)
	if err != nil {
		return nil, err
	}
	switch c.kindOfType(reflect.TypeOf(value)) {
	case ListKind:
		return NewListData(sequenceOf(value, refVal)), nil
	case MappingKind:
		return NewMappingData(mappingOf(value, refVal), nil), nil
	case ObjectKind:
		return c.newObjectData(value, refVal), nil
	}
	return NewLiteralData(refVal.Interface()), nil
}

// KindOf reports the kind value would be classified as.
func (c *Classifier) KindOf(value any) (Kind, error) {
	value, _, err := c.inspect(value)
	if err != nil {
		return InvalidKind, err
	}
	return c.kindOfType(reflect.TypeOf(value)), nil
}

// inspect unwraps host containers and rejects nil values.
func (c *Classifier) inspect(value any) (any, reflect.Value, error) {
	if v, ok := value.(*structpb.Value); ok {
		inner, err := unwrapStructValue(v)
		if err != nil {
			return nil, reflect.Value{}, err
		}
		value = inner
	}
	if value == nil {
		return nil, reflect.Value{}, fmt.Errorf("%w: nil", ErrInvalidInput)
	}
	raw := reflect.ValueOf(value)
	refVal, ok := indirect(raw)
	if !ok {
		return nil, reflect.Value{}, fmt.Errorf("%w: nil %s", ErrInvalidInput, raw.Type())
	}
	return value, refVal, nil
}

func (c *Classifier) kindOfType(typ reflect.Type) Kind {
	if kind, ok := c.kinds.Load(typ); ok {
		return kind.(Kind)
	}
	kind := c.resolveKind(typ)
	c.kinds.Store(typ, kind)
	return kind
}

func (c *Classifier) resolveKind(typ reflect.Type) Kind {
	base := typ
	for base.Kind() == reflect.Pointer {
		base = base.Elem()
	}
	switch {
	case typ.Implements(sequenceType), typ == listValueType, isListType(base):
		return ListKind
	case typ.Implements(mappingType), typ == structValueType, isMappingType(base):
		return MappingKind
	case base.Kind() == reflect.Struct:
		if _, ok := c.literalTypes[base]; !ok {
			return ObjectKind
		}
	}
	return LiteralKind
}

// SequenceOf reinterprets value as a Sequence if it is list capable.
func SequenceOf(value any) (Sequence, bool) {
	value, refVal, err := defaultClassifier.inspect(value)
	if err != nil || defaultClassifier.kindOfType(reflect.TypeOf(value)) != ListKind {
		return nil, false
	}
	return sequenceOf(value, refVal), true
}

// MappingOf reinterprets value as a Mapping if it is mapping capable
// and not list capable.
func MappingOf(value any) (Mapping, bool) {
	value, refVal, err := defaultClassifier.inspect(value)
	if err != nil || defaultClassifier.kindOfType(reflect.TypeOf(value)) != MappingKind {
		return nil, false
	}
	return mappingOf(value, refVal), true
}

func sequenceOf(value any, refVal reflect.Value) Sequence {
	switch v := value.(type) {
	case Sequence:
		return v
	case *structpb.ListValue:
		return listValueSequence{list: v}
	}
	return reflectSequence{val: refVal}
}

func mappingOf(value any, refVal reflect.Value) Mapping {
	switch v := value.(type) {
	case Mapping:
		return v
	case *structpb.Struct:
		return structMapping{st: v}
	}
	return reflectMapping{val: refVal}
}
