package easydata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestClassifyStructpb(t *testing.T) {
	list, err := structpb.NewList([]any{1, "a", true})
	require.NoError(t, err)
	st, err := structpb.NewStruct(map[string]any{"b": 2, "a": []any{"x"}})
	require.NoError(t, err)

	tests := []struct {
		name    string
		value   any
		want    Kind
		literal any
	}{
		{name: "list value", value: structpb.NewListValue(list), want: ListKind},
		{name: "list", value: list, want: ListKind},
		{name: "struct value", value: structpb.NewStructValue(st), want: MappingKind},
		{name: "struct", value: st, want: MappingKind},
		{name: "string", value: structpb.NewStringValue("s"), want: LiteralKind, literal: "s"},
		{name: "number", value: structpb.NewNumberValue(1.5), want: LiteralKind, literal: 1.5},
		{name: "bool", value: structpb.NewBoolValue(true), want: LiteralKind, literal: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Classify(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Kind())
			if tt.literal != nil {
				assert.Equal(t, tt.literal, d.Value())
			}
		})
	}
}

func TestClassifyStructpbContents(t *testing.T) {
	list, err := structpb.NewList([]any{1, "a", nil})
	require.NoError(t, err)
	d := MustClassify(structpb.NewListValue(list)).(*ListData)
	assert.Equal(t, []any{float64(1), "a", nil}, d.Values())
	assert.Same(t, list, d.Value())

	st, err := structpb.NewStruct(map[string]any{"b": 2, "a": []any{"x"}})
	require.NoError(t, err)
	m := MustClassify(st).(*MappingData)
	assert.Equal(t, []any{"a", "b"}, m.Keys())
	v, ok := m.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, []any{"x"}, v)
	_, ok = m.Lookup(1)
	assert.False(t, ok)
	_, ok = m.Lookup("missing")
	assert.False(t, ok)
}

func TestClassifyStructpbInvalid(t *testing.T) {
	values := []any{
		structpb.NewNullValue(),
		&structpb.Value{},
		(*structpb.Value)(nil),
		(*structpb.ListValue)(nil),
		(*structpb.Struct)(nil),
	}
	for _, v := range values {
		_, err := Classify(v)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}
