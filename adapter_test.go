package easydata

import (
	"reflect"
	"testing"

	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	"github.com/google/cel-go/common/types/traits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type celValue struct{}

func (celValue) CelVal() ref.Val {
	return types.String("custom")
}

func newTestAdapter(t *testing.T) *Adapter {
	t.Helper()
	a, err := NewAdapter(nil)
	require.NoError(t, err)
	return a
}

func TestAdapterNativeToValue(t *testing.T) {
	a := newTestAdapter(t)

	assert.Equal(t, types.NullValue, a.NativeToValue(nil))
	assert.Equal(t, types.Int(1), a.NativeToValue(1))
	assert.Equal(t, types.String("s"), a.NativeToValue("s"))
	assert.Equal(t, types.True, a.NativeToValue(types.True))
	assert.Equal(t, types.String("custom"), a.NativeToValue(celValue{}))
	assert.Equal(t, types.Int(7), a.NativeToValue(NewLiteralData(7)))

	list, ok := a.NativeToValue([]int{1, 2}).(traits.Lister)
	require.True(t, ok)
	assert.Equal(t, types.Int(2), list.Size())
	assert.Equal(t, types.Int(2), list.Get(types.Int(1)))

	m, ok := a.NativeToValue(map[string]int{"a": 1}).(traits.Mapper)
	require.True(t, ok)
	assert.Equal(t, types.Int(1), m.Get(types.String("a")))

	obj := a.NativeToValue(&point{X: 3})
	indexer, ok := obj.(traits.Indexer)
	require.True(t, ok)
	assert.Equal(t, types.Int(3), indexer.Get(types.String("x")))
	assert.True(t, types.IsError(indexer.Get(types.String("z"))))
	assert.True(t, types.IsError(indexer.Get(types.Int(1))))
	assert.Equal(t, "easydata.point", obj.Type().TypeName())

	var nilPoint *point
	assert.Equal(t, types.NullValue, a.NativeToValue(nilPoint))
}

type level int

type status string

type job struct {
	Status status `easydata:"status"`
	Level  level  `easydata:"level"`
}

func TestAdapterNamedLiterals(t *testing.T) {
	a := newTestAdapter(t)

	assert.Equal(t, types.Int(3), a.NativeToValue(level(3)))
	assert.Equal(t, types.String("done"), a.NativeToValue(status("done")))

	env, err := NewEnvironment(a)
	require.NoError(t, err)

	d, err := env.Eval("x + 1", map[string]any{"x": level(3)})
	require.NoError(t, err)
	assert.Equal(t, int64(4), d.Value())

	d, err = env.Eval("j.status == 'done' && j.level > 1", map[string]any{"j": &job{Status: "done", Level: 2}})
	require.NoError(t, err)
	assert.Equal(t, true, d.Value())

	d, err = env.Eval("s", map[string]any{"s": []status{"a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, d.Value())
}

func TestAdapterNestedNil(t *testing.T) {
	a := newTestAdapter(t)
	env, err := NewEnvironment(a)
	require.NoError(t, err)

	vars := map[string]any{
		"l": []*point{nil, {X: 1}},
		"m": map[string]*point{"a": nil},
		"p": &account{},
	}
	tests := []struct {
		src  string
		want any
	}{
		{src: "l[0] == null", want: true},
		{src: "l[1].x", want: int64(1)},
		{src: "size(l)", want: int64(2)},
		{src: "m.a == null", want: true},
		{src: "size(m)", want: int64(1)},
		{src: "p.CreatedBy == null", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			d, err := env.Eval(tt.src, vars)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Value())
		})
	}

	var nilPoint *point
	_, err = env.Eval("x", map[string]any{"x": nilPoint})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAdapterStructObject(t *testing.T) {
	a := newTestAdapter(t)
	p := &point{X: 1}
	obj := a.NativeToValue(p)

	tester, ok := obj.(traits.FieldTester)
	require.True(t, ok)
	assert.Equal(t, types.True, tester.IsSet(types.String("x")))
	assert.Equal(t, types.False, tester.IsSet(types.String("y")))
	assert.True(t, types.IsError(tester.IsSet(types.String("z"))))

	assert.Equal(t, types.True, obj.Equal(a.NativeToValue(&point{X: 1})))
	assert.Equal(t, types.True, obj.Equal(a.NativeToValue(point{X: 1})))
	assert.Equal(t, types.False, obj.Equal(a.NativeToValue(&point{X: 2})))
	assert.Equal(t, types.False, obj.Equal(types.Int(1)))

	native, err := obj.ConvertToNative(reflect.TypeOf(point{}))
	require.NoError(t, err)
	assert.Equal(t, point{X: 1}, native)

	native, err = obj.ConvertToNative(reflect.TypeOf(p))
	require.NoError(t, err)
	assert.Same(t, p, native)

	_, err = obj.ConvertToNative(reflect.TypeOf(""))
	assert.Error(t, err)

	assert.Same(t, obj, obj.ConvertToType(obj.Type()))
	assert.True(t, types.IsError(obj.ConvertToType(types.StringType)))
}

func TestAdapterValueToData(t *testing.T) {
	a := newTestAdapter(t)

	d, err := a.ValueToData(types.Int(5))
	require.NoError(t, err)
	assert.Equal(t, LiteralKind, d.Kind())
	assert.Equal(t, int64(5), d.Value())

	d, err = a.ValueToData(a.NativeToValue([][]string{{"a"}, {"b", "c"}}))
	require.NoError(t, err)
	assert.Equal(t, ListKind, d.Kind())
	assert.Equal(t, []any{[]any{"a"}, []any{"b", "c"}}, d.Value())

	d, err = a.ValueToData(a.NativeToValue(map[string]any{"a": []int{1}}))
	require.NoError(t, err)
	assert.Equal(t, MappingKind, d.Kind())
	assert.Equal(t, map[any]any{"a": []any{int64(1)}}, d.Value())

	_, err = a.ValueToData(types.NewErr("boom"))
	assert.Error(t, err)

	_, err = a.ValueToData(types.NullValue)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
