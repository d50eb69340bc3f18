package easydata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type account struct {
	ID        int    `easydata:"id" json:"account_id"`
	UserName  string `json:"user"`
	Secret    string `easydata:"-"`
	Note      string `easydata:",omitempty"`
	internal  string
	CreatedBy *account
}

func TestObjectDataFields(t *testing.T) {
	tests := []struct {
		name       string
		classifier *Classifier
		want       []string
	}{
		{
			name:       "default tag",
			classifier: NewClassifier(),
			want:       []string{"id", "UserName", "Note", "CreatedBy"},
		},
		{
			name:       "json tag",
			classifier: NewClassifier(WithTagName("json")),
			want:       []string{"account_id", "user", "Secret", "Note", "CreatedBy"},
		},
		{
			name:       "snake case namer",
			classifier: NewClassifier(WithFieldNamer(SnakeCaseFields)),
			want:       []string{"id", "user_name", "note", "created_by"},
		},
		{
			name:       "camel case namer",
			classifier: NewClassifier(WithFieldNamer(LowerCamelCaseFields)),
			want:       []string{"id", "userName", "note", "createdBy"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := tt.classifier.Classify(account{})
			require.NoError(t, err)
			obj, ok := d.(*ObjectData)
			require.True(t, ok)
			assert.Equal(t, tt.want, obj.Fields())
		})
	}
}

func TestObjectDataField(t *testing.T) {
	parent := &account{ID: 1}
	acc := &account{ID: 2, UserName: "ada", Secret: "s", internal: "i", CreatedBy: parent}
	obj := MustClassify(acc).(*ObjectData)

	assert.Same(t, acc, obj.Value())
	assert.Equal(t, "easydata.account", obj.TypeName())
	assert.Equal(t, "*easydata.account", obj.Type().String())

	v, ok := obj.Field("id")
	require.True(t, ok)
	assert.Equal(t, 2, v)

	v, ok = obj.Field("CreatedBy")
	require.True(t, ok)
	assert.Same(t, parent, v)

	_, ok = obj.Field("Secret")
	assert.False(t, ok)
	_, ok = obj.Field("internal")
	assert.False(t, ok)

	assert.True(t, obj.IsSet("UserName"))
	assert.False(t, obj.IsSet("Note"))
	assert.False(t, obj.IsSet("missing"))

	acc.UserName = "grace"
	v, _ = obj.Field("UserName")
	assert.Equal(t, "grace", v)
}

func TestNewObjectData(t *testing.T) {
	acc := &account{ID: 3}
	obj := NewObjectData(acc)
	assert.Equal(t, ObjectKind, obj.Kind())
	assert.Same(t, acc, obj.Value())
	assert.Contains(t, obj.Fields(), "id")

	ch := make(chan int)
	opaque := NewObjectData(ch)
	assert.Equal(t, ch, opaque.Value())
	assert.Empty(t, opaque.Fields())
	_, ok := opaque.Field("x")
	assert.False(t, ok)
}

func TestObjectDataFieldData(t *testing.T) {
	parent := &account{ID: 1}
	acc := &account{ID: 2, UserName: "ada", CreatedBy: parent}

	obj := MustClassify(acc).(*ObjectData)
	d, err := obj.FieldData("id")
	require.NoError(t, err)
	assert.Equal(t, LiteralKind, d.Kind())
	assert.Equal(t, 2, d.Value())

	d, err = obj.FieldData("CreatedBy")
	require.NoError(t, err)
	require.Equal(t, ObjectKind, d.Kind())
	assert.Same(t, parent, d.Value())
	assert.Equal(t, []string{"id", "UserName", "Note", "CreatedBy"}, d.(*ObjectData).Fields())

	_, err = obj.FieldData("missing")
	assert.ErrorIs(t, err, ErrNoSuchField)

	_, err = MustClassify(&account{}).(*ObjectData).FieldData("CreatedBy")
	assert.ErrorIs(t, err, ErrInvalidInput)

	snake := NewClassifier(WithFieldNamer(SnakeCaseFields))
	d, err = snake.Classify(acc)
	require.NoError(t, err)
	nested, err := d.(*ObjectData).FieldData("created_by")
	require.NoError(t, err)
	assert.Contains(t, nested.(*ObjectData).Fields(), "user_name")
}
