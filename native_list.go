package easydata

import (
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
)

// newListObject exposes a ListData as a CEL list. Elements are adapted on access.
func newListObject(adapter types.Adapter, d *ListData) ref.Val {
	switch v := d.Value().(type) {
	case []string:
		return types.NewStringList(adapter, v)
	case []ref.Val:
		return types.NewRefValList(adapter, v)
	}
	return types.NewDynamicList(adapter, d.Values())
}
