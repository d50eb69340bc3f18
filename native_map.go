package easydata

import (
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
)

// newMapObject exposes a MappingData as a CEL map.
func newMapObject(adapter types.Adapter, d *MappingData) ref.Val {
	switch v := d.Value().(type) {
	case map[string]string:
		return types.NewStringStringMap(adapter, v)
	case map[ref.Val]ref.Val:
		return types.NewRefValMap(adapter, v)
	}
	entries := make(map[ref.Val]ref.Val, d.Len())
	d.Range(func(key, value any) bool {
		entries[adapter.NativeToValue(key)] = adapter.NativeToValue(value)
		return true
	})
	return types.NewRefValMap(adapter, entries)
}
