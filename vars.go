package easydata

import (
	"sort"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types/ref"
)

type varStore struct {
	vars  map[string]ref.Val
	types map[string]*cel.Type
}

func newVarStore() *varStore {
	return &varStore{
		vars:  map[string]ref.Val{},
		types: map[string]*cel.Type{},
	}
}

func (v *varStore) Register(name string, typ *cel.Type, val ref.Val) {
	_, ok := v.vars[name]
	if ok {
		return
	}
	v.vars[name] = val
	v.types[name] = typ
}

func (v *varStore) CompileOptions() []cel.EnvOption {
	names := make([]string, 0, len(v.types))
	for name := range v.types {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]cel.EnvOption, 0, len(names))
	for _, name := range names {
		out = append(out, cel.Variable(name, v.types[name]))
	}
	return out
}

func (v *varStore) Activation() map[string]any {
	out := make(map[string]any, len(v.vars))
	for name, val := range v.vars {
		out[name] = val
	}
	return out
}
