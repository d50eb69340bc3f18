package easydata

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
)

// DataFunction implements a CEL function over classified arguments.
// A null argument arrives as a nil Data. The result is adapted back with
// the Adapter; a nil result becomes null.
type DataFunction func(args ...Data) (any, error)

// Function declares a global CEL function taking argc dynamically typed arguments.
// Arguments are classified before fn is called. Pass the option to NewEnvironment.
func (a *Adapter) Function(name string, argc int, fn DataFunction) cel.EnvOption {
	return a.function(name, argc, fn, false)
}

// Method declares a CEL member function called as recv.name(args...) with argc
// dynamically typed arguments. fn receives the receiver as its first argument.
func (a *Adapter) Method(name string, argc int, fn DataFunction) cel.EnvOption {
	return a.function(name, argc+1, fn, true)
}

func (a *Adapter) function(name string, argc int, fn DataFunction, member bool) cel.EnvOption {
	argsCelType := make([]*cel.Type, 0, argc)
	for i := 0; i < argc; i++ {
		argsCelType = append(argsCelType, cel.DynType)
	}
	resultType := cel.DynType
	overloadID := getOverloadID(name, argsCelType, resultType, member)
	binding := a.overloadBinding(argc, fn)
	if member {
		return cel.Function(name, cel.MemberOverload(overloadID, argsCelType, resultType, binding))
	}
	return cel.Function(name, cel.Overload(overloadID, argsCelType, resultType, binding))
}

func (a *Adapter) overloadBinding(argc int, fn DataFunction) cel.OverloadOpt {
	switch argc {
	case 1:
		return cel.UnaryBinding(func(value ref.Val) ref.Val {
			return a.callFunction(fn, value)
		})
	case 2:
		return cel.BinaryBinding(func(lhs ref.Val, rhs ref.Val) ref.Val {
			return a.callFunction(fn, lhs, rhs)
		})
	}
	return cel.FunctionBinding(func(values ...ref.Val) ref.Val {
		return a.callFunction(fn, values...)
	})
}

func (a *Adapter) callFunction(fn DataFunction, values ...ref.Val) ref.Val {
	args := make([]Data, 0, len(values))
	for _, value := range values {
		if value == types.NullValue {
			args = append(args, nil)
			continue
		}
		d, err := a.ValueToData(value)
		if err != nil {
			return types.WrapErr(err)
		}
		args = append(args, d)
	}
	out, err := fn(args...)
	if err != nil {
		return types.WrapErr(err)
	}
	return a.NativeToValue(out)
}

func getOverloadID(name string, args []*cel.Type, resultType *cel.Type, member bool) string {
	if member {
		return fmt.Sprintf("%s|member@|%s|%s", name, getTypesID(args), resultType.String())
	}
	return fmt.Sprintf("%s|@|%s|%s", name, getTypesID(args), resultType.String())
}

func getTypesID(argTypes []*cel.Type) string {
	if len(argTypes) == 0 {
		return ""
	}
	out := argTypes[0].String()
	for _, typ := range argTypes[1:] {
		out += "," + typ.String()
	}
	return out
}
