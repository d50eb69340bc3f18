package easydata

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common"
	"github.com/google/cel-go/ext"
)

// Environment evaluates CEL expressions over classified values.
type Environment struct {
	adapter *Adapter
	env     *cel.Env
}

// NewEnvironment creates an Environment converting values with adapter.
// A nil adapter uses one backed by the default Classifier.
func NewEnvironment(adapter *Adapter, opts ...cel.EnvOption) (*Environment, error) {
	if adapter == nil {
		a, err := NewAdapter(nil)
		if err != nil {
			return nil, err
		}
		adapter = a
	}
	opts = append(opts,
		cel.StdLib(),
		ext.Strings(),
		cel.CustomTypeAdapter(adapter),
	)
	env, err := cel.NewCustomEnv(opts...)
	if err != nil {
		return nil, err
	}
	return &Environment{
		adapter: adapter,
		env:     env,
	}, nil
}

// Adapter returns the Adapter used by the environment.
func (e *Environment) Adapter() *Adapter {
	return e.adapter
}

// Program compiles src against the environment extended with the given variables.
func (e *Environment) Program(src string, vars map[string]any) (cel.Program, map[string]any, error) {
	if src == "" {
		return nil, nil, errNoSourceCode
	}
	store := newVarStore()
	for name, val := range vars {
		d, err := e.adapter.classifier.Classify(val)
		if err != nil {
			return nil, nil, fmt.Errorf("variable %s: %w", name, err)
		}
		store.Register(name, celTypeOf(d), e.adapter.DataToValue(d))
	}
	env, err := e.env.Extend(store.CompileOptions()...)
	if err != nil {
		return nil, nil, err
	}
	source := common.NewStringSource(src, "")
	past, iss := env.ParseSource(source)
	if iss != nil && iss.Err() != nil {
		return nil, nil, iss.Err()
	}
	past, iss = env.Check(past)
	if iss != nil && iss.Err() != nil {
		return nil, nil, iss.Err()
	}
	prg, err := env.Program(past)
	if err != nil {
		return nil, nil, err
	}
	return prg, store.Activation(), nil
}

// Eval evaluates src with vars bound as variables and classifies the result.
func (e *Environment) Eval(src string, vars map[string]any) (Data, error) {
	prg, activation, err := e.Program(src, vars)
	if err != nil {
		return nil, err
	}
	out, _, err := prg.Eval(activation)
	if err != nil {
		return nil, err
	}
	return e.adapter.ValueToData(out)
}
