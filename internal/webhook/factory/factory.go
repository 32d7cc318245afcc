package factory

import (
	"fmt"

	"bitbucket.org/crgw/retell-calcom-hub/internal/calcom"
	"bitbucket.org/crgw/retell-calcom-hub/internal/config"
	"bitbucket.org/crgw/retell-calcom-hub/internal/webhook/errors"
)

// Factory maps function names sent by the voice agent to their backends.
// All functions are registered up front, the map is read only afterwards.
type Factory struct {
	defaultFunction string
	functions       map[string]any
}

func (f *Factory) GetFunction(name string) (any, error) {
	if name == "" {
		name = f.defaultFunction
	}

	function, ok := f.functions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrorUnknownFunction, name)
	}

	return function, nil
}

func NewFactory(configuration config.Config, optionFuncs ...calcom.OptionFunc) *Factory {
	return &Factory{
		defaultFunction: configuration.FunctionName,
		functions: map[string]any{
			// Register all functions here
			configuration.FunctionName: calcom.New(configuration.CalCom, optionFuncs...),
		},
	}
}
