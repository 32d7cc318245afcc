package calcom

import (
	"net/http"
	"time"
)

const DefaultTimeout = 30 * time.Second

type OptionFunc func(o *Options)

type Options struct {
	// Name of the caller service, sent as user agent
	name string
}

func WithName(name string) OptionFunc {
	return func(o *Options) {
		o.name = name
	}
}

func NewOptions(optionFuncs ...OptionFunc) *Options {
	options := &Options{
		name: "retell-calcom-hub",
	}

	for _, optionFunc := range optionFuncs {
		optionFunc(options)
	}

	return options
}

func (o *Options) Name() string {
	return o.name
}

func newTransport() http.RoundTripper {
	return http.DefaultTransport.(*http.Transport).Clone()
}

func timeoutOrDefault(configured time.Duration) time.Duration {
	if configured > 0 {
		return configured
	}

	return DefaultTimeout
}
