package atena

import (
	"time"

	"github.com/crimson-sun/atena/internal/providers"
)

type options struct {
	master      *providers.Master
	mastersFile string
	now         func() time.Time
}

// Option configures a Session.
type Option func(*options)

// WithProvidersFile loads the provider master from a YAML file instead of
// the built-in table. The file's declaration order becomes the lookup
// tie-break order.
func WithProvidersFile(path string) Option {
	return func(o *options) {
		o.mastersFile = path
	}
}

// WithProviders injects an explicit provider master, in the given order.
func WithProviders(recipients []Recipient) Option {
	return func(o *options) {
		o.master = providers.NewMaster(recipientsToProviders(recipients))
	}
}

// WithClock overrides the time source used for letter dates and audit
// timestamps. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func defaultOptions() options {
	return options{
		master: providers.Default(),
		now:    time.Now,
	}
}
