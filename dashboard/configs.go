package dashboard

import "time"

type Config struct {
	// Address is the listen address of the dashboard server.
	Address string `yaml:"address" envconfig:"DASHBOARD_ADDRESS"`

	// DefaultComponents is the figure dimensionality when the request
	// doesn't pass components=; 2 or 3.
	DefaultComponents int `yaml:"default_components" envconfig:"DASHBOARD_DEFAULT_COMPONENTS"`

	// ReadTimeout bounds how long reading a request may take.
	ReadTimeout time.Duration `yaml:"read_timeout" envconfig:"DASHBOARD_READ_TIMEOUT"`

	// WriteTimeout bounds how long writing a response may take; figure
	// assembly happens inside it.
	WriteTimeout time.Duration `yaml:"write_timeout" envconfig:"DASHBOARD_WRITE_TIMEOUT"`
}

// DefaultConfig returns a config suitable for local development.
func DefaultConfig() Config {
	return Config{
		Address:           ":8080",
		DefaultComponents: 2,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
	}
}
