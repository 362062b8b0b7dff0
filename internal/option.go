package internal

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config   *Config
	dataPath string
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithDataPath overrides the configured data-file path (the --data flag).
func WithDataPath(path string) Option {
	return func(a *application) {
		a.dataPath = path
	}
}
