package graph

// Config controls how sources are parsed
type Config struct {
	MaxFileSize          int  `yaml:"maxFileSize"`          // sources above this size are not parsed, 0 means no limit
	TolerateSyntaxErrors bool `yaml:"tolerateSyntaxErrors"` // keep trees with error nodes instead of discarding them
}

// DefaultConfig returns parser defaults
func DefaultConfig() *Config {
	return &Config{
		MaxFileSize:          10 * 1024 * 1024,
		TolerateSyntaxErrors: false,
	}
}
