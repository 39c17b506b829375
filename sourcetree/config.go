package sourcetree

import "slices"

// DefaultIgnoredURLs lists source URLs that never appear in the tree
var DefaultIgnoredURLs = []string{"debugger eval code", "XStringBundle"}

// Config controls how sources are placed in a tree
type Config struct {
	DebuggeeURL string   `yaml:"debuggeeURL,omitempty" json:"debuggeeURL,omitempty"`
	ProjectRoot string   `yaml:"projectRoot,omitempty" json:"projectRoot,omitempty"` // node path shown as the root, empty for the whole tree
	IgnoredURLs []string `yaml:"ignoredURLs,omitempty" json:"ignoredURLs,omitempty"`
}

// DefaultConfig returns a config without debuggee or project root
func DefaultConfig() *Config {
	return &Config{IgnoredURLs: append([]string(nil), DefaultIgnoredURLs...)}
}

func (c *Config) ignored(url string) bool {
	for _, candidate := range c.IgnoredURLs {
		if candidate == url {
			return true
		}
	}
	return false
}

func (c *Config) underProjectRoot(path string) bool {
	root := c.ProjectRoot
	if root == "" {
		return true
	}
	return path == root || len(path) > len(root) && path[:len(root)] == root && path[len(root)] == '/'
}

func (c *Config) equal(o *Config) bool {
	return c.DebuggeeURL == o.DebuggeeURL && c.ProjectRoot == o.ProjectRoot && slices.Equal(c.IgnoredURLs, o.IgnoredURLs)
}
