package domain

// Config is the resolved configuration of the cache and its transformer.
type Config struct {
	// Path is the config file that was loaded, empty when defaults are used.
	Path string
	// Root is the directory the config was found in, or the working directory.
	Root string
	// Cache enables the transform cache.
	Cache bool
	// CacheDir overrides cache directory discovery when non-empty.
	CacheDir string
	// Encoding selects the entry payload encoding.
	Encoding Encoding
	// Transformer is the command that performs the rewrite.
	Transformer []string
	// Options is handed to the transformer and hashed into every key.
	Options Options
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig(root string) *Config {
	return &Config{
		Root:     root,
		Cache:    true,
		Encoding: EncodingRaw,
		Options:  Options{},
	}
}
