package config

// File represents the structure of the jsxcache.yaml configuration file.
type File struct {
	Version     string         `yaml:"version"`
	Cache       *bool          `yaml:"cache"`
	CacheDir    string         `yaml:"cacheDir"`
	Encoding    string         `yaml:"encoding"`
	Transformer TransformerDTO `yaml:"transformer"`
	Options     map[string]any `yaml:"options"`
}

// TransformerDTO represents the transformer definition in the configuration.
type TransformerDTO struct {
	Command []string `yaml:"command"`
}
