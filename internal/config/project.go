package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectConfig represents a .shadowgen.yaml next to the sources being
// scanned. Its values fill configuration gaps: environment variables and
// flags win over the project file.
type ProjectConfig struct {
	Version string `yaml:"version"`

	// Class is the default class filter ("AUTO" selects the first class
	// declared in the input)
	Class string `yaml:"class,omitempty"`

	// Operation is the default operation
	Operation string `yaml:"operation,omitempty"`

	Blacklist   BlacklistConfig  `yaml:"blacklist,omitempty"`
	Annotations AnnotationConfig `yaml:"annotations,omitempty"`
}

// BlacklistConfig names members excluded from stub emission
type BlacklistConfig struct {
	Methods []string `yaml:"methods,omitempty"`
	Fields  []string `yaml:"fields,omitempty"`
}

// AnnotationConfig overrides the emitted marker lines
type AnnotationConfig struct {
	Shadow string `yaml:"shadow,omitempty"`
	Final  string `yaml:"final,omitempty"`
}

// DefaultProjectConfig returns sensible defaults
func DefaultProjectConfig() *ProjectConfig {
	// An empty class filter matches every declaration, which is what the
	// common pipe-a-single-class-through-stdin workflow wants.
	return &ProjectConfig{
		Version:   "1.0",
		Operation: "shadows",
	}
}

// LoadProjectConfig loads a .shadowgen.yaml from the given directory
func LoadProjectConfig(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ".shadowgen.yaml")

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		// Also try .shadowgen.yml
		configPath = filepath.Join(dir, ".shadowgen.yml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return DefaultProjectConfig(), nil
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	cfg := DefaultProjectConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveProjectConfig saves the config to .shadowgen.yaml
func SaveProjectConfig(dir string, cfg *ProjectConfig) error {
	configPath := filepath.Join(dir, ".shadowgen.yaml")

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// ApplyProject fills unset Config fields from a project file. Blacklists
// are unioned so a project file can only add exclusions, never drop ones
// supplied through the environment.
func (c *Config) ApplyProject(p *ProjectConfig) {
	if p == nil {
		return
	}

	if c.ClassFilter == "" {
		c.ClassFilter = p.Class
	}
	if c.Operation == "" {
		c.Operation = p.Operation
	}
	if c.ShadowAnnotation == "" {
		c.ShadowAnnotation = p.Annotations.Shadow
	}
	if c.FinalAnnotation == "" {
		c.FinalAnnotation = p.Annotations.Final
	}

	c.MethodBlacklist = appendMissing(c.MethodBlacklist, p.Blacklist.Methods)
	c.FieldBlacklist = appendMissing(c.FieldBlacklist, p.Blacklist.Fields)
}

func appendMissing(dst, src []string) []string {
	for _, name := range src {
		found := false
		for _, have := range dst {
			if have == name {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, name)
		}
	}
	return dst
}
