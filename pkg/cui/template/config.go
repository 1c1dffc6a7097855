package template

import (
	"context"
	"fmt"
	"io"
	"slices"

	yaml "gopkg.in/yaml.v2"

	cuierrors "github.com/diwise/cui/pkg/cui/errors"
)

type TemplateInfo struct {
	Name string `yaml:"name"`
	Text string `yaml:"text"`
}

type Config struct {
	Templates []TemplateInfo `yaml:"templates"`
}

func LoadConfiguration(data io.Reader) (*Config, error) {

	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = yaml.Unmarshal(buf, &cfg)

	return cfg, err
}

// Set is a collection of named templates, parsed once when the set is created
type Set struct {
	templates map[string]*Template
}

func NewSet(cfg *Config) (*Set, error) {
	s := &Set{templates: map[string]*Template{}}

	for _, info := range cfg.Templates {
		if info.Name == "" {
			return nil, cuierrors.NewTemplateError("template without a name")
		}

		if _, exists := s.templates[info.Name]; exists {
			return nil, cuierrors.NewTemplateError(fmt.Sprintf("template %q is defined more than once", info.Name))
		}

		t, err := Parse(info.Text)
		if err != nil {
			return nil, fmt.Errorf("template %q: %w", info.Name, err)
		}

		t.name = info.Name
		s.templates[info.Name] = t
	}

	return s, nil
}

func (s *Set) Names() []string {
	names := make([]string, 0, len(s.templates))
	for name := range s.templates {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (s *Set) Lookup(name string) (*Template, bool) {
	t, ok := s.templates[name]
	return t, ok
}

func (s *Set) Expand(ctx context.Context, name string, values map[string]any) (string, error) {
	t, ok := s.Lookup(name)
	if !ok {
		return "", cuierrors.NewUnknownFieldError(fmt.Sprintf("no template named %q", name))
	}

	return t.Expand(ctx, values)
}
