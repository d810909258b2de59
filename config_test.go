package markup

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	const src = `
[subdivide]
max_depth = 3
max_length = 20.5

[batch]
elevation = 0.25
`
	cfg, err := LoadConfig(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultConfig()
	want.Subdivide.MaxDepth = 3
	want.Subdivide.MaxLength = 20.5
	want.Batch.Elevation = 0.25
	diff(t, want, cfg)
}

func TestLoadConfigEmpty(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, DefaultConfig(), cfg)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := map[string]string{
		"unknown key":     "[subdivide]\nmax_dept = 3\n",
		"wrong type":      "[subdivide]\nmax_depth = \"deep\"\n",
		"syntax":          "[subdivide\n",
		"negative depth":  "[subdivide]\nmax_depth = -1\n",
		"zero max length": "[subdivide]\nmax_length = 0.0\n",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(strings.NewReader(src))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("got error %v, want %v", err, ErrInvalidConfig)
			}
		})
	}
}
