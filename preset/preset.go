// Package preset loads and saves named stroke style presets.
//
// A preset file is a small YAML document:
//
//	presets:
//	  - name: pen
//	    size: 16
//	    thinning: 0.5
//	    ...
//
// Presets let a host ship tool configurations (pen, marker,
// highlighter) without hard-coding style records.
package preset

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/ink"
)

// Preset is a named stroke style in its serialized form.
type Preset struct {
	Name        string  `yaml:"name"`
	Size        float64 `yaml:"size"`
	StrokeWidth float64 `yaml:"strokeWidth"`
	Thinning    float64 `yaml:"thinning"`
	Streamline  float64 `yaml:"streamline"`
	Smoothing   float64 `yaml:"smoothing"`
	TaperStart  float64 `yaml:"taperStart"`
	TaperEnd    float64 `yaml:"taperEnd"`
	CapStart    bool    `yaml:"capStart"`
	CapEnd      bool    `yaml:"capEnd"`
	IsFilled    bool    `yaml:"isFilled"`
	Color       string  `yaml:"color"`
}

// FromStyle builds a named preset from a style record.
func FromStyle(name string, s ink.Style) Preset {
	return Preset{
		Name:        name,
		Size:        s.Size,
		StrokeWidth: s.StrokeWidth,
		Thinning:    s.Thinning,
		Streamline:  s.Streamline,
		Smoothing:   s.Smoothing,
		TaperStart:  s.TaperStart,
		TaperEnd:    s.TaperEnd,
		CapStart:    s.CapStart,
		CapEnd:      s.CapEnd,
		IsFilled:    s.IsFilled,
		Color:       string(s.Color),
	}
}

// Style converts the preset back into a style record.
func (p Preset) Style() ink.Style {
	return ink.Style{
		Size:        p.Size,
		StrokeWidth: p.StrokeWidth,
		Thinning:    p.Thinning,
		Streamline:  p.Streamline,
		Smoothing:   p.Smoothing,
		TaperStart:  p.TaperStart,
		TaperEnd:    p.TaperEnd,
		CapStart:    p.CapStart,
		CapEnd:      p.CapEnd,
		IsFilled:    p.IsFilled,
		Color:       ink.ColorStyle(p.Color),
	}
}

// Set is an ordered collection of presets.
type Set struct {
	Presets []Preset `yaml:"presets"`
}

// Style returns the style for a named preset.
func (s *Set) Style(name string) (ink.Style, bool) {
	for _, p := range s.Presets {
		if p.Name == name {
			return p.Style(), true
		}
	}
	return ink.Style{}, false
}

// Load reads a preset set from YAML. A preset without a name is
// rejected; style values are passed through unvalidated, matching the
// engine's contract that out-of-range values are the caller's problem.
func Load(r io.Reader) (*Set, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("preset: read: %w", err)
	}
	var s Set
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("preset: parse: %w", err)
	}
	for i, p := range s.Presets {
		if p.Name == "" {
			return nil, fmt.Errorf("preset: entry %d has no name", i)
		}
	}
	return &s, nil
}

// Save writes a preset set as YAML.
func Save(w io.Writer, s *Set) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("preset: marshal: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("preset: write: %w", err)
	}
	return nil
}

// Builtin returns the default tool presets.
func Builtin() *Set {
	pen := ink.DefaultStyle()

	marker := ink.DefaultStyle()
	marker.Size = 32
	marker.Thinning = 0
	marker.Color = ink.ColorBlue

	highlighter := ink.DefaultStyle()
	highlighter.Size = 40
	highlighter.Thinning = 0
	highlighter.CapStart = false
	highlighter.CapEnd = false
	highlighter.Color = ink.ColorOrange

	brush := ink.DefaultStyle()
	brush.Thinning = 0.75
	brush.TaperStart = 40
	brush.TaperEnd = 40

	return &Set{Presets: []Preset{
		FromStyle("pen", pen),
		FromStyle("marker", marker),
		FromStyle("highlighter", highlighter),
		FromStyle("brush", brush),
	}}
}
