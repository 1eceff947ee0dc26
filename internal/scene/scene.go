package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Scene is a view tree plus the size it is laid out in.
// A zero width or height leaves that axis to the content.
type Scene struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	YUp    bool    `yaml:"yUp"`
	Root   *Node   `yaml:"root"`
}

// Node describes one view.
type Node struct {
	Name     string  `yaml:"name"`
	Text     string  `yaml:"text"`
	Style    Style   `yaml:"style"`
	Exclude  bool    `yaml:"exclude"`
	Children []*Node `yaml:"children"`
}

// Style holds raw style properties; they are validated when the tree is built.
type Style struct {
	Direction      string `yaml:"direction"`
	FlexDirection  string `yaml:"flexDirection"`
	JustifyContent string `yaml:"justifyContent"`
	AlignContent   string `yaml:"alignContent"`
	AlignItems     string `yaml:"alignItems"`
	AlignSelf      string `yaml:"alignSelf"`
	Position       string `yaml:"position"`
	FlexWrap       string `yaml:"flexWrap"`
	Overflow       string `yaml:"overflow"`
	Display        string `yaml:"display"`

	Flex        *float64 `yaml:"flex"`
	FlexGrow    *float64 `yaml:"flexGrow"`
	FlexShrink  *float64 `yaml:"flexShrink"`
	AspectRatio *float64 `yaml:"aspectRatio"`

	FlexBasis string `yaml:"flexBasis"`
	Width     string `yaml:"width"`
	Height    string `yaml:"height"`
	MinWidth  string `yaml:"minWidth"`
	MinHeight string `yaml:"minHeight"`
	MaxWidth  string `yaml:"maxWidth"`
	MaxHeight string `yaml:"maxHeight"`

	Inset   Edges              `yaml:"inset"`
	Margin  Edges              `yaml:"margin"`
	Padding Edges              `yaml:"padding"`
	Border  map[string]float64 `yaml:"border"`
}

// Edges maps edge names (left, top, right, bottom, start, end, horizontal,
// vertical, all) to lengths.
type Edges map[string]string

// ErrNoRoot is returned for a scene without a root node.
var ErrNoRoot = errors.New("scene has no root node")

// Parse decodes a scene. Unknown keys are rejected.
func Parse(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scene
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoRoot
		}
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}
	if s.Root == nil {
		return nil, ErrNoRoot
	}
	if s.Width < 0 || s.Height < 0 {
		return nil, fmt.Errorf("scene size must not be negative, got %vx%v", s.Width, s.Height)
	}
	return &s, nil
}

// ParseBytes decodes a scene held in memory.
func ParseBytes(data []byte) (*Scene, error) {
	return Parse(bytes.NewReader(data))
}

// Load reads and decodes the scene file at path.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene: %w", err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
