package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/milk9111/levelq/common"
	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PlayerSpec struct {
	Name       string        `yaml:"name"`
	Width      float64       `yaml:"width"`
	Height     float64       `yaml:"height"`
	Speed      float64       `yaml:"speed"`
	StartX     float64       `yaml:"start_x"`
	RespawnGap float64       `yaml:"respawn_gap"`
	Sprite     SpriteSpec    `yaml:"sprite"`
	Animation  AnimationSpec `yaml:"animation"`
}

type SpriteSpec struct {
	Scale     float64 `yaml:"scale"`
	FeetFudge float64 `yaml:"feet_fudge"`
	WalkBob   float64 `yaml:"walk_bob"`
}

type AnimationSpec struct {
	Current string                      `yaml:"current"`
	Defs    map[string]AnimationDefSpec `yaml:"defs"`
}

// AnimationDefSpec describes a numbered frame sequence on disk:
// Folder/frame_01.png through Folder/frame_NN.png.
type AnimationDefSpec struct {
	Folder     string  `yaml:"folder"`
	FrameCount int     `yaml:"frame_count"`
	FPS        float64 `yaml:"fps"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: player.yaml: %w", err)
	}
	return &spec, nil
}

func (s PlayerSpec) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: player size %gx%g", ErrInvalidSpec, s.Width, s.Height)
	}
	if s.Speed < 0 {
		return fmt.Errorf("%w: negative speed %g", ErrInvalidSpec, s.Speed)
	}
	if s.Sprite.Scale <= 0 {
		return fmt.Errorf("%w: sprite scale %g", ErrInvalidSpec, s.Sprite.Scale)
	}
	for _, name := range []string{"idle", "walk"} {
		def, ok := s.Animation.Defs[name]
		if !ok {
			return fmt.Errorf("%w: missing %q animation", ErrInvalidSpec, name)
		}
		if def.Folder == "" || def.FrameCount <= 0 || def.FPS <= 0 {
			return fmt.Errorf("%w: animation %q needs folder, frame_count and fps", ErrInvalidSpec, name)
		}
	}
	if _, ok := s.Animation.Defs[s.Animation.Current]; !ok {
		return fmt.Errorf("%w: unknown current animation %q", ErrInvalidSpec, s.Animation.Current)
	}
	return nil
}

type PortalSpec struct {
	Name         string    `yaml:"name"`
	Width        float64   `yaml:"width"`
	Height       float64   `yaml:"height"`
	InsetX       float64   `yaml:"inset_x"`
	Color        YAMLColor `yaml:"color"`
	OutlineWidth float64   `yaml:"outline_width"`
	Pulse        PulseSpec `yaml:"pulse"`
}

type PulseSpec struct {
	Speed  float64 `yaml:"speed"`
	Amount float64 `yaml:"amount"`
	Base   float64 `yaml:"base"`
}

func LoadPortalSpec() (*PortalSpec, error) {
	spec, err := LoadSpec[PortalSpec]("portal.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("prefabs: portal.yaml: %w: portal size %gx%g", ErrInvalidSpec, spec.Width, spec.Height)
	}
	if spec.Color.Color == nil {
		spec.Color.Color = color.NRGBA{R: 0x39, G: 0xff, B: 0x14, A: 0xff}
	}
	return &spec, nil
}

type WorldSpec struct {
	Name              string  `yaml:"name"`
	FloorY            float64 `yaml:"floor_y"`
	TransitionDelayMS int     `yaml:"transition_delay_ms"`
	MaxStep           float64 `yaml:"max_step"`
	Levels            string  `yaml:"levels"`
}

func LoadWorldSpec() (*WorldSpec, error) {
	spec, err := LoadSpec[WorldSpec]("world.yaml")
	if err != nil {
		return nil, err
	}
	if spec.FloorY == 0 {
		spec.FloorY = common.FloorY
	}
	if spec.MaxStep == 0 {
		spec.MaxStep = common.MaxStep
	}
	if spec.FloorY <= 0 || spec.MaxStep <= 0 || spec.TransitionDelayMS < 0 {
		return nil, fmt.Errorf("prefabs: world.yaml: %w", ErrInvalidSpec)
	}
	return &spec, nil
}

func (s WorldSpec) TransitionDelay() time.Duration {
	return time.Duration(s.TransitionDelayMS) * time.Millisecond
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
