package prefabs

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedSpecsLoad(t *testing.T) {
	player, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("LoadPlayerSpec: %v", err)
	}
	if player.Width != 26 || player.Height != 56 || player.Speed != 260 {
		t.Fatalf("unexpected player spec: %+v", player)
	}
	if def := player.Animation.Defs["walk"]; def.FrameCount != 6 || def.FPS != 12 {
		t.Fatalf("unexpected walk def: %+v", def)
	}

	portal, err := LoadPortalSpec()
	if err != nil {
		t.Fatalf("LoadPortalSpec: %v", err)
	}
	if portal.Width != 22 || portal.Height != 86 || portal.InsetX != 18 {
		t.Fatalf("unexpected portal spec: %+v", portal)
	}
	if got := color.NRGBAModel.Convert(portal.Color.Color).(color.NRGBA); got != (color.NRGBA{R: 0x39, G: 0xff, B: 0x14, A: 0xff}) {
		t.Fatalf("unexpected portal color: %v", got)
	}

	world, err := LoadWorldSpec()
	if err != nil {
		t.Fatalf("LoadWorldSpec: %v", err)
	}
	if world.TransitionDelay() != 180*time.Millisecond {
		t.Fatalf("unexpected transition delay: %v", world.TransitionDelay())
	}
}

func TestPlayerSpecValidate(t *testing.T) {
	valid := func() PlayerSpec {
		return PlayerSpec{
			Width:  26,
			Height: 56,
			Speed:  260,
			Sprite: SpriteSpec{Scale: 2.5},
			Animation: AnimationSpec{
				Current: "idle",
				Defs: map[string]AnimationDefSpec{
					"idle": {Folder: "idle", FrameCount: 4, FPS: 8},
					"walk": {Folder: "walk", FrameCount: 6, FPS: 12},
				},
			},
		}
	}

	cases := []struct {
		name    string
		mutate  func(s *PlayerSpec)
		wantErr bool
	}{
		{"valid", func(s *PlayerSpec) {}, false},
		{"zero_width", func(s *PlayerSpec) { s.Width = 0 }, true},
		{"negative_speed", func(s *PlayerSpec) { s.Speed = -1 }, true},
		{"zero_scale", func(s *PlayerSpec) { s.Sprite.Scale = 0 }, true},
		{"missing_walk", func(s *PlayerSpec) { delete(s.Animation.Defs, "walk") }, true},
		{"zero_fps", func(s *PlayerSpec) {
			s.Animation.Defs["idle"] = AnimationDefSpec{Folder: "idle", FrameCount: 4}
		}, true},
		{"unknown_current", func(s *PlayerSpec) { s.Animation.Current = "run" }, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := valid()
			c.mutate(&s)
			err := s.Validate()
			if c.wantErr {
				if !errors.Is(err, ErrInvalidSpec) {
					t.Fatalf("expected ErrInvalidSpec, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{`"#39ff14"`, color.NRGBA{R: 0x39, G: 0xff, B: 0x14, A: 0xff}, false},
		{`"10203040"`, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, false},
		{`"#fff"`, color.NRGBA{}, true},
		{`"#zzzzzz"`, color.NRGBA{}, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			var out struct {
				C YAMLColor `yaml:"c"`
			}
			err := yaml.Unmarshal([]byte("c: "+c.in), &out)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got := out.C.Color.(color.NRGBA); got != c.want {
				t.Fatalf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestLoadPrefersDiskCopy(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "prefabs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "prefabs", "world.yaml"), []byte("name: disk\nfloor_y: 500\nmax_step: 0.05\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	spec, err := LoadWorldSpec()
	if err != nil {
		t.Fatalf("LoadWorldSpec: %v", err)
	}
	if spec.Name != "disk" || spec.FloorY != 500 {
		t.Fatalf("expected disk override, got %+v", spec)
	}
	if _, ok := ModTime("prefabs/world.yaml"); !ok {
		t.Fatalf("expected mod time for disk prefab")
	}
}

func TestCleanPrefabPath(t *testing.T) {
	if got := cleanPrefabPath("prefabs/player.yaml"); got != "player.yaml" {
		t.Fatalf("got %q", got)
	}
	if got := cleanPrefabPath("portal.yaml"); got != "portal.yaml" {
		t.Fatalf("got %q", got)
	}
}
