package main

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/milk9111/levelq/levels"
)

func TestLoadResourcesEmbedded(t *testing.T) {
	res, err := loadResources(context.Background(), "")
	if err != nil {
		t.Fatalf("loadResources: %v", err)
	}
	if res.manifest.Len() == 0 {
		t.Fatalf("expected levels in the embedded manifest")
	}
	if len(res.bundle.Backgrounds) != res.manifest.Len() {
		t.Fatalf("expected one background per level, got %d for %d", len(res.bundle.Backgrounds), res.manifest.Len())
	}
	for name, def := range res.player.Animation.Defs {
		if got := len(res.bundle.Frames[name]); got != def.FrameCount {
			t.Fatalf("%s: expected %d frames, got %d", name, def.FrameCount, got)
		}
	}
}

func TestLoadResourcesMissingDir(t *testing.T) {
	if _, err := loadResources(context.Background(), t.TempDir()); err == nil {
		t.Fatalf("expected an error when the asset directory is empty")
	}
}

func TestLoadManifestFallsBackToEmbedded(t *testing.T) {
	cases := []struct {
		name    string
		fsys    fstest.MapFS
		wantLen int
		wantErr bool
	}{
		{"embedded", fstest.MapFS{}, -1, false},
		{"on_disk", fstest.MapFS{"levels.json": {Data: []byte(`{"levels":[{"id":"x","image":"x.png"}]}`)}}, 1, false},
		{"broken_on_disk", fstest.MapFS{"levels.json": {Data: []byte(`{"levels":[]}`)}}, 0, true},
	}
	embedded, err := levels.LoadEmbedded("levels.json")
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m, err := loadManifest(c.fsys, "levels.json")
			if (err != nil) != c.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, c.wantErr)
			}
			if c.wantErr {
				return
			}
			want := c.wantLen
			if want < 0 {
				want = embedded.Len()
			}
			if m.Len() != want {
				t.Fatalf("expected %d levels, got %d", want, m.Len())
			}
		})
	}
}

func TestStartIndex(t *testing.T) {
	m := &levels.Manifest{Levels: []levels.Level{
		{ID: "a", Image: "a.png"},
		{ID: "b", Image: "b.png"},
		{ID: "c", Image: "c.png"},
	}}
	if got := startIndex(m, "c", newRNG(1)); got != 2 {
		t.Fatalf("expected explicit level index 2, got %d", got)
	}
	for i := 0; i < 20; i++ {
		if got := startIndex(m, "missing", newRNG(uint64(i+1))); got < 0 || got >= 3 {
			t.Fatalf("random start %d out of range", got)
		}
	}
	if startIndex(m, "", newRNG(42)) != startIndex(m, "", newRNG(42)) {
		t.Fatalf("same seed must pick the same start level")
	}
}
