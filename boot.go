package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/milk9111/levelq/assets"
	"github.com/milk9111/levelq/ecs/entity"
	"github.com/milk9111/levelq/levels"
	"github.com/milk9111/levelq/prefabs"
)

// resources is everything decoded off the game goroutine before the world
// can be built.
type resources struct {
	player   *prefabs.PlayerSpec
	portal   *prefabs.PortalSpec
	world    *prefabs.WorldSpec
	manifest *levels.Manifest
	bundle   *assets.Bundle
}

type loadResult struct {
	res *resources
	err error
}

// loadResources reads the prefabs, the level manifest and every image the
// game needs. It either returns all of them or an error.
func loadResources(ctx context.Context, assetsDir string) (*resources, error) {
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	portal, err := prefabs.LoadPortalSpec()
	if err != nil {
		return nil, err
	}
	world, err := prefabs.LoadWorldSpec()
	if err != nil {
		return nil, err
	}

	fsys := assets.FS
	if assetsDir != "" {
		fsys = os.DirFS(assetsDir)
	}
	manifest, err := loadManifest(fsys, world.Levels)
	if err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}

	start := time.Now()
	bundle, err := assets.LoadBundle(ctx, fsys, manifest, entity.PlayerSequences(player))
	if err != nil {
		return nil, err
	}
	log.Printf("assets: loaded %d backgrounds and %d animations in %s", len(bundle.Backgrounds), len(bundle.Frames), time.Since(start).Round(time.Millisecond))

	return &resources{
		player:   player,
		portal:   portal,
		world:    world,
		manifest: manifest,
		bundle:   bundle,
	}, nil
}

// loadManifest prefers a manifest next to the assets and falls back to the
// embedded one.
func loadManifest(fsys fs.FS, name string) (*levels.Manifest, error) {
	m, err := levels.LoadManifest(fsys, name)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return levels.LoadEmbedded(name)
}

// startIndex resolves the -level flag. Unknown or empty ids fall back to a
// random level.
func startIndex(m *levels.Manifest, id string, r *rand.Rand) int {
	if id != "" {
		if i, ok := m.Index(id); ok {
			return i
		}
		log.Printf("levels: unknown level %q, picking one at random", id)
	}
	return m.RandomIndex(r)
}

func newRNG(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
