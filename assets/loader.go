package assets

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"path"

	"github.com/milk9111/levelq/levels"
	"golang.org/x/sync/errgroup"
)

var ErrMissingFrames = errors.New("assets: frame sequence needs at least one frame")

// Sequence names a numbered frame folder.
type Sequence struct {
	Folder string
	Count  int
}

// Bundle holds every decoded image the game needs before it can start.
type Bundle struct {
	// Backgrounds is keyed by level id.
	Backgrounds map[string]image.Image
	// Frames is keyed by animation name, in playback order.
	Frames map[string][]image.Image
}

// FramePath returns the path of the i-th (zero-based) frame in folder.
// Frames are stored one-based with two digits: frame_01.png, frame_02.png...
func FramePath(folder string, i int) string {
	return path.Join(cleanAssetPath(folder), fmt.Sprintf("frame_%02d.png", i+1))
}

// LoadFrameSequence decodes count frames from folder in order.
func LoadFrameSequence(ctx context.Context, fsys fs.FS, folder string, count int) ([]image.Image, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingFrames, folder)
	}
	frames := make([]image.Image, count)
	g, ctx := errgroup.WithContext(ctx)
	for i := range count {
		g.Go(func() error {
			img, err := loadWithContext(ctx, fsys, FramePath(folder, i))
			if err != nil {
				return err
			}
			frames[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return frames, nil
}

// LoadBundle decodes every level background and every frame sequence
// concurrently. Any single failure fails the whole bundle.
func LoadBundle(ctx context.Context, fsys fs.FS, manifest *levels.Manifest, sequences map[string]Sequence) (*Bundle, error) {
	if err := manifest.Validate(); err != nil {
		return nil, err
	}

	backgrounds := make([]image.Image, manifest.Len())
	frames := make(map[string][]image.Image, len(sequences))
	results := make([][]image.Image, 0, len(sequences))
	names := make([]string, 0, len(sequences))
	for name := range sequences {
		names = append(names, name)
		results = append(results, nil)
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, lvl := range manifest.Levels {
		g.Go(func() error {
			img, err := loadWithContext(ctx, fsys, lvl.Image)
			if err != nil {
				return fmt.Errorf("level %q: %w", lvl.ID, err)
			}
			backgrounds[i] = img
			return nil
		})
	}
	for i, name := range names {
		seq := sequences[name]
		g.Go(func() error {
			imgs, err := LoadFrameSequence(ctx, fsys, seq.Folder, seq.Count)
			if err != nil {
				return fmt.Errorf("animation %q: %w", name, err)
			}
			results[i] = imgs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	bundle := &Bundle{
		Backgrounds: make(map[string]image.Image, manifest.Len()),
		Frames:      frames,
	}
	for i, lvl := range manifest.Levels {
		bundle.Backgrounds[lvl.ID] = backgrounds[i]
	}
	for i, name := range names {
		frames[name] = results[i]
	}
	return bundle, nil
}

func loadWithContext(ctx context.Context, fsys fs.FS, p string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return LoadImage(fsys, p)
}
