package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Resources bundles a cartridge's assets. All fields are always non-nil
// after construction; missing files load as blank assets so a fresh
// project runs without any cartridge data on disk.
type Resources struct {
	Map         *Map
	SpriteSheet *SpriteSheet
	Flags       *Flags

	// Dir is the directory the resources were loaded from, empty for
	// defaults and fs.FS loads. Save uses it when no directory is given.
	Dir string
}

// Default returns blank resources.
func Default() *Resources {
	return &Resources{
		Map:         NewMap(),
		SpriteSheet: NewSpriteSheet(),
		Flags:       NewFlags(),
	}
}

// Load reads cartridge assets from dir. Missing files yield blank assets;
// files that exist but fail to decode are errors.
func Load(dir string) (*Resources, error) {
	res, err := loadFrom(osFS{}, dir)
	if err != nil {
		return nil, err
	}
	res.Dir = dir
	return res, nil
}

// LoadFS reads cartridge assets rooted at dir inside fsys. Use with an
// embed.FS to compile assets into the game binary. Pass "." for dir when
// the files sit at the FS root.
func LoadFS(fsys fs.FS, dir string) (*Resources, error) {
	return loadFrom(fsFS{fsys}, dir)
}

// Save writes all assets under dir, creating it if needed. When dir is
// empty, the directory the resources were loaded from is used.
func (r *Resources) Save(dir string) error {
	if dir == "" {
		dir = r.Dir
	}
	if dir == "" {
		return fmt.Errorf("save assets: no directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("save assets: %w", err)
	}
	files := map[string][]byte{
		MapFile:         r.Map.Serialize(),
		SpriteSheetFile: r.SpriteSheet.Serialize(),
		FlagsFile:       r.Flags.Serialize(),
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			return fmt.Errorf("save assets: %w", err)
		}
	}
	return nil
}

// reader abstracts os and fs.FS file access for loadFrom.
type reader interface {
	readFile(dir, name string) ([]byte, error)
}

type osFS struct{}

func (osFS) readFile(dir, name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(dir, name))
}

type fsFS struct {
	fsys fs.FS
}

func (f fsFS) readFile(dir, name string) ([]byte, error) {
	if dir == "" || dir == "." {
		return fs.ReadFile(f.fsys, name)
	}
	return fs.ReadFile(f.fsys, dir+"/"+name)
}

func loadFrom(r reader, dir string) (*Resources, error) {
	res := Default()

	if data, err := r.readFile(dir, MapFile); err == nil {
		if res.Map, err = ParseMap(data); err != nil {
			return nil, fmt.Errorf("load assets: %w", err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load assets: %w", err)
	}

	if data, err := r.readFile(dir, SpriteSheetFile); err == nil {
		if res.SpriteSheet, err = ParseSpriteSheet(data); err != nil {
			return nil, fmt.Errorf("load assets: %w", err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load assets: %w", err)
	}

	if data, err := r.readFile(dir, FlagsFile); err == nil {
		if res.Flags, err = ParseFlags(data); err != nil {
			return nil, fmt.Errorf("load assets: %w", err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load assets: %w", err)
	}

	return res, nil
}
