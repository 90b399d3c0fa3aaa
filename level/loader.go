package level

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	cfg "github.com/automoto/dragonfight/config"
	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from TMX files.
const (
	CollisionLayer  = "collision"
	ColliderObjects = "colliders"
)

// ErrNoSolidLayer is returned when a TMX file has no collision layer.
var ErrNoSolidLayer = errors.New("no collision layer")

// LoadTMX parses a TMX file into a collision world. Every non-empty cell of
// the "collision" tile layer is solid unless its tileset tile carries
// passable=true. Rectangles in the "colliders" object group become static
// colliders, ordered by object ID so declaration order is stable. A map
// property groundY overrides the configured ground line.
// It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*World, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	grid := NewGrid(levelMap.Width, levelMap.Height, float64(levelMap.TileWidth))
	found := false
	for _, layer := range levelMap.Layers {
		if layer.Name != CollisionLayer {
			continue
		}
		found = true
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				idx := y*levelMap.Width + x
				if idx >= len(layer.Tiles) {
					continue
				}
				tile := layer.Tiles[idx]
				if tile == nil || tile.IsNil() {
					continue
				}
				if tile.Tileset != nil {
					if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
						if tilesetTile.Properties.GetString("passable") == "true" {
							continue
						}
					}
				}
				grid.Set(x, y, true)
			}
		}
		break
	}
	if !found {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoSolidLayer)
	}

	type ordered struct {
		id   uint32
		rect Rect
	}
	var objs []ordered
	for _, og := range levelMap.ObjectGroups {
		if og.Name != ColliderObjects {
			continue
		}
		for _, o := range og.Objects {
			if o.Width <= 0 || o.Height <= 0 {
				continue
			}
			objs = append(objs, ordered{
				id:   o.ID,
				rect: Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
			})
		}
	}
	sort.SliceStable(objs, func(i, j int) bool { return objs[i].id < objs[j].id })

	statics := make([]Rect, 0, len(objs))
	for _, o := range objs {
		statics = append(statics, o.rect)
	}

	groundY := cfg.Level.GroundY
	if g := levelMap.Properties.GetFloat("groundY"); g > 0 {
		groundY = g
	}

	width := float64(levelMap.Width * levelMap.TileWidth)
	return NewWorld(width, groundY, grid, statics), nil
}
