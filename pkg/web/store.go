package web

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"mandelfield/pkg/utils"
)

// Cache stores rendered tiles on local disk so each tile is computed at most
// once. Files live under root in zoom/y directories, one PNG per tile.
type Cache struct {
	root string
}

// NewCache creates the cache root if needed and returns a Cache over it.
func NewCache(root string) (*Cache, error) {
	if err := utils.CreateFolder(root); err != nil {
		return nil, err
	}
	return &Cache{root: root}, nil
}

// Get returns the cached bytes for the tile, or os.ErrNotExist if the tile
// has never been stored.
func (c *Cache) Get(t *Tile) ([]byte, error) {
	fname := filepath.Join(c.root, t.Path(), t.Filename())

	exists, err := utils.PathExists(fname)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, os.ErrNotExist
	}

	return ioutil.ReadFile(fname)
}

// Put stores the rendered tile bytes, creating the zoom/y directory on first
// use.
func (c *Cache) Put(t *Tile, data []byte) error {
	dir := filepath.Join(c.root, t.Path())
	if err := utils.CreateFolder(dir); err != nil {
		return err
	}

	return ioutil.WriteFile(filepath.Join(dir, t.Filename()), data, 0644)
}
