package pages

import (
	"bytes"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/and-zheng/lolstaticdata/internal/markup"
)

const (
	maxPageFileSize = 4 << 20
	pageExt         = ".html"
)

// Path returns the relative path of the saved data page of an ability:
// "<Champion>/<Ability_Name>.html", the way the wiki names the template.
func Path(champion, ability string) string {
	return filepath.Join(champion, strings.ReplaceAll(ability, " ", "_")+pageExt)
}

// Cache loads saved ability data pages from a directory and keeps their
// parsed parameter tables. Pages are fetched by another tool; the cache only
// reads what is on disk.
type Cache struct {
	dir   string
	pages map[string][]markup.Row
	mu    sync.RWMutex
	lazy  bool
}

// NewCache creates a new page cache.
// If lazy is false, all pages under dir are parsed at creation time.
// If lazy is true, pages are parsed on first access (cache miss).
func NewCache(dir string, lazy bool) (*Cache, error) {
	c := &Cache{
		dir:   dir,
		pages: make(map[string][]markup.Row),
		lazy:  lazy,
	}

	if !lazy {
		if err := c.preload(); err != nil {
			return nil, fmt.Errorf("preloading pages: %w", err)
		}
	}

	return c, nil
}

// Get returns the parameter rows of a page by relative path (see Path).
func (c *Cache) Get(path string) ([]markup.Row, error) {
	if strings.Contains(path, "..") {
		return nil, fmt.Errorf("path traversal denied: %s", path)
	}

	c.mu.RLock()
	rows, ok := c.pages[path]
	c.mu.RUnlock()
	if ok {
		return rows, nil
	}

	if !c.lazy {
		return nil, fmt.Errorf("page not found: %s", path)
	}

	return c.loadAndCache(path)
}

// Ability returns the parameter rows of one ability page.
func (c *Cache) Ability(champion, ability string) ([]markup.Row, error) {
	return c.Get(Path(champion, ability))
}

// Exists returns true if the page is cached or the file exists on disk.
func (c *Cache) Exists(path string) bool {
	if strings.Contains(path, "..") {
		return false
	}

	c.mu.RLock()
	_, ok := c.pages[path]
	c.mu.RUnlock()
	if ok {
		return true
	}

	if c.lazy {
		_, err := os.Stat(filepath.Join(c.dir, path))
		return err == nil
	}

	return false
}

// Len returns the number of parsed pages held by the cache.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.pages)
}

// preload walks dir and parses every page into the cache.
func (c *Cache) preload() error {
	info, err := os.Stat(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("pages directory does not exist, skipping preload", "dir", c.dir)
			return nil
		}
		return fmt.Errorf("stat pages dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("pages dir is not a directory: %s", c.dir)
	}

	count := 0
	err = filepath.WalkDir(c.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(strings.ToLower(d.Name()), pageExt) {
			return nil
		}

		relPath, err := filepath.Rel(c.dir, path)
		if err != nil {
			return fmt.Errorf("computing relative path for %s: %w", path, err)
		}

		if _, err := c.loadFile(relPath); err != nil {
			slog.Warn("failed to load page", "path", relPath, "error", err)
			return nil // skip broken pages, the roster reports them when asked for
		}

		count++
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking pages dir: %w", err)
	}

	slog.Info("ability pages preloaded", "count", count, "dir", c.dir)
	return nil
}

// loadAndCache parses a page from disk and stores it in cache.
func (c *Cache) loadAndCache(path string) ([]markup.Row, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock.
	if rows, ok := c.pages[path]; ok {
		return rows, nil
	}

	return c.loadFile(path)
}

// loadFile reads and parses the page, stores it in cache.
// Caller must hold c.mu write lock (or be called during init).
func (c *Cache) loadFile(path string) ([]markup.Row, error) {
	fullPath := filepath.Join(c.dir, path)

	info, err := os.Stat(fullPath)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > maxPageFileSize {
		return nil, fmt.Errorf("file too large (%d bytes, max %d): %s", info.Size(), maxPageFileSize, path)
	}

	raw, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	rows, err := markup.ParameterRows(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing page %s: %w", path, err)
	}

	c.pages[path] = rows
	return rows, nil
}
