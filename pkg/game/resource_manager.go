package game

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/gonewx/towerdefense/pkg/components"
	"gopkg.in/yaml.v3"
)

// RGBA is a YAML-friendly colour value.
type RGBA struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

// ToColor converts the value to color.RGBA.
func (c RGBA) ToColor() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// SpriteDef describes a procedural sprite loaded from data/models/*.yaml.
type SpriteDef struct {
	Name    string  `yaml:"name"`
	Radius  float64 `yaml:"radius"`  // 半径（米）
	Color   RGBA    `yaml:"color"`   // 填充色
	Outline RGBA    `yaml:"outline"` // 描边色
	Glyph   string  `yaml:"glyph"`   // 终端渲染使用的字符
}

// FileReader reads a resource by path.
// embedded.ReadFile and os.ReadFile both satisfy it.
type FileReader func(path string) ([]byte, error)

// ResourceManager hands out opaque asset handles and loads sprite
// descriptors in the background.
//
// The simulation only stores the handle returned by Load; hosts ask
// IsLoaded/Sprite every frame and skip drawing while an asset is not ready.
// Loading never blocks the frame loop.
//
// Thread Safety Note:
// Unlike the single-threaded caches elsewhere, this manager is shared
// between the frame loop and loader goroutines, so every map is guarded
// by mu.
//
// Usage:
//
//	rm := NewResourceManager(embedded.ReadFile)
//	handle := rm.Load("data/models/tomato.yaml")
//	if sprite, ok := rm.Sprite(handle); ok {
//	    // draw sprite
//	}
type ResourceManager struct {
	readFile FileReader

	mu         sync.RWMutex
	nextHandle components.AssetHandle
	handles    map[string]components.AssetHandle // path -> handle
	paths      map[components.AssetHandle]string // handle -> path
	sprites    map[components.AssetHandle]*SpriteDef
	failures   map[components.AssetHandle]error

	wg sync.WaitGroup
}

// NewResourceManager creates a ResourceManager that reads files with readFile.
func NewResourceManager(readFile FileReader) *ResourceManager {
	return &ResourceManager{
		readFile:   readFile,
		nextHandle: 1, // 0 保留为无效句柄
		handles:    make(map[string]components.AssetHandle),
		paths:      make(map[components.AssetHandle]string),
		sprites:    make(map[components.AssetHandle]*SpriteDef),
		failures:   make(map[components.AssetHandle]error),
	}
}

// Load returns the handle for path and starts loading it in the background.
// Requesting the same path again returns the same handle without reloading.
func (rm *ResourceManager) Load(path string) components.AssetHandle {
	rm.mu.Lock()
	if handle, exists := rm.handles[path]; exists {
		rm.mu.Unlock()
		return handle
	}
	handle := rm.nextHandle
	rm.nextHandle++
	rm.handles[path] = handle
	rm.paths[handle] = path
	rm.mu.Unlock()

	rm.wg.Add(1)
	go func() {
		defer rm.wg.Done()
		rm.loadSprite(handle, path)
	}()
	return handle
}

func (rm *ResourceManager) loadSprite(handle components.AssetHandle, path string) {
	sprite, err := rm.decodeSprite(path)

	rm.mu.Lock()
	defer rm.mu.Unlock()
	if err != nil {
		rm.failures[handle] = err
		log.Printf("[ResourceManager] Failed to load %s: %v", path, err)
		return
	}
	rm.sprites[handle] = sprite
	log.Printf("[ResourceManager] Loaded %s as handle %d", path, handle)
}

func (rm *ResourceManager) decodeSprite(path string) (*SpriteDef, error) {
	if rm.readFile == nil {
		return nil, fmt.Errorf("no file reader configured")
	}
	data, err := rm.readFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sprite %s: %w", path, err)
	}
	var sprite SpriteDef
	if err := yaml.Unmarshal(data, &sprite); err != nil {
		return nil, fmt.Errorf("failed to parse sprite %s: %w", path, err)
	}
	if sprite.Radius <= 0 {
		return nil, fmt.Errorf("sprite %s: radius must be positive, got %v", path, sprite.Radius)
	}
	return &sprite, nil
}

// IsLoaded reports whether the asset behind handle is ready to draw.
func (rm *ResourceManager) IsLoaded(handle components.AssetHandle) bool {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	_, ok := rm.sprites[handle]
	return ok
}

// Sprite returns the loaded sprite for handle.
func (rm *ResourceManager) Sprite(handle components.AssetHandle) (*SpriteDef, bool) {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	sprite, ok := rm.sprites[handle]
	return sprite, ok
}

// Err returns the load error for handle, or nil if it loaded or is still pending.
func (rm *ResourceManager) Err(handle components.AssetHandle) error {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	return rm.failures[handle]
}

// Path returns the path a handle was requested with.
func (rm *ResourceManager) Path(handle components.AssetHandle) (string, bool) {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	path, ok := rm.paths[handle]
	return path, ok
}

// Wait blocks until every load started so far has finished.
// Hosts never call it from the frame loop; tests and the headless runner do.
func (rm *ResourceManager) Wait() {
	rm.wg.Wait()
}
