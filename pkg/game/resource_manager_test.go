package game

import (
	"fmt"
	"sync"
	"testing"

	"github.com/gonewx/towerdefense/pkg/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomatoYAML = `
name: tomato
radius: 0.08
color: {r: 220, g: 40, b: 30, a: 255}
outline: {r: 40, g: 120, b: 30, a: 255}
glyph: "*"
`

// mapReader 用内存文件模拟资源读取，gate 非 nil 时读取会阻塞到 gate 关闭
func mapReader(files map[string]string, gate <-chan struct{}) FileReader {
	return func(path string) ([]byte, error) {
		if gate != nil {
			<-gate
		}
		data, ok := files[path]
		if !ok {
			return nil, fmt.Errorf("file not found: %s", path)
		}
		return []byte(data), nil
	}
}

func TestResourceManagerLoadSprite(t *testing.T) {
	rm := NewResourceManager(mapReader(map[string]string{"data/models/tomato.yaml": tomatoYAML}, nil))

	handle := rm.Load("data/models/tomato.yaml")
	assert.NotEqual(t, components.AssetHandle(0), handle)
	rm.Wait()

	require.True(t, rm.IsLoaded(handle))
	sprite, ok := rm.Sprite(handle)
	require.True(t, ok)
	assert.Equal(t, "tomato", sprite.Name)
	assert.Equal(t, 0.08, sprite.Radius)
	assert.Equal(t, uint8(220), sprite.Color.ToColor().R)
	assert.Equal(t, "*", sprite.Glyph)
	assert.NoError(t, rm.Err(handle))

	path, ok := rm.Path(handle)
	assert.True(t, ok)
	assert.Equal(t, "data/models/tomato.yaml", path)
}

// TestResourceManagerNotReadyWhileLoading 加载完成之前句柄可用但资源未就绪
func TestResourceManagerNotReadyWhileLoading(t *testing.T) {
	gate := make(chan struct{})
	rm := NewResourceManager(mapReader(map[string]string{"data/models/tomato.yaml": tomatoYAML}, gate))

	handle := rm.Load("data/models/tomato.yaml")
	assert.False(t, rm.IsLoaded(handle))
	_, ok := rm.Sprite(handle)
	assert.False(t, ok)

	close(gate)
	rm.Wait()
	assert.True(t, rm.IsLoaded(handle))
}

func TestResourceManagerSameHandleForSamePath(t *testing.T) {
	rm := NewResourceManager(mapReader(map[string]string{"a": tomatoYAML, "b": tomatoYAML}, nil))

	a1 := rm.Load("a")
	a2 := rm.Load("a")
	b := rm.Load("b")
	rm.Wait()

	assert.Equal(t, a1, a2)
	assert.NotEqual(t, a1, b)
}

func TestResourceManagerFailures(t *testing.T) {
	files := map[string]string{
		"bad.yaml":    "name: [unclosed",
		"radius.yaml": "name: flat\nradius: 0",
	}
	rm := NewResourceManager(mapReader(files, nil))

	tests := []struct {
		name string
		path string
	}{
		{"missing file", "missing.yaml"},
		{"invalid YAML", "bad.yaml"},
		{"non-positive radius", "radius.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handle := rm.Load(tt.path)
			rm.Wait()
			assert.False(t, rm.IsLoaded(handle))
			assert.Error(t, rm.Err(handle))
		})
	}
}

func TestResourceManagerUnknownHandle(t *testing.T) {
	rm := NewResourceManager(nil)
	assert.False(t, rm.IsLoaded(99))
	_, ok := rm.Path(99)
	assert.False(t, ok)
}

func TestResourceManagerConcurrentLoad(t *testing.T) {
	rm := NewResourceManager(mapReader(map[string]string{"data/models/tomato.yaml": tomatoYAML}, nil))

	var wg sync.WaitGroup
	handles := make([]components.AssetHandle, 16)
	for i := range handles {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			handles[i] = rm.Load("data/models/tomato.yaml")
		}(i)
	}
	wg.Wait()
	rm.Wait()

	for _, h := range handles {
		assert.Equal(t, handles[0], h)
	}
	assert.True(t, rm.IsLoaded(handles[0]))
}
