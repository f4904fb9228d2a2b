package collab

import (
	"fmt"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/sync/singleflight"

	"github.com/duskforge/ecsframe/internal/core/ecs"
)

// AssetHandle is the stable identity components.Sprite/Audio reference by
// name rather than holding a loaded resource directly, so components stay
// copyable plain data.
type AssetHandle struct {
	ID   uint64
	Name string
}

// TextureLibrary resolves sprite texture names to decoded images, rooted at
// a single directory. Concurrent Load calls for the same name are
// coalesced with singleflight so two systems (or a system and a
// background preload) never decode the same file twice.
type TextureLibrary struct {
	root    string
	group   singleflight.Group
	cache   sync.Map // name -> *ebiten.Image
	nextID  uint64
	idMu    sync.Mutex
	idByName map[string]uint64
}

// NewTextureLibrary roots texture lookups at dir.
func NewTextureLibrary(dir string) *TextureLibrary {
	return &TextureLibrary{root: dir, idByName: make(map[string]uint64)}
}

// Load returns the decoded image for name, loading and caching it on first
// use. Safe for concurrent use from multiple goroutines (e.g. a background
// preloader racing a draw system).
func (l *TextureLibrary) Load(name string) (*ebiten.Image, AssetHandle, error) {
	if cached, ok := l.cache.Load(name); ok {
		return cached.(*ebiten.Image), l.handleFor(name), nil
	}
	v, err, _ := l.group.Do(name, func() (any, error) {
		path := l.root + string(os.PathSeparator) + name
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("collab: loading texture %q: %w", name, err)
		}
		l.cache.Store(name, img)
		return img, nil
	})
	if err != nil {
		return nil, AssetHandle{}, err
	}
	return v.(*ebiten.Image), l.handleFor(name), nil
}

func (l *TextureLibrary) handleFor(name string) AssetHandle {
	l.idMu.Lock()
	defer l.idMu.Unlock()
	id, ok := l.idByName[name]
	if !ok {
		l.nextID++
		id = l.nextID
		l.idByName[name] = id
	}
	return AssetHandle{ID: id, Name: name}
}

// AudioLibrary resolves audio clip names to raw encoded bytes, rooted at a
// single directory. Nothing in this repository decodes or plays the bytes
// (systems.AudioPlugin only loads them); the library itself only dedupes
// file reads.
type AudioLibrary struct {
	root  string
	group singleflight.Group
	cache sync.Map // name -> []byte
}

// NewAudioLibrary roots audio clip lookups at dir.
func NewAudioLibrary(dir string) *AudioLibrary {
	return &AudioLibrary{root: dir}
}

// Load returns the raw bytes of the named clip, loading and caching it on
// first use.
func (l *AudioLibrary) Load(name string) ([]byte, error) {
	if cached, ok := l.cache.Load(name); ok {
		return cached.([]byte), nil
	}
	v, err, _ := l.group.Do(name, func() (any, error) {
		path := l.root + string(os.PathSeparator) + name
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("collab: loading audio clip %q: %w", name, err)
		}
		l.cache.Store(name, data)
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// AssetPlugin installs the texture and audio libraries as resources, rooted
// at the given directories.
func AssetPlugin(textureRoot, audioRoot string) ecs.Plugin {
	return ecs.Plugin{
		Title:       "collab.Assets",
		Description: "singleflight-coalesced texture and audio loaders",
		Plug: func(w *ecs.World) {
			ecs.SetResource(w, NewTextureLibrary(textureRoot))
			ecs.SetResource(w, NewAudioLibrary(audioRoot))
		},
	}
}
