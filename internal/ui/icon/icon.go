package icon

import (
	"html/template"
	"io/fs"
	"slices"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

const (
	BellAlert       = "bell-alert"
	XMark           = "x-mark"
	MagnifyingGlass = "magnifying-glass"
)

var ErrNotFound = errors.New("icon not found")

type Provider interface {
	Icon(name string) (template.HTML, error)
}

type ProviderFunc func(name string) (template.HTML, error)

func (fn ProviderFunc) Icon(name string) (template.HTML, error) {
	return fn(name)
}

// FSProvider serves <name>.svg files from a filesystem.
type FSProvider struct {
	fsys fs.FS

	mutex sync.RWMutex
	cache map[string]template.HTML
}

// Icon implements Provider.
func (p *FSProvider) Icon(name string) (template.HTML, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return "", errors.Wrapf(ErrNotFound, "invalid icon name '%s'", name)
	}

	p.mutex.RLock()
	glyph, exists := p.cache[name]
	p.mutex.RUnlock()

	if exists {
		return glyph, nil
	}

	data, err := fs.ReadFile(p.fsys, name+".svg")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", errors.Wrapf(ErrNotFound, "icon '%s'", name)
		}

		return "", errors.WithStack(err)
	}

	// Glyphs are operator supplied assets.
	glyph = template.HTML(strings.TrimSpace(string(data)))

	p.mutex.Lock()
	p.cache[name] = glyph
	p.mutex.Unlock()

	return glyph, nil
}

func NewFSProvider(fsys fs.FS) *FSProvider {
	return &FSProvider{
		fsys:  fsys,
		cache: make(map[string]template.HTML),
	}
}

var _ Provider = &FSProvider{}

type Type string

type CreateProviderFunc func(options any) (Provider, error)

var (
	registryMutex sync.RWMutex
	registry      = map[Type]CreateProviderFunc{}
)

func Register(typ Type, fn CreateProviderFunc) {
	registryMutex.Lock()
	defer registryMutex.Unlock()

	registry[typ] = fn
}

func Registered() []Type {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	types := make([]Type, 0, len(registry))
	for typ := range registry {
		types = append(types, typ)
	}

	slices.Sort(types)

	return types
}

func New(typ Type, options any) (Provider, error) {
	registryMutex.RLock()
	create, exists := registry[typ]
	registryMutex.RUnlock()

	if !exists {
		return nil, errors.Errorf("no icon provider registered with type '%s'", typ)
	}

	provider, err := create(options)
	if err != nil {
		return nil, errors.Wrapf(err, "could not create icon provider '%s'", typ)
	}

	return provider, nil
}
