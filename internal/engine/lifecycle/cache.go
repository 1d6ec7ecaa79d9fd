package lifecycle

import (
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"go.trai.ch/quill/internal/core/domain"
)

// Cache indexes live units by stable key, identity, versioned name and tag name.
// All index mutations happen under one lock so that a rekey is observed atomically.
type Cache struct {
	mu         sync.RWMutex
	byKey      map[string]*Unit
	byIdentity map[string]*Unit
	byName     map[string]*Unit
	byTag      map[string]*Unit

	version atomic.Int64
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{
		byKey:      make(map[string]*Unit),
		byIdentity: make(map[string]*Unit),
		byName:     make(map[string]*Unit),
		byTag:      make(map[string]*Unit),
	}
}

// NextVersion returns a fresh, strictly increasing version number.
func (c *Cache) NextVersion() int64 {
	return c.version.Add(1)
}

// ByKey returns the unit registered under a stable key.
func (c *Cache) ByKey(key string) (*Unit, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	u, ok := c.byKey[key]
	return u, ok
}

// ByIdentity returns the unit with the given identity.
func (c *Cache) ByIdentity(identity string) (*Unit, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	u, ok := c.byIdentity[identity]
	return u, ok
}

// ByName returns the unit currently known under a versioned name.
func (c *Cache) ByName(name string) (*Unit, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	u, ok := c.byName[name]
	return u, ok
}

// ByTag returns the unit defining a tag.
func (c *Cache) ByTag(tag string) (*Unit, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	u, ok := c.byTag[tag]
	return u, ok
}

// Units returns all live units ordered by versioned name.
func (c *Cache) Units() []*Unit {
	c.mu.RLock()
	out := make([]*Unit, 0, len(c.byName))
	for _, u := range c.byName {
		out = append(out, u)
	}
	c.mu.RUnlock()

	slices.SortFunc(out, func(a, b *Unit) int {
		return strings.Compare(a.VersionedName(), b.VersionedName())
	})
	return out
}

// getOrCreate returns the unit stored under key, creating it with create when absent.
func (c *Cache) getOrCreate(key string, create func() *Unit) *Unit {
	c.mu.RLock()
	u, ok := c.byKey[key]
	c.mu.RUnlock()
	if ok {
		return u
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if u, ok := c.byKey[key]; ok {
		return u
	}
	u = create()
	c.byKey[key] = u
	return u
}

// register assigns the first identity and version of u and indexes it.
// It is a no-op for inner units and units that already have an identity.
func (c *Cache) register(u *Unit) {
	if u.resource == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	u.mu.Lock()
	defer u.mu.Unlock()
	if u.identity != "" {
		return
	}
	u.identity = domain.Identity(u.resource.SuggestedUnitName())
	u.version = c.NextVersion()
	c.byIdentity[u.identity] = u
	c.byName[domain.VersionedName(u.identity, u.version)] = u
}

// rekey moves u to version and returns its new versioned name.
// Lookups by the old name fail from then on.
func (c *Cache) rekey(u *Unit, version int64) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	u.mu.Lock()
	defer u.mu.Unlock()
	delete(c.byName, domain.VersionedName(u.identity, u.version))
	u.version = version
	name := domain.VersionedName(u.identity, u.version)
	c.byName[name] = u
	return name
}

// retag moves the tag index entry of u from old to tag.
func (c *Cache) retag(u *Unit, old, tag string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if old != "" && c.byTag[old] == u {
		delete(c.byTag, old)
	}
	if tag != "" {
		c.byTag[tag] = u
	}
}

// addInner indexes a freshly created inner unit, replacing any previous one with the same name.
func (c *Cache) addInner(inner *Unit) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byName[inner.identity] = inner
	c.byIdentity[inner.identity] = inner
}

// dropInners removes the given inner units from the indexes.
func (c *Cache) dropInners(inners map[string]*Unit) {
	if len(inners) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, inner := range inners {
		if c.byName[inner.identity] == inner {
			delete(c.byName, inner.identity)
		}
		if c.byIdentity[inner.identity] == inner {
			delete(c.byIdentity, inner.identity)
		}
	}
}
