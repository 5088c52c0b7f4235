package signal

import "sync"

// Cache memoizes root handles by (store, selector, equality) identity.
// All three levels are keyed by identity, never by value equality: the
// same *Selector pointer hits, an equivalent but freshly built selector
// misses. Entries are never evicted; they live as long as the cache and
// the keying objects do. A Cache is safe for use from multiple
// goroutines, though the intended model is cooperative single-threaded
// rendering where inserts are idempotent insert-if-absent operations.
type Cache struct {
	mu     sync.Mutex
	stores map[Store]map[*Selector]map[*Equality]*cacheEntry
}

type cacheEntry struct {
	handle *Handle
	cell   *rootCell
}

// NewCache creates an empty handle cache. Use a dedicated cache when
// the owning scope wants to control entry lifetime; most callers use
// the package-level Derive against the default cache.
func NewCache() *Cache {
	return &Cache{stores: make(map[Store]map[*Selector]map[*Equality]*cacheEntry)}
}

// Derive returns the root handle for (store, selector, equality),
// creating it and subscribing to the store on first use. A nil selector
// means Identity; a nil equality means Strict. Calling Derive twice
// with the same identities returns the same handle instance.
//
// The cell is built outside the lock: the selector and the store's
// Subscribe are caller code and may themselves derive from this cache.
func (c *Cache) Derive(store Store, sel *Selector, eq *Equality) *Handle {
	if sel == nil {
		sel = Identity
	}
	if eq == nil {
		eq = Strict
	}

	c.mu.Lock()
	if e := c.entry(store, sel, eq); e != nil {
		c.mu.Unlock()
		return e.handle
	}
	c.mu.Unlock()

	cell := newRootCell(store, sel, eq)
	h := &Handle{
		id:        nextID(),
		get:       cell.value,
		subscribe: cell.subscribe,
	}

	c.mu.Lock()
	if e := c.entry(store, sel, eq); e != nil {
		// Another goroutine (or a re-entrant derivation of the same
		// triple) inserted first; keep its cell and detach ours.
		c.mu.Unlock()
		cell.close()
		return e.handle
	}
	bySel, ok := c.stores[store]
	if !ok {
		bySel = make(map[*Selector]map[*Equality]*cacheEntry)
		c.stores[store] = bySel
	}
	byEq, ok := bySel[sel]
	if !ok {
		byEq = make(map[*Equality]*cacheEntry)
		bySel[sel] = byEq
	}
	byEq[eq] = &cacheEntry{handle: h, cell: cell}
	c.mu.Unlock()
	return h
}

// entry looks up the cached entry for a triple. Callers hold c.mu.
func (c *Cache) entry(store Store, sel *Selector, eq *Equality) *cacheEntry {
	if bySel, ok := c.stores[store]; ok {
		if byEq, ok := bySel[sel]; ok {
			return byEq[eq]
		}
	}
	return nil
}

// Clear drops every cached entry and detaches the dropped roots from
// their stores. Handles already held by callers keep working locally
// but no longer receive store change notifications.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, bySel := range c.stores {
		for _, byEq := range bySel {
			for _, e := range byEq {
				e.cell.close()
			}
		}
	}
	c.stores = make(map[Store]map[*Selector]map[*Equality]*cacheEntry)
}

// defaultCache backs the package-level Derive.
var defaultCache = NewCache()

// Derive returns the root handle for (store, selector, equality) from
// the package-level cache. See Cache.Derive.
func Derive(store Store, sel *Selector, eq *Equality) *Handle {
	return defaultCache.Derive(store, sel, eq)
}

// rootCell is the shared mutable cell behind a root handle: the last
// selected value plus the fan-out list of subscriber callbacks. The
// store is subscribed exactly once per cell, when the cell is created.
type rootCell struct {
	store Store
	sel   *Selector
	eq    *Equality

	mu        sync.Mutex
	selected  any
	callbacks []rootCallback
	detach    func()
}

type rootCallback struct {
	id uint64
	fn func()
}

func newRootCell(store Store, sel *Selector, eq *Equality) *rootCell {
	c := &rootCell{
		store:    store,
		sel:      sel,
		eq:       eq,
		selected: sel.Select(store.CurrentState()),
	}
	c.detach = store.Subscribe(c.storeChanged)
	return c
}

// value returns the most recently captured selection. It never touches
// the store.
func (c *rootCell) value() any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

// storeChanged is the single store-level listener for this cell. It
// recomputes the selection, and only on inequality updates the cell and
// notifies subscribers in subscription order.
func (c *rootCell) storeChanged() {
	next := c.sel.Select(c.store.CurrentState())

	c.mu.Lock()
	if c.eq.Equal(c.selected, next) {
		c.mu.Unlock()
		return
	}
	c.selected = next
	cbs := make([]rootCallback, len(c.callbacks))
	copy(cbs, c.callbacks)
	c.mu.Unlock()

	for _, cb := range cbs {
		cb.fn()
	}
}

// subscribe registers callback and returns an idempotent remover.
func (c *rootCell) subscribe(callback func()) func() {
	id := nextID()
	c.mu.Lock()
	c.callbacks = append(c.callbacks, rootCallback{id: id, fn: callback})
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			for i, cb := range c.callbacks {
				if cb.id == id {
					c.callbacks = append(c.callbacks[:i], c.callbacks[i+1:]...)
					return
				}
			}
		})
	}
}

// close detaches the cell from its store and drops all subscribers.
func (c *rootCell) close() {
	c.mu.Lock()
	detach := c.detach
	c.detach = nil
	c.callbacks = nil
	c.mu.Unlock()

	if detach != nil {
		detach()
	}
}
