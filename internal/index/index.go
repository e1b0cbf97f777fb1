// Package index aggregates the element lists published while a book is
// processed, such as the list of tables.
package index

import (
	"sort"
	"sync"

	"github.com/havlicek/easybook/internal/tables"
)

// KeyTables is the registry key of the list of tables.
const KeyTables = "publishing.list.tables"

// Entry is one published table with the item it belongs to.
type Entry struct {
	Item   string // number of the item that contains the table
	Page   string // published page of the item, may be empty
	Title  string // title of the item
	Record tables.Record
}

// Registry collects entries by key. It is safe for concurrent use.
type Registry struct {
	mu    sync.Mutex
	lists map[string][]Entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{lists: make(map[string][]Entry)}
}

// Append adds entries to the list under key. Empty appends are ignored so
// that a key only exists once something was published under it.
func (r *Registry) Append(key string, entries []Entry) {
	if len(entries) == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lists[key] = append(r.lists[key], entries...)
}

// AppendTables wraps the records of one item and appends them under KeyTables.
func (r *Registry) AppendTables(item, page, title string, records []tables.Record) {
	entries := make([]Entry, len(records))
	for i, rec := range records {
		entries[i] = Entry{Item: item, Page: page, Title: title, Record: rec}
	}
	r.Append(KeyTables, entries)
}

// List returns a copy of the entries under key, in append order.
func (r *Registry) List(key string) []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, ok := r.lists[key]
	if !ok {
		return nil
	}
	out := make([]Entry, len(list))
	copy(out, list)
	return out
}

// Tables returns the published list of tables.
func (r *Registry) Tables() []Entry {
	return r.List(KeyTables)
}

// Has reports whether anything was published under key.
func (r *Registry) Has(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.lists[key]
	return ok
}

// Keys returns the keys with published entries, sorted.
func (r *Registry) Keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]string, 0, len(r.lists))
	for k := range r.lists {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
