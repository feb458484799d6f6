// Package history keeps the most recent search queries, newest first, and
// persists them across restarts.
package history

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// StorageKey is the settings key the history is persisted under.
const StorageKey = "searchHistory"

// Limit is the number of queries kept.
const Limit = 5

// Storage persists string values by key.
type Storage interface {
	Get(key string) (string, bool, error)
	Put(key, value string) error
	Delete(key string) error
}

// History is a bounded, de-duplicated list of recent queries. It is safe
// for concurrent use.
type History struct {
	mu      sync.Mutex
	store   Storage
	entries []string
}

// Load reads the persisted history. A corrupt value is logged and replaced
// with an empty history.
func Load(store Storage) (*History, error) {
	h := &History{store: store}

	raw, ok, err := store.Get(StorageKey)
	if err != nil {
		return nil, fmt.Errorf("loading search history: %w", err)
	}
	if !ok {
		return h, nil
	}

	var entries []string
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		slog.Warn("discarding unreadable search history", "err", err)
		return h, nil
	}
	if len(entries) > Limit {
		entries = entries[:Limit]
	}
	h.entries = entries
	return h, nil
}

// Add moves query to the front, dropping an earlier copy and anything past
// Limit, then persists the result. Blank queries are ignored.
func (h *History) Add(query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	entries := make([]string, 0, Limit)
	entries = append(entries, query)
	for _, e := range h.entries {
		if e != query && len(entries) < Limit {
			entries = append(entries, e)
		}
	}
	if err := h.save(entries); err != nil {
		return err
	}
	h.entries = entries
	return nil
}

// Entries returns the recent queries, newest first.
func (h *History) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.entries...)
}

// Clear empties the history and removes the persisted value.
func (h *History) Clear() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.store.Delete(StorageKey); err != nil {
		return fmt.Errorf("clearing search history: %w", err)
	}
	h.entries = nil
	return nil
}

func (h *History) save(entries []string) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encoding search history: %w", err)
	}
	if err := h.store.Put(StorageKey, string(data)); err != nil {
		return fmt.Errorf("saving search history: %w", err)
	}
	return nil
}
