package catalog

import (
	"errors"
	"strconv"
)

// ResourceID names a piece of note content in a Store.
type ResourceID string

// Store is read-only access to note content. Reads never fail; asking for more than is there returns less.
type Store interface {
	// Size is the length of the resource in bytes, or 0 if it does not exist.
	Size(id ResourceID) int
	// Load copies the resource starting at offset into p and returns the number of bytes copied.
	Load(id ResourceID, offset int, p []byte) int
}

type Note struct {
	Index    int
	Resource ResourceID
	Title    string
	Length   int
}

// Catalog is the fixed list of notes shown in the menu.
type Catalog struct {
	store Store
	notes []Note
}

func New(store Store, ids ...ResourceID) (*Catalog, error) {
	if store == nil {
		return nil, errors.New("must provide store")
	}
	if len(ids) == 0 {
		return nil, errors.New("no notes")
	}
	c := &Catalog{store: store, notes: make([]Note, len(ids))}
	for i, id := range ids {
		c.notes[i] = Note{
			Index:    i,
			Resource: id,
			Title:    "Note " + strconv.Itoa(i+1),
			Length:   store.Size(id),
		}
	}
	return c, nil
}

func (c *Catalog) Len() int { return len(c.notes) }

// Note returns the entry at index i, which must be in [0, Len).
func (c *Catalog) Note(i int) Note { return c.notes[i] }

// Resolve maps a menu index to the note's resource. i must be in [0, Len).
func (c *Catalog) Resolve(i int) ResourceID { return c.notes[i].Resource }

// Preview is the first maxLen bytes of the resource. It may end in the middle of a word or a UTF-8 sequence.
func (c *Catalog) Preview(id ResourceID, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	buf := make([]byte, maxLen)
	n := c.store.Load(id, 0, buf)
	return string(buf[:n])
}

// Read fills buf from the start of the resource and returns the number of bytes read.
func (c *Catalog) Read(id ResourceID, buf []byte) int {
	return c.store.Load(id, 0, buf)
}

// MemStore is a Store backed by a map.
type MemStore map[ResourceID][]byte

func (m MemStore) Size(id ResourceID) int { return len(m[id]) }

func (m MemStore) Load(id ResourceID, offset int, p []byte) int {
	b := m[id]
	if offset < 0 || offset >= len(b) {
		return 0
	}
	return copy(p, b[offset:])
}
