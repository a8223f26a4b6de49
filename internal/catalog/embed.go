package catalog

import (
	"embed"
	"io"
	"io/fs"
	"sort"
	"strings"
)

//go:embed notes/*.txt
var notes embed.FS

// EmbedStore serves the notes compiled into the binary. Resource IDs are file names without the .txt extension.
type EmbedStore struct{}

// Builtin returns the IDs of the compiled-in notes in file name order.
func (EmbedStore) Builtin() []ResourceID {
	entries, err := fs.ReadDir(notes, "notes")
	if err != nil {
		return nil
	}
	var ids []ResourceID
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		ids = append(ids, ResourceID(strings.TrimSuffix(e.Name(), ".txt")))
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (EmbedStore) Size(id ResourceID) int {
	f, err := notes.Open(path(id))
	if err != nil {
		return 0
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil || fi.IsDir() {
		return 0
	}
	return int(fi.Size())
}

func (EmbedStore) Load(id ResourceID, offset int, p []byte) int {
	if offset < 0 || len(p) == 0 {
		return 0
	}
	f, err := notes.Open(path(id))
	if err != nil {
		return 0
	}
	defer f.Close()

	// embed files are always io.ReaderAt
	ra, ok := f.(io.ReaderAt)
	if !ok {
		return 0
	}
	n, _ := ra.ReadAt(p, int64(offset))
	return n
}

func path(id ResourceID) string {
	return "notes/" + string(id) + ".txt"
}

// Builtin is a catalog of the compiled-in notes.
func Builtin() (*Catalog, error) {
	var s EmbedStore
	return New(s, s.Builtin()...)
}
