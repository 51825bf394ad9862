package cache

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/polycube/pack"
	"github.com/katalvlaran/polycube/voxel"
)

// magic identifies a polycube generation file; it guards Load against
// loading an unrelated file that happens to share a path.
var magic = [4]byte{'P', 'C', 'U', 'B'}

// ErrBadHeader indicates a file's magic or count does not match its
// claimed contents — the file is corrupt or was not produced by Store.
var ErrBadHeader = errors.New("cache: bad or mismatched file header")

// FileCache persists generations as files named "<n>.pcube" inside Dir,
// using a length-prefixed concatenation of packed shapes behind a
// validating header, written atomically: Store writes to a temp file in
// Dir and renames over the target, so a concurrent Exists never observes
// a partially written file.
type FileCache struct {
	Dir string
}

// NewFileCache returns a FileCache rooted at dir. dir is created if it
// does not already exist.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache: creating %s: %w", dir, err)
	}

	return &FileCache{Dir: dir}, nil
}

func (c *FileCache) path(n int) string {
	return filepath.Join(c.Dir, fmt.Sprintf("%d.pcube", n))
}

// Exists reports whether a generation file for n is present.
// Complexity: O(1) (a single stat call).
func (c *FileCache) Exists(n int) bool {
	_, err := os.Stat(c.path(n))
	return err == nil
}

// Load reads back the generation persisted for n. A read failure (missing
// file, truncated data, bad header) is returned to the caller; callers
// such as the growth engine treat this as non-fatal and fall back to
// recomputing.
// Complexity: O(size of the stored generation).
func (c *FileCache) Load(n int) ([]voxel.Grid, error) {
	f, err := os.Open(c.path(n))
	if err != nil {
		return nil, fmt.Errorf("cache: open: %w", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)

	var hdr [4]byte
	if _, err := readFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("cache: reading magic: %w", err)
	}
	if hdr != magic {
		return nil, ErrBadHeader
	}

	var headerN, count uint32
	if err := binary.Read(r, binary.BigEndian, &headerN); err != nil {
		return nil, fmt.Errorf("cache: reading n: %w", err)
	}
	if err := binary.Read(r, binary.BigEndian, &count); err != nil {
		return nil, fmt.Errorf("cache: reading count: %w", err)
	}
	if int(headerN) != n {
		return nil, ErrBadHeader
	}

	shapes := make([]voxel.Grid, 0, count)
	for i := uint32(0); i < count; i++ {
		var length uint32
		if err := binary.Read(r, binary.BigEndian, &length); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, ErrBadHeader // body holds fewer entries than count
			}
			return nil, fmt.Errorf("cache: reading entry length %d: %w", i, err)
		}
		buf := make([]byte, length)
		if _, err := readFull(r, buf); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrBadHeader // body ends inside an entry
			}
			return nil, fmt.Errorf("cache: reading entry %d: %w", i, err)
		}
		g, err := pack.Unpack(buf)
		if err != nil {
			return nil, fmt.Errorf("cache: unpacking entry %d: %w", i, err)
		}
		shapes = append(shapes, g)
	}

	// Bytes left over after count entries mean the body holds more than
	// the header declares.
	if _, err := r.ReadByte(); err != io.EOF {
		return nil, ErrBadHeader
	}

	return shapes, nil
}

// Store persists shapes as the generation for n, atomically: the body is
// written to a temp file in Dir, then renamed over the target path so
// concurrent readers calling Exists never observe a partial write.
// Complexity: O(size of shapes).
func (c *FileCache) Store(n int, shapes []voxel.Grid) error {
	tmp, err := os.CreateTemp(c.Dir, fmt.Sprintf(".%d-*.tmp", n))
	if err != nil {
		return fmt.Errorf("cache: creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op once renamed

	w := bufio.NewWriter(tmp)
	if _, err := w.Write(magic[:]); err != nil {
		return closeAndWrap(tmp, err)
	}
	if err := binary.Write(w, binary.BigEndian, uint32(n)); err != nil {
		return closeAndWrap(tmp, err)
	}
	if err := binary.Write(w, binary.BigEndian, uint32(len(shapes))); err != nil {
		return closeAndWrap(tmp, err)
	}
	for i, g := range shapes {
		buf, err := pack.Pack(g)
		if err != nil {
			return closeAndWrap(tmp, fmt.Errorf("packing entry %d: %w", i, err))
		}
		if err := binary.Write(w, binary.BigEndian, uint32(len(buf))); err != nil {
			return closeAndWrap(tmp, err)
		}
		if _, err := w.Write(buf); err != nil {
			return closeAndWrap(tmp, err)
		}
	}
	if err := w.Flush(); err != nil {
		return closeAndWrap(tmp, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cache: closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, c.path(n)); err != nil {
		return fmt.Errorf("cache: renaming into place: %w", err)
	}

	return nil
}

func closeAndWrap(f *os.File, err error) error {
	_ = f.Close()
	return fmt.Errorf("cache: %w", err)
}

func readFull(r *bufio.Reader, buf []byte) (int, error) {
	n := 0
	for n < len(buf) {
		m, err := r.Read(buf[n:])
		n += m
		if err != nil {
			return n, err
		}
	}

	return n, nil
}
