package store

import (
	"encoding/binary"
	"errors"
	"math"

	bolt "go.etcd.io/bbolt"

	"src.plugview.dev/pkg/geom"
)

// ErrNoSize is returned by (*Store).WindowSize when no size was saved for the
// editor.
var ErrNoSize = errors.New("no saved window size")

const bucketWindowSize = "window_size"

func init() {
	initDB["initialize window size table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketWindowSize))
		return err
	}
}

func marshalSize(s geom.Size) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint32(b, math.Float32bits(s.Width))
	binary.BigEndian.PutUint32(b[4:], math.Float32bits(s.Height))
	return b
}

func unmarshalSize(b []byte) (geom.Size, bool) {
	if len(b) != 8 {
		return geom.Size{}, false
	}
	return geom.Sz(
		math.Float32frombits(binary.BigEndian.Uint32(b)),
		math.Float32frombits(binary.BigEndian.Uint32(b[4:]))), true
}

// WindowSize returns the last saved logical window size of an editor.
func (s *Store) WindowSize(editor string) (geom.Size, error) {
	var size geom.Size
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketWindowSize))
		v := b.Get([]byte(editor))
		if v == nil {
			return ErrNoSize
		}
		var ok bool
		size, ok = unmarshalSize(v)
		if !ok {
			logger.Printf("corrupt window size for %q: %x", editor, v)
			return ErrNoSize
		}
		return nil
	})
	return size, err
}

// SetWindowSize saves the logical window size of an editor.
func (s *Store) SetWindowSize(editor string, size geom.Size) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketWindowSize))
		return b.Put([]byte(editor), marshalSize(size))
	})
}

// DelWindowSize deletes the saved window size of an editor.
func (s *Store) DelWindowSize(editor string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketWindowSize))
		return b.Delete([]byte(editor))
	})
}

// SizeSaver saves window sizes of one editor. It implements
// driver.SizeSaver.
type SizeSaver struct {
	Store  *Store
	Editor string
}

// SaveSize saves s as the window size of the editor.
func (v SizeSaver) SaveSize(s geom.Size) error { return v.Store.SetWindowSize(v.Editor, s) }
