package store

import (
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"github.com/inovacc/frontdesk/internal/application"
)

const (
	boltBucketSession = "session"      // key: "access_token" -> opaque token string
	boltKeyToken      = "access_token" // fixed slot, one session at a time
)

// Bolt holds the session slot in an embedded BoltDB file.
type Bolt struct {
	storage *bbolt.DB
}

// NewBolt creates a Bolt database at the specified path.
// This is primarily exposed for testing purposes.
func NewBolt(path string) (*Bolt, error) {
	instance, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	if err := instance.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucketSession))

		return err
	}); err != nil {
		_ = instance.Close()

		return nil, err
	}

	return &Bolt{storage: instance}, nil
}

// Open opens the session store in the frontdesk data directory.
func Open() (*Bolt, error) {
	dir, err := application.DataDir()
	if err != nil {
		return nil, err
	}

	return NewBolt(filepath.Join(dir, "frontdesk.bolt"))
}

// Close closes the database.
func (b *Bolt) Close() error {
	return b.storage.Close()
}

// Token returns the stored session credential. The second return is
// false when no credential is present, which is the sole authorization
// signal the client acts on.
func (b *Bolt) Token() (string, bool) {
	var token string

	_ = b.storage.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket([]byte(boltBucketSession)).Get([]byte(boltKeyToken)); v != nil {
			token = string(v)
		}

		return nil
	})

	return token, token != ""
}

// SetToken stores the session credential, replacing any previous one.
func (b *Bolt) SetToken(token string) error {
	return b.storage.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketSession)).Put([]byte(boltKeyToken), []byte(token))
	})
}

// ClearToken removes the session credential. This is the only
// transition out of an authenticated state.
func (b *Bolt) ClearToken() error {
	return b.storage.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketSession)).Delete([]byte(boltKeyToken))
	})
}
