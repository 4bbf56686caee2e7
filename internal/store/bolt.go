package store

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/inovacc/grab/internal/application"
	"github.com/inovacc/grab/internal/giturl"
)

const (
	bucketClones = "clones" // key: URL -> Record JSON
	bucketPaths  = "paths"  // key: Path -> URL string
)

// Record is one remembered clone.
type Record struct {
	UID      string    `json:"uid"`
	URL      string    `json:"url"`
	Host     string    `json:"host"`
	Owner    string    `json:"owner"`
	Project  string    `json:"project"`
	Path     string    `json:"path"`
	ClonedAt time.Time `json:"cloned_at"`
}

// Location reconstructs the repository location this record was saved for.
func (r Record) Location() giturl.Location {
	return giturl.Location{Host: r.Host, Owner: r.Owner, Project: r.Project}
}

// Registry is the bbolt-backed clone registry.
type Registry struct {
	storage *bbolt.DB
}

// Open opens the registry at the given path, creating it if missing.
func Open(path string) (*Registry, error) {
	instance, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	if err := instance.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(bucketClones)); err != nil {
			return err
		}

		if _, err := tx.CreateBucketIfNotExists([]byte(bucketPaths)); err != nil {
			return err
		}

		return nil
	}); err != nil {
		_ = instance.Close()

		return nil, err
	}

	return &Registry{storage: instance}, nil
}

// OpenDefault opens the registry file in the application directory.
func OpenDefault() (*Registry, error) {
	dir, err := application.GetApplicationDirectory()
	if err != nil {
		return nil, err
	}

	return Open(filepath.Join(dir, application.RegistryFileName))
}

// Close closes the registry.
func (r *Registry) Close() error {
	return r.storage.Close()
}

// Save remembers a finished clone. Saving an already recorded URL or path
// again is a no-op.
func (r *Registry) Save(loc giturl.Location, rawURL, path string) error {
	if rawURL == "" {
		return errors.New("url is required")
	}

	rec := Record{
		UID:      uuid.New().String(),
		URL:      rawURL,
		Host:     loc.Host,
		Owner:    loc.Owner,
		Project:  loc.Project,
		Path:     path,
		ClonedAt: time.Now(),
	}

	data, err := json.Marshal(&rec)
	if err != nil {
		return err
	}

	return r.storage.Update(func(tx *bbolt.Tx) error {
		var (
			clones = tx.Bucket([]byte(bucketClones))
			paths  = tx.Bucket([]byte(bucketPaths))
		)

		if clones.Get([]byte(rec.URL)) != nil {
			return nil
		}

		if paths.Get([]byte(rec.Path)) != nil {
			return nil
		}

		if err := clones.Put([]byte(rec.URL), data); err != nil {
			return err
		}

		return paths.Put([]byte(rec.Path), []byte(rec.URL))
	})
}

// All returns every record in key order.
func (r *Registry) All() ([]Record, error) {
	var out []Record

	err := r.storage.View(func(tx *bbolt.Tx) error {
		clones := tx.Bucket([]byte(bucketClones))

		return clones.ForEach(func(_, v []byte) error {
			var rec Record

			if err := json.Unmarshal(v, &rec); err != nil {
				return err
			}

			out = append(out, rec)

			return nil
		})
	})

	return out, err
}
