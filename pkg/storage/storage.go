// Package storage is the media collaborator: it takes a raw buffer and
// hands back a public URL plus an opaque storage id.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type Object struct {
	URL       string `json:"url"`
	StorageID string `json:"storageId"`
}

type Storage interface {
	Save(data []byte, folder string) (Object, error)
}

// Local writes files under Dir; the router serves Dir at BaseURL.
type Local struct {
	Dir     string
	BaseURL string
}

func NewLocal(dir, baseURL string) *Local {
	return &Local{Dir: dir, BaseURL: baseURL}
}

func (l *Local) Save(data []byte, folder string) (Object, error) {
	name := uuid.NewString() + ".png"

	dir := filepath.Join(l.Dir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Object{}, err
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return Object{}, err
	}

	return Object{
		URL:       fmt.Sprintf("%s/%s/%s", l.BaseURL, folder, name),
		StorageID: folder + "/" + name,
	}, nil
}
