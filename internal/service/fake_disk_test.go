package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"hospital-portal/internal/domain/storage"
)

// fakeDisk is an in-memory storage.Disk. Stores fail once failAfter files
// have been written (when failAfter >= 0).
type fakeDisk struct {
	mu        sync.Mutex
	files     map[string][]byte
	deleted   []string
	next      int
	failAfter int
	deleteErr error
}

func newFakeDisk() *fakeDisk {
	return &fakeDisk{files: make(map[string][]byte), failAfter: -1}
}

func (d *fakeDisk) Store(_ context.Context, dir string, file storage.UploadedFile) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.failAfter >= 0 && d.next >= d.failAfter {
		return "", errors.New("disk full")
	}
	data, err := io.ReadAll(file.Content)
	if err != nil {
		return "", err
	}
	d.next++
	p := fmt.Sprintf("%s/file-%d%s", dir, d.next, file.Extension())
	d.files[p] = data
	return p, nil
}

func (d *fakeDisk) URL(p string) string {
	return "https://cdn.test/" + p
}

func (d *fakeDisk) Exists(_ context.Context, p string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.files[p]
	return ok, nil
}

func (d *fakeDisk) Delete(_ context.Context, p string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.deleted = append(d.deleted, p)
	if d.deleteErr != nil {
		return d.deleteErr
	}
	delete(d.files, p)
	return nil
}
