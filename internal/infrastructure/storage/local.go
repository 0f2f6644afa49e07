package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"

	domainStorage "hospital-portal/internal/domain/storage"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// LocalDisk stores files on a filesystem rooted at the public storage
// directory. Paths are always slash separated and relative to that root.
type LocalDisk struct {
	fs        afero.Fs
	publicURL string
}

// NewLocalDisk returns a disk rooted at root on the OS filesystem.
func NewLocalDisk(root, publicURL string) *LocalDisk {
	return NewLocalDiskFs(afero.NewBasePathFs(afero.NewOsFs(), root), publicURL)
}

// NewLocalDiskFs wraps an arbitrary afero filesystem, e.g. afero.NewMemMapFs.
func NewLocalDiskFs(fsys afero.Fs, publicURL string) *LocalDisk {
	return &LocalDisk{
		fs:        fsys,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

func (d *LocalDisk) Store(ctx context.Context, dir string, file domainStorage.UploadedFile) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir = strings.Trim(dir, "/")
	if err := d.fs.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create directory %s: %w", dir, err)
	}

	name := path.Join(dir, uuid.NewString()+file.Extension())
	out, err := d.fs.Create(name)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}

	if _, err := io.Copy(out, file.Content); err != nil {
		out.Close()
		_ = d.fs.Remove(name)
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err := out.Close(); err != nil {
		_ = d.fs.Remove(name)
		return "", fmt.Errorf("close %s: %w", name, err)
	}

	return name, nil
}

func (d *LocalDisk) URL(p string) string {
	return d.publicURL + "/" + strings.TrimLeft(p, "/")
}

func (d *LocalDisk) Exists(_ context.Context, p string) (bool, error) {
	return afero.Exists(d.fs, p)
}

func (d *LocalDisk) Delete(_ context.Context, p string) error {
	if p == "" {
		return nil
	}
	if err := d.fs.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", p, err)
	}
	return nil
}

// Handler serves stored files read-only, for mounting under /storage/.
func (d *LocalDisk) Handler() http.Handler {
	return http.FileServer(afero.NewHttpFs(afero.NewReadOnlyFs(d.fs)).Dir("/"))
}
