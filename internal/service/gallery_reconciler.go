package service

import (
	"context"
	"strings"

	"hospital-portal/internal/domain/entity"
	"hospital-portal/internal/domain/storage"
	"hospital-portal/internal/infrastructure/metrics"
	"hospital-portal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Storage directories for uploaded files.
const (
	ContentImageDir = "contents"
	DoctorPhotoDir  = "doctors"
)

// GalleryResult is the outcome of a reconciliation. Nothing has been
// persisted yet: the caller saves NextImages and then purges FilesToDelete.
type GalleryResult struct {
	NextImages    []entity.ImageRef
	FilesToDelete []string
	// Uploaded lists the paths written by this call, so the caller can
	// discard them if saving NextImages fails.
	Uploaded []string
}

type GalleryReconciler interface {
	Reconcile(ctx context.Context, current []entity.ImageRef, newFiles []storage.UploadedFile, deletedPaths []string) (*GalleryResult, error)
	// StoreFile uploads a single file, e.g. a doctor photo.
	StoreFile(ctx context.Context, dir string, file storage.UploadedFile) (string, error)
	// Purge deletes files best-effort. Failures are logged, never returned.
	Purge(ctx context.Context, paths []string)
}

type galleryReconciler struct {
	disk    storage.Disk
	log     *logrus.Logger
	metrics *metrics.StorageMetrics
}

func NewGalleryReconciler(disk storage.Disk, log *logrus.Logger, m *metrics.StorageMetrics) GalleryReconciler {
	return &galleryReconciler{
		disk:    disk,
		log:     log,
		metrics: m,
	}
}

// Reconcile removes deletedPaths from current and appends one entry per new
// file. Only paths that belong to current are scheduled for deletion; other
// paths are ignored. If any upload fails, files already uploaded by this
// call are removed and a StorageError is returned.
func (r *galleryReconciler) Reconcile(ctx context.Context, current []entity.ImageRef, newFiles []storage.UploadedFile, deletedPaths []string) (*GalleryResult, error) {
	deleted := make(map[string]struct{}, len(deletedPaths))
	for _, p := range deletedPaths {
		if p = strings.TrimSpace(p); p != "" {
			deleted[p] = struct{}{}
		}
	}

	result := &GalleryResult{
		NextImages:    make([]entity.ImageRef, 0, len(current)+len(newFiles)),
		FilesToDelete: make([]string, 0),
	}
	seen := make(map[string]struct{}, len(current)+len(newFiles))

	for _, image := range current {
		if _, ok := deleted[image.Path]; ok {
			if _, dup := seen[image.Path]; !dup {
				result.FilesToDelete = append(result.FilesToDelete, image.Path)
				seen[image.Path] = struct{}{}
			}
			continue
		}
		if _, dup := seen[image.Path]; dup {
			continue
		}
		seen[image.Path] = struct{}{}
		result.NextImages = append(result.NextImages, image)
	}

	for _, file := range newFiles {
		p, err := r.disk.Store(ctx, ContentImageDir, file)
		if err != nil {
			r.log.Warnf("Failed to store gallery image %s: %+v", file.Filename, err)
			r.Purge(ctx, result.Uploaded)
			return nil, apperror.NewStorageError("store", file.Filename, err)
		}
		result.Uploaded = append(result.Uploaded, p)

		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		result.NextImages = append(result.NextImages, entity.ImageRef{
			ID:   uuid.NewString(),
			Path: p,
			URL:  r.disk.URL(p),
		})
	}

	return result, nil
}

func (r *galleryReconciler) StoreFile(ctx context.Context, dir string, file storage.UploadedFile) (string, error) {
	p, err := r.disk.Store(ctx, dir, file)
	if err != nil {
		r.log.Warnf("Failed to store %s under %s: %+v", file.Filename, dir, err)
		return "", apperror.NewStorageError("store", file.Filename, err)
	}
	return p, nil
}

func (r *galleryReconciler) Purge(ctx context.Context, paths []string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := r.disk.Delete(ctx, p); err != nil {
			r.log.Warnf("Failed to delete file %s: %+v", p, err)
			r.metrics.ObserveOrphan()
		}
	}
}
