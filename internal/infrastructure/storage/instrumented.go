package storage

import (
	"context"
	"time"

	domainStorage "hospital-portal/internal/domain/storage"
	"hospital-portal/internal/infrastructure/metrics"
)

// instrumentedDisk records the outcome and latency of every disk operation.
type instrumentedDisk struct {
	next    domainStorage.Disk
	driver  string
	metrics *metrics.StorageMetrics
}

// Instrument wraps disk so each operation is observed by m. A nil m returns
// disk unchanged.
func Instrument(disk domainStorage.Disk, driver string, m *metrics.StorageMetrics) domainStorage.Disk {
	if m == nil {
		return disk
	}
	return &instrumentedDisk{next: disk, driver: driver, metrics: m}
}

func (d *instrumentedDisk) Store(ctx context.Context, dir string, file domainStorage.UploadedFile) (string, error) {
	start := time.Now()
	p, err := d.next.Store(ctx, dir, file)
	d.metrics.ObserveOperation(d.driver, "store", err, time.Since(start))
	return p, err
}

func (d *instrumentedDisk) URL(p string) string {
	return d.next.URL(p)
}

func (d *instrumentedDisk) Exists(ctx context.Context, p string) (bool, error) {
	start := time.Now()
	ok, err := d.next.Exists(ctx, p)
	d.metrics.ObserveOperation(d.driver, "exists", err, time.Since(start))
	return ok, err
}

func (d *instrumentedDisk) Delete(ctx context.Context, p string) error {
	start := time.Now()
	err := d.next.Delete(ctx, p)
	d.metrics.ObserveOperation(d.driver, "delete", err, time.Since(start))
	return err
}
