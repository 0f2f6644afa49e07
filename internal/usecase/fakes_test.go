package usecase

import (
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"hospital-portal/internal/domain/entity"
	"hospital-portal/internal/domain/storage"
	infraStorage "hospital-portal/internal/infrastructure/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func upload(name string) storage.UploadedFile {
	return storage.UploadedFile{
		Filename:    name,
		ContentType: "image/png",
		Size:        4,
		Content:     strings.NewReader("\x89PNG"),
	}
}

var errDBDown = errors.New("connection refused")

// recordingDisk is a LocalDisk on an in-memory filesystem that records every
// delete and can be told to fail uploads.
type recordingDisk struct {
	storage.Disk
	mu        sync.Mutex
	failStore bool
	deleted   []string
}

func newRecordingDisk() *recordingDisk {
	return &recordingDisk{Disk: infraStorage.NewLocalDiskFs(afero.NewMemMapFs(), "https://cdn.test")}
}

func (d *recordingDisk) Store(ctx context.Context, dir string, file storage.UploadedFile) (string, error) {
	if d.failStore {
		return "", errors.New("disk full")
	}
	return d.Disk.Store(ctx, dir, file)
}

func (d *recordingDisk) Delete(ctx context.Context, path string) error {
	d.mu.Lock()
	d.deleted = append(d.deleted, path)
	d.mu.Unlock()
	return d.Disk.Delete(ctx, path)
}

func (d *recordingDisk) exists(t *testing.T, path string) bool {
	t.Helper()
	ok, err := d.Disk.Exists(context.Background(), path)
	if err != nil {
		t.Fatalf("exists %s: %v", path, err)
	}
	return ok
}

// fakeContentRepo keeps contents in memory. Soft-deleted rows stay in the
// map with DeletedAt set and are hidden from every read.
type fakeContentRepo struct {
	mu        sync.Mutex
	rows      map[uuid.UUID]*entity.Content
	clock     time.Time
	updateErr error
	creates   int
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{
		rows:  make(map[uuid.UUID]*entity.Content),
		clock: time.Date(2025, 5, 5, 8, 0, 0, 0, time.UTC),
	}
}

func (r *fakeContentRepo) tick() time.Time {
	r.clock = r.clock.Add(time.Minute)
	return r.clock
}

func (r *fakeContentRepo) live(id uuid.UUID) *entity.Content {
	row, ok := r.rows[id]
	if !ok || row.DeletedAt.Valid {
		return nil
	}
	c := *row
	c.Images = append([]entity.ImageRef(nil), row.Images...)
	return &c
}

func (r *fakeContentRepo) sorted(keep func(*entity.Content) bool) []entity.Content {
	var out []entity.Content
	for id := range r.rows {
		if c := r.live(id); c != nil && keep(c) {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *fakeContentRepo) Create(ctx context.Context, content *entity.Content) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creates++
	content.ID = uuid.New()
	content.CreatedAt = r.tick()
	content.UpdatedAt = content.CreatedAt
	c := *content
	r.rows[c.ID] = &c
	return nil
}

func (r *fakeContentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Content, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.live(id), nil
}

func (r *fakeContentRepo) FindAll(ctx context.Context, filter *entity.ContentFilter, page entity.Pagination) ([]entity.Content, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := r.sorted(func(c *entity.Content) bool {
		if filter.Type != "" && c.Type != filter.Type {
			return false
		}
		return strings.Contains(strings.ToLower(c.Title), strings.ToLower(filter.Search))
	})
	total := int64(len(all))
	start := page.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + page.PageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (r *fakeContentRepo) FindPublished(ctx context.Context, contentType entity.ContentType, limit int) ([]entity.Content, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.sorted(func(c *entity.Content) bool {
		return c.IsPublished && (contentType == "" || c.Type == contentType)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeContentRepo) FindPublishedByID(ctx context.Context, id uuid.UUID) (*entity.Content, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.live(id)
	if c == nil || !c.IsPublished {
		return nil, nil
	}
	return c, nil
}

func (r *fakeContentRepo) FindRelatedPublished(ctx context.Context, contentType entity.ContentType, excludeID uuid.UUID, limit int) ([]entity.Content, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.sorted(func(c *entity.Content) bool {
		return c.IsPublished && c.Type == contentType && c.ID != excludeID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeContentRepo) CountByType(ctx context.Context) (map[entity.ContentType]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[entity.ContentType]int64)
	for id := range r.rows {
		if c := r.live(id); c != nil {
			counts[c.Type]++
		}
	}
	return counts, nil
}

func (r *fakeContentRepo) Update(ctx context.Context, content *entity.Content) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	content.UpdatedAt = r.tick()
	c := *content
	r.rows[c.ID] = &c
	return nil
}

func (r *fakeContentRepo) UpdateImages(ctx context.Context, id uuid.UUID, images []entity.ImageRef) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	if row, ok := r.rows[id]; ok {
		row.Images = append([]entity.ImageRef(nil), images...)
	}
	return nil
}

func (r *fakeContentRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.live(id) == nil {
		return 0, nil
	}
	r.rows[id].DeletedAt.Time = r.tick()
	r.rows[id].DeletedAt.Valid = true
	return 1, nil
}

type fakeDoctorRepo struct {
	mu        sync.Mutex
	rows      map[uuid.UUID]*entity.Doctor
	clock     time.Time
	createErr error
	updateErr error
	findErr   error
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{
		rows:  make(map[uuid.UUID]*entity.Doctor),
		clock: time.Date(2025, 5, 5, 8, 0, 0, 0, time.UTC),
	}
}

func (r *fakeDoctorRepo) live(id uuid.UUID) *entity.Doctor {
	row, ok := r.rows[id]
	if !ok || row.DeletedAt.Valid {
		return nil
	}
	d := *row
	d.Schedule = append([]entity.ScheduleEntry(nil), row.Schedule...)
	return &d
}

func (r *fakeDoctorRepo) all(keep func(*entity.Doctor) bool, less func(a, b entity.Doctor) bool) []entity.Doctor {
	var out []entity.Doctor
	for id := range r.rows {
		if d := r.live(id); d != nil && keep(d) {
			out = append(out, *d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func byName(a, b entity.Doctor) bool { return a.Name < b.Name }
func byNewest(a, b entity.Doctor) bool { return a.CreatedAt.After(b.CreatedAt) }
func activeOnly(d *entity.Doctor) bool { return d.Active() }
func anyDoctor(d *entity.Doctor) bool { return true }

func (r *fakeDoctorRepo) Create(ctx context.Context, doctor *entity.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.clock = r.clock.Add(time.Minute)
	doctor.ID = uuid.New()
	doctor.CreatedAt = r.clock
	doctor.UpdatedAt = r.clock
	d := *doctor
	r.rows[d.ID] = &d
	return nil
}

func (r *fakeDoctorRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.live(id), nil
}

func (r *fakeDoctorRepo) FindAll(ctx context.Context, filter *entity.DoctorFilter, page entity.Pagination) ([]entity.Doctor, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	search := strings.ToLower(filter.Search)
	all := r.all(func(d *entity.Doctor) bool {
		phone := ""
		if d.Phone != nil {
			phone = *d.Phone
		}
		return strings.Contains(strings.ToLower(d.Name), search) ||
			strings.Contains(strings.ToLower(d.Specialization), search) ||
			strings.Contains(strings.ToLower(phone), search)
	}, byNewest)
	total := int64(len(all))
	start := page.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + page.PageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (r *fakeDoctorRepo) FindActive(ctx context.Context) ([]entity.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.all(activeOnly, byName), nil
}

func (r *fakeDoctorRepo) FindActiveByRecency(ctx context.Context, limit int) ([]entity.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.all(activeOnly, byNewest)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeDoctorRepo) FindActiveSpecializations(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := make(map[string]struct{})
	var out []string
	for _, d := range r.all(activeOnly, byName) {
		if _, ok := seen[d.Specialization]; ok {
			continue
		}
		seen[d.Specialization] = struct{}{}
		out = append(out, d.Specialization)
	}
	sort.Strings(out)
	return out, nil
}

func (r *fakeDoctorRepo) CountActive(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.all(activeOnly, byName))), nil
}

func (r *fakeDoctorRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.all(anyDoctor, byName))), nil
}

func (r *fakeDoctorRepo) Update(ctx context.Context, doctor *entity.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	d := *doctor
	r.rows[d.ID] = &d
	return nil
}

func (r *fakeDoctorRepo) UpdatePhoto(ctx context.Context, id uuid.UUID, photo string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	if row, ok := r.rows[id]; ok {
		p := photo
		row.Photo = &p
	}
	return nil
}

func (r *fakeDoctorRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.live(id) == nil {
		return 0, nil
	}
	r.rows[id].DeletedAt.Valid = true
	return 1, nil
}

type fakeVisitingHourRepo struct {
	mu    sync.Mutex
	row   *entity.VisitingHour
	calls int
	saves int
}

func (r *fakeVisitingHourRepo) First(ctx context.Context) (*entity.VisitingHour, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.row == nil {
		return nil, nil
	}
	h := *r.row
	return &h, nil
}

func (r *fakeVisitingHourRepo) FirstOrCreate(ctx context.Context, defaults *entity.VisitingHour) (*entity.VisitingHour, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.row == nil {
		defaults.ID = 1
		defaults.UpdatedAt = time.Date(2025, 5, 5, 8, 0, 0, 0, time.UTC)
		h := *defaults
		r.row = &h
	}
	h := *r.row
	return &h, nil
}

func (r *fakeVisitingHourRepo) Save(ctx context.Context, hours *entity.VisitingHour) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	h := *hours
	r.row = &h
	return nil
}

type fakeAdminRepo struct {
	mu   sync.Mutex
	rows []entity.Admin
}

func (r *fakeAdminRepo) Create(ctx context.Context, admin *entity.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	admin.ID = uuid.New()
	r.rows = append(r.rows, *admin)
	return nil
}

func (r *fakeAdminRepo) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].Email == email {
			a := r.rows[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (r *fakeAdminRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].ID == id {
			a := r.rows[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (r *fakeAdminRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.rows)), nil
}
