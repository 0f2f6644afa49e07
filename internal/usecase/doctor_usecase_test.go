package usecase

import (
	"context"
	"strings"
	"testing"

	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/domain/entity"
	"hospital-portal/internal/service"
	"hospital-portal/pkg/apperror"
	"hospital-portal/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doctorFixture struct {
	usecase DoctorUsecase
	repo    *fakeDoctorRepo
	disk    *recordingDisk
}

func newDoctorFixture() *doctorFixture {
	repo := newFakeDoctorRepo()
	disk := newRecordingDisk()
	log := quietLogger()
	files := service.NewGalleryReconciler(disk, log, nil)
	return &doctorFixture{
		usecase: NewDoctorUsecase(log, validator.NewValidator(), repo, files, disk),
		repo:    repo,
		disk:    disk,
	}
}

func doctorRequest(name, specialization string, active bool, schedule ...dto.ScheduleEntryRequest) *dto.CreateDoctorRequest {
	return &dto.CreateDoctorRequest{
		Name:           name,
		Specialization: specialization,
		Schedule:       schedule,
		IsActive:       boolPtr(active),
	}
}

func TestDoctorCreate_DropsBlankScheduleEntries(t *testing.T) {
	f := newDoctorFixture()

	created, err := f.usecase.Create(context.Background(), doctorRequest("dr. Sari", "Anak", true,
		dto.ScheduleEntryRequest{Day: "", Time: "08:00"},
		dto.ScheduleEntryRequest{Day: "Tuesday", Time: ""},
		dto.ScheduleEntryRequest{Day: "Wednesday", Time: "10:00-12:00"},
	), nil)
	require.NoError(t, err)

	stored := f.repo.rows[created.ID]
	require.NotNil(t, stored)
	assert.Equal(t, []entity.ScheduleEntry{{Day: "Wednesday", Time: "10:00-12:00"}}, []entity.ScheduleEntry(stored.Schedule))
	assert.Equal(t, "Wednesday: 10:00-12:00", created.ScheduleDisplay)
	assert.Nil(t, created.PhotoURL)
}

func TestDoctorCreate_WithPhoto(t *testing.T) {
	f := newDoctorFixture()
	photo := upload("sari.jpg")

	created, err := f.usecase.Create(context.Background(), doctorRequest("dr. Sari", "Anak", true), &photo)
	require.NoError(t, err)

	require.NotNil(t, created.Photo)
	assert.True(t, strings.HasPrefix(*created.Photo, service.DoctorPhotoDir+"/"))
	assert.True(t, f.disk.exists(t, *created.Photo))
	require.NotNil(t, created.PhotoURL)
	assert.Equal(t, "https://cdn.test/"+*created.Photo, *created.PhotoURL)
}

func TestDoctorCreate_PersistFailureRemovesPhoto(t *testing.T) {
	f := newDoctorFixture()
	f.repo.createErr = errDBDown
	photo := upload("sari.jpg")

	_, err := f.usecase.Create(context.Background(), doctorRequest("dr. Sari", "Anak", true), &photo)
	require.ErrorIs(t, err, errDBDown)
	require.Len(t, f.disk.deleted, 1)
	assert.False(t, f.disk.exists(t, f.disk.deleted[0]))
}

func TestDoctorCreate_Validation(t *testing.T) {
	f := newDoctorFixture()
	phone := strings.Repeat("1", 21)

	req := doctorRequest("", "Anak", true)
	req.Phone = &phone

	_, err := f.usecase.Create(context.Background(), req, nil)
	validation, ok := apperror.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, validation.Fields, "name")
	assert.Contains(t, validation.Fields, "phone")
	assert.Empty(t, f.repo.rows)
}

func TestDoctorCreate_MissingActiveFlagDefaultsToActive(t *testing.T) {
	f := newDoctorFixture()
	req := doctorRequest("dr. Budi", "Bedah", true)
	req.IsActive = nil

	created, err := f.usecase.Create(context.Background(), req, nil)
	require.NoError(t, err)
	assert.True(t, created.IsActive)
	require.NotNil(t, f.repo.rows[created.ID].IsActive)
	assert.True(t, *f.repo.rows[created.ID].IsActive)
}

func TestDoctorCreate_BlankPhoneBecomesNull(t *testing.T) {
	f := newDoctorFixture()
	blank := "   "
	req := doctorRequest("dr. Budi", "Bedah", true)
	req.Phone = &blank

	created, err := f.usecase.Create(context.Background(), req, nil)
	require.NoError(t, err)
	assert.Nil(t, created.Phone)
}

func TestDoctorUpdate_ReplacesFieldsAndFiltersSchedule(t *testing.T) {
	f := newDoctorFixture()
	ctx := context.Background()
	created, err := f.usecase.Create(ctx, doctorRequest("dr. Sari", "Anak", true,
		dto.ScheduleEntryRequest{Day: "Monday", Time: "08:00-12:00"}), nil)
	require.NoError(t, err)

	updated, err := f.usecase.Update(ctx, created.ID, doctorRequest("dr. Sari Dewi", "Anak", false,
		dto.ScheduleEntryRequest{Day: "Friday", Time: "13:00-15:00"},
		dto.ScheduleEntryRequest{Day: "Saturday", Time: " "}), nil)
	require.NoError(t, err)

	assert.Equal(t, "dr. Sari Dewi", updated.Name)
	assert.False(t, updated.IsActive)
	require.Len(t, updated.Schedule, 1)
	assert.Equal(t, "Friday", updated.Schedule[0].Day)

	_, err = f.usecase.Update(ctx, uuid.New(), doctorRequest("x", "y", true), nil)
	assert.True(t, apperror.IsNotFound(err))
}

func TestDoctorUpdate_WithPhotoSavesOnceAndRemovesPrevious(t *testing.T) {
	f := newDoctorFixture()
	ctx := context.Background()
	first := upload("old.jpg")
	created, err := f.usecase.Create(ctx, doctorRequest("dr. Sari", "Anak", true), &first)
	require.NoError(t, err)
	oldPath := *created.Photo

	photo := upload("new.jpg")
	updated, err := f.usecase.Update(ctx, created.ID, doctorRequest("dr. Sari Dewi", "Anak", true), &photo)
	require.NoError(t, err)

	row := f.repo.rows[created.ID]
	assert.Equal(t, "dr. Sari Dewi", row.Name)
	require.NotNil(t, updated.Photo)
	assert.Equal(t, *updated.Photo, *row.Photo)
	assert.True(t, f.disk.exists(t, *row.Photo))
	assert.Equal(t, []string{oldPath}, f.disk.deleted)
	assert.False(t, f.disk.exists(t, oldPath))
}

func TestDoctorUpdate_PhotoStorageFailureLeavesRowUnchanged(t *testing.T) {
	f := newDoctorFixture()
	ctx := context.Background()
	first := upload("old.jpg")
	created, err := f.usecase.Create(ctx, doctorRequest("dr. Sari", "Anak", true,
		dto.ScheduleEntryRequest{Day: "Monday", Time: "08:00-12:00"}), &first)
	require.NoError(t, err)
	f.disk.failStore = true

	photo := upload("new.jpg")
	_, err = f.usecase.Update(ctx, created.ID, doctorRequest("dr. Sari Dewi", "Bedah", false), &photo)
	assert.True(t, apperror.IsStorage(err))

	row := f.repo.rows[created.ID]
	assert.Equal(t, "dr. Sari", row.Name)
	assert.Equal(t, "Anak", row.Specialization)
	assert.True(t, row.Active())
	assert.Len(t, row.Schedule, 1)
	assert.Equal(t, *created.Photo, *row.Photo)
	assert.Empty(t, f.disk.deleted)
	assert.True(t, f.disk.exists(t, *created.Photo))
}

func TestDoctorUpdate_PersistFailureRemovesNewPhotoOnly(t *testing.T) {
	f := newDoctorFixture()
	ctx := context.Background()
	first := upload("old.jpg")
	created, err := f.usecase.Create(ctx, doctorRequest("dr. Sari", "Anak", true), &first)
	require.NoError(t, err)
	f.repo.updateErr = errDBDown

	photo := upload("new.jpg")
	_, err = f.usecase.Update(ctx, created.ID, doctorRequest("dr. Sari Dewi", "Anak", true), &photo)
	require.ErrorIs(t, err, errDBDown)

	require.Len(t, f.disk.deleted, 1)
	assert.NotEqual(t, *created.Photo, f.disk.deleted[0])
	assert.False(t, f.disk.exists(t, f.disk.deleted[0]))
	assert.True(t, f.disk.exists(t, *created.Photo))
	assert.Equal(t, "dr. Sari", f.repo.rows[created.ID].Name)
}

func TestDoctorUpdatePhoto_ReplacesAndRemovesPrevious(t *testing.T) {
	f := newDoctorFixture()
	ctx := context.Background()
	first := upload("old.jpg")
	created, err := f.usecase.Create(ctx, doctorRequest("dr. Sari", "Anak", true), &first)
	require.NoError(t, err)
	oldPath := *created.Photo

	updated, err := f.usecase.UpdatePhoto(ctx, created.ID, upload("new.jpg"))
	require.NoError(t, err)

	require.NotNil(t, updated.Photo)
	assert.NotEqual(t, oldPath, *updated.Photo)
	assert.Equal(t, []string{oldPath}, f.disk.deleted)
	assert.False(t, f.disk.exists(t, oldPath))
	assert.Equal(t, *updated.Photo, *f.repo.rows[created.ID].Photo)
}

func TestDoctorUpdatePhoto_MissingPreviousFileIsTolerated(t *testing.T) {
	f := newDoctorFixture()
	ctx := context.Background()
	created, err := f.usecase.Create(ctx, doctorRequest("dr. Sari", "Anak", true), nil)
	require.NoError(t, err)
	gone := "doctors/already-gone.jpg"
	f.repo.rows[created.ID].Photo = &gone

	_, err = f.usecase.UpdatePhoto(ctx, created.ID, upload("new.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []string{gone}, f.disk.deleted)
}

func TestDoctorUpdatePhoto_StorageFailureLeavesRowUntouched(t *testing.T) {
	f := newDoctorFixture()
	ctx := context.Background()
	first := upload("old.jpg")
	created, err := f.usecase.Create(ctx, doctorRequest("dr. Sari", "Anak", true), &first)
	require.NoError(t, err)
	f.disk.failStore = true

	_, err = f.usecase.UpdatePhoto(ctx, created.ID, upload("new.jpg"))
	assert.True(t, apperror.IsStorage(err))
	assert.Equal(t, *created.Photo, *f.repo.rows[created.ID].Photo)
	assert.Empty(t, f.disk.deleted)
	assert.True(t, f.disk.exists(t, *created.Photo))

	_, err = f.usecase.UpdatePhoto(ctx, uuid.New(), upload("new.jpg"))
	assert.True(t, apperror.IsNotFound(err))
}

func TestDoctorDelete_RemovesPhotoAndHidesRow(t *testing.T) {
	f := newDoctorFixture()
	ctx := context.Background()
	photo := upload("sari.jpg")
	created, err := f.usecase.Create(ctx, doctorRequest("dr. Sari", "Anak", true), &photo)
	require.NoError(t, err)

	require.NoError(t, f.usecase.Delete(ctx, created.ID))
	assert.Equal(t, []string{*created.Photo}, f.disk.deleted)

	_, err = f.usecase.Get(ctx, created.ID)
	assert.True(t, apperror.IsNotFound(err))
	assert.True(t, apperror.IsNotFound(f.usecase.Delete(ctx, created.ID)))
}

func TestDoctorList_SearchesNameSpecializationAndPhone(t *testing.T) {
	f := newDoctorFixture()
	ctx := context.Background()
	phone := "0812-555"
	withPhone := doctorRequest("dr. Budi", "Bedah", true)
	withPhone.Phone = &phone
	_, err := f.usecase.Create(ctx, withPhone, nil)
	require.NoError(t, err)
	_, err = f.usecase.Create(ctx, doctorRequest("dr. Sari", "Anak", true), nil)
	require.NoError(t, err)
	_, err = f.usecase.Create(ctx, doctorRequest("dr. Andi", "Penyakit Dalam", false), nil)
	require.NoError(t, err)

	for search, want := range map[string]string{"SARI": "dr. Sari", "bedah": "dr. Budi", "555": "dr. Budi", "dalam": "dr. Andi"} {
		list, err := f.usecase.List(ctx, &dto.DoctorListRequest{Search: search})
		require.NoError(t, err)
		require.Len(t, list.Doctors, 1, search)
		assert.Equal(t, want, list.Doctors[0].Name)
	}
}

func TestDoctorActiveViews(t *testing.T) {
	f := newDoctorFixture()
	ctx := context.Background()
	for _, req := range []*dto.CreateDoctorRequest{
		doctorRequest("dr. Citra", "Anak", true),
		doctorRequest("dr. Agus", "Bedah", true),
		doctorRequest("dr. Bayu", "Anak", true),
		doctorRequest("dr. Dodi", "Mata", false),
	} {
		_, err := f.usecase.Create(ctx, req, nil)
		require.NoError(t, err)
	}

	active, err := f.usecase.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 3)
	assert.Equal(t, "dr. Agus", active[0].Name)
	assert.Equal(t, "dr. Citra", active[2].Name)

	recent, err := f.usecase.ListActiveOrderedByRecency(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "dr. Bayu", recent[0].Name)
	assert.Equal(t, "dr. Agus", recent[1].Name)

	specializations, err := f.usecase.Specializations(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Anak", "Bedah"}, specializations)
}
