package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hospital-portal/config"
	"hospital-portal/internal/delivery/dto"
	"hospital-portal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadPolicy_ParseMultipart(t *testing.T) {
	published := true
	req := multipartRequest(t, http.MethodPut, "/contents/1",
		dto.UpdateContentRequest{Title: "Denah", Body: "Lantai 2", Type: "map", IsPublished: &published},
		map[string][]string{"deleted_images[]": {"contents/a.png", " ", "contents/b.png"}},
		multipartFile{field: "new_images", name: "floor.png", content: pngBytes},
		multipartFile{field: "new_images[]", name: "wing.png", content: pngBytes},
	)

	var dest dto.UpdateContentRequest
	form, err := testPolicy().Parse(httptest.NewRecorder(), req, &dest, "new_images")
	require.NoError(t, err)
	defer form.Close()

	assert.Equal(t, "Denah", dest.Title)
	assert.Equal(t, "map", dest.Type)
	require.NotNil(t, dest.IsPublished)
	assert.True(t, *dest.IsPublished)
	assert.Equal(t, []string{"contents/a.png", "contents/b.png"}, form.DeletedImages)

	files := form.Files["new_images"]
	require.Len(t, files, 2)
	assert.Equal(t, "floor.png", files[0].Filename)
	assert.Equal(t, "image/png", files[0].ContentType)
	assert.Equal(t, ".png", files[1].Extension())
	assert.Same(t, &form.Files["new_images"][0], form.File("new_images"))
	assert.Nil(t, form.File("photo"))
}

func TestUploadPolicy_RejectsSniffedType(t *testing.T) {
	// The extension claims an image but the bytes are plain text.
	req := multipartRequest(t, http.MethodPost, "/contents", dto.CreateContentRequest{Title: "x"}, nil,
		multipartFile{field: "images", name: "fake.png", content: []byte("just some text, not an image")},
	)

	_, err := testPolicy().Parse(httptest.NewRecorder(), req, &dto.CreateContentRequest{}, "images")
	validation, ok := apperror.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "images.0 must be a file of type: image/jpeg, image/png, image/gif", validation.Fields["images.0"])
}

func TestUploadPolicy_RejectsOversizeFile(t *testing.T) {
	big := append(append([]byte{}, pngBytes...), make([]byte, 2048)...)
	req := multipartRequest(t, http.MethodPost, "/contents", nil, nil,
		multipartFile{field: "images", name: "ok.png", content: pngBytes},
		multipartFile{field: "images", name: "big.png", content: big},
	)

	_, err := testPolicy().Parse(httptest.NewRecorder(), req, &dto.CreateContentRequest{}, "images")
	validation, ok := apperror.AsValidation(err)
	require.True(t, ok)
	assert.Len(t, validation.Fields, 1)
	assert.Equal(t, "images.1 must not be larger than 1 kilobytes", validation.Fields["images.1"])
}

func TestUploadPolicy_ParseJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/contents", strings.NewReader(`{"title":"Tata Tertib","type":"rules"}`))
	req.Header.Set("Content-Type", "application/json")

	var dest dto.CreateContentRequest
	form, err := testPolicy().Parse(httptest.NewRecorder(), req, &dest, "images")
	require.NoError(t, err)
	assert.Equal(t, "Tata Tertib", dest.Title)
	assert.Empty(t, form.Files)
}

func TestUploadPolicy_EmptyBodyIsAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/contents", http.NoBody)

	_, err := testPolicy().Parse(httptest.NewRecorder(), req, &dto.CreateContentRequest{}, "images")
	assert.NoError(t, err)
}

func TestUploadPolicy_MalformedJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/contents", strings.NewReader(`{"title":`))

	_, err := testPolicy().Parse(httptest.NewRecorder(), req, &dto.CreateContentRequest{}, "images")
	require.Error(t, err)
	assert.Equal(t, "Invalid request body", err.Error())
}

func TestUploadPolicy_BodyLimit(t *testing.T) {
	assert.Equal(t, int64(1024*maxUploadFiles+maxFormOverhead), testPolicy().BodyLimit())
	assert.Zero(t, NewUploadPolicy(config.UploadConfig{}).BodyLimit())
}

func TestUploadPolicy_RejectsOversizeBodyBeforeParsing(t *testing.T) {
	huge := make([]byte, testPolicy().BodyLimit())
	req := multipartRequest(t, http.MethodPost, "/contents", nil, nil,
		multipartFile{field: "images", name: "huge.png", content: append(append([]byte{}, pngBytes...), huge...)},
	)

	_, err := testPolicy().Parse(httptest.NewRecorder(), req, &dto.CreateContentRequest{}, "images")
	var tooLarge *bodyTooLargeError
	require.ErrorAs(t, err, &tooLarge)
	assert.Nil(t, req.MultipartForm)
}

func TestUploadPolicy_CutsOffStreamedBody(t *testing.T) {
	// No Content-Length, so the limit applies while reading.
	body := `{"title":"` + strings.Repeat("a", int(testPolicy().BodyLimit())) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/contents", strings.NewReader(body))
	req.ContentLength = -1

	_, err := testPolicy().Parse(httptest.NewRecorder(), req, &dto.CreateContentRequest{}, "images")
	var tooLarge *bodyTooLargeError
	require.ErrorAs(t, err, &tooLarge)
}
