package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"hospital-portal/config"
	"hospital-portal/internal/domain/storage"
	"hospital-portal/pkg/apperror"

	"github.com/gabriel-vasile/mimetype"
)

// maxMultipartMemory is the part of a multipart body kept in memory, the
// rest spills to temporary files.
const maxMultipartMemory = 8 << 20

const (
	// maxUploadFiles bounds how many files one request may carry.
	maxUploadFiles = 20
	// maxFormOverhead covers the JSON document, other fields and part headers.
	maxFormOverhead = 1 << 20
)

// UploadPolicy enforces the allowed image types and maximum size before a
// file reaches the storage layer.
type UploadPolicy struct {
	allowed []string
	maxSize int64
}

func NewUploadPolicy(cfg config.UploadConfig) *UploadPolicy {
	return &UploadPolicy{
		allowed: cfg.AllowedMimeTypes,
		maxSize: cfg.MaxSize,
	}
}

// Form is a decoded create or update request. Close releases the opened
// upload files.
type Form struct {
	Files         map[string][]storage.UploadedFile
	DeletedImages []string
	closers       []io.Closer
}

// File returns the first file of field, or nil.
func (f *Form) File(field string) *storage.UploadedFile {
	if files := f.Files[field]; len(files) > 0 {
		return &files[0]
	}
	return nil
}

func (f *Form) Close() {
	for _, c := range f.closers {
		c.Close()
	}
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

// BodyLimit is the largest request body Parse will read, 0 when unlimited.
func (p *UploadPolicy) BodyLimit() int64 {
	if p.maxSize <= 0 {
		return 0
	}
	return p.maxSize*maxUploadFiles + maxFormOverhead
}

// Parse decodes r into dest. A multipart body carries dest as JSON in the
// "data" field, files under fileFields and deleted gallery paths under
// "deleted_images". Any other body is decoded as JSON. Bodies over BodyLimit
// are cut off while reading.
func (p *UploadPolicy) Parse(w http.ResponseWriter, r *http.Request, dest interface{}, fileFields ...string) (*Form, error) {
	form := &Form{Files: make(map[string][]storage.UploadedFile)}

	if limit := p.BodyLimit(); limit > 0 {
		if r.ContentLength > limit {
			return nil, &bodyTooLargeError{limit: limit}
		}
		r.Body = http.MaxBytesReader(w, r.Body, limit)
	}

	if !isMultipart(r) {
		if err := decodeJSON(r.Body, dest); err != nil {
			return nil, err
		}
		return form, nil
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, &bodyTooLargeError{limit: tooLarge.Limit}
		}
		return nil, badRequest("Invalid multipart form")
	}

	if data := r.FormValue("data"); data != "" {
		if err := decodeJSON(strings.NewReader(data), dest); err != nil {
			return nil, err
		}
	}

	form.DeletedImages = formValues(r.MultipartForm, "deleted_images")

	fields := make(map[string]string)
	for _, field := range fileFields {
		headers := r.MultipartForm.File[field]
		headers = append(headers, r.MultipartForm.File[field+"[]"]...)
		for i, header := range headers {
			key := fmt.Sprintf("%s.%d", field, i)
			file, err := p.open(header, key)
			if err != nil {
				var validation *apperror.ValidationError
				if errors.As(err, &validation) {
					for k, v := range validation.Fields {
						fields[k] = v
					}
					continue
				}
				form.Close()
				return nil, err
			}
			form.closers = append(form.closers, file.Content.(io.Closer))
			form.Files[field] = append(form.Files[field], file)
		}
	}

	if err := apperror.NewValidationErrors(fields); err != nil {
		form.Close()
		return nil, err
	}
	return form, nil
}

func (p *UploadPolicy) open(header *multipart.FileHeader, key string) (storage.UploadedFile, error) {
	if p.maxSize > 0 && header.Size > p.maxSize {
		return storage.UploadedFile{}, apperror.NewValidationError(key,
			fmt.Sprintf("%s must not be larger than %d kilobytes", key, p.maxSize/1024))
	}

	file, err := header.Open()
	if err != nil {
		return storage.UploadedFile{}, badRequest("Failed to read uploaded file")
	}

	// The declared Content-Type is not trusted, the bytes are sniffed.
	detected, err := mimetype.DetectReader(file)
	if err == nil {
		_, err = file.Seek(0, io.SeekStart)
	}
	if err != nil {
		file.Close()
		return storage.UploadedFile{}, badRequest("Failed to read uploaded file")
	}

	if !mimetype.EqualsAny(detected.String(), p.allowed...) {
		file.Close()
		return storage.UploadedFile{}, apperror.NewValidationError(key,
			fmt.Sprintf("%s must be a file of type: %s", key, strings.Join(p.allowed, ", ")))
	}

	return storage.UploadedFile{
		Filename:    header.Filename,
		ContentType: detected.String(),
		Size:        header.Size,
		Content:     file,
	}, nil
}

func decodeJSON(body io.Reader, dest interface{}) error {
	err := json.NewDecoder(body).Decode(dest)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return &bodyTooLargeError{limit: tooLarge.Limit}
	}
	return badRequest("Invalid request body")
}

type bodyTooLargeError struct {
	limit int64
}

func (e *bodyTooLargeError) Error() string {
	return fmt.Sprintf("Request body must not be larger than %d kilobytes", e.limit/1024)
}

func formValues(form *multipart.Form, field string) []string {
	var values []string
	for _, key := range []string{field, field + "[]"} {
		for _, v := range form.Value[key] {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
	}
	return values
}
