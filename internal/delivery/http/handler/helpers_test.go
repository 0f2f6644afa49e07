package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-portal/config"
	"hospital-portal/pkg/response"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 64)...)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testPolicy() *UploadPolicy {
	return NewUploadPolicy(config.UploadConfig{
		AllowedMimeTypes: []string{"image/jpeg", "image/png", "image/gif"},
		MaxSize:          1024,
	})
}

type multipartFile struct {
	field   string
	name    string
	content []byte
}

// multipartRequest builds a multipart body with data as the "data" field.
func multipartRequest(t *testing.T, method, target string, data interface{}, values map[string][]string, files ...multipartFile) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if data != nil {
		raw, err := json.Marshal(data)
		require.NoError(t, err)
		require.NoError(t, writer.WriteField("data", string(raw)))
	}
	for key, vals := range values {
		for _, v := range vals {
			require.NoError(t, writer.WriteField(key, v))
		}
	}
	for _, f := range files {
		part, err := writer.CreateFormFile(f.field, f.name)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var res response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	return res
}
