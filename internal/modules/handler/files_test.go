package handler

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/caderh/caderh-api/internal/modules/service"
)

func TestFileHandler_Download(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setup          func(*MockAttachmentService)
		expectedStatus int
	}{
		{
			name: "streams a stored file",
			path: "/download/projects/abc/plan.pdf",
			setup: func(svc *MockAttachmentService) {
				svc.On("OpenPath", mock.Anything, "projects/abc/plan.pdf").Return(&service.Download{
					Body: io.NopCloser(strings.NewReader("data")), Name: "plan.pdf", Size: 4,
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "traversal is rejected",
			path: "/download/projects/../../etc/passwd",
			setup: func(svc *MockAttachmentService) {
				svc.On("OpenPath", mock.Anything, "projects/../../etc/passwd").Return(nil, service.Invalid("Ruta inválida"))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing object",
			path: "/download/students/9/cv.pdf",
			setup: func(svc *MockAttachmentService) {
				svc.On("OpenPath", mock.Anything, "students/9/cv.pdf").Return(nil, service.NotFound(service.MsgFileNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockAttachmentService{}
			tt.setup(svc)

			h := NewFileHandler(svc, testLogger())
			r := setupRouter()
			r.GET("/download/*file", h.Download)

			w := doJSON(t, r, http.MethodGet, tt.path, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, "data", w.Body.String())
				assert.Equal(t, "application/octet-stream", w.Header().Get("Content-Type"))
			}
			svc.AssertExpectations(t)
		})
	}
}

type fakeSigner struct {
	key    string
	expire time.Duration
}

func (f *fakeSigner) SignedURL(_ context.Context, key string, expire time.Duration) (string, error) {
	f.key, f.expire = key, expire
	return "https://bucket.example/" + key + "?sig=x", nil
}

func TestFileHandler_Redirect(t *testing.T) {
	signer := &fakeSigner{}
	h := NewFileHandler(&MockAttachmentService{}, testLogger()).WithSigner(signer, 0)
	r := setupRouter()
	r.GET("/files/*file", h.Redirect)

	w := doJSON(t, r, http.MethodGet, "/files/students/9/cv.pdf", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://bucket.example/students/9/cv.pdf?sig=x", w.Header().Get("Location"))
	assert.Equal(t, "students/9/cv.pdf", signer.key)
	assert.Equal(t, 15*time.Minute, signer.expire)

	w = doJSON(t, r, http.MethodGet, "/files/projects/../../etc/passwd", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFileHandler_RedirectWithoutSigner(t *testing.T) {
	h := NewFileHandler(&MockAttachmentService{}, testLogger())
	r := setupRouter()
	r.GET("/files/*file", h.Redirect)

	w := doJSON(t, r, http.MethodGet, "/files/students/9/cv.pdf", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
