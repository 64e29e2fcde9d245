package storage

import (
	"context"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanKey(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "simple", in: "projects/abc/acta.pdf", want: "projects/abc/acta.pdf"},
		{name: "backslashes", in: `students\1\cv.pdf`, want: "students/1/cv.pdf"},
		{name: "redundant segments", in: "projects//abc/./acta.pdf", want: "projects/abc/acta.pdf"},
		{name: "parent traversal", in: "../etc/passwd", wantErr: true},
		{name: "nested traversal", in: "projects/../../secret", wantErr: true},
		{name: "absolute", in: "/etc/passwd", wantErr: true},
		{name: "drive letter", in: "C:/windows", wantErr: true},
		{name: "empty", in: "  ", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CleanKey(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPath)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocal_Lifecycle(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	l, err := NewLocal(root)
	require.NoError(t, err)

	key := "projects/p1/acta.pdf"
	ok, err := l.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, l.Save(ctx, key, strings.NewReader("hello"), 5, "application/pdf"))

	ok, err = l.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	_, err = os.Stat(filepath.Join(root, "projects", "p1", "acta.pdf"))
	assert.NoError(t, err)

	rc, info, err := l.Open(ctx, key)
	require.NoError(t, err)
	b, _ := io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, "hello", string(b))
	assert.Equal(t, int64(5), info.Size)
	assert.Equal(t, "application/pdf", info.ContentType)

	require.NoError(t, l.Delete(ctx, key))
	// deleting twice is fine
	require.NoError(t, l.Delete(ctx, key))

	_, _, err = l.Open(ctx, key)
	assert.ErrorIs(t, err, ErrNotFound)

	_, _, err = l.Open(ctx, "../outside.txt")
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestValidateUpload(t *testing.T) {
	tests := []struct {
		name    string
		fh      *multipart.FileHeader
		wantExt string
		wantErr error
	}{
		{name: "missing", fh: nil, wantErr: ErrMissingFile},
		{name: "pdf", fh: &multipart.FileHeader{Filename: "Acta.PDF", Size: 100}, wantExt: ".pdf"},
		{name: "exe", fh: &multipart.FileHeader{Filename: "virus.exe", Size: 100}, wantErr: ErrExtNotAllowed},
		{name: "too large", fh: &multipart.FileHeader{Filename: "big.png", Size: 11 << 20}, wantErr: ErrFileTooLarge},
		{name: "exactly max", fh: &multipart.FileHeader{Filename: "ok.jpeg", Size: 10 << 20}, wantExt: ".jpeg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext, err := ValidateUpload(tt.fh, 10<<20)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantExt, ext)
		})
	}
}

func TestProjectFilePath(t *testing.T) {
	pid := uuid.MustParse("7b0c7e0e-4a55-4e0c-9f5e-2f8f0f5b1a11")
	never := func(string) (bool, error) { return false, nil }

	key, err := ProjectFilePath(pid, "", "Informe Final.PDF", never)
	require.NoError(t, err)
	assert.Equal(t, "projects/"+pid.String()+"/Informe Final.pdf", key)

	key, err = ProjectFilePath(pid, "acta: junio", "scan.png", never)
	require.NoError(t, err)
	assert.Equal(t, "projects/"+pid.String()+"/acta_ junio.png", key)

	key, err = ProjectFilePath(pid, "../../etc", "x.pdf", never)
	require.NoError(t, err)
	assert.Equal(t, "projects/"+pid.String()+"/__etc.pdf", key)

	key, err = ProjectFilePath(pid, "acta.pdf", "scan.pdf", never)
	require.NoError(t, err)
	assert.Equal(t, "projects/"+pid.String()+"/acta.pdf", key)

	taken := func(k string) (bool, error) { return strings.HasSuffix(k, "/acta.pdf"), nil }
	key, err = ProjectFilePath(pid, "acta", "scan.pdf", taken)
	require.NoError(t, err)
	assert.Regexp(t, `^projects/`+pid.String()+`/acta_[0-9a-f-]{8}\.pdf$`, key)
}

func TestCVPaths(t *testing.T) {
	assert.Equal(t, "instructors/12/cv.pdf", InstructorCVPath(12, ".PDF"))
	assert.Equal(t, "students/3/cv.docx", StudentCVPath(3, ".docx"))
}
