package storage

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrMissingFile      = errors.New("upload: missing file")
	ErrExtNotAllowed    = errors.New("upload: file type not allowed")
	ErrFileTooLarge     = errors.New("upload: file too large")
	allowedExtensions   = []string{".pdf", ".docx", ".xlsx", ".jpg", ".jpeg", ".png"}
	unsafeFilenameChars = strings.NewReplacer("/", "_", "\\", "_", "?", "_", "%", "_", "*", "_", ":", "_", "|", "_", "\"", "_", "<", "_", ">", "_")
)

func AllowedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, a := range allowedExtensions {
		if a == ext {
			return true
		}
	}
	return false
}

// ValidateUpload checks presence, extension and size before any bytes are stored.
// It returns the lower-cased extension including the dot.
func ValidateUpload(fh *multipart.FileHeader, maxBytes int64) (string, error) {
	if fh == nil || fh.Filename == "" {
		return "", ErrMissingFile
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !AllowedExtension(ext) {
		return "", ErrExtNotAllowed
	}
	if maxBytes > 0 && fh.Size > maxBytes {
		return "", ErrFileTooLarge
	}
	return ext, nil
}

func SanitizeFilename(name string) string {
	return strings.ReplaceAll(unsafeFilenameChars.Replace(name), "..", "")
}

// ProjectFilePath builds "projects/<projectID>/<name><ext>". The name comes from
// desired when given, otherwise from the original base name; an 8 char suffix is
// appended when the key is already taken.
func ProjectFilePath(projectID uuid.UUID, desired, original string, exists func(key string) (bool, error)) (string, error) {
	ext := strings.ToLower(filepath.Ext(original))
	if !AllowedExtension(ext) {
		ext = ".bin"
	}

	base := strings.TrimSpace(desired)
	if strings.EqualFold(filepath.Ext(base), ext) {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if base == "" {
		base = strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
	}
	base = strings.TrimSpace(SanitizeFilename(base))
	if base == "" || base == "." {
		base = "file"
	}

	dir := fmt.Sprintf("projects/%s/", projectID)
	key := dir + base + ext
	if exists == nil {
		return key, nil
	}
	taken, err := exists(key)
	if err != nil {
		return "", err
	}
	if taken {
		key = dir + base + "_" + uuid.NewString()[:8] + ext
	}
	return key, nil
}

func InstructorCVPath(id int64, ext string) string {
	return fmt.Sprintf("instructors/%d/cv%s", id, strings.ToLower(ext))
}

func StudentCVPath(id int64, ext string) string {
	return fmt.Sprintf("students/%d/cv%s", id, strings.ToLower(ext))
}
