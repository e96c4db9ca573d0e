package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/exambank/backend/internal/pkg/logger"
)

// LocalStorage saves uploaded images to the local filesystem.
type LocalStorage struct {
	basePath string // root directory where files are stored
	baseURL  string // URL prefix under which the directory is served, e.g. /image
}

// NewLocalStorage creates a LocalStorage rooted at basePath. The directory is
// created if it does not exist.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// SaveFile stores the uploaded file as `<field>_<timestamp><ext>` and returns
// the stored filename.
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader, fieldName string) (string, error) {
	if fileHeader == nil {
		return "", nil // no file uploaded
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	ext := filepath.Ext(fileHeader.Filename)
	storedName := fmt.Sprintf("%s_%d%s", fieldName, time.Now().UnixNano(), ext)
	dstPath := filepath.Join(ls.basePath, storedName)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", storedName).Msg("File saved")
	return storedName, nil
}

// DeleteFile removes a stored file. Missing files are treated as already
// deleted so the operation stays idempotent.
func (ls *LocalStorage) DeleteFile(filename string) error {
	if filename == "" {
		return nil
	}

	// Only the base name is accepted; stored rows hold bare filenames.
	name := filepath.Base(filename)
	if name == "" || name == "." || name == string(filepath.Separator) {
		return fmt.Errorf("invalid filename: %s", filename)
	}

	physicalPath := filepath.Join(ls.basePath, name)
	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// URL returns the public path for a stored filename.
func (ls *LocalStorage) URL(filename string) string {
	if filename == "" {
		return ""
	}
	return ls.baseURL + "/" + filepath.Base(filename)
}

// BasePath returns the storage root, used by the server to mount the static
// file route.
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}
