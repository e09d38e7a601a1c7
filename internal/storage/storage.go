package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/recetario-app/recetario-api/internal/models"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// MaxImageSize is the upload limit for recipe images.
const MaxImageSize = 2 * 1024 * 1024

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

// Storage persists uploaded files and resolves their public URLs.
type Storage interface {
	// SaveImage validates and stores an uploaded image under dir, returning
	// the relative path of the stored file.
	SaveImage(fileHeader *multipart.FileHeader, dir string) (string, error)
	Delete(path string) error
	Exists(path string) bool
	// URL resolves a stored path to a public URL. Absolute URLs pass through
	// untouched so externally hosted images keep working.
	URL(path string) string
}

// LocalStorage stores files on the local filesystem under a root directory.
type LocalStorage struct {
	root    string
	baseURL string
}

// NewLocalStorage creates a LocalStorage rooted at root, serving files at baseURL.
func NewLocalStorage(root, baseURL string) *LocalStorage {
	return &LocalStorage{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *LocalStorage) SaveImage(fileHeader *multipart.FileHeader, dir string) (string, error) {
	if fileHeader.Size > MaxImageSize {
		return "", models.NewValidationError("imagen", "La imagen no debe superar los 2 MB")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	// Sniff the real content type instead of trusting the header
	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	contentType := http.DetectContentType(head[:n])

	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return "", models.NewValidationError("imagen", "La imagen debe ser un archivo de tipo: jpeg, png, jpg")
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind upload: %w", err)
	}

	relPath := filepath.Join(dir, uuid.New().String()+ext)
	fullPath := filepath.Join(s.root, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create storage dir: %w", err)
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	log.WithFields(logrus.Fields{
		"path": relPath,
		"size": fileHeader.Size,
	}).Debug("Image stored")

	return filepath.ToSlash(relPath), nil
}

func (s *LocalStorage) Delete(path string) error {
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(path)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *LocalStorage) Exists(path string) bool {
	_, err := os.Stat(filepath.Join(s.root, filepath.FromSlash(path)))
	return err == nil
}

func (s *LocalStorage) URL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return s.baseURL + "/" + strings.TrimLeft(path, "/")
}
