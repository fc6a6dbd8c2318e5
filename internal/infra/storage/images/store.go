package images

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// sniffLen столько байт нужно http.DetectContentType
const sniffLen = 512

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Store хранит загруженные изображения номеров в локальном каталоге
// Файлы получают имя <uuid><ext>, наружу отдается URL вида <urlPrefix><имя>
type Store struct {
	dir       string
	urlPrefix string
	maxSize   int64
}

// NewStore создает хранилище и при необходимости каталог
func NewStore(dir, urlPrefix string, maxSize int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: NewStore - create dir %s: %v", ErrWriteFile, dir, err)
	}
	if !strings.HasSuffix(urlPrefix, "/") {
		urlPrefix += "/"
	}
	return &Store{dir: dir, urlPrefix: urlPrefix, maxSize: maxSize}, nil
}

// Dir каталог с файлами (для раздачи через http.FileServer)
func (s *Store) Dir() string {
	return s.dir
}

// URLPrefix префикс URL изображений
func (s *Store) URLPrefix() string {
	return s.urlPrefix
}

// Save сохраняет изображение и возвращает его URL
// Тип определяется по содержимому, а не по имени файла
func (s *Store) Save(ctx context.Context, r io.Reader) (string, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", fmt.Errorf("%w: Save - read header: %v", ErrWriteFile, err)
	}
	head = head[:n]

	ext, ok := extensions[http.DetectContentType(head)]
	if !ok {
		return "", ErrUnsupportedType
	}

	name := uuid.NewString() + ext
	fullPath := filepath.Join(s.dir, name)

	f, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("%w: Save - create %s: %v", ErrWriteFile, name, err)
	}

	// +1 байт, чтобы отличить файл ровно maxSize от превышающего
	written, err := io.Copy(f, io.LimitReader(io.MultiReader(bytes.NewReader(head), r), s.maxSize+1))
	closeErr := f.Close()

	if err == nil && written > s.maxSize {
		err = ErrTooLarge
	}
	if err == nil && closeErr != nil {
		err = fmt.Errorf("%w: Save - close %s: %v", ErrWriteFile, name, closeErr)
	}
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		_ = os.Remove(fullPath)
		if err == ErrTooLarge {
			return "", err
		}
		return "", fmt.Errorf("%w: Save - write %s: %v", ErrWriteFile, name, err)
	}

	return s.urlPrefix + name, nil
}

// Remove удаляет изображение по его URL
// URL с чужим префиксом и отсутствующие файлы игнорируются
func (s *Store) Remove(_ context.Context, url string) error {
	if !strings.HasPrefix(url, s.urlPrefix) {
		return nil
	}
	name := path.Base(strings.TrimPrefix(url, s.urlPrefix))
	if name == "." || name == "/" {
		return nil
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: Remove - %s: %v", ErrWriteFile, name, err)
	}
	return nil
}
