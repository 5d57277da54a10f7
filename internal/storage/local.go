package storage

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/stpnv0/Tourify/internal/domain"
	"github.com/zeebo/blake3"
)

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

// Object - загруженный файл.
type Object struct {
	Key  string `json:"key"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
	// Checksum - blake3 содержимого в hex.
	Checksum string `json:"checksum"`
}

// LocalBucket хранит изображения в каталоге на диске. Файлы раздаются роутером по publicURL.
type LocalBucket struct {
	dir       string
	publicURL string
	maxBytes  int64
}

func NewLocalBucket(dir, publicURL string, maxBytes int64) (*LocalBucket, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}

	return &LocalBucket{
		dir:       dir,
		publicURL: strings.TrimRight(publicURL, "/"),
		maxBytes:  maxBytes,
	}, nil
}

func (b *LocalBucket) Dir() string {
	return b.dir
}

// Upload сохраняет файл под новым ключом. Имя файла используется только для расширения.
func (b *LocalBucket) Upload(ctx context.Context, filename string, r io.Reader) (Object, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return Object{}, domain.NewValidationError(domain.FieldError{
			Field:   "file",
			Message: "must be an image (jpg, jpeg, png, gif, webp)",
		})
	}

	if err := ctx.Err(); err != nil {
		return Object{}, err
	}

	key := uuid.New().String() + ext
	dst := filepath.Join(b.dir, key)

	f, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return Object{}, fmt.Errorf("create object: %w", err)
	}

	// читаем на байт больше лимита, чтобы отличить файл ровно в лимит от слишком большого
	hasher := blake3.New()
	n, err := io.Copy(io.MultiWriter(f, hasher), io.LimitReader(r, b.maxBytes+1))
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(dst)
		return Object{}, fmt.Errorf("write object: %w", err)
	}
	if n > b.maxBytes {
		_ = os.Remove(dst)
		return Object{}, domain.NewValidationError(domain.FieldError{
			Field:   "file",
			Message: fmt.Sprintf("must be at most %d bytes", b.maxBytes),
		})
	}

	return Object{
		Key:      key,
		URL:      b.PublicURL(key),
		Size:     n,
		Checksum: hex.EncodeToString(hasher.Sum(nil)),
	}, nil
}

func (b *LocalBucket) Remove(_ context.Context, key string) error {
	if !validKey(key) {
		return domain.ErrUploadNotFound
	}

	err := os.Remove(filepath.Join(b.dir, key))
	if errors.Is(err, os.ErrNotExist) {
		return domain.ErrUploadNotFound
	}
	if err != nil {
		return fmt.Errorf("remove object: %w", err)
	}
	return nil
}

func (b *LocalBucket) PublicURL(key string) string {
	return b.publicURL + "/" + path.Clean(key)
}

// validKey пропускает только ключи, выданные Upload: uuid и расширение из белого списка.
func validKey(key string) bool {
	ext := filepath.Ext(key)
	if _, ok := allowedExtensions[ext]; !ok {
		return false
	}
	_, err := uuid.Parse(strings.TrimSuffix(key, ext))
	return err == nil
}
