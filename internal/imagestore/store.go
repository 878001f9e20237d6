// Package imagestore persists uploaded exhibitor images. References
// returned by Save are opaque storage keys recorded on the exhibitor;
// Delete is called best-effort when an image is replaced or its record
// removed.
package imagestore

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// Store is the contract for image object storage.
type Store interface {
	// Save persists the upload under a fresh unique key and returns it.
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
	// Delete removes a previously saved image by its key.
	Delete(ctx context.Context, ref string) error
}

// NewKey builds a collision-safe storage key from the original
// filename: exhibitors/<unix-ms>_<token>_<filename>.
func NewKey(prefix, filename string) string {
	token := make([]byte, 6)
	_, _ = rand.Read(token)
	return fmt.Sprintf("%s%d_%s_%s",
		prefix, time.Now().UnixMilli(), hex.EncodeToString(token), sanitizeFilename(filename))
}

func sanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	out := strings.Trim(b.String(), "-.")
	if out == "" {
		out = "upload"
	}
	return out
}

// FileStore keeps images on the local filesystem under baseDir.
type FileStore struct {
	baseDir string
	prefix  string
}

func NewFileStore(baseDir, prefix string) (*FileStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure upload dir: %w", err)
	}
	return &FileStore{baseDir: baseDir, prefix: prefix}, nil
}

func (s *FileStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	key := NewKey(s.prefix, filename)
	dst := filepath.Join(s.baseDir, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("ensure key dir: %w", err)
	}

	// write to temp, then rename
	tmp := dst + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return "", fmt.Errorf("write upload: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("close upload: %w", err)
	}
	if err := os.Rename(tmp, dst); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("commit upload: %w", err)
	}

	return key, nil
}

func (s *FileStore) Delete(ctx context.Context, ref string) error {
	if ref == "" {
		return nil
	}
	dst := filepath.Join(s.baseDir, filepath.FromSlash(ref))

	// refuse to reach outside the upload dir
	rel, err := filepath.Rel(s.baseDir, dst)
	if err != nil || strings.HasPrefix(rel, "..") {
		return fmt.Errorf("invalid image ref: %s", ref)
	}

	if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete image: %w", err)
	}
	return nil
}

// Dir returns the backing directory, for serving files over HTTP.
func (s *FileStore) Dir() string {
	return s.baseDir
}
