package media

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	apperrors "ouma-web/internal/errors"

	"go.uber.org/zap"
)

// ===========================================================================
// Media storage
// Uploaded files land under <root>/images, <root>/videos or <root>/docs and
// are served from the matching root-relative public path.
// ===========================================================================

// Public folders
const (
	FolderImages = "images"
	FolderVideos = "videos"
	FolderDocs   = "docs"
)

// Classify picks the folder for a declared MIME type
func Classify(mimeType string) string {
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	switch {
	case strings.HasPrefix(mimeType, "video/"):
		return FolderVideos
	case mimeType == "application/pdf":
		return FolderDocs
	default:
		return FolderImages
	}
}

// StoredFile describes a saved upload
type StoredFile struct {
	Folder   string
	Name     string
	MimeType string
	// PublicPath root-relative URL path, e.g. /images/1700000000000001.jpg
	PublicPath string
	// FullPath location on disk
	FullPath string
}

// Mirror receives a copy of every stored file
type Mirror interface {
	Put(ctx context.Context, key string, body io.Reader, contentType string) error
}

// Store saves uploads on local disk
type Store struct {
	root   string
	mirror Mirror
	logger *zap.Logger
	seq    atomic.Uint64
}

// NewStore creates a Store rooted at root. mirror may be nil.
func NewStore(root string, mirror Mirror, logger *zap.Logger) *Store {
	return &Store{root: root, mirror: mirror, logger: logger}
}

// Root returns the public directory
func (s *Store) Root() string {
	return s.root
}

// Save writes the upload into its folder under a generated name.
// The original file name is discarded, only its extension is kept.
func (s *Store) Save(ctx context.Context, fh *multipart.FileHeader) (*StoredFile, error) {
	mimeType := fh.Header.Get("Content-Type")
	folder := Classify(mimeType)

	dir := filepath.Join(s.root, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	name := s.newName(fh.Filename)
	full := filepath.Join(dir, name)

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(full)
		return nil, fmt.Errorf("write file: %w", err)
	}
	if err := dst.Close(); err != nil {
		return nil, fmt.Errorf("close file: %w", err)
	}

	stored := &StoredFile{
		Folder:     folder,
		Name:       name,
		MimeType:   mimeType,
		PublicPath: "/" + folder + "/" + name,
		FullPath:   full,
	}

	s.logger.Info("upload stored",
		zap.String("path", stored.PublicPath),
		zap.Int64("size", fh.Size),
	)

	s.Mirror(ctx, stored)
	return stored, nil
}

// SaveAll saves every file, stopping at the first failure
func (s *Store) SaveAll(ctx context.Context, files []*multipart.FileHeader) ([]*StoredFile, error) {
	out := make([]*StoredFile, 0, len(files))
	for _, fh := range files {
		stored, err := s.Save(ctx, fh)
		if err != nil {
			return out, err
		}
		out = append(out, stored)
	}
	return out, nil
}

// Mirror copies a stored file to the mirror, if configured. Failures are logged.
func (s *Store) Mirror(ctx context.Context, f *StoredFile) {
	if s.mirror == nil {
		return
	}
	file, err := os.Open(f.FullPath)
	if err != nil {
		s.logger.Warn("mirror open failed", zap.String("path", f.FullPath), zap.Error(err))
		return
	}
	defer file.Close()

	key := f.Folder + "/" + f.Name
	if err := s.mirror.Put(ctx, key, file, f.MimeType); err != nil {
		s.logger.Warn("mirror upload failed", zap.String("key", key), zap.Error(err))
	}
}

// Resolve maps a public path (/images/x.jpg) to its location on disk
func (s *Store) Resolve(publicPath string) (string, error) {
	clean := path.Clean("/" + strings.TrimSpace(publicPath))
	parts := strings.SplitN(strings.TrimPrefix(clean, "/"), "/", 2)
	if len(parts) != 2 || parts[1] == "" {
		return "", fmt.Errorf("resolve %q: %w", publicPath, apperrors.ErrInvalidInput)
	}
	switch parts[0] {
	case FolderImages, FolderVideos, FolderDocs:
	default:
		return "", fmt.Errorf("resolve %q: %w", publicPath, apperrors.ErrInvalidInput)
	}
	return filepath.Join(s.root, parts[0], filepath.FromSlash(parts[1])), nil
}

func (s *Store) newName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return fmt.Sprintf("%d%d%s", time.Now().UnixMilli(), s.seq.Add(1), ext)
}
