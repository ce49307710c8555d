package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"artisanhub/internal/config"
	"artisanhub/internal/repositories"
	"artisanhub/internal/services/dto"
	"artisanhub/internal/storage"
	"artisanhub/pkg/apperrors"
)

type UploadService interface {
	UploadProfilePicture(ctx context.Context, userID, filename string, size int64, reader io.Reader) (*dto.UploadResponse, error)
}

type UploadServiceImpl struct {
	store    storage.Storage
	userRepo repositories.UserRepository
	cfg      config.UploadConfig
}

func NewUploadService(store storage.Storage, userRepo repositories.UserRepository, cfg config.UploadConfig) UploadService {
	return &UploadServiceImpl{
		store:    store,
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// UploadProfilePicture stores the file and points the user's profile at
// it. Colliding filenames get a numeric suffix instead of overwriting.
func (s *UploadServiceImpl) UploadProfilePicture(ctx context.Context, userID, filename string, size int64, reader io.Reader) (*dto.UploadResponse, error) {
	if size > s.cfg.MaxSize {
		return nil, apperrors.NewBadRequestError("File is too large")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !s.extensionAllowed(ext) {
		return nil, apperrors.NewBadRequestError("File type is not allowed")
	}

	path, err := s.uniquePath(ctx, sanitizeFilename(filename))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.store.Save(ctx, path, reader); err != nil {
		return nil, apperrors.InternalError(err)
	}

	url := s.store.GetURL(path)
	if err := s.userRepo.UpdateProfilePic(userID, url); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("uploads", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.UploadResponse{URL: url}, nil
}

func (s *UploadServiceImpl) extensionAllowed(ext string) bool {
	for _, allowed := range s.cfg.AllowedTypes {
		if ext == allowed {
			return true
		}
	}
	return false
}

// uniquePath appends "_1", "_2", ... until the name no longer collides
// with an existing file.
func (s *UploadServiceImpl) uniquePath(ctx context.Context, filename string) (string, error) {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)

	candidate := filename
	for counter := 1; ; counter++ {
		exists, err := s.store.Exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s_%d%s", base, counter, ext)
	}
}

// sanitizeFilename strips any path components and characters that are
// unsafe in a filesystem path or URL.
func sanitizeFilename(filename string) string {
	filename = filepath.Base(filename)

	var b strings.Builder
	for _, r := range filename {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	sanitized := b.String()
	if sanitized == "" || strings.Trim(sanitized, "._") == "" {
		sanitized = "upload" + filepath.Ext(filename)
	}
	return sanitized
}
