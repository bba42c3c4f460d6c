package service

import (
	"context"
	"errors"

	"fitness-planner/internal/domain"
	"fitness-planner/internal/repository"
)

var (
	ErrMediaValidation = errors.New("media validation failed")
)

// MediaService manages the media collection. Deletion is irreversible and
// deleting an id that is already gone succeeds silently, matching the
// adapter contract's tolerated-no-op behavior.
type MediaService interface {
	ListMedia(ctx context.Context) ([]domain.Media, error)
	CreateMedia(ctx context.Context, media domain.Media) (*domain.Media, error)
	DeleteMedia(ctx context.Context, id string) error
}

type mediaService struct {
	mediaRepo repository.MediaRepository
}

// NewMediaService creates a new instance of mediaService.
func NewMediaService(mediaRepo repository.MediaRepository) MediaService {
	return &mediaService{mediaRepo: mediaRepo}
}

func (s *mediaService) ListMedia(ctx context.Context) ([]domain.Media, error) {
	return s.mediaRepo.List(ctx)
}

func (s *mediaService) CreateMedia(ctx context.Context, media domain.Media) (*domain.Media, error) {
	if media.URL == "" || !media.Kind.Valid() {
		return nil, ErrMediaValidation
	}

	id, err := s.mediaRepo.Create(ctx, &media)
	if err != nil {
		return nil, err
	}
	return s.mediaRepo.GetByID(ctx, id)
}

func (s *mediaService) DeleteMedia(ctx context.Context, id string) error {
	if id == "" {
		return ErrMediaValidation
	}
	return s.mediaRepo.Delete(ctx, id)
}
