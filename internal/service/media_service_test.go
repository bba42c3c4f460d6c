package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"fitness-planner/internal/domain"
	"fitness-planner/internal/repository"
	"fitness-planner/internal/service"
)

type fakeMediaRepo struct {
	media  map[string]domain.Media
	nextID int
}

func newFakeMediaRepo() *fakeMediaRepo {
	return &fakeMediaRepo{media: map[string]domain.Media{}}
}

func (f *fakeMediaRepo) List(ctx context.Context) ([]domain.Media, error) {
	var out []domain.Media
	for _, m := range f.media {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMediaRepo) Create(ctx context.Context, m *domain.Media) (string, error) {
	f.nextID++
	m.ID = fmt.Sprintf("m-%d", f.nextID)
	f.media[m.ID] = *m
	return m.ID, nil
}

func (f *fakeMediaRepo) GetByID(ctx context.Context, id string) (*domain.Media, error) {
	m, ok := f.media[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &m, nil
}

func (f *fakeMediaRepo) Delete(ctx context.Context, id string) error {
	delete(f.media, id) // absent ids are a silent no-op
	return nil
}

func TestCreateMedia_Validation(t *testing.T) {
	svc := service.NewMediaService(newFakeMediaRepo())
	ctx := context.Background()

	_, err := svc.CreateMedia(ctx, domain.Media{Kind: domain.MediaKindImage})
	if !errors.Is(err, service.ErrMediaValidation) {
		t.Errorf("expected ErrMediaValidation for missing url, got %v", err)
	}

	_, err = svc.CreateMedia(ctx, domain.Media{Kind: "gif", URL: "data:..."})
	if !errors.Is(err, service.ErrMediaValidation) {
		t.Errorf("expected ErrMediaValidation for unknown kind, got %v", err)
	}

	created, err := svc.CreateMedia(ctx, domain.Media{
		Kind: domain.MediaKindImage,
		URL:  "data:image/jpeg;base64,AAAA",
	})
	if err != nil {
		t.Fatalf("creating media: %v", err)
	}
	if created.ID == "" {
		t.Error("expected an assigned id")
	}
}

func TestDeleteMedia_RepeatedDeletesSucceed(t *testing.T) {
	repo := newFakeMediaRepo()
	svc := service.NewMediaService(repo)
	ctx := context.Background()

	created, err := svc.CreateMedia(ctx, domain.Media{
		Kind: domain.MediaKindVideo,
		URL:  "data:video/mp4;base64,AAAA",
	})
	if err != nil {
		t.Fatalf("creating media: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := svc.DeleteMedia(ctx, created.ID); err != nil {
			t.Fatalf("delete #%d: %v", i+1, err)
		}
	}

	if err := svc.DeleteMedia(ctx, ""); !errors.Is(err, service.ErrMediaValidation) {
		t.Errorf("expected ErrMediaValidation for empty id, got %v", err)
	}
}
