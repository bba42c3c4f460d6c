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

// fakeUserRepo is an in-memory repository.UserRepository.
type fakeUserRepo struct {
	users  map[string]domain.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]domain.User{}}
}

func (f *fakeUserRepo) List(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) (string, error) {
	f.nextID++
	user.ID = fmt.Sprintf("u-%d", f.nextID)
	f.users[user.ID] = *user
	return user.ID, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) Replace(ctx context.Context, user *domain.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

func TestCreateUser_AppliesDefaultSchedule(t *testing.T) {
	svc := service.NewUserService(newFakeUserRepo())

	created, err := svc.CreateUser(context.Background(), domain.User{Name: "Alice"})
	if err != nil {
		t.Fatalf("creating user: %v", err)
	}
	if len(created.WorkoutDays) != 7 {
		t.Errorf("expected 7 default days, got %d", len(created.WorkoutDays))
	}
	for _, day := range created.WorkoutDays {
		if len(day.Items) == 0 {
			t.Errorf("expected starter items on day %s", day.Name)
		}
	}
}

func TestCreateUser_KeepsProvidedSchedule(t *testing.T) {
	svc := service.NewUserService(newFakeUserRepo())

	created, err := svc.CreateUser(context.Background(), domain.User{
		Name:        "Bob",
		WorkoutDays: []domain.WorkoutDay{{ID: "d1", Name: "Rest day"}},
	})
	if err != nil {
		t.Fatalf("creating user: %v", err)
	}
	if len(created.WorkoutDays) != 1 || created.WorkoutDays[0].Name != "Rest day" {
		t.Error("expected the provided schedule to be kept")
	}
}

func TestCreateUser_RequiresName(t *testing.T) {
	svc := service.NewUserService(newFakeUserRepo())

	_, err := svc.CreateUser(context.Background(), domain.User{})
	if !errors.Is(err, service.ErrValidationFailed) {
		t.Errorf("expected ErrValidationFailed, got %v", err)
	}
}

func TestUpdateUser_Errors(t *testing.T) {
	svc := service.NewUserService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.UpdateUser(ctx, domain.User{Name: "no id"})
	if !errors.Is(err, service.ErrValidationFailed) {
		t.Errorf("expected ErrValidationFailed for missing id, got %v", err)
	}

	_, err = svc.UpdateUser(ctx, domain.User{ID: "ghost", Name: "gone"})
	if !errors.Is(err, service.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateUser_ReplacesWholeDocument(t *testing.T) {
	repo := newFakeUserRepo()
	svc := service.NewUserService(repo)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, domain.User{Name: "Carol"})
	if err != nil {
		t.Fatalf("creating user: %v", err)
	}

	changed := *created
	changed.WorkoutDays = nil // a stripped document wins wholesale

	updated, err := svc.UpdateUser(ctx, changed)
	if err != nil {
		t.Fatalf("updating user: %v", err)
	}
	if len(updated.WorkoutDays) != 0 {
		t.Errorf("expected the schedule to be replaced, got %d days", len(updated.WorkoutDays))
	}
}

func TestDeleteUser_UnknownID(t *testing.T) {
	svc := service.NewUserService(newFakeUserRepo())

	err := svc.DeleteUser(context.Background(), "ghost")
	if !errors.Is(err, service.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
