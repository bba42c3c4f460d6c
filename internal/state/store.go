package state

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/google/uuid"

	"fitness-planner/internal/adapter"
	"fitness-planner/internal/domain"
	"fitness-planner/internal/media"
)

var (
	// ErrLastUser is returned when deleting the only remaining user; at least
	// one user must exist at all times.
	ErrLastUser = errors.New("cannot delete the last remaining user")

	ErrUserNotFound   = errors.New("user not found")
	ErrDayNotFound    = errors.New("workout day not found")
	ErrItemNotFound   = errors.New("workout item not found")
	ErrNoUserSelected = errors.New("no user selected")
	ErrNoItemSelected = errors.New("no workout item selected")
)

// ItemRef points at one workout item within the selected user's schedule.
type ItemRef struct {
	DayID  string
	ItemID string
}

// Store is the single in-memory source of truth the presentation layer reads,
// and the serialization point for all mutations. Every structural mutation
// computes the changed aggregate, calls the persistence adapter, and installs
// only the adapter's returned value, so a failed persistence call never
// leaves the in-memory state ahead of the durable one.
//
// A mutex serializes mutations within this process. Whole-document user
// updates are still last-writer-wins across processes; that limitation is
// inherited from the update primitive, not hidden.
type Store struct {
	mu      sync.Mutex
	backend adapter.Store

	users          []domain.User
	selectedUserID string
	selectedItem   *ItemRef
	media          []domain.Media

	// transient UI state, never persisted
	activeTab     domain.MediaKind
	carouselIndex int
	detailOpen    bool
}

// New creates a store over the given persistence backend.
func New(backend adapter.Store) *Store {
	return &Store{backend: backend, activeTab: domain.MediaKindImage}
}

// Load fetches the user and media collections. An empty backend is seeded
// with one default user so the at-least-one-user invariant holds from the
// start. The first user becomes selected.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.backend.ListUsers(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		seeded, err := s.backend.CreateUser(ctx, domain.User{
			Name:        "User 1",
			WorkoutDays: domain.DefaultWorkoutDays(),
		})
		if err != nil {
			return err
		}
		users = []domain.User{seeded}
	}

	mediaRows, err := s.backend.ListMedia(ctx)
	if err != nil {
		return err
	}

	s.users = users
	s.media = mediaRows
	s.selectedUserID = users[0].ID
	s.clearItemSelectionLocked()
	return nil
}

// --- read access ---

// Users returns a snapshot of the user collection. Each element is a deep
// copy; mutating the result never reaches store-internal state.
func (s *Store) Users() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.User, len(s.users))
	for i := range s.users {
		out[i] = s.users[i].Clone()
	}
	return out
}

// SelectedUser returns a copy of the currently selected user.
func (s *Store) SelectedUser() (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.findUserLocked(s.selectedUserID)
	if u == nil {
		return domain.User{}, false
	}
	return u.Clone(), true
}

// SelectedItem returns the current item selection, nil when none.
func (s *Store) SelectedItem() *ItemRef {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedItem == nil {
		return nil
	}
	ref := *s.selectedItem
	return &ref
}

// Media returns a snapshot of the full media collection, orphans included.
func (s *Store) Media() []domain.Media {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Media, len(s.media))
	copy(out, s.media)
	return out
}

func (s *Store) ActiveTab() domain.MediaKind {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeTab
}

func (s *Store) DetailOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.detailOpen
}

// --- user mutations ---

// AddUser creates a new user with the default weekly schedule.
func (s *Store) AddUser(ctx context.Context, name string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created, err := s.backend.CreateUser(ctx, domain.User{
		Name:        name,
		WorkoutDays: domain.DefaultWorkoutDays(),
	})
	if err != nil {
		return domain.User{}, err
	}
	s.users = append(s.users, created)
	return created, nil
}

// RenameUser updates a user's display name.
func (s *Store) RenameUser(ctx context.Context, id, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.findUserLocked(id)
	if user == nil {
		return ErrUserNotFound
	}
	changed := user.Clone()
	changed.Name = name
	return s.replaceUserLocked(ctx, changed)
}

// DeleteUser removes a user. The last remaining user cannot be deleted.
// Deleting the selected user re-selects the first remaining user and clears
// the item selection.
func (s *Store) DeleteUser(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findUserLocked(id) == nil {
		return ErrUserNotFound
	}
	if len(s.users) <= 1 {
		return ErrLastUser
	}

	if err := s.backend.DeleteUser(ctx, id); err != nil {
		return err
	}

	kept := s.users[:0]
	for _, u := range s.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	s.users = kept

	if s.selectedUserID == id {
		s.selectedUserID = s.users[0].ID
		s.clearItemSelectionLocked()
	}
	return nil
}

// SelectUser switches the current user. The stored schedule is not touched.
func (s *Store) SelectUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findUserLocked(id) == nil {
		return ErrUserNotFound
	}
	if s.selectedUserID != id {
		s.selectedUserID = id
		s.clearItemSelectionLocked()
	}
	return nil
}

// --- schedule mutations ---

// AddItem appends a new workout item to a day of the selected user.
func (s *Store) AddItem(ctx context.Context, dayID, name string) (domain.WorkoutItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.findUserLocked(s.selectedUserID)
	if user == nil {
		return domain.WorkoutItem{}, ErrNoUserSelected
	}
	changed := user.Clone()
	day := changed.Day(dayID)
	if day == nil {
		return domain.WorkoutItem{}, ErrDayNotFound
	}

	item := domain.WorkoutItem{ID: uuid.New().String(), Name: name}
	day.Items = append(day.Items, item)

	if err := s.replaceUserLocked(ctx, changed); err != nil {
		return domain.WorkoutItem{}, err
	}
	return item, nil
}

// RenameItem updates an item's display name.
func (s *Store) RenameItem(ctx context.Context, dayID, itemID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.findUserLocked(s.selectedUserID)
	if user == nil {
		return ErrNoUserSelected
	}
	changed := user.Clone()
	item := changed.Item(dayID, itemID)
	if item == nil {
		return ErrItemNotFound
	}
	item.Name = name
	return s.replaceUserLocked(ctx, changed)
}

// RenameDay updates a day's display name.
func (s *Store) RenameDay(ctx context.Context, dayID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.findUserLocked(s.selectedUserID)
	if user == nil {
		return ErrNoUserSelected
	}
	changed := user.Clone()
	day := changed.Day(dayID)
	if day == nil {
		return ErrDayNotFound
	}
	day.Name = name
	return s.replaceUserLocked(ctx, changed)
}

// DeleteItem removes a workout item. If it was selected, the selection is
// cleared. Media rows referencing it are left in place as orphans; they are
// never listed again but remain recoverable in the collection.
func (s *Store) DeleteItem(ctx context.Context, dayID, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.findUserLocked(s.selectedUserID)
	if user == nil {
		return ErrNoUserSelected
	}
	changed := user.Clone()
	day := changed.Day(dayID)
	if day == nil {
		return ErrDayNotFound
	}

	found := false
	kept := day.Items[:0]
	for _, it := range day.Items {
		if it.ID == itemID {
			found = true
			continue
		}
		kept = append(kept, it)
	}
	if !found {
		return ErrItemNotFound
	}
	day.Items = kept

	if err := s.replaceUserLocked(ctx, changed); err != nil {
		return err
	}

	if s.selectedItem != nil && s.selectedItem.ItemID == itemID {
		s.clearItemSelectionLocked()
	}
	return nil
}

// SelectItem points the media view at one workout item of the selected user.
func (s *Store) SelectItem(dayID, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.findUserLocked(s.selectedUserID)
	if user == nil {
		return ErrNoUserSelected
	}
	if user.Item(dayID, itemID) == nil {
		return ErrItemNotFound
	}
	s.selectedItem = &ItemRef{DayID: dayID, ItemID: itemID}
	s.carouselIndex = 0
	return nil
}

// --- media ---

// SetActiveTab switches the upload/browse tab between images and videos.
func (s *Store) SetActiveTab(kind domain.MediaKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !kind.Valid() {
		return errors.New("unknown media tab")
	}
	if s.activeTab != kind {
		s.activeTab = kind
		s.carouselIndex = 0
		s.syncDetailLocked()
	}
	return nil
}

// Upload encodes a file through the media codec and attaches the result to
// the selected (user, item) pair. A type mismatch with the active tab fails
// before any state is touched.
func (s *Store) Upload(ctx context.Context, contentType string, r io.Reader) (domain.Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findUserLocked(s.selectedUserID) == nil {
		return domain.Media{}, ErrNoUserSelected
	}
	if s.selectedItem == nil {
		return domain.Media{}, ErrNoItemSelected
	}

	encoded, err := media.Encode(contentType, r, s.activeTab)
	if err != nil {
		return domain.Media{}, err
	}

	created, err := s.backend.CreateMedia(ctx, domain.Media{
		UserID:    s.selectedUserID,
		ItemID:    s.selectedItem.ItemID,
		Kind:      encoded.Kind,
		URL:       encoded.URL,
		Thumbnail: encoded.Thumbnail,
	})
	if err != nil {
		return domain.Media{}, err
	}
	s.media = append(s.media, created)
	return created, nil
}

// DeleteMedia removes one media row for good. Deleting an id the backend no
// longer has is treated as already done.
func (s *Store) DeleteMedia(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.DeleteMedia(ctx, id); err != nil && !errors.Is(err, adapter.ErrNotFound) {
		return err
	}

	kept := s.media[:0]
	for _, m := range s.media {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	s.media = kept
	s.syncDetailLocked()
	return nil
}

// ItemMedia returns the media rows for the current selection and tab, in
// collection order. Orphaned rows never appear because their item can no
// longer be selected.
func (s *Store) ItemMedia() []domain.Media {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemMediaLocked()
}

// --- carousel ---

// OpenDetail opens the media detail view when there is anything to show.
func (s *Store) OpenDetail() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.itemMediaLocked()) == 0 {
		return false
	}
	s.detailOpen = true
	return true
}

func (s *Store) CloseDetail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detailOpen = false
}

// CurrentMedia returns the media row under the carousel cursor, or false when
// the filtered collection is empty.
func (s *Store) CurrentMedia() (domain.Media, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.itemMediaLocked()
	if len(filtered) == 0 {
		return domain.Media{}, false
	}
	return filtered[s.carouselIndex%len(filtered)], true
}

// NextMedia advances the carousel, wrapping at the end.
func (s *Store) NextMedia() {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.itemMediaLocked())
	if n == 0 {
		return
	}
	s.carouselIndex = (s.carouselIndex + 1) % n
}

// PrevMedia steps the carousel backwards, wrapping at the start.
func (s *Store) PrevMedia() {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.itemMediaLocked())
	if n == 0 {
		return
	}
	s.carouselIndex = (s.carouselIndex - 1 + n) % n
}

// --- internals (callers hold s.mu) ---

func (s *Store) findUserLocked(id string) *domain.User {
	for i := range s.users {
		if s.users[i].ID == id {
			return &s.users[i]
		}
	}
	return nil
}

// replaceUserLocked pushes the whole changed document to the backend and
// installs the backend's echo in place of the old aggregate.
func (s *Store) replaceUserLocked(ctx context.Context, changed domain.User) error {
	updated, err := s.backend.UpdateUser(ctx, changed)
	if err != nil {
		return err
	}
	for i := range s.users {
		if s.users[i].ID == updated.ID {
			s.users[i] = updated
			return nil
		}
	}
	return ErrUserNotFound
}

func (s *Store) itemMediaLocked() []domain.Media {
	if s.selectedItem == nil {
		return nil
	}
	var filtered []domain.Media
	for _, m := range s.media {
		if m.UserID == s.selectedUserID && m.ItemID == s.selectedItem.ItemID && m.Kind == s.activeTab {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

func (s *Store) clearItemSelectionLocked() {
	s.selectedItem = nil
	s.carouselIndex = 0
	s.detailOpen = false
}

// syncDetailLocked clamps the carousel after the collection shrank and closes
// the detail view when nothing is left to show.
func (s *Store) syncDetailLocked() {
	n := len(s.itemMediaLocked())
	if n == 0 {
		s.carouselIndex = 0
		s.detailOpen = false
		return
	}
	s.carouselIndex %= n
}
