package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"swipe_server/metrics"
	"swipe_server/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProfileStore holds every profile in insertion order.
type ProfileStore struct {
	mu       sync.RWMutex
	profiles map[uuid.UUID]models.UserProfile
	order    []uuid.UUID

	newID  func() uuid.UUID
	now    func() time.Time
	logger *zap.Logger
}

// NewProfileStore returns an empty store.
func NewProfileStore(logger *zap.Logger) *ProfileStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileStore{
		profiles: make(map[uuid.UUID]models.UserProfile),
		newID:    uuid.New,
		now:      func() time.Time { return time.Now().UTC() },
		logger:   logger.Named("profiles"),
	}
}

// Create validates the attributes, assigns a fresh identifier and stores the profile.
func (s *ProfileStore) Create(name string, age int, gender, zoneID string) (models.UserProfile, error) {
	profile := models.UserProfile{
		Name:   name,
		Age:    age,
		Gender: gender,
		ZoneID: zoneID,
	}
	if err := validateProfile(profile); err != nil {
		return models.UserProfile{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.freshIDLocked()
	profile.ID = id
	profile.CreatedAt = s.now()
	s.insertLocked(profile)

	s.logger.Debug("profile created", zap.Stringer("id", id), zap.String("zone", profile.ZoneID))
	return profile, nil
}

// Add stores a profile that may already carry an identifier. A missing
// identifier is generated; a duplicate one is rejected.
func (s *ProfileStore) Add(profile models.UserProfile) (models.UserProfile, error) {
	if err := validateProfile(profile); err != nil {
		return models.UserProfile{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if profile.ID == uuid.Nil {
		profile.ID = s.freshIDLocked()
	} else if _, taken := s.profiles[profile.ID]; taken {
		return models.UserProfile{}, &ValidationError{Field: "id", Reason: fmt.Sprintf("%s already exists", profile.ID)}
	}
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = s.now()
	}
	s.insertLocked(profile)
	return profile, nil
}

// freshIDLocked draws identifiers until one is unused.
func (s *ProfileStore) freshIDLocked() uuid.UUID {
	for {
		id := s.newID()
		if _, taken := s.profiles[id]; !taken && id != uuid.Nil {
			return id
		}
	}
}

func (s *ProfileStore) insertLocked(profile models.UserProfile) {
	s.profiles[profile.ID] = profile
	s.order = append(s.order, profile.ID)
	metrics.ProfilesCreated.Inc()
}

// Get returns the profile for id or ErrNotFound.
func (s *ProfileStore) Get(id uuid.UUID) (models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[id]
	if !ok {
		return models.UserProfile{}, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return profile, nil
}

// Exists reports whether id names a stored profile.
func (s *ProfileStore) Exists(id uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.profiles[id]
	return ok
}

// All returns a snapshot of every profile in insertion order.
func (s *ProfileStore) All() []models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.UserProfile, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.profiles[id])
	}
	return out
}

// Count returns the number of stored profiles.
func (s *ProfileStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// validateProfile rejects blank labels. Labels are stored exactly as given.
func validateProfile(p models.UserProfile) error {
	switch {
	case blank(p.Name):
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	case p.Age <= 0:
		return &ValidationError{Field: "age", Reason: "must be a positive integer"}
	case blank(p.Gender):
		return &ValidationError{Field: "gender", Reason: "must not be empty"}
	case blank(p.ZoneID):
		return &ValidationError{Field: "zone_id", Reason: "must not be empty"}
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
