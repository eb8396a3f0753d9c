package service

import (
	"context"
	"time"

	"github.com/campushub/studenthub/internal/domain"
	"github.com/campushub/studenthub/internal/kv"
)

// ProfileService owns the one profile record per identity.
type ProfileService struct {
	store kv.Store
}

// NewProfileService constructs the service.
func NewProfileService(store kv.Store) *ProfileService {
	return &ProfileService{store: store}
}

// ProfileUpdate carries the client-editable profile fields. Nil pointers
// leave the stored value untouched; id and email are never client-settable.
type ProfileUpdate struct {
	Name      *string
	Phone     *string
	StudentID *string
	Major     *string
}

// EnsureCreated writes the initial profile at sign-up. When a profile
// already exists its creation timestamp and cached notification count are
// preserved.
func (s *ProfileService) EnsureCreated(ctx context.Context, identity domain.Identity, name string) (*domain.Profile, error) {
	key := kv.ProfileKey(identity.ID)

	var existing domain.Profile
	found, err := s.store.Get(ctx, key, &existing)
	if err != nil {
		return nil, err
	}

	profile := domain.Profile{
		ID:    identity.ID,
		Email: identity.Email,
		Name:  name,
	}
	if found {
		profile.CreatedAt = existing.CreatedAt
		profile.UpdatedAt = existing.UpdatedAt
		profile.NotificationCount = existing.NotificationCount
		profile.Phone = existing.Phone
		profile.StudentID = existing.StudentID
		profile.Major = existing.Major
	} else {
		now := time.Now()
		profile.CreatedAt = &now
	}

	if err := s.store.Set(ctx, key, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Get returns the profile for the identity, synthesizing a minimal record
// when sign-up never wrote one.
func (s *ProfileService) Get(ctx context.Context, identity domain.Identity) (*domain.Profile, error) {
	var profile domain.Profile
	found, err := s.store.Get(ctx, kv.ProfileKey(identity.ID), &profile)
	if err != nil {
		return nil, err
	}
	if !found {
		return &domain.Profile{ID: identity.ID, Email: identity.Email}, nil
	}
	return &profile, nil
}

// Update merges the provided fields into the stored profile. The id and
// email always come from the verified identity.
func (s *ProfileService) Update(ctx context.Context, identity domain.Identity, update ProfileUpdate) (*domain.Profile, error) {
	key := kv.ProfileKey(identity.ID)

	var profile domain.Profile
	if _, err := s.store.Get(ctx, key, &profile); err != nil {
		return nil, err
	}

	if update.Name != nil {
		profile.Name = *update.Name
	}
	if update.Phone != nil {
		profile.Phone = *update.Phone
	}
	if update.StudentID != nil {
		profile.StudentID = *update.StudentID
	}
	if update.Major != nil {
		profile.Major = *update.Major
	}
	profile.ID = identity.ID
	profile.Email = identity.Email
	now := time.Now()
	profile.UpdatedAt = &now

	if err := s.store.Set(ctx, key, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// SetNotificationCount refreshes the cached unread count. The notification
// list remains authoritative; this is a best-effort denormalization.
func (s *ProfileService) SetNotificationCount(ctx context.Context, userID string, count int) error {
	key := kv.ProfileKey(userID)

	var profile domain.Profile
	found, err := s.store.Get(ctx, key, &profile)
	if err != nil {
		return err
	}
	if !found {
		profile = domain.Profile{ID: userID}
	}
	profile.NotificationCount = count
	return s.store.Set(ctx, key, &profile)
}
