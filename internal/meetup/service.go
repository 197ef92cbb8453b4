package meetup

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"meetbook/internal/directory"
	"meetbook/internal/models"
)

const (
	RoleConsumer = "consumer"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

const (
	StatusScheduled = "scheduled"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Principal is the authenticated caller, as supplied by the auth
// middleware.
type Principal struct {
	ID   uuid.UUID
	Role string
}

// EventStore is the persistence contract for meetup records. A single
// create or update is one atomic write; there is no multi-record
// transaction and no version token, so concurrent updates resolve
// last-write-wins.
type EventStore interface {
	CreateMeetup(m *models.Meetup) error
	GetMeetup(id string) (*models.Meetup, error)
	ListMeetupsForUser(userID string) ([]models.Meetup, error)
	UpdateMeetup(id string, fields map[string]any) error
}

// DirectoryLookup resolves a (role, id) pair to a display identity.
type DirectoryLookup interface {
	Lookup(ctx context.Context, role string, id uuid.UUID) (*directory.Identity, error)
}

type CreateRequest struct {
	TargetUserID string
	Start        string
	End          string
	Title        string
	Description  string
}

// UpdateRequest carries an optional patch per field. Nil means "leave
// unchanged".
type UpdateRequest struct {
	Status      *string
	Title       *string
	Description *string
	Start       *string
	End         *string
}

type Service struct {
	store EventStore
	dir   DirectoryLookup
}

func NewService(store EventStore, dir DirectoryLookup) *Service {
	return &Service{store: store, dir: dir}
}

// counterpartRole maps each bookable role to the one it books against.
func counterpartRole(role string) string {
	if role == RoleConsumer {
		return RoleProvider
	}
	return RoleConsumer
}

// Create books a meetup between the principal and the target user on the
// opposite side. The target must exist in the opposite role's directory.
func (s *Service) Create(ctx context.Context, p Principal, req CreateRequest) (*models.Meetup, error) {
	if p.Role != RoleConsumer && p.Role != RoleProvider {
		return nil, ErrForbidden
	}

	targetID, err := uuid.Parse(req.TargetUserID)
	if err != nil {
		return nil, &ValidationError{Field: "targetUserId", Reason: "invalid target user id"}
	}
	start, err := time.Parse(time.RFC3339, req.Start)
	if err != nil {
		return nil, &ValidationError{Field: "start", Reason: "invalid start/end"}
	}
	end, err := time.Parse(time.RFC3339, req.End)
	if err != nil {
		return nil, &ValidationError{Field: "end", Reason: "invalid start/end"}
	}
	if !end.After(start) {
		return nil, &ValidationError{Field: "end", Reason: "invalid start/end"}
	}

	// Looking the target up under the opposite role keeps every record a
	// consumer/provider pair: a consumer id offered as the target of a
	// consumer simply does not resolve.
	targetRole := counterpartRole(p.Role)
	if _, err := s.dir.Lookup(ctx, targetRole, targetID); err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return nil, ErrTargetNotFound
		}
		return nil, err
	}

	title := req.Title
	if title == "" {
		title = "Meetup"
	}

	m := &models.Meetup{
		ID:              uuid.New(),
		Title:           title,
		Description:     req.Description,
		Start:           start.UTC(),
		End:             end.UTC(),
		RequesterID:     p.ID,
		RequesterRole:   p.Role,
		ParticipantID:   targetID,
		ParticipantRole: targetRole,
		Status:          StatusScheduled,
		CreatedAt:       time.Now().UTC(),
	}
	// Checked invariant: a record never pairs two members of the same
	// role.
	if m.RequesterRole == m.ParticipantRole {
		return nil, ErrForbidden
	}
	if err := s.store.CreateMeetup(m); err != nil {
		return nil, err
	}
	return m, nil
}

// List returns the principal's meetups ascending by start.
func (s *Service) List(ctx context.Context, p Principal) ([]models.Meetup, error) {
	meetups, err := s.store.ListMeetupsForUser(p.ID.String())
	if err != nil {
		return nil, err
	}
	sort.SliceStable(meetups, func(i, j int) bool {
		return meetups[i].Start.Before(meetups[j].Start)
	})
	return meetups, nil
}

// Get returns one meetup. Only the two participants and admins may read
// it.
func (s *Service) Get(ctx context.Context, p Principal, id string) (*models.Meetup, error) {
	m, err := s.store.GetMeetup(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !canAccess(p, m) {
		return nil, ErrForbidden
	}
	return m, nil
}

// Update applies a partial patch under the same access rule as Get.
// Unparsable patch dates keep the stored instants instead of failing;
// create is strict, update is not, and that asymmetry is intentional.
func (s *Service) Update(ctx context.Context, p Principal, id string, req UpdateRequest) (*models.Meetup, error) {
	m, err := s.store.GetMeetup(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !canAccess(p, m) {
		return nil, ErrForbidden
	}

	fields := map[string]any{}
	if req.Status != nil && *req.Status != "" {
		fields["status"] = *req.Status
	}
	if req.Title != nil && *req.Title != "" {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Start != nil {
		if t, err := time.Parse(time.RFC3339, *req.Start); err == nil {
			fields["start_time"] = t.UTC()
		}
	}
	if req.End != nil {
		if t, err := time.Parse(time.RFC3339, *req.End); err == nil {
			fields["end_time"] = t.UTC()
		}
	}

	if len(fields) > 0 {
		if err := s.store.UpdateMeetup(id, fields); err != nil {
			return nil, err
		}
	}
	return s.store.GetMeetup(id)
}

func canAccess(p Principal, m *models.Meetup) bool {
	return p.ID == m.RequesterID || p.ID == m.ParticipantID || p.Role == RoleAdmin
}
