package meetup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"meetbook/internal/directory"
	"meetbook/internal/models"
)

type fakeStore struct {
	meetups map[string]*models.Meetup
}

func newFakeStore() *fakeStore {
	return &fakeStore{meetups: map[string]*models.Meetup{}}
}

func (f *fakeStore) CreateMeetup(m *models.Meetup) error {
	cp := *m
	f.meetups[m.ID.String()] = &cp
	return nil
}

func (f *fakeStore) GetMeetup(id string) (*models.Meetup, error) {
	m, ok := f.meetups[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeStore) ListMeetupsForUser(userID string) ([]models.Meetup, error) {
	var out []models.Meetup
	for _, m := range f.meetups {
		if m.RequesterID.String() == userID || m.ParticipantID.String() == userID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateMeetup(id string, fields map[string]any) error {
	m, ok := f.meetups[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for k, v := range fields {
		switch k {
		case "status":
			m.Status = v.(string)
		case "title":
			m.Title = v.(string)
		case "description":
			m.Description = v.(string)
		case "start_time":
			m.Start = v.(time.Time)
		case "end_time":
			m.End = v.(time.Time)
		}
	}
	return nil
}

type fakeDirectory struct {
	identities map[string]*directory.Identity
}

func (f *fakeDirectory) Lookup(_ context.Context, role string, id uuid.UUID) (*directory.Identity, error) {
	if ident, ok := f.identities[role+":"+id.String()]; ok {
		return ident, nil
	}
	return nil, directory.ErrNotFound
}

var (
	consumerID = uuid.New()
	providerID = uuid.New()
	adminID    = uuid.New()
	consumer   = Principal{ID: consumerID, Role: RoleConsumer}
	provider   = Principal{ID: providerID, Role: RoleProvider}
	admin      = Principal{ID: adminID, Role: RoleAdmin}
)

func newTestService() (*Service, *fakeStore) {
	store := newFakeStore()
	dir := &fakeDirectory{identities: map[string]*directory.Identity{
		"consumer:" + consumerID.String(): {ID: consumerID, Name: "Alex Kim", Role: RoleConsumer},
		"provider:" + providerID.String(): {ID: providerID, Name: "Dr. Ava", Role: RoleProvider},
	}}
	return NewService(store, dir), store
}

func TestCreateMeetup(t *testing.T) {
	svc, store := newTestService()

	m, err := svc.Create(context.Background(), consumer, CreateRequest{
		TargetUserID: providerID.String(),
		Start:        "2025-03-10T09:00:00Z",
		End:          "2025-03-10T09:30:00Z",
	})

	require.NoError(t, err)
	assert.Equal(t, StatusScheduled, m.Status)
	assert.Equal(t, "Meetup", m.Title, "title defaults when omitted")
	assert.Equal(t, consumerID, m.RequesterID)
	assert.Equal(t, RoleConsumer, m.RequesterRole)
	assert.Equal(t, providerID, m.ParticipantID)
	assert.Equal(t, RoleProvider, m.ParticipantRole)
	assert.Equal(t, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), m.Start)
	assert.False(t, m.CreatedAt.IsZero())

	stored, err := store.GetMeetup(m.ID.String())
	require.NoError(t, err)
	assert.Equal(t, m.ID, stored.ID)
}

func TestCreateMeetupByProvider(t *testing.T) {
	svc, _ := newTestService()

	m, err := svc.Create(context.Background(), provider, CreateRequest{
		TargetUserID: consumerID.String(),
		Start:        "2025-03-10T09:00:00Z",
		End:          "2025-03-10T10:00:00Z",
		Title:        "Follow-up",
	})

	require.NoError(t, err)
	assert.Equal(t, "Follow-up", m.Title)
	assert.Equal(t, RoleProvider, m.RequesterRole)
	assert.Equal(t, RoleConsumer, m.ParticipantRole)
}

func TestCreateMeetupRolePairInvariant(t *testing.T) {
	svc, _ := newTestService()

	// Whoever creates, the record always pairs one consumer with one
	// provider.
	for _, p := range []Principal{consumer, provider} {
		target := providerID
		if p.Role == RoleProvider {
			target = consumerID
		}
		m, err := svc.Create(context.Background(), p, CreateRequest{
			TargetUserID: target.String(),
			Start:        "2025-03-10T09:00:00Z",
			End:          "2025-03-10T09:30:00Z",
		})
		require.NoError(t, err)
		roles := map[string]bool{m.RequesterRole: true, m.ParticipantRole: true}
		assert.True(t, roles[RoleConsumer] && roles[RoleProvider])
	}
}

func TestCreateMeetupValidation(t *testing.T) {
	svc, _ := newTestService()

	tests := []struct {
		name       string
		start, end string
	}{
		{"end before start", "2025-01-01T10:00:00Z", "2025-01-01T09:00:00Z"},
		{"end equals start", "2025-01-01T10:00:00Z", "2025-01-01T10:00:00Z"},
		{"unparsable start", "yesterday", "2025-01-01T10:00:00Z"},
		{"unparsable end", "2025-01-01T10:00:00Z", "tomorrow"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), consumer, CreateRequest{
				TargetUserID: providerID.String(),
				Start:        tc.start,
				End:          tc.end,
			})
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}
}

func TestCreateMeetupUnknownTarget(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), consumer, CreateRequest{
		TargetUserID: uuid.New().String(),
		Start:        "2025-03-10T09:00:00Z",
		End:          "2025-03-10T09:30:00Z",
	})
	assert.ErrorIs(t, err, ErrTargetNotFound)
}

func TestCreateMeetupTargetInWrongDirectory(t *testing.T) {
	svc, _ := newTestService()

	// A consumer cannot book another consumer: the target is resolved
	// against the provider directory only.
	_, err := svc.Create(context.Background(), consumer, CreateRequest{
		TargetUserID: consumerID.String(),
		Start:        "2025-03-10T09:00:00Z",
		End:          "2025-03-10T09:30:00Z",
	})
	assert.ErrorIs(t, err, ErrTargetNotFound)
}

func TestCreateMeetupWrongRole(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), admin, CreateRequest{
		TargetUserID: providerID.String(),
		Start:        "2025-03-10T09:00:00Z",
		End:          "2025-03-10T09:30:00Z",
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestListMeetupsFiltersAndSorts(t *testing.T) {
	svc, store := newTestService()

	mk := func(requester, participant uuid.UUID, start time.Time) {
		store.CreateMeetup(&models.Meetup{
			ID:              uuid.New(),
			RequesterID:     requester,
			RequesterRole:   RoleConsumer,
			ParticipantID:   participant,
			ParticipantRole: RoleProvider,
			Start:           start,
			End:             start.Add(30 * time.Minute),
			Status:          StatusScheduled,
		})
	}
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	mk(consumerID, providerID, base.Add(2*time.Hour))
	mk(consumerID, providerID, base)
	mk(uuid.New(), uuid.New(), base.Add(time.Hour)) // someone else's

	meetups, err := svc.List(context.Background(), consumer)

	require.NoError(t, err)
	require.Len(t, meetups, 2)
	assert.True(t, meetups[0].Start.Before(meetups[1].Start))
	for _, m := range meetups {
		assert.True(t, m.RequesterID == consumerID || m.ParticipantID == consumerID)
	}
}

func TestGetMeetupAccess(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), consumer, CreateRequest{
		TargetUserID: providerID.String(),
		Start:        "2025-03-10T09:00:00Z",
		End:          "2025-03-10T09:30:00Z",
	})
	require.NoError(t, err)
	id := created.ID.String()

	t.Run("requester", func(t *testing.T) {
		_, err := svc.Get(context.Background(), consumer, id)
		assert.NoError(t, err)
	})
	t.Run("participant", func(t *testing.T) {
		_, err := svc.Get(context.Background(), provider, id)
		assert.NoError(t, err)
	})
	t.Run("admin", func(t *testing.T) {
		_, err := svc.Get(context.Background(), admin, id)
		assert.NoError(t, err)
	})
	t.Run("stranger", func(t *testing.T) {
		_, err := svc.Get(context.Background(), Principal{ID: uuid.New(), Role: RoleConsumer}, id)
		assert.ErrorIs(t, err, ErrForbidden)
	})
	t.Run("missing", func(t *testing.T) {
		_, err := svc.Get(context.Background(), consumer, uuid.New().String())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func strptr(s string) *string { return &s }

func TestUpdateMeetupStatusOnly(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), consumer, CreateRequest{
		TargetUserID: providerID.String(),
		Start:        "2025-03-10T09:00:00Z",
		End:          "2025-03-10T09:30:00Z",
		Title:        "Intro call",
		Description:  "first session",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), consumer, created.ID.String(), UpdateRequest{
		Status: strptr(StatusCancelled),
	})

	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, updated.Status)
	assert.Equal(t, "Intro call", updated.Title)
	assert.Equal(t, "first session", updated.Description)
	assert.Equal(t, created.Start, updated.Start)
	assert.Equal(t, created.End, updated.End)
}

func TestUpdateMeetupIgnoresUnparsableDates(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), consumer, CreateRequest{
		TargetUserID: providerID.String(),
		Start:        "2025-03-10T09:00:00Z",
		End:          "2025-03-10T09:30:00Z",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), consumer, created.ID.String(), UpdateRequest{
		Start: strptr("not-a-date"),
		End:   strptr("2025-03-10T11:00:00Z"),
	})

	require.NoError(t, err)
	assert.Equal(t, created.Start, updated.Start, "bad start keeps the stored value")
	assert.Equal(t, time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC), updated.End)
}

func TestUpdateMeetupByParticipant(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), consumer, CreateRequest{
		TargetUserID: providerID.String(),
		Start:        "2025-03-10T09:00:00Z",
		End:          "2025-03-10T09:30:00Z",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), provider, created.ID.String(), UpdateRequest{
		Title: strptr("Rescheduled intro"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Rescheduled intro", updated.Title)
}

func TestUpdateMeetupForbiddenAndMissing(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), consumer, CreateRequest{
		TargetUserID: providerID.String(),
		Start:        "2025-03-10T09:00:00Z",
		End:          "2025-03-10T09:30:00Z",
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), Principal{ID: uuid.New(), Role: RoleProvider},
		created.ID.String(), UpdateRequest{Status: strptr(StatusCancelled)})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Update(context.Background(), consumer, uuid.New().String(),
		UpdateRequest{Status: strptr(StatusCancelled)})
	assert.ErrorIs(t, err, ErrNotFound)
}
