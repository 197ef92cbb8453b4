package calendar

import (
	"context"

	"github.com/google/uuid"

	"meetbook/internal/directory"
	"meetbook/internal/models"
)

// Resolver names the directory dependency of Counterpart.
type Resolver interface {
	Lookup(ctx context.Context, role string, id uuid.UUID) (*directory.Identity, error)
}

// Counterpart resolves the other side of a meetup relative to the
// viewer. A directory miss returns nil: the other party may have been
// removed since the meetup was booked, and callers should render an
// unknown identity rather than fail.
func Counterpart(ctx context.Context, m *models.Meetup, viewerID uuid.UUID, dir Resolver) *directory.Identity {
	role, id := m.RequesterRole, m.RequesterID
	if viewerID == m.RequesterID {
		role, id = m.ParticipantRole, m.ParticipantID
	}
	ident, err := dir.Lookup(ctx, role, id)
	if err != nil {
		return nil
	}
	return ident
}
