package models

import (
	"time"

	"github.com/google/uuid"
)

// Meetup is a scheduled one-to-one session between a consumer and a
// provider. Records are never hard-deleted; a meetup ends its life as
// cancelled or completed.
type Meetup struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title           string    `gorm:"not null;default:'Meetup'" json:"title"`
	Description     string    `json:"description"`
	Start           time.Time `gorm:"column:start_time;not null;index" json:"start"`
	End             time.Time `gorm:"column:end_time;not null" json:"end"`
	RequesterID     uuid.UUID `gorm:"type:uuid;not null;index" json:"requesterId"`
	RequesterRole   string    `gorm:"not null;check:requester_role IN ('consumer','provider')" json:"requesterRole"`
	ParticipantID   uuid.UUID `gorm:"type:uuid;not null;index" json:"participantId"`
	ParticipantRole string    `gorm:"not null;check:chk_role_pair,participant_role IN ('consumer','provider') AND participant_role <> requester_role" json:"participantRole"`
	Status          string    `gorm:"not null;default:'scheduled';check:status IN ('scheduled','cancelled','completed')" json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}
