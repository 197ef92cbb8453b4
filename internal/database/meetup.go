package database

import (
	"meetbook/internal/models"
)

func (d *Database) CreateMeetup(m *models.Meetup) error {
	return d.db.Create(m).Error
}

func (d *Database) GetMeetup(id string) (*models.Meetup, error) {
	var m models.Meetup
	if err := d.db.First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// ListMeetupsForUser returns every meetup where the user sits on either
// side. Ordering is left to the caller.
func (d *Database) ListMeetupsForUser(userID string) ([]models.Meetup, error) {
	var meetups []models.Meetup
	err := d.db.
		Where("requester_id = ? OR participant_id = ?", userID, userID).
		Find(&meetups).Error
	if err != nil {
		return nil, err
	}
	return meetups, nil
}

// UpdateMeetup applies the given column values as a single UPDATE.
func (d *Database) UpdateMeetup(id string, fields map[string]any) error {
	return d.db.Model(&models.Meetup{}).Where("id = ?", id).Updates(fields).Error
}
