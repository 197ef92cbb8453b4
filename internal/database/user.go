package database

import (
	"meetbook/internal/models"
)

func (d *Database) SaveUser(user *models.User) error {
	if err := d.db.Create(user).Error; err != nil {
		return err
	}
	return nil
}

func (d *Database) GetUser(id string) (*models.User, error) {
	user := models.User{}
	if err := d.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *Database) FindUserByEmail(email string) (*models.User, error) {
	user := models.User{}
	if err := d.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserByRole resolves a user only when it carries the given role.
// A consumer id looked up as a provider is a miss, not a match.
func (d *Database) FindUserByRole(role, id string) (*models.User, error) {
	user := models.User{}
	if err := d.db.Where("id = ? AND role = ?", id, role).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
