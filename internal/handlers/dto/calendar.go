package dto

import (
	"meetbook/internal/directory"
	"meetbook/internal/models"
)

// MonthCell is one of the 42 cells of the month view.
type MonthCell struct {
	Date    string          `json:"date"`
	InMonth bool            `json:"inMonth"`
	Meetups []models.Meetup `json:"meetups"`
}

type MonthResponse struct {
	Year  int         `json:"year"`
	Month int         `json:"month"`
	Days  []MonthCell `json:"days"`
}

// WeekEvent is a meetup positioned inside a day column. Counterpart is
// null when the other party no longer resolves in the directory.
type WeekEvent struct {
	Meetup      models.Meetup       `json:"meetup"`
	Top         float64             `json:"top"`
	Height      float64             `json:"height"`
	Counterpart *directory.Identity `json:"counterpart"`
}

type WeekDay struct {
	Date   string      `json:"date"`
	Events []WeekEvent `json:"events"`
}

type WeekResponse struct {
	WeekStart string    `json:"weekStart"`
	StartHour int       `json:"startHour"`
	EndHour   int       `json:"endHour"`
	Days      []WeekDay `json:"days"`
}
