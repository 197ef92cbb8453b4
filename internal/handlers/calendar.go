package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"meetbook/internal/calendar"
	"meetbook/internal/handlers/dto"
	"meetbook/internal/meetup"
	"meetbook/internal/models"
)

type CalendarHandler struct {
	svc *meetup.Service
	dir calendar.Resolver
}

func NewCalendarHandler(svc *meetup.Service, dir calendar.Resolver) *CalendarHandler {
	return &CalendarHandler{svc: svc, dir: dir}
}

// MonthView returns the caller's meetups projected onto a 42-cell month
// grid.
//
// GET /calendar/month?year=2025&month=3
func (h *CalendarHandler) MonthView(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
		return
	}

	meetups, err := h.svc.List(c.Request.Context(), principal(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	days := calendar.MonthGrid(year, time.Month(month))
	buckets := calendar.BucketByDay(meetups)

	cells := make([]dto.MonthCell, len(days))
	for i, d := range days {
		key := d.Date.Format(calendar.DateLayout)
		ms := buckets[key]
		if ms == nil {
			ms = []models.Meetup{}
		}
		cells[i] = dto.MonthCell{Date: key, InMonth: d.InMonth, Meetups: ms}
	}

	c.JSON(http.StatusOK, dto.MonthResponse{Year: year, Month: month, Days: cells})
}

// WeekView positions the caller's meetups inside the 7 day columns of
// the week containing the anchor date, with the counterpart's display
// identity resolved per event.
//
// GET /calendar/week?date=2025-03-10&startHour=6&endHour=22
func (h *CalendarHandler) WeekView(c *gin.Context) {
	dateStr := c.DefaultQuery("date", time.Now().UTC().Format(calendar.DateLayout))
	anchor, err := time.Parse(calendar.DateLayout, dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	vp := calendar.DefaultViewport
	vp.StartHour = parseIntDefault(c.Query("startHour"), vp.StartHour)
	vp.EndHour = parseIntDefault(c.Query("endHour"), vp.EndHour)
	if vp.EndHour <= vp.StartHour || vp.StartHour < 0 || vp.EndHour > 24 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid viewport"})
		return
	}

	p := principal(c)
	meetups, err := h.svc.List(c.Request.Context(), p)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	days := calendar.WeekDays(anchor)
	buckets := calendar.BucketByDay(meetups)

	out := make([]dto.WeekDay, len(days))
	for i, day := range days {
		key := day.Format(calendar.DateLayout)
		events := []dto.WeekEvent{}
		for _, m := range buckets[key] {
			pl, ok := calendar.PositionEvent(m.Start, m.End, day, vp)
			if !ok {
				continue
			}
			events = append(events, dto.WeekEvent{
				Meetup:      m,
				Top:         pl.Top,
				Height:      pl.Height,
				Counterpart: calendar.Counterpart(c.Request.Context(), &m, p.ID, h.dir),
			})
		}
		out[i] = dto.WeekDay{Date: key, Events: events}
	}

	c.JSON(http.StatusOK, dto.WeekResponse{
		WeekStart: days[0].Format(calendar.DateLayout),
		StartHour: vp.StartHour,
		EndHour:   vp.EndHour,
		Days:      out,
	})
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
