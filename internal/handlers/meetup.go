package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"meetbook/internal/handlers/dto"
	"meetbook/internal/meetup"
	"meetbook/internal/middleware"
)

type MeetupHandler struct {
	svc *meetup.Service
}

func NewMeetupHandler(svc *meetup.Service) *MeetupHandler {
	return &MeetupHandler{svc: svc}
}

// principal reads the authenticated caller placed into the context by
// the auth middleware.
func principal(c *gin.Context) meetup.Principal {
	return meetup.Principal{
		ID:   c.MustGet(middleware.UserIDKey).(uuid.UUID),
		Role: c.MustGet(middleware.RoleKey).(string),
	}
}

// CreateMeetup books a new meetup with a user on the opposite side.
func (h *MeetupHandler) CreateMeetup(c *gin.Context) {
	var req dto.CreateMeetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := h.svc.Create(c.Request.Context(), principal(c), meetup.CreateRequest{
		TargetUserID: req.TargetUserID,
		Start:        req.Start,
		End:          req.End,
		Title:        req.Title,
		Description:  req.Description,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, m)
}

// ListMeetups returns the caller's meetups ascending by start.
func (h *MeetupHandler) ListMeetups(c *gin.Context) {
	meetups, err := h.svc.List(c.Request.Context(), principal(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meetups)
}

// GetMeetup returns a single meetup the caller participates in.
func (h *MeetupHandler) GetMeetup(c *gin.Context) {
	m, err := h.svc.Get(c.Request.Context(), principal(c), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// UpdateMeetup applies a partial patch (status, title, description,
// start, end) and returns the updated record.
func (h *MeetupHandler) UpdateMeetup(c *gin.Context) {
	var req dto.UpdateMeetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := h.svc.Update(c.Request.Context(), principal(c), c.Param("id"), meetup.UpdateRequest{
		Status:      req.Status,
		Title:       req.Title,
		Description: req.Description,
		Start:       req.Start,
		End:         req.End,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}

// writeServiceError maps service errors onto the wire contract. The
// forbidden branch stays generic so callers cannot probe whether a
// record exists.
func writeServiceError(c *gin.Context, err error) {
	var verr *meetup.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Reason, "field": verr.Field})
	case errors.Is(err, meetup.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, meetup.ErrTargetNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "target user not found"})
	case errors.Is(err, meetup.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
