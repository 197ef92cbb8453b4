package dto

// CreateMeetupRequest is the POST /meetups body. Start and end arrive as
// RFC3339 strings and are parsed by the service.
type CreateMeetupRequest struct {
	TargetUserID string `json:"targetUserId" binding:"required"`
	Start        string `json:"start" binding:"required"`
	End          string `json:"end" binding:"required"`
	Title        string `json:"title" binding:"omitempty,max=120"`
	Description  string `json:"description" binding:"omitempty,max=2000"`
}

// UpdateMeetupRequest is the PATCH /meetups/:id body. Every field is
// optional; nil leaves the stored value unchanged.
type UpdateMeetupRequest struct {
	Status      *string `json:"status" binding:"omitempty,oneof=scheduled cancelled completed"`
	Title       *string `json:"title" binding:"omitempty,max=120"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Start       *string `json:"start"`
	End         *string `json:"end"`
}
