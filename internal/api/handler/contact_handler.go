package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ulysse/cms-api/internal/core/domain"
)

// ContactQueue accepts submissions for asynchronous processing.
type ContactQueue interface {
	Enqueue(ctx context.Context, sub domain.ContactSubmission) error
}

type ContactHandler struct {
	queue ContactQueue
	log   zerolog.Logger
	now   func() time.Time
}

func NewContactHandler(queue ContactQueue, log zerolog.Logger) *ContactHandler {
	return &ContactHandler{queue: queue, log: log, now: time.Now}
}

type contactRequest struct {
	Name         string `json:"name" validate:"required,max=200"`
	Organization string `json:"organization" validate:"max=200"`
	Email        string `json:"email" validate:"required,email"`
	InquiryType  string `json:"inquiry_type" validate:"max=100"`
	Message      string `json:"message" validate:"required,max=5000"`
}

type contactResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Submit accepts an inquiry form. The submission is queued and the client is
// answered before it is stored.
//
// @Summary  Submit the contact form
// @Tags     contact
// @Accept   json
// @Produce  json
// @Param    body  body      contactRequest  true  "Inquiry"
// @Success  201   {object}  contactResponse
// @Failure  400   {object}  map[string]string
// @Router   /contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	sub := domain.ContactSubmission{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Organization: req.Organization,
		Email:        req.Email,
		InquiryType:  req.InquiryType,
		Message:      req.Message,
		RemoteAddr:   c.RealIP(),
		ReceivedAt:   h.now().UTC(),
	}
	if err := h.queue.Enqueue(c.Request().Context(), sub); err != nil {
		h.log.Warn().Err(err).Str("submission_id", sub.ID).Msg("contact submission not queued")
	}

	return c.JSON(http.StatusCreated, contactResponse{Status: "success", Message: "We will be in touch soon!"})
}
