package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/couchtour/phishstats/api/http/presenter"
	"github.com/couchtour/phishstats/pkg/llm"
	"github.com/couchtour/phishstats/pkg/story"
)

type StoryHandler struct {
	svc story.Service
}

func NewStoryHandler(svc story.Service) *StoryHandler { return &StoryHandler{svc: svc} }

// Generate forwards the caller's attendance payload to the model and relays
// the five-section story JSON unchanged.
// @Summary Generate a narrative story from attendance data
// @Description Accepts an arbitrary JSON body of attendance/setlist records and returns the model's five-section story. The body is forwarded as-is; no schema is enforced on either side.
// @Tags    story
// @Accept  json
// @Produce json
// @Param   input body object true "Attendance/setlist data (any shape)"
// @Success 200 {object} story.Story
// @Failure 401 {object} presenter.ErrorResponse "Upstream authentication failure, relayed"
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /api/generate-story [post]
func (h *StoryHandler) Generate(c *fiber.Ctx) error {
	// The payload is opaque: forwarded byte-for-byte, never validated.
	payload := json.RawMessage(c.Body())

	out, err := h.svc.Generate(c.Context(), payload)
	if err != nil {
		// Upstream failures keep their original status code.
		var apiErr *llm.APIError
		if errors.As(err, &apiErr) {
			return presenter.Error(c, apiErr.StatusCode, apiErr.Message)
		}
		return presenter.Error(c, http.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(http.StatusOK).Send(out)
}
