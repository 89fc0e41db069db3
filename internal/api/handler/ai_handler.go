package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/citysphere/citysphere-api/internal/core/ports"
)

// LabelScheduler enqueues image-labeling jobs for the background workers.
type LabelScheduler interface {
	Enqueue(job ports.LabelJob)
}

// AIHandler handles the /ai route family backed by the generative-AI provider.
type AIHandler struct {
	service   ports.AIService
	scheduler LabelScheduler
}

func NewAIHandler(service ports.AIService, scheduler LabelScheduler) *AIHandler {
	return &AIHandler{service: service, scheduler: scheduler}
}

type generateRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

type generateResponse struct {
	Answer string `json:"answer"`
}

type labelRequest struct {
	ImageID  string `json:"imageId"  validate:"required"`
	ImageURL string `json:"imageURL" validate:"required,url"`
}

type transcribeRequest struct {
	AudioURL string `json:"audioURL" validate:"required,url"`
	MimeType string `json:"mimeType"`
}

type transcribeResponse struct {
	Transcript string `json:"transcript"`
}

// Generate answers a free-form prompt.
//
// @Summary      Generate an AI answer
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      generateRequest  true  "Prompt"
// @Success      200   {object}  generateResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /ai/generate [post]
func (h *AIHandler) Generate(c echo.Context) error {
	var req generateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Prompt == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Prompt is required"})
	}

	answer, err := h.service.Generate(c.Request().Context(), req.Prompt)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, generateResponse{Answer: answer})
}

// Label schedules asynchronous labeling of an image. The response is an
// acknowledgement; labels land on the image record once a worker finishes.
//
// @Summary      Schedule AI image labeling
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      labelRequest  true  "Image reference"
// @Success      202   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /ai/label [post]
func (h *AIHandler) Label(c echo.Context) error {
	var req labelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.ImageID == "" || req.ImageURL == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "imageId and imageURL are required"})
	}

	h.scheduler.Enqueue(ports.LabelJob{ImageID: req.ImageID, ImageURL: req.ImageURL})
	return c.JSON(http.StatusAccepted, messageResponse{Message: "Labeling scheduled"})
}

// Transcribe converts an audio file to text.
//
// @Summary      Transcribe audio
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      transcribeRequest  true  "Audio reference"
// @Success      200   {object}  transcribeResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /ai/transcribe [post]
func (h *AIHandler) Transcribe(c echo.Context) error {
	var req transcribeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.AudioURL == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "audioURL is required"})
	}
	if req.MimeType == "" {
		req.MimeType = "audio/mpeg"
	}

	transcript, err := h.service.Transcribe(c.Request().Context(), req.AudioURL, req.MimeType)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transcribeResponse{Transcript: transcript})
}
