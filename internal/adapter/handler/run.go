package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/voice-transcriber/internal/adapter/dto/run"
	"github.com/johnquangdev/voice-transcriber/internal/adapter/presenter"
	"github.com/johnquangdev/voice-transcriber/internal/domain/entities"
	aiUsecase "github.com/johnquangdev/voice-transcriber/internal/usecase/ai"
)

// EventSource reads buffered pipeline events
type EventSource interface {
	Since(seq int64) []entities.PipelineEvent
	LastSeq() int64
}

// Run handles pipeline submission and status requests
type Run struct {
	service aiUsecase.Service
	events  EventSource
	logger  *zap.Logger
}

// NewRunHandler creates a new run handler
func NewRunHandler(service aiUsecase.Service, events EventSource, logger *zap.Logger) *Run {
	return &Run{
		service: service,
		events:  events,
		logger:  logger,
	}
}

// SubmitRun handles POST /v1/runs
// @Summary      Submit audio for analysis
// @Description  Starts transcription of a remote URL or an uploaded file, then summary and action item extraction. Supersedes any run in progress.
// @Tags         Runs
// @Accept       json
// @Produce      json
// @Param        request  body      run.SubmitRunRequest  true  "Audio reference and keywords"
// @Success      202      {object}  common.SuccessResponse{data=run.SubmitRunResponse}
// @Failure      400      {object}  common.ErrorResponse  "Neither or both audio variants set"
// @Router       /runs [post]
func (h *Run) SubmitRun(c echo.Context) error {
	var req run.SubmitRunRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	var audio entities.AudioReference
	if req.FileHandle != "" {
		audio.SetFile(req.FileHandle)
	}
	if req.AudioURL != "" {
		audio.SetURL(req.AudioURL)
	}

	// context of the request is only used for validation; the run outlives it
	pr, err := h.service.Submit(c.Request().Context(), audio, req.Keywords)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleStatus(h.logger, c, http.StatusAccepted, presenter.ToSubmitRunResponse(pr))
}

// CurrentRun handles GET /v1/runs/current
// @Summary      Current transcript context
// @Description  Returns the latest run with its transcript and whichever artifacts have settled
// @Tags         Runs
// @Produce      json
// @Success      200  {object}  common.SuccessResponse{data=run.RunResponse}
// @Router       /runs/current [get]
func (h *Run) CurrentRun(c echo.Context) error {
	return HandleSuccess(h.logger, c, presenter.ToRunResponse(h.service.Snapshot(), h.service.Processing()))
}

// ListEvents handles GET /v1/events
// @Summary      Pipeline events
// @Description  Lists pipeline events with a sequence number greater than since
// @Tags         Runs
// @Produce      json
// @Param        since  query     int  false  "Last sequence already seen"
// @Success      200    {object}  common.SuccessResponse{data=run.EventsResponse}
// @Failure      400    {object}  common.ErrorResponse
// @Router       /events [get]
func (h *Run) ListEvents(c echo.Context) error {
	var q run.EventsQuery
	if err := bindAndValidate(c, &q); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToEventsResponse(h.events.Since(q.Since), h.events.LastSeq()))
}
