package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/voice-transcriber/errors"
	"github.com/johnquangdev/voice-transcriber/internal/adapter/dto/chat"
	"github.com/johnquangdev/voice-transcriber/internal/adapter/presenter"
	"github.com/johnquangdev/voice-transcriber/internal/domain/entities"
	chatUsecase "github.com/johnquangdev/voice-transcriber/internal/usecase/chat"
)

// SnapshotSource returns the current transcript context
type SnapshotSource interface {
	Snapshot() entities.Snapshot
}

// Chat handles chat session requests
type Chat struct {
	registry  *chatUsecase.Registry
	snapshots SnapshotSource
	logger    *zap.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(registry *chatUsecase.Registry, snapshots SnapshotSource, logger *zap.Logger) *Chat {
	return &Chat{
		registry:  registry,
		snapshots: snapshots,
		logger:    logger,
	}
}

// CreateSession handles POST /v1/chat/sessions
// @Summary      Open a chat session
// @Description  Opens a session whose log starts with the assistant greeting
// @Tags         Chat
// @Produce      json
// @Success      201  {object}  common.SuccessResponse{data=chat.SessionResponse}
// @Router       /chat/sessions [post]
func (h *Chat) CreateSession(c echo.Context) error {
	s := h.registry.Open()
	return HandleStatus(h.logger, c, http.StatusCreated, presenter.ToSessionResponse(s))
}

// GetSession handles GET /v1/chat/sessions/:id
// @Summary      Get a chat session
// @Tags         Chat
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  common.SuccessResponse{data=chat.SessionResponse}
// @Failure      404  {object}  common.ErrorResponse
// @Router       /chat/sessions/{id} [get]
func (h *Chat) GetSession(c echo.Context) error {
	s, err := h.session(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToSessionResponse(s))
}

// Ask handles POST /v1/chat/sessions/:id/messages
// @Summary      Ask about the transcript
// @Description  Appends the question and returns the assistant answer. Only one question per session may be pending.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        id       path      string           true  "Session ID"
// @Param        request  body      chat.AskRequest  true  "Question"
// @Success      200      {object}  common.SuccessResponse{data=chat.MessageResponse}
// @Failure      400      {object}  common.ErrorResponse
// @Failure      404      {object}  common.ErrorResponse
// @Failure      409      {object}  common.ErrorResponse  "A question is already pending"
// @Failure      412      {object}  common.ErrorResponse  "No transcript yet"
// @Failure      502      {object}  common.ErrorResponse  "Model call failed"
// @Router       /chat/sessions/{id}/messages [post]
func (h *Chat) Ask(c echo.Context) error {
	s, err := h.session(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req chat.AskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	reply, err := s.Ask(c.Request().Context(), req.Question, h.snapshots.Snapshot())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMessageResponse(reply))
}

// DeleteSession handles DELETE /v1/chat/sessions/:id
// @Summary      Close a chat session
// @Tags         Chat
// @Param        id   path  string  true  "Session ID"
// @Success      204
// @Failure      404  {object}  common.ErrorResponse
// @Router       /chat/sessions/{id} [delete]
func (h *Chat) DeleteSession(c echo.Context) error {
	id := c.Param("id")
	if err := h.registry.Close(id); err != nil {
		return HandleError(h.logger, c, errors.ErrSessionNotFound(id))
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Chat) session(c echo.Context) (*chatUsecase.Session, error) {
	id := c.Param("id")
	s, err := h.registry.Get(id)
	if err != nil {
		return nil, errors.ErrSessionNotFound(id)
	}
	return s, nil
}
