package handler

import (
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/voice-transcriber/errors"
	"github.com/johnquangdev/voice-transcriber/internal/adapter/dto/upload"
	"github.com/johnquangdev/voice-transcriber/internal/domain/repositories"
)

const bytesPerMB = 1 << 20

// Upload stores audio files so they can be submitted by handle
type Upload struct {
	store    repositories.AudioStore
	maxBytes int64
	logger   *zap.Logger
}

// NewUploadHandler creates a new upload handler. maxMB <= 0 disables the limit.
func NewUploadHandler(store repositories.AudioStore, maxMB int64, logger *zap.Logger) *Upload {
	return &Upload{
		store:    store,
		maxBytes: maxMB * bytesPerMB,
		logger:   logger,
	}
}

// UploadAudio handles POST /v1/uploads
// @Summary      Upload audio
// @Description  Stores an audio file and returns the handle to submit as file_handle
// @Tags         Uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Audio file"
// @Success      201   {object}  common.SuccessResponse{data=upload.UploadResponse}
// @Failure      400   {object}  common.ErrorResponse  "Missing file"
// @Failure      413   {object}  common.ErrorResponse  "File too large"
// @Failure      500   {object}  common.ErrorResponse  "Storage failed"
// @Router       /uploads [post]
func (h *Upload) UploadAudio(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("multipart field \"file\" is required"))
	}
	if h.maxBytes > 0 && fh.Size > h.maxBytes {
		return HandleError(h.logger, c, errors.ErrPayloadTooLarge(h.maxBytes/bytesPerMB))
	}

	src, err := fh.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	defer src.Close()

	contentType := fh.Header.Get(echo.HeaderContentType)
	filename := filepath.Base(fh.Filename)

	handle, err := h.store.Save(c.Request().Context(), filename, src, fh.Size, contentType)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrStorageFailed("upload", err))
	}

	if h.logger != nil {
		h.logger.Info("📦 Audio uploaded",
			zap.String("handle", handle),
			zap.String("filename", filename),
			zap.Int64("size", fh.Size),
		)
	}

	return HandleStatus(h.logger, c, http.StatusCreated, &upload.UploadResponse{
		Handle:      handle,
		Filename:    filename,
		Size:        fh.Size,
		ContentType: contentType,
	})
}
