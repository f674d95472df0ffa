package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	templateDTO "github.com/johnquangdev/voice-transcriber/internal/adapter/dto/template"
	"github.com/johnquangdev/voice-transcriber/internal/adapter/presenter"
	templateUsecase "github.com/johnquangdev/voice-transcriber/internal/usecase/template"
)

// Template handles template listing and conversion
type Template struct {
	converter *templateUsecase.Converter
	snapshots SnapshotSource
	logger    *zap.Logger
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(converter *templateUsecase.Converter, snapshots SnapshotSource, logger *zap.Logger) *Template {
	return &Template{
		converter: converter,
		snapshots: snapshots,
		logger:    logger,
	}
}

// ListTemplates handles GET /v1/templates
// @Summary      List templates
// @Tags         Templates
// @Produce      json
// @Success      200  {object}  common.SuccessResponse{data=[]template.TemplateResponse}
// @Router       /templates [get]
func (h *Template) ListTemplates(c echo.Context) error {
	return HandleSuccess(h.logger, c, presenter.ToTemplateResponses(h.converter.Templates()))
}

// Convert handles POST /v1/templates/:id/convert
// @Summary      Convert the transcript
// @Description  Fills the template from the current transcript. An empty model answer yields a fallback document with failed=true.
// @Tags         Templates
// @Accept       json
// @Produce      json
// @Param        id       path      string                   true   "Template ID"
// @Param        request  body      template.ConvertRequest  false  "Keywords"
// @Success      200      {object}  common.SuccessResponse{data=template.ConversionResponse}
// @Failure      404      {object}  common.ErrorResponse  "Unknown template"
// @Failure      412      {object}  common.ErrorResponse  "No transcript yet"
// @Failure      502      {object}  common.ErrorResponse  "Model call failed"
// @Router       /templates/{id}/convert [post]
func (h *Template) Convert(c echo.Context) error {
	var req templateDTO.ConvertRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	conv, err := h.converter.Convert(c.Request().Context(), c.Param("id"), h.snapshots.Snapshot(), req.Keywords)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToConversionResponse(conv))
}
