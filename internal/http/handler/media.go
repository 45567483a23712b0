package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"masteria.app/panel/internal/http/dto"
	"masteria.app/panel/internal/service"
)

type MediaHandler struct {
	mediaService service.MediaService
}

func NewMediaHandler(mediaService service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

func (h *MediaHandler) UploadURL(c *gin.Context) {
	var req dto.UploadURLRequest
	if !bindJSON(c, &req) {
		return
	}

	upload, err := h.mediaService.UploadURL(c.Request.Context(), currentUser(c).CompanyID, req.Filename, req.ContentType)
	if err != nil {
		respondError(c, err, "create upload url")
		return
	}
	c.JSON(http.StatusOK, dto.ToUploadURLResponse(upload))
}
