package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"masteria.app/panel/internal/http/dto"
	"masteria.app/panel/internal/service"
)

type CampaignHandler struct {
	campaignService service.CampaignService
}

func NewCampaignHandler(campaignService service.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService}
}

func (h *CampaignHandler) List(c *gin.Context) {
	campaigns, err := h.campaignService.List(c.Request.Context(), currentUser(c).CompanyID)
	if err != nil {
		respondError(c, err, "list campaigns")
		return
	}
	c.JSON(http.StatusOK, dto.ToCampaignResponses(campaigns))
}

func (h *CampaignHandler) Get(c *gin.Context) {
	campaignID, ok := pathID(c, "id")
	if !ok {
		return
	}

	campaign, err := h.campaignService.Get(c.Request.Context(), currentUser(c).CompanyID, campaignID)
	if err != nil {
		respondError(c, err, "get campaign")
		return
	}
	c.JSON(http.StatusOK, dto.ToCampaignResponse(campaign))
}

func (h *CampaignHandler) Create(c *gin.Context) {
	var req dto.CampaignRequest
	if !bindJSON(c, &req) {
		return
	}

	campaign, err := h.campaignService.Create(c.Request.Context(), currentUser(c).CompanyID, campaignParams(req))
	if err != nil {
		respondError(c, err, "create campaign")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCampaignResponse(campaign))
}

func (h *CampaignHandler) Update(c *gin.Context) {
	campaignID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CampaignRequest
	if !bindJSON(c, &req) {
		return
	}

	campaign, err := h.campaignService.Update(c.Request.Context(), currentUser(c).CompanyID, campaignID, campaignParams(req))
	if err != nil {
		respondError(c, err, "update campaign")
		return
	}
	c.JSON(http.StatusOK, dto.ToCampaignResponse(campaign))
}

func (h *CampaignHandler) Delete(c *gin.Context) {
	campaignID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.campaignService.Delete(c.Request.Context(), currentUser(c).CompanyID, campaignID); err != nil {
		respondError(c, err, "delete campaign")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CampaignHandler) Schedule(c *gin.Context) {
	campaignID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.ScheduleCampaignRequest
	if !bindJSON(c, &req) {
		return
	}

	campaign, err := h.campaignService.Schedule(c.Request.Context(), currentUser(c).CompanyID, campaignID, req.ScheduledAt)
	if err != nil {
		respondError(c, err, "schedule campaign")
		return
	}
	c.JSON(http.StatusOK, dto.ToCampaignResponse(campaign))
}

func (h *CampaignHandler) Cancel(c *gin.Context) {
	campaignID, ok := pathID(c, "id")
	if !ok {
		return
	}

	campaign, err := h.campaignService.Cancel(c.Request.Context(), currentUser(c).CompanyID, campaignID)
	if err != nil {
		respondError(c, err, "cancel campaign")
		return
	}
	c.JSON(http.StatusOK, dto.ToCampaignResponse(campaign))
}

func (h *CampaignHandler) Report(c *gin.Context) {
	report, err := h.campaignService.Report(c.Request.Context(), currentUser(c).CompanyID)
	if err != nil {
		respondError(c, err, "build campaign report")
		return
	}
	c.JSON(http.StatusOK, report)
}

func campaignParams(req dto.CampaignRequest) service.CampaignParams {
	return service.CampaignParams{
		Name:         req.Name,
		Message:      req.Message,
		ConnectionID: req.ConnectionID,
	}
}
