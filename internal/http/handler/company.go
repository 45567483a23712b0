package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"masteria.app/panel/internal/http/dto"
	"masteria.app/panel/internal/service"
)

type CompanyHandler struct {
	companyService service.CompanyService
	publicURL      string
}

// publicURL is the externally reachable base of this API, used to show the
// Kommo webhook address after a secret rotation.
func NewCompanyHandler(companyService service.CompanyService, publicURL string) *CompanyHandler {
	return &CompanyHandler{companyService: companyService, publicURL: strings.TrimRight(publicURL, "/")}
}

func (h *CompanyHandler) Get(c *gin.Context) {
	company, err := h.companyService.Get(c.Request.Context(), currentUser(c).CompanyID)
	if err != nil {
		respondError(c, err, "get company")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

func (h *CompanyHandler) Update(c *gin.Context) {
	var req dto.UpdateCompanyRequest
	if !bindJSON(c, &req) {
		return
	}

	company, err := h.companyService.Update(c.Request.Context(), currentUser(c).CompanyID, req.Name)
	if err != nil {
		respondError(c, err, "update company")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

func (h *CompanyHandler) RotateWebhookSecret(c *gin.Context) {
	company, err := h.companyService.RotateWebhookSecret(c.Request.Context(), currentUser(c).CompanyID)
	if err != nil {
		respondError(c, err, "rotate webhook secret")
		return
	}

	c.JSON(http.StatusOK, dto.WebhookSecretResponse{
		WebhookSecret: company.WebhookSecret,
		WebhookURL:    fmt.Sprintf("%s/webhooks/kommo/%d", h.publicURL, company.ID),
	})
}
