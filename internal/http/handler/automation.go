package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"masteria.app/panel/internal/http/dto"
	"masteria.app/panel/internal/service"
)

type AutomationHandler struct {
	automationService service.AutomationService
}

func NewAutomationHandler(automationService service.AutomationService) *AutomationHandler {
	return &AutomationHandler{automationService: automationService}
}

func (h *AutomationHandler) List(c *gin.Context) {
	rules, err := h.automationService.List(c.Request.Context(), currentUser(c).CompanyID)
	if err != nil {
		respondError(c, err, "list automation rules")
		return
	}
	c.JSON(http.StatusOK, dto.ToAutomationRuleResponses(rules))
}

func (h *AutomationHandler) Get(c *gin.Context) {
	ruleID, ok := pathID(c, "id")
	if !ok {
		return
	}

	rule, err := h.automationService.Get(c.Request.Context(), currentUser(c).CompanyID, ruleID)
	if err != nil {
		respondError(c, err, "get automation rule")
		return
	}
	c.JSON(http.StatusOK, dto.ToAutomationRuleResponse(rule))
}

func (h *AutomationHandler) Create(c *gin.Context) {
	var req dto.AutomationRuleRequest
	if !bindJSON(c, &req) {
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	rule, err := h.automationService.Create(c.Request.Context(), currentUser(c).CompanyID, req.RuleDefinition, active)
	if err != nil {
		respondError(c, err, "create automation rule")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAutomationRuleResponse(rule))
}

// Update replaces the whole definition; activation goes through SetActive.
func (h *AutomationHandler) Update(c *gin.Context) {
	ruleID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.AutomationRuleRequest
	if !bindJSON(c, &req) {
		return
	}

	rule, err := h.automationService.Update(c.Request.Context(), currentUser(c).CompanyID, ruleID, req.RuleDefinition)
	if err != nil {
		respondError(c, err, "update automation rule")
		return
	}
	c.JSON(http.StatusOK, dto.ToAutomationRuleResponse(rule))
}

func (h *AutomationHandler) SetActive(c *gin.Context) {
	ruleID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.SetActiveRequest
	if !bindJSON(c, &req) {
		return
	}

	rule, err := h.automationService.SetActive(c.Request.Context(), currentUser(c).CompanyID, ruleID, *req.IsActive)
	if err != nil {
		respondError(c, err, "update automation rule")
		return
	}
	c.JSON(http.StatusOK, dto.ToAutomationRuleResponse(rule))
}

func (h *AutomationHandler) Delete(c *gin.Context) {
	ruleID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.automationService.Delete(c.Request.Context(), currentUser(c).CompanyID, ruleID); err != nil {
		respondError(c, err, "delete automation rule")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AutomationHandler) Logs(c *gin.Context) {
	ruleID, ok := pathID(c, "id")
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))

	logs, err := h.automationService.Logs(c.Request.Context(), currentUser(c).CompanyID, ruleID, int32(limit))
	if err != nil {
		respondError(c, err, "list automation logs")
		return
	}
	c.JSON(http.StatusOK, dto.ToAutomationLogResponses(logs))
}

func (h *AutomationHandler) Schema(c *gin.Context) {
	schema, err := h.automationService.Schema()
	if err != nil {
		respondError(c, err, "build rule schema")
		return
	}
	c.Data(http.StatusOK, "application/schema+json", schema)
}
