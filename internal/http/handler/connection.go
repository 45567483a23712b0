package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"masteria.app/panel/internal/http/dto"
	"masteria.app/panel/internal/service"
)

type ConnectionHandler struct {
	connectionService service.ConnectionService
}

func NewConnectionHandler(connectionService service.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{connectionService: connectionService}
}

// List accepts ?active=true to hide disabled numbers.
func (h *ConnectionHandler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	conns, err := h.connectionService.List(c.Request.Context(), currentUser(c).CompanyID, activeOnly)
	if err != nil {
		respondError(c, err, "list connections")
		return
	}
	c.JSON(http.StatusOK, dto.ToConnectionResponses(conns))
}

func (h *ConnectionHandler) Get(c *gin.Context) {
	connID, ok := pathID(c, "id")
	if !ok {
		return
	}

	conn, err := h.connectionService.Get(c.Request.Context(), currentUser(c).CompanyID, connID)
	if err != nil {
		respondError(c, err, "get connection")
		return
	}
	c.JSON(http.StatusOK, dto.ToConnectionResponse(conn))
}

func (h *ConnectionHandler) Create(c *gin.Context) {
	var req dto.CreateConnectionRequest
	if !bindJSON(c, &req) {
		return
	}

	conn, err := h.connectionService.Create(c.Request.Context(), currentUser(c).CompanyID, service.ConnectionParams{
		Name:               &req.Name,
		ConnectionType:     req.ConnectionType,
		PhoneNumber:        &req.PhoneNumber,
		PhoneNumberID:      req.PhoneNumberID,
		WabaID:             req.WabaID,
		AccessToken:        req.AccessToken,
		WebhookVerifyToken: req.WebhookVerifyToken,
	})
	if err != nil {
		respondError(c, err, "create connection")
		return
	}
	c.JSON(http.StatusCreated, dto.ToConnectionResponse(conn))
}

func (h *ConnectionHandler) Update(c *gin.Context) {
	connID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateConnectionRequest
	if !bindJSON(c, &req) {
		return
	}

	conn, err := h.connectionService.Update(c.Request.Context(), currentUser(c).CompanyID, connID, service.ConnectionParams{
		Name:               req.Name,
		PhoneNumber:        req.PhoneNumber,
		PhoneNumberID:      req.PhoneNumberID,
		WabaID:             req.WabaID,
		AccessToken:        req.AccessToken,
		WebhookVerifyToken: req.WebhookVerifyToken,
	})
	if err != nil {
		respondError(c, err, "update connection")
		return
	}
	c.JSON(http.StatusOK, dto.ToConnectionResponse(conn))
}

func (h *ConnectionHandler) SetActive(c *gin.Context) {
	connID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.SetActiveRequest
	if !bindJSON(c, &req) {
		return
	}

	conn, err := h.connectionService.SetActive(c.Request.Context(), currentUser(c).CompanyID, connID, *req.IsActive)
	if err != nil {
		respondError(c, err, "update connection")
		return
	}
	c.JSON(http.StatusOK, dto.ToConnectionResponse(conn))
}

func (h *ConnectionHandler) Delete(c *gin.Context) {
	connID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.connectionService.Delete(c.Request.Context(), currentUser(c).CompanyID, connID); err != nil {
		respondError(c, err, "delete connection")
		return
	}
	c.Status(http.StatusNoContent)
}
