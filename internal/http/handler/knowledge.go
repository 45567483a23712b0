package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"masteria.app/panel/internal/http/dto"
	"masteria.app/panel/internal/service"
)

type KnowledgeHandler struct {
	knowledgeService service.KnowledgeService
}

func NewKnowledgeHandler(knowledgeService service.KnowledgeService) *KnowledgeHandler {
	return &KnowledgeHandler{knowledgeService: knowledgeService}
}

func (h *KnowledgeHandler) List(c *gin.Context) {
	docs, err := h.knowledgeService.List(c.Request.Context(), currentUser(c).CompanyID)
	if err != nil {
		respondError(c, err, "list documents")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponses(docs))
}

func (h *KnowledgeHandler) Add(c *gin.Context) {
	var req dto.AddDocumentRequest
	if !bindJSON(c, &req) {
		return
	}

	doc, err := h.knowledgeService.AddDocument(c.Request.Context(), currentUser(c).CompanyID, req.Title, req.Content)
	if err != nil {
		respondError(c, err, "add document")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(doc))
}

func (h *KnowledgeHandler) Delete(c *gin.Context) {
	docID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.knowledgeService.Delete(c.Request.Context(), currentUser(c).CompanyID, docID); err != nil {
		respondError(c, err, "delete document")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *KnowledgeHandler) Search(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	matches, err := h.knowledgeService.Search(c.Request.Context(), currentUser(c).CompanyID, c.Query("q"), limit)
	if err != nil {
		respondError(c, err, "search knowledge")
		return
	}
	c.JSON(http.StatusOK, dto.ToSearchMatchResponses(matches))
}
