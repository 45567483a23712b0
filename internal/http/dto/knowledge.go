package dto

import (
	"time"

	"masteria.app/panel/internal/model"
)

type AddDocumentRequest struct {
	Title   string `json:"title" binding:"required,min=1,max=255"`
	Content string `json:"content" binding:"required"`
}

type DocumentResponse struct {
	ID         int64     `json:"id,string"`
	Title      string    `json:"title"`
	ChunkCount int64     `json:"chunk_count"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToDocumentResponse(d *model.KnowledgeDocument) *DocumentResponse {
	return &DocumentResponse{
		ID:         d.ID,
		Title:      d.Title,
		ChunkCount: d.ChunkCount,
		CreatedAt:  d.CreatedAt,
	}
}

func ToDocumentResponses(docs []model.KnowledgeDocument) []*DocumentResponse {
	out := make([]*DocumentResponse, 0, len(docs))
	for i := range docs {
		out = append(out, ToDocumentResponse(&docs[i]))
	}
	return out
}

type SearchMatchResponse struct {
	DocumentID int64   `json:"document_id,string"`
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	Score      float64 `json:"score"`
}

func ToSearchMatchResponses(matches []model.KnowledgeMatch) []SearchMatchResponse {
	out := make([]SearchMatchResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, SearchMatchResponse{
			DocumentID: m.DocumentID,
			Title:      m.Title,
			Content:    m.Content,
			Score:      m.Score,
		})
	}
	return out
}
