package model

import "time"

type KnowledgeDocument struct {
	ID         int64     `json:"id"`
	CompanyID  int64     `json:"company_id"`
	Title      string    `json:"title"`
	ChunkCount int64     `json:"chunk_count"`
	CreatedAt  time.Time `json:"created_at"`
}

type KnowledgeChunk struct {
	ID         int64
	DocumentID int64
	CompanyID  int64
	Index      int32
	Content    string
	Embedding  []float32
}

type KnowledgeMatch struct {
	ChunkID    int64   `json:"chunk_id"`
	DocumentID int64   `json:"document_id"`
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	Score      float64 `json:"score"`
}
