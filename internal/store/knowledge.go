package store

import (
	"context"

	"masteria.app/panel/core/db/sqlc"
	"masteria.app/panel/internal/model"
)

type knowledgeStore struct {
	queries *sqlc.Queries
}

func newKnowledgeStore(queries *sqlc.Queries) KnowledgeStore {
	return &knowledgeStore{queries: queries}
}

func (s *knowledgeStore) CreateDocument(ctx context.Context, doc *model.KnowledgeDocument) error {
	row, err := s.queries.CreateKnowledgeDocument(ctx, sqlc.CreateKnowledgeDocumentParams{
		ID:        doc.ID,
		CompanyID: doc.CompanyID,
		Title:     doc.Title,
	})
	if err != nil {
		return mapErr(err)
	}
	doc.CreatedAt = row.CreatedAt.Time
	return nil
}

func (s *knowledgeStore) CreateChunk(ctx context.Context, chunk model.KnowledgeChunk) error {
	return mapErr(s.queries.CreateKnowledgeChunk(ctx, sqlc.CreateKnowledgeChunkParams{
		ID:         chunk.ID,
		DocumentID: chunk.DocumentID,
		CompanyID:  chunk.CompanyID,
		ChunkIndex: chunk.Index,
		Content:    chunk.Content,
		Embedding:  encodeVector(chunk.Embedding),
	}))
}

func (s *knowledgeStore) ListDocuments(ctx context.Context, companyID int64) ([]model.KnowledgeDocument, error) {
	rows, err := s.queries.ListKnowledgeDocuments(ctx, companyID)
	if err != nil {
		return nil, err
	}
	docs := make([]model.KnowledgeDocument, len(rows))
	for i, row := range rows {
		docs[i] = model.KnowledgeDocument{
			ID:         row.ID,
			CompanyID:  row.CompanyID,
			Title:      row.Title,
			ChunkCount: row.ChunkCount,
			CreatedAt:  row.CreatedAt.Time,
		}
	}
	return docs, nil
}

func (s *knowledgeStore) DeleteDocument(ctx context.Context, companyID, id int64) error {
	return affected(s.queries.DeleteKnowledgeDocument(ctx, sqlc.DeleteKnowledgeDocumentParams{
		ID:        id,
		CompanyID: companyID,
	}))
}

func (s *knowledgeStore) Search(ctx context.Context, companyID int64, embedding []float32, limit int32) ([]model.KnowledgeMatch, error) {
	rows, err := s.queries.SearchKnowledgeChunks(ctx, sqlc.SearchKnowledgeChunksParams{
		Embedding:  encodeVector(embedding),
		CompanyID:  companyID,
		MaxResults: limit,
	})
	if err != nil {
		return nil, err
	}
	matches := make([]model.KnowledgeMatch, len(rows))
	for i, row := range rows {
		matches[i] = model.KnowledgeMatch{
			ChunkID:    row.ID,
			DocumentID: row.DocumentID,
			Title:      row.Title,
			Content:    row.Content,
			Score:      row.Score,
		}
	}
	return matches, nil
}
