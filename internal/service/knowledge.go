package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"masteria.app/panel/common/id"
	"masteria.app/panel/common/llm"
	"masteria.app/panel/internal/model"
	"masteria.app/panel/internal/store"
)

const (
	chunkSize          = 1000
	maxDocumentChars   = 200_000
	defaultSearchLimit = 5
	maxSearchLimit     = 20
)

type KnowledgeService interface {
	AddDocument(ctx context.Context, companyID int64, title, content string) (*model.KnowledgeDocument, error)
	List(ctx context.Context, companyID int64) ([]model.KnowledgeDocument, error)
	Delete(ctx context.Context, companyID, id int64) error
	Search(ctx context.Context, companyID int64, query string, limit int) ([]model.KnowledgeMatch, error)
}

type knowledgeService struct {
	knowledge store.KnowledgeStore
	txRunner  KnowledgeTxRunner
	embedder  llm.Embedder
}

// NewKnowledgeService returns a service whose every call fails with
// ErrUnavailable when the vector database or the embedder is missing.
func NewKnowledgeService(knowledge store.KnowledgeStore, txRunner KnowledgeTxRunner, embedder llm.Embedder) KnowledgeService {
	return &knowledgeService{
		knowledge: knowledge,
		txRunner:  txRunner,
		embedder:  embedder,
	}
}

func (s *knowledgeService) enabled() error {
	if s.knowledge == nil || s.txRunner == nil || s.embedder == nil {
		return fmt.Errorf("%w: knowledge base needs VECTOR_DATABASE_URL and OPENAI_API_KEY", ErrUnavailable)
	}
	return nil
}

func (s *knowledgeService) AddDocument(ctx context.Context, companyID int64, title, content string) (*model.KnowledgeDocument, error) {
	if err := s.enabled(); err != nil {
		return nil, err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(content) > maxDocumentChars {
		return nil, fmt.Errorf("%w: content exceeds %d characters", ErrInvalidInput, maxDocumentChars)
	}

	chunks := splitChunks(content, chunkSize)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("%w: content is empty", ErrInvalidInput)
	}

	embeddings, err := s.embedder.Embed(ctx, chunks)
	if err != nil {
		return nil, embedFailure(ctx, "embedding document", err)
	}
	if len(embeddings) != len(chunks) {
		return nil, fmt.Errorf("embedding document: got %d vectors for %d chunks", len(embeddings), len(chunks))
	}

	doc := &model.KnowledgeDocument{
		ID:         id.New(),
		CompanyID:  companyID,
		Title:      title,
		ChunkCount: int64(len(chunks)),
	}

	err = s.txRunner.WithTx(ctx, func(ks store.KnowledgeStore) error {
		if err := ks.CreateDocument(ctx, doc); err != nil {
			return fmt.Errorf("creating document: %w", err)
		}
		for i, text := range chunks {
			if err := ks.CreateChunk(ctx, model.KnowledgeChunk{
				ID:         id.New(),
				DocumentID: doc.ID,
				CompanyID:  companyID,
				Index:      int32(i),
				Content:    text,
				Embedding:  embeddings[i],
			}); err != nil {
				return fmt.Errorf("creating chunk %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to store knowledge document", "error", err)
		return nil, err
	}

	slog.InfoContext(ctx, "knowledge document added",
		"document_id", doc.ID,
		"chunks", len(chunks),
		"model", s.embedder.Model())
	return doc, nil
}

func (s *knowledgeService) List(ctx context.Context, companyID int64) ([]model.KnowledgeDocument, error) {
	if err := s.enabled(); err != nil {
		return nil, err
	}
	docs, err := s.knowledge.ListDocuments(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	return docs, nil
}

func (s *knowledgeService) Delete(ctx context.Context, companyID, docID int64) error {
	if err := s.enabled(); err != nil {
		return err
	}
	if err := s.knowledge.DeleteDocument(ctx, companyID, docID); err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}
	return nil
}

func (s *knowledgeService) Search(ctx context.Context, companyID int64, query string, limit int) ([]model.KnowledgeMatch, error) {
	if err := s.enabled(); err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: q is required", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	limit = min(limit, maxSearchLimit)

	embeddings, err := s.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, embedFailure(ctx, "embedding query", err)
	}
	if len(embeddings) != 1 {
		return nil, fmt.Errorf("embedding query: got %d vectors", len(embeddings))
	}

	matches, err := s.knowledge.Search(ctx, companyID, embeddings[0], int32(limit))
	if err != nil {
		return nil, fmt.Errorf("searching knowledge: %w", err)
	}
	return matches, nil
}

// splitChunks packs paragraphs into chunks of at most size runes. A paragraph
// longer than size is cut at the last space before the limit.
func splitChunks(content string, size int) []string {
	var (
		chunks  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
		}
	}

	for _, para := range strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		for _, piece := range splitLong(para, size) {
			curLen := utf8.RuneCountInString(current.String())
			if curLen > 0 && curLen+2+utf8.RuneCountInString(piece) > size {
				flush()
			}
			if current.Len() > 0 {
				current.WriteString("\n\n")
			}
			current.WriteString(piece)
		}
	}
	flush()

	return chunks
}

func splitLong(text string, size int) []string {
	var pieces []string
	runes := []rune(text)
	for len(runes) > size {
		cut := size
		for i := size; i > size/2; i-- {
			if runes[i] == ' ' || runes[i] == '\n' {
				cut = i
				break
			}
		}
		pieces = append(pieces, strings.TrimSpace(string(runes[:cut])))
		runes = []rune(strings.TrimSpace(string(runes[cut:])))
	}
	if len(runes) > 0 {
		pieces = append(pieces, string(runes))
	}
	return pieces
}

// embedFailure turns transient provider errors into ErrUnavailable so the
// client sees a 503 it can retry. The provider's message is only logged.
func embedFailure(ctx context.Context, op string, err error) error {
	if llm.IsRetryable(ctx, err) {
		slog.WarnContext(ctx, "embeddings provider unavailable", "op", op, "error", err)
		return fmt.Errorf("%w: embeddings provider unavailable, try again later", ErrUnavailable)
	}
	return fmt.Errorf("%s: %w", op, err)
}
