package service_test

import (
	"context"
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"masteria.app/panel/internal/service"
)

var _ = Describe("KnowledgeService", func() {
	var (
		ctx      context.Context
		ks       *mockKnowledgeStore
		embedder *mockEmbedder
		svc      service.KnowledgeService
	)

	BeforeEach(func() {
		ctx = context.Background()
		ks = &mockKnowledgeStore{}
		embedder = &mockEmbedder{}
		svc = service.NewKnowledgeService(ks, &mockKnowledgeTx{ks: ks}, embedder)
	})

	It("is unavailable without a vector database or embedder", func() {
		disabled := service.NewKnowledgeService(nil, nil, nil)

		_, err := disabled.AddDocument(ctx, 1, "t", "c")
		Expect(errors.Is(err, service.ErrUnavailable)).To(BeTrue())
		_, err = disabled.Search(ctx, 1, "q", 5)
		Expect(errors.Is(err, service.ErrUnavailable)).To(BeTrue())
		_, err = disabled.List(ctx, 1)
		Expect(errors.Is(err, service.ErrUnavailable)).To(BeTrue())
	})

	It("keeps short paragraphs together", func() {
		doc, err := svc.AddDocument(ctx, 7, "FAQ", "Horário: 9h às 18h.\n\nAceitamos PIX.")
		Expect(err).NotTo(HaveOccurred())
		Expect(doc.ChunkCount).To(Equal(int64(1)))
		Expect(ks.chunks).To(HaveLen(1))
		Expect(ks.chunks[0].Content).To(Equal("Horário: 9h às 18h.\n\nAceitamos PIX."))
		Expect(ks.chunks[0].CompanyID).To(Equal(int64(7)))
		Expect(ks.chunks[0].DocumentID).To(Equal(doc.ID))
	})

	It("splits long content into chunks of at most 1000 characters", func() {
		para := strings.Repeat("palavra ", 100) // 800 chars
		content := para + "\n\n" + para + "\n\n" + strings.Repeat("x", 2500)

		doc, err := svc.AddDocument(ctx, 7, "Manual", content)
		Expect(err).NotTo(HaveOccurred())
		Expect(doc.ChunkCount).To(BeNumerically(">=", 5))
		for i, c := range ks.chunks {
			Expect(len([]rune(c.Content))).To(BeNumerically("<=", 1000))
			Expect(c.Index).To(Equal(int32(i)))
		}
		Expect(embedder.inputs).To(HaveLen(1))
		Expect(embedder.inputs[0]).To(HaveLen(len(ks.chunks)))
	})

	It("rejects empty content", func() {
		_, err := svc.AddDocument(ctx, 7, "Empty", " \n\n ")
		Expect(errors.Is(err, service.ErrInvalidInput)).To(BeTrue())
	})

	It("stores nothing and answers unavailable when the provider is down", func() {
		embedder.err = errors.New("connection reset")
		_, err := svc.AddDocument(ctx, 7, "FAQ", "content")
		Expect(errors.Is(err, service.ErrUnavailable)).To(BeTrue())
		Expect(err.Error()).NotTo(ContainSubstring("connection reset"))
		Expect(ks.docs).To(BeEmpty())
	})

	It("does not report a cancelled request as unavailable", func() {
		embedder.err = context.Canceled
		_, err := svc.Search(ctx, 7, "horário", 5)
		Expect(errors.Is(err, service.ErrUnavailable)).To(BeFalse())
		Expect(errors.Is(err, context.Canceled)).To(BeTrue())
	})

	It("embeds the query and clamps the limit", func() {
		matches, err := svc.Search(ctx, 7, "horário", 100)
		Expect(err).NotTo(HaveOccurred())
		Expect(matches).To(HaveLen(1))
		Expect(ks.lastLimit).To(Equal(int32(20)))

		_, err = svc.Search(ctx, 7, "horário", 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(ks.lastLimit).To(Equal(int32(5)))
	})
})
