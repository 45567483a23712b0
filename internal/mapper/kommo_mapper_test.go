package mapper_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"masteria.app/panel/internal/mapper"
)

var _ mapper.EventMapper = (*mapper.KommoEventMapper)(nil)

var _ = Describe("KommoEventMapper", func() {
	var (
		m   *mapper.KommoEventMapper
		ctx context.Context
	)

	BeforeEach(func() {
		m = mapper.NewKommoEventMapper()
		ctx = context.Background()
	})

	Describe("Map", func() {
		It("derives entity and action from the body", func() {
			body := map[string]any{
				"account": map[string]any{"subdomain": "acme"},
				"leads":   map[string]any{"status": []any{map[string]any{"id": "1"}}},
			}
			eventType, err := m.Map(ctx, body, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(eventType).To(Equal("leads.status"))
		})

		It("prefers the explicit header", func() {
			eventType, err := m.Map(ctx, map[string]any{}, map[string]string{mapper.HeaderKommoEvent: "contacts.add"})
			Expect(err).NotTo(HaveOccurred())
			Expect(eventType).To(Equal("contacts.add"))
		})

		It("is deterministic with several entities", func() {
			body := map[string]any{
				"leads":    map[string]any{"update": []any{}},
				"contacts": map[string]any{"add": []any{}},
			}
			eventType, err := m.Map(ctx, body, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(eventType).To(Equal("contacts.add"))
		})

		It("errors when no entity is present", func() {
			_, err := m.Map(ctx, map[string]any{"account": map[string]any{}}, nil)
			Expect(err).To(MatchError(mapper.ErrUnknownEvent))
		})

		It("handles a nil body", func() {
			_, err := m.Map(ctx, nil, nil)
			Expect(err).To(MatchError(mapper.ErrUnknownEvent))
		})
	})

	Describe("DecodeKommoBody", func() {
		It("expands bracketed form keys", func() {
			body := []byte("leads%5Bstatus%5D%5B0%5D%5Bid%5D=7&leads%5Bstatus%5D%5B0%5D%5Bstatus_id%5D=142&account%5Bsubdomain%5D=acme")
			out, err := mapper.DecodeKommoBody("application/x-www-form-urlencoded", body)
			Expect(err).NotTo(HaveOccurred())

			Expect(out).To(HaveKeyWithValue("account", map[string]any{"subdomain": "acme"}))
			leads := out["leads"].(map[string]any)
			statuses := leads["status"].([]any)
			Expect(statuses).To(HaveLen(1))
			Expect(statuses[0]).To(Equal(map[string]any{"id": "7", "status_id": "142"}))
		})

		It("keeps sparse numeric keys as a map", func() {
			body := []byte("tags%5B3%5D=vip")
			out, err := mapper.DecodeKommoBody("", body)
			Expect(err).NotTo(HaveOccurred())
			Expect(out["tags"]).To(Equal(map[string]any{"3": "vip"}))
		})

		It("accepts JSON", func() {
			out, err := mapper.DecodeKommoBody("application/json; charset=utf-8", []byte(`{"leads":{"add":[{"id":1}]}}`))
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(HaveKey("leads"))
		})

		It("rejects malformed JSON", func() {
			_, err := mapper.DecodeKommoBody("application/json", []byte(`{`))
			Expect(err).To(HaveOccurred())
		})
	})
})
