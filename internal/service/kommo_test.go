package service_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"masteria.app/panel/internal/mapper"
	"masteria.app/panel/internal/model"
	"masteria.app/panel/internal/queue"
	"masteria.app/panel/internal/service"
	"masteria.app/panel/internal/store"
)

var _ = Describe("KommoService", func() {
	var (
		ctx       context.Context
		companies *mockCompanyStore
		events    *mockKommoEventStore
		producer  *mockProducer
		svc       service.KommoService
		hook      service.KommoWebhook
	)

	BeforeEach(func() {
		ctx = context.Background()
		companies = &mockCompanyStore{
			getByIDFn: func(_ context.Context, id int64) (*model.Company, error) {
				if id == 100 {
					return &model.Company{ID: 100, WebhookSecret: "s3cret"}, nil
				}
				return nil, store.ErrNotFound
			},
		}
		events = &mockKommoEventStore{}
		producer = &mockProducer{}
		svc = service.NewKommoService(companies, events, mapper.NewKommoEventMapper(), producer)
		hook = service.KommoWebhook{
			CompanyID:   100,
			Secret:      "s3cret",
			ContentType: "application/x-www-form-urlencoded",
			Body:        []byte("leads%5Badd%5D%5B0%5D%5Bid%5D=7&leads%5Badd%5D%5B0%5D%5Bname%5D=Maria"),
		}
	})

	It("stores the event and enqueues it", func() {
		result, err := svc.Ingest(ctx, hook)

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Enqueued).To(BeTrue())
		Expect(result.Event.EventType).To(Equal("leads.add"))
		Expect(string(result.Event.Payload)).To(ContainSubstring(`"name":"Maria"`))
		Expect(result.Event.DedupeKey).To(HavePrefix("kommo:100:"))

		Expect(producer.tasks).To(HaveLen(1))
		Expect(producer.tasks[0].TaskType).To(Equal(queue.TaskTypeKommoEvent))
		Expect(*producer.tasks[0].KommoEventID).To(Equal(result.Event.ID))
	})

	It("does not enqueue a redelivery of a processed event", func() {
		events.createFn = func(_ context.Context, event *model.KommoEvent) (bool, error) {
			now := time.Now()
			event.ProcessedAt = &now
			return false, nil
		}

		result, err := svc.Ingest(ctx, hook)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Duplicated).To(BeTrue())
		Expect(producer.tasks).To(BeEmpty())
	})

	It("enqueues a redelivery whose first enqueue failed", func() {
		stored := map[string]*model.KommoEvent{}
		events.createFn = func(_ context.Context, event *model.KommoEvent) (bool, error) {
			if existing, ok := stored[event.DedupeKey]; ok {
				*event = *existing
				return false, nil
			}
			copied := *event
			stored[event.DedupeKey] = &copied
			return true, nil
		}

		producer.err = errors.New("redis down")
		_, err := svc.Ingest(ctx, hook)
		Expect(err).To(MatchError(ContainSubstring("redis down")))
		Expect(producer.tasks).To(BeEmpty())

		producer.err = nil
		result, err := svc.Ingest(ctx, hook)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Duplicated).To(BeTrue())
		Expect(result.Enqueued).To(BeTrue())
		Expect(producer.tasks).To(HaveLen(1))
		Expect(*producer.tasks[0].KommoEventID).To(Equal(result.Event.ID))
		Expect(stored).To(HaveLen(1))
	})

	It("derives the same dedupe key for the same body", func() {
		_, _ = svc.Ingest(ctx, hook)
		_, _ = svc.Ingest(ctx, hook)
		Expect(events.created).To(HaveLen(2))
		Expect(events.created[0].DedupeKey).To(Equal(events.created[1].DedupeKey))
	})

	It("rejects a wrong secret", func() {
		hook.Secret = "guess"
		_, err := svc.Ingest(ctx, hook)
		Expect(err).To(MatchError(service.ErrWebhookUnauthorized))
		Expect(events.created).To(BeEmpty())
	})

	It("answers an unknown company like a wrong secret", func() {
		hook.CompanyID = 5
		_, err := svc.Ingest(ctx, hook)
		Expect(err).To(MatchError(service.ErrWebhookUnauthorized))
	})

	It("rejects bodies without a kommo entity", func() {
		hook.Body = []byte("foo=bar")
		_, err := svc.Ingest(ctx, hook)
		Expect(errors.Is(err, service.ErrInvalidInput)).To(BeTrue())
	})

	It("accepts JSON bodies with an explicit event header", func() {
		hook.ContentType = "application/json"
		hook.Body = []byte(`{"talk":{"id":1}}`)
		hook.Headers = map[string]string{mapper.HeaderKommoEvent: "talks.update"}

		result, err := svc.Ingest(ctx, hook)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Event.EventType).To(Equal("talks.update"))
	})

	It("fails when the queue is down so Kommo retries", func() {
		producer.err = errors.New("redis down")
		_, err := svc.Ingest(ctx, hook)
		Expect(err).To(MatchError(ContainSubstring("redis down")))
	})
})
