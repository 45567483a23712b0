package worker_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"masteria.app/panel/internal/model"
	"masteria.app/panel/internal/queue"
	"masteria.app/panel/internal/store"
	"masteria.app/panel/internal/worker"
)

var _ = Describe("PasswordResetProcessor", func() {
	It("mails the reset link", func() {
		mailer := &mockMailer{}
		p := worker.NewPasswordResetProcessor(mailer)
		user := int64(7)

		err := p.Process(context.Background(), queue.Message{
			TaskType: queue.TaskTypePasswordResetEmail,
			UserID:   &user,
			Email:    "ana@example.com",
			Name:     "Ana",
			ResetURL: "https://panel.example.com/reset-password?token=abc",
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(mailer.sent).To(HaveLen(1))
		Expect(mailer.sent[0].To).To(Equal("ana@example.com"))
		Expect(mailer.sent[0].Body).To(ContainSubstring("Ana"))
		Expect(mailer.sent[0].Body).To(ContainSubstring("https://panel.example.com/reset-password?token=abc"))
	})

	It("retries when the mailer fails", func() {
		mailer := &mockMailer{sendFn: func(context.Context, worker.Email) error { return errors.New("smtp timeout") }}
		p := worker.NewPasswordResetProcessor(mailer)

		Expect(p.Process(context.Background(), queue.Message{Email: "a@b.c"})).To(MatchError(ContainSubstring("smtp timeout")))
	})

	It("log mailer never fails", func() {
		Expect(worker.NewLogMailer(nil).Send(context.Background(), worker.Email{To: "x@y.z"})).To(Succeed())
	})
})

var _ = Describe("KommoEventProcessor", func() {
	var (
		ctx       context.Context
		events    *mockKommoEventStore
		evaluator *mockEvaluator
		p         *worker.KommoEventProcessor
		event     *model.KommoEvent
		msg       queue.Message
	)

	BeforeEach(func() {
		ctx = context.Background()
		event = &model.KommoEvent{
			ID:        42,
			CompanyID: 5,
			EventType: "leads.status",
			Payload:   []byte(`{"leads":{"status":[{"id":"1","status_id":"142"}]}}`),
		}
		events = &mockKommoEventStore{
			getByIDFn: func(context.Context, int64) (*model.KommoEvent, error) { return event, nil },
		}
		evaluator = &mockEvaluator{}
		p = worker.NewKommoEventProcessor(events, evaluator)

		company, eventID := int64(5), int64(42)
		msg = queue.Message{TaskType: queue.TaskTypeKommoEvent, CompanyID: &company, KommoEventID: &eventID}
	})

	It("evaluates rules for the kommo trigger and marks the event processed", func() {
		var gotPayload map[string]any
		evaluator.evaluateFn = func(_ context.Context, companyID int64, _ string, payload map[string]any) ([]model.AutomationLog, error) {
			Expect(companyID).To(Equal(int64(5)))
			gotPayload = payload
			return []model.AutomationLog{{Status: model.AutomationLogDispatched}}, nil
		}

		Expect(p.Process(ctx, msg)).To(Succeed())
		Expect(evaluator.triggers).To(ConsistOf("kommo.leads.status"))
		Expect(gotPayload).To(HaveKey("leads"))
		Expect(events.processed).To(ConsistOf(int64(42)))
	})

	It("skips events that were already processed", func() {
		now := time.Now()
		event.ProcessedAt = &now

		Expect(p.Process(ctx, msg)).To(Succeed())
		Expect(evaluator.triggers).To(BeEmpty())
		Expect(events.processed).To(BeEmpty())
	})

	It("skips events that were deleted", func() {
		events.getByIDFn = func(context.Context, int64) (*model.KommoEvent, error) { return nil, store.ErrNotFound }
		Expect(p.Process(ctx, msg)).To(Succeed())
	})

	It("rejects undecodable payloads without retrying", func() {
		event.Payload = []byte(`not json`)

		Expect(p.Process(ctx, msg)).To(Succeed())
		Expect(events.rejected).To(HaveKey(int64(42)))
		Expect(events.failed).To(BeEmpty())
		Expect(evaluator.triggers).To(BeEmpty())
	})

	It("records the failure and retries when evaluation fails", func() {
		evaluator.evaluateFn = func(context.Context, int64, string, map[string]any) ([]model.AutomationLog, error) {
			return nil, errors.New("rules unavailable")
		}

		Expect(p.Process(ctx, msg)).To(MatchError(ContainSubstring("rules unavailable")))
		Expect(events.failed[42]).To(Equal("rules unavailable"))
		Expect(events.processed).To(BeEmpty())
	})

	It("evaluates the event again when the retry follows a failure", func() {
		calls := 0
		evaluator.evaluateFn = func(context.Context, int64, string, map[string]any) ([]model.AutomationLog, error) {
			calls++
			if calls == 1 {
				return nil, errors.New("rules unavailable")
			}
			return nil, nil
		}

		Expect(p.Process(ctx, msg)).NotTo(Succeed())
		Expect(event.ProcessedAt).To(BeNil())

		Expect(p.Process(ctx, msg)).To(Succeed())
		Expect(calls).To(Equal(2))
		Expect(events.processed).To(ConsistOf(int64(42)))
	})
})
