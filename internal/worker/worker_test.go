package worker_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"masteria.app/panel/internal/queue"
	"masteria.app/panel/internal/worker"
)

var _ = Describe("Worker", func() {
	var (
		ctx       context.Context
		consumer  *mockConsumer
		processor *mockProcessor
		w         *worker.Worker
	)

	kommoMsg := func(id string, attempt int) queue.Message {
		company, event := int64(1), int64(2)
		return queue.Message{
			ID:           id,
			TaskType:     queue.TaskTypeKommoEvent,
			Attempt:      attempt,
			CompanyID:    &company,
			KommoEventID: &event,
		}
	}

	BeforeEach(func() {
		ctx = context.Background()
		consumer = &mockConsumer{}
		processor = &mockProcessor{}
		w = worker.New(consumer, map[queue.TaskType]worker.Processor{
			queue.TaskTypeKommoEvent: processor,
		}, worker.Config{MaxAttempts: 3})
	})

	It("acks a processed message", func() {
		Expect(w.Handle(ctx, kommoMsg("1-0", 1))).To(Succeed())
		Expect(processor.calls).To(Equal(1))
		Expect(consumer.acked).To(ConsistOf("1-0"))
	})

	It("requeues a failure below max attempts", func() {
		processor.processFn = func(context.Context, queue.Message) error { return errors.New("db down") }

		Expect(w.Handle(ctx, kommoMsg("1-0", 1))).To(MatchError("db down"))
		Expect(consumer.acked).To(BeEmpty())
		Expect(consumer.requeued).To(ConsistOf("1-0"))
		Expect(consumer.dlq).To(BeEmpty())
	})

	It("sends to the DLQ at max attempts", func() {
		processor.processFn = func(context.Context, queue.Message) error { return errors.New("db down") }

		Expect(w.Handle(ctx, kommoMsg("1-0", 3))).To(HaveOccurred())
		Expect(consumer.dlq).To(ConsistOf("1-0"))
		Expect(consumer.requeued).To(BeEmpty())
	})

	It("turns a panic into a retry", func() {
		processor.processFn = func(context.Context, queue.Message) error { panic("nil map") }

		Expect(w.Handle(ctx, kommoMsg("1-0", 1))).To(MatchError(ContainSubstring("panic")))
		Expect(consumer.requeued).To(ConsistOf("1-0"))
	})

	It("dead-letters task types without a processor", func() {
		user := int64(3)
		msg := queue.Message{ID: "9-0", TaskType: queue.TaskTypePasswordResetEmail, UserID: &user, Attempt: 1}

		Expect(w.Handle(ctx, msg)).To(Succeed())
		Expect(consumer.dlq).To(ConsistOf("9-0"))
		Expect(consumer.acked).To(BeEmpty())
	})

	It("processes batches until stopped", func() {
		delivered := false
		consumer.readFn = func(context.Context) ([]queue.Message, error) {
			if delivered {
				time.Sleep(5 * time.Millisecond)
				return nil, nil
			}
			delivered = true
			return []queue.Message{kommoMsg("1-0", 1), kommoMsg("2-0", 1)}, nil
		}

		done := make(chan error, 1)
		go func() { done <- w.Run(ctx) }()

		Eventually(consumer.ackCount).Should(Equal(2))
		w.Stop()
		Eventually(done).Should(Receive(BeNil()))
	})
})
