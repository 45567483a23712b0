package queue_test

import (
	"context"
	"time"

	"github.com/alicebob/miniredis/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"

	"masteria.app/panel/internal/queue"
)

var _ = Describe("Redis stream queue", func() {
	var (
		mr       *miniredis.Miniredis
		client   *redis.Client
		producer queue.Producer
		consumer *queue.RedisConsumer
		ctx      context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		mr = miniredis.RunT(GinkgoT())
		client = redis.NewClient(&redis.Options{Addr: mr.Addr()})
		DeferCleanup(client.Close)

		producer = queue.NewRedisProducer(client, "tasks", nil)

		var err error
		consumer, err = queue.NewRedisConsumer(client, queue.ConsumerConfig{
			Stream:      "tasks",
			Group:       "workers",
			Consumer:    "w1",
			DLQStream:   "tasks_dlq",
			BatchSize:   10,
			Block:       10 * time.Millisecond,
			MaxAttempts: 3,
		})
		Expect(err).NotTo(HaveOccurred())
	})

	kommoTask := func() queue.Task {
		company, event := int64(5), int64(77)
		return queue.Task{
			TaskType:     queue.TaskTypeKommoEvent,
			CompanyID:    &company,
			KommoEventID: &event,
			EventType:    "leads.add",
		}
	}

	It("creating the group twice is fine", func() {
		_, err := queue.NewRedisConsumer(client, consumer.Config())
		Expect(err).NotTo(HaveOccurred())
	})

	It("delivers an enqueued kommo task", func() {
		Expect(producer.Enqueue(ctx, kommoTask())).To(Succeed())

		msgs, err := consumer.Read(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(msgs).To(HaveLen(1))
		Expect(msgs[0].TaskType).To(Equal(queue.TaskTypeKommoEvent))
		Expect(*msgs[0].KommoEventID).To(Equal(int64(77)))
		Expect(*msgs[0].CompanyID).To(Equal(int64(5)))
		Expect(msgs[0].EventType).To(Equal("leads.add"))
		Expect(msgs[0].Attempt).To(Equal(1))
	})

	It("delivers a password reset task", func() {
		user := int64(9)
		Expect(producer.Enqueue(ctx, queue.Task{
			TaskType: queue.TaskTypePasswordResetEmail,
			UserID:   &user,
			Email:    "ana@example.com",
			ResetURL: "https://app/reset?token=abc",
		})).To(Succeed())

		msgs, err := consumer.Read(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(msgs).To(HaveLen(1))
		Expect(msgs[0].ResetURL).To(Equal("https://app/reset?token=abc"))
	})

	It("refuses to enqueue an incomplete task", func() {
		err := producer.Enqueue(ctx, queue.Task{TaskType: queue.TaskTypePasswordResetEmail})
		Expect(err).To(HaveOccurred())
		Expect(mr.Exists("tasks")).To(BeTrue()) // group creation made the stream
		entries, _ := mr.Stream("tasks")
		Expect(entries).To(BeEmpty())
	})

	It("requeues with the next attempt", func() {
		Expect(producer.Enqueue(ctx, kommoTask())).To(Succeed())
		msgs, err := consumer.Read(ctx)
		Expect(err).NotTo(HaveOccurred())

		Expect(consumer.Requeue(ctx, msgs[0], "boom")).To(Succeed())

		again, err := consumer.Read(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(again).To(HaveLen(1))
		Expect(again[0].Attempt).To(Equal(2))
		Expect(again[0].Raw.Values).To(HaveKeyWithValue("last_error", "boom"))
	})

	It("moves a message to the DLQ", func() {
		Expect(producer.Enqueue(ctx, kommoTask())).To(Succeed())
		msgs, err := consumer.Read(ctx)
		Expect(err).NotTo(HaveOccurred())

		Expect(consumer.SendDLQ(ctx, msgs[0], "gave up")).To(Succeed())

		dlq, err := client.XRange(ctx, "tasks_dlq", "-", "+").Result()
		Expect(err).NotTo(HaveOccurred())
		Expect(dlq).To(HaveLen(1))
		Expect(dlq[0].Values).To(HaveKeyWithValue("error", "gave up"))

		pending, err := client.XPending(ctx, "tasks", "workers").Result()
		Expect(err).NotTo(HaveOccurred())
		Expect(pending.Count).To(BeZero())
	})

	It("acks and drops unparseable messages", func() {
		Expect(client.XAdd(ctx, &redis.XAddArgs{
			Stream: "tasks",
			Values: map[string]any{"task_type": "unknown"},
		}).Err()).To(Succeed())

		msgs, err := consumer.Read(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(msgs).To(BeEmpty())
	})
})

var _ = Describe("ParseMessage", func() {
	It("rejects a kommo task without an event id", func() {
		_, err := queue.ParseMessage(redis.XMessage{ID: "1-0", Values: map[string]any{
			"task_type":  "kommo_event",
			"company_id": "5",
		}})
		Expect(err).To(HaveOccurred())
	})

	It("rejects malformed ids", func() {
		_, err := queue.ParseMessage(redis.XMessage{ID: "1-0", Values: map[string]any{
			"task_type":      "kommo_event",
			"company_id":     "five",
			"kommo_event_id": "1",
		}})
		Expect(err).To(HaveOccurred())
	})
})
