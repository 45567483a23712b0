package service_test

import (
	"context"
	"errors"
	"net/url"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"masteria.app/panel/internal/auth"
	"masteria.app/panel/internal/model"
	"masteria.app/panel/internal/queue"
	"masteria.app/panel/internal/service"
	"masteria.app/panel/internal/store"
)

var _ = Describe("PasswordResetService", func() {
	var (
		ctx      context.Context
		users    *mockUserStore
		tokens   *mockResetTokenStore
		producer *mockProducer
		hasher   *auth.Hasher
		svc      service.PasswordResetService
		user     *model.User
	)

	BeforeEach(func() {
		ctx = context.Background()
		user = &model.User{ID: 5, CompanyID: 6, Name: "Ana", Email: "ana@example.com", IsActive: true}
		users = &mockUserStore{
			getByEmailFn: func(_ context.Context, email string) (*model.User, error) {
				if email == user.Email {
					return user, nil
				}
				return nil, store.ErrNotFound
			},
		}
		tokens = &mockResetTokenStore{}
		producer = &mockProducer{}
		hasher = auth.NewHasher(4)
		txRunner := &mockTxRunner{stores: &mockStoreProvider{users: users, tokens: tokens}}
		svc = service.NewPasswordResetService(users, tokens, txRunner, producer, hasher, time.Hour, "https://panel.example.com/")
	})

	// requestToken runs RequestReset and returns the raw token from the mailed link.
	requestToken := func() string {
		Expect(svc.RequestReset(ctx, "Ana@Example.com")).To(Succeed())
		Expect(producer.tasks).To(HaveLen(1))
		u, err := url.Parse(producer.tasks[0].ResetURL)
		Expect(err).NotTo(HaveOccurred())
		return u.Query().Get("token")
	}

	Describe("RequestReset", func() {
		It("stores only the hash and enqueues the email", func() {
			raw := requestToken()

			Expect(raw).NotTo(BeEmpty())
			Expect(tokens.created).To(HaveLen(1))
			Expect(tokens.created[0].TokenHash).NotTo(Equal(raw))
			Expect(tokens.created[0].TokenHash).To(HaveLen(64))
			Expect(tokens.created[0].ExpiresAt).To(BeTemporally("~", time.Now().Add(time.Hour), time.Minute))

			task := producer.tasks[0]
			Expect(task.TaskType).To(Equal(queue.TaskTypePasswordResetEmail))
			Expect(task.ResetURL).To(HavePrefix("https://panel.example.com/reset-password?token="))
			Expect(*task.UserID).To(Equal(int64(5)))
			Expect(tokens.deleteExpired).To(Equal(1))
		})

		It("answers the same for an unknown email", func() {
			Expect(svc.RequestReset(ctx, "ghost@example.com")).To(Succeed())
			Expect(producer.tasks).To(BeEmpty())
			Expect(tokens.created).To(BeEmpty())
		})

		It("does not mail inactive users", func() {
			user.IsActive = false
			Expect(svc.RequestReset(ctx, "ana@example.com")).To(Succeed())
			Expect(producer.tasks).To(BeEmpty())
		})

		It("hides queue failures from the caller", func() {
			producer.err = errors.New("redis down")
			Expect(svc.RequestReset(ctx, "ana@example.com")).To(Succeed())
		})
	})

	Describe("ValidateToken", func() {
		It("accepts a fresh token", func() {
			Expect(svc.ValidateToken(ctx, requestToken())).To(Succeed())
		})

		It("reports unknown tokens", func() {
			Expect(svc.ValidateToken(ctx, "nope")).To(MatchError(service.ErrResetTokenNotFound))
			Expect(svc.ValidateToken(ctx, "")).To(MatchError(service.ErrResetTokenNotFound))
		})

		It("reports expired tokens", func() {
			raw := requestToken()
			tokens.created[0].ExpiresAt = time.Now().Add(-time.Second)
			Expect(svc.ValidateToken(ctx, raw)).To(MatchError(service.ErrResetTokenExpired))
		})

		It("reports used tokens", func() {
			raw := requestToken()
			used := time.Now()
			tokens.created[0].UsedAt = &used
			Expect(svc.ValidateToken(ctx, raw)).To(MatchError(service.ErrResetTokenUsed))
		})
	})

	Describe("token purge", func() {
		It("only purges tokens a week past expiry", func() {
			Expect(svc.RequestReset(ctx, "ghost@example.com")).To(Succeed())
			Expect(tokens.purgedBefore).To(BeTemporally("~", time.Now().Add(-7*24*time.Hour), time.Minute))
		})

		It("still reports a used token as used after a later request", func() {
			raw := requestToken()
			Expect(svc.ResetPassword(ctx, raw, "brand new secret")).To(Succeed())

			Expect(svc.RequestReset(ctx, "ana@example.com")).To(Succeed())

			Expect(svc.ValidateToken(ctx, raw)).To(MatchError(service.ErrResetTokenUsed))
			Expect(svc.ResetPassword(ctx, raw, "another secret")).To(MatchError(service.ErrResetTokenUsed))
		})

		It("still reports a recently expired token as expired after a later request", func() {
			raw := requestToken()
			tokens.created[0].ExpiresAt = time.Now().Add(-time.Hour)

			Expect(svc.RequestReset(ctx, "ghost@example.com")).To(Succeed())

			Expect(svc.ValidateToken(ctx, raw)).To(MatchError(service.ErrResetTokenExpired))
		})

		It("forgets tokens long past expiry", func() {
			raw := requestToken()
			tokens.created[0].ExpiresAt = time.Now().Add(-8 * 24 * time.Hour)

			Expect(svc.RequestReset(ctx, "ghost@example.com")).To(Succeed())

			Expect(svc.ValidateToken(ctx, raw)).To(MatchError(service.ErrResetTokenNotFound))
		})
	})

	Describe("ResetPassword", func() {
		It("stores the new hash and burns the token", func() {
			raw := requestToken()
			var newHash string
			users.updatePasswordFn = func(_ context.Context, id int64, hash string) error {
				Expect(id).To(Equal(int64(5)))
				newHash = hash
				return nil
			}

			Expect(svc.ResetPassword(ctx, raw, "brand new secret")).To(Succeed())
			Expect(hasher.Compare(newHash, "brand new secret")).To(Succeed())
			Expect(tokens.markedUsed).To(ConsistOf(tokens.created[0].ID))
		})

		It("rejects a short password before touching the token", func() {
			raw := requestToken()
			err := svc.ResetPassword(ctx, raw, "short")
			Expect(errors.Is(err, service.ErrInvalidInput)).To(BeTrue())
			Expect(tokens.markedUsed).To(BeEmpty())
		})

		It("reports a token consumed concurrently as used", func() {
			raw := requestToken()
			tokens.markUsedErr = store.ErrNotFound
			Expect(svc.ResetPassword(ctx, raw, "brand new secret")).To(MatchError(service.ErrResetTokenUsed))
		})
	})
})
