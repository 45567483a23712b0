package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"masteria.app/panel/internal/auth"
	"masteria.app/panel/internal/model"
	"masteria.app/panel/internal/service"
	"masteria.app/panel/internal/store"
)

var _ = Describe("UserService", func() {
	var (
		ctx   context.Context
		users *mockUserStore
		svc   service.UserService
		admin *model.User
	)

	BeforeEach(func() {
		ctx = context.Background()
		users = &mockUserStore{}
		svc = service.NewUserService(users, auth.NewHasher(4))
		admin = &model.User{ID: 1, CompanyID: 100, Role: model.RoleAdmin, IsActive: true}
	})

	Describe("Create", func() {
		It("creates an agent in the admin's company by default", func() {
			var captured *model.User
			users.createFn = func(_ context.Context, u *model.User) error { captured = u; return nil }

			user, err := svc.Create(ctx, admin, service.CreateUserParams{
				Name:     "Bruno",
				Email:    "Bruno@Example.com",
				Password: "long enough",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).NotTo(BeZero())
			Expect(captured.CompanyID).To(Equal(int64(100)))
			Expect(captured.Email).To(Equal("bruno@example.com"))
			Expect(captured.Role).To(Equal(model.RoleAgent))
			Expect(captured.IsActive).To(BeTrue())
		})

		It("rejects an unknown role", func() {
			_, err := svc.Create(ctx, admin, service.CreateUserParams{
				Name: "B", Email: "b@example.com", Password: "long enough", Role: "owner",
			})
			Expect(errors.Is(err, service.ErrInvalidInput)).To(BeTrue())
		})

		It("maps duplicates to ErrEmailTaken", func() {
			users.createFn = func(context.Context, *model.User) error { return store.ErrConflict }
			_, err := svc.Create(ctx, admin, service.CreateUserParams{
				Name: "B", Email: "b@example.com", Password: "long enough",
			})
			Expect(err).To(MatchError(service.ErrEmailTaken))
		})

		It("propagates store errors", func() {
			users.createFn = func(context.Context, *model.User) error { return errors.New("database connection failed") }
			_, err := svc.Create(ctx, admin, service.CreateUserParams{
				Name: "B", Email: "b@example.com", Password: "long enough",
			})
			Expect(err).To(MatchError(ContainSubstring("database connection failed")))
		})
	})

	Describe("Update", func() {
		It("hides users of other companies", func() {
			users.getByIDFn = func(context.Context, int64) (*model.User, error) {
				return &model.User{ID: 2, CompanyID: 999}, nil
			}
			name := "X"
			_, err := svc.Update(ctx, admin, 2, service.UpdateUserParams{Name: &name})
			Expect(errors.Is(err, service.ErrNotFound)).To(BeTrue())
		})

		It("changes name and role", func() {
			users.getByIDFn = func(context.Context, int64) (*model.User, error) {
				return &model.User{ID: 2, CompanyID: 100, Name: "Old", Role: model.RoleAgent}, nil
			}
			name, role := "New", model.RoleAdmin

			user, err := svc.Update(ctx, admin, 2, service.UpdateUserParams{Name: &name, Role: &role})
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Name).To(Equal("New"))
			Expect(user.Role).To(Equal(model.RoleAdmin))
		})

		It("refuses to demote yourself", func() {
			users.getByIDFn = func(context.Context, int64) (*model.User, error) { return admin, nil }
			role := model.RoleAgent
			_, err := svc.Update(ctx, admin, admin.ID, service.UpdateUserParams{Role: &role})
			Expect(err).To(MatchError(service.ErrSelfModification))
		})
	})

	Describe("SetActive and Delete", func() {
		It("refuses to deactivate yourself", func() {
			_, err := svc.SetActive(ctx, admin, admin.ID, false)
			Expect(err).To(MatchError(service.ErrSelfModification))
		})

		It("refuses to delete yourself", func() {
			Expect(svc.Delete(ctx, admin, admin.ID)).To(MatchError(service.ErrSelfModification))
		})

		It("scopes deletes to the admin's company", func() {
			var gotCompany int64
			users.deleteFn = func(_ context.Context, companyID, _ int64) error { gotCompany = companyID; return nil }
			Expect(svc.Delete(ctx, admin, 7)).To(Succeed())
			Expect(gotCompany).To(Equal(int64(100)))
		})

		It("reports a missing user", func() {
			users.setActiveFn = func(context.Context, int64, int64, bool) (*model.User, error) { return nil, store.ErrNotFound }
			_, err := svc.SetActive(ctx, admin, 7, true)
			Expect(errors.Is(err, service.ErrNotFound)).To(BeTrue())
		})
	})
})
