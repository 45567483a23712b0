package webhook_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"masteria.app/panel/internal/http/handler/webhook"
	"masteria.app/panel/internal/model"
	"masteria.app/panel/internal/service"
)

type fakeKommoService struct {
	ingestFn func(ctx context.Context, hook service.KommoWebhook) (*service.KommoIngestResult, error)
	hooks    []service.KommoWebhook
}

func (f *fakeKommoService) Ingest(ctx context.Context, hook service.KommoWebhook) (*service.KommoIngestResult, error) {
	f.hooks = append(f.hooks, hook)
	if f.ingestFn != nil {
		return f.ingestFn(ctx, hook)
	}
	return &service.KommoIngestResult{
		Event:    &model.KommoEvent{ID: 1, CompanyID: hook.CompanyID, EventType: "leads.add"},
		Enqueued: true,
	}, nil
}

var _ = Describe("KommoWebhookHandler", func() {
	var (
		router *gin.Engine
		svc    *fakeKommoService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		svc = &fakeKommoService{}
		router = gin.New()
		router.POST("/webhooks/kommo/:company_id", webhook.NewKommoWebhookHandler(svc).HandleEvent)
	})

	post := func(path, secret, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		if secret != "" {
			req.Header.Set(webhook.HeaderWebhookSecret, secret)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("acknowledges an accepted event", func() {
		w := post("/webhooks/kommo/100", "s3cret", "leads[add][0][id]=7")

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`{"status":"ok"}`))
		Expect(svc.hooks).To(HaveLen(1))
		Expect(svc.hooks[0].CompanyID).To(Equal(int64(100)))
		Expect(svc.hooks[0].Secret).To(Equal("s3cret"))
		Expect(string(svc.hooks[0].Body)).To(Equal("leads[add][0][id]=7"))
		Expect(svc.hooks[0].ContentType).To(Equal("application/x-www-form-urlencoded"))
	})

	It("acknowledges duplicates the same way", func() {
		svc.ingestFn = func(_ context.Context, _ service.KommoWebhook) (*service.KommoIngestResult, error) {
			return &service.KommoIngestResult{Event: &model.KommoEvent{ID: 1}, Duplicated: true}, nil
		}
		Expect(post("/webhooks/kommo/100", "s3cret", "x").Code).To(Equal(http.StatusOK))
	})

	It("rejects a missing secret before reading the body", func() {
		w := post("/webhooks/kommo/100", "", "leads[add][0][id]=7")
		Expect(w.Code).To(Equal(http.StatusUnauthorized))
		Expect(svc.hooks).To(BeEmpty())
	})

	It("rejects a wrong secret", func() {
		svc.ingestFn = func(context.Context, service.KommoWebhook) (*service.KommoIngestResult, error) {
			return nil, service.ErrWebhookUnauthorized
		}
		Expect(post("/webhooks/kommo/100", "guess", "x").Code).To(Equal(http.StatusUnauthorized))
	})

	It("rejects a malformed company id", func() {
		Expect(post("/webhooks/kommo/abc", "s3cret", "x").Code).To(Equal(http.StatusBadRequest))
	})

	It("acknowledges unreadable events so Kommo stops retrying", func() {
		svc.ingestFn = func(context.Context, service.KommoWebhook) (*service.KommoIngestResult, error) {
			return nil, fmt.Errorf("%w: no kommo entity", service.ErrInvalidInput)
		}
		Expect(post("/webhooks/kommo/100", "s3cret", "foo=bar").Code).To(Equal(http.StatusOK))
	})

	It("answers 500 when the event cannot be stored", func() {
		svc.ingestFn = func(context.Context, service.KommoWebhook) (*service.KommoIngestResult, error) {
			return nil, errors.New("redis down")
		}
		Expect(post("/webhooks/kommo/100", "s3cret", "x").Code).To(Equal(http.StatusInternalServerError))
	})
})
