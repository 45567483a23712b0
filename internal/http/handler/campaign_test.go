package handler_test

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"masteria.app/panel/internal/http/handler"
	"masteria.app/panel/internal/model"
	"masteria.app/panel/internal/service"
)

var _ = Describe("CampaignHandler", func() {
	var (
		router *gin.Engine
		svc    *mockCampaignService
	)

	BeforeEach(func() {
		svc = &mockCampaignService{}
		router = newRouter(agent)
		h := handler.NewCampaignHandler(svc)
		router.POST("/campaigns", h.Create)
		router.GET("/campaigns/:id", h.Get)
		router.PATCH("/campaigns/:id", h.Update)
		router.DELETE("/campaigns/:id", h.Delete)
		router.POST("/campaigns/:id/schedule", h.Schedule)
		router.POST("/campaigns/:id/cancel", h.Cancel)
		router.GET("/reports/campaigns", h.Report)
	})

	It("creates a draft with a string connection id", func() {
		svc.createFn = func(_ context.Context, companyID int64, p service.CampaignParams) (*model.Campaign, error) {
			Expect(companyID).To(Equal(agent.CompanyID))
			Expect(*p.ConnectionID).To(Equal(int64(42)))
			return &model.Campaign{ID: 5, ConnectionID: p.ConnectionID, Name: *p.Name, Status: model.CampaignStatusDraft}, nil
		}

		w := doJSON(router, http.MethodPost, "/campaigns", `{"name":"Black Friday","message":"Oi!","connection_id":"42"}`)

		Expect(w.Code).To(Equal(http.StatusCreated))
		resp := decode(w)
		Expect(resp["status"]).To(Equal("draft"))
		Expect(resp["connection_id"]).To(Equal("42"))
	})

	It("answers 404 for unknown campaigns", func() {
		w := doJSON(router, http.MethodGet, "/campaigns/5", nil)
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("answers 409 when editing a scheduled campaign", func() {
		svc.updateFn = func(context.Context, int64, int64, service.CampaignParams) (*model.Campaign, error) {
			return nil, service.ErrCampaignNotEditable
		}
		w := doJSON(router, http.MethodPatch, "/campaigns/5", map[string]string{"name": "x"})
		Expect(w.Code).To(Equal(http.StatusConflict))
		Expect(decode(w)["code"]).To(Equal("invalid_status"))
	})

	It("schedules at the requested time", func() {
		at := time.Date(2030, 1, 2, 15, 0, 0, 0, time.UTC)
		w := doJSON(router, http.MethodPost, "/campaigns/5/schedule", map[string]string{"scheduled_at": at.Format(time.RFC3339)})
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decode(w)["status"]).To(Equal("scheduled"))
	})

	It("answers 400 for a past schedule", func() {
		svc.scheduleFn = func(context.Context, int64, int64, time.Time) (*model.Campaign, error) {
			return nil, service.ErrInvalidInput
		}
		w := doJSON(router, http.MethodPost, "/campaigns/5/schedule", map[string]string{"scheduled_at": "2001-01-01T00:00:00Z"})
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("answers 409 on an invalid cancel", func() {
		svc.cancelFn = func(context.Context, int64, int64) (*model.Campaign, error) {
			return nil, service.ErrInvalidTransition
		}
		w := doJSON(router, http.MethodPost, "/campaigns/5/cancel", nil)
		Expect(w.Code).To(Equal(http.StatusConflict))
	})

	It("reports rates", func() {
		svc.reportFn = func(context.Context, int64) (*model.CampaignReport, error) {
			return &model.CampaignReport{
				Totals:       model.CampaignTotals{Campaigns: 2, Sent: 100, Delivered: 90, Read: 45},
				ByStatus:     map[model.CampaignStatus]int64{model.CampaignStatusCompleted: 2},
				DeliveryRate: 0.9,
				ReadRate:     0.5,
			}, nil
		}
		w := doJSON(router, http.MethodGet, "/reports/campaigns", nil)
		Expect(w.Code).To(Equal(http.StatusOK))
		resp := decode(w)
		Expect(resp["delivery_rate"]).To(Equal(0.9))
		Expect(resp["by_status"]).To(HaveKeyWithValue("completed", 2.0))
	})
})
