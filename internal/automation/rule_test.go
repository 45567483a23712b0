package automation_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"masteria.app/panel/internal/automation"
	"masteria.app/panel/internal/model"
)

func validRule() *model.AutomationRule {
	return &model.AutomationRule{
		Name:         "Won deals",
		TriggerEvent: "kommo.leads.status",
		Conditions:   []model.Condition{{Field: "leads.status.0.status_id", Operator: model.OperatorEquals, Value: "142"}},
		Actions:      []model.Action{{Type: model.ActionNotify}},
		IsActive:     true,
	}
}

var _ = Describe("Validate", func() {
	It("accepts a well-formed rule", func() {
		Expect(automation.Validate(validRule())).To(Succeed())
	})

	DescribeTable("rejects",
		func(mutate func(r *model.AutomationRule)) {
			r := validRule()
			mutate(r)
			Expect(automation.Validate(r)).To(MatchError(automation.ErrInvalidRule))
		},
		Entry("blank name", func(r *model.AutomationRule) { r.Name = " " }),
		Entry("blank trigger", func(r *model.AutomationRule) { r.TriggerEvent = "" }),
		Entry("no actions", func(r *model.AutomationRule) { r.Actions = nil }),
		Entry("unknown operator", func(r *model.AutomationRule) { r.Conditions[0].Operator = "regex" }),
		Entry("missing value", func(r *model.AutomationRule) { r.Conditions[0].Value = nil }),
		Entry("unknown action", func(r *model.AutomationRule) { r.Actions[0].Type = "sms" }),
		Entry("webhook without url", func(r *model.AutomationRule) { r.Actions[0].Type = model.ActionWebhook }),
		Entry("webhook with ftp url", func(r *model.AutomationRule) {
			r.Actions[0] = model.Action{Type: model.ActionWebhook, Params: map[string]any{"url": "ftp://x"}}
		}),
		Entry("send_message without message", func(r *model.AutomationRule) { r.Actions[0].Type = model.ActionSendMessage }),
	)

	It("allows exists without a value", func() {
		r := validRule()
		r.Conditions[0] = model.Condition{Field: "leads", Operator: model.OperatorExists}
		Expect(automation.Validate(r)).To(Succeed())
	})
})

var _ = Describe("Decide", func() {
	It("matches active rules only", func() {
		inactive := *validRule()
		inactive.IsActive = false

		decisions := automation.Decide([]model.AutomationRule{*validRule(), inactive}, payload)
		Expect(decisions).To(HaveLen(2))
		Expect(decisions[0].Matched).To(BeTrue())
		Expect(decisions[0].Actions).To(HaveLen(1))
		Expect(decisions[1].Matched).To(BeFalse())
	})
})

var _ = Describe("Schema", func() {
	It("describes the rule definition", func() {
		raw, err := automation.Schema()
		Expect(err).NotTo(HaveOccurred())

		var schema map[string]any
		Expect(json.Unmarshal(raw, &schema)).To(Succeed())
		props, ok := schema["properties"].(map[string]any)
		Expect(ok).To(BeTrue())
		Expect(props).To(HaveKey("trigger_event"))
		Expect(props).To(HaveKey("conditions"))
		Expect(props).To(HaveKey("actions"))
	})
})
