package automation

import (
	"encoding/json"
	"sync"

	"github.com/invopop/jsonschema"

	"masteria.app/panel/internal/model"
)

// RuleDefinition is the editable part of a rule, as the dashboard submits it.
type RuleDefinition struct {
	Name         string            `json:"name" jsonschema:"minLength=1,maxLength=200"`
	TriggerEvent string            `json:"trigger_event" jsonschema:"minLength=1,description=Event that fires the rule e.g. kommo.leads.status"`
	Conditions   []model.Condition `json:"conditions" jsonschema:"maxItems=20"`
	Actions      []model.Action    `json:"actions" jsonschema:"minItems=1,maxItems=10"`
}

var (
	schemaOnce sync.Once
	schemaJSON json.RawMessage
	schemaErr  error
)

// Schema returns the JSON schema of RuleDefinition, generated once.
func Schema() (json.RawMessage, error) {
	schemaOnce.Do(func() {
		reflector := jsonschema.Reflector{
			AllowAdditionalProperties: false,
			DoNotReference:            true,
		}
		schemaJSON, schemaErr = json.Marshal(reflector.Reflect(&RuleDefinition{}))
	})
	return schemaJSON, schemaErr
}
