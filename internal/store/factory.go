package store

import (
	"masteria.app/panel/core/db/sqlc"
)

// Stores hands out stores bound to one sqlc.Queries, either the pool's or a
// transaction's. The knowledge store must be built over the vector database.
type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Companies() CompanyStore {
	return newCompanyStore(s.queries)
}

func (s *Stores) Users() UserStore {
	return newUserStore(s.queries)
}

func (s *Stores) PasswordResetTokens() PasswordResetTokenStore {
	return newPasswordResetTokenStore(s.queries)
}

func (s *Stores) Connections() ConnectionStore {
	return newConnectionStore(s.queries)
}

func (s *Stores) AutomationRules() AutomationRuleStore {
	return newAutomationRuleStore(s.queries)
}

func (s *Stores) AutomationLogs() AutomationLogStore {
	return newAutomationLogStore(s.queries)
}

func (s *Stores) Campaigns() CampaignStore {
	return newCampaignStore(s.queries)
}

func (s *Stores) KommoEvents() KommoEventStore {
	return newKommoEventStore(s.queries)
}

func (s *Stores) Knowledge() KnowledgeStore {
	return newKnowledgeStore(s.queries)
}
