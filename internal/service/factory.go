package service

import (
	"masteria.app/panel/common/llm"
	"masteria.app/panel/core/config"
	"masteria.app/panel/internal/auth"
	"masteria.app/panel/internal/mapper"
	"masteria.app/panel/internal/queue"
	"masteria.app/panel/internal/store"
)

// Deps are the collaborators of every service. VectorStores, KnowledgeTx,
// Embedder and Presigner are nil when their subsystem is not configured.
type Deps struct {
	Stores       *store.Stores
	VectorStores *store.Stores
	TxRunner     TxRunner
	KnowledgeTx  KnowledgeTxRunner
	Producer     queue.Producer
	Tokens       *auth.TokenManager
	Hasher       *auth.Hasher
	Embedder     llm.Embedder
	Presigner    ObjectPresigner
	Config       config.Config
}

type Services struct {
	deps Deps
}

func NewServices(deps Deps) *Services {
	return &Services{deps: deps}
}

func (s *Services) Auth() AuthService {
	return NewAuthService(
		s.deps.Stores.Users(),
		s.deps.Stores.Companies(),
		s.deps.TxRunner,
		s.deps.Tokens,
		s.deps.Hasher,
	)
}

func (s *Services) PasswordReset() PasswordResetService {
	return NewPasswordResetService(
		s.deps.Stores.Users(),
		s.deps.Stores.PasswordResetTokens(),
		s.deps.TxRunner,
		s.deps.Producer,
		s.deps.Hasher,
		s.deps.Config.Auth.PasswordResetTTL,
		s.deps.Config.DashboardURL,
	)
}

func (s *Services) Users() UserService {
	return NewUserService(s.deps.Stores.Users(), s.deps.Hasher)
}

func (s *Services) Companies() CompanyService {
	return NewCompanyService(s.deps.Stores.Companies())
}

func (s *Services) Connections() ConnectionService {
	return NewConnectionService(s.deps.Stores.Connections())
}

func (s *Services) Automations() AutomationService {
	return NewAutomationService(s.deps.Stores.AutomationRules(), s.deps.Stores.AutomationLogs())
}

func (s *Services) Campaigns() CampaignService {
	return NewCampaignService(s.deps.Stores.Campaigns(), s.deps.Stores.Connections())
}

func (s *Services) Kommo() KommoService {
	return NewKommoService(
		s.deps.Stores.Companies(),
		s.deps.Stores.KommoEvents(),
		mapper.NewKommoEventMapper(),
		s.deps.Producer,
	)
}

func (s *Services) AI() AIService {
	return NewAIService(s.deps.Config.AI.ServiceURL)
}

func (s *Services) Knowledge() KnowledgeService {
	var knowledge store.KnowledgeStore
	if s.deps.VectorStores != nil {
		knowledge = s.deps.VectorStores.Knowledge()
	}
	return NewKnowledgeService(knowledge, s.deps.KnowledgeTx, s.deps.Embedder)
}

func (s *Services) Media() MediaService {
	return NewMediaService(s.deps.Presigner)
}
