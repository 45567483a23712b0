package service

import "context"

// The AI agents moved to an external service. What remains here answers the
// dashboard's status widgets with fixed data.

type OrchestratorStatus struct {
	Status     string `json:"status"`
	ServiceURL string `json:"service_url"`
	Message    string `json:"message"`
}

type AgentPerformance struct {
	CompanyID            int64   `json:"company_id"`
	Source               string  `json:"source"`
	ConversationsHandled int64   `json:"conversations_handled"`
	AvgResponseSeconds   float64 `json:"avg_response_seconds"`
	ResolutionRate       float64 `json:"resolution_rate"`
	HandoffRate          float64 `json:"handoff_rate"`
	ActiveAgents         int     `json:"active_agents"`
}

type AIService interface {
	OrchestratorStatus(ctx context.Context) OrchestratorStatus
	AgentPerformance(ctx context.Context, companyID int64) AgentPerformance
	ServiceURL() string
}

type aiService struct {
	serviceURL string
}

func NewAIService(serviceURL string) AIService {
	return &aiService{serviceURL: serviceURL}
}

func (s *aiService) OrchestratorStatus(_ context.Context) OrchestratorStatus {
	return OrchestratorStatus{
		Status:     "external",
		ServiceURL: s.serviceURL,
		Message:    "AI agents are served by the external agent service",
	}
}

func (s *aiService) AgentPerformance(_ context.Context, companyID int64) AgentPerformance {
	return AgentPerformance{
		CompanyID: companyID,
		Source:    "external",
	}
}

func (s *aiService) ServiceURL() string {
	return s.serviceURL
}
