package dto

type SendMessageRequest struct {
	SessionId string `json:"session_id"`
	Message   string `json:"message" validate:"required"`
}

// TofuDataDTO exposes the top-of-funnel state the frontend uses to render
// engagement hints alongside the reply.
type TofuDataDTO struct {
	EngagementStrategy    string   `json:"engagement_strategy"`
	QualificationSignals  []string `json:"qualification_signals"`
	QualifyingQuestions   []string `json:"qualifying_questions,omitempty"`
	TouchCount            int      `json:"touch_count"`
	FlowResponseDelivered bool     `json:"flow_response_delivered"`
}

type SendMessageResponse struct {
	SessionId    string      `json:"session_id"`
	Message      string      `json:"message"`
	ShowDemoForm bool        `json:"show_demo_form"`
	LeadScore    int         `json:"lead_score"`
	Stage        string      `json:"stage"`
	TofuData     TofuDataDTO `json:"tofu_data"`
}

type RefreshKnowledgeResponse struct {
	ChunksStored int `json:"chunks_stored"`
}

type HealthResponse struct {
	Status          string `json:"status"`
	KnowledgeChunks int64  `json:"knowledge_chunks"`
	CapturedLeads   int64  `json:"captured_leads"`
	ActiveSessions  int    `json:"active_sessions"`
	LlmEnabled      bool   `json:"llm_enabled"`
}
