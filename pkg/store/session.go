package store

import "sync"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"

	// Conversation stages, recomputed from lead score every turn
	StageGreeting      = "greeting"
	StageColdLead      = "cold_lead"
	StageInterested    = "interested"
	StageWarmLead      = "warm_lead"
	StageHotLead       = "hot_lead"
	StageDemoScheduled = "demo_scheduled"

	// Engagement strategies (top-of-funnel buckets)
	StrategyAwareness   = "awareness"
	StrategyNurtureCold = "nurture_cold"
	StrategyNurtureWarm = "nurture_warm"
	StrategyDirectSales = "direct_sales"
)

// ChatMessage is one entry of the per-session conversation history.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// UserInfo holds contact details captured by the demo form, never by the
// conversational flow itself.
type UserInfo struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	DemoRequested bool   `json:"demo_requested"`
}

// Session is the in-memory state of one conversation. All fields are owned by
// the session id; concurrent turns on the same id must hold the mutex.
type Session struct {
	mu sync.Mutex

	ID string `json:"id"`

	ConversationHistory []ChatMessage `json:"conversation_history"`

	LeadScore int    `json:"lead_score"`
	Stage     string `json:"stage"`

	// Interests are deduplicated topical tags (pricing, demo, features, ...).
	Interests []string `json:"interests"`

	// QualificationSignals accumulate as "{category}_{level}" tags across
	// turns. Duplicates are kept: they count repeated signals.
	QualificationSignals []string `json:"qualification_signals"`
	QualificationLevel   int      `json:"qualification_level"`

	MessageCount int `json:"message_count"`
	TouchCount   int `json:"touch_count"`

	DemoDeclined             bool   `json:"demo_declined"`
	Industry                 string `json:"industry,omitempty"`
	NeedsIntentClarification bool   `json:"needs_intent_clarification"`

	UserInfo UserInfo `json:"user_info"`
}

func NewSession(id string) *Session {
	return &Session{
		ID:                   id,
		ConversationHistory:  []ChatMessage{},
		Interests:            []string{},
		QualificationSignals: []string{},
		LeadScore:            0,
		Stage:                StageGreeting,
	}
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

func (s *Session) AppendMessage(role, content string) {
	s.ConversationHistory = append(s.ConversationHistory, ChatMessage{Role: role, Content: content})
}

// AddInterest records a topical interest once.
func (s *Session) AddInterest(tag string) {
	for _, existing := range s.Interests {
		if existing == tag {
			return
		}
	}
	s.Interests = append(s.Interests, tag)
}

// LastMessages returns up to n most recent history entries.
func (s *Session) LastMessages(n int) []ChatMessage {
	if n <= 0 || len(s.ConversationHistory) == 0 {
		return nil
	}
	if len(s.ConversationHistory) <= n {
		return s.ConversationHistory
	}
	return s.ConversationHistory[len(s.ConversationHistory)-n:]
}
