package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"sales-assistant-be/internal/dto"
	"sales-assistant-be/internal/pkg/logger"
	"sales-assistant-be/internal/repository/contract"
	"sales-assistant-be/internal/repository/memory"
	"sales-assistant-be/pkg/rag/response"
	"sales-assistant-be/pkg/rag/search"
	"sales-assistant-be/pkg/sales/flow"
	"sales-assistant-be/pkg/sales/qualifier"
	"sales-assistant-be/pkg/store"
)

const (
	handoffMessage = "I'd be happy to connect you with our sales team! Please fill out the demo form below and our experts will reach out within 24 hours to provide personalized assistance."

	technicalIssueMessage = "I'm experiencing a technical issue right now. Please try asking your question again, or feel free to contact our sales team directly at sales@onpalms.com for immediate assistance."
)

var (
	handoffPhrases = []string{"human", "person", "agent", "representative", "speak to someone"}

	// Content questions keep the composed answer; only next-step chatter is
	// eligible for a scripted follow-up from the touch ladder.
	contentQuestionWords = []string{
		"what", "how", "why", "tell me", "explain", "about", "feature", "price",
		"cost", "company", "product", "integration", "works", "does", "can it",
		"mobile", "industry", "clients", "case", "benefit", "problem", "challenge",
	}

	demoRequestPhrases = []string{
		"demo", "schedule demo", "book demo", "show me demo", "see demo", "want demo",
		"i want a demo", "i would like a demo", "can i get a demo", "request demo",
		"try demo", "demo please", "demonstration", "book a demo", "schedule a demo",
		"sign up for demo", "get a demo", "demo session", "product demo", "live demo",
		"book a call", "schedule a call", "book call", "schedule call", "want a call",
		"request a call", "call me", "phone call", "sales call", "consultation call",
		"speak with someone", "talk to sales", "contact sales", "sales consultation",
		"schedule consultation", "book consultation", "arrange a call", "set up a call",
	}

	negativeDemoPhrases = []string{
		"no demo", "not interested", "do not want", "don't want", "no thanks",
		"not now", "maybe later", "not ready", "just browsing", "just looking",
		"decline", "pass", "skip demo", "no need", "not necessary",
	}
)

type IChatService interface {
	SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	Health(ctx context.Context) (*dto.HealthResponse, error)
}

type chatService struct {
	sessions         *memory.SessionRepository
	retriever        search.ContextRetriever
	generator        *response.Generator
	knowledgeService IKnowledgeService
	leadRepo         contract.LeadRepository
	llmEnabled       bool
	log              logger.ILogger
}

func NewChatService(
	sessions *memory.SessionRepository,
	retriever search.ContextRetriever,
	generator *response.Generator,
	knowledgeService IKnowledgeService,
	leadRepo contract.LeadRepository,
	llmEnabled bool,
	log logger.ILogger,
) IChatService {
	return &chatService{
		sessions:         sessions,
		retriever:        retriever,
		generator:        generator,
		knowledgeService: knowledgeService,
		leadRepo:         leadRepo,
		llmEnabled:       llmEnabled,
		log:              log,
	}
}

// SendMessage runs one conversation turn: qualification, retrieval,
// composition and demo-form routing. Turns on the same session are
// serialized by the session lock.
func (s *chatService) SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	sessionID := req.SessionId
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	session := s.sessions.GetOrCreate(sessionID)
	session.Lock()
	defer session.Unlock()

	session.AppendMessage(store.RoleUser, req.Message)

	qualifier.EnhancedQualification(req.Message, session)
	qualifier.AnalyzeIntent(req.Message, session)
	engagementStrategy := qualifier.EngagementStrategy(session)

	messageLower := strings.ToLower(req.Message)

	var reply string
	var showDemoForm, flowDelivered bool

	if qualifier.ContainsAny(messageLower, handoffPhrases) {
		reply = handoffMessage
		showDemoForm = true
	} else {
		reply, flowDelivered = s.composeReply(ctx, req.Message, session, engagementStrategy)
		showDemoForm = s.detectDemoRequest(messageLower, session)
	}

	session.AppendMessage(store.RoleAssistant, reply)
	s.sessions.Save(session)

	return &dto.SendMessageResponse{
		SessionId:    sessionID,
		Message:      reply,
		ShowDemoForm: showDemoForm,
		LeadScore:    session.LeadScore,
		Stage:        session.Stage,
		TofuData: dto.TofuDataDTO{
			EngagementStrategy:    engagementStrategy,
			QualificationSignals:  session.QualificationSignals,
			QualifyingQuestions:   flow.QualifyingQuestions(engagementStrategy),
			TouchCount:            session.TouchCount,
			FlowResponseDelivered: flowDelivered,
		},
	}, nil
}

// composeReply runs the retrieval pipeline under a recover boundary: a panic
// anywhere in retrieval or composition degrades to an apology instead of
// failing the request.
func (s *chatService) composeReply(ctx context.Context, message string, session *store.Session, engagementStrategy string) (reply string, flowDelivered bool) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("chat-service", "Recovered from composition failure", map[string]interface{}{
				"session_id": session.ID,
				"panic":      r,
			})
			reply = technicalIssueMessage
			flowDelivered = false
		}
	}()

	relevantContext := s.retriever.Retrieve(ctx, message)
	extractedInfo := s.generator.ExtractFacts(ctx, message, relevantContext)
	reply = s.generator.SalesReply(ctx, message, extractedInfo, session)

	messageLower := strings.ToLower(message)
	if !qualifier.ContainsAny(messageLower, contentQuestionWords) &&
		(engagementStrategy == store.StrategyDirectSales || engagementStrategy == store.StrategyNurtureWarm) {
		if touch, ok := flow.NextTouch(message, session, engagementStrategy); ok {
			reply = touch
			flowDelivered = true
		}
	}
	return reply, flowDelivered
}

// detectDemoRequest decides whether the frontend should render the demo
// capture form. A negative phrase wins over every positive signal and pins
// the decline on the session.
func (s *chatService) detectDemoRequest(messageLower string, session *store.Session) bool {
	show := qualifier.ContainsAny(messageLower, demoRequestPhrases)

	if !show && strings.Contains(messageLower, "yes") {
		var recent []string
		for _, msg := range session.LastMessages(3) {
			recent = append(recent, strings.ToLower(msg.Content))
		}
		recentContext := strings.Join(recent, " ")
		if strings.Contains(recentContext, "demo") || strings.Contains(recentContext, "demonstration") {
			show = true
		}
	}

	if qualifier.ContainsAny(messageLower, negativeDemoPhrases) {
		session.DemoDeclined = true
		show = false
	}
	return show
}

func (s *chatService) Health(ctx context.Context) (*dto.HealthResponse, error) {
	chunks, err := s.knowledgeService.ChunkCount(ctx)
	if err != nil {
		return nil, err
	}
	leads, err := s.leadRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.HealthResponse{
		Status:          "ok",
		KnowledgeChunks: chunks,
		CapturedLeads:   leads,
		ActiveSessions:  s.sessions.Count(),
		LlmEnabled:      s.llmEnabled,
	}, nil
}
