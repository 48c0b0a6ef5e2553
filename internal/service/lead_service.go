package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sales-assistant-be/internal/dto"
	"sales-assistant-be/internal/entity"
	"sales-assistant-be/internal/pkg/logger"
	"sales-assistant-be/internal/repository/contract"
	"sales-assistant-be/internal/repository/memory"
	"sales-assistant-be/pkg/store"
)

const demoScheduledScoreBonus = 30

// personalDomains lists consumer mail providers rejected by the business
// email gate.
var personalDomains = map[string]struct{}{
	"gmail.com":      {},
	"yahoo.com":      {},
	"hotmail.com":    {},
	"outlook.com":    {},
	"aol.com":        {},
	"icloud.com":     {},
	"mail.com":       {},
	"protonmail.com": {},
	"tutanota.com":   {},
	"yandex.com":     {},
}

type ILeadService interface {
	SubmitDemo(ctx context.Context, req *dto.SubmitDemoRequest) (*dto.SubmitDemoResponse, error)
}

type leadService struct {
	leadRepo  contract.LeadRepository
	sessions  *memory.SessionRepository
	publisher message.Publisher
	leadTopic string
	log       logger.ILogger
}

func NewLeadService(
	leadRepo contract.LeadRepository,
	sessions *memory.SessionRepository,
	publisher message.Publisher,
	leadTopic string,
	log logger.ILogger,
) ILeadService {
	return &leadService{
		leadRepo:  leadRepo,
		sessions:  sessions,
		publisher: publisher,
		leadTopic: leadTopic,
		log:       log,
	}
}

// SubmitDemo captures a qualified lead from the demo form. Personal mail
// domains are rejected so the sales team only receives business contacts.
func (s *leadService) SubmitDemo(ctx context.Context, req *dto.SubmitDemoRequest) (*dto.SubmitDemoResponse, error) {
	if !isBusinessEmail(req.Email) {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity,
			"Please provide a business email address. Personal email domains like Gmail, Yahoo, and Hotmail are not accepted for demo requests.")
	}

	// Repeat submissions from the same session and address resolve to the
	// already captured lead, so a double-clicked form never duplicates rows
	// or re-notifies the CRM.
	existing, err := s.leadRepo.FindBySessionId(ctx, req.SessionId)
	if err != nil {
		return nil, fmt.Errorf("look up leads for session: %w", err)
	}
	for _, prior := range existing {
		if strings.EqualFold(prior.Email, req.Email) {
			return &dto.SubmitDemoResponse{
				LeadId:    prior.Id,
				LeadScore: prior.LeadScore,
				Stage:     prior.Stage,
				Message: fmt.Sprintf(
					"Thank you %s! Your demo request has been submitted. Our sales team will contact you at %s within 24 hours to schedule your personalized PALMS™ demonstration.",
					req.Name, req.Email),
				CreatedAt: prior.CreatedAt,
			}, nil
		}
	}

	lead := &entity.Lead{
		Id:        uuid.New(),
		SessionId: req.SessionId,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		CreatedAt: time.Now(),
	}

	if session, ok := s.sessions.Get(req.SessionId); ok {
		session.Lock()
		session.UserInfo = store.UserInfo{
			Name:          req.Name,
			Email:         req.Email,
			Phone:         req.Phone,
			DemoRequested: true,
		}
		session.LeadScore += demoScheduledScoreBonus
		session.Stage = store.StageDemoScheduled
		lead.LeadScore = session.LeadScore
		lead.Stage = session.Stage
		lead.QualificationSignals = append([]string(nil), session.QualificationSignals...)
		session.Unlock()
		s.sessions.Save(session)
	} else {
		lead.Stage = store.StageDemoScheduled
		lead.LeadScore = demoScheduledScoreBonus
	}

	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return nil, fmt.Errorf("persist lead: %w", err)
	}

	s.publishCaptured(lead)

	return &dto.SubmitDemoResponse{
		LeadId:    lead.Id,
		LeadScore: lead.LeadScore,
		Stage:     lead.Stage,
		Message: fmt.Sprintf(
			"Thank you %s! Your demo request has been submitted. Our sales team will contact you at %s within 24 hours to schedule your personalized PALMS™ demonstration.",
			req.Name, req.Email),
		CreatedAt: lead.CreatedAt,
	}, nil
}

// publishCaptured emits the captured event for the CRM forwarder. Delivery
// failures are logged, never surfaced: the lead is already persisted.
func (s *leadService) publishCaptured(lead *entity.Lead) {
	if s.publisher == nil {
		return
	}

	event := dto.LeadCapturedEvent{
		LeadId:               lead.Id,
		SessionId:            lead.SessionId,
		Name:                 lead.Name,
		Email:                lead.Email,
		Phone:                lead.Phone,
		LeadScore:            lead.LeadScore,
		Stage:                lead.Stage,
		QualificationSignals: lead.QualificationSignals,
		CapturedAt:           lead.CreatedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.log.Error("lead-service", "Failed to encode lead event", map[string]interface{}{
			"lead_id": lead.Id,
			"error":   err.Error(),
		})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.publisher.Publish(s.leadTopic, msg); err != nil {
		s.log.Error("lead-service", "Failed to publish lead event", map[string]interface{}{
			"lead_id": lead.Id,
			"error":   err.Error(),
		})
	}
}

func isBusinessEmail(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := strings.ToLower(email[at+1:])
	_, personal := personalDomains[domain]
	return !personal
}
