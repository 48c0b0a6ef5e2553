package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubmitDemoRequest struct {
	SessionId string `json:"session_id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone,omitempty"`
}

type SubmitDemoResponse struct {
	LeadId    uuid.UUID `json:"lead_id"`
	LeadScore int       `json:"lead_score"`
	Stage     string    `json:"stage"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// LeadCapturedEvent is the payload published when a demo request is
// accepted, consumed by the CRM forwarder.
type LeadCapturedEvent struct {
	LeadId               uuid.UUID `json:"lead_id"`
	SessionId            string    `json:"session_id"`
	Name                 string    `json:"name"`
	Email                string    `json:"email"`
	Phone                string    `json:"phone,omitempty"`
	LeadScore            int       `json:"lead_score"`
	Stage                string    `json:"stage"`
	QualificationSignals []string  `json:"qualification_signals"`
	CapturedAt           time.Time `json:"captured_at"`
}
