package entity

import (
	"time"

	"github.com/google/uuid"
)

// Lead is a captured demo request, persisted when the business-email gate
// accepts the submission.
type Lead struct {
	Id                   uuid.UUID
	SessionId            string
	Name                 string
	Email                string
	Phone                string
	LeadScore            int
	Stage                string
	QualificationSignals []string
	CreatedAt            time.Time
}
