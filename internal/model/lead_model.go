package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Lead struct {
	Id                   uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId            string         `gorm:"type:varchar(100);index"`
	Name                 string         `gorm:"type:varchar(255);not null"`
	Email                string         `gorm:"type:varchar(255);not null;index"`
	Phone                string         `gorm:"type:varchar(50)"`
	LeadScore            int            `gorm:"default:0"`
	Stage                string         `gorm:"type:varchar(50)"`
	QualificationSignals datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt            time.Time      `gorm:"autoCreateTime"`
}

func (Lead) TableName() string {
	return "leads"
}
