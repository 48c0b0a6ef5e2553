package mapper

import (
	"encoding/json"

	"sales-assistant-be/internal/entity"
	"sales-assistant-be/internal/model"

	"gorm.io/datatypes"
)

type LeadMapper struct{}

func NewLeadMapper() *LeadMapper {
	return &LeadMapper{}
}

func (m *LeadMapper) ToEntity(l *model.Lead) *entity.Lead {
	if l == nil {
		return nil
	}

	var signals []string
	if len(l.QualificationSignals) > 0 {
		_ = json.Unmarshal(l.QualificationSignals, &signals)
	}

	return &entity.Lead{
		Id:                   l.Id,
		SessionId:            l.SessionId,
		Name:                 l.Name,
		Email:                l.Email,
		Phone:                l.Phone,
		LeadScore:            l.LeadScore,
		Stage:                l.Stage,
		QualificationSignals: signals,
		CreatedAt:            l.CreatedAt,
	}
}

func (m *LeadMapper) ToModel(l *entity.Lead) *model.Lead {
	if l == nil {
		return nil
	}

	signals := l.QualificationSignals
	if signals == nil {
		signals = []string{}
	}
	encoded, _ := json.Marshal(signals)

	return &model.Lead{
		Id:                   l.Id,
		SessionId:            l.SessionId,
		Name:                 l.Name,
		Email:                l.Email,
		Phone:                l.Phone,
		LeadScore:            l.LeadScore,
		Stage:                l.Stage,
		QualificationSignals: datatypes.JSON(encoded),
		CreatedAt:            l.CreatedAt,
	}
}
