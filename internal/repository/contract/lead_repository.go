package contract

import (
	"context"

	"sales-assistant-be/internal/entity"
)

type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
	FindBySessionId(ctx context.Context, sessionId string) ([]*entity.Lead, error)
	Count(ctx context.Context) (int64, error)
}
