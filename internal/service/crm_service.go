package service

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"sales-assistant-be/internal/pkg/logger"
)

type ICrmService interface {
	Consume(ctx context.Context) error
}

// crmService forwards captured leads to the external CRM webhook. The
// webhook is a sink for the sales spreadsheet, so failures are logged and
// acked rather than retried.
type crmService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	webhookURL string
	client     *http.Client
	log        logger.ILogger
}

func NewCrmService(
	pubSub *gochannel.GoChannel,
	topicName string,
	webhookURL string,
	log logger.ILogger,
) ICrmService {
	return &crmService{
		pubSub:     pubSub,
		topicName:  topicName,
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 15 * time.Second},
		log:        log,
	}
}

func (cs *crmService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *crmService) processMessage(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	if cs.webhookURL == "" {
		cs.log.Debug("crm-service", "No CRM webhook configured, dropping lead event", nil)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cs.webhookURL, bytes.NewReader(msg.Payload))
	if err != nil {
		cs.log.Error("crm-service", "Failed to build CRM request", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := cs.client.Do(req)
	if err != nil {
		cs.log.Error("crm-service", "CRM webhook delivery failed", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		cs.log.Error("crm-service", "CRM webhook rejected lead event", map[string]interface{}{
			"status": resp.StatusCode,
		})
		return
	}

	cs.log.Info("crm-service", "Lead forwarded to CRM", map[string]interface{}{
		"status": resp.StatusCode,
	})
}
