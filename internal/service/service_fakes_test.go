package service

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"

	"sales-assistant-be/internal/entity"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type fakeChunkRepo struct {
	chunks       []*entity.KnowledgeChunk
	createCalls  int
	deleteCalls  int
	searchCalls  int
	searchResult []*entity.KnowledgeChunk
}

func (r *fakeChunkRepo) CreateBulk(ctx context.Context, chunks []*entity.KnowledgeChunk) error {
	r.createCalls++
	r.chunks = append(r.chunks, chunks...)
	return nil
}

func (r *fakeChunkRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.chunks)), nil
}

func (r *fakeChunkRepo) DeleteAll(ctx context.Context) error {
	r.deleteCalls++
	r.chunks = nil
	return nil
}

func (r *fakeChunkRepo) SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*entity.KnowledgeChunk, error) {
	r.searchCalls++
	if len(r.searchResult) > limit {
		return r.searchResult[:limit], nil
	}
	return r.searchResult, nil
}

type fakeLeadRepo struct {
	leads []*entity.Lead
}

func (r *fakeLeadRepo) Create(ctx context.Context, lead *entity.Lead) error {
	r.leads = append(r.leads, lead)
	return nil
}

func (r *fakeLeadRepo) FindBySessionId(ctx context.Context, sessionId string) ([]*entity.Lead, error) {
	var found []*entity.Lead
	for _, lead := range r.leads {
		if lead.SessionId == sessionId {
			found = append(found, lead)
		}
	}
	return found, nil
}

func (r *fakeLeadRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.leads)), nil
}

type fakeRetriever struct {
	calls   int
	context string
}

func (f *fakeRetriever) Retrieve(ctx context.Context, query string) string {
	f.calls++
	return f.context
}

type capturingPublisher struct {
	topics   []string
	payloads [][]byte
}

func (p *capturingPublisher) Publish(topic string, messages ...*message.Message) error {
	for _, msg := range messages {
		p.topics = append(p.topics, topic)
		p.payloads = append(p.payloads, msg.Payload)
	}
	return nil
}

func (p *capturingPublisher) Close() error { return nil }
