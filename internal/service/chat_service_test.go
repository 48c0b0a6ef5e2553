package service

import (
	"context"
	"encoding/json"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-assistant-be/internal/dto"
	"sales-assistant-be/internal/repository/memory"
	"sales-assistant-be/pkg/embedding"
	"sales-assistant-be/pkg/rag/response"
	"sales-assistant-be/pkg/store"
)

func newChatFixture() (IChatService, *fakeRetriever, *memory.SessionRepository) {
	sessions := memory.NewSessionRepository()
	retriever := &fakeRetriever{context: "PALMS delivers accuracy of 99.9 percent."}
	generator := response.NewGenerator(nil, rand.New(rand.NewSource(1)), nopLogger{})
	knowledge := NewKnowledgeService(&fakeChunkRepo{}, embedding.NewDeterministicProvider(), "missing.txt", nopLogger{})
	svc := NewChatService(sessions, retriever, generator, knowledge, &fakeLeadRepo{}, false, nopLogger{})
	return svc, retriever, sessions
}

func TestSendMessageHandoffSkipsRetrieval(t *testing.T) {
	svc, retriever, _ := newChatFixture()

	resp, err := svc.SendMessage(context.Background(), &dto.SendMessageRequest{
		SessionId: "s1",
		Message:   "I want to speak to someone",
	})
	require.NoError(t, err)

	assert.True(t, resp.ShowDemoForm)
	assert.Contains(t, resp.Message, "connect you with our sales team")
	assert.Equal(t, 0, retriever.calls, "handoff must not hit the knowledge base")
}

func TestSendMessageGeneratesSessionId(t *testing.T) {
	svc, _, sessions := newChatFixture()

	resp, err := svc.SendMessage(context.Background(), &dto.SendMessageRequest{Message: "hello"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.SessionId)
	_, ok := sessions.Get(resp.SessionId)
	assert.True(t, ok)
}

func TestSendMessageDemoRequestShowsForm(t *testing.T) {
	svc, retriever, _ := newChatFixture()

	resp, err := svc.SendMessage(context.Background(), &dto.SendMessageRequest{
		SessionId: "s1",
		Message:   "can you schedule a demo for me",
	})
	require.NoError(t, err)

	assert.True(t, resp.ShowDemoForm)
	assert.Equal(t, 1, retriever.calls)
}

func TestSendMessageDeclineWinsOverDemoWords(t *testing.T) {
	svc, _, sessions := newChatFixture()

	resp, err := svc.SendMessage(context.Background(), &dto.SendMessageRequest{
		SessionId: "s1",
		Message:   "no demo thanks, maybe later",
	})
	require.NoError(t, err)

	assert.False(t, resp.ShowDemoForm)
	session, ok := sessions.Get("s1")
	require.True(t, ok)
	assert.True(t, session.DemoDeclined)
}

func TestSendMessageYesAfterDemoOfferShowsForm(t *testing.T) {
	svc, _, sessions := newChatFixture()

	session := sessions.GetOrCreate("s1")
	session.AppendMessage(store.RoleUser, "tell me more")
	session.AppendMessage(store.RoleAssistant, "Would you like a personalized demo of the platform?")

	resp, err := svc.SendMessage(context.Background(), &dto.SendMessageRequest{
		SessionId: "s1",
		Message:   "yes sounds great",
	})
	require.NoError(t, err)

	assert.True(t, resp.ShowDemoForm)
}

func TestSendMessageScoresAndTracksHistory(t *testing.T) {
	svc, _, sessions := newChatFixture()

	resp, err := svc.SendMessage(context.Background(), &dto.SendMessageRequest{
		SessionId: "s1",
		Message:   "how much does pricing cost",
	})
	require.NoError(t, err)

	assert.Greater(t, resp.LeadScore, 0)
	assert.NotEmpty(t, resp.Stage)
	assert.NotEmpty(t, resp.TofuData.EngagementStrategy)

	session, ok := sessions.Get("s1")
	require.True(t, ok)
	require.Len(t, session.ConversationHistory, 2)
	assert.Equal(t, store.RoleUser, session.ConversationHistory[0].Role)
	assert.Equal(t, store.RoleAssistant, session.ConversationHistory[1].Role)
	assert.Equal(t, resp.Message, session.ConversationHistory[1].Content)
}

func TestSendMessageSerializesConcurrentTurns(t *testing.T) {
	svc, _, sessions := newChatFixture()

	const turns = 10
	var wg sync.WaitGroup
	wg.Add(turns)
	for i := 0; i < turns; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.SendMessage(context.Background(), &dto.SendMessageRequest{
				SessionId: "s1",
				Message:   "what is the pricing",
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	session, ok := sessions.Get("s1")
	require.True(t, ok)
	assert.Equal(t, turns*10, session.LeadScore, "every pricing turn must land its score")
	assert.Equal(t, turns, session.MessageCount)
	assert.Len(t, session.ConversationHistory, turns*2)
}

func TestSendMessageSignalsNeverNil(t *testing.T) {
	svc, _, _ := newChatFixture()

	resp, err := svc.SendMessage(context.Background(), &dto.SendMessageRequest{
		SessionId: "s1",
		Message:   "hello",
	})
	require.NoError(t, err)

	require.NotNil(t, resp.TofuData.QualificationSignals)
	encoded, err := json.Marshal(resp.TofuData)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"qualification_signals":[]`)
}

func TestHealthReportsCounts(t *testing.T) {
	svc, _, sessions := newChatFixture()
	sessions.GetOrCreate("s1")
	sessions.GetOrCreate("s2")

	health, err := svc.Health(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, int64(0), health.KnowledgeChunks)
	assert.Equal(t, int64(0), health.CapturedLeads)
	assert.Equal(t, 2, health.ActiveSessions)
	assert.False(t, health.LlmEnabled)
}
