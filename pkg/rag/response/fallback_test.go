package response

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"sales-assistant-be/pkg/store"
)

func newTestComposer() *FallbackComposer {
	return NewFallbackComposer(rand.New(rand.NewSource(1)))
}

func TestFallbackBranchSelection(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		contains string
	}{
		{"products overview", "what products do you offer", "complete suite"},
		{"first greeting", "hello there", "exploring options"},
		{"about", "what is palms exactly", "99.9% inventory accuracy"},
		{"pricing", "how much does it cost", "ROI in 6-12 months"},
		{"features", "what features do you have", "Real-time Inventory Tracking"},
		{"integration", "does it connect to SAP", "integration team"},
		{"mobile", "do you have a mobile app", "PALMS™ Mobile"},
		{"industry", "we are in manufacturing", "manufacturing"},
		{"problems", "we have an accuracy problem", "bottom line"},
		{"clients", "who uses your system", "success stories"},
		{"comparison", "how are you better than competitors", "Industry average"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			composer := newTestComposer()
			session := store.NewSession("s1")
			reply := composer.Respond(tt.message, "", session)
			assert.Contains(t, reply, tt.contains)
		})
	}
}

func TestFallbackDeclineSticksAndBlocksDemo(t *testing.T) {
	composer := newTestComposer()
	session := store.NewSession("s1")

	reply := composer.Respond("no demo please", "", session)
	assert.True(t, session.DemoDeclined)
	assert.Contains(t, reply, "No problem at all")

	reply = composer.Respond("ok show me a demo", "", session)
	assert.NotContains(t, reply, "schedule a personalized")
	assert.Contains(t, reply, "challenges are you trying to solve")
}

func TestFallbackDemoOffer(t *testing.T) {
	composer := newTestComposer()
	session := store.NewSession("s1")

	reply := composer.Respond("can I see a demo", "", session)
	assert.Contains(t, reply, "schedule a personalized")
}

func TestFallbackRepeatGreeting(t *testing.T) {
	composer := newTestComposer()
	session := store.NewSession("s1")
	session.AppendMessage(store.RoleUser, "hello")
	session.AppendMessage(store.RoleAssistant, "Hello!")

	reply := composer.Respond("hi", "", session)
	assert.Contains(t, reply, "Hello again")
}

func TestFallbackIntentClarification(t *testing.T) {
	composer := newTestComposer()
	session := store.NewSession("s1")
	session.MessageCount = 1
	session.LeadScore = 5

	reply := composer.Respond("hmm okay", "", session)
	assert.Contains(t, reply, "①")
}

func TestFallbackStageDefaults(t *testing.T) {
	t.Run("hot lead asks for demo time", func(t *testing.T) {
		composer := newTestComposer()
		session := store.NewSession("s1")
		session.Stage = store.StageHotLead
		session.MessageCount = 5
		session.LeadScore = 70

		reply := composer.Respond("interesting stuff", "", session)
		assert.Contains(t, reply, "30-minute demo")
	})

	t.Run("warm lead probes decision factor", func(t *testing.T) {
		composer := newTestComposer()
		session := store.NewSession("s1")
		session.Stage = store.StageWarmLead
		session.MessageCount = 5
		session.LeadScore = 35

		reply := composer.Respond("interesting stuff", "", session)
		assert.Contains(t, reply, "WMS decision")
	})

	t.Run("long conversation invites questions", func(t *testing.T) {
		composer := newTestComposer()
		session := store.NewSession("s1")
		session.MessageCount = 5
		session.LeadScore = 20
		for i := 0; i < 4; i++ {
			session.AppendMessage(store.RoleUser, "msg")
		}

		reply := composer.Respond("interesting stuff", "", session)
		assert.Contains(t, reply, "What questions do you still have")
	})

	t.Run("cold default draws from opener bucket", func(t *testing.T) {
		composer := newTestComposer()
		session := store.NewSession("s1")
		session.MessageCount = 5
		session.LeadScore = 0

		reply := composer.Respond("interesting stuff", "", session)
		assert.True(t,
			strings.Contains(reply, "What brings you here today") ||
				strings.Contains(reply, "biggest priority right now") ||
				strings.Contains(reply, "what matters most to your operation"))
	})
}

func TestExtractContextInfo(t *testing.T) {
	context := "PALMS delivers accuracy of 99.9 percent. Orders flow faster. Efficiency gains follow quickly. Accuracy audits confirm results."

	t.Run("keeps at most two matching sentences", func(t *testing.T) {
		got := extractContextInfo(context, []string{"accuracy"})
		assert.Equal(t, "PALMS delivers accuracy of 99.9 percent Accuracy audits confirm results", got)
	})

	t.Run("empty context", func(t *testing.T) {
		assert.Equal(t, "", extractContextInfo("", []string{"accuracy"}))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Equal(t, "", extractContextInfo(context, []string{"pricing"}))
	})
}
