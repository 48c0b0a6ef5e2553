package flow

import (
	"fmt"
	"strings"

	"sales-assistant-be/pkg/sales/qualifier"
	"sales-assistant-be/pkg/store"
)

// nextStepPhrases gate the multi-touch ladder: progression nudges only fire
// on "where do we go from here" style messages, never on content questions.
var nextStepPhrases = []string{
	"what now", "next step", "what should", "how do i proceed",
	"what do you recommend", "ready to move", "lets go", "let's proceed",
}

var touchLadder = map[string]map[string]string{
	store.StrategyAwareness: {
		"touch_1": "I'd love to help you understand warehouse management solutions! Are you currently facing any specific challenges with inventory accuracy, order processing speed, or warehouse efficiency?",
		"touch_2": "Many businesses struggle with warehouse optimization. PALMS™ helps companies achieve 99.9% inventory accuracy and 40% faster operations. What's your biggest warehouse pain point?",
		"touch_3": "Based on our conversation, it sounds like you're exploring options. Would it be helpful if I shared some success stories from businesses similar to yours?",
	},
	store.StrategyNurtureCold: {
		"touch_1": "Great questions! Let me share how PALMS™ specifically addresses those challenges with real measurable results...",
		"touch_2": "I can see you're evaluating your options carefully. Here's how we compare to other solutions in the market...",
		"touch_3": "Based on your requirements, I'd like to show you some relevant case studies. What industry are you in?",
	},
	store.StrategyNurtureWarm: {
		"touch_1": "Excellent - you clearly understand the value of a robust WMS. Let me provide specific ROI calculations for businesses like yours...",
		"touch_2": "Your questions show you're serious about implementation. Would you like to see a customized demo showing how PALMS™ handles your specific requirements?",
		"touch_3": "I can tell you're ready to move forward. Let's schedule a personalized consultation to map out your implementation timeline and ROI projections.",
	},
	store.StrategyDirectSales: {
		"touch_1": "Perfect! Based on your needs and timeline, PALMS™ is exactly what you're looking for. I'd like to connect you with our senior solutions consultant for a detailed demo.",
		"touch_2": "Your requirements align perfectly with our enterprise solutions. Let's schedule a technical deep-dive session with our implementation team.",
		"touch_3": "Great! I can connect you with our sales team who can provide detailed pricing and create a customized implementation plan for your business.",
	},
}

// NextTouch returns the canned progression message for the session's current
// rung, or ("", false) when the message is not a next-step query. The touch
// counter only advances when a rung is actually selected, and the ladder caps
// at the third rung.
func NextTouch(message string, session *store.Session, engagementStrategy string) (string, bool) {
	messageLower := strings.ToLower(message)

	if !qualifier.ContainsAny(messageLower, nextStepPhrases) {
		return "", false
	}

	ladder, ok := touchLadder[engagementStrategy]
	if !ok {
		return "", false
	}

	session.TouchCount++
	touch := session.TouchCount
	if touch > 3 {
		touch = 3
	}

	response, ok := ladder[fmt.Sprintf("touch_%d", touch)]
	return response, ok
}

// QualifyingQuestions returns the stage-appropriate discovery questions for
// an engagement strategy.
func QualifyingQuestions(engagementStrategy string) []string {
	questions := map[string][]string{
		store.StrategyAwareness: {
			"What brings you to explore warehouse management solutions today?",
			"Are you currently using any WMS or still managing inventory manually?",
			"What's your biggest warehouse challenge right now?",
		},
		store.StrategyNurtureCold: {
			"What's your current warehouse size and daily order volume?",
			"How are you handling inventory accuracy issues currently?",
			"What's your timeline for implementing a new system?",
		},
		store.StrategyNurtureWarm: {
			"Who else is involved in this decision-making process?",
			"What's your budget range for a WMS implementation?",
			"When would you ideally like to go live with a new system?",
		},
		store.StrategyDirectSales: {
			"Would you like to schedule a demo for next week?",
			"Who would be the key stakeholders for this decision?",
			"What's your procurement process for software purchases?",
		},
	}

	if q, ok := questions[engagementStrategy]; ok {
		return q
	}
	return questions[store.StrategyAwareness]
}
