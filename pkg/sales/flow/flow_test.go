package flow

import (
	"strings"
	"testing"

	"sales-assistant-be/pkg/store"
)

func TestNextTouchGatedOnNextStepQuery(t *testing.T) {
	session := store.NewSession("test")

	if _, ok := NextTouch("tell me about your features", session, store.StrategyDirectSales); ok {
		t.Error("content question must not select a touch rung")
	}
	if session.TouchCount != 0 {
		t.Errorf("touch count advanced on non-next-step message: %d", session.TouchCount)
	}

	msg, ok := NextTouch("what's the next step?", session, store.StrategyDirectSales)
	if !ok || msg == "" {
		t.Fatal("next-step query should select a rung")
	}
	if session.TouchCount != 1 {
		t.Errorf("touch count = %d, want 1", session.TouchCount)
	}
}

func TestNextTouchLadderCapsAtThree(t *testing.T) {
	session := store.NewSession("test")

	var last string
	for i := 0; i < 5; i++ {
		msg, ok := NextTouch("ready to move forward", session, store.StrategyNurtureWarm)
		if !ok {
			t.Fatalf("rung %d not selected", i+1)
		}
		last = msg
	}

	if session.TouchCount != 5 {
		t.Errorf("touch count = %d, want 5", session.TouchCount)
	}
	if !strings.Contains(last, "consultation") {
		t.Errorf("ladder should stay pinned at touch_3, got %q", last)
	}
}

func TestQualifyingQuestionsFallback(t *testing.T) {
	got := QualifyingQuestions("unknown_strategy")
	want := QualifyingQuestions(store.StrategyAwareness)
	if len(got) != len(want) || got[0] != want[0] {
		t.Error("unknown strategy should fall back to awareness questions")
	}
}
