package qualifier

import (
	"strings"

	"sales-assistant-be/pkg/store"
)

// ContainsAny reports whether any of the phrases occurs in text. Callers are
// expected to pass lower-cased text.
func ContainsAny(text string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}

// --- Enhanced qualification pass (intent / authority / timeline / budget) ---

type signalTier struct {
	level    string
	score    int
	tagged   bool // only the top tier records a "{category}_{level}" tag
	keywords []string
}

type signalCategory struct {
	name  string
	tiers []signalTier
}

// qualificationSignals is evaluated in order; every matched keyword adds its
// tier score, so repeated signals in one message accumulate.
var qualificationSignals = []signalCategory{
	{
		name: "intent_signals",
		tiers: []signalTier{
			{level: "high", score: 25, tagged: true, keywords: []string{"need solution", "looking for", "evaluating", "budget approved", "decision maker", "procurement"}},
			{level: "medium", score: 15, keywords: []string{"interested in", "want to know", "considering", "exploring options"}},
			{level: "low", score: 5, keywords: []string{"just curious", "browsing", "maybe later", "just looking"}},
		},
	},
	{
		name: "authority_signals",
		tiers: []signalTier{
			{level: "high", score: 25, tagged: true, keywords: []string{"ceo", "cto", "warehouse manager", "operations director", "procurement manager"}},
			{level: "medium", score: 15, keywords: []string{"supervisor", "team lead", "analyst", "coordinator"}},
			{level: "low", score: 5, keywords: []string{"intern", "student", "researcher"}},
		},
	},
	{
		name: "timeline_signals",
		tiers: []signalTier{
			{level: "urgent", score: 25, tagged: true, keywords: []string{"asap", "immediately", "this quarter", "next month"}},
			{level: "near_term", score: 15, keywords: []string{"in 3 months", "this year", "soon"}},
			{level: "long_term", score: 5, keywords: []string{"next year", "future", "someday"}},
		},
	},
	{
		name: "budget_signals",
		tiers: []signalTier{
			{level: "confirmed", score: 25, tagged: true, keywords: []string{"budget approved", "funds allocated", "ready to purchase"}},
			{level: "exploring", score: 15, keywords: []string{"budget planning", "cost analysis", "roi calculation"}},
			{level: "unclear", score: 5, keywords: []string{"just researching", "preliminary"}},
		},
	},
}

// EnhancedQualification runs the tiered signal pass, accumulating score and
// recording "{category}_{level}" tags for top-tier matches.
func EnhancedQualification(message string, session *store.Session) {
	messageLower := strings.ToLower(message)

	for _, category := range qualificationSignals {
		for _, tier := range category.tiers {
			for _, keyword := range tier.keywords {
				if strings.Contains(messageLower, keyword) {
					session.LeadScore += tier.score
					if tier.tagged {
						session.QualificationSignals = append(session.QualificationSignals,
							category.name+"_"+tier.level)
					}
				}
			}
		}
	}
}

// --- Intent scoring pass (keyword membership rule table) ---

var (
	pricingWords      = []string{"price", "cost", "pricing", "how much", "budget", "expensive", "affordable"}
	demoPositiveWords = []string{"demo", "demonstration", "show me", "try", "test", "trial", "see it"}
	demoNegativeWords = []string{"no demo", "not interested", "do not want", "don't want", "no thanks", "not now", "decline"}
	featureWords      = []string{"warehouse", "inventory", "wms", "problems", "challenges", "features", "capabilities"}
	timelineWords     = []string{"timeline", "when", "implementation", "go live", "urgent", "asap", "soon"}
	companyWords      = []string{"company", "business", "we are", "our warehouse", "my company", "organization"}
	comparisonWords   = []string{"compare", "versus", "vs", "alternative", "better than", "difference"}
	industries        = []string{"manufacturing", "retail", "ecommerce", "3pl", "logistics", "distribution", "automotive", "pharmaceutical"}
	sizeIndicators    = []string{"warehouse", "warehouses", "facility", "facilities", "sqft", "square feet", "employees", "staff"}
	greetingWords     = []string{"hello", "hi", "hey", "what is palms", "about palms"}
)

// AnalyzeIntent applies the additive keyword rule table, recomputes the
// conversation stage, and tracks message progression. Every matching rule
// fires; a single message can trigger several.
func AnalyzeIntent(message string, session *store.Session) {
	messageLower := strings.ToLower(message)

	// Pricing interest (high buying intent)
	if ContainsAny(messageLower, pricingWords) {
		session.LeadScore += 10
		session.AddInterest("pricing")
	}

	// Demo/trial interest (very high buying intent) - but respect decline status
	hasDemoPositive := ContainsAny(messageLower, demoPositiveWords)
	hasDemoNegative := ContainsAny(messageLower, demoNegativeWords)
	if hasDemoPositive && !hasDemoNegative {
		session.LeadScore += 30
		session.AddInterest("demo")
	} else if hasDemoNegative {
		session.DemoDeclined = true
	}

	// Technical/feature interest (moderate buying intent)
	if ContainsAny(messageLower, featureWords) {
		session.LeadScore += 15
		session.AddInterest("features")
	}

	// Timeline/urgency (high buying intent)
	if ContainsAny(messageLower, timelineWords) {
		session.LeadScore += 25
		session.AddInterest("timeline")
	}

	// Company/business details (qualification signal)
	if ContainsAny(messageLower, companyWords) {
		session.LeadScore += 20
		session.QualificationLevel++
	}

	// Comparison shopping (buying intent)
	if ContainsAny(messageLower, comparisonWords) {
		session.LeadScore += 15
		session.AddInterest("comparison")
	}

	// Industry-specific mentions (qualification signal)
	for _, industry := range industries {
		if strings.Contains(messageLower, industry) {
			session.LeadScore += 10
			session.Industry = industry
			break
		}
	}

	// Size indicators (qualification signal)
	if ContainsAny(messageLower, sizeIndicators) {
		session.QualificationLevel++
	}

	session.Stage = computeStage(session.LeadScore, session.QualificationLevel)

	// Track conversation progression
	session.MessageCount++

	// Early conversation, low engagement, and no recognizable opener: the
	// orchestrator may ask an intent-clarifying question.
	if session.MessageCount <= 3 &&
		session.LeadScore <= 15 &&
		!ContainsAny(messageLower, greetingWords) {
		session.NeedsIntentClarification = true
	}
}

// computeStage derives the lead temperature purely from the current score and
// qualification level. It is recomputed fresh every turn, never transitioned.
func computeStage(score, qualification int) string {
	switch {
	case score >= 60 || (score >= 40 && qualification >= 2):
		return store.StageHotLead
	case score >= 30 || (score >= 20 && qualification >= 1):
		return store.StageWarmLead
	case score >= 15:
		return store.StageInterested
	default:
		return store.StageColdLead
	}
}

// EngagementStrategy buckets the session for the multi-touch flow. Pure
// function of score and recorded signal tags, independent of Stage.
func EngagementStrategy(session *store.Session) string {
	if session.LeadScore >= 75 {
		return store.StrategyDirectSales
	}
	for _, signal := range session.QualificationSignals {
		if strings.Contains(signal, "high") {
			return store.StrategyDirectSales
		}
	}
	if session.LeadScore >= 40 {
		return store.StrategyNurtureWarm
	}
	if session.LeadScore >= 20 {
		return store.StrategyNurtureCold
	}
	return store.StrategyAwareness
}
