package response

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"

	"sales-assistant-be/internal/pkg/logger"
	"sales-assistant-be/pkg/llm"
	"sales-assistant-be/pkg/store"
)

// Generator is the two-layer response composer: an extraction call condenses
// retrieved context into facts, a sales call turns the facts plus session
// state into the reply. With no LLM provider configured it runs entirely on
// the deterministic fallback table.
type Generator struct {
	llmProvider llm.LLMProvider // nil means fallback-only mode
	fallback    *FallbackComposer
	logger      logger.ILogger
}

func NewGenerator(llmProvider llm.LLMProvider, rng *rand.Rand, log logger.ILogger) *Generator {
	return &Generator{
		llmProvider: llmProvider,
		fallback:    NewFallbackComposer(rng),
		logger:      log,
	}
}

// ExtractFacts is Layer 1: condense the retrieved context into the facts that
// answer the query. No conversational tone, no sales framing.
func (g *Generator) ExtractFacts(ctx context.Context, message, relevantContext string) string {
	if g.llmProvider == nil {
		return truncate(relevantContext, 500)
	}

	prompt := fmt.Sprintf(`%s

KNOWLEDGE BASE CONTEXT:
%s

USER QUERY: %s

Extract and return only the most relevant factual information that answers the user's query.
Focus on specific features, benefits, metrics, and technical details.`, retrievalPrompt, relevantContext, message)

	extracted, err := g.llmProvider.Chat(ctx,
		[]llm.Message{
			{Role: "system", Content: prompt},
			{Role: "user", Content: message},
		},
		llm.WithMaxTokens(400),
		llm.WithTemperature(0.2), // lower temperature for factual accuracy
	)
	if err != nil {
		g.logger.Warn("composer", "Extraction layer failed, using raw context", map[string]interface{}{"error": err.Error()})
		return truncate(relevantContext, 500)
	}

	return extracted
}

// SalesReply is Layer 2: a context-aware sales reply built from the extracted
// facts and conversation state.
func (g *Generator) SalesReply(ctx context.Context, message, extractedInfo string, session *store.Session) string {
	if g.llmProvider == nil {
		return g.fallback.Respond(message, extractedInfo, session)
	}

	history := session.LastMessages(8) // last 4 exchanges

	var contextSummary strings.Builder
	if len(history) >= 2 {
		contextSummary.WriteString("Previous conversation topics: ")
		for i := 0; i+1 < len(history); i += 2 {
			contextSummary.WriteString(fmt.Sprintf("User asked about: %s... ", truncate(history[i].Content, 50)))
		}
	}

	historyJSON := "First interaction"
	if len(history) > 0 {
		if encoded, err := json.Marshal(session.LastMessages(6)); err == nil {
			historyJSON = string(encoded)
		}
	}

	prompt := fmt.Sprintf(`%s

EXTRACTED PALMS™ INFORMATION:
%s

CONVERSATION CONTEXT:
- Lead Score: %d/100
- Lead Stage: %s
- %s
- Full conversation: %s

CURRENT USER MESSAGE: %s

RESPONSE GUIDELINES:
1. Keep responses to 2 lines maximum unless user asks for detailed explanation
2. Be direct and answer their specific question first
3. Respect demo decline status - don't push if they said no to demos
4. Use extracted information to be accurate and helpful
5. Add one brief follow-up question or next step if relevant
6. Be context-aware - don't repeat previous information
7. Demo declined status: %t

FORMATTING REQUIREMENTS:
- Maximum 2 lines unless user specifically asks for more details
- Line 1: Direct answer to their question with key facts
- Line 2: Brief follow-up or next step (if appropriate)
- Use bullet points only if they ask about multiple items
- Be conversational but concise

Generate a compelling, context-aware sales response:`,
		salesPrompt, extractedInfo, session.LeadScore, session.Stage,
		contextSummary.String(), historyJSON, message, session.DemoDeclined)

	reply, err := g.llmProvider.Chat(ctx,
		[]llm.Message{
			{Role: "system", Content: prompt},
			{Role: "user", Content: message},
		},
		llm.WithMaxTokens(400),
		llm.WithTemperature(0.7),
	)
	if err != nil {
		g.logger.Warn("composer", "Sales layer failed, using fallback", map[string]interface{}{"error": err.Error()})
		return g.fallback.Respond(message, extractedInfo, session)
	}

	return reply
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
