package response

import (
	"fmt"
	"math/rand"
	"strings"

	"sales-assistant-be/pkg/sales/qualifier"
	"sales-assistant-be/pkg/store"
)

// FallbackComposer answers without any generation capability: a fixed rule
// table keyed on message keywords, tested in priority order, with short
// excerpts interpolated from the retrieved context. Branch selection is
// deterministic; only the final default bucket draws from the injected
// random source.
type FallbackComposer struct {
	rng *rand.Rand
}

func NewFallbackComposer(rng *rand.Rand) *FallbackComposer {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &FallbackComposer{rng: rng}
}

var (
	fbProductsWords    = []string{"products", "solutions", "all products", "what do you offer", "modules", "editions"}
	fbGreetingWords    = []string{"hello", "hi", "hey", "good morning", "good afternoon"}
	fbAboutWords       = []string{"what is palms", "about palms", "palms wms", "what does palms do"}
	fbPricingWords     = []string{"price", "cost", "pricing", "how much", "budget"}
	fbDeclineWords     = []string{"no demo", "not interested", "do not want", "don't want", "no thanks", "not now", "decline", "pass"}
	fbDemoWords        = []string{"demo", "demonstration", "show me", "see it"}
	fbFeatureWords     = []string{"features", "capabilities", "what does", "benefits", "functionality"}
	fbIntegrationWords = []string{"integration", "erp", "systems", "connect", "api"}
	fbMobileWords      = []string{"mobile", "handheld", "scanning", "app", "technology"}
	fbIndustryWords    = []string{"manufacturing", "retail", "ecommerce", "3pl", "cold storage", "automotive"}
	fbProblemWords     = []string{"problem", "challenge", "issue", "difficulty", "inefficient"}
	fbClientsWords     = []string{"clients", "customers", "case studies", "success stories", "who uses"}
	fbComparisonWords  = []string{"compared to", "versus", "vs", "better than", "difference"}
	fbOpenerWords      = []string{"hello", "hi", "what is palms"}
)

// extractContextInfo pulls up to two sentences containing any of the
// keywords out of the retrieved context for light interpolation.
func extractContextInfo(context string, keywords []string) string {
	if context == "" {
		return ""
	}
	contextLower := strings.ToLower(context)

	var relevant []string
	for _, keyword := range keywords {
		if !strings.Contains(contextLower, keyword) {
			continue
		}
		for _, sentence := range strings.Split(context, ".") {
			if strings.Contains(strings.ToLower(sentence), keyword) {
				relevant = append(relevant, strings.TrimSpace(sentence))
			}
		}
	}

	if len(relevant) > 2 {
		relevant = relevant[:2]
	}
	return strings.Join(relevant, " ")
}

// Respond picks exactly one branch for the message; the first matching branch
// in priority order wins.
func (f *FallbackComposer) Respond(message, relevantContext string, session *store.Session) string {
	messageLower := strings.ToLower(message)

	switch {
	case qualifier.ContainsAny(messageLower, fbProductsWords):
		productsInfo := extractContextInfo(relevantContext, []string{"wms", "3pl", "enterprise", "mobile", "analytics"})
		return fmt.Sprintf(`PALMS™ offers a complete suite of warehouse management solutions:

• **PALMS™ WMS** - Core warehouse management with 99.9%% inventory accuracy
• **PALMS™ 3PL** - Third-party logistics with multi-client management
• **PALMS™ Enterprise** - Large-scale operations with advanced customization
• **PALMS™ Mobile** - Mobile operations and barcode scanning
• **PALMS™ Analytics** - Business intelligence and reporting platform

Each solution delivers 40%% faster picking and dramatically improves warehouse efficiency. %s

What's your warehouse size and industry so I can recommend the perfect fit for your operation?`, productsInfo)

	case qualifier.ContainsAny(messageLower, fbGreetingWords):
		if len(session.ConversationHistory) == 0 {
			return "Hello! I'm here to help with PALMS™ warehouse management solutions.\nAre you exploring options or need something specific?"
		}
		return "Hello again! How can I help you with PALMS™ today?"

	case qualifier.ContainsAny(messageLower, fbAboutWords):
		return "PALMS™ is a warehouse management system with 99.9% inventory accuracy and automated order processing.\nWhat's your warehouse size? I can show you specific benefits for your operation."

	case qualifier.ContainsAny(messageLower, fbPricingWords):
		return "PALMS™ pricing depends on warehouse size and features needed - typically ROI in 6-12 months.\nWhat's your warehouse size and daily order volume for accurate pricing?"

	case qualifier.ContainsAny(messageLower, fbDeclineWords):
		session.DemoDeclined = true
		return "No problem at all! I'm happy to answer any questions about PALMS™ features and benefits.\nWhat specific warehouse challenges are you facing?"

	case qualifier.ContainsAny(messageLower, fbDemoWords):
		if session.DemoDeclined {
			return "I can answer any questions about PALMS™ features and benefits.\nWhat specific warehouse challenges are you trying to solve?"
		}
		return "Great! I can schedule a personalized PALMS™ demo with real-time tracking and ROI calculator.\nWhat industry are you in so I can tailor it for your needs?"

	case qualifier.ContainsAny(messageLower, fbFeatureWords):
		featuresInfo := extractContextInfo(relevantContext, []string{"features", "capabilities", "tracking", "automation", "integration"})
		return fmt.Sprintf(`PALMS™ offers comprehensive warehouse management capabilities:

• **Real-time Inventory Tracking** - 99.9%% accuracy eliminates stock discrepancies
• **Automated Order Processing** - Smart queuing speeds up fulfillment
• **AI-Driven Space Optimization** - Up to 60%% better storage efficiency
• **Mobile Picking & Scanning** - Seamless handheld device integration
• **Advanced Analytics** - Insights and reporting you never had before
• **Multi-Warehouse Management** - Centralized control across locations
• **ERP Integration** - Works with 50+ systems including SAP and Oracle

%s

Which of these areas is causing the biggest headache in your current operation?`, featuresInfo)

	case qualifier.ContainsAny(messageLower, fbIntegrationWords):
		integrationInfo := extractContextInfo(relevantContext, []string{"integration", "erp", "sap", "oracle", "api", "edi"})
		return fmt.Sprintf("Excellent question! PALMS™ plays very well with others. We integrate seamlessly with all major ERP systems including SAP, Oracle, Microsoft Dynamics, and over 50 other platforms. %s Whether you need EDI connections, REST APIs, or real-time data synchronization, our integration team has you covered. We actually achieve 99%% successful go-lives within just 4-8 weeks. What ERP or software systems are you currently using?", integrationInfo)

	case qualifier.ContainsAny(messageLower, fbMobileWords):
		mobileInfo := extractContextInfo(relevantContext, []string{"mobile", "scanning", "handheld", "barcode", "rfid"})
		return fmt.Sprintf("Yes! PALMS™ Mobile is a game-changer. %s It enables barcode/RFID scanning, real-time updates, mobile picking with optimized paths, worker tracking, and task management. Works on any Android/iOS device with offline capability. Many clients report 30%% productivity improvements. Are you currently using handheld devices or looking to implement them?", mobileInfo)

	case qualifier.ContainsAny(messageLower, fbIndustryWords):
		industry := "your industry"
		for _, candidate := range fbIndustryWords {
			if strings.Contains(messageLower, candidate) {
				industry = candidate
				break
			}
		}
		industryInfo := extractContextInfo(relevantContext, []string{industry, "industry"})
		return fmt.Sprintf(`Perfect! PALMS™ has extensive experience in %[1]s. We offer specialized features:

• **Industry-Specific Workflows** - Tailored processes for %[1]s operations
• **Compliance Tracking** - FDA, GMP, and regulatory requirements
• **Lot/Batch Control** - Complete traceability and quality management
• **Optimized Processes** - Best practices from %[1]s leaders

%[2]s

Our %[1]s clients typically see 35-50%% efficiency improvements. What are your biggest operational challenges right now?`, industry, industryInfo)

	case qualifier.ContainsAny(messageLower, fbProblemWords):
		problemsInfo := extractContextInfo(relevantContext, []string{"accuracy", "errors", "efficiency", "problems"})
		return fmt.Sprintf("I understand - warehouse challenges directly impact your bottom line. %s PALMS™ addresses common issues: inventory inaccuracy → 99.9%% accuracy, slow picking → 40%% faster, space waste → 60%% optimization, manual errors → 45%% reduction, poor visibility → real-time tracking. What specific challenges are costing you the most right now?", problemsInfo)

	case qualifier.ContainsAny(messageLower, fbClientsWords):
		return `PALMS™ serves diverse industries with impressive results:

• **Manufacturing** - 40% faster picking, 60% space optimization
• **Retail & E-commerce** - 99.9% inventory accuracy, faster order fulfillment
• **3PL & Logistics** - Multi-client management, automated billing
• **Cold Storage** - Temperature monitoring, compliance tracking
• **Automotive** - Serial number tracking, JIT delivery
• **Electronics** - Component management, quality control

Key client achievements:
• Reduced picking errors by 45%
• Increased throughput by 30%
• ROI achieved within 6-12 months
• 99% successful implementations

What industry are you in? I can share specific success stories relevant to your business.`

	case qualifier.ContainsAny(messageLower, fbComparisonWords):
		return fmt.Sprintf(`Great question! Here's how PALMS™ stands out:

• **99.9%% Inventory Accuracy** - Industry average is only 63%%
• **4-8 Week Implementation** - Others take 6+ months
• **Mobile-First Design** - Comprehensive handheld integration
• **Flexible Deployment** - Cloud, on-premise, or hybrid options
• **Superior ROI** - 6-12 month payback period
• **Exceptional Support** - 24/7 technical assistance

%s

Are you currently evaluating other WMS solutions? I can do a detailed comparison.`, extractContextInfo(relevantContext, []string{"advantage", "performance", "roi"}))

	case session.MessageCount <= 2 && session.LeadScore <= 15 && !qualifier.ContainsAny(messageLower, fbOpenerWords):
		return "I'd love to help you find the right warehouse solution! Are you: ① Just exploring WMS options ② Looking for specific pricing ③ Need help deciding between solutions ④ Ready to book a demo? This helps me provide the most relevant information for your situation."

	default:
		return f.defaultReply(relevantContext, session)
	}
}

// defaultReply is the stage-dependent default bucket. For early cold
// conversations it draws one of three openers from the injected random
// source; everything else is deterministic.
func (f *FallbackComposer) defaultReply(relevantContext string, session *store.Session) string {
	switch {
	case session.Stage == store.StageHotLead:
		return "Based on our conversation, PALMS™ seems like a perfect fit for your needs. With your level of interest and requirements, I'd recommend scheduling a personalized demo to see exactly how we can solve your warehouse challenges and calculate your specific ROI. When would be a good time for a 30-minute demo?"

	case session.Stage == store.StageWarmLead:
		return fmt.Sprintf("Thanks for your continued interest! %s PALMS™ has helped businesses like yours achieve dramatic warehouse improvements. What's the most important factor in your WMS decision - ROI timeline, ease of implementation, or specific functionality?", extractContextInfo(relevantContext, []string{"benefits", "roi", "efficiency"}))

	case len(session.ConversationHistory) >= 4:
		return "I've shared quite a bit about PALMS™ capabilities. What questions do you still have? I'm here to help you understand exactly how we can solve your warehouse challenges and improve your operations."

	default:
		responses := []string{
			fmt.Sprintf("I'm here to help you discover how PALMS™ can optimize your warehouse operations. %s What brings you here today - inventory accuracy issues, slow order processing, or other warehouse challenges?", extractContextInfo(relevantContext, []string{"accuracy", "efficiency"})),
			fmt.Sprintf("Welcome to PALMS™! %s We help businesses achieve 99.9%% inventory accuracy and dramatically faster operations. What aspect of warehouse management is your biggest priority right now?", extractContextInfo(relevantContext, []string{"benefits", "performance"})),
			fmt.Sprintf("Great to connect! %s PALMS™ specializes in turning warehouse challenges into competitive advantages. Whether it's inventory accuracy, order speed, or space optimization - what matters most to your operation?", extractContextInfo(relevantContext, []string{"solutions", "clients"})),
		}
		return responses[f.rng.Intn(len(responses))]
	}
}
