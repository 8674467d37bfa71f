package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dantalabs/leadscout/internal/ai"
	"github.com/dantalabs/leadscout/internal/dto"
)

// ErrMalformedDraft signals the oracle response could not be parsed into a
// subject/body pair. Drafting has no raw-material fallback, so this surfaces
// as a soft failure.
var ErrMalformedDraft = errors.New("draft response was not valid JSON")

// companyProfile is the sender persona injected into every draft prompt.
const companyProfile = `
  - COMPANY: Danta Labs
  - MISSION: Build, Scale & Deploy Enterprise AI Agents. We build the infrastructure for the next generation of autonomous software.
  - KEY PRODUCTS:
    1. "Maestro": An Agentic Cloud Platform (Infrastructure) for orchestration, evaluation, and execution of AI agents. Solves the problem of scaling agents across business functions.
    2. "Quack": An AI Lead Prospecting Agent. It qualifies leads on autopilot, interacts with clients, and updates CRM. Ideal for Sales & Marketing teams.
    3. "Colectia": An Automated Debt Collection Agent. Reviews accounts payable, contacts clients via WhatsApp/phone, and negotiates payment. Ideal for Finance/Banking/Retail.
  - VALUE PROPOSITION: We lower the barrier to enterprise adoption. We fix the "Scaling Problem" (poor integration, no observability, data governance) that causes 95% of GenAI pilots to fail.
  - FOUNDERS: Samuel Villaneda (CEO) & Santiago Canchila (CTO).
`

// Service generates cold-email drafts for a prospect contact.
type Service struct {
	oracle ai.Completer
}

// NewService wires a draft generator backed by the completion capability.
func NewService(oracle ai.Completer) *Service {
	return &Service{oracle: oracle}
}

// Generate asks the oracle for a subject/body pair tailored to the prospect.
func (s *Service) Generate(ctx context.Context, req dto.DraftRequest) (*dto.Draft, error) {
	text, err := s.oracle.Complete(ctx, buildDraftPrompt(req))
	if err != nil {
		return nil, fmt.Errorf("generate draft: %w", err)
	}

	var draft dto.Draft
	if err := json.Unmarshal([]byte(ai.StripCodeFences(text)), &draft); err != nil {
		return nil, ErrMalformedDraft
	}
	if strings.TrimSpace(draft.Subject) == "" || strings.TrimSpace(draft.Body) == "" {
		return nil, ErrMalformedDraft
	}

	return &draft, nil
}

func buildDraftPrompt(req dto.DraftRequest) string {
	industry := strings.TrimSpace(req.Industry)
	if industry == "" {
		industry = "Unknown"
	}

	var b strings.Builder
	b.WriteString(`ROLE: You are "Sam", CEO at Danta Labs.`)
	b.WriteString("\n\nYOUR PROFILE:\n")
	b.WriteString(companyProfile)

	fmt.Fprintf(&b, `
TARGET PROSPECT:
- Name: %s
- Position: %s
- Company: %s
- Industry: %s
- Website: %s

TASK:
Perform a "Deep Research" simulation to identify the prospect's likely operational bottlenecks based on their Industry and Position. Then write a high-level B2B Cold Email.

STRATEGY (Mental Chain of Thought):
1. **Analyze Industry:**
   - If Finance/Banking/Retail -> Pain point is likely "Debt Collection" or "Payment Ops". -> Pitch "Colectia".
   - If Agency/SaaS/Consulting -> Pain point is likely "Lead Qualification" or "Pipeline efficiency". -> Pitch "Quack".
   - If Enterprise/Tech -> Pain point is "Scaling AI" or "Data Governance". -> Pitch "Maestro".
   - If others -> Focus on "Automating Internal Processes" to reduce costs (Optimization).
2. **Analyze Position:**
   - CEO/Founder -> Cares about Growth, Cost Reduction, and Scalability.
   - CTO/Tech Lead -> Cares about Infrastructure, Security, and Integration (Maestro is key here).
   - Sales/Marketing VP -> Cares about Conversion Rates and Leads (Quack).
3. **Value Drop:** Do NOT mention SSL or PageSpeed unless it's critical. Focus on *Business Value* (Revenue, Efficiency, Automation).

EMAIL GUIDELINES:
- Language: English (Professional, US Business Standard).
- Tone: Insightful, Peer-to-Peer, Direct (No fluff).
- Opening: "I've been following [Company Name] and noticed..." (Cite a relevant observation about their scale/industry).
- Body: "Most [Industry] leaders I speak with struggle with [Specific Pain Point]. At Danta Labs, we solve this by [Specific Solution/Agent]."
- CTA: Low friction (e.g., "Worth a brief chat to see how this fits your roadmap?").
- Signature: Sam, Danta Labs.

OUTPUT FORMAT (JSON ONLY):
{
  "subject": "Catchy subject line (Max 6 words, focus on value/curiosity)",
  "body": "The email content with proper spacing"
}
`, req.ContactName, req.Position, req.CompanyName, industry, req.Website)

	return b.String()
}
