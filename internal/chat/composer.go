package chat

import (
	"fmt"
	"strings"

	"github.com/abdarrahmanayyaz/portfolio-api/internal/knowledge"
	"github.com/abdarrahmanayyaz/portfolio-api/internal/model"
)

// systemVoice is the invariant persona block. It is always the first thing in
// a composed prompt.
const systemVoice = `You are AI Abdarrahman, an AI version of Abdarrahman Ayyaz.

OVERVIEW:
- Cloud Support Engineer at Oracle (professional role)
- AI enthusiast who builds solutions in personal time
- Builds passion projects like TriagedAI and Advancely

PERSONAL PHILOSOPHY:
CON-FO-DI: consistency, focus, discipline guide my approach to development,
learning, and problem-solving.

RESPONSE GUIDELINES:
- CLEARLY DISTINGUISH between professional work at Oracle and personal AI projects
- When asked about work: focus on the Oracle Cloud Support Engineer role
- When asked about projects: focus on passion projects like TriagedAI and Advancely
- Answer directly and concisely; no jargon unless asked
- Always respond as Abdarrahman in first person
- Use emojis sparingly (max 1 per response)`

var styleHints = map[model.Intent]string{
	model.IntentDeep:    "Structure the answer as Overview, then Key Pieces, then Impact. IMPORTANT: Always end with proper punctuation (., !, or ?).",
	model.IntentProject: "Keep the answer short and conversational; up to 3 bullet highlights are fine. IMPORTANT: Always end with proper punctuation (., !, or ?).",
}

const styleHintDefault = "Keep the answer brief and conversational, 2-3 complete sentences maximum. IMPORTANT: Always end with proper punctuation (., !, or ?)."

const styleHintExpand = "Provide a detailed, comprehensive answer. IMPORTANT: Always end your response with a complete sentence (., !, or ?)."

// How many prior turns get re-injected. The generation call is stateless, so
// recent history rides along in the prompt.
const historyWindow = 6

// Compose assembles the generation prompt in fixed order: persona, style
// hint, context, recent history, user message. When retrieved is empty the
// intent-matched fact cards stand in; when those are empty too the prompt
// degrades to persona + hint + message rather than blocking.
func Compose(intent model.Intent, message string, history []model.ChatTurn, retrieved []string, expand bool) string {
	var sb strings.Builder
	sb.WriteString(systemVoice)
	sb.WriteString("\n\n")

	hint := styleHintDefault
	if expand {
		hint = styleHintExpand
	} else if h, ok := styleHints[intent]; ok {
		hint = h
	}
	sb.WriteString(hint)
	sb.WriteString("\n\n")

	if block := contextBlock(intent, retrieved); block != "" {
		sb.WriteString(block)
		sb.WriteString("\n\n")
	}

	if len(history) > 0 {
		start := len(history) - historyWindow
		if start < 0 {
			start = 0
		}
		sb.WriteString("CONVERSATION SO FAR:\n")
		for _, turn := range history[start:] {
			speaker := "Visitor"
			if turn.Role == model.RoleModel {
				speaker = "Abdarrahman"
			}
			fmt.Fprintf(&sb, "%s: %s\n", speaker, turn.Text)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("User Question: ")
	sb.WriteString(message)
	return sb.String()
}

func contextBlock(intent model.Intent, retrieved []string) string {
	if len(retrieved) > 0 {
		return "CONTEXT:\n" + strings.Join(retrieved, "\n\n")
	}
	var kind model.CardKind
	switch intent {
	case model.IntentPersonal:
		kind = model.CardKindAbout
	case model.IntentProject, model.IntentDeep:
		kind = model.CardKindProject
	default:
		return ""
	}
	cards := knowledge.CardsByKind(kind)
	if len(cards) == 0 {
		return ""
	}
	lines := make([]string, 0, len(cards))
	for _, card := range cards {
		lines = append(lines, knowledge.RenderCard(card))
	}
	return "CONTEXT:\n" + strings.Join(lines, "\n")
}
