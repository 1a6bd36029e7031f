package knowledge

import (
	"fmt"
	"strings"

	"github.com/abdarrahmanayyaz/portfolio-api/internal/model"
)

// Fact cards are the hand-authored fallback context used when vector
// retrieval is unavailable. Content mirrors the public portfolio data.
var factCards = []model.FactCard{
	{
		Name:     "TriagedAI",
		Kind:     model.CardKindProject,
		OneLiner: "AI-powered technical support companion for faster debugging and guided triage",
		Features: []string{"context-aware troubleshooting", "auto-summaries from logs", "one-click runbooks"},
		Stack:    []string{"React", "OpenAI", "LangChain", "OCI"},
		URL:      "https://triagedai.com",
	},
	{
		Name:     "Advancely",
		Kind:     model.CardKindProject,
		OneLiner: "Personal success dashboard for habits, goals, and AI guidance",
		Features: []string{"weekly insights", "streak tracking", "dual-AI recommendations"},
		Stack:    []string{"React", "Tailwind", "OpenAI", "Perplexity"},
		URL:      "https://advancely.ai",
	},
	{
		Name:     "Brain Tumor Segmentation",
		Kind:     model.CardKindProject,
		OneLiner: "Medical image segmentation research on the BraTS dataset with U-Net",
		Features: []string{"98.3% Dice coefficient on FLAIR", "multi-class tumor classification"},
		Stack:    []string{"Python", "PyTorch", "TensorFlow", "U-Net"},
		URL:      "https://github.com/AbdarrahmanAyyaz/TumorSegmentation/blob/main/README.md",
	},
	{
		Name:     "DNA Sequencing",
		Kind:     model.CardKindProject,
		OneLiner: "CNN classifier for DNA sequence motifs",
		Features: []string{"TensorFlow pipeline", "genetic pattern recognition"},
		Stack:    []string{"Python", "TensorFlow", "CNN"},
		URL:      "https://github.com/AbdarrahmanAyyaz/DNA-Sequencing",
	},
	{
		Name:     "Portfolio React App",
		Kind:     model.CardKindProject,
		OneLiner: "This website: dark Tailwind UI with an interactive AI chat",
		Features: []string{"Lighthouse 95+ mobile", "RAG-grounded chatbot"},
		Stack:    []string{"React", "Tailwind", "Framer Motion"},
		URL:      "https://github.com/AbdarrahmanAyyaz/abdarrahmanayyaz.github.io",
	},
	{
		Name:     "Current role",
		Kind:     model.CardKindAbout,
		OneLiner: "Cloud Support Engineer at Oracle, helping enterprise developers with production issues and CI/CD pipelines",
	},
	{
		Name:     "Philosophy",
		Kind:     model.CardKindAbout,
		OneLiner: "CON-FO-DI: consistency, focus, discipline guide how I build and learn",
	},
	{
		Name:     "Outside work",
		Kind:     model.CardKindAbout,
		OneLiner: "Boxing, hiking, travel, and open to coffee chats about AI and cloud",
	},
}

func Cards() []model.FactCard {
	return factCards
}

// CardsByKind filters the card set; used by the prompt composer when
// retrieval is unavailable.
func CardsByKind(kind model.CardKind) []model.FactCard {
	var out []model.FactCard
	for _, card := range factCards {
		if card.Kind == kind {
			out = append(out, card)
		}
	}
	return out
}

// MatchCards is the keyword-overlap fallback: it scans card names, features,
// and stacks for terms appearing in the query and returns up to limit cards,
// or the first limit cards when nothing matches. It never returns nothing
// while any card exists.
func MatchCards(query string, limit int) []model.FactCard {
	if limit <= 0 || len(factCards) == 0 {
		return nil
	}
	q := strings.ToLower(query)
	var matched []model.FactCard
	for _, card := range factCards {
		if cardMatches(card, q) {
			matched = append(matched, card)
			if len(matched) >= limit {
				return matched
			}
		}
	}
	if len(matched) > 0 {
		return matched
	}
	if limit > len(factCards) {
		limit = len(factCards)
	}
	return factCards[:limit]
}

func cardMatches(card model.FactCard, q string) bool {
	if strings.Contains(q, strings.ToLower(card.Name)) {
		return true
	}
	for _, term := range append(card.Features, card.Stack...) {
		term = strings.ToLower(term)
		if len(term) >= 3 && strings.Contains(q, term) {
			return true
		}
	}
	return false
}

// RenderCard flattens a card into a single context line for the prompt.
func RenderCard(card model.FactCard) string {
	line := fmt.Sprintf("%s: %s", card.Name, card.OneLiner)
	if len(card.Stack) > 0 {
		line += fmt.Sprintf(" (Stack: %s)", strings.Join(card.Stack, ", "))
	}
	if len(card.Features) > 0 {
		line += fmt.Sprintf(" [%s]", strings.Join(card.Features, "; "))
	}
	return line
}
