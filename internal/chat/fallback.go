package chat

import "github.com/abdarrahmanayyaz/portfolio-api/internal/model"

// Canned in-character replies used when generation fails or returns a
// degenerate response. Visitors never see a raw error from the chat widget.
var fallbackReplies = map[model.Intent]string{
	model.IntentPersonal: "I'm passionate about martial arts (boxing), hiking in nature, and travel. I value family, consistency, focus, and discipline (my CON-FO-DI philosophy). What would you like to know more about?",
	model.IntentWork:     "I'm a Cloud Support Engineer at Oracle, helping enterprise developers with production issues and CI/CD pipelines. I also build AI tools as passion projects. What would you like to know?",
	model.IntentProject:  "I build AI projects like TriagedAI (technical support tool) and Advancely (personal development platform) in my personal time. Which project interests you?",
	model.IntentDeep:     "My projects lean on React and TypeScript up front, Node or serverless APIs behind, and LLM integrations with retrieval for grounding. Happy to walk through any piece in detail once I'm back online.",
}

const fallbackGeneric = "I'm having trouble connecting right now. You can explore my portfolio sections above, or try asking again in a moment!"

// FallbackReply returns the canned reply for intent.
func FallbackReply(intent model.Intent) string {
	if reply, ok := fallbackReplies[intent]; ok {
		return reply
	}
	return fallbackGeneric
}
