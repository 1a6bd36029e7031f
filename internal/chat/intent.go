package chat

import (
	"regexp"
	"strings"

	"github.com/abdarrahmanayyaz/portfolio-api/internal/model"
)

type intentRule struct {
	intent  model.Intent
	pattern *regexp.Regexp
}

// Rule order is the routing priority: biography and employment questions must
// win over the technical branch even when they share a word with it, so
// personal and work are tested before deep and project. First match wins;
// no match means casual.
var intentRules = []intentRule{
	{model.IntentPersonal, regexp.MustCompile(`(who are you|about you|tell me about yourself|about me|hobbies|interests|outside work|what do you like|coffee chat|coffee|network|family|community|volunteer|values|personal|martial arts|boxing|hiking|travel|con-fo-di|philosophy|discipline|consistency|focus)`)},
	{model.IntentWork, regexp.MustCompile(`(where do you work|current work|current job|current role|employment|work at|working at|job at|oracle|employer|current company|work experience|career|professional background|cloud support|support engineer)`)},
	{model.IntentDeep, regexp.MustCompile(`(architecture|tech stack|stack|schema|database|latency|auth|embedding|retrieval|vector|rag|deploy|pipeline|infra|scalab|api design|trade-?off)`)},
	{model.IntentProject, regexp.MustCompile(`(triagedai|advancely|brain tumor|tumor segmentation|dna sequencing|portfolio|project|how does|tell me about|what is|brats)`)},
}

// Classify maps a visitor message to its routing intent.
func Classify(message string) model.Intent {
	msg := strings.ToLower(message)
	for _, rule := range intentRules {
		if rule.pattern.MatchString(msg) {
			return rule.intent
		}
	}
	return model.IntentCasual
}
