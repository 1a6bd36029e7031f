package model

// Intent is the coarse routing category assigned to one visitor message.
// It steers which context block gets pulled into the prompt and which
// canned reply is used when generation fails.
type Intent string

const (
	IntentPersonal Intent = "personal"
	IntentWork     Intent = "work"
	IntentProject  Intent = "project"
	IntentDeep     Intent = "deep"
	IntentCasual   Intent = "casual"
)
