package chat

import "strings"

// Replies shorter than this are treated as a degenerate model response.
const minReplyChars = 2

// EnsureCompleteSentence trims a reply that was cut off mid-sentence. Text
// already ending in sentence punctuation passes through; otherwise the
// trailing fragment after the last sentence end is dropped, and when no
// sentence end exists at all a visible ellipsis is appended instead of
// leaving a silently truncated thought. Applying the transform twice is a
// no-op.
func EnsureCompleteSentence(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return trimmed
	}
	if isSentenceEnd(trimmed[len(trimmed)-1]) {
		return trimmed
	}
	last := -1
	for i := len(trimmed) - 1; i >= 0; i-- {
		if isSentenceEnd(trimmed[i]) {
			last = i
			break
		}
	}
	if last > 0 {
		return trimmed[:last+1]
	}
	return trimmed + "..."
}

func isSentenceEnd(c byte) bool {
	return c == '.' || c == '!' || c == '?'
}

// Finalize applies both reply transforms in order: sentence completion, then
// markdown link injection.
func Finalize(text string) string {
	return InjectLinks(EnsureCompleteSentence(text))
}

// IsDegenerate reports whether a successful generation produced an unusably
// short reply that should be replaced with the intent fallback.
func IsDegenerate(text string) bool {
	return len(strings.TrimSpace(text)) < minReplyChars
}
