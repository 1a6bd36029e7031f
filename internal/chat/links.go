package chat

import (
	"regexp"
	"sort"
)

type linkEntry struct {
	name     string
	url      string
	patterns []string
}

// Canonical name -> link, with the case-insensitive whole-word triggers that
// get wrapped as markdown links in replies.
var projectLinks = []linkEntry{
	{"triagedai", "https://triagedai.com", []string{"triagedai", "triaged ai", "triage ai"}},
	{"advancely", "https://advancely.ai", []string{"advancely"}},
	{"excel to rag", "https://excel-to-rag-converter.streamlit.app/", []string{"excel to rag", "excel-to-rag", "rag converter"}},
	{"portfolio", "https://github.com/AbdarrahmanAyyaz/abdarrahmanayyaz.github.io", []string{"portfolio react app", "this portfolio", "this website"}},
	{"tumor segmentation", "https://github.com/AbdarrahmanAyyaz/TumorSegmentation/blob/main/README.md", []string{"brain tumor", "tumor segmentation", "medical ai", "brats"}},
	{"linkedin", "https://www.linkedin.com/in/abdarrahman-ayyaz/", []string{"linkedin"}},
	{"github", "https://github.com/AbdarrahmanAyyaz", []string{"github"}},
	{"email", "mailto:abdarrahmanayyaz00@gmail.com", []string{"email"}},
}

type compiledPattern struct {
	entry  int
	url    string
	re     *regexp.Regexp
	length int
}

// Patterns are matched longest-first across all entries so a specific
// trigger ("tumor segmentation") claims its text before a shorter one could
// shadow it.
var linkPatterns = compilePatterns()

func compilePatterns() []compiledPattern {
	var out []compiledPattern
	for i, entry := range projectLinks {
		for _, p := range entry.patterns {
			out = append(out, compiledPattern{
				entry:  i,
				url:    entry.url,
				re:     regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(p) + `\b`),
				length: len(p),
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].length > out[j].length })
	return out
}

var markdownLink = regexp.MustCompile(`\[[^\]]*\]\([^)]*\)`)

// InjectLinks wraps the first recognized mention of each project or profile
// as a markdown link. Text already inside a markdown link is never wrapped
// again, so the transform is safe to re-run.
func InjectLinks(text string) string {
	linked := make(map[int]bool, len(projectLinks))
	for _, cp := range linkPatterns {
		if linked[cp.entry] {
			continue
		}
		loc := findInjectable(text, cp.re)
		if loc == nil {
			continue
		}
		text = text[:loc[0]] + "[" + text[loc[0]:loc[1]] + "](" + cp.url + ")" + text[loc[1]:]
		linked[cp.entry] = true
	}
	return text
}

func findInjectable(text string, re *regexp.Regexp) []int {
	spans := markdownLink.FindAllStringIndex(text, -1)
	for _, loc := range re.FindAllStringIndex(text, -1) {
		if insideSpan(loc, spans) || touchesMarkdown(text, loc) {
			continue
		}
		return loc
	}
	return nil
}

func insideSpan(loc []int, spans [][]int) bool {
	for _, span := range spans {
		if loc[0] < span[1] && loc[1] > span[0] {
			return true
		}
	}
	return false
}

func touchesMarkdown(text string, loc []int) bool {
	if loc[0] > 0 {
		if c := text[loc[0]-1]; c == '[' || c == '(' {
			return true
		}
	}
	if loc[1] < len(text) {
		if c := text[loc[1]]; c == ']' || c == ')' {
			return true
		}
	}
	return false
}
