package generation

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")
	// Greedy, single line: matches from the first "[" to the last "]" on a line.
	bracketSpan = regexp.MustCompile(`\[.*\]`)
)

// maxFallbackTopics bounds the comma-split fallback in ExtractTopicList.
const maxFallbackTopics = 5

// extractJSONBlock returns the body of the first fenced code block in text,
// or the trimmed text when there is none.
func extractJSONBlock(text string) string {
	if m := fencedBlock.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(text)
}

// ExtractTopicList pulls a list of topic names out of free-form model output.
//
// When the text contains a bracketed span it is decoded as a JSON array; string
// elements are used as-is and other elements keep their JSON text. A span that
// is not valid JSON yields ok=false. Without a span, the text is split on
// commas and the first five pieces are trimmed of whitespace, quotes and
// brackets.
func ExtractTopicList(text string) (topics []string, ok bool) {
	if span := bracketSpan.FindString(text); span != "" {
		var elems []json.RawMessage
		if err := json.Unmarshal([]byte(span), &elems); err != nil {
			return nil, false
		}
		topics = make([]string, 0, len(elems))
		for _, e := range elems {
			var s string
			if err := json.Unmarshal(e, &s); err == nil {
				topics = append(topics, s)
				continue
			}
			topics = append(topics, string(e))
		}
		return topics, true
	}

	parts := strings.Split(text, ",")
	if len(parts) > maxFallbackTopics {
		parts = parts[:maxFallbackTopics]
	}
	topics = make([]string, 0, len(parts))
	for _, p := range parts {
		topics = append(topics, strings.Trim(strings.TrimSpace(p), "\"[]"))
	}
	return topics, true
}
