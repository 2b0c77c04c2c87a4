package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTopicList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
		ok       bool
	}{
		{
			name:     "json array with prose",
			input:    `Here are my suggestions: ["Go Concurrency", "SQL Indexing", "HTTP/2"] good luck`,
			expected: []string{"Go Concurrency", "SQL Indexing", "HTTP/2"},
			ok:       true,
		},
		{
			name:     "array longer than five is kept",
			input:    `["a","b","c","d","e","f","g"]`,
			expected: []string{"a", "b", "c", "d", "e", "f", "g"},
			ok:       true,
		},
		{
			name:     "non-string elements keep their json text",
			input:    `["Graphs", 42, true]`,
			expected: []string{"Graphs", "42", "true"},
			ok:       true,
		},
		{
			name:     "empty array",
			input:    `[]`,
			expected: []string{},
			ok:       true,
		},
		{
			name:  "bracketed span that is not json",
			input: `[Graphs, Trees]`,
			ok:    false,
		},
		{
			name:     "comma separated without brackets",
			input:    `Graphs, "Trees", Heaps , Tries, Sorting, Hashing, Recursion`,
			expected: []string{"Graphs", "Trees", "Heaps", "Tries", "Sorting"},
			ok:       true,
		},
		{
			name:     "single line of prose",
			input:    "  Linear Algebra  ",
			expected: []string{"Linear Algebra"},
			ok:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topics, ok := ExtractTopicList(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, topics)
			}
		})
	}
}

func TestExtractJSONBlock(t *testing.T) {
	assert.Equal(t, `{"a":1}`, extractJSONBlock("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, extractJSONBlock("Sure!\n```\n{\"a\":1}\n```\nEnjoy."))
	assert.Equal(t, `{"a":1}`, extractJSONBlock("  {\"a\":1}\n"))
}
