package domain

import "testing"

func TestEntry_WordCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		entry Entry
		want  int
	}{
		{
			name: "counts all four narrative fields",
			entry: Entry{
				Situation: "one two three four five",
				Task:      "one two three four five",
				Action:    "one two three four five",
				Result:    "one two three four five",
			},
			want: 20,
		},
		{
			name: "title and link do not count",
			entry: Entry{
				Title:     "a very long title with many words",
				Link:      "https://example.org/evidence",
				Situation: "only these",
				Task:      "words count",
				Action:    "towards the",
				Result:    "final total",
			},
			want: 8,
		},
		{
			name: "collapses runs of whitespace",
			entry: Entry{
				Situation: "  spaced   out\twords\n",
				Task:      "",
				Action:    "",
				Result:    "end",
			},
			want: 4,
		},
		{
			name:  "empty entry",
			entry: Entry{},
			want:  0,
		},
	}

	for _, tt := range tests {
		if got := tt.entry.WordCount(); got != tt.want {
			t.Errorf("%s: WordCount() = %d, want %d", tt.name, got, tt.want)
		}
	}
}
