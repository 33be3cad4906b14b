package frontmatter

import "testing"

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		want   Frontmatter
		wantOK bool
	}{
		{
			name:   "both fields",
			input:  "---\ntitle: Getting Started\ncategory: Guides\n---\n# Body\n",
			want:   Frontmatter{Title: "Getting Started", Category: "Guides"},
			wantOK: true,
		},
		{
			name:   "quoted values",
			input:  "---\ntitle: 'Hello'\ncategory: \"Hello, 'World'\"\n---\n",
			want:   Frontmatter{Title: "Hello", Category: "Hello, 'World'"},
			wantOK: true,
		},
		{
			name:   "unmatched quote kept",
			input:  "---\ntitle: 'Hello\n---\n",
			want:   Frontmatter{Title: "'Hello"},
			wantOK: true,
		},
		{
			name:   "mixed quotes kept",
			input:  "---\ntitle: 'Hello\"\n---\n",
			want:   Frontmatter{Title: "'Hello\""},
			wantOK: true,
		},
		{
			name:   "surrounding whitespace trimmed",
			input:  "---\ntitle:    spaced out   \n---\n",
			want:   Frontmatter{Title: "spaced out"},
			wantOK: true,
		},
		{
			name:   "only category",
			input:  "---\ncategory: Reference\nother: x\n---\n",
			want:   Frontmatter{Category: "Reference"},
			wantOK: true,
		},
		{
			name:   "crlf line endings",
			input:  "---\r\ntitle: Windows\r\ncategory: Legacy\r\n---\r\nbody",
			want:   Frontmatter{Title: "Windows", Category: "Legacy"},
			wantOK: true,
		},
		{
			name:   "empty header",
			input:  "---\n---\nbody",
			want:   Frontmatter{},
			wantOK: true,
		},
		{
			name:   "closing delimiter at end of input",
			input:  "---\ntitle: Last\n---",
			want:   Frontmatter{Title: "Last"},
			wantOK: true,
		},
		{
			name:  "no header",
			input: "# Just markdown\n\ntitle: not frontmatter\n",
		},
		{
			name:  "missing closing delimiter",
			input: "---\ntitle: Open\n",
		},
		{
			name:  "header not at start",
			input: "\n---\ntitle: Late\n---\n",
		},
		{
			name:  "empty input",
			input: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Extract(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUnquote(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		`'Hello'`:          "Hello",
		`"Hello, 'World'"`: "Hello, 'World'",
		`'Hello`:           "'Hello",
		`''`:               "",
		`'`:                "'",
		`"'a'"`:            "'a'",
		`plain`:            "plain",
	}
	for in, want := range tests {
		if got := unquote(in); got != want {
			t.Errorf("unquote(%q) = %q, want %q", in, got, want)
		}
	}
}
