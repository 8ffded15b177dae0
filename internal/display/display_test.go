// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/agent-catalog/internal/catalog"
)

const (
	rule    = "================================================================================"
	subrule = "----------------------------------------"

	// contIndent is the prefix of a continuation line: 4 + 30 spaces and a separator.
	contIndent = "                                   "
)

// footer is everything printed after the last category.
var footer = []string{
	"",
	rule,
	"",
	"💡 Usage: Mention an agent by name or let Claude auto-select based on context",
	"   Example: 'Use code-reviewer to check my changes'",
	"",
	"📦 Model Distribution:",
	"   • 🚀 Haiku (fast): 16 agents",
	"   • ⚡ Sonnet (balanced): 44 agents",
	"   • 🧠 Opus (powerful): 15 agents",
	"",
}

var header = []string{
	"",
	"📚 Available Claude Code Agents (75 total)",
	"",
	rule,
}

func lines(parts ...[]string) string {
	var all []string
	for _, p := range parts {
		all = append(all, p...)
	}
	return strings.Join(all, "\n") + "\n"
}

func TestRender_Unavailable(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, nil, false)
	assert.Equal(t, "Unable to load agent information.\n", buf.String())
}

func TestRender_Listing(t *testing.T) {
	c := catalog.New()
	c[catalog.DataAI] = []catalog.Entry{
		{Name: "ai-engineer", Description: strings.Repeat("a", 85)},
	}
	c[catalog.DevelopmentArchitecture] = []catalog.Entry{
		{Name: "code-reviewer", Description: "Reviews code for quality."},
	}

	var buf bytes.Buffer
	Render(&buf, c, true)

	want := lines(
		header,
		[]string{
			"",
			"### Development & Architecture",
			subrule,
			"  • code-reviewer                  Reviews code for quality.",
			"",
			"### Data & AI",
			subrule,
			"  • ai-engineer                    " + strings.Repeat("a", 70),
			contIndent + strings.Repeat("a", 15),
		},
		footer,
	)
	assert.Equal(t, want, buf.String())
}

func TestRender_EmptyCatalog(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, catalog.New(), true)
	assert.Equal(t, lines(header, footer), buf.String())
}

func TestRender_SummaryIgnoresCatalogCounts(t *testing.T) {
	c := catalog.New()
	c[catalog.Documentation] = []catalog.Entry{{Name: "docs-architect", Description: "Docs."}}

	var buf bytes.Buffer
	Render(&buf, c, true)

	out := buf.String()
	assert.Contains(t, out, "(75 total)")
	assert.Contains(t, out, "Haiku (fast): 16 agents")
	assert.Contains(t, out, "Sonnet (balanced): 44 agents")
	assert.Contains(t, out, "Opus (powerful): 15 agents")
}

func TestWriteEntry(t *testing.T) {
	tests := []struct {
		name  string
		entry catalog.Entry
		want  []string
	}{
		{
			name:  "exactly one column",
			entry: catalog.Entry{Name: "x", Description: strings.Repeat("b", 70)},
			want:  []string{"  • x" + strings.Repeat(" ", 29) + " " + strings.Repeat("b", 70)},
		},
		{
			name:  "slices split mid-word",
			entry: catalog.Entry{Name: "x", Description: strings.Repeat("c", 69) + "word" + strings.Repeat("d", 140)},
			want: []string{
				"  • x" + strings.Repeat(" ", 29) + " " + strings.Repeat("c", 69) + "w",
				contIndent + "ord" + strings.Repeat("d", 67),
				contIndent + strings.Repeat("d", 70),
				contIndent + "ddd",
			},
		},
		{
			name:  "long name is not truncated",
			entry: catalog.Entry{Name: strings.Repeat("n", 35), Description: "Short."},
			want:  []string{"  • " + strings.Repeat("n", 35) + " Short."},
		},
		{
			name:  "widths count runes",
			entry: catalog.Entry{Name: "émoji-✨", Description: strings.Repeat("é", 71)},
			want: []string{
				"  • émoji-✨" + strings.Repeat(" ", 23) + " " + strings.Repeat("é", 70),
				contIndent + "é",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			writeEntry(&buf, tt.entry)
			require.Equal(t, strings.Join(tt.want, "\n")+"\n", buf.String())
		})
	}
}
