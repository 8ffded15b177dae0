// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package display renders an agent catalog as a fixed-width console listing.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/agent-catalog/internal/catalog"
)

const (
	// nameWidth is the column width for agent names. Longer names are not truncated.
	nameWidth = 30
	// descWidth is the number of description runes printed per line.
	descWidth = 70

	ruleWidth    = 80
	subruleWidth = 40

	// UnavailableMessage is printed instead of the listing when the README is missing.
	UnavailableMessage = "Unable to load agent information."
)

// modelTier is one line of the model distribution summary. The counts are
// fixed and do not follow the parsed catalog.
type modelTier struct {
	icon   string
	name   string
	trait  string
	agents int
}

var modelTiers = []modelTier{
	{icon: "🚀", name: "Haiku", trait: "fast", agents: 16},
	{icon: "⚡", name: "Sonnet", trait: "balanced", agents: 44},
	{icon: "🧠", name: "Opus", trait: "powerful", agents: 15},
}

// advertisedTotal is the agent count shown in the title banner.
const advertisedTotal = 75

// Render writes the catalog listing to w. When ok is false the README could
// not be found and only UnavailableMessage is written.
func Render(w io.Writer, c catalog.Catalog, ok bool) {
	if !ok {
		fmt.Fprintln(w, UnavailableMessage)
		return
	}

	fmt.Fprintf(w, "\n📚 Available Claude Code Agents (%d total)\n\n", advertisedTotal)
	fmt.Fprintln(w, strings.Repeat("=", ruleWidth))

	for _, cat := range catalog.Categories {
		entries := c[cat]
		if len(entries) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n### %s\n", cat)
		fmt.Fprintln(w, strings.Repeat("-", subruleWidth))
		for _, e := range entries {
			writeEntry(w, e)
		}
	}

	fmt.Fprintln(w, "\n"+strings.Repeat("=", ruleWidth))
	fmt.Fprintln(w, "\n💡 Usage: Mention an agent by name or let Claude auto-select based on context")
	fmt.Fprintln(w, "   Example: 'Use code-reviewer to check my changes'")
	fmt.Fprintln(w, "\n📦 Model Distribution:")
	for _, t := range modelTiers {
		fmt.Fprintf(w, "   • %s %s (%s): %d agents\n", t.icon, t.name, t.trait, t.agents)
	}
	fmt.Fprintln(w)
}

// writeEntry prints one agent, continuing the description on indented lines
// in descWidth slices. Slices may split words.
func writeEntry(w io.Writer, e catalog.Entry) {
	desc := []rune(e.Description)
	head, rest := splitAt(desc, descWidth)
	fmt.Fprintf(w, "  • %-*s %s\n", nameWidth, e.Name, string(head))

	indent := strings.Repeat(" ", 4+nameWidth)
	for len(rest) > 0 {
		head, rest = splitAt(rest, descWidth)
		fmt.Fprintf(w, "%s %s\n", indent, string(head))
	}
}

func splitAt(r []rune, n int) ([]rune, []rune) {
	if len(r) <= n {
		return r, nil
	}
	return r[:n], r[n:]
}
