package handler

import (
	"fmt"
	"strings"
	"testing"

	"impactbot/src-server/wizard"

	"github.com/bwmarrin/discordgo"
)

func manyChoices(n int) []wizard.Choice {
	choices := make([]wizard.Choice, 0, n)
	for i := 1; i <= n; i++ {
		choices = append(choices, wizard.Choice{
			Value: fmt.Sprintf("v%d", i),
			Label: fmt.Sprintf("Speaker %d", i),
		})
	}
	return choices
}

func firstSelectMenu(t *testing.T, components []discordgo.MessageComponent) discordgo.SelectMenu {
	t.Helper()
	row, ok := components[0].(discordgo.ActionsRow)
	if !ok {
		t.Fatalf("first component is %T, not an actions row", components[0])
	}
	menu, ok := row.Components[0].(discordgo.SelectMenu)
	if !ok {
		t.Fatalf("first row holds %T, not a select menu", row.Components[0])
	}
	return menu
}

func TestChoicePromptStaysWithinRowLimit(t *testing.T) {
	ses := &wizard.Session{ID: "sid", Options: manyChoices(12)}
	p := &wizard.Prompt{Session: ses, Step: wizard.Step{Kind: wizard.StepChoice}}

	components := promptComponents(flows[0], p)
	// Discord rejects messages with more than 5 action rows
	if len(components) > 5 {
		t.Fatalf("%d action rows", len(components))
	}
	menu := firstSelectMenu(t, components)
	if len(menu.Options) != 12 {
		t.Errorf("got %d options", len(menu.Options))
	}
	if !strings.HasSuffix(menu.CustomID, ":choose:sid") {
		t.Errorf("custom id: %q", menu.CustomID)
	}
}

func TestTogglePromptStaysWithinRowLimit(t *testing.T) {
	ses := &wizard.Session{ID: "sid", Options: manyChoices(8), Selected: []string{"v3"}}

	components := toggleComponents(flows[0], ses)
	if len(components) > 5 {
		t.Fatalf("%d action rows", len(components))
	}
	menu := firstSelectMenu(t, components)
	if len(menu.Options) != 8 {
		t.Fatalf("got %d options", len(menu.Options))
	}
	for _, opt := range menu.Options {
		switch opt.Value {
		case "v3":
			if !strings.HasPrefix(opt.Label, "☑") {
				t.Errorf("selected option label: %q", opt.Label)
			}
		default:
			if !strings.HasPrefix(opt.Label, "☐") {
				t.Errorf("unselected option label: %q", opt.Label)
			}
		}
	}
}

func TestSelectOptionsCap(t *testing.T) {
	options := selectOptions(manyChoices(30), nil)
	if len(options) != maxSelectOptions {
		t.Errorf("got %d options", len(options))
	}
}

func TestFilterMenuStaysWithinRowLimit(t *testing.T) {
	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	components := filterMenu("month", "Select a month", months)
	if len(components) != 1 {
		t.Fatalf("%d action rows", len(components))
	}
	menu := firstSelectMenu(t, components)
	if len(menu.Options) != 12 {
		t.Errorf("got %d options", len(menu.Options))
	}
	if menu.CustomID != "listrecs:month" {
		t.Errorf("custom id: %q", menu.CustomID)
	}
}
