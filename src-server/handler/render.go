package handler

import (
	"log/slog"

	"impactbot/src-server/wizard"

	"github.com/bwmarrin/discordgo"
)

// Discord allows 5 action rows per message and 25 options per select menu.
const maxSelectOptions = 25

// TODO: page choice steps whose option list grows past the 25-option select
// menu limit.

func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func cancelButton(flowKey string) discordgo.Button {
	return discordgo.Button{
		Label:    "❌ Cancel",
		Style:    discordgo.DangerButton,
		CustomID: flowKey + ":cancel",
	}
}

// promptComponents renders a wizard prompt's affordances: a select menu for
// choice and toggle steps with the flow's controls on a second row. A select
// menu carries the whole roster in one action row, so menus never run into
// the 5-row message limit.
func promptComponents(fc flowConfig, p *wizard.Prompt) []discordgo.MessageComponent {
	switch p.Step.Kind {
	case wizard.StepChoice:
		return []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    fc.key + ":choose:" + p.Session.ID,
					Placeholder: "Select one",
					Options:     selectOptions(orderChoices(p.Step, p.Session.Options), nil),
				},
			}},
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{cancelButton(fc.key)}},
		}
	case wizard.StepToggle:
		return toggleComponents(fc, p.Session)
	default:
		return nil
	}
}

// toggleComponents builds the toggle menu from the session snapshot;
// selecting an entry toggles it and the menu is re-rendered in place with
// fresh markers.
func toggleComponents(fc flowConfig, ses *wizard.Session) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				CustomID:    fc.key + ":toggle:" + ses.ID,
				Placeholder: "Toggle selections",
				Options:     selectOptions(ses.Options, ses.HasSelected),
			},
		}},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    fc.saveLabel,
				Style:    discordgo.SuccessButton,
				CustomID: fc.key + ":save:" + ses.ID,
			},
			cancelButton(fc.key),
		}},
	}
}

// selectOptions maps choices to menu options, marking membership when a
// selection predicate is given.
func selectOptions(choices []wizard.Choice, selected func(string) bool) []discordgo.SelectMenuOption {
	if len(choices) > maxSelectOptions {
		choices = choices[:maxSelectOptions]
	}
	options := make([]discordgo.SelectMenuOption, 0, len(choices))
	for _, c := range choices {
		label := c.Label
		if selected != nil {
			marker := "☐"
			if selected(c.Value) {
				marker = "☑"
			}
			label = marker + " " + label
		}
		options = append(options, discordgo.SelectMenuOption{
			Label: label,
			Value: c.Value,
		})
	}
	return options
}

func orderChoices(step wizard.Step, choices []wizard.Choice) []wizard.Choice {
	if step.Arrange != nil {
		return step.Arrange(choices)
	}
	return choices
}

func sendText(s *discordgo.Session, channelID, content string) {
	if _, err := s.ChannelMessageSend(channelID, content); err != nil {
		slog.Warn("can't send message", "channel", channelID, "error", err)
	}
}

func sendWithComponents(s *discordgo.Session, channelID, content string, components []discordgo.MessageComponent) {
	if _, err := s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content:    content,
		Components: components,
	}); err != nil {
		slog.Warn("can't send message", "channel", channelID, "error", err)
	}
}
