package handler

import (
	"context"
	"fmt"
	"strings"

	"impactbot/src-server/query"
	"impactbot/src-server/utils"
	"impactbot/src-server/wizard"

	"github.com/bwmarrin/discordgo"
)

// flowConfig binds one wizard to its Discord surface: the CustomID prefix
// every component of the flow carries, who may start it, and the texts shown
// on commit and cancel.
type flowConfig struct {
	key        string // leading CustomID token, also the start button's ID
	kind       wizard.Kind
	adminOnly  bool
	saveLabel  string // commit button label on toggle steps
	summarize  func(ses *wizard.Session) string
	cancelText string
}

var flows = []flowConfig{
	{
		key:       "saveevent",
		kind:      wizard.KindSaveEvent,
		adminOnly: true,
		saveLabel: "💾 Save Event",
		summarize: func(ses *wizard.Session) string {
			return fmt.Sprintf(
				"✅ Event saved successfully!\n\n📝 Type: %s\n📅 Date: %s\n🕐 Time: %s\n🔗 Zoom: %s\n🎙 MC: %s\n🧑‍🏫 Presenter: %s\n✨ Impact: %s",
				ses.Values["type"],
				ses.Values["date"],
				ses.Values["time"],
				ses.Values["zoom_link"],
				ses.Values["mc"],
				ses.Values["presenter"],
				orDash(strings.Join(ses.Selected, ", ")),
			)
		},
		cancelText: "❌ Event saving cancelled.",
	},
	{
		key:  "recognition",
		kind: wizard.KindRecognition,
		summarize: func(ses *wizard.Session) string {
			return fmt.Sprintf(
				"✅ Recognition saved!\n\n🙋 Upline: %s\n🙇 Downline: %s\n🏷 Category: %s\n📅 Month: %s\n💬 Remarks: %s",
				ses.Values["upline"],
				ses.Values["downline"],
				ses.Values["category"],
				ses.Values["month"],
				ses.Values["remarks"],
			)
		},
		cancelText: "❌ Recognition cancelled.",
	},
	{
		key:       "assignmc",
		kind:      wizard.KindAssignMC,
		adminOnly: true,
		summarize: func(ses *wizard.Session) string {
			return fmt.Sprintf("✅ MC assigned: %s", ses.Values["mc"])
		},
		cancelText: "❌ Assignment cancelled.",
	},
	{
		key:       "assignpresenter",
		kind:      wizard.KindAssignPresenter,
		adminOnly: true,
		summarize: func(ses *wizard.Session) string {
			return fmt.Sprintf("✅ Presenter assigned: %s", ses.Values["presenter"])
		},
		cancelText: "❌ Assignment cancelled.",
	},
	{
		key:       "assignimpact",
		kind:      wizard.KindAssignImpact,
		adminOnly: true,
		saveLabel: "💾 Save Assignment",
		summarize: func(ses *wizard.Session) string {
			return fmt.Sprintf("✅ Impact Speaker(s) assigned: %s", orDash(strings.Join(ses.Selected, ", ")))
		},
		cancelText: "❌ Assignment cancelled.",
	},
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func flowByKind(kind wizard.Kind) (flowConfig, bool) {
	for _, fc := range flows {
		if fc.kind == kind {
			return fc, true
		}
	}
	return flowConfig{}, false
}

// registerWizardFlow wires one flow's component handler. CustomIDs follow
// "<key>:<action>:<session>"; the bare key starts the flow from the menu and
// select menu picks arrive in the interaction's Values.
func registerWizardFlow(as *utils.AppState, fc flowConfig) {
	as.AddMsgComponentHandler(fc.key, func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
		ctx := context.Background()
		userID := interactionUserID(i)
		data := i.MessageComponentData()
		parts := strings.SplitN(data.CustomID, ":", 3)
		action := ""
		if len(parts) > 1 {
			action = parts[1]
		}
		sid := ""
		if len(parts) > 2 {
			sid = parts[2]
		}
		// select menus carry the picked value in Values, not the CustomID
		operand := ""
		if len(data.Values) > 0 {
			operand = data.Values[0]
		}

		switch action {
		case "":
			if fc.adminOnly {
				roles, err := as.Queries.RolesFor(ctx, userID)
				if err != nil {
					utils.InteractRespText(s, i, errorText(err))
					return nil
				}
				if !query.HasRole(roles, query.RoleAdmin) {
					utils.InteractRespText(s, i, "⛔ This action is for Admins only.")
					return nil
				}
			}
			prompt, err := as.Wizards.Start(ctx, fc.kind, userID)
			if err != nil {
				utils.InteractRespText(s, i, errorText(err))
				return nil
			}
			respondPrompt(s, i, fc, prompt)
		case "choose":
			prompt, done, err := as.Wizards.HandleChoice(ctx, userID, sid, operand)
			if err != nil {
				utils.InteractRespText(s, i, errorText(err))
				return nil
			}
			if done != nil {
				utils.InteractRespText(s, i, fc.summarize(done))
				return nil
			}
			respondPrompt(s, i, fc, prompt)
		case "toggle":
			ses, err := as.Wizards.ToggleChoice(userID, sid, operand)
			if err != nil {
				utils.InteractRespText(s, i, errorText(err))
				return nil
			}
			utils.InteractRespUpdateComponents(s, i, toggleComponents(fc, ses))
		case "save":
			ses, err := as.Wizards.Commit(ctx, userID, sid)
			if err != nil {
				utils.InteractRespText(s, i, errorText(err))
				return nil
			}
			utils.InteractRespText(s, i, fc.summarize(ses))
		case "cancel":
			if _, ok := as.Wizards.Cancel(userID); ok {
				utils.InteractRespText(s, i, fc.cancelText)
			} else {
				utils.InteractRespText(s, i, "Nothing to cancel.")
			}
		default:
			utils.InteractRespText(s, i, errorText(wizard.ErrExpiredSession))
		}
		return nil
	})
}

func respondPrompt(s *discordgo.Session, i *discordgo.InteractionCreate, fc flowConfig, p *wizard.Prompt) {
	if p.Step.Kind == wizard.StepText {
		utils.InteractRespText(s, i, p.Step.Prompt)
		return
	}
	utils.InteractRespComponents(s, i, p.Step.Prompt, promptComponents(fc, p))
}

// MessageRouter feeds plain guild messages to pending free-text wizard
// steps. Everything else is ignored.
func MessageRouter(as *utils.AppState) func(s *discordgo.Session, m *discordgo.MessageCreate) {
	return func(s *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author == nil || m.Author.Bot {
			return
		}
		if !as.Wizards.AwaitingText(m.Author.ID) {
			return
		}
		ctx := context.Background()
		prompt, done, err := as.Wizards.HandleText(ctx, m.Author.ID, m.Content)
		if err != nil {
			sendText(s, m.ChannelID, errorText(err))
			if prompt != nil {
				sendText(s, m.ChannelID, prompt.Step.Prompt)
			}
			return
		}
		if done != nil {
			fc, ok := flowByKind(done.Kind)
			if !ok {
				return
			}
			sendText(s, m.ChannelID, fc.summarize(done))
			return
		}
		fc, _ := flowByKind(prompt.Session.Kind)
		if prompt.Step.Kind == wizard.StepText {
			sendText(s, m.ChannelID, prompt.Step.Prompt)
			return
		}
		sendWithComponents(s, m.ChannelID, prompt.Step.Prompt, promptComponents(fc, prompt))
	}
}
