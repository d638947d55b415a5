package handler

import (
	"context"
	"fmt"
	"strings"

	"impactbot/src-server/query"
	"impactbot/src-server/utils"

	"github.com/bwmarrin/discordgo"
)

// Menu is the entry point of everything: a slash command showing the user's
// roles and the action buttons. Only the Save/Assign rows are admin-gated;
// everything else is for everyone.
func Menu(as *utils.AppState) {
	id := "menu"
	as.AddAppCmdHandler(id, menuHandler(as))
	as.AddAppCmdInfo(id, &discordgo.ApplicationCommand{
		Name:        id,
		Description: "Show the main menu.",
	})
}

func menuHandler(as *utils.AppState) func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
		userID := interactionUserID(i)
		roles, err := as.Queries.RolesFor(context.Background(), userID)
		if err != nil {
			utils.InteractRespText(s, i, errorText(err))
			return nil
		}
		utils.InteractRespComponents(s, i, menuContent(roles, userID), menuComponents(roles))
		return nil
	}
}

func menuContent(roles []query.Role, userID string) string {
	roleNames := make([]string, 0, len(roles))
	for _, r := range roles {
		roleNames = append(roleNames, string(r))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📋 Main Menu\n\nYour roles: %s\n", strings.Join(roleNames, ", "))
	if len(roles) == 1 && roles[0] == query.RoleMember {
		fmt.Fprintf(&sb, "\nYour ID is `%s`.\nAsk an Admin to add it to the 'UserRoles' sheet to unlock more actions.\n", userID)
	}
	sb.WriteString("\nPick an action:")
	return sb.String()
}

func menuComponents(roles []query.Role) []discordgo.MessageComponent {
	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "⏭ Next Event", Style: discordgo.PrimaryButton, CustomID: "next"},
			discordgo.Button{Label: "🗓 This Week", Style: discordgo.PrimaryButton, CustomID: "week"},
		}},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "📑 Slides", Style: discordgo.SecondaryButton, CustomID: "slides"},
			discordgo.Button{Label: "📘 Guidelines", Style: discordgo.SecondaryButton, CustomID: "guidelines"},
		}},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "🏆 Add Recognition", Style: discordgo.SecondaryButton, CustomID: "recognition"},
			discordgo.Button{Label: "📜 List Recognitions", Style: discordgo.SecondaryButton, CustomID: "listrecs"},
		}},
	}
	if query.HasRole(roles, query.RoleAdmin) {
		components = append(components,
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{Label: "📝 Save Event", Style: discordgo.SuccessButton, CustomID: "saveevent"},
				discordgo.Button{Label: "🎙 Assign MC", Style: discordgo.SuccessButton, CustomID: "assignmc"},
			}},
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{Label: "🧑‍🏫 Assign Presenter", Style: discordgo.SuccessButton, CustomID: "assignpresenter"},
				discordgo.Button{Label: "✨ Assign Impact", Style: discordgo.SuccessButton, CustomID: "assignimpact"},
			}},
		)
	}
	return components
}
