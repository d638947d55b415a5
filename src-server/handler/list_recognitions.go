package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"impactbot/src-server/query"
	"impactbot/src-server/utils"

	"github.com/bwmarrin/discordgo"
)

const recognitionsPerPage = 10

// ListRecognitions browses saved recognitions. The flow is stateless: the
// component's CustomID names the filter dimension and the pick arrives in
// the interaction itself, so stale menus keep working.
func ListRecognitions(as *utils.AppState) {
	id := "listrecs"
	h := listRecognitionsHandler(as)
	as.AddAppCmdHandler(id, h)
	as.AddMsgComponentHandler(id, h)
	as.AddAppCmdInfo(id, &discordgo.ApplicationCommand{
		Name:        id,
		Description: "List saved recognitions.",
	})
}

func listRecognitionsHandler(as *utils.AppState) func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
		ctx := context.Background()

		action, operand := "", ""
		if i.Type == discordgo.InteractionMessageComponent {
			data := i.MessageComponentData()
			parts := strings.SplitN(data.CustomID, ":", 2)
			if len(parts) > 1 {
				action = parts[1]
			}
			if len(data.Values) > 0 {
				operand = data.Values[0]
			}
		}

		switch action {
		case "":
			utils.InteractRespComponents(s, i, "📜 List Recognitions\n\nHow do you want to filter?", []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.Button{Label: "📅 By Month", Style: discordgo.SecondaryButton, CustomID: "listrecs:bymonth"},
					discordgo.Button{Label: "🏷 By Category", Style: discordgo.SecondaryButton, CustomID: "listrecs:bycategory"},
				}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.Button{Label: "📜 Show All", Style: discordgo.PrimaryButton, CustomID: "listrecs:all"},
				}},
			})
		case "bymonth":
			months, err := as.Queries.AvailableMonths(ctx)
			if err != nil {
				utils.InteractRespText(s, i, errorText(err))
				return nil
			}
			if len(months) == 0 {
				utils.InteractRespText(s, i, "📭 No recognitions saved yet.")
				return nil
			}
			utils.InteractRespComponents(s, i, "📅 Pick a month:", filterMenu("month", "Select a month", months))
		case "bycategory":
			categories, err := as.Queries.Categories(ctx)
			if err != nil {
				utils.InteractRespText(s, i, errorText(err))
				return nil
			}
			if len(categories) == 0 {
				utils.InteractRespText(s, i, "📭 No categories configured.")
				return nil
			}
			utils.InteractRespComponents(s, i, "🏷 Pick a category:", filterMenu("category", "Select a category", categories))
		case "month":
			showRecognitions(s, i, as, operand, "")
		case "category":
			showRecognitions(s, i, as, "", operand)
		case "all":
			showRecognitions(s, i, as, "", "")
		default:
			utils.InteractRespText(s, i, "❌ Unknown action.")
		}
		return nil
	}
}

func filterMenu(action, placeholder string, values []string) []discordgo.MessageComponent {
	if len(values) > maxSelectOptions {
		values = values[:maxSelectOptions]
	}
	options := make([]discordgo.SelectMenuOption, 0, len(values))
	for _, v := range values {
		options = append(options, discordgo.SelectMenuOption{Label: v, Value: v})
	}
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				CustomID:    "listrecs:" + action,
				Placeholder: placeholder,
				Options:     options,
			},
		}},
	}
}

func showRecognitions(s *discordgo.Session, i *discordgo.InteractionCreate, as *utils.AppState, month, category string) {
	recs, err := as.Queries.Recognitions(context.Background(), month, category)
	if err != nil {
		utils.InteractRespText(s, i, errorText(err))
		return
	}
	if len(recs) == 0 {
		utils.InteractRespText(s, i, "📭 No recognitions match that filter.")
		return
	}

	pages := renderRecognitionPages(recs, month, category)
	utils.InteractRespText(s, i, pages[0])
	for _, page := range pages[1:] {
		if _, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
			Content: page,
		}); err != nil {
			slog.Warn("can't send followup page", "error", err)
			return
		}
	}
}

func renderRecognitionPages(recs []query.Recognition, month, category string) []string {
	var filter string
	switch {
	case month != "":
		filter = " for " + month
	case category != "":
		filter = " in " + category
	}

	total := (len(recs) + recognitionsPerPage - 1) / recognitionsPerPage
	pages := make([]string, 0, total)
	for start := 0; start < len(recs); start += recognitionsPerPage {
		end := start + recognitionsPerPage
		if end > len(recs) {
			end = len(recs)
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, "🏆 Recognitions%s (Page %d of %d)\n", filter, len(pages)+1, total)
		for _, r := range recs[start:end] {
			fmt.Fprintf(&sb, "\n🙋 %s → 🙇 %s\n🏷 %s | 📅 %s\n💬 %s\n", r.Upline, r.Downline, r.Category, r.Month, r.Remarks)
		}
		pages = append(pages, sb.String())
	}
	return pages
}
