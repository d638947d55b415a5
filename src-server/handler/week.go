package handler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"impactbot/src-server/query"
	"impactbot/src-server/utils"

	"github.com/bwmarrin/discordgo"
)

// Week lists the events of the next seven days grouped by day.
func Week(as *utils.AppState) {
	id := "week"
	h := weekHandler(as)
	as.AddAppCmdHandler(id, h)
	as.AddMsgComponentHandler(id, h)
	as.AddAppCmdInfo(id, &discordgo.ApplicationCommand{
		Name:        id,
		Description: "Show events of the next 7 days.",
	})
}

func weekHandler(as *utils.AppState) func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
		events, err := as.Queries.UpcomingEvents(context.Background(), 7)
		if err != nil {
			utils.InteractRespText(s, i, errorText(err))
			return nil
		}
		if len(events) == 0 {
			utils.InteractRespText(s, i, "📭 No events in the next 7 days.")
			return nil
		}

		var sb strings.Builder
		sb.WriteString("🗓 This Week\n")
		lastDate := ""
		for _, ev := range events {
			if ev.Date != lastDate {
				lastDate = ev.Date
				sb.WriteString("\n" + dayHeading(ev.Date, as.Queries.Location()) + "\n")
			}
			sb.WriteString(fmt.Sprintf(
				"• %s %s | MC: %s | Presenter: %s\n",
				ev.Time, ev.Type, orTBD(ev.MC), orTBD(ev.Presenter),
			))
		}
		utils.InteractRespText(s, i, sb.String())
		return nil
	}
}

func dayHeading(date string, loc *time.Location) string {
	t, err := time.ParseInLocation(query.DateLayout, date, loc)
	if err != nil {
		return "**" + date + "**"
	}
	return fmt.Sprintf("**%s, %s**", t.Weekday(), date)
}
