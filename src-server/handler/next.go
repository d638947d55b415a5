package handler

import (
	"context"
	"fmt"

	"impactbot/src-server/query"
	"impactbot/src-server/utils"

	"github.com/bwmarrin/discordgo"
)

// Next answers both the /next slash command and the menu button with a card
// for the soonest upcoming event.
func Next(as *utils.AppState) {
	id := "next"
	h := nextHandler(as)
	as.AddAppCmdHandler(id, h)
	as.AddMsgComponentHandler(id, h)
	as.AddAppCmdInfo(id, &discordgo.ApplicationCommand{
		Name:        id,
		Description: "Show the next upcoming event.",
	})
}

func nextHandler(as *utils.AppState) func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
		ev, ok, err := as.Queries.NextEvent(context.Background())
		if err != nil {
			utils.InteractRespText(s, i, errorText(err))
			return nil
		}
		if !ok {
			utils.InteractRespText(s, i, "📭 No upcoming events scheduled.")
			return nil
		}
		utils.InteractRespText(s, i, eventCard(as, ev))
		return nil
	}
}

// eventCard renders one event the way the weekly overview does, with "TBD"
// standing in for unassigned roles.
func eventCard(as *utils.AppState, ev query.Event) string {
	tz, _ := as.Queries.Now().In(as.Queries.Location()).Zone()
	return fmt.Sprintf(
		"⏭ Next Event\n\n📝 Type: %s\n📅 Date: %s\n🕐 Time: %s %s\n🔗 Zoom: %s\n🎙 MC: %s\n🧑‍🏫 Presenter: %s\n✨ Impact: %s",
		ev.Type,
		ev.Date,
		ev.Time, tz,
		orNoLink(ev.ZoomLink),
		orTBD(ev.MC),
		orTBD(ev.Presenter),
		orTBD(ev.Impact),
	)
}

func orTBD(s string) string {
	if s == "" {
		return "TBD"
	}
	return s
}

func orNoLink(s string) string {
	if s == "" {
		return "<no link>"
	}
	return s
}
