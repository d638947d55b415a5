package handler

import (
	"context"
	"fmt"

	"impactbot/src-server/utils"

	"github.com/bwmarrin/discordgo"
)

// Template links live in the Templates table; the slides and guidelines
// entries get their own command plus menu button each.
func Templates(as *utils.AppState) {
	registerTemplate(as, "slides", "📑 Slides template", "Show the slides template link.")
	registerTemplate(as, "guidelines", "📘 Guidelines", "Show the guidelines link.")
}

func registerTemplate(as *utils.AppState, key, title, description string) {
	h := templateHandler(as, key, title)
	as.AddAppCmdHandler(key, h)
	as.AddMsgComponentHandler(key, h)
	as.AddAppCmdInfo(key, &discordgo.ApplicationCommand{
		Name:        key,
		Description: description,
	})
}

func templateHandler(as *utils.AppState, key, title string) func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
		url, ok, err := as.Queries.TemplateURL(context.Background(), key)
		if err != nil {
			utils.InteractRespText(s, i, errorText(err))
			return nil
		}
		if !ok {
			utils.InteractRespText(s, i, fmt.Sprintf("%s is not set.\n\nAdd a '%s' row to the 'Templates' sheet.", title, key))
			return nil
		}
		utils.InteractRespText(s, i, fmt.Sprintf("%s:\n%s", title, url))
		return nil
	}
}
