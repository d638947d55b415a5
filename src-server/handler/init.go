package handler

import (
	"impactbot/src-server/utils"
	"impactbot/src-server/wizard"
)

// Init registers every wizard with the engine and every slash command and
// component handler with the app state.
func Init(as *utils.AppState) {
	as.Wizards.Register(wizard.SaveEvent(as.Queries, as.When, as.Config.GetLocation()))
	as.Wizards.Register(wizard.Recognition(as.Queries, utils.CleanupString))
	as.Wizards.Register(wizard.AssignMC(as.Queries))
	as.Wizards.Register(wizard.AssignPresenter(as.Queries))
	as.Wizards.Register(wizard.AssignImpact(as.Queries))

	Menu(as)
	Next(as)
	Week(as)
	Templates(as)
	ListRecognitions(as)

	for _, fc := range flows {
		registerWizardFlow(as, fc)
	}
}
