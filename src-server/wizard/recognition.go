package wizard

import (
	"context"

	"impactbot/src-server/query"
)

// Recognition is the 5-step peer recognition wizard; the commit appends one
// Recognitions row verbatim. clean normalizes typed names.
func Recognition(q *query.Queries, clean func(string) string) *Wizard {
	return &Wizard{
		Kind: KindRecognition,
		Steps: []Step{
			{
				Name:   "upline",
				Kind:   StepText,
				Prompt: "🏆 Let's add a recognition!\n\n📝 Step 1/5: Who is the upline?\nPlease type the upline name:",
				Parse:  parseNameInput(clean),
			},
			{
				Name:   "downline",
				Kind:   StepText,
				Prompt: "📝 Step 2/5: Who is the downline?\nPlease type the downline name:",
				Parse:  parseNameInput(clean),
			},
			{
				Name:    "category",
				Kind:    StepChoice,
				Prompt:  "📝 Step 3/5: Choose the category:",
				Options: categoryChoices(q),
				Arrange: categoryOrder,
			},
			{
				Name:    "month",
				Kind:    StepChoice,
				Prompt:  "📝 Step 4/5: Choose the month:",
				Options: monthChoices,
			},
			{
				Name:   "remarks",
				Kind:   StepText,
				Prompt: "📝 Step 5/5: Enter remarks/comments:\nPlease type your remarks:",
				Parse:  parseRemarksInput,
			},
		},
		Commit: func(ctx context.Context, ses *Session) error {
			return q.AddRecognition(ctx, query.Recognition{
				Upline:   ses.Values["upline"],
				Downline: ses.Values["downline"],
				Category: ses.Values["category"],
				Month:    ses.Values["month"],
				Remarks:  ses.Values["remarks"],
			})
		},
	}
}

// categoryOrder orders the category menu via the declarative classifier:
// class buckets in class order, sheet order within each bucket.
func categoryOrder(choices []Choice) []Choice {
	values := make([]string, 0, len(choices))
	byValue := make(map[string]Choice, len(choices))
	for _, c := range choices {
		values = append(values, c.Value)
		byValue[c.Value] = c
	}
	out := make([]Choice, 0, len(choices))
	for _, row := range query.GroupCategories(values) {
		for _, v := range row {
			out = append(out, byValue[v])
		}
	}
	return out
}
