package cli

import (
	"fmt"
	"strings"

	"github.com/speiseplan/mensabot/internal/model"
)

// RenderMenu renders one canteen's menu for the terminal. It applies the
// same presentation rules as the Discord embed: unpriced meals are
// filtered, lines without any remaining meal are omitted, and a meal shows
// at most the emoji of its lowest-ordered classifier.
func RenderMenu(day *model.MenuDay, notice string) string {
	var b strings.Builder

	if notice != "" {
		b.WriteString(WarningStyle.Render(notice))
		b.WriteString("\n\n")
	}

	title := fmt.Sprintf("%s am %s (%s)",
		day.Canteen.Name,
		model.WeekdayGerman(day.Date.Weekday()),
		day.Date.Format("2006-01-02"))
	b.WriteString(TitleStyle.Render(title))
	b.WriteString("\n")

	for _, line := range day.Lines {
		meals := make([]string, 0, len(line.Meals))
		for _, meal := range line.Meals {
			if !meal.Priced() {
				continue
			}
			meals = append(meals, fmt.Sprintf("  %s%s %s",
				model.LeadingEmoji(meal.Classifiers),
				meal.Name,
				SubtleStyle.Render("("+meal.Price+")")))
		}
		if len(meals) == 0 {
			continue
		}
		b.WriteString(LineStyle.Render(line.Name))
		b.WriteString("\n")
		b.WriteString(strings.Join(meals, "\n"))
		b.WriteString("\n")
	}

	return b.String()
}
