package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/speiseplan/mensabot/internal/model"
	"github.com/speiseplan/mensabot/internal/resolve"
)

const embedColor = 0x6f00ff

// User-facing strings.
const (
	noMenuMessage  = "No menu available."
	failureMessage = "Da ist leider etwas schiefgelaufen. Versuch es später nochmal."
	embedFooter    = "Klick auf mein Profilbild und lad mich zu deinem Server ein!"

	rolloverNotice = "Die Mensa ist geschlossen. Ich habe dir den nächsten Tag ausgewählt."
	skippedNotice  = "An dem ausgewählten Tag ist die Mensa geschlossen. Ich habe dir den nächsten Tag ausgewählt."
)

func noticeFor(correction resolve.Correction) string {
	switch correction {
	case resolve.CorrectionRolledOver:
		return rolloverNotice
	case resolve.CorrectionSkipped:
		return skippedNotice
	default:
		return ""
	}
}

// buildEmbed renders one canteen's menu. Lines that end up without any
// priced meal are omitted entirely.
func buildEmbed(day *model.MenuDay) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Mensaeinheitsbrei für %s am %s",
			day.Canteen.Name, model.WeekdayGerman(day.Date.Weekday())),
		Color: embedColor,
		Footer: &discordgo.MessageEmbedFooter{
			Text: embedFooter,
		},
	}

	for _, line := range day.Lines {
		value := formatLine(line)
		if value == "" {
			continue
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   line.Name,
			Value:  value,
			Inline: true,
		})
	}

	return embed
}

func formatLine(line model.Line) string {
	entries := make([]string, 0, len(line.Meals))
	for _, meal := range line.Meals {
		if !meal.Priced() {
			continue
		}
		entries = append(entries, fmt.Sprintf("%s%s (%s)",
			model.LeadingEmoji(meal.Classifiers), meal.Name, meal.Price))
	}
	return strings.Join(entries, "\n")
}
