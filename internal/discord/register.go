package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/speiseplan/mensabot/internal/common"
)

// The canteens the upstream currently publishes.
var canteens = []struct {
	Name string
	ID   string
}{
	{"KIT Campus", "mensa_adenauerring"},
	{"Gottesaue", "mensa_gottesaue"},
	{"Moltke", "mensa_moltke"},
	{"Moltke 30", "mensa_x1moltkestrasse"},
	{"Erzberger", "mensa_erzberger"},
	{"Tiefbronner", "mensa_tiefenbronner"},
	{"Holzgarten", "mensa_holzgarten"},
}

var dayChoices = []struct {
	Label string
	Value string
}{
	{"Heute", "today"},
	{"Morgen", "tomorrow"},
	{"Übermorgen", "dayaftertomorrow"},
	{"Montag", "monday"},
	{"Dienstag", "tuesday"},
	{"Mittwoch", "wednesday"},
	{"Donnerstag", "thursday"},
	{"Freitag", "friday"},
}

func mensaCommand() *discordgo.ApplicationCommand {
	dayOptions := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(dayChoices))
	for _, choice := range dayChoices {
		dayOptions = append(dayOptions, &discordgo.ApplicationCommandOptionChoice{
			Name:  choice.Label,
			Value: choice.Value,
		})
	}

	canteenOptions := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(canteens))
	for _, canteen := range canteens {
		canteenOptions = append(canteenOptions, &discordgo.ApplicationCommandOptionChoice{
			Name:  canteen.Name,
			Value: canteen.ID,
		})
	}

	dmPermission := true
	return &discordgo.ApplicationCommand{
		Name:         commandName,
		Type:         discordgo.ChatApplicationCommand,
		Description:  "Zeige den Speiseplan der Mensa an.",
		DMPermission: &dmPermission,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        optionDay,
				Description: "Tag für den der Speiseplan angezeigt werden soll.",
				Choices:     dayOptions,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        optionCanteen,
				Description: "Kantine für die der Speiseplan angezeigt werden soll.",
				Choices:     canteenOptions,
			},
		},
	}
}

func publishCommands(s *discordgo.Session) error {
	_, err := s.ApplicationCommandBulkOverwrite(s.State.User.ID, "", []*discordgo.ApplicationCommand{mensaCommand()})
	if err != nil {
		return fmt.Errorf("publishing application commands: %w", err)
	}
	return nil
}

// startRegistration retries publish with exponential backoff in the
// background until it succeeds or ctx is cancelled. Individual failures
// are logged by the retry loop and never surfaced to a user. The returned
// channel receives the terminal result.
func (h *Handler) startRegistration(ctx context.Context, publish func() error) <-chan error {
	done := make(chan error, 1)

	go func() {
		err := common.WithRetry(ctx, publish, h.retryOpts)
		switch {
		case err == nil:
			slog.Info("Registered slash commands.")
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			slog.Warn("Slash command registration cancelled.")
		default:
			slog.Warn("Slash command registration failed", "error", err)
		}
		done <- err
	}()

	return done
}
