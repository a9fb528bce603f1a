package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/speiseplan/mensabot/internal/resolve"
)

const (
	commandName   = "mensa"
	optionDay     = "tag"
	optionCanteen = "kantine"
)

func (h *Handler) handleMensa(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	now := h.now()

	requested, err := requestedDate(i.ApplicationCommandData().Options, now)
	if err != nil {
		return err
	}

	content, embed, err := h.buildMenuResponse(h.ctx, requested, now)
	if err != nil {
		return err
	}

	response := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	}
	if embed != nil {
		response.Data.Embeds = []*discordgo.MessageEmbed{embed}
	}

	if err := s.InteractionRespond(i.Interaction, response); err != nil {
		return fmt.Errorf("responding to interaction: %w", err)
	}
	return nil
}

// requestedDate extracts the optional day argument. An invalid token fails
// here, before any network call. The canteen argument is accepted but not
// consumed: only the first canteen in the upstream response is rendered.
func requestedDate(options []*discordgo.ApplicationCommandInteractionDataOption, now time.Time) (*time.Time, error) {
	for _, option := range options {
		if option.Name != optionDay {
			continue
		}
		date, err := resolve.ParseDay(option.StringValue(), now)
		if err != nil {
			return nil, err
		}
		return &date, nil
	}
	return nil, nil
}

// buildMenuResponse runs the full pipeline for one request: discover
// availability, resolve the date, fetch the menu, render. A nil embed with
// non-empty content means "nothing to show" rather than an error.
func (h *Handler) buildMenuResponse(ctx context.Context, requested *time.Time, now time.Time) (string, *discordgo.MessageEmbed, error) {
	available, err := h.source.AvailableDates(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("listing available plans: %w", err)
	}

	date, correction, ok := resolve.Resolve(requested, now, h.rollover, available)
	if !ok {
		return noMenuMessage, nil, nil
	}

	days, err := h.source.MenuFor(ctx, date)
	if err != nil {
		return "", nil, fmt.Errorf("fetching menu for %s: %w", date.Format("2006-01-02"), err)
	}
	if len(days) == 0 {
		return noMenuMessage, nil, nil
	}

	return noticeFor(correction), buildEmbed(&days[0]), nil
}
