// Package discord wires the menu pipeline into Discord: interaction
// dispatch, slash-command registration, embed rendering, and the optional
// scheduled announcement.
package discord

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/speiseplan/mensabot/internal/model"
	"github.com/speiseplan/mensabot/internal/service"
)

// UnknownCommandError indicates dispatch received a command with no handler.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q", e.Name)
}

// Handler reacts to Discord gateway events. All fields are read-only after
// construction except the registration guard, which is an atomic CAS so
// that concurrent ready events (reconnects) cannot trigger registration
// twice.
type Handler struct {
	ctx        context.Context
	source     service.MenuSource
	now        func() time.Time
	rollover   model.TimeOfDay
	retryOpts  service.RetryOptions
	registered atomic.Bool
}

// NewHandler creates a Handler. ctx bounds all background work the handler
// spawns; cancelling it stops an in-flight registration retry loop.
func NewHandler(ctx context.Context, source service.MenuSource, rollover model.TimeOfDay) *Handler {
	return &Handler{
		ctx:      ctx,
		source:   source,
		rollover: rollover,
		now:      time.Now,
	}
}

// Ready runs on every gateway ready event. Only the first one triggers
// slash-command registration; reconnects are ignored.
func (h *Handler) Ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info("Connected to Discord",
		"user", r.User.Username,
		"guilds", len(r.Guilds))

	if !h.registered.CompareAndSwap(false, true) {
		return
	}
	h.startRegistration(h.ctx, func() error { return publishCommands(s) })
}

// InteractionCreate dispatches an incoming interaction to its command
// handler. Failures are logged and acknowledged with a generic failure
// message; no partial menu is ever shown.
func (h *Handler) InteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		slog.Warn("Received interaction that is not an application command.")
		return
	}

	data := i.ApplicationCommandData()

	var err error
	switch data.Name {
	case commandName:
		err = h.handleMensa(s, i)
	default:
		err = &UnknownCommandError{Name: data.Name}
	}

	if err != nil {
		slog.Warn("Failed to handle application command",
			"command", data.Name,
			"error", err)
		h.respondFailure(s, i)
	}
}

func (h *Handler) respondFailure(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: failureMessage,
		},
	})
	if err != nil {
		slog.Warn("Failed to send failure acknowledgment", "error", err)
	}
}
