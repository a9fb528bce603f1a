package discord

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/robfig/cron/v3"
)

// Announcer posts the current menu to a fixed channel on a cron schedule.
// It reuses the command pipeline with no requested date, so the configured
// rollover applies to announcements too.
type Announcer struct {
	cron *cron.Cron
}

// StartAnnouncer schedules menu announcements. The schedule uses the
// standard five-field cron syntax.
func (h *Handler) StartAnnouncer(s *discordgo.Session, channelID, schedule string) (*Announcer, error) {
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() { h.announce(s, channelID) }); err != nil {
		return nil, err
	}
	c.Start()

	slog.Info("Started menu announcer",
		"channel", channelID,
		"schedule", schedule)
	return &Announcer{cron: c}, nil
}

// Stop cancels future announcements and waits for a running one to finish.
func (a *Announcer) Stop() {
	<-a.cron.Stop().Done()
}

func (h *Handler) announce(s *discordgo.Session, channelID string) {
	content, embed, err := h.buildMenuResponse(h.ctx, nil, h.now())
	if err != nil {
		slog.Warn("Failed to build menu announcement", "error", err)
		return
	}
	if embed == nil {
		slog.Debug("No menu available, skipping announcement.")
		return
	}

	message := &discordgo.MessageSend{
		Content: content,
		Embeds:  []*discordgo.MessageEmbed{embed},
	}
	if _, err := s.ChannelMessageSendComplex(channelID, message); err != nil {
		slog.Warn("Failed to send menu announcement",
			"channel", channelID,
			"error", err)
	}
}
