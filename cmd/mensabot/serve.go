package main

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/speiseplan/mensabot/internal/config"
	"github.com/speiseplan/mensabot/internal/discord"
	"github.com/speiseplan/mensabot/internal/mensa"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the Discord bot",
		Long: `Connect to Discord, register the /mensa command, and answer menu
requests until interrupted.`,
		RunE: runServe,
	}

	// Flags
	cmd.Flags().String("token", "", "Discord bot token")
	cmd.Flags().String("api-url", "", "Base URL of the menu API")
	cmd.Flags().String("rollover", config.DefaultRollover, "Time of day after which the menu for the next day is shown (HH:MM)")
	cmd.Flags().String("announce-channel", "", "Channel to announce the menu in (optional)")
	cmd.Flags().String("announce-cron", "", "Cron schedule for menu announcements")

	// Bind to viper
	_ = viper.BindPFlag("discord.token", cmd.Flags().Lookup("token"))
	_ = viper.BindPFlag("mensa.api_url", cmd.Flags().Lookup("api-url"))
	_ = viper.BindPFlag("mensa.rollover", cmd.Flags().Lookup("rollover"))
	_ = viper.BindPFlag("announce.channel", cmd.Flags().Lookup("announce-channel"))
	_ = viper.BindPFlag("announce.cron", cmd.Flags().Lookup("announce-cron"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	source, err := mensa.NewClient(cfg.APIURL)
	if err != nil {
		return err
	}

	session, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return fmt.Errorf("creating Discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsNone

	handler := discord.NewHandler(ctx, source, cfg.Rollover)
	session.AddHandler(handler.Ready)
	session.AddHandler(handler.InteractionCreate)

	if err := session.Open(); err != nil {
		return fmt.Errorf("opening Discord session: %w", err)
	}
	defer func() {
		if err := session.Close(); err != nil {
			slog.Warn("Failed to close Discord session", "error", err)
		}
	}()

	if cfg.AnnounceChannel != "" {
		announcer, err := handler.StartAnnouncer(session, cfg.AnnounceChannel, cfg.AnnounceCron)
		if err != nil {
			return fmt.Errorf("starting announcer: %w", err)
		}
		defer announcer.Stop()
	}

	slog.Info("Bot is running", "rollover", cfg.Rollover.String())
	<-ctx.Done()
	slog.Info("Shutting down.")
	return nil
}
