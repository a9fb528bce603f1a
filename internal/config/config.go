// Package config provides typed access to the application configuration.
package config

import (
	"fmt"
	"net/url"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"

	"github.com/speiseplan/mensabot/internal/common"
	"github.com/speiseplan/mensabot/internal/model"
)

// DefaultRollover is used when no rollover time is configured.
const DefaultRollover = "15:00"

// Config is the process-wide configuration, loaded once at startup and
// read-only afterwards.
type Config struct {
	// BotToken authenticates the Discord session.
	BotToken string

	// APIURL is the base address of the upstream menu API.
	APIURL string

	// Rollover is the time of day after which "today" requests are
	// answered with tomorrow's menu.
	Rollover model.TimeOfDay

	// AnnounceChannel is an optional channel to post the menu to on a
	// schedule. Empty disables announcements.
	AnnounceChannel string

	// AnnounceCron is the cron expression for the announce job. Required
	// when AnnounceChannel is set.
	AnnounceCron string
}

// Load reads the configuration from viper and validates it.
func Load() (*Config, error) {
	viper.SetDefault("mensa.rollover", DefaultRollover)

	cfg := &Config{
		BotToken:        viper.GetString("discord.token"),
		APIURL:          viper.GetString("mensa.api_url"),
		AnnounceChannel: viper.GetString("announce.channel"),
		AnnounceCron:    viper.GetString("announce.cron"),
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("%w: discord.token", common.ErrMissingConfig)
	}
	if cfg.APIURL == "" {
		return nil, fmt.Errorf("%w: mensa.api_url", common.ErrMissingConfig)
	}
	if _, err := url.ParseRequestURI(cfg.APIURL); err != nil {
		return nil, fmt.Errorf("%w: mensa.api_url: %v", common.ErrInvalidConfig, err)
	}

	rollover, err := model.ParseTimeOfDay(viper.GetString("mensa.rollover"))
	if err != nil {
		return nil, fmt.Errorf("%w: mensa.rollover: %v", common.ErrInvalidConfig, err)
	}
	cfg.Rollover = rollover

	if cfg.AnnounceChannel != "" {
		if cfg.AnnounceCron == "" {
			return nil, fmt.Errorf("%w: announce.cron (required with announce.channel)", common.ErrMissingConfig)
		}
		if _, err := cron.ParseStandard(cfg.AnnounceCron); err != nil {
			return nil, fmt.Errorf("%w: announce.cron: %v", common.ErrInvalidConfig, err)
		}
	}

	return cfg, nil
}
