package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/speiseplan/mensabot/internal/cli"
	"github.com/speiseplan/mensabot/internal/common"
	"github.com/speiseplan/mensabot/internal/config"
	"github.com/speiseplan/mensabot/internal/mensa"
	"github.com/speiseplan/mensabot/internal/model"
	"github.com/speiseplan/mensabot/internal/resolve"
)

func menuCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Print the menu to the terminal",
		Long: `Resolve and render the menu locally, without going through Discord.
Useful for checking what the bot would answer right now.`,
		RunE: runMenu,
	}

	// Flags
	cmd.Flags().String("day", "", "Day to show (today, tomorrow, dayaftertomorrow, monday..friday)")
	cmd.Flags().String("api-url", "", "Base URL of the menu API")
	cmd.Flags().String("rollover", config.DefaultRollover, "Time of day after which the menu for the next day is shown (HH:MM)")

	// Bind to viper
	_ = viper.BindPFlag("menu.day", cmd.Flags().Lookup("day"))
	_ = viper.BindPFlag("mensa.api_url", cmd.Flags().Lookup("api-url"))
	_ = viper.BindPFlag("mensa.rollover", cmd.Flags().Lookup("rollover"))

	return cmd
}

func runMenu(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	// The preview needs no Discord credentials, only the upstream address.
	apiURL := viper.GetString("mensa.api_url")
	if apiURL == "" {
		return fmt.Errorf("%w: mensa.api_url", common.ErrMissingConfig)
	}

	rolloverValue := viper.GetString("mensa.rollover")
	if rolloverValue == "" {
		rolloverValue = config.DefaultRollover
	}
	rollover, err := model.ParseTimeOfDay(rolloverValue)
	if err != nil {
		return fmt.Errorf("%w: mensa.rollover: %v", common.ErrInvalidConfig, err)
	}

	now := time.Now()

	var requested *time.Time
	if day := viper.GetString("menu.day"); day != "" {
		date, err := resolve.ParseDay(day, now)
		if err != nil {
			return err
		}
		requested = &date
	}

	source, err := mensa.NewClient(apiURL)
	if err != nil {
		return err
	}

	available, err := source.AvailableDates(ctx)
	if err != nil {
		return err
	}

	date, correction, ok := resolve.Resolve(requested, now, rollover, available)
	if !ok {
		fmt.Println("No menu available.")
		return nil
	}

	days, err := source.MenuFor(ctx, date)
	if err != nil {
		return err
	}
	if len(days) == 0 {
		fmt.Println("No menu available.")
		return nil
	}

	var notice string
	switch correction {
	case resolve.CorrectionRolledOver:
		notice = "Die Mensa ist geschlossen, das ist der Speiseplan für morgen."
	case resolve.CorrectionSkipped:
		notice = "An dem Tag ist die Mensa geschlossen, das ist der nächste verfügbare Speiseplan."
	}

	fmt.Println(cli.RenderMenu(&days[0], notice))
	return nil
}
