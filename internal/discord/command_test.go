package discord

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speiseplan/mensabot/internal/common"
	"github.com/speiseplan/mensabot/internal/model"
	"github.com/speiseplan/mensabot/internal/resolve"
)

type fakeSource struct {
	datesErr error
	menuErr  error
	dates    []time.Time
	days     []model.MenuDay
	fetched  []time.Time
}

func (f *fakeSource) AvailableDates(_ context.Context) ([]time.Time, error) {
	return f.dates, f.datesErr
}

func (f *fakeSource) MenuFor(_ context.Context, date time.Time) ([]model.MenuDay, error) {
	f.fetched = append(f.fetched, date)
	return f.days, f.menuErr
}

func dayOption(value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  optionDay,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

func canteenOption(value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  optionCanteen,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

func TestRequestedDate(t *testing.T) {
	// Wednesday
	now := time.Date(2024, time.January, 3, 10, 0, 0, 0, time.Local)

	t.Run("no options defaults to nil", func(t *testing.T) {
		requested, err := requestedDate(nil, now)
		require.NoError(t, err)
		assert.Nil(t, requested)
	})

	t.Run("day option parsed", func(t *testing.T) {
		requested, err := requestedDate([]*discordgo.ApplicationCommandInteractionDataOption{dayOption("friday")}, now)
		require.NoError(t, err)
		require.NotNil(t, requested)
		assert.Equal(t, time.Date(2024, time.January, 5, 0, 0, 0, 0, time.Local), *requested)
	})

	t.Run("canteen option alone leaves date unset", func(t *testing.T) {
		requested, err := requestedDate([]*discordgo.ApplicationCommandInteractionDataOption{canteenOption("mensa_moltke")}, now)
		require.NoError(t, err)
		assert.Nil(t, requested)
	})

	t.Run("invalid day fails before any network call", func(t *testing.T) {
		_, err := requestedDate([]*discordgo.ApplicationCommandInteractionDataOption{dayOption("someday")}, now)
		require.Error(t, err)

		var invalidDay *resolve.InvalidDayError
		require.ErrorAs(t, err, &invalidDay)
		assert.Equal(t, "someday", invalidDay.Token)
	})
}

func newTestHandler(source *fakeSource, now time.Time) *Handler {
	h := NewHandler(context.Background(), source, model.TimeOfDay{Hour: 20})
	h.now = func() time.Time { return now }
	return h
}

func TestBuildMenuResponse(t *testing.T) {
	// Wednesday morning
	now := time.Date(2024, time.January, 3, 10, 0, 0, 0, time.Local)
	friday := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.Local)
	nextMonday := time.Date(2024, time.January, 8, 0, 0, 0, 0, time.Local)

	menuDay := model.MenuDay{
		Date:    friday,
		Canteen: model.Canteen{ID: "mensa_adenauerring", Name: "KIT Campus"},
		Lines: []model.Line{
			{Name: "Linie 1", Meals: []model.Meal{
				{Name: "Gulasch", Price: "3,50€", Classifiers: []model.Classifier{model.Beef}},
			}},
		},
	}

	t.Run("full pipeline for an explicit day", func(t *testing.T) {
		source := &fakeSource{dates: []time.Time{friday, nextMonday}, days: []model.MenuDay{menuDay}}
		h := newTestHandler(source, now)

		content, embed, err := h.buildMenuResponse(context.Background(), &friday, now)
		require.NoError(t, err)
		assert.Empty(t, content)
		require.NotNil(t, embed)
		assert.Equal(t, "Mensaeinheitsbrei für KIT Campus am Freitag", embed.Title)
		require.Len(t, embed.Fields, 1)
		assert.Equal(t, "Linie 1", embed.Fields[0].Name)
		assert.Equal(t, "🐄Gulasch (3,50€)", embed.Fields[0].Value)

		require.Len(t, source.fetched, 1)
		assert.Equal(t, friday, source.fetched[0])
	})

	t.Run("skip notice when requested day has no data", func(t *testing.T) {
		wednesday := time.Date(2024, time.January, 3, 0, 0, 0, 0, time.Local)
		source := &fakeSource{dates: []time.Time{friday}, days: []model.MenuDay{menuDay}}
		h := newTestHandler(source, now)

		content, embed, err := h.buildMenuResponse(context.Background(), &wednesday, now)
		require.NoError(t, err)
		assert.Equal(t, skippedNotice, content)
		require.NotNil(t, embed)
	})

	t.Run("rollover notice when defaulting past the cutoff", func(t *testing.T) {
		evening := time.Date(2024, time.January, 3, 23, 0, 0, 0, time.Local)
		thursday := time.Date(2024, time.January, 4, 0, 0, 0, 0, time.Local)
		source := &fakeSource{dates: []time.Time{thursday}, days: []model.MenuDay{menuDay}}
		h := newTestHandler(source, evening)

		content, embed, err := h.buildMenuResponse(context.Background(), nil, evening)
		require.NoError(t, err)
		assert.Equal(t, rolloverNotice, content)
		require.NotNil(t, embed)
		assert.Equal(t, []time.Time{thursday}, source.fetched)
	})

	t.Run("no availability yields no-menu message", func(t *testing.T) {
		source := &fakeSource{}
		h := newTestHandler(source, now)

		content, embed, err := h.buildMenuResponse(context.Background(), &friday, now)
		require.NoError(t, err)
		assert.Equal(t, noMenuMessage, content)
		assert.Nil(t, embed)
		assert.Empty(t, source.fetched, "no fetch when nothing resolves")
	})

	t.Run("empty fetch result yields no-menu message", func(t *testing.T) {
		source := &fakeSource{dates: []time.Time{friday}}
		h := newTestHandler(source, now)

		content, embed, err := h.buildMenuResponse(context.Background(), &friday, now)
		require.NoError(t, err)
		assert.Equal(t, noMenuMessage, content)
		assert.Nil(t, embed)
	})

	t.Run("listing failure propagates", func(t *testing.T) {
		source := &fakeSource{datesErr: common.ErrSourceUnreachable}
		h := newTestHandler(source, now)

		_, _, err := h.buildMenuResponse(context.Background(), &friday, now)
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrSourceUnreachable)
		assert.Empty(t, source.fetched)
	})

	t.Run("fetch failure propagates", func(t *testing.T) {
		source := &fakeSource{dates: []time.Time{friday}, menuErr: common.ErrMalformedResponse}
		h := newTestHandler(source, now)

		_, _, err := h.buildMenuResponse(context.Background(), &friday, now)
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrMalformedResponse)
	})

	t.Run("only the first canteen is rendered", func(t *testing.T) {
		second := menuDay
		second.Canteen.Name = "Gottesaue"
		source := &fakeSource{dates: []time.Time{friday}, days: []model.MenuDay{menuDay, second}}
		h := newTestHandler(source, now)

		_, embed, err := h.buildMenuResponse(context.Background(), &friday, now)
		require.NoError(t, err)
		require.NotNil(t, embed)
		assert.Contains(t, embed.Title, "KIT Campus")
		assert.NotContains(t, embed.Title, "Gottesaue")
	})
}
