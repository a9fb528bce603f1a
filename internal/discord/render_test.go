package discord

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speiseplan/mensabot/internal/model"
	"github.com/speiseplan/mensabot/internal/resolve"
)

func TestNoticeFor(t *testing.T) {
	assert.Empty(t, noticeFor(resolve.CorrectionNone))
	assert.Equal(t, rolloverNotice, noticeFor(resolve.CorrectionRolledOver))
	assert.Equal(t, skippedNotice, noticeFor(resolve.CorrectionSkipped))
}

func TestFormatLine(t *testing.T) {
	tests := []struct {
		name string
		line model.Line
		want string
	}{
		{
			name: "single priced meal with classifier",
			line: model.Line{Name: "Linie 1", Meals: []model.Meal{
				{Name: "Gulasch", Price: "3,50€", Classifiers: []model.Classifier{model.Beef}},
			}},
			want: "🐄Gulasch (3,50€)",
		},
		{
			name: "only the lowest-ordered classifier renders",
			line: model.Line{Name: "Linie 2", Meals: []model.Meal{
				{Name: "Chili", Price: "2,80€", Classifiers: []model.Classifier{model.Vegan, model.Beef}},
			}},
			want: "🐄Chili (2,80€)",
		},
		{
			name: "unpriced meals are filtered",
			line: model.Line{Name: "Linie 3", Meals: []model.Meal{
				{Name: "Beilage", Price: ""},
				{Name: "Salat", Price: "1,20€", Classifiers: []model.Classifier{model.Vegetarian}},
			}},
			want: "🥕Salat (1,20€)",
		},
		{
			name: "meal without classifiers has no emoji",
			line: model.Line{Name: "Linie 4", Meals: []model.Meal{
				{Name: "Pommes", Price: "1,50€"},
			}},
			want: "Pommes (1,50€)",
		},
		{
			name: "multiple meals joined by newline",
			line: model.Line{Name: "Linie 5", Meals: []model.Meal{
				{Name: "Schnitzel", Price: "4,00€", Classifiers: []model.Classifier{model.Pork}},
				{Name: "Tofu", Price: "3,20€", Classifiers: []model.Classifier{model.Vegan}},
			}},
			want: "🐖Schnitzel (4,00€)\n🌱Tofu (3,20€)",
		},
		{
			name: "all meals unpriced renders empty",
			line: model.Line{Name: "Linie 6", Meals: []model.Meal{
				{Name: "Beilage", Price: ""},
			}},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatLine(tt.line))
		})
	}
}

func TestBuildEmbed(t *testing.T) {
	day := &model.MenuDay{
		// a Friday
		Date:    time.Date(2024, time.January, 5, 0, 0, 0, 0, time.Local),
		Canteen: model.Canteen{ID: "mensa_adenauerring", Name: "KIT Campus"},
		Lines: []model.Line{
			{Name: "Linie 1", Meals: []model.Meal{
				{Name: "Gulasch", Price: "3,50€", Classifiers: []model.Classifier{model.Beef}},
			}},
			{Name: "Leere Linie"},
			{Name: "Nur unbepreist", Meals: []model.Meal{
				{Name: "Beilage", Price: ""},
			}},
		},
	}

	embed := buildEmbed(day)

	assert.Equal(t, "Mensaeinheitsbrei für KIT Campus am Freitag", embed.Title)
	assert.Equal(t, embedColor, embed.Color)
	require.NotNil(t, embed.Footer)
	assert.Equal(t, embedFooter, embed.Footer.Text)

	// empty lines and price-filtered-empty lines are omitted
	require.Len(t, embed.Fields, 1)
	assert.Equal(t, "Linie 1", embed.Fields[0].Name)
	assert.Equal(t, "🐄Gulasch (3,50€)", embed.Fields[0].Value)
	assert.True(t, embed.Fields[0].Inline)
}

func TestBuildEmbedUnknownWeekday(t *testing.T) {
	day := &model.MenuDay{
		// a Saturday; never produced upstream, rendered defensively
		Date:    time.Date(2024, time.January, 6, 0, 0, 0, 0, time.Local),
		Canteen: model.Canteen{Name: "KIT Campus"},
	}
	embed := buildEmbed(day)
	assert.Equal(t, "Mensaeinheitsbrei für KIT Campus am Unbekannt", embed.Title)
}
