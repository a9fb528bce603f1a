// Package mensa implements the HTTP client for the upstream menu API.
package mensa

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/speiseplan/mensabot/internal/common"
	"github.com/speiseplan/mensabot/internal/model"
)

// Client implements the service.MenuSource interface against the menu API.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// API wire types. The envelope wraps every response; dates come as a
// {day, month, year} triple with a zero-indexed month.
type plansEnvelope struct {
	Data    []planEntry `json:"data"`
	Success bool        `json:"success"`
}

type planEntry struct {
	Date wireDate `json:"date"`
}

type menuEnvelope struct {
	Data    []wireMenuDay `json:"data"`
	Success bool          `json:"success"`
}

type wireDate struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

type wireMenuDay struct {
	Date    wireDate    `json:"date"`
	Canteen wireCanteen `json:"canteen"`
	Lines   []wireLine  `json:"lines"`
}

type wireCanteen struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type wireLine struct {
	ID    *string    `json:"id"`
	Name  string     `json:"name"`
	Meals []wireMeal `json:"meals"`
}

type wireMeal struct {
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Classifiers []string `json:"classifiers"`
	Additives   []string `json:"additives"`
}

// NewClient creates a new menu API client for the given base address.
func NewClient(baseURL string) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing menu API base URL: %w", err)
	}

	return &Client{
		baseURL: u,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// AvailableDates lists the dates the upstream has published menus for.
func (c *Client) AvailableDates(ctx context.Context) ([]time.Time, error) {
	var envelope plansEnvelope
	if err := c.get(ctx, c.baseURL.JoinPath("plans"), &envelope); err != nil {
		return nil, fmt.Errorf("listing available plans: %w", err)
	}

	dates := make([]time.Time, 0, len(envelope.Data))
	for _, entry := range envelope.Data {
		date, err := entry.Date.civil()
		if err != nil {
			return nil, fmt.Errorf("listing available plans: %w", err)
		}
		dates = append(dates, date)
	}

	return dates, nil
}

// MenuFor fetches the published menus for one date, one entry per canteen.
func (c *Client) MenuFor(ctx context.Context, date time.Time) ([]model.MenuDay, error) {
	day := date.Format("2006-01-02")

	var envelope menuEnvelope
	if err := c.get(ctx, c.baseURL.JoinPath("plans", day), &envelope); err != nil {
		return nil, fmt.Errorf("fetching menu for %s: %w", day, err)
	}

	days := make([]model.MenuDay, 0, len(envelope.Data))
	for _, wire := range envelope.Data {
		menuDay, err := wire.toModel()
		if err != nil {
			return nil, fmt.Errorf("fetching menu for %s: %w", day, err)
		}
		days = append(days, menuDay)
	}

	return days, nil
}

func (c *Client) get(ctx context.Context, u *url.URL, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("%w: building request: %v", common.ErrSourceUnreachable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrSourceUnreachable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %d", common.ErrSourceUnreachable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", common.ErrMalformedResponse, err)
	}

	return nil
}

// civil converts the wire date to a local calendar date. The wire month is
// zero-indexed; the round-trip check rejects impossible dates, which
// time.Date would otherwise silently normalize.
func (d wireDate) civil() (time.Time, error) {
	month := time.Month(d.Month + 1)
	date := time.Date(d.Year, month, d.Day, 0, 0, 0, 0, time.Local)
	if date.Year() != d.Year || date.Month() != month || date.Day() != d.Day {
		return time.Time{}, fmt.Errorf("%w: invalid date %d-%d-%d", common.ErrMalformedResponse, d.Year, d.Month, d.Day)
	}
	return date, nil
}

func (w wireMenuDay) toModel() (model.MenuDay, error) {
	date, err := w.Date.civil()
	if err != nil {
		return model.MenuDay{}, err
	}

	day := model.MenuDay{
		Date: date,
		Canteen: model.Canteen{
			ID:   w.Canteen.ID,
			Name: w.Canteen.Name,
		},
		Lines: make([]model.Line, 0, len(w.Lines)),
	}

	for _, line := range w.Lines {
		converted := model.Line{
			Name:  line.Name,
			Meals: make([]model.Meal, 0, len(line.Meals)),
		}
		if line.ID != nil {
			converted.ID = *line.ID
		}
		for _, meal := range line.Meals {
			classifiers := make([]model.Classifier, 0, len(meal.Classifiers))
			for _, code := range meal.Classifiers {
				classifiers = append(classifiers, model.ClassifierFromCode(code))
			}
			converted.Meals = append(converted.Meals, model.Meal{
				Name:        meal.Name,
				Price:       meal.Price,
				Classifiers: classifiers,
				Additives:   meal.Additives,
			})
		}
		day.Lines = append(day.Lines, converted)
	}

	return day, nil
}
