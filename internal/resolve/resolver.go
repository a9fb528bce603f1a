package resolve

import (
	"sort"
	"time"

	"github.com/speiseplan/mensabot/internal/model"
)

// Correction classifies why the resolved date differs from the date the
// user literally asked for (or the naive default). It only influences the
// user-facing notice, never the chosen date.
type Correction int

const (
	// CorrectionNone means the request was answered without adjustment.
	CorrectionNone Correction = iota

	// CorrectionRolledOver means the request arrived past the rollover
	// time, so the next day was used instead.
	CorrectionRolledOver

	// CorrectionSkipped means the upstream has no data for the requested
	// day, so the next available day was used instead.
	CorrectionSkipped
)

func (c Correction) String() string {
	switch c {
	case CorrectionRolledOver:
		return "rolled-over"
	case CorrectionSkipped:
		return "skipped"
	default:
		return "none"
	}
}

// Resolve selects the date to show from the availability list.
//
// When no date was requested, the baseline is today, pushed to tomorrow if
// now is strictly past the rollover time. The smallest available date not
// before the baseline wins. A selected date that differs from the baseline
// is classified as skipped, unless the rollover correction already fired;
// the two corrections are mutually exclusive and rollover takes precedence.
//
// The third return value is false when no available date is on or after
// the baseline; the returned Correction is still meaningful to callers
// that want to log it.
func Resolve(requested *time.Time, now time.Time, rollover model.TimeOfDay, available []time.Time) (time.Time, Correction, bool) {
	correction := CorrectionNone

	var baseline time.Time
	if requested != nil {
		baseline = model.DateOnly(*requested)
	} else {
		baseline = model.DateOnly(now)
		if secondsOfDay(now) > rollover.Seconds() {
			baseline = baseline.AddDate(0, 0, 1)
			correction = CorrectionRolledOver
		}
	}

	sorted := make([]time.Time, len(available))
	copy(sorted, available)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	for _, candidate := range sorted {
		date := model.DateOnly(candidate)
		if date.Before(baseline) {
			continue
		}
		if correction == CorrectionNone && !date.Equal(baseline) {
			correction = CorrectionSkipped
		}
		return date, correction, true
	}

	return time.Time{}, correction, false
}

func secondsOfDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}
