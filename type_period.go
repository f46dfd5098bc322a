package garbanzo

import "fmt"

// Period is the time grain used to bucket postings into flow periods.
//
// Each period maps to a fixed period-start rule implemented by
// [Date.StartOf]: bucket boundaries anchor to the start of the calendar
// day, ISO week, month, quarter or year, never to a rolling window.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Yearly:
		return "yearly"
	default:
		return "periodic"
	}
}

// Name returns the singular noun for the period (e.g., "day", "week", "month").
func (p Period) Name() string {
	switch p {
	case Daily:
		return "day"
	case Weekly:
		return "week"
	case Monthly:
		return "month"
	case Quarterly:
		return "quarter"
	case Yearly:
		return "year"
	default:
		return "period"
	}
}

// Identifier returns a short, insightful label for the period starting at
// start: "2024-W07", "2024-January", "2024-Q1", "2024".
func (p Period) Identifier(start Date) string {
	switch p {
	case Daily:
		return start.String()
	case Weekly:
		year, week := start.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case Monthly:
		return start.Format("2006-January")
	case Quarterly:
		return fmt.Sprintf("%d-Q%d", start.Year(), (start.Month()-1)/3+1)
	case Yearly:
		return start.Format("2006")
	default:
		panic("unknown period")
	}
}

// Periods lists every recognized time grain in canonical order.
func Periods() []Period { return []Period{Daily, Weekly, Monthly, Quarterly, Yearly} }

// ParsePeriod parses one of the canonical lowercase grain names. The match
// is exact and case-sensitive; anything else wraps [ErrUnknownGrain].
func ParsePeriod(p string) (Period, error) {
	switch p {
	case "daily":
		return Daily, nil
	case "weekly":
		return Weekly, nil
	case "monthly":
		return Monthly, nil
	case "quarterly":
		return Quarterly, nil
	case "yearly":
		return Yearly, nil
	default:
		return Daily, fmt.Errorf("%w: %q", ErrUnknownGrain, p)
	}
}
