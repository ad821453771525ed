package core

import "fmt"

// Period identifies one tracked calendar month. Periods are totally
// ordered by year, then month.
type Period struct {
	Year  int
	Month int
}

// Validate checks the period against the accepted range.
func (p Period) Validate() error {
	if p.Year <= 0 {
		return fmt.Errorf("%w: year %d", ErrInvalidPeriod, p.Year)
	}
	if p.Month < 1 || p.Month > 12 {
		return fmt.Errorf("%w: month %d", ErrInvalidPeriod, p.Month)
	}
	return nil
}

// Before reports whether p is strictly earlier than other.
func (p Period) Before(other Period) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Month < other.Month
}

func (p Period) String() string {
	return fmt.Sprintf("%02d/%d", p.Month, p.Year)
}

// PreviousPeriod returns the calendar month strictly before (year, month),
// rolling January back to December of the previous year.
func PreviousPeriod(year, month int) (Period, error) {
	p := Period{Year: year, Month: month}
	if err := p.Validate(); err != nil {
		return Period{}, err
	}
	if month == 1 {
		return Period{Year: year - 1, Month: 12}, nil
	}
	return Period{Year: year, Month: month - 1}, nil
}
