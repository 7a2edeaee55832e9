package models

import (
	"fmt"
	"time"
)

// YearQuarter represents the reporting period a nomination belongs to.
// At most one period is active at a time; activating one deactivates the rest.
type YearQuarter struct {
	BaseModel
	Year      int        `json:"year" gorm:"not null;index" validate:"required,min=2000,max=2100"`
	Quarter   int        `json:"quarter" gorm:"not null" validate:"required,min=1,max=4"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	IsActive  bool       `json:"is_active" gorm:"not null;default:false;index"`
	IsDeleted bool       `json:"is_deleted" gorm:"not null;default:false;index"`
}

// TableName returns the table name for YearQuarter
func (YearQuarter) TableName() string {
	return "year_quarters"
}

// Label returns the display form of the period, e.g. "2025 Q3"
func (yq *YearQuarter) Label() string {
	return fmt.Sprintf("%d Q%d", yq.Year, yq.Quarter)
}

// QuarterDateRange returns the calendar bounds of a quarter as a half-open
// interval: the start of its first day and the start of the next quarter's
// first day. Every instant of the final day satisfies start <= t < end.
func QuarterDateRange(year, quarter int) (time.Time, time.Time, error) {
	if quarter < 1 || quarter > 4 {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid quarter: %d", quarter)
	}
	start := time.Date(year, time.Month(3*(quarter-1)+1), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 3, 0), nil
}
