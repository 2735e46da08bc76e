package model

import "time"

// CounterModel represents the counters table: one row per named
// monotonic sequence (receipt numbers, member usernames, employee ids).
type CounterModel struct {
	Name      string    `gorm:"type:varchar(50);primaryKey"`
	Value     int64     `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the CounterModel.
func (CounterModel) TableName() string {
	return "counters"
}
