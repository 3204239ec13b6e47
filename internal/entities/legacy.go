package entities

import "time"

// LegacyCompanyRecord is a denormalized, best-effort mirror of a tracked
// application, kept so older views keep rendering. It has no foreign key to
// PipelineApplication and no invariant beyond approximating one.
type LegacyCompanyRecord struct {
	ID          int `gorm:"primaryKey"`
	UserID      int64
	CompanyName string
	JobTitle    string
	Location    string
	ApplyURL    string
	Priority    int // numeric scale: high=3, medium=2, low=1
	CreatedAt   time.Time
}
