package entities

import (
	"errors"
	"time"
)

type InterestState string

const (
	InterestSaved   InterestState = "saved"
	InterestHidden  InterestState = "hidden"
	InterestApplied InterestState = "applied"
)

func ToInterestState(s string) (InterestState, error) {
	switch s {
	case string(InterestSaved):
		return InterestSaved, nil
	case string(InterestHidden):
		return InterestHidden, nil
	case string(InterestApplied):
		return InterestApplied, nil
	default:
		return "", errors.New("invalid interest state")
	}
}

// InterestItem is a user's triage tag on a posting. At most one item exists
// per (user, job) pair; repeated marks overwrite.
type InterestItem struct {
	UserID    int64         `gorm:"primaryKey;autoIncrement:false"`
	JobID     string        `gorm:"primaryKey"`
	State     InterestState
	CreatedAt time.Time
	UpdatedAt time.Time
}
