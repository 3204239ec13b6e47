package entities

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID             string `gorm:"primaryKey"`
	UserID         int64  `gorm:"index"`
	Name           string
	NormalizedName string
	Location       string
	Website        string
	IsArchived     bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewCompany(userID int64, name, location string) Company {
	return Company{
		ID:             uuid.NewString(),
		UserID:         userID,
		Name:           strings.TrimSpace(name),
		NormalizedName: NormalizeCompanyName(name),
		Location:       location,
	}
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizeCompanyName is the lookup key for per-user company matching:
// lower-cased, trimmed, inner whitespace collapsed.
func NormalizeCompanyName(name string) string {
	str := strings.ToLower(strings.TrimSpace(name))
	return whitespaceRe.ReplaceAllString(str, " ")
}
