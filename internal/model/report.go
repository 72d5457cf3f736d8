package model

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/bondsio/admin-console/util"
	"github.com/bondsio/admin-console/util/values"
)

// ReportStatus is the closed set of moderation states. Unknown values are
// rejected when decoding backend responses instead of being passed through.
type ReportStatus string

const (
	StatusPending   = ReportStatus(values.StatusPending)
	StatusReviewed  = ReportStatus(values.StatusReviewed)
	StatusResolved  = ReportStatus(values.StatusResolved)
	StatusDismissed = ReportStatus(values.StatusDismissed)
)

func (s ReportStatus) Valid() bool {
	switch s {
	case StatusPending, StatusReviewed, StatusResolved, StatusDismissed:
		return true
	}
	return false
}

// Label is the display form of the status.
func (s ReportStatus) Label() string {
	return util.StatusLabel(string(s))
}

func (s *ReportStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "report status must be a string")
	}
	status := ReportStatus(raw)
	if !status.Valid() {
		return errors.Errorf("unknown report status %q", raw)
	}
	*s = status
	return nil
}

// ActivityReport is a moderation flag raised against an activity.
type ActivityReport struct {
	ID          int          `json:"id"`
	ActivityID  int          `json:"activity_id"`
	ReporterID  string       `json:"reporter_id"`
	Reason      string       `json:"reason"`
	Description string       `json:"description"`
	Status      ReportStatus `json:"status"`
	CreatedAt   string       `json:"created_at"`
	ReviewedAt  *string      `json:"reviewed_at"`
}

type ActivityReportListData struct {
	Reports []ActivityReport `json:"reports"`
	Total   int              `json:"total"`
}

// BondReport is a moderation flag raised against a bond.
type BondReport struct {
	ID          int          `json:"id"`
	BondID      int          `json:"bond_id"`
	ReporterID  string       `json:"reporter_id"`
	Reason      string       `json:"reason"`
	Description string       `json:"description"`
	Status      ReportStatus `json:"status"`
	CreatedAt   string       `json:"created_at"`
	ReviewedAt  *string      `json:"reviewed_at"`
}

type BondReportListData struct {
	Reports []BondReport `json:"reports"`
	Total   int          `json:"total"`
}

// ReviewRequest is the status+notes mutation submitted from a review form.
// Both report variants share this shape; only the wire encoding differs.
type ReviewRequest struct {
	Status ReportStatus `json:"status" validate:"required,reportstatus"`
	Notes  string       `json:"notes,omitempty" validate:"max=2000"`
}
