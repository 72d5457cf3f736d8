package model

// Bond is a community/group entity. Read-only in the admin console.
type Bond struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	City        string `json:"city"`
	Description string `json:"description"`
	Banner      string `json:"banner"`
	MemberCount int    `json:"member_count"`
	LikesCount  int    `json:"likes_count"`
	IsPublic    bool   `json:"is_public"`
	IsTrending  bool   `json:"is_trending"`
}

// ReportedBond is a bond with outstanding moderation reports. The backend
// serialises the two counters as strings.
type ReportedBond struct {
	BondID         int     `json:"bond_id"`
	Name           string  `json:"name"`
	TotalReports   FlexInt `json:"total_reports"`
	PendingReports FlexInt `json:"pending_reports"`
}

type ReportedBondsData struct {
	Bonds []ReportedBond `json:"bonds"`
	Total int            `json:"total"`
}
