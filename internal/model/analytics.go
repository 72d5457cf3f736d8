package model

import (
	"math"
	"sort"

	"github.com/bondsio/admin-console/util/values"
)

type TotalUsersData struct {
	Total int `json:"total"`
}

type VerificationStat struct {
	Count      int `json:"count"`
	Percentage int `json:"percentage"`
}

type VerificationData struct {
	Total         int              `json:"total"`
	EmailVerified VerificationStat `json:"email_verified"`
	PhoneVerified VerificationStat `json:"phone_verified"`
	BothVerified  VerificationStat `json:"both_verified"`
}

// Raw demography buckets as the backend returns them (counts are strings).
type AgeDemographic struct {
	Bucket string  `json:"bucket"`
	Count  FlexInt `json:"count"`
}

type GenderDemographic struct {
	Gender string  `json:"gender"`
	Count  FlexInt `json:"count"`
}

type CountryDemographic struct {
	Country *string `json:"country"`
	Count   FlexInt `json:"count"`
}

type DemographyData struct {
	Age       []AgeDemographic     `json:"age"`
	Gender    []GenderDemographic  `json:"gender"`
	Countries []CountryDemographic `json:"countries"`
}

// DemographicBucket is a display-ready bucket with its share of the total.
type DemographicBucket struct {
	Label      string
	Count      int
	Percentage int
}

// Demographics is the computed card model: parsed counts, percentages, and
// the top five countries by count.
type Demographics struct {
	Age        []DemographicBucket
	Gender     []DemographicBucket
	Countries  []DemographicBucket
	TotalUsers int
}

// Percentage computes round(count/total*100) with standard half-up rounding.
// A zero or negative total yields 0 rather than dividing by zero.
func Percentage(count, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

// ComputeDemographics derives the card model from the raw payload. The user
// total is the sum of the age buckets, matching how the backend groups every
// user into exactly one age bucket.
func ComputeDemographics(data DemographyData) Demographics {
	total := 0
	for _, item := range data.Age {
		total += item.Count.Int()
	}

	age := make([]DemographicBucket, 0, len(data.Age))
	for _, item := range data.Age {
		age = append(age, DemographicBucket{
			Label:      item.Bucket,
			Count:      item.Count.Int(),
			Percentage: Percentage(item.Count.Int(), total),
		})
	}

	gender := make([]DemographicBucket, 0, len(data.Gender))
	for _, item := range data.Gender {
		label := item.Gender
		if label == "unknown" {
			label = "Not Specified"
		}
		gender = append(gender, DemographicBucket{
			Label:      label,
			Count:      item.Count.Int(),
			Percentage: Percentage(item.Count.Int(), total),
		})
	}

	// Null-country rows are dropped before ranking so they never occupy a
	// top-5 slot.
	countries := make([]DemographicBucket, 0, len(data.Countries))
	for _, item := range data.Countries {
		if item.Country == nil || *item.Country == "" {
			continue
		}
		countries = append(countries, DemographicBucket{
			Label:      *item.Country,
			Count:      item.Count.Int(),
			Percentage: Percentage(item.Count.Int(), total),
		})
	}
	sort.SliceStable(countries, func(i, j int) bool {
		return countries[i].Count > countries[j].Count
	})
	if len(countries) > 5 {
		countries = countries[:5]
	}

	return Demographics{
		Age:        age,
		Gender:     gender,
		Countries:  countries,
		TotalUsers: total,
	}
}

// Period selects the analytics overview window.
type Period string

const (
	PeriodDaily   = Period(values.PeriodDaily)
	PeriodWeekly  = Period(values.PeriodWeekly)
	PeriodMonthly = Period(values.PeriodMonthly)
)

func (p Period) Valid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return true
	}
	return false
}

type TimeSeriesPoint struct {
	Label string  `json:"label"`
	Count FlexInt `json:"count"`
}

type OverviewData struct {
	SignUps []TimeSeriesPoint `json:"signUps"`
	Active  []TimeSeriesPoint `json:"active"`
	Churned []TimeSeriesPoint `json:"churned"`
}

func sumPoints(points []TimeSeriesPoint) int {
	total := 0
	for _, p := range points {
		total += p.Count.Int()
	}
	return total
}

func (d OverviewData) TotalSignUps() int { return sumPoints(d.SignUps) }
func (d OverviewData) TotalActive() int  { return sumPoints(d.Active) }
func (d OverviewData) TotalChurned() int { return sumPoints(d.Churned) }
