package web

import (
	"net/http"

	"github.com/bondsio/admin-console/internal/model"
)

// Each dashboard card fetches its own snapshot; a failing card shows its own
// error state without taking down the rest of the page.
type totalUsersCard struct {
	Total int
	Error string
}

type verificationCard struct {
	Stats *model.VerificationData
	Error string
}

type demographyCard struct {
	Stats model.Demographics
	Error string
}

type overviewCard struct {
	Period model.Period
	Data   *model.OverviewData
	Error  string
}

type dashboardPage struct {
	Shell
	Total        totalUsersCard
	Verification verificationCard
	Demography   demographyCard
	Overview     overviewCard
}

func (api *API) ShowDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token := tokenFromContext(ctx)

	period := model.Period(r.URL.Query().Get("period"))
	if !period.Valid() {
		period = model.PeriodWeekly
	}

	page := dashboardPage{
		Shell:    Shell{Title: "Dashboard", Active: "dashboard"},
		Overview: overviewCard{Period: period},
	}

	if total, err := api.Deps.Bondsio.TotalUsers(ctx, token); err != nil {
		api.logError(r, "failed to load total users", err)
		page.Total.Error = "Failed to load total users."
	} else {
		page.Total.Total = total
	}

	if stats, err := api.Deps.Bondsio.VerificationStats(ctx, token); err != nil {
		api.logError(r, "failed to load verification stats", err)
		page.Verification.Error = "Failed to load verification stats."
	} else {
		page.Verification.Stats = stats
	}

	if demography, err := api.Deps.Bondsio.DemographyStats(ctx, token); err != nil {
		api.logError(r, "failed to load demography stats", err)
		page.Demography.Error = "Failed to load demographics."
	} else {
		page.Demography.Stats = model.ComputeDemographics(*demography)
	}

	if overview, err := api.Deps.Bondsio.AnalyticsOverview(ctx, token, period); err != nil {
		api.logError(r, "failed to load analytics overview", err)
		page.Overview.Error = "Failed to load analytics overview."
	} else {
		page.Overview.Data = overview
	}

	api.render(w, r, http.StatusOK, "dashboard", page)
}
