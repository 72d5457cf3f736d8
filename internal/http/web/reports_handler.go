package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/bondsio/admin-console/internal/http/bondsio"
	"github.com/bondsio/admin-console/internal/model"
	"github.com/bondsio/admin-console/util"
)

// reviewForm is the open review surface for one report: seeded with the
// report's current status, and carrying the admin's notes across a failed
// submit so input is never discarded.
type reviewForm struct {
	ReportID int
	Status   model.ReportStatus
	Notes    string
	Error    string
}

type activityReportsPage struct {
	Shell
	Reports []model.ActivityReport
	Total   int
	Review  *reviewForm
}

func activityReportsShell() Shell {
	return Shell{Title: "Reported Activities", Active: "activity-reports"}
}

func (api *API) ListActivityReports(w http.ResponseWriter, r *http.Request) {
	api.renderActivityReports(w, r, http.StatusOK, nil)
}

// renderActivityReports fetches the report set and renders the list, with
// the review surface open when either ?review={id} names a report or a
// failed submit passed its form back in.
func (api *API) renderActivityReports(w http.ResponseWriter, r *http.Request, statusCode int, form *reviewForm) {
	shell := activityReportsShell()

	data, err := api.Deps.Bondsio.ActivityReports(r.Context(), tokenFromContext(r.Context()))
	if err != nil {
		api.logError(r, "failed to load activity reports", err)
		api.renderError(w, r, http.StatusBadGateway, shell,
			"Failed to load activity reports. Please try again later.", bondsio.StatusOf(err))
		return
	}

	if form == nil {
		if id, convErr := strconv.Atoi(r.URL.Query().Get("review")); convErr == nil {
			for _, report := range data.Reports {
				if report.ID == id {
					form = &reviewForm{ReportID: id, Status: report.Status}
					break
				}
			}
		}
	}

	api.render(w, r, statusCode, "activity_reports", activityReportsPage{
		Shell:   shell,
		Reports: data.Reports,
		Total:   data.Total,
		Review:  form,
	})
}

func (api *API) ReviewActivityReport(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		api.renderError(w, r, http.StatusNotFound, activityReportsShell(), "Report not found.", http.StatusNotFound)
		return
	}
	if parseErr := r.ParseForm(); parseErr != nil {
		api.renderError(w, r, http.StatusBadRequest, activityReportsShell(), "Invalid form submission.", 0)
		return
	}

	review := model.ReviewRequest{
		Status: model.ReportStatus(r.PostFormValue("status")),
		Notes:  strings.TrimSpace(r.PostFormValue("notes")),
	}
	form := &reviewForm{ReportID: id, Status: review.Status, Notes: review.Notes}

	if validateErr := util.ValidateStruct(review); validateErr != nil {
		form.Error = "Select a valid status."
		api.renderActivityReports(w, r, http.StatusUnprocessableEntity, form)
		return
	}

	key := "activity/" + strconv.Itoa(id)
	if !api.reviews.begin(key) {
		form.Error = "A review for this report is already being submitted."
		api.renderActivityReports(w, r, http.StatusConflict, form)
		return
	}
	defer api.reviews.end(key)

	if _, reviewErr := api.Deps.Bondsio.ReviewActivityReport(r.Context(), tokenFromContext(r.Context()), id, review); reviewErr != nil {
		api.logError(r, "failed to update activity report status", reviewErr)
		form.Error = "Failed to update status. Please try again."
		api.renderActivityReports(w, r, http.StatusBadGateway, form)
		return
	}

	// Success closes the surface; the redirect is the list's re-fetch.
	http.Redirect(w, r, "/reports/activities", http.StatusSeeOther)
}
