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

type reportedBondsPage struct {
	Shell
	Bonds []model.ReportedBond
	Total int
}

func (api *API) ListReportedBonds(w http.ResponseWriter, r *http.Request) {
	shell := Shell{Title: "Reported Bonds", Active: "bond-reports"}

	data, err := api.Deps.Bondsio.ReportedBonds(r.Context(), tokenFromContext(r.Context()))
	if err != nil {
		api.logError(r, "failed to load reported bonds", err)
		api.renderError(w, r, http.StatusBadGateway, shell,
			"Failed to load reported bonds. Please try again later.", bondsio.StatusOf(err))
		return
	}

	api.render(w, r, http.StatusOK, "reported_bonds", reportedBondsPage{
		Shell: shell,
		Bonds: data.Bonds,
		Total: data.Total,
	})
}

type bondReportsPage struct {
	Shell
	BondID  int
	Reports []model.BondReport
	Total   int
	Review  *reviewForm
}

func bondReportsShell() Shell {
	return Shell{Title: "Bond Reports", Active: "bond-reports"}
}

func (api *API) ListBondReports(w http.ResponseWriter, r *http.Request) {
	bondID, err := strconv.Atoi(chi.URLParam(r, "bondID"))
	if err != nil {
		api.renderError(w, r, http.StatusNotFound, bondReportsShell(), "Bond not found.", http.StatusNotFound)
		return
	}
	api.renderBondReports(w, r, bondID, http.StatusOK, nil)
}

// renderBondReports fetches one bond's reports and renders the table. The
// review surface only ever opens on a report still pending; reviewed,
// resolved and dismissed reports have no further action in this variant.
func (api *API) renderBondReports(w http.ResponseWriter, r *http.Request, bondID, statusCode int, form *reviewForm) {
	shell := bondReportsShell()

	data, err := api.Deps.Bondsio.BondReports(r.Context(), tokenFromContext(r.Context()), bondID)
	if err != nil {
		api.logError(r, "failed to load bond reports", err)
		api.renderError(w, r, http.StatusBadGateway, shell,
			"Failed to load bond reports. Please try again later.", bondsio.StatusOf(err))
		return
	}

	if form == nil {
		if id, convErr := strconv.Atoi(r.URL.Query().Get("review")); convErr == nil {
			for _, report := range data.Reports {
				if report.ID == id && report.Status == model.StatusPending {
					form = &reviewForm{ReportID: id, Status: report.Status}
					break
				}
			}
		}
	}

	api.render(w, r, statusCode, "bond_reports", bondReportsPage{
		Shell:   shell,
		BondID:  bondID,
		Reports: data.Reports,
		Total:   data.Total,
		Review:  form,
	})
}

func (api *API) ReviewBondReport(w http.ResponseWriter, r *http.Request) {
	bondID, err := strconv.Atoi(chi.URLParam(r, "bondID"))
	if err != nil {
		api.renderError(w, r, http.StatusNotFound, bondReportsShell(), "Bond not found.", http.StatusNotFound)
		return
	}
	reportID, err := strconv.Atoi(chi.URLParam(r, "reportID"))
	if err != nil {
		api.renderError(w, r, http.StatusNotFound, bondReportsShell(), "Report not found.", http.StatusNotFound)
		return
	}
	if parseErr := r.ParseForm(); parseErr != nil {
		api.renderError(w, r, http.StatusBadRequest, bondReportsShell(), "Invalid form submission.", 0)
		return
	}

	review := model.ReviewRequest{
		Status: model.ReportStatus(r.PostFormValue("status")),
		Notes:  strings.TrimSpace(r.PostFormValue("notes")),
	}
	form := &reviewForm{ReportID: reportID, Status: review.Status, Notes: review.Notes}

	if validateErr := util.ValidateStruct(review); validateErr != nil {
		form.Error = "Select a valid status."
		api.renderBondReports(w, r, bondID, http.StatusUnprocessableEntity, form)
		return
	}

	key := "bond/" + strconv.Itoa(reportID)
	if !api.reviews.begin(key) {
		form.Error = "A review for this report is already being submitted."
		api.renderBondReports(w, r, bondID, http.StatusConflict, form)
		return
	}
	defer api.reviews.end(key)

	if _, reviewErr := api.Deps.Bondsio.ReviewBondReport(r.Context(), tokenFromContext(r.Context()), reportID, review); reviewErr != nil {
		api.logError(r, "failed to update bond report status", reviewErr)
		form.Error = "Failed to update status. Please try again."
		api.renderBondReports(w, r, bondID, http.StatusBadGateway, form)
		return
	}

	http.Redirect(w, r, "/bonds/"+strconv.Itoa(bondID)+"/reports", http.StatusSeeOther)
}
