package web

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bondsio/admin-console/internal/http/bondsio"
	"github.com/bondsio/admin-console/internal/model"
)

type activitiesPage struct {
	Shell
	Heading      string
	EmptyMessage string
	Activities   []model.Activity
	Pagination   model.Pagination
	BasePath     string
}

func (api *API) ListActivities(w http.ResponseWriter, r *http.Request) {
	api.listActivities(w, r, activitiesPage{
		Shell:        Shell{Title: "Activities", Active: "activities"},
		Heading:      "Activities",
		EmptyMessage: "No activities found.",
		BasePath:     "/activities",
	}, api.Config.ActivityPageLimit, api.Deps.Bondsio.Activities)
}

func (api *API) ListTrendingActivities(w http.ResponseWriter, r *http.Request) {
	api.listActivities(w, r, activitiesPage{
		Shell:        Shell{Title: "Trending Activities", Active: "trending"},
		Heading:      "Trending Activities",
		EmptyMessage: "No trending activities found.",
		BasePath:     "/activities/trending",
	}, api.Config.TrendingPageLimit, api.Deps.Bondsio.TrendingActivities)
}

type activityFetch func(ctx context.Context, token string, page, limit int) (*model.ActivityListData, error)

// listActivities renders one page of an activity list. These endpoints only
// return a total, so the pagination block is derived here.
func (api *API) listActivities(w http.ResponseWriter, r *http.Request, page activitiesPage, limit int, fetch activityFetch) {
	pageNum := pageParam(r)
	data, err := fetch(r.Context(), tokenFromContext(r.Context()), pageNum, limit)
	if err != nil {
		api.logError(r, "failed to load activities", err)
		api.renderError(w, r, http.StatusBadGateway, page.Shell,
			"Failed to load activities. Please try again later.", bondsio.StatusOf(err))
		return
	}

	page.Activities = data.Activities
	page.Pagination = model.NewPagination(pageNum, limit, data.Total)
	api.render(w, r, http.StatusOK, "activities", page)
}

type activityDetailPage struct {
	Shell
	Activity *model.ActivityDetail
}

func (api *API) ShowActivity(w http.ResponseWriter, r *http.Request) {
	shell := Shell{Title: "Activity Detail", Active: "activities"}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		api.renderError(w, r, http.StatusNotFound, shell, "Activity not found.", http.StatusNotFound)
		return
	}

	activity, err := api.Deps.Bondsio.Activity(r.Context(), tokenFromContext(r.Context()), id)
	if err != nil {
		api.logError(r, "failed to load activity", err)
		if bondsio.StatusOf(err) == http.StatusNotFound {
			api.renderError(w, r, http.StatusNotFound, shell, "Activity not found.", http.StatusNotFound)
			return
		}
		api.renderError(w, r, http.StatusBadGateway, shell,
			"Failed to load activity. Please try again later.", bondsio.StatusOf(err))
		return
	}

	api.render(w, r, http.StatusOK, "activity_detail", activityDetailPage{
		Shell:    shell,
		Activity: activity,
	})
}
