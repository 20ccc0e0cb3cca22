package controllers

import (
	"github.com/gin-gonic/gin"
	"lifediary/internal/models/request_models"
	"lifediary/internal/services"
	"lifediary/pkg/apidoc"
	"lifediary/pkg/utils"
)

type TimelineController struct {
	timelineService services.TimelineServiceInterface
}

func NewTimelineController(timelineService services.TimelineServiceInterface) *TimelineController {
	return &TimelineController{
		timelineService: timelineService,
	}
}

func (tc *TimelineController) GetTimelines(c *gin.Context) {
	timelines, err := tc.timelineService.ListTimelines(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	respondList(c, "get_timelines", timelines, len(timelines) == 0)
}

func (tc *TimelineController) GetEventCategories(c *gin.Context) {
	categories, err := tc.timelineService.ListEventCategories(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	respondList(c, "get_tl_events_categories", categories, len(categories) == 0)
}

func (tc *TimelineController) GetEventTemplates(c *gin.Context) {
	templates, err := tc.timelineService.ListEventTemplates(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	respondList(c, "get_tl_events_templates", templates, len(templates) == 0)
}

func (tc *TimelineController) GetEvents(c *gin.Context) {
	events, err := tc.timelineService.ListEvents(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	respondList(c, "get_timelines_events", events, len(events) == 0)
}

func (tc *TimelineController) GetReactionCategories(c *gin.Context) {
	categories, err := tc.timelineService.ListReactionCategories(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	respondList(c, "get_tl_events_reactions_categories", categories, len(categories) == 0)
}

func (tc *TimelineController) GetReactions(c *gin.Context) {
	reactions, err := tc.timelineService.ListReactions(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	respondList(c, "get_tl_events_reactions", reactions, len(reactions) == 0)
}

// GetCatalog serves the category/template catalog. The good response
// carries the usage keys and ordering bookkeeping next to res/data, so
// it is assembled by hand instead of going through RespondGood.
func (tc *TimelineController) GetCatalog(c *gin.Context) {
	endpoint := apidoc.FindGet("get_tl_event_cats_with_templates")
	baseURL := requestBaseURL(c)

	catalog, err := tc.timelineService.CatalogWithOrdering(c.Request.Context(), c.Query("event_id"))
	if err != nil {
		if utils.IsNotFound(err) && endpoint != nil {
			utils.RespondBody(c, endpoint.UsageBody(baseURL))
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	body := map[string]interface{}{
		"res":                     "good",
		"result_ordering":         catalog.ResultOrdering,
		"reason_of_such_ordering": catalog.Reason,
		"data":                    catalog.Categories,
	}
	if endpoint != nil {
		body["detail"] = endpoint.Detail
		body["example of GET URL without any params"] = baseURL
		body["example of GET URL with params"] = baseURL + endpoint.ExampleQuery
	}
	utils.RespondBody(c, body)
}

func (tc *TimelineController) GetEventsByUser(c *gin.Context) {
	userIDStr := c.Query("user_id")
	if userIDStr == "" {
		respondUsage(c, "get_tl_events_by_user")
		return
	}

	userID, err := utils.ParseID(userIDStr)
	if err != nil {
		utils.RespondError(c, err.Error())
		return
	}

	events, err := tc.timelineService.EventsByUser(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondGood(c, events)
}

func (tc *TimelineController) AddEvent(c *gin.Context) {
	var req request_models.AddTimelineEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, err.Error())
		return
	}

	saved, err := tc.timelineService.AddEvent(c.Request.Context(), &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondGood(c, saved)
}

func (tc *TimelineController) EditEvent(c *gin.Context) {
	var req request_models.EditTimelineEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, err.Error())
		return
	}

	status, err := tc.timelineService.EditEvent(c.Request.Context(), &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondGood(c, status)
}

func (tc *TimelineController) DeleteEvent(c *gin.Context) {
	var req request_models.DeleteTimelineEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, err.Error())
		return
	}

	status, err := tc.timelineService.DeleteEvent(c.Request.Context(), &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondGood(c, status)
}

func (tc *TimelineController) AddReaction(c *gin.Context) {
	var req request_models.AddReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, err.Error())
		return
	}

	reaction, err := tc.timelineService.AddReaction(c.Request.Context(), &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondGood(c, gin.H{"new_saved_data": reaction})
}
