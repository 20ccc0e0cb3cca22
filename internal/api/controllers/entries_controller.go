package controllers

import (
	"github.com/gin-gonic/gin"
	"lifediary/internal/models/request_models"
	"lifediary/internal/services"
	"lifediary/pkg/apidoc"
	"lifediary/pkg/utils"
)

type EntryController struct {
	entryService services.EntryServiceInterface
}

func NewEntryController(entryService services.EntryServiceInterface) *EntryController {
	return &EntryController{
		entryService: entryService,
	}
}

// GetEntries honors the need_full_data tri-state: when the param is
// absent the endpoint documents itself instead of dumping blob-heavy
// rows into a browser tab.
func (ec *EntryController) GetEntries(c *gin.Context) {
	needFullData, provided := c.GetQuery("need_full_data")

	entries, err := ec.entryService.ListEntries(c.Request.Context(), wantsFullData(needFullData))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if len(entries) == 0 {
		if endpoint := apidoc.FindGet("get_entries"); endpoint != nil {
			utils.RespondBody(c, endpoint.ExampleBody())
			return
		}
	}
	if !provided {
		respondUsage(c, "get_entries")
		return
	}
	utils.RespondGood(c, entries)
}

func (ec *EntryController) GetEntryByID(c *gin.Context) {
	entryID := c.Query("entry_id")
	if entryID == "" {
		respondUsage(c, "get_entry_by_id")
		return
	}
	needFullData, provided := c.GetQuery("need_full_data")

	entry, err := ec.entryService.EntryByID(c.Request.Context(), entryID, wantsFullData(needFullData))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if !provided {
		respondUsage(c, "get_entry_by_id")
		return
	}
	utils.RespondGood(c, entry)
}

func (ec *EntryController) GetEntriesByCategory(c *gin.Context) {
	categoryName := c.Query("category_name")
	needFullData, provided := c.GetQuery("need_full_data")

	groups, err := ec.entryService.EntriesGroupedByCategory(c.Request.Context(), categoryName, wantsFullData(needFullData))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if len(groups) == 0 || !provided {
		respondUsage(c, "get_entries_by_cat_name")
		return
	}
	utils.RespondGood(c, groups)
}

func (ec *EntryController) AddEntry(c *gin.Context) {
	var req request_models.AddEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, err.Error())
		return
	}

	saved, err := ec.entryService.AddEntry(c.Request.Context(), &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondGood(c, gin.H{"new_saved_data": saved})
}
