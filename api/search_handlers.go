package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-tab-search/internal/destination"
	internalErrors "github.com/gcbaptista/go-tab-search/internal/errors"
	"github.com/gcbaptista/go-tab-search/internal/logger"
	"github.com/gcbaptista/go-tab-search/model"
	"github.com/gcbaptista/go-tab-search/services"
)

// SearchRequest is the body of POST /search.
type SearchRequest struct {
	Records []model.Record `json:"records"`
	Query   string         `json:"query"`
	Now     *int64         `json:"now,omitempty"` // Optional: reference time in ms, defaults to server time
}

// MultiSearchRequest is the body of POST /multi_search.
type MultiSearchRequest struct {
	Records []model.Record       `json:"records"`
	Queries []NamedSearchRequest `json:"queries"`
	Now     *int64               `json:"now,omitempty"`
}

// NamedSearchRequest represents a single named search query in the request
type NamedSearchRequest struct {
	Name  string `json:"name"`
	Query string `json:"query"`
}

// DestinationRequest is the body of POST /destination.
type DestinationRequest struct {
	Query string `json:"query"`
}

// DestinationResponse tells a client where to navigate for a query.
type DestinationResponse struct {
	Destination string `json:"destination"`
	IsURL       bool   `json:"is_url"`
}

// ClassifyRequest is the body of POST /classify.
type ClassifyRequest struct {
	LastAccessed *int64 `json:"last_accessed"`
	Now          *int64 `json:"now,omitempty"`
}

// ClassifyResponse reports the tier of a last-accessed timestamp.
type ClassifyResponse struct {
	IsHistoryTab bool   `json:"is_history_tab"`
	Tier         string `json:"tier"`
}

// SearchHandler ranks the posted records against a query.
// Request Body: SearchRequest
func (api *API) SearchHandler(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	if result := ValidateSearchRequest(&req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	query := services.SearchQuery{
		Records: req.Records,
		Query:   req.Query,
	}
	if req.Now != nil {
		query.Now = time.UnixMilli(*req.Now)
	}

	response := api.searcher.Execute(query)

	logger.FromContext(c.Request.Context()).Debug("search request served",
		"query_id", response.QueryId,
		"records", len(req.Records),
		"total", response.Total,
	)

	c.JSON(http.StatusOK, response)
}

// MultiSearchHandler runs several named queries over the same records.
// Request Body: MultiSearchRequest
func (api *API) MultiSearchHandler(c *gin.Context) {
	var req MultiSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	if result := ValidateMultiSearchRequest(&req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	multiSearchQuery := services.MultiSearchQuery{
		Records: req.Records,
		Now:     api.resolveNow(req.Now),
	}
	for _, namedReq := range req.Queries {
		multiSearchQuery.Queries = append(multiSearchQuery.Queries, services.NamedSearchQuery{
			Name:  namedReq.Name,
			Query: namedReq.Query,
		})
	}

	results, err := api.searcher.MultiSearch(c.Request.Context(), multiSearchQuery)
	if err != nil {
		if errors.Is(err, internalErrors.ErrInvalidInput) || errors.Is(err, internalErrors.ErrEmptyMultiSearch) {
			SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, err.Error())
			return
		}
		SendSearchError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

// DestinationHandler resolves where a query should navigate when nothing matched.
// Request Body: DestinationRequest
func (api *API) DestinationHandler(c *gin.Context) {
	var req DestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	if result := ValidateQuery("query", req.Query); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	c.JSON(http.StatusOK, DestinationResponse{
		Destination: api.destination.Build(req.Query),
		IsURL:       destination.IsURL(strings.TrimSpace(req.Query)),
	})
}

// ClassifyHandler reports whether a last-accessed timestamp puts a record in the history tier.
// Request Body: ClassifyRequest
func (api *API) ClassifyHandler(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	if req.LastAccessed == nil {
		result := &ValidationResult{Valid: true}
		result.AddError("last_accessed", "last_accessed is required")
		SendValidationError(c, result)
		return
	}
	if result := ValidateTimestamp("now", req.Now); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	isHistory := api.classifier.IsHistoryTab(*req.LastAccessed, api.resolveNow(req.Now))
	tier := model.TierActive
	if isHistory {
		tier = model.TierHistory
	}

	c.JSON(http.StatusOK, ClassifyResponse{
		IsHistoryTab: isHistory,
		Tier:         tier.String(),
	})
}
