package rest

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/feral-file/ff-market/internal/api/shared/constants"
	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/registry"
	"github.com/feral-file/ff-market/internal/store"
)

// SearchListingsQueryParams holds query parameters for GET /listings
type SearchListingsQueryParams struct {
	// Filters
	Keyword  string `form:"q"`
	ItemType string `form:"item_type"`
	Owner    string `form:"owner"`
	MinPrice int64  `form:"min_price"`
	MaxPrice int64  `form:"max_price"`

	// Ordering and pagination
	Sort   domain.SortOrder `form:"sort,default=newest"`
	Limit  int              `form:"limit,default=20"`
	Offset int              `form:"offset,default=0"`
}

// ParseSearchListingsQuery parses query parameters for GET /listings.
// The registry query is unpaged; paging is applied to its results.
func ParseSearchListingsQuery(c *gin.Context) (*registry.Query, *PageQueryParams, error) {
	var params SearchListingsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, nil, err
	}

	if !params.Sort.IsValid() {
		return nil, nil, fmt.Errorf("invalid sort: %s", params.Sort)
	}
	if params.MinPrice < 0 || params.MaxPrice < 0 {
		return nil, nil, fmt.Errorf("prices must not be negative")
	}
	if params.MaxPrice > 0 && params.MinPrice > params.MaxPrice {
		return nil, nil, fmt.Errorf("min_price must not exceed max_price")
	}

	query := &registry.Query{
		Keyword:  strings.TrimSpace(params.Keyword),
		ItemType: strings.TrimSpace(params.ItemType),
		MinPrice: params.MinPrice,
		MaxPrice: params.MaxPrice,
		Sort:     params.Sort,
	}

	if params.Owner != "" {
		owner, err := uuid.Parse(params.Owner)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid owner: %w", err)
		}
		query.Owner = &owner
	}

	page := &PageQueryParams{
		Limit:  capLimit(params.Limit),
		Offset: max(params.Offset, 0),
	}
	return query, page, nil
}

// SearchCatalogQueryParams holds query parameters for GET /catalog
type SearchCatalogQueryParams struct {
	Keyword    string `form:"q"`
	ActiveOnly bool   `form:"active_only,default=true"`
}

// ParseSearchCatalogQuery parses query parameters for GET /catalog
func ParseSearchCatalogQuery(c *gin.Context) (*SearchCatalogQueryParams, error) {
	var params SearchCatalogQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	params.Keyword = strings.TrimSpace(params.Keyword)
	return &params, nil
}

// PageQueryParams holds pagination query parameters
type PageQueryParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ParsePageQuery parses pagination query parameters
func ParsePageQuery(c *gin.Context) (*PageQueryParams, error) {
	var params PageQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	params.Limit = capLimit(params.Limit)
	params.Offset = max(params.Offset, 0)
	return &params, nil
}

// TransactionsQueryParams holds query parameters for GET /transactions
type TransactionsQueryParams struct {
	// Filters
	Actor string     `form:"actor"`
	Kind  string     `form:"kind"`
	Since *time.Time `form:"since" time_format:"2006-01-02T15:04:05Z07:00"`
	Until *time.Time `form:"until" time_format:"2006-01-02T15:04:05Z07:00"`

	// Pagination
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ParseTransactionsQuery parses query parameters for GET /transactions
func ParseTransactionsQuery(c *gin.Context) (*store.TransactionFilter, error) {
	var params TransactionsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	filter := &store.TransactionFilter{
		Since:  params.Since,
		Until:  params.Until,
		Limit:  capLimit(params.Limit),
		Offset: max(params.Offset, 0),
	}

	if params.Actor != "" {
		actor, err := uuid.Parse(params.Actor)
		if err != nil {
			return nil, fmt.Errorf("invalid actor: %w", err)
		}
		filter.Actor = &actor
	}

	if params.Kind != "" {
		kind := domain.TransactionKind(strings.ToUpper(params.Kind))
		if !kind.IsValid() {
			return nil, fmt.Errorf("invalid kind: %s", params.Kind)
		}
		filter.Kind = &kind
	}

	if filter.Since != nil && filter.Until != nil && filter.Until.Before(*filter.Since) {
		return nil, fmt.Errorf("until must not be before since")
	}

	return filter, nil
}

func capLimit(limit int) int {
	if limit <= 0 {
		return constants.DEFAULT_PAGE_SIZE
	}
	if limit > constants.MAX_PAGE_SIZE {
		return constants.MAX_PAGE_SIZE
	}
	return limit
}
