package rest

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/api/middleware"
	"github.com/feral-file/ff-market/internal/api/shared/constants"
	"github.com/feral-file/ff-market/internal/api/shared/dto"
	"github.com/feral-file/ff-market/internal/config"
	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/environment"
	"github.com/feral-file/ff-market/internal/host"
	"github.com/feral-file/ff-market/internal/logger"
	"github.com/feral-file/ff-market/internal/market"
	"github.com/feral-file/ff-market/internal/store"
	"github.com/feral-file/ff-market/internal/sweeper"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// SearchListings searches active player listings
	// GET /api/v1/listings?q=<keyword>&item_type=<type>&owner=<actor>&min_price=<price>&max_price=<price>&sort=<order>&limit=<limit>&offset=<offset>
	SearchListings(c *gin.Context)

	// GetListing retrieves a single listing
	// GET /api/v1/listings/:id
	GetListing(c *gin.Context)

	// CreateListing lists goods for sale (requires authentication)
	// POST /api/v1/listings
	CreateListing(c *gin.Context)

	// Unlist removes a listing and hands the goods back to its owner (requires authentication)
	// DELETE /api/v1/listings/:id
	Unlist(c *gin.Context)

	// UpdateListingPrice reprices a listing (requires authentication)
	// PATCH /api/v1/listings/:id
	UpdateListingPrice(c *gin.Context)

	// PurchaseListing buys from a listing (requires authentication)
	// POST /api/v1/listings/:id/purchase
	PurchaseListing(c *gin.Context)

	// PurchaseBatch buys from several listings, each purchase independent (requires authentication)
	// POST /api/v1/purchases/batch
	PurchaseBatch(c *gin.Context)

	// SearchCatalog searches the system shop
	// GET /api/v1/catalog?q=<keyword>&active_only=<bool>&limit=<limit>&offset=<offset>
	SearchCatalog(c *gin.Context)

	// GetCatalogEntry retrieves a single system shop entry
	// GET /api/v1/catalog/:id
	GetCatalogEntry(c *gin.Context)

	// PurchaseCatalog buys from the system shop (requires authentication)
	// POST /api/v1/catalog/:id/purchase
	PurchaseCatalog(c *gin.Context)

	// GetRecyclePrices lists the recyclable item types and their base prices
	// GET /api/v1/recycle/prices
	GetRecyclePrices(c *gin.Context)

	// PreviewRecycle values goods without recycling them
	// POST /api/v1/recycle/preview
	PreviewRecycle(c *gin.Context)

	// Recycle converts goods into currency (requires authentication)
	// POST /api/v1/recycle
	Recycle(c *gin.Context)

	// RecentTransactions lists the most recent transactions held in memory
	// GET /api/v1/transactions/recent?limit=<limit>
	RecentTransactions(c *gin.Context)

	// GetStats summarizes the market
	// GET /api/v1/stats
	GetStats(c *gin.Context)

	// GetMyAccount returns the caller's balance and pending deliveries (requires authentication)
	// GET /api/v1/me/account
	GetMyAccount(c *gin.Context)

	// GetMyListings lists the caller's listings (requires authentication)
	// GET /api/v1/me/listings
	GetMyListings(c *gin.Context)

	// GetMyHistory lists the caller's transactions, newest first (requires authentication)
	// GET /api/v1/me/history?limit=<limit>
	GetMyHistory(c *gin.Context)

	// SetPresence records an actor joining or leaving the host (requires API key)
	// PUT /api/v1/actors/:id/presence
	SetPresence(c *gin.Context)

	// ListPresent lists the actors present on the host (requires API key)
	// GET /api/v1/actors/present
	ListPresent(c *gin.Context)

	// GetAccount returns an actor's balance and pending deliveries (requires API key)
	// GET /api/v1/actors/:id/account
	GetAccount(c *gin.Context)

	// QueryTransactions reads the persisted transaction archive (requires API key)
	// GET /api/v1/transactions?actor=<actor>&kind=<kind>&since=<time>&until=<time>&limit=<limit>&offset=<offset>
	QueryTransactions(c *gin.Context)

	// CreateCatalogEntry adds goods to the system shop (requires admin)
	// POST /api/v1/admin/catalog
	CreateCatalogEntry(c *gin.Context)

	// UpdateCatalogEntry changes the price or the nominal quantity of a catalog entry (requires admin)
	// PATCH /api/v1/admin/catalog/:id
	UpdateCatalogEntry(c *gin.Context)

	// ToggleCatalogEntry enables or disables a catalog entry (requires admin)
	// POST /api/v1/admin/catalog/:id/toggle
	ToggleCatalogEntry(c *gin.Context)

	// RemoveCatalogEntry deletes a catalog entry (requires admin)
	// DELETE /api/v1/admin/catalog/:id
	RemoveCatalogEntry(c *gin.Context)

	// SetBalance overwrites an actor's balance (requires admin)
	// PUT /api/v1/admin/balances/:id
	SetBalance(c *gin.Context)

	// SetRecyclePrice overrides the base recycle price of an item type (requires admin)
	// PUT /api/v1/admin/recycle/prices/:item_type
	SetRecyclePrice(c *gin.Context)

	// RemoveRecyclePrice makes an item type unrecyclable (requires admin)
	// DELETE /api/v1/admin/recycle/prices/:item_type
	RemoveRecyclePrice(c *gin.Context)

	// SaveState persists the market immediately (requires admin)
	// POST /api/v1/admin/save
	SaveState(c *gin.Context)

	// ExpireListings returns expired listings to their owners immediately (requires admin)
	// POST /api/v1/admin/expire
	ExpireListings(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// Deps are the collaborators of the REST handler
type Deps struct {
	Service   market.Service
	Presence  host.PresenceTracker
	Inventory environment.Inventory
	Flusher   sweeper.PersistenceFlusher
	Store     store.Store
	Economy   config.EconomyProvider
}

// handler implements the Handler interface
type handler struct {
	debug     bool
	service   market.Service
	presence  host.PresenceTracker
	inventory environment.Inventory
	flusher   sweeper.PersistenceFlusher
	store     store.Store
	economy   config.EconomyProvider
}

// NewHandler creates a new REST API handler backed by the market engine
func NewHandler(debug bool, deps Deps) Handler {
	return &handler{
		debug:     debug,
		service:   deps.Service,
		presence:  deps.Presence,
		inventory: deps.Inventory,
		flusher:   deps.Flusher,
		store:     deps.Store,
		economy:   deps.Economy,
	}
}

// SearchListings searches active player listings
func (h *handler) SearchListings(c *gin.Context) {
	query, page, err := ParseSearchListingsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	listings := h.service.SearchListings(*query)
	c.JSON(http.StatusOK, dto.NewListResponse(listings, page.Offset, page.Limit))
}

// GetListing retrieves a single listing
func (h *handler) GetListing(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	listing, found := h.service.GetListing(id)
	if !found {
		respondNotFound(c, "Listing not found")
		return
	}

	c.JSON(http.StatusOK, listing)
}

// CreateListing lists goods for sale
func (h *handler) CreateListing(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req dto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondRequestError(c, err)
		return
	}

	ctx := c.Request.Context()
	if req.TakeFromInventory && !h.takeGoods(c, actor.ID, []domain.Goods{req.Goods}) {
		return
	}

	listing, err := h.service.List(ctx, actor, req.Goods, req.UnitPrice)
	if err != nil {
		if req.TakeFromInventory {
			h.returnGoods(c, actor.ID, []domain.Goods{req.Goods})
		}
		respondDomainError(c, err, "Failed to create listing")
		return
	}

	c.JSON(http.StatusCreated, listing)
}

// Unlist removes a listing
func (h *handler) Unlist(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	listing, err := h.service.Unlist(c.Request.Context(), id, actor.ID)
	if err != nil {
		respondDomainError(c, err, "Failed to remove listing")
		return
	}

	c.JSON(http.StatusOK, listing)
}

// UpdateListingPrice reprices a listing
func (h *handler) UpdateListingPrice(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondRequestError(c, err)
		return
	}

	listing, err := h.service.UpdatePrice(c.Request.Context(), id, actor.ID, req.UnitPrice)
	if err != nil {
		respondDomainError(c, err, "Failed to update listing price")
		return
	}

	c.JSON(http.StatusOK, listing)
}

// PurchaseListing buys from a listing
func (h *handler) PurchaseListing(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondRequestError(c, err)
		return
	}

	result, err := h.service.Purchase(c.Request.Context(), market.PurchaseRequest{
		ListingID: id,
		Buyer:     actor,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondDomainError(c, err, "Failed to purchase listing")
		return
	}

	c.JSON(http.StatusOK, dto.NewPurchaseResponse(result))
}

// PurchaseBatch buys from several listings
func (h *handler) PurchaseBatch(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req dto.BatchPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondRequestError(c, err)
		return
	}

	reqs := make([]market.PurchaseRequest, 0, len(req.Purchases))
	for _, p := range req.Purchases {
		reqs = append(reqs, market.PurchaseRequest{
			ListingID: p.ListingID,
			Buyer:     actor,
			Quantity:  p.Quantity,
		})
	}

	results := h.service.PurchaseBatch(c.Request.Context(), reqs)
	c.JSON(http.StatusOK, dto.NewBatchPurchaseResponse(results))
}

// SearchCatalog searches the system shop
func (h *handler) SearchCatalog(c *gin.Context) {
	params, err := ParseSearchCatalogQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	page, err := ParsePageQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	entries := h.service.SearchCatalog(params.Keyword, params.ActiveOnly)
	c.JSON(http.StatusOK, dto.NewListResponse(entries, page.Offset, page.Limit))
}

// GetCatalogEntry retrieves a single system shop entry
func (h *handler) GetCatalogEntry(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	entry, found := h.service.GetCatalogEntry(id)
	if !found {
		respondNotFound(c, "Catalog entry not found")
		return
	}

	c.JSON(http.StatusOK, entry)
}

// PurchaseCatalog buys from the system shop
func (h *handler) PurchaseCatalog(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondRequestError(c, err)
		return
	}

	result, err := h.service.PurchaseCatalog(c.Request.Context(), market.CatalogPurchaseRequest{
		EntryID:  id,
		Buyer:    actor,
		Quantity: req.Quantity,
	})
	if err != nil {
		respondDomainError(c, err, "Failed to purchase catalog entry")
		return
	}

	c.JSON(http.StatusOK, dto.NewPurchaseResponse(result))
}

// GetRecyclePrices lists the recyclable item types
func (h *handler) GetRecyclePrices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"prices":       h.service.RecyclePrices(),
		"recycle_rate": h.economy.Economy().RecycleRate,
	})
}

// PreviewRecycle values goods without recycling them
func (h *handler) PreviewRecycle(c *gin.Context) {
	var req dto.RecycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondRequestError(c, err)
		return
	}

	total, prices := h.service.PreviewRecycle(req.Goods)
	c.JSON(http.StatusOK, dto.RecyclePreviewResponse{Total: total, Prices: prices})
}

// Recycle converts goods into currency
func (h *handler) Recycle(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req dto.RecycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondRequestError(c, err)
		return
	}

	if req.TakeFromInventory && !h.takeGoods(c, actor.ID, req.Goods) {
		return
	}

	result, err := h.service.RecycleBatch(c.Request.Context(), actor, req.Goods)
	if err != nil {
		if req.TakeFromInventory {
			h.returnGoods(c, actor.ID, req.Goods)
		}
		respondDomainError(c, err, "Failed to recycle goods")
		return
	}

	if req.TakeFromInventory && len(result.Rejected) > 0 {
		rejected := make([]domain.Goods, 0, len(result.Rejected))
		for _, i := range result.Rejected {
			rejected = append(rejected, req.Goods[i])
		}
		h.returnGoods(c, actor.ID, rejected)
	}

	c.JSON(http.StatusOK, dto.NewRecycleResponse(result))
}

// RecentTransactions lists the most recent transactions held in memory
func (h *handler) RecentTransactions(c *gin.Context) {
	page, err := ParsePageQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transactions": nonNil(h.service.RecentTransactions(page.Limit)),
	})
}

// GetStats summarizes the market
func (h *handler) GetStats(c *gin.Context) {
	economy := h.economy.Economy()
	c.JSON(http.StatusOK, dto.StatsResponse{
		SystemRevenue: h.service.SystemRevenue(),
		Currency:      economy.CurrencyName,
		TaxRate:       economy.TaxRate,
		RecycleRate:   economy.RecycleRate,
	})
}

// GetMyAccount returns the caller's account
func (h *handler) GetMyAccount(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.account(actor.ID))
}

// GetMyListings lists the caller's listings
func (h *handler) GetMyListings(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	page, err := ParsePageQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	listings := h.service.ListingsByOwner(actor.ID)
	c.JSON(http.StatusOK, dto.NewListResponse(listings, page.Offset, page.Limit))
}

// GetMyHistory lists the caller's transactions
func (h *handler) GetMyHistory(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	page, err := ParsePageQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transactions": nonNil(h.service.History(actor.ID, page.Limit)),
	})
}

// SetPresence records an actor joining or leaving the host
func (h *handler) SetPresence(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.PresenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondRequestError(c, err)
		return
	}

	ctx := c.Request.Context()
	if !req.Present {
		if h.presence.SetAbsent(id) {
			logger.InfoCtx(ctx, "Actor left", logger.Actor(id))
		}
		h.service.OnActorAbsent(ctx, id)
		c.Status(http.StatusNoContent)
		return
	}

	if h.presence.SetPresent(domain.Actor{ID: id, Name: strings.TrimSpace(req.Name)}) {
		logger.InfoCtx(ctx, "Actor joined", logger.Actor(id), zap.String("name", req.Name))
	}

	delivery, err := h.service.OnActorPresent(ctx, id)
	if err != nil {
		respondDomainError(c, err, "Failed to deliver to actor")
		return
	}

	c.JSON(http.StatusOK, dto.NewDeliveryResponse(delivery))
}

// ListPresent lists the actors present on the host
func (h *handler) ListPresent(c *gin.Context) {
	actors := h.presence.Present()
	if actors == nil {
		actors = []domain.Actor{}
	}
	c.JSON(http.StatusOK, gin.H{"actors": actors})
}

// GetAccount returns an actor's account
func (h *handler) GetAccount(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.account(id))
}

// QueryTransactions reads the persisted transaction archive
func (h *handler) QueryTransactions(c *gin.Context) {
	filter, err := ParseTransactionsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	records, err := h.store.QueryTransactions(c.Request.Context(), *filter)
	if err != nil {
		respondInternalError(c, err, "Failed to query transactions")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transactions": nonNil(records),
		"offset":       filter.Offset,
		"limit":        filter.Limit,
	})
}

// CreateCatalogEntry adds goods to the system shop
func (h *handler) CreateCatalogEntry(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req dto.CreateCatalogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondRequestError(c, err)
		return
	}

	entry, err := h.service.AddCatalogEntry(c.Request.Context(), actor.ID, req.Goods, req.UnitPrice, req.NominalQuantity)
	if err != nil {
		respondDomainError(c, err, "Failed to create catalog entry")
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// UpdateCatalogEntry changes the price or the nominal quantity of a catalog entry
func (h *handler) UpdateCatalogEntry(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCatalogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondRequestError(c, err)
		return
	}

	ctx := c.Request.Context()
	var entry domain.CatalogEntry
	var err error
	if req.UnitPrice != nil {
		entry, err = h.service.UpdateCatalogPrice(ctx, actor.ID, id, *req.UnitPrice)
		if err != nil {
			respondDomainError(c, err, "Failed to update catalog entry")
			return
		}
	}
	if req.NominalQuantity != nil {
		entry, err = h.service.UpdateCatalogQuantity(ctx, actor.ID, id, *req.NominalQuantity)
		if err != nil {
			respondDomainError(c, err, "Failed to update catalog entry")
			return
		}
	}

	c.JSON(http.StatusOK, entry)
}

// ToggleCatalogEntry enables or disables a catalog entry
func (h *handler) ToggleCatalogEntry(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	entry, err := h.service.ToggleCatalogEntry(c.Request.Context(), actor.ID, id)
	if err != nil {
		respondDomainError(c, err, "Failed to toggle catalog entry")
		return
	}

	c.JSON(http.StatusOK, entry)
}

// RemoveCatalogEntry deletes a catalog entry
func (h *handler) RemoveCatalogEntry(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	entry, err := h.service.RemoveCatalogEntry(c.Request.Context(), actor.ID, id)
	if err != nil {
		respondDomainError(c, err, "Failed to remove catalog entry")
		return
	}

	c.JSON(http.StatusOK, entry)
}

// SetBalance overwrites an actor's balance
func (h *handler) SetBalance(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	target, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.SetBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondRequestError(c, err)
		return
	}

	balance, err := h.service.SetBalance(c.Request.Context(), actor.ID, target, req.Balance)
	if err != nil {
		respondDomainError(c, err, "Failed to set balance")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"actor_id": target,
		"balance":  balance,
	})
}

// SetRecyclePrice overrides the base recycle price of an item type
func (h *handler) SetRecyclePrice(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	itemType, ok := parseItemTypeParam(c)
	if !ok {
		return
	}

	var req dto.SetRecyclePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondRequestError(c, err)
		return
	}

	if err := h.service.SetRecyclePrice(c.Request.Context(), actor.ID, itemType, req.Price); err != nil {
		respondDomainError(c, err, "Failed to set recycle price")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"item_type": itemType,
		"price":     req.Price,
	})
}

// RemoveRecyclePrice makes an item type unrecyclable
func (h *handler) RemoveRecyclePrice(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	itemType, ok := parseItemTypeParam(c)
	if !ok {
		return
	}

	if err := h.service.RemoveRecyclePrice(c.Request.Context(), actor.ID, itemType); err != nil {
		respondDomainError(c, err, "Failed to remove recycle price")
		return
	}

	c.Status(http.StatusNoContent)
}

// SaveState persists the market immediately
func (h *handler) SaveState(c *gin.Context) {
	actor, ok := requireAdmin(c, h.service)
	if !ok {
		return
	}

	if err := h.flusher.Flush(c.Request.Context()); err != nil {
		respondInternalError(c, err, "Failed to save market state")
		return
	}

	logger.InfoCtx(c.Request.Context(), "Market state saved on request", logger.Actor(actor.ID))
	c.JSON(http.StatusOK, gin.H{"version": h.service.Version()})
}

// ExpireListings returns expired listings to their owners immediately
func (h *handler) ExpireListings(c *gin.Context) {
	if _, ok := requireAdmin(c, h.service); !ok {
		return
	}

	expired := h.service.ExpireListings(c.Request.Context())
	if expired == nil {
		expired = []domain.Listing{}
	}
	c.JSON(http.StatusOK, gin.H{"expired": expired})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "ff-market",
		"version": h.service.Version(),
	})
}

func (h *handler) account(actor domain.ActorID) dto.AccountResponse {
	pending := h.service.PendingGoods(actor)
	if pending == nil {
		pending = []domain.Goods{}
	}
	return dto.AccountResponse{
		ActorID:       actor,
		Balance:       h.service.Balance(actor),
		OfflineCredit: h.service.OfflineCredit(actor),
		PendingGoods:  pending,
		Present:       h.presence.IsPresent(actor),
		Currency:      h.economy.Economy().CurrencyName,
	}
}

// takeGoods removes goods from a present actor's holdings.
// On failure the goods already taken are handed back and the response is written.
func (h *handler) takeGoods(c *gin.Context, actor domain.ActorID, goods []domain.Goods) bool {
	if !h.presence.IsPresent(actor) {
		respondConflict(c, "Actor is not present", "goods can only be taken from a present actor")
		return false
	}

	ctx := c.Request.Context()
	for i, g := range goods {
		if !h.inventory.RemoveGoods(ctx, actor, g) {
			h.returnGoods(c, actor, goods[:i])
			respondConflict(c, "Goods not held", g.Name())
			return false
		}
	}
	return true
}

// returnGoods hands goods back to an actor after a failed operation
func (h *handler) returnGoods(c *gin.Context, actor domain.ActorID, goods []domain.Goods) {
	ctx := c.Request.Context()
	for _, g := range goods {
		if h.inventory.GiveGoods(ctx, actor, g) || h.inventory.DropGoods(ctx, actor, g) {
			continue
		}
		logger.WarnCtx(ctx, "Failed to return goods to actor",
			logger.Actor(actor),
			zap.String("itemType", g.ItemType),
			zap.Int("quantity", g.Quantity))
	}
}

// requireActor returns the authenticated actor or writes an unauthorized response
func requireActor(c *gin.Context) (domain.Actor, bool) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		respondUnauthorized(c, "Actor is required")
		return domain.Actor{}, false
	}
	return actor, true
}

// requireAdmin returns the authenticated actor when privileged
func requireAdmin(c *gin.Context, service market.Service) (domain.Actor, bool) {
	actor, ok := requireActor(c)
	if !ok {
		return domain.Actor{}, false
	}
	if !service.IsPrivileged(actor.ID) {
		respondForbidden(c, "Actor is not privileged")
		return domain.Actor{}, false
	}
	return actor, true
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	raw := c.Param(name)
	if raw == "" {
		respondBadRequest(c, "ID is required")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		respondBadRequest(c, "Invalid ID", err.Error())
		return uuid.Nil, false
	}
	return id, true
}

func parseItemTypeParam(c *gin.Context) (string, bool) {
	itemType := strings.TrimSpace(c.Param("item_type"))
	if itemType == "" {
		respondBadRequest(c, "Item type is required")
		return "", false
	}
	if len(itemType) > constants.MAX_ITEM_TYPE_LENGTH {
		respondValidationError(c, "item type is too long")
		return "", false
	}
	return itemType, true
}

func nonNil(records []domain.TransactionRecord) []domain.TransactionRecord {
	if records == nil {
		return []domain.TransactionRecord{}
	}
	return records
}
