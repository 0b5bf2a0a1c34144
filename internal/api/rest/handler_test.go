package rest_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-market/internal/api/middleware"
	"github.com/feral-file/ff-market/internal/api/rest"
	"github.com/feral-file/ff-market/internal/api/shared/constants"
	"github.com/feral-file/ff-market/internal/api/shared/dto"
	"github.com/feral-file/ff-market/internal/config"
	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/host"
	"github.com/feral-file/ff-market/internal/logger"
	"github.com/feral-file/ff-market/internal/market"
	"github.com/feral-file/ff-market/internal/mocks"
	"github.com/feral-file/ff-market/internal/registry"
	"github.com/feral-file/ff-market/internal/store"
)

const testAPIKey = "test-api-key"

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}
	gin.SetMode(gin.TestMode)

	os.Exit(m.Run())
}

// testAPI wraps the router and its mocked collaborators
type testAPI struct {
	ctrl      *gomock.Controller
	router    *gin.Engine
	service   *mocks.MockMarketService
	inventory *mocks.MockInventory
	flusher   *mocks.MockPersistenceFlusher
	store     *mocks.MockStore
	presence  host.PresenceTracker
	economy   *config.EconomyStore
}

func setupTestAPI(t *testing.T) *testAPI {
	ctrl := gomock.NewController(t)
	tapi := &testAPI{
		ctrl:      ctrl,
		service:   mocks.NewMockMarketService(ctrl),
		inventory: mocks.NewMockInventory(ctrl),
		flusher:   mocks.NewMockPersistenceFlusher(ctrl),
		store:     mocks.NewMockStore(ctrl),
		presence:  host.NewSessionPresence(),
		economy:   config.NewEconomyStore(config.DefaultEconomyConfig()),
	}

	handler := rest.NewHandler(false, rest.Deps{
		Service:   tapi.service,
		Presence:  tapi.presence,
		Inventory: tapi.inventory,
		Flusher:   tapi.flusher,
		Store:     tapi.store,
		Economy:   tapi.economy,
	})

	tapi.router = gin.New()
	rest.SetupRoutes(tapi.router, handler, middleware.AuthConfig{APIKeys: []string{testAPIKey}}, tapi.presence)
	return tapi
}

// do sends a request; a non-nil actor is authenticated through the API key
func (tapi *testAPI) do(method, path string, body any, actor *domain.Actor) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if actor != nil {
		req.Header.Set("Authorization", "ApiKey "+testAPIKey)
		req.Header.Set(constants.ACTOR_ID_HEADER, actor.ID.String())
		req.Header.Set(constants.ACTOR_NAME_HEADER, actor.Name)
	}

	w := httptest.NewRecorder()
	tapi.router.ServeHTTP(w, req)
	return w
}

// doHost sends a request authenticated as the host application
func (tapi *testAPI) doHost(method, path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "ApiKey "+testAPIKey)

	w := httptest.NewRecorder()
	tapi.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func newActor(name string) domain.Actor {
	return domain.Actor{ID: uuid.New(), Name: name}
}

func diamonds(quantity int) domain.Goods {
	return domain.Goods{ItemType: "minecraft:diamond", DisplayName: "Diamond", Quantity: quantity}
}

func TestHealthCheck(t *testing.T) {
	tapi := setupTestAPI(t)
	tapi.service.EXPECT().Version().Return(uint64(7))

	w := tapi.do(http.MethodGet, "/health", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(7), body["version"])
}

func TestSearchListings(t *testing.T) {
	seller := uuid.New()
	listings := make([]domain.Listing, 5)
	for i := range listings {
		listings[i] = domain.Listing{ID: uuid.New(), OwnerID: seller, Goods: diamonds(1), UnitPrice: int64(10 + i), Active: true}
	}

	t.Run("pages the results", func(t *testing.T) {
		tapi := setupTestAPI(t)
		tapi.service.EXPECT().
			SearchListings(registry.Query{Keyword: "dia", Sort: domain.SortPriceAsc, Owner: &seller}).
			Return(listings)

		w := tapi.do(http.MethodGet, "/api/v1/listings?q=dia&sort=price_asc&owner="+seller.String()+"&limit=2&offset=1", nil, nil)

		require.Equal(t, http.StatusOK, w.Code)
		page := decode[dto.ListResponse[domain.Listing]](t, w)
		assert.Equal(t, 5, page.Total)
		assert.Equal(t, 1, page.Offset)
		assert.Equal(t, 2, page.Limit)
		require.Len(t, page.Items, 2)
		assert.Equal(t, listings[1].ID, page.Items[0].ID)
		assert.Equal(t, listings[2].ID, page.Items[1].ID)
	})

	t.Run("caps the page size", func(t *testing.T) {
		tapi := setupTestAPI(t)
		tapi.service.EXPECT().SearchListings(gomock.Any()).Return(listings)

		w := tapi.do(http.MethodGet, "/api/v1/listings?limit=5000", nil, nil)

		require.Equal(t, http.StatusOK, w.Code)
		page := decode[dto.ListResponse[domain.Listing]](t, w)
		assert.Equal(t, constants.MAX_PAGE_SIZE, page.Limit)
		assert.Len(t, page.Items, 5)
	})

	tests := []struct {
		name  string
		query string
	}{
		{"unknown sort", "sort=cheapest"},
		{"negative price", "min_price=-1"},
		{"inverted price range", "min_price=10&max_price=5"},
		{"malformed owner", "owner=steve"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tapi := setupTestAPI(t)

			w := tapi.do(http.MethodGet, "/api/v1/listings?"+tt.query, nil, nil)

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		})
	}
}

func TestGetListing(t *testing.T) {
	tapi := setupTestAPI(t)
	listing := domain.Listing{ID: uuid.New(), OwnerID: uuid.New(), Goods: diamonds(3), UnitPrice: 10, Active: true}
	missing := uuid.New()

	tapi.service.EXPECT().GetListing(listing.ID).Return(listing, true)
	tapi.service.EXPECT().GetListing(missing).Return(domain.Listing{}, false)

	w := tapi.do(http.MethodGet, "/api/v1/listings/"+listing.ID.String(), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, listing.ID, decode[domain.Listing](t, w).ID)

	w = tapi.do(http.MethodGet, "/api/v1/listings/"+missing.String(), nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = tapi.do(http.MethodGet, "/api/v1/listings/not-a-uuid", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateListing(t *testing.T) {
	alice := newActor("alice")

	t.Run("lists goods", func(t *testing.T) {
		tapi := setupTestAPI(t)
		created := domain.Listing{ID: uuid.New(), OwnerID: alice.ID, OwnerName: alice.Name, Goods: diamonds(5), UnitPrice: 10, Active: true}
		tapi.service.EXPECT().List(gomock.Any(), alice, diamonds(5), int64(10)).Return(created, nil)

		w := tapi.do(http.MethodPost, "/api/v1/listings", dto.CreateListingRequest{Goods: diamonds(5), UnitPrice: 10}, &alice)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, created.ID, decode[domain.Listing](t, w).ID)
	})

	t.Run("requires authentication", func(t *testing.T) {
		tapi := setupTestAPI(t)

		w := tapi.do(http.MethodPost, "/api/v1/listings", dto.CreateListingRequest{Goods: diamonds(5), UnitPrice: 10}, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects an invalid body", func(t *testing.T) {
		tapi := setupTestAPI(t)

		w := tapi.do(http.MethodPost, "/api/v1/listings", dto.CreateListingRequest{Goods: diamonds(0), UnitPrice: 10}, &alice)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("maps engine errors", func(t *testing.T) {
		tapi := setupTestAPI(t)
		tapi.service.EXPECT().List(gomock.Any(), alice, diamonds(5), int64(10)).Return(domain.Listing{}, domain.ErrMaxListingsExceeded)

		w := tapi.do(http.MethodPost, "/api/v1/listings", dto.CreateListingRequest{Goods: diamonds(5), UnitPrice: 10}, &alice)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("takes goods from the inventory", func(t *testing.T) {
		tapi := setupTestAPI(t)
		tapi.presence.SetPresent(alice)
		gomock.InOrder(
			tapi.inventory.EXPECT().RemoveGoods(gomock.Any(), alice.ID, diamonds(5)).Return(true),
			tapi.service.EXPECT().List(gomock.Any(), alice, diamonds(5), int64(10)).Return(domain.Listing{ID: uuid.New()}, nil),
		)

		w := tapi.do(http.MethodPost, "/api/v1/listings", dto.CreateListingRequest{Goods: diamonds(5), UnitPrice: 10, TakeFromInventory: true}, &alice)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("returns taken goods when listing fails", func(t *testing.T) {
		tapi := setupTestAPI(t)
		tapi.presence.SetPresent(alice)
		gomock.InOrder(
			tapi.inventory.EXPECT().RemoveGoods(gomock.Any(), alice.ID, diamonds(5)).Return(true),
			tapi.service.EXPECT().List(gomock.Any(), alice, diamonds(5), int64(10)).Return(domain.Listing{}, domain.ErrItemBlacklisted),
			tapi.inventory.EXPECT().GiveGoods(gomock.Any(), alice.ID, diamonds(5)).Return(false),
			tapi.inventory.EXPECT().DropGoods(gomock.Any(), alice.ID, diamonds(5)).Return(true),
		)

		w := tapi.do(http.MethodPost, "/api/v1/listings", dto.CreateListingRequest{Goods: diamonds(5), UnitPrice: 10, TakeFromInventory: true}, &alice)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("absent actors cannot list from the inventory", func(t *testing.T) {
		tapi := setupTestAPI(t)

		w := tapi.do(http.MethodPost, "/api/v1/listings", dto.CreateListingRequest{Goods: diamonds(5), UnitPrice: 10, TakeFromInventory: true}, &alice)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("goods not held", func(t *testing.T) {
		tapi := setupTestAPI(t)
		tapi.presence.SetPresent(alice)
		tapi.inventory.EXPECT().RemoveGoods(gomock.Any(), alice.ID, diamonds(5)).Return(false)

		w := tapi.do(http.MethodPost, "/api/v1/listings", dto.CreateListingRequest{Goods: diamonds(5), UnitPrice: 10, TakeFromInventory: true}, &alice)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestUnlistAndReprice(t *testing.T) {
	tapi := setupTestAPI(t)
	alice := newActor("alice")
	id := uuid.New()

	tapi.service.EXPECT().Unlist(gomock.Any(), id, alice.ID).Return(domain.Listing{}, domain.ErrNotOwner)
	w := tapi.do(http.MethodDelete, "/api/v1/listings/"+id.String(), nil, &alice)
	assert.Equal(t, http.StatusForbidden, w.Code)

	tapi.service.EXPECT().UpdatePrice(gomock.Any(), id, alice.ID, int64(25)).Return(domain.Listing{ID: id, UnitPrice: 25}, nil)
	w = tapi.do(http.MethodPatch, "/api/v1/listings/"+id.String(), dto.UpdatePriceRequest{UnitPrice: 25}, &alice)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(25), decode[domain.Listing](t, w).UnitPrice)

	w = tapi.do(http.MethodPatch, "/api/v1/listings/"+id.String(), dto.UpdatePriceRequest{UnitPrice: 0}, &alice)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestPurchaseListing(t *testing.T) {
	bob := newActor("bob")
	id := uuid.New()

	t.Run("buys", func(t *testing.T) {
		tapi := setupTestAPI(t)
		tapi.service.EXPECT().
			Purchase(gomock.Any(), market.PurchaseRequest{ListingID: id, Buyer: bob, Quantity: 2}).
			Return(&market.PurchaseResult{Goods: diamonds(2), TotalPrice: 20, Tax: 1, SellerProceeds: 19, BuyerBalance: 80}, nil)

		w := tapi.do(http.MethodPost, "/api/v1/listings/"+id.String()+"/purchase", dto.PurchaseRequest{Quantity: 2}, &bob)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[dto.PurchaseResponse](t, w)
		assert.Equal(t, int64(20), resp.TotalPrice)
		assert.Equal(t, int64(80), resp.Balance)
	})

	tests := []struct {
		err    error
		status int
	}{
		{domain.ErrInsufficientFunds, http.StatusPaymentRequired},
		{domain.ErrSelfPurchaseForbidden, http.StatusConflict},
		{domain.ErrListingNotFound, http.StatusNotFound},
		{domain.ErrInvalidQuantity, http.StatusUnprocessableEntity},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			tapi := setupTestAPI(t)
			tapi.service.EXPECT().Purchase(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			w := tapi.do(http.MethodPost, "/api/v1/listings/"+id.String()+"/purchase", dto.PurchaseRequest{Quantity: 2}, &bob)

			assert.Equal(t, tt.status, w.Code)
		})
	}

	t.Run("quantity above the limit", func(t *testing.T) {
		tapi := setupTestAPI(t)

		w := tapi.do(http.MethodPost, "/api/v1/listings/"+id.String()+"/purchase", dto.PurchaseRequest{Quantity: constants.MAX_GOODS_QUANTITY + 1}, &bob)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		w = tapi.do(http.MethodPost, "/api/v1/catalog/"+id.String()+"/purchase", dto.PurchaseRequest{Quantity: 1 << 62}, &bob)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestPurchaseBatch(t *testing.T) {
	tapi := setupTestAPI(t)
	bob := newActor("bob")
	first, second := uuid.New(), uuid.New()

	tapi.service.EXPECT().
		PurchaseBatch(gomock.Any(), []market.PurchaseRequest{
			{ListingID: first, Buyer: bob, Quantity: 1},
			{ListingID: second, Buyer: bob, Quantity: 3},
		}).
		Return([]market.BatchPurchaseResult{
			{Request: market.PurchaseRequest{ListingID: first}, Result: &market.PurchaseResult{TotalPrice: 10}},
			{Request: market.PurchaseRequest{ListingID: second}, Err: domain.ErrListingNotFound},
		})

	w := tapi.do(http.MethodPost, "/api/v1/purchases/batch", dto.BatchPurchaseRequest{Purchases: []dto.BatchPurchaseItem{
		{ListingID: first, Quantity: 1},
		{ListingID: second, Quantity: 3},
	}}, &bob)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.BatchPurchaseResponse](t, w)
	assert.Equal(t, 1, resp.Succeeded)
	assert.Equal(t, 1, resp.Failed)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, first, resp.Results[0].ListingID)
	require.NotNil(t, resp.Results[0].Purchase)
	assert.Equal(t, second, resp.Results[1].ListingID)
	assert.Equal(t, domain.ErrListingNotFound.Error(), resp.Results[1].Error)

	w = tapi.do(http.MethodPost, "/api/v1/purchases/batch", dto.BatchPurchaseRequest{}, &bob)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = tapi.do(http.MethodPost, "/api/v1/purchases/batch", dto.BatchPurchaseRequest{Purchases: []dto.BatchPurchaseItem{
		{ListingID: first, Quantity: 1},
		{ListingID: second, Quantity: constants.MAX_GOODS_QUANTITY + 1},
	}}, &bob)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCatalog(t *testing.T) {
	tapi := setupTestAPI(t)
	bob := newActor("bob")
	entry := domain.CatalogEntry{ID: uuid.New(), Goods: diamonds(64), UnitPrice: 5, NominalQuantity: 64, Active: true}

	tapi.service.EXPECT().SearchCatalog("dia", true).Return([]domain.CatalogEntry{entry})
	w := tapi.do(http.MethodGet, "/api/v1/catalog?q=dia", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[dto.ListResponse[domain.CatalogEntry]](t, w).Total)

	tapi.service.EXPECT().SearchCatalog("", false).Return(nil)
	w = tapi.do(http.MethodGet, "/api/v1/catalog?active_only=false", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[dto.ListResponse[domain.CatalogEntry]](t, w).Items)

	tapi.service.EXPECT().GetCatalogEntry(entry.ID).Return(entry, true)
	w = tapi.do(http.MethodGet, "/api/v1/catalog/"+entry.ID.String(), nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	tapi.service.EXPECT().
		PurchaseCatalog(gomock.Any(), market.CatalogPurchaseRequest{EntryID: entry.ID, Buyer: bob, Quantity: 3}).
		Return(nil, domain.ErrCatalogEntryInactive)
	w = tapi.do(http.MethodPost, "/api/v1/catalog/"+entry.ID.String()+"/purchase", dto.PurchaseRequest{Quantity: 3}, &bob)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRecycle(t *testing.T) {
	alice := newActor("alice")
	stone := domain.Goods{ItemType: "minecraft:stone", Quantity: 64}

	t.Run("preview", func(t *testing.T) {
		tapi := setupTestAPI(t)
		tapi.service.EXPECT().PreviewRecycle([]domain.Goods{diamonds(2), stone}).Return(int64(40), []int64{40, 0})

		w := tapi.do(http.MethodPost, "/api/v1/recycle/preview", dto.RecycleRequest{Goods: []domain.Goods{diamonds(2), stone}}, nil)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[dto.RecyclePreviewResponse](t, w)
		assert.Equal(t, int64(40), resp.Total)
		assert.Equal(t, []int64{40, 0}, resp.Prices)
	})

	t.Run("prices", func(t *testing.T) {
		tapi := setupTestAPI(t)
		tapi.service.EXPECT().RecyclePrices().Return(map[string]int64{"minecraft:diamond": 100})

		w := tapi.do(http.MethodGet, "/api/v1/recycle/prices", nil, nil)

		require.Equal(t, http.StatusOK, w.Code)
		body := decode[map[string]any](t, w)
		assert.Equal(t, map[string]any{"minecraft:diamond": float64(100)}, body["prices"])
	})

	t.Run("returns rejected stacks to the inventory", func(t *testing.T) {
		tapi := setupTestAPI(t)
		tapi.presence.SetPresent(alice)
		goods := []domain.Goods{diamonds(2), stone}
		gomock.InOrder(
			tapi.inventory.EXPECT().RemoveGoods(gomock.Any(), alice.ID, diamonds(2)).Return(true),
			tapi.inventory.EXPECT().RemoveGoods(gomock.Any(), alice.ID, stone).Return(true),
			tapi.service.EXPECT().RecycleBatch(gomock.Any(), alice, goods).Return(&market.RecycleResult{
				Prices:   []int64{40, 0},
				Rejected: []int{1},
				Total:    40,
				Balance:  140,
			}, nil),
			tapi.inventory.EXPECT().GiveGoods(gomock.Any(), alice.ID, stone).Return(true),
		)

		w := tapi.do(http.MethodPost, "/api/v1/recycle", dto.RecycleRequest{Goods: goods, TakeFromInventory: true}, &alice)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[dto.RecycleResponse](t, w)
		assert.Equal(t, int64(40), resp.Total)
		assert.Equal(t, []int{1}, resp.Rejected)
		assert.Equal(t, int64(140), resp.Balance)
	})

	t.Run("hands back goods already taken when one stack is missing", func(t *testing.T) {
		tapi := setupTestAPI(t)
		tapi.presence.SetPresent(alice)
		gomock.InOrder(
			tapi.inventory.EXPECT().RemoveGoods(gomock.Any(), alice.ID, diamonds(2)).Return(true),
			tapi.inventory.EXPECT().RemoveGoods(gomock.Any(), alice.ID, stone).Return(false),
			tapi.inventory.EXPECT().GiveGoods(gomock.Any(), alice.ID, diamonds(2)).Return(true),
		)

		w := tapi.do(http.MethodPost, "/api/v1/recycle", dto.RecycleRequest{Goods: []domain.Goods{diamonds(2), stone}, TakeFromInventory: true}, &alice)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("nothing recyclable", func(t *testing.T) {
		tapi := setupTestAPI(t)
		tapi.service.EXPECT().RecycleBatch(gomock.Any(), alice, []domain.Goods{stone}).Return(nil, domain.ErrNotRecyclable)

		w := tapi.do(http.MethodPost, "/api/v1/recycle", dto.RecycleRequest{Goods: []domain.Goods{stone}}, &alice)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestAccount(t *testing.T) {
	tapi := setupTestAPI(t)
	alice := newActor("alice")
	tapi.presence.SetPresent(alice)

	tapi.service.EXPECT().Balance(alice.ID).Return(int64(150)).Times(2)
	tapi.service.EXPECT().OfflineCredit(alice.ID).Return(int64(0)).Times(2)
	tapi.service.EXPECT().PendingGoods(alice.ID).Return(nil).Times(2)

	w := tapi.do(http.MethodGet, "/api/v1/me/account", nil, &alice)
	require.Equal(t, http.StatusOK, w.Code)
	account := decode[dto.AccountResponse](t, w)
	assert.Equal(t, alice.ID, account.ActorID)
	assert.Equal(t, int64(150), account.Balance)
	assert.True(t, account.Present)
	assert.Equal(t, domain.DEFAULT_CURRENCY_NAME, account.Currency)
	assert.NotNil(t, account.PendingGoods)

	w = tapi.doHost(http.MethodGet, "/api/v1/actors/"+alice.ID.String()+"/account", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(150), decode[dto.AccountResponse](t, w).Balance)
}

func TestMyListingsAndHistory(t *testing.T) {
	tapi := setupTestAPI(t)
	alice := newActor("alice")

	tapi.service.EXPECT().ListingsByOwner(alice.ID).Return([]domain.Listing{{ID: uuid.New()}, {ID: uuid.New()}})
	w := tapi.do(http.MethodGet, "/api/v1/me/listings", nil, &alice)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, decode[dto.ListResponse[domain.Listing]](t, w).Total)

	tapi.service.EXPECT().History(alice.ID, 5).Return(nil)
	w = tapi.do(http.MethodGet, "/api/v1/me/history?limit=5", nil, &alice)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"transactions":[]}`, w.Body.String())

	tapi.service.EXPECT().RecentTransactions(constants.DEFAULT_PAGE_SIZE).Return([]domain.TransactionRecord{{Price: 10}})
	w = tapi.do(http.MethodGet, "/api/v1/transactions/recent", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetPresence(t *testing.T) {
	alice := newActor("alice")
	path := "/api/v1/actors/" + alice.ID.String() + "/presence"

	t.Run("join delivers", func(t *testing.T) {
		tapi := setupTestAPI(t)
		tapi.service.EXPECT().OnActorPresent(gomock.Any(), alice.ID).Return(&market.Delivery{Credit: 30, Goods: []domain.Goods{diamonds(1)}}, nil)

		w := tapi.doHost(http.MethodPut, path, dto.PresenceRequest{Name: "alice", Present: true})

		require.Equal(t, http.StatusOK, w.Code)
		delivery := decode[dto.DeliveryResponse](t, w)
		assert.Equal(t, int64(30), delivery.Credit)
		assert.Len(t, delivery.Goods, 1)
		assert.True(t, tapi.presence.IsPresent(alice.ID))

		w = tapi.doHost(http.MethodGet, "/api/v1/actors/present", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), alice.ID.String())
	})

	t.Run("leave", func(t *testing.T) {
		tapi := setupTestAPI(t)
		tapi.presence.SetPresent(alice)
		tapi.service.EXPECT().OnActorAbsent(gomock.Any(), alice.ID)

		w := tapi.doHost(http.MethodPut, path, dto.PresenceRequest{Present: false})

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.False(t, tapi.presence.IsPresent(alice.ID))
	})

	t.Run("name required on join", func(t *testing.T) {
		tapi := setupTestAPI(t)

		w := tapi.doHost(http.MethodPut, path, dto.PresenceRequest{Present: true})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("requires an API key", func(t *testing.T) {
		tapi := setupTestAPI(t)

		w := tapi.do(http.MethodPut, path, dto.PresenceRequest{Name: "alice", Present: true}, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestQueryTransactions(t *testing.T) {
	tapi := setupTestAPI(t)
	actor := uuid.New()
	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	kind := domain.TransactionKindRecycle

	tapi.store.EXPECT().
		QueryTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, filter store.TransactionFilter) ([]domain.TransactionRecord, error) {
			require.NotNil(t, filter.Actor)
			assert.Equal(t, actor, *filter.Actor)
			require.NotNil(t, filter.Kind)
			assert.Equal(t, kind, *filter.Kind)
			require.NotNil(t, filter.Since)
			assert.True(t, since.Equal(*filter.Since))
			assert.Equal(t, 10, filter.Limit)
			return []domain.TransactionRecord{{Kind: kind}}, nil
		})

	w := tapi.doHost(http.MethodGet, "/api/v1/transactions?actor="+actor.String()+"&kind=recycle&since=2024-01-01T00:00:00Z&limit=10", nil)
	require.Equal(t, http.StatusOK, w.Code)

	tapi.store.EXPECT().QueryTransactions(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
	w = tapi.doHost(http.MethodGet, "/api/v1/transactions", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = tapi.doHost(http.MethodGet, "/api/v1/transactions?kind=gift", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAdminCatalog(t *testing.T) {
	tapi := setupTestAPI(t)
	admin := newActor("admin")
	id := uuid.New()
	price, quantity := int64(12), 32

	tapi.service.EXPECT().AddCatalogEntry(gomock.Any(), admin.ID, diamonds(64), int64(5), 64).Return(domain.CatalogEntry{ID: id}, nil)
	w := tapi.do(http.MethodPost, "/api/v1/admin/catalog", dto.CreateCatalogEntryRequest{Goods: diamonds(64), UnitPrice: 5, NominalQuantity: 64}, &admin)
	assert.Equal(t, http.StatusCreated, w.Code)

	gomock.InOrder(
		tapi.service.EXPECT().UpdateCatalogPrice(gomock.Any(), admin.ID, id, price).Return(domain.CatalogEntry{ID: id, UnitPrice: price}, nil),
		tapi.service.EXPECT().UpdateCatalogQuantity(gomock.Any(), admin.ID, id, quantity).Return(domain.CatalogEntry{ID: id, UnitPrice: price, NominalQuantity: quantity}, nil),
	)
	w = tapi.do(http.MethodPatch, "/api/v1/admin/catalog/"+id.String(), dto.UpdateCatalogEntryRequest{UnitPrice: &price, NominalQuantity: &quantity}, &admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, quantity, decode[domain.CatalogEntry](t, w).NominalQuantity)

	tapi.service.EXPECT().ToggleCatalogEntry(gomock.Any(), admin.ID, id).Return(domain.CatalogEntry{}, domain.ErrNotPrivileged)
	w = tapi.do(http.MethodPost, "/api/v1/admin/catalog/"+id.String()+"/toggle", nil, &admin)
	assert.Equal(t, http.StatusForbidden, w.Code)

	tapi.service.EXPECT().RemoveCatalogEntry(gomock.Any(), admin.ID, id).Return(domain.CatalogEntry{ID: id}, nil)
	w = tapi.do(http.MethodDelete, "/api/v1/admin/catalog/"+id.String(), nil, &admin)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminBalanceAndRecyclePrices(t *testing.T) {
	tapi := setupTestAPI(t)
	admin := newActor("admin")
	target := uuid.New()

	tapi.service.EXPECT().SetBalance(gomock.Any(), admin.ID, target, int64(500)).Return(int64(500), nil)
	w := tapi.do(http.MethodPut, "/api/v1/admin/balances/"+target.String(), dto.SetBalanceRequest{Balance: 500}, &admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(500), decode[map[string]any](t, w)["balance"])

	w = tapi.do(http.MethodPut, "/api/v1/admin/balances/"+target.String(), dto.SetBalanceRequest{Balance: -1}, &admin)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	tapi.service.EXPECT().SetRecyclePrice(gomock.Any(), admin.ID, "minecraft:emerald", int64(80)).Return(nil)
	w = tapi.do(http.MethodPut, "/api/v1/admin/recycle/prices/minecraft:emerald", dto.SetRecyclePriceRequest{Price: 80}, &admin)
	assert.Equal(t, http.StatusOK, w.Code)

	tapi.service.EXPECT().RemoveRecyclePrice(gomock.Any(), admin.ID, "minecraft:emerald").Return(domain.ErrNotRecyclable)
	w = tapi.do(http.MethodDelete, "/api/v1/admin/recycle/prices/minecraft:emerald", nil, &admin)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAdminSaveAndExpire(t *testing.T) {
	admin := newActor("admin")
	player := newActor("player")

	t.Run("save", func(t *testing.T) {
		tapi := setupTestAPI(t)
		gomock.InOrder(
			tapi.service.EXPECT().IsPrivileged(admin.ID).Return(true),
			tapi.flusher.EXPECT().Flush(gomock.Any()).Return(nil),
			tapi.service.EXPECT().Version().Return(uint64(12)),
		)

		w := tapi.do(http.MethodPost, "/api/v1/admin/save", nil, &admin)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(12), decode[map[string]any](t, w)["version"])
	})

	t.Run("save failure", func(t *testing.T) {
		tapi := setupTestAPI(t)
		tapi.service.EXPECT().IsPrivileged(admin.ID).Return(true)
		tapi.flusher.EXPECT().Flush(gomock.Any()).Return(errors.New("database is down"))

		w := tapi.do(http.MethodPost, "/api/v1/admin/save", nil, &admin)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("players cannot save", func(t *testing.T) {
		tapi := setupTestAPI(t)
		tapi.service.EXPECT().IsPrivileged(player.ID).Return(false)

		w := tapi.do(http.MethodPost, "/api/v1/admin/save", nil, &player)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("expire", func(t *testing.T) {
		tapi := setupTestAPI(t)
		tapi.service.EXPECT().IsPrivileged(admin.ID).Return(true)
		tapi.service.EXPECT().ExpireListings(gomock.Any()).Return(nil)

		w := tapi.do(http.MethodPost, "/api/v1/admin/expire", nil, &admin)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"expired":[]}`, w.Body.String())
	})
}

func TestGetStats(t *testing.T) {
	tapi := setupTestAPI(t)
	economy := config.DefaultEconomyConfig()
	economy.TaxRate = 0.1
	economy.CurrencyName = "Emeralds"
	tapi.economy.Set(economy)
	tapi.service.EXPECT().SystemRevenue().Return(int64(1234))

	w := tapi.do(http.MethodGet, "/api/v1/stats", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	stats := decode[dto.StatsResponse](t, w)
	assert.Equal(t, int64(1234), stats.SystemRevenue)
	assert.Equal(t, "Emeralds", stats.Currency)
	assert.Equal(t, 0.1, stats.TaxRate)
}
