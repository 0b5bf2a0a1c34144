package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"

	"github.com/feral-file/ff-market/internal/config"
	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/logger"
	"github.com/feral-file/ff-market/internal/store/schema"
)

type sqlStore struct {
	db *gorm.DB
	// historyLimit caps the records LoadState reads back from the archive
	historyLimit func() int
}

func hasDBResolver(db *gorm.DB) bool {
	return db != nil && db.Callback().Query().Get("gorm:db_resolver") != nil
}

// primary routes reads to the primary when a replica is registered.
// A replica can lag behind, and state must never be loaded stale.
func primary(db *gorm.DB) *gorm.DB {
	if hasDBResolver(db) {
		return db.Clauses(dbresolver.Write).Session(&gorm.Session{})
	}
	return db
}

// NewSQLStore creates a new SQL store instance. historyLimit is read on every LoadState.
func NewSQLStore(db *gorm.DB, historyLimit func() int) Store {
	return &sqlStore{db: db, historyLimit: historyLimit}
}

func dialector(driver, dsn string) gorm.Dialector {
	if driver == config.DriverMySQL {
		return mysql.Open(dsn)
	}
	return postgres.Open(dsn)
}

// Open connects to the configured database and registers the read replica, if any
func Open(cfg config.DatabaseConfig, debug bool) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if debug {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(dialector(cfg.Driver, cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime :=
		NormalizeConnectionPoolSettings(cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime, cfg.ConnMaxIdleTime)

	if cfg.ReadHost != "" {
		resolver := dbresolver.Register(dbresolver.Config{
			Replicas: []gorm.Dialector{dialector(cfg.Driver, cfg.ReadDSN())},
			Policy:   dbresolver.RandomPolicy{},
		}).
			SetMaxOpenConns(maxOpenConns).
			SetMaxIdleConns(maxIdleConns).
			SetConnMaxLifetime(connMaxLifetime).
			SetConnMaxIdleTime(connMaxIdleTime)
		if err := db.Use(resolver); err != nil {
			return nil, fmt.Errorf("failed to register read replica: %w", err)
		}
	}

	if err := ConfigureConnectionPool(db, maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the market tables
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(schema.Models()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// calculateSafeBatchSize computes the batch size for bulk statements so that a single
// query stays under 65535 bind parameters, the limit of the PostgreSQL extended protocol
// and of MySQL prepared statements.
//
// A total headroom is reserved for batch-level parameters such as ON CONFLICT clauses.
func calculateSafeBatchSize(totalRecords int, fieldsPerRecord int) int {
	const maxParams = 65535
	const totalHeadroom = 1000

	availableParams := maxParams - totalHeadroom
	safeBatchSize := max(availableParams/fieldsPerRecord, 1)

	if safeBatchSize > totalRecords {
		return totalRecords
	}

	return safeBatchSize
}

// LoadState reads the last saved state
func (s *sqlStore) LoadState(ctx context.Context) (*State, error) {
	db := primary(s.db.WithContext(ctx))

	var versionKV schema.KeyValueStore
	err := db.Where(map[string]any{"key": schema.KeyStateVersion}).First(&versionKV).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get state version: %w", err)
	}

	state := &State{
		Balances:       make(map[domain.ActorID]int64),
		OfflineCredits: make(map[domain.ActorID]int64),
		RecyclePrices:  make(map[string]int64),
	}

	if state.Version, err = strconv.ParseUint(versionKV.Value, 10, 64); err != nil {
		return nil, fmt.Errorf("failed to parse state version: %w", err)
	}

	var kvs []schema.KeyValueStore
	if err := db.Where(map[string]any{"key": []string{schema.KeySystemRevenue, schema.KeyStateTakenAt}}).Find(&kvs).Error; err != nil {
		return nil, fmt.Errorf("failed to get market scalars: %w", err)
	}
	for _, kv := range kvs {
		switch kv.Key {
		case schema.KeySystemRevenue:
			if state.Revenue, err = strconv.ParseInt(kv.Value, 10, 64); err != nil {
				return nil, fmt.Errorf("failed to parse system revenue: %w", err)
			}
		case schema.KeyStateTakenAt:
			if state.TakenAt, err = time.Parse(time.RFC3339Nano, kv.Value); err != nil {
				return nil, fmt.Errorf("failed to parse state time: %w", err)
			}
		}
	}

	var listingRows []schema.Listing
	if err := db.Order("created_at ASC").Find(&listingRows).Error; err != nil {
		return nil, fmt.Errorf("failed to get listings: %w", err)
	}
	for _, row := range listingRows {
		listing, err := fromListingRow(row)
		if err != nil {
			return nil, err
		}
		state.Listings = append(state.Listings, listing)
	}

	var catalogRows []schema.CatalogEntry
	if err := db.Order("created_at ASC").Find(&catalogRows).Error; err != nil {
		return nil, fmt.Errorf("failed to get catalog entries: %w", err)
	}
	for _, row := range catalogRows {
		entry, err := fromCatalogRow(row)
		if err != nil {
			return nil, err
		}
		state.Catalog = append(state.Catalog, entry)
	}

	var accountRows []schema.Account
	if err := db.Find(&accountRows).Error; err != nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}
	for _, row := range accountRows {
		actor, err := uuid.Parse(row.ActorID)
		if err != nil {
			return nil, fmt.Errorf("invalid account id %q: %w", row.ActorID, err)
		}
		state.Balances[actor] = row.Balance
		if row.OfflineCredit > 0 {
			state.OfflineCredits[actor] = row.OfflineCredit
		}
	}

	var pendingRows []schema.PendingGoods
	if err := db.Find(&pendingRows).Error; err != nil {
		return nil, fmt.Errorf("failed to get pending goods: %w", err)
	}
	for _, row := range pendingRows {
		pending, err := fromPendingRow(row)
		if err != nil {
			return nil, err
		}
		state.PendingGoods = append(state.PendingGoods, pending)
	}

	var priceRows []schema.RecyclePrice
	if err := db.Find(&priceRows).Error; err != nil {
		return nil, fmt.Errorf("failed to get recycle prices: %w", err)
	}
	for _, row := range priceRows {
		state.RecyclePrices[row.ItemType] = row.Price
	}

	query := db.Order("id DESC")
	if s.historyLimit != nil {
		if limit := s.historyLimit(); limit > 0 {
			query = query.Limit(limit)
		}
	}
	var transactionRows []schema.Transaction
	if err := query.Find(&transactionRows).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	// History is kept oldest first
	slices.Reverse(transactionRows)
	for _, row := range transactionRows {
		record, err := fromTransactionRow(row)
		if err != nil {
			return nil, err
		}
		state.History = append(state.History, record)
	}

	logger.InfoCtx(ctx, "State loaded",
		zap.Uint64("version", state.Version),
		zap.Int("listings", len(state.Listings)),
		zap.Int("catalog", len(state.Catalog)),
		zap.Int("accounts", len(state.Balances)),
		zap.Int("history", len(state.History)))

	return state, nil
}

// SaveState replaces the saved state in a single transaction
func (s *sqlStore) SaveState(ctx context.Context, state *State) error {
	if state == nil {
		return fmt.Errorf("%w: state is required", domain.ErrInvalidInput)
	}

	listingRows := make([]schema.Listing, 0, len(state.Listings))
	listingIDs := make([]string, 0, len(state.Listings))
	for _, l := range state.Listings {
		row, err := toListingRow(l)
		if err != nil {
			return err
		}
		listingRows = append(listingRows, row)
		listingIDs = append(listingIDs, row.ID)
	}

	catalogRows := make([]schema.CatalogEntry, 0, len(state.Catalog))
	catalogIDs := make([]string, 0, len(state.Catalog))
	for _, e := range state.Catalog {
		row, err := toCatalogRow(e)
		if err != nil {
			return err
		}
		catalogRows = append(catalogRows, row)
		catalogIDs = append(catalogIDs, row.ID)
	}

	accountRows := toAccountRows(state.Balances, state.OfflineCredits)
	accountIDs := make([]string, 0, len(accountRows))
	for _, row := range accountRows {
		accountIDs = append(accountIDs, row.ActorID)
	}

	pendingRows := make([]schema.PendingGoods, 0, len(state.PendingGoods))
	pendingIDs := make([]string, 0, len(state.PendingGoods))
	for _, p := range state.PendingGoods {
		if len(p.Goods) == 0 {
			continue
		}
		row, err := toPendingRow(p)
		if err != nil {
			return err
		}
		pendingRows = append(pendingRows, row)
		pendingIDs = append(pendingIDs, row.ActorID)
	}

	priceRows := make([]schema.RecyclePrice, 0, len(state.RecyclePrices))
	priceIDs := make([]string, 0, len(state.RecyclePrices))
	for itemType, price := range state.RecyclePrices {
		priceRows = append(priceRows, schema.RecyclePrice{ItemType: itemType, Price: price})
		priceIDs = append(priceIDs, itemType)
	}

	transactionRows := make([]schema.Transaction, 0, len(state.History))
	for _, r := range state.History {
		row, err := toTransactionRow(r)
		if err != nil {
			return err
		}
		transactionRows = append(transactionRows, row)
	}

	takenAt := state.TakenAt
	if takenAt.IsZero() {
		takenAt = time.Now()
	}
	kvs := []schema.KeyValueStore{
		{Key: schema.KeySystemRevenue, Value: strconv.FormatInt(state.Revenue, 10)},
		{Key: schema.KeyStateVersion, Value: strconv.FormatUint(state.Version, 10)},
		{Key: schema.KeyStateTakenAt, Value: takenAt.UTC().Format(time.RFC3339Nano)},
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := replaceRows(tx, listingRows, "id", listingIDs, 8); err != nil {
			return fmt.Errorf("failed to save listings: %w", err)
		}
		if err := replaceRows(tx, catalogRows, "id", catalogIDs, 8); err != nil {
			return fmt.Errorf("failed to save catalog entries: %w", err)
		}
		if err := replaceRows(tx, accountRows, "actor_id", accountIDs, 4); err != nil {
			return fmt.Errorf("failed to save accounts: %w", err)
		}
		if err := replaceRows(tx, pendingRows, "actor_id", pendingIDs, 3); err != nil {
			return fmt.Errorf("failed to save pending goods: %w", err)
		}
		if err := replaceRows(tx, priceRows, "item_type", priceIDs, 2); err != nil {
			return fmt.Errorf("failed to save recycle prices: %w", err)
		}

		// The archive keeps records the in-memory history already evicted
		if len(transactionRows) > 0 {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoNothing: true,
			}).CreateInBatches(transactionRows, calculateSafeBatchSize(len(transactionRows), 12)).Error; err != nil {
				return fmt.Errorf("failed to archive transactions: %w", err)
			}
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&kvs).Error; err != nil {
			return fmt.Errorf("failed to save market scalars: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	logger.DebugCtx(ctx, "State saved",
		zap.Uint64("version", state.Version),
		zap.Int("listings", len(listingRows)),
		zap.Int("accounts", len(accountRows)))

	return nil
}

// replaceRows makes the table hold exactly rows: stale keys are deleted, the rest upserted
func replaceRows[T any](tx *gorm.DB, rows []T, key string, keys []string, fieldsPerRecord int) error {
	var existing []string
	if err := tx.Model(new(T)).Pluck(key, &existing).Error; err != nil {
		return err
	}

	keep := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		keep[k] = struct{}{}
	}
	var stale []string
	for _, k := range existing {
		if _, ok := keep[k]; !ok {
			stale = append(stale, k)
		}
	}

	batchSize := calculateSafeBatchSize(len(stale), 1)
	for batch := range slices.Chunk(stale, max(batchSize, 1)) {
		if err := tx.Where(key+" IN ?", batch).Delete(new(T)).Error; err != nil {
			return err
		}
	}

	if len(rows) == 0 {
		return nil
	}

	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: key}},
		UpdateAll: true,
	}).CreateInBatches(rows, calculateSafeBatchSize(len(rows), fieldsPerRecord)).Error
}

// QueryTransactions reads the transaction archive, newest first
func (s *sqlStore) QueryTransactions(ctx context.Context, filter TransactionFilter) ([]domain.TransactionRecord, error) {
	query := s.db.WithContext(ctx).Model(&schema.Transaction{})

	if filter.Actor != nil {
		actor := filter.Actor.String()
		query = query.Where("seller_id = ? OR buyer_id = ?", actor, actor)
	}
	if filter.Kind != nil {
		query = query.Where("kind = ?", string(*filter.Kind))
	}
	if filter.Since != nil {
		query = query.Where("timestamp >= ?", filter.Since.UTC())
	}
	if filter.Until != nil {
		query = query.Where("timestamp < ?", filter.Until.UTC())
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var rows []schema.Transaction
	if err := query.Order("id DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}

	records := make([]domain.TransactionRecord, 0, len(rows))
	for _, row := range rows {
		record, err := fromTransactionRow(row)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// Close releases the database connections
func (s *sqlStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}
