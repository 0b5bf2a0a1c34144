package store

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/store/schema"
)

func marshalJSON(v any) (datatypes.JSON, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

func toListingRow(l domain.Listing) (schema.Listing, error) {
	goods, err := marshalJSON(l.Goods)
	if err != nil {
		return schema.Listing{}, fmt.Errorf("failed to marshal goods of listing %s: %w", l.ID, err)
	}
	return schema.Listing{
		ID:        l.ID.String(),
		OwnerID:   l.OwnerID.String(),
		OwnerName: l.OwnerName,
		ItemType:  l.Goods.ItemType,
		Goods:     goods,
		UnitPrice: l.UnitPrice,
		Active:    l.Active,
		CreatedAt: l.CreatedAt.UTC(),
	}, nil
}

func fromListingRow(row schema.Listing) (domain.Listing, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("invalid listing id %q: %w", row.ID, err)
	}
	owner, err := uuid.Parse(row.OwnerID)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("invalid owner id of listing %s: %w", row.ID, err)
	}
	var goods domain.Goods
	if err := json.Unmarshal(row.Goods, &goods); err != nil {
		return domain.Listing{}, fmt.Errorf("failed to unmarshal goods of listing %s: %w", row.ID, err)
	}
	return domain.Listing{
		ID:        id,
		OwnerID:   owner,
		OwnerName: row.OwnerName,
		Goods:     goods,
		UnitPrice: row.UnitPrice,
		Active:    row.Active,
		CreatedAt: row.CreatedAt,
	}, nil
}

func toCatalogRow(e domain.CatalogEntry) (schema.CatalogEntry, error) {
	goods, err := marshalJSON(e.Goods)
	if err != nil {
		return schema.CatalogEntry{}, fmt.Errorf("failed to marshal goods of catalog entry %s: %w", e.ID, err)
	}
	return schema.CatalogEntry{
		ID:              e.ID.String(),
		Goods:           goods,
		UnitPrice:       e.UnitPrice,
		NominalQuantity: e.NominalQuantity,
		Active:          e.Active,
		CreatedBy:       e.CreatedBy.String(),
		CreatedAt:       e.CreatedAt.UTC(),
		LastModified:    e.LastModified.UTC(),
	}, nil
}

func fromCatalogRow(row schema.CatalogEntry) (domain.CatalogEntry, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return domain.CatalogEntry{}, fmt.Errorf("invalid catalog entry id %q: %w", row.ID, err)
	}
	createdBy, err := uuid.Parse(row.CreatedBy)
	if err != nil {
		return domain.CatalogEntry{}, fmt.Errorf("invalid creator of catalog entry %s: %w", row.ID, err)
	}
	var goods domain.Goods
	if err := json.Unmarshal(row.Goods, &goods); err != nil {
		return domain.CatalogEntry{}, fmt.Errorf("failed to unmarshal goods of catalog entry %s: %w", row.ID, err)
	}
	return domain.CatalogEntry{
		ID:              id,
		Goods:           goods,
		UnitPrice:       row.UnitPrice,
		NominalQuantity: row.NominalQuantity,
		Active:          row.Active,
		CreatedBy:       createdBy,
		CreatedAt:       row.CreatedAt,
		LastModified:    row.LastModified,
	}, nil
}

// toAccountRows merges balances and offline credits into one row per actor
func toAccountRows(balances, offline map[domain.ActorID]int64) []schema.Account {
	rows := make(map[domain.ActorID]*schema.Account, len(balances))
	for actor, balance := range balances {
		rows[actor] = &schema.Account{ActorID: actor.String(), Balance: balance}
	}
	for actor, credit := range offline {
		row, ok := rows[actor]
		if !ok {
			row = &schema.Account{ActorID: actor.String()}
			rows[actor] = row
		}
		row.OfflineCredit = credit
	}

	result := make([]schema.Account, 0, len(rows))
	for _, row := range rows {
		result = append(result, *row)
	}
	return result
}

func toPendingRow(p domain.PendingGoods) (schema.PendingGoods, error) {
	goods, err := marshalJSON(p.Goods)
	if err != nil {
		return schema.PendingGoods{}, fmt.Errorf("failed to marshal pending goods of %s: %w", p.ActorID, err)
	}
	return schema.PendingGoods{ActorID: p.ActorID.String(), Goods: goods}, nil
}

func fromPendingRow(row schema.PendingGoods) (domain.PendingGoods, error) {
	actor, err := uuid.Parse(row.ActorID)
	if err != nil {
		return domain.PendingGoods{}, fmt.Errorf("invalid actor id %q: %w", row.ActorID, err)
	}
	var goods []domain.Goods
	if err := json.Unmarshal(row.Goods, &goods); err != nil {
		return domain.PendingGoods{}, fmt.Errorf("failed to unmarshal pending goods of %s: %w", row.ActorID, err)
	}
	return domain.PendingGoods{ActorID: actor, Goods: goods}, nil
}

func toTransactionRow(r domain.TransactionRecord) (schema.Transaction, error) {
	goods, err := marshalJSON(r.Goods)
	if err != nil {
		return schema.Transaction{}, fmt.Errorf("failed to marshal goods of transaction %s: %w", r.ID, err)
	}
	return schema.Transaction{
		ID:         r.ID,
		SellerID:   r.SellerID.String(),
		SellerName: r.SellerName,
		BuyerID:    r.BuyerID.String(),
		BuyerName:  r.BuyerName,
		ItemType:   r.Goods.ItemType,
		Quantity:   r.Goods.Quantity,
		Goods:      goods,
		Price:      r.Price,
		Tax:        r.Tax,
		Kind:       schema.TransactionKind(r.Kind),
		Timestamp:  r.Timestamp.UTC(),
	}, nil
}

func fromTransactionRow(row schema.Transaction) (domain.TransactionRecord, error) {
	seller, err := uuid.Parse(row.SellerID)
	if err != nil {
		return domain.TransactionRecord{}, fmt.Errorf("invalid seller id of transaction %s: %w", row.ID, err)
	}
	buyer, err := uuid.Parse(row.BuyerID)
	if err != nil {
		return domain.TransactionRecord{}, fmt.Errorf("invalid buyer id of transaction %s: %w", row.ID, err)
	}
	var goods domain.Goods
	if err := json.Unmarshal(row.Goods, &goods); err != nil {
		return domain.TransactionRecord{}, fmt.Errorf("failed to unmarshal goods of transaction %s: %w", row.ID, err)
	}
	return domain.TransactionRecord{
		ID:         row.ID,
		SellerID:   seller,
		SellerName: row.SellerName,
		BuyerID:    buyer,
		BuyerName:  row.BuyerName,
		Goods:      goods,
		Price:      row.Price,
		Tax:        row.Tax,
		Timestamp:  row.Timestamp,
		Kind:       domain.TransactionKind(row.Kind),
	}, nil
}
