// Package store persists ledger records in a local sqlite database, one
// table per collection (assets, transactions, goals). It is the ingestion
// boundary: every record is validated before it is written, so the
// computation engine only ever sees well-formed data.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nestegg-app/nestegg"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// Store wraps the sqlite database holding all collections.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the database at the given path and migrates the
// schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&assetRecord{}, &transactionRecord{}, &goalRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

type assetRecord struct {
	ID               string `gorm:"primaryKey"`
	Name             string
	Ticker           string
	Category         string
	CurrentPrice     decimal.Decimal `gorm:"type:decimal(20,8)"`
	TargetAllocation float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (assetRecord) TableName() string { return "assets" }

type transactionRecord struct {
	ID        string `gorm:"primaryKey"`
	AssetID   string `gorm:"index"`
	Kind      string
	Date      string // ISO-8601 day, sortable as text
	Qty       decimal.Decimal `gorm:"type:decimal(20,8)"`
	Price     decimal.Decimal `gorm:"type:decimal(20,8)"`
	Fees      decimal.Decimal `gorm:"type:decimal(20,8)"`
	CreatedAt time.Time
}

func (transactionRecord) TableName() string { return "transactions" }

type goalRecord struct {
	ID           string `gorm:"primaryKey"`
	Name         string
	TargetAmount decimal.Decimal `gorm:"type:decimal(20,8)"`
	LinkedAssets string // JSON array of asset ids
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (goalRecord) TableName() string { return "goals" }

func toAssetRecord(a nestegg.Asset) assetRecord {
	return assetRecord{
		ID:               a.ID,
		Name:             a.Name,
		Ticker:           a.Ticker,
		Category:         string(a.Category),
		CurrentPrice:     a.CurrentPrice,
		TargetAllocation: float64(a.TargetAllocation),
	}
}

func (r assetRecord) asset() nestegg.Asset {
	return nestegg.Asset{
		ID:               r.ID,
		Name:             r.Name,
		Ticker:           r.Ticker,
		Category:         nestegg.Category(r.Category),
		CurrentPrice:     r.CurrentPrice,
		TargetAllocation: nestegg.Percent(r.TargetAllocation),
	}
}

func toTransactionRecord(t nestegg.Transaction) transactionRecord {
	return transactionRecord{
		ID:      t.ID,
		AssetID: t.AssetID,
		Kind:    string(t.Kind),
		Date:    t.Date.String(),
		Qty:     t.Qty,
		Price:   t.Price,
		Fees:    t.Fees,
	}
}

func (r transactionRecord) transaction() (nestegg.Transaction, error) {
	day, err := nestegg.ParseDate(r.Date)
	if err != nil {
		return nestegg.Transaction{}, fmt.Errorf("transaction %s has a corrupt date: %w", r.ID, err)
	}
	return nestegg.Transaction{
		ID:      r.ID,
		AssetID: r.AssetID,
		Kind:    nestegg.TxKind(r.Kind),
		Date:    day,
		Qty:     r.Qty,
		Price:   r.Price,
		Fees:    r.Fees,
	}, nil
}

func toGoalRecord(g nestegg.Goal) (goalRecord, error) {
	linked, err := json.Marshal(g.LinkedAssets)
	if err != nil {
		return goalRecord{}, fmt.Errorf("could not encode linked assets: %w", err)
	}
	return goalRecord{
		ID:           g.ID,
		Name:         g.Name,
		TargetAmount: g.TargetAmount,
		LinkedAssets: string(linked),
	}, nil
}

func (r goalRecord) goal() (nestegg.Goal, error) {
	g := nestegg.Goal{
		ID:           r.ID,
		Name:         r.Name,
		TargetAmount: r.TargetAmount,
	}
	if r.LinkedAssets != "" {
		if err := json.Unmarshal([]byte(r.LinkedAssets), &g.LinkedAssets); err != nil {
			return nestegg.Goal{}, fmt.Errorf("goal %s has corrupt linked assets: %w", r.ID, err)
		}
	}
	return g, nil
}

// SaveAsset creates or updates an asset, assigning an id to new records.
func (s *Store) SaveAsset(a *nestegg.Asset) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if err := a.Validate(); err != nil {
		return err
	}
	record := toAssetRecord(*a)
	if err := s.db.Save(&record).Error; err != nil {
		return fmt.Errorf("failed to save asset: %w", err)
	}
	return nil
}

// Asset returns a single asset by id.
func (s *Store) Asset(id string) (nestegg.Asset, error) {
	var record assetRecord
	err := s.db.First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nestegg.Asset{}, fmt.Errorf("asset %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nestegg.Asset{}, fmt.Errorf("failed to load asset: %w", err)
	}
	return record.asset(), nil
}

// Assets returns all assets in insertion order.
func (s *Store) Assets() ([]nestegg.Asset, error) {
	var records []assetRecord
	if err := s.db.Order("created_at").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load assets: %w", err)
	}
	assets := make([]nestegg.Asset, 0, len(records))
	for _, r := range records {
		assets = append(assets, r.asset())
	}
	return assets, nil
}

// UpdatePrice sets the current market price of an asset.
func (s *Store) UpdatePrice(id string, price decimal.Decimal) error {
	if price.IsNegative() {
		return &nestegg.ValidationError{Record: "asset", Field: "currentPrice", Reason: "must not be negative"}
	}
	res := s.db.Model(&assetRecord{}).Where("id = ?", id).Update("current_price", price)
	if res.Error != nil {
		return fmt.Errorf("failed to update price: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("asset %s: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteAsset removes an asset and all of its transactions. The cascade
// keeps the ledger free of orphans, even though the engine would tolerate
// them.
func (s *Store) DeleteAsset(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&assetRecord{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete asset: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("asset %s: %w", id, ErrNotFound)
		}
		if err := tx.Delete(&transactionRecord{}, "asset_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete asset transactions: %w", err)
		}
		return nil
	})
}

// SaveTransaction creates a transaction, assigning an id to new records.
// Transactions are immutable once created: there is no update.
func (s *Store) SaveTransaction(t *nestegg.Transaction) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if err := t.Validate(); err != nil {
		return err
	}
	record := toTransactionRecord(*t)
	if err := s.db.Create(&record).Error; err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

// Transactions returns all transactions ordered by date.
func (s *Store) Transactions() ([]nestegg.Transaction, error) {
	var records []transactionRecord
	if err := s.db.Order("date, created_at").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	txs := make([]nestegg.Transaction, 0, len(records))
	for _, r := range records {
		t, err := r.transaction()
		if err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	return txs, nil
}

// DeleteTransaction removes a single transaction.
func (s *Store) DeleteTransaction(id string) error {
	res := s.db.Delete(&transactionRecord{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("transaction %s: %w", id, ErrNotFound)
	}
	return nil
}

// SaveGoal creates or updates a goal, assigning an id to new records.
func (s *Store) SaveGoal(g *nestegg.Goal) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if err := g.Validate(); err != nil {
		return err
	}
	record, err := toGoalRecord(*g)
	if err != nil {
		return err
	}
	if err := s.db.Save(&record).Error; err != nil {
		return fmt.Errorf("failed to save goal: %w", err)
	}
	return nil
}

// Goals returns all goals in insertion order.
func (s *Store) Goals() ([]nestegg.Goal, error) {
	var records []goalRecord
	if err := s.db.Order("created_at").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}
	goals := make([]nestegg.Goal, 0, len(records))
	for _, r := range records {
		g, err := r.goal()
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, nil
}

// DeleteGoal removes a single goal.
func (s *Store) DeleteGoal(id string) error {
	res := s.db.Delete(&goalRecord{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete goal: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("goal %s: %w", id, ErrNotFound)
	}
	return nil
}

// Clear empties one named collection: "assets", "transactions" or "goals".
func (s *Store) Clear(collection string) error {
	var model any
	switch collection {
	case "assets":
		model = &assetRecord{}
	case "transactions":
		model = &transactionRecord{}
	case "goals":
		model = &goalRecord{}
	default:
		return fmt.Errorf("unknown collection: %q", collection)
	}
	if err := s.db.Where("1 = 1").Delete(model).Error; err != nil {
		return fmt.Errorf("failed to clear %s: %w", collection, err)
	}
	return nil
}

// Restore replaces every collection with the contents of a backup, all in
// one database transaction: either the whole document lands, or nothing
// changes.
func (s *Store) Restore(b *nestegg.Backup) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{&assetRecord{}, &transactionRecord{}, &goalRecord{}} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return fmt.Errorf("failed to clear collection: %w", err)
			}
		}
		for _, a := range b.Assets {
			record := toAssetRecord(a)
			if record.ID == "" {
				record.ID = uuid.NewString()
			}
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("failed to restore asset: %w", err)
			}
		}
		for _, t := range b.Transactions {
			record := toTransactionRecord(t)
			if record.ID == "" {
				record.ID = uuid.NewString()
			}
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("failed to restore transaction: %w", err)
			}
		}
		for _, g := range b.Goals {
			record, err := toGoalRecord(g)
			if err != nil {
				return err
			}
			if record.ID == "" {
				record.ID = uuid.NewString()
			}
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("failed to restore goal: %w", err)
			}
		}
		return nil
	})
}

// Ledger loads every collection into a fresh in-memory ledger for the
// computation engine.
func (s *Store) Ledger() (*nestegg.Ledger, error) {
	assets, err := s.Assets()
	if err != nil {
		return nil, err
	}
	txs, err := s.Transactions()
	if err != nil {
		return nil, err
	}
	goals, err := s.Goals()
	if err != nil {
		return nil, err
	}

	ledger := nestegg.NewLedger()
	ledger.AddAssets(assets...)
	ledger.Append(txs...)
	ledger.AddGoals(goals...)
	return ledger, nil
}
