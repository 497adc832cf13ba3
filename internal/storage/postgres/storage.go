package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/rmehra/stitchbook/internal/domain/errors"
	"github.com/rmehra/stitchbook/internal/domain/model"
	"github.com/rmehra/stitchbook/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage depends on. Tests
// substitute a pgxmock pool through newPgxPool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type receiptRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Receipts returns the receipt repository backed by this storage.
func (s *Storage) Receipts() repository.ReceiptRepository {
	return &receiptRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS receipts (
            id BIGSERIAL PRIMARY KEY,
            receipt_no TEXT UNIQUE NOT NULL,
            order_date TEXT NOT NULL,
            customer_name TEXT NOT NULL,
            phone TEXT NOT NULL,
            delivery_date TEXT NOT NULL,
            total_amount DOUBLE PRECISION NOT NULL,
            advance_paid DOUBLE PRECISION NOT NULL,
            balance_amount DOUBLE PRECISION NOT NULL,
            measurement_type TEXT NOT NULL,
            measurements TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS receipt_items (
            id BIGSERIAL PRIMARY KEY,
            receipt_id BIGINT NOT NULL REFERENCES receipts(id) ON DELETE CASCADE,
            line_no INT NOT NULL,
            item_type TEXT NOT NULL,
            description TEXT NOT NULL,
            amount DOUBLE PRECISION NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_receipts_customer_name ON receipts(customer_name)`,
		`CREATE INDEX IF NOT EXISTS idx_receipts_phone ON receipts(phone)`,
		`CREATE INDEX IF NOT EXISTS idx_receipts_delivery_date ON receipts(delivery_date)`,
		`CREATE INDEX IF NOT EXISTS idx_items_receipt ON receipt_items(receipt_id, line_no)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Receipt numbers are zero-padded text, so the maximum is taken over the
// numeric cast rather than the lexicographic order.
const nextNumberQuery = `SELECT COALESCE(MAX(CAST(receipt_no AS BIGINT)), 0) + 1 FROM receipts`

func nextNumberValue(ctx context.Context, q rowQuerier) (int64, error) {
	var next int64
	if err := q.QueryRow(ctx, nextNumberQuery).Scan(&next); err != nil {
		return 0, err
	}
	return next, nil
}

// --- ReceiptRepository implementation ---

func (r *receiptRepository) NextNumber(ctx context.Context) (string, error) {
	next, err := nextNumberValue(ctx, r.storage.pool)
	if err != nil {
		return "", err
	}
	return model.FormatReceiptNumber(next), nil
}

// Create persists the receipt header and its items in one transaction,
// assigning the receipt number inside that transaction. Two writers racing
// for the same number trip the unique index; the loser gets
// ErrNumberConflict and nothing is persisted.
func (r *receiptRepository) Create(ctx context.Context, receipt *model.Receipt) (*model.Receipt, error) {
	measurements, err := encodeMeasurements(receipt.Measurements)
	if err != nil {
		return nil, fmt.Errorf("encode measurements: %w", err)
	}

	err = r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		next, err := nextNumberValue(ctx, tx)
		if err != nil {
			return err
		}
		receipt.Number = model.FormatReceiptNumber(next)

		const insertHeader = `INSERT INTO receipts (
                receipt_no, order_date, customer_name, phone, delivery_date,
                total_amount, advance_paid, balance_amount, measurement_type, measurements
            ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
            RETURNING id, created_at`
		err = tx.QueryRow(ctx, insertHeader,
			receipt.Number,
			receipt.OrderDate,
			receipt.CustomerName,
			receipt.Phone,
			receipt.DeliveryDate,
			receipt.TotalAmount,
			receipt.AdvancePaid,
			receipt.BalanceAmount,
			receipt.MeasurementType,
			measurements,
		).Scan(&receipt.ID, &receipt.CreatedAt)
		if err != nil {
			return err
		}

		const insertItem = `INSERT INTO receipt_items (receipt_id, line_no, item_type, description, amount)
                            VALUES ($1, $2, $3, $4, $5)`
		for _, item := range receipt.Items {
			if _, err := tx.Exec(ctx, insertItem, receipt.ID, item.LineNo, item.Type, item.Description, item.Amount); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrNumberConflict
		}
		return nil, err
	}

	return receipt, nil
}

func (r *receiptRepository) GetByID(ctx context.Context, id int64) (*model.Receipt, error) {
	const headerQuery = `SELECT id, receipt_no, order_date, customer_name, phone, delivery_date,
                         total_amount, advance_paid, balance_amount, measurement_type, measurements, created_at
                         FROM receipts WHERE id=$1`
	var (
		receipt      model.Receipt
		measurements string
	)
	err := r.storage.pool.QueryRow(ctx, headerQuery, id).Scan(
		&receipt.ID,
		&receipt.Number,
		&receipt.OrderDate,
		&receipt.CustomerName,
		&receipt.Phone,
		&receipt.DeliveryDate,
		&receipt.TotalAmount,
		&receipt.AdvancePaid,
		&receipt.BalanceAmount,
		&receipt.MeasurementType,
		&measurements,
		&receipt.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	if receipt.Measurements, err = decodeMeasurements(measurements); err != nil {
		return nil, fmt.Errorf("decode measurements: %w", err)
	}

	const itemsQuery = `SELECT line_no, item_type, description, amount
                        FROM receipt_items WHERE receipt_id=$1 ORDER BY line_no ASC`
	rows, err := r.storage.pool.Query(ctx, itemsQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item model.ReceiptItem
		if err := rows.Scan(&item.LineNo, &item.Type, &item.Description, &item.Amount); err != nil {
			return nil, err
		}
		receipt.Items = append(receipt.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &receipt, nil
}

func (r *receiptRepository) List(ctx context.Context, filter repository.ReceiptFilter) ([]model.ReceiptSummary, error) {
	query := `SELECT id, receipt_no, order_date, customer_name, phone, delivery_date,
              total_amount, advance_paid, balance_amount FROM receipts`

	var (
		where []string
		args  []any
	)

	if filter.Query != "" {
		namePattern := "%" + strings.ToLower(filter.Query) + "%"
		pattern := "%" + filter.Query + "%"
		where = append(where, fmt.Sprintf(
			`(LOWER(customer_name) LIKE $%d OR phone LIKE $%d OR receipt_no LIKE $%d)`,
			len(args)+1, len(args)+2, len(args)+3,
		))
		args = append(args, namePattern, pattern, pattern)
	}

	if filter.Date != "" {
		where = append(where, fmt.Sprintf(`(delivery_date = $%d OR order_date = $%d)`, len(args)+1, len(args)+2))
		args = append(args, filter.Date, filter.Date)
	}

	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	query += fmt.Sprintf(" ORDER BY id DESC LIMIT $%d", len(args)+1)
	args = append(args, filter.Limit)

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ReceiptSummary
	for rows.Next() {
		var s model.ReceiptSummary
		if err := rows.Scan(&s.ID, &s.Number, &s.OrderDate, &s.CustomerName, &s.Phone,
			&s.DeliveryDate, &s.TotalAmount, &s.AdvancePaid, &s.BalanceAmount); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func encodeMeasurements(measurements map[string]string) (string, error) {
	if measurements == nil {
		measurements = map[string]string{}
	}
	data, err := json.Marshal(measurements)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeMeasurements(raw string) (map[string]string, error) {
	measurements := map[string]string{}
	if raw == "" {
		return measurements, nil
	}
	if err := json.Unmarshal([]byte(raw), &measurements); err != nil {
		return nil, err
	}
	return measurements, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
