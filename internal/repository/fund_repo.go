package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"github.com/epeers/fundsdash/internal/models"
)

// FundRepository reads the primary fund table from a Postgres table.
// The table is only ever read; its columns are resolved like CSV headers.
type FundRepository struct {
	pool  *pgxpool.Pool
	table string
}

// NewFundRepository creates a new FundRepository
func NewFundRepository(pool *pgxpool.Pool, table string) *FundRepository {
	return &FundRepository{pool: pool, table: table}
}

// Connect opens a pool against pgURL and verifies it with a ping
func Connect(ctx context.Context, pgURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, pgURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}

// LoadFunds selects every row of the configured table
func (r *FundRepository) LoadFunds(ctx context.Context) (*LoadedFunds, error) {
	query := fmt.Sprintf("SELECT * FROM %s", pgx.Identifier{r.table}.Sanitize())
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", r.table, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	headers := make([]string, len(fields))
	for i, f := range fields {
		headers[i] = f.Name
	}

	var records [][]string
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(records)+1, err)
		}
		rec := make([]string, len(values))
		for i, v := range values {
			rec[i] = cellText(v)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", r.table, err)
	}
	if len(headers) == 0 {
		return nil, ErrNoTable
	}

	log.Infof("Loaded %d fund rows from postgres table %s", len(records), r.table)
	return &LoadedFunds{
		Table:  models.NewTable(headers, records),
		Source: "postgres:" + r.table,
	}, nil
}

// cellText renders a decoded column value the way it would appear in a CSV cell.
func cellText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int64:
		return strconv.FormatInt(x, 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.Format("2006-01-02")
	case pgtype.Numeric:
		f, err := x.Float64Value()
		if err != nil || !f.Valid {
			return ""
		}
		return strconv.FormatFloat(f.Float64, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
