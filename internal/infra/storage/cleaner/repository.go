package cleaner

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/CleanClick-BookingService/internal/domain"
	"github.com/m04kA/CleanClick-BookingService/pkg/dbmetrics"
	"github.com/m04kA/CleanClick-BookingService/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"name",
	"email",
	"phone",
	"messenger_username",
	"availability",
	"days_off",
	"pricing",
	"frequency_discounts",
	"created_at",
	"updated_at",
}

// Repository хранилище клинеров в Postgres; расписание, цены и скидки лежат в JSONB колонках
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID возвращает нормализованного клинера
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Cleaner, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("cleaners").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	cleaner, err := scanCleaner(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCleanerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - %v", ErrScanRow, err)
	}

	return cleaner, nil
}

// List возвращает всех клинеров по времени создания
func (r *Repository) List(ctx context.Context) ([]*domain.Cleaner, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("cleaners").
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	cleaners := make([]*domain.Cleaner, 0)
	for rows.Next() {
		cleaner, err := scanCleaner(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - %v", ErrScanRow, err)
		}
		cleaners = append(cleaners, cleaner)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return cleaners, nil
}

// Create вставляет клинера; если строка с таким id уже есть, возвращается она
func (r *Repository) Create(ctx context.Context, cleaner *domain.Cleaner) (*domain.Cleaner, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	values, err := encodeColumns(cleaner)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert("cleaners").
		Columns(columns...).
		Values(append([]interface{}{cleaner.ID}, append(values, cleaner.CreatedAt, cleaner.UpdatedAt)...)...).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return r.GetByID(ctx, cleaner.ID)
}

// Update перезаписывает все изменяемые колонки (побеждает последняя запись)
func (r *Repository) Update(ctx context.Context, cleaner *domain.Cleaner) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	values, err := encodeColumns(cleaner)
	if err != nil {
		return fmt.Errorf("%w: Update - %v", ErrEncode, err)
	}

	builder := psqlbuilder.Update("cleaners")
	for i, column := range columns[1:9] {
		builder = builder.Set(column, values[i])
	}

	query, args, err := builder.
		Set("updated_at", cleaner.UpdatedAt).
		Where(squirrel.Eq{"id": cleaner.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrCleanerNotFound
	}

	return nil
}

// encodeColumns значения для columns[1:9] по порядку
func encodeColumns(c *domain.Cleaner) ([]interface{}, error) {
	availability, err := json.Marshal(c.Availability)
	if err != nil {
		return nil, err
	}
	daysOff, err := json.Marshal(c.BlockedDates)
	if err != nil {
		return nil, err
	}
	pricing, err := json.Marshal(c.Pricing)
	if err != nil {
		return nil, err
	}
	discounts, err := json.Marshal(c.FrequencyDiscounts)
	if err != nil {
		return nil, err
	}

	return []interface{}{
		c.Name,
		c.Email,
		nullString(c.Phone),
		nullString(c.MessengerUsername),
		string(availability),
		string(daysOff),
		string(pricing),
		string(discounts),
	}, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanCleaner декодирует строку; для NULL JSONB колонок берутся значения по умолчанию
func scanCleaner(row rowScanner) (*domain.Cleaner, error) {
	var (
		c                                             domain.Cleaner
		phone, messenger                              sql.NullString
		availability, daysOff, pricing, discountsJSON []byte
	)

	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&phone,
		&messenger,
		&availability,
		&daysOff,
		&pricing,
		&discountsJSON,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Phone = phone.String
	c.MessengerUsername = messenger.String

	if err := decodeJSON(availability, &c.Availability); err != nil {
		return nil, fmt.Errorf("availability: %w", err)
	}
	if err := decodeJSON(daysOff, &c.BlockedDates); err != nil {
		return nil, fmt.Errorf("days_off: %w", err)
	}
	if err := decodeJSON(pricing, &c.Pricing); err != nil {
		return nil, fmt.Errorf("pricing: %w", err)
	}

	if err := decodeJSON(discountsJSON, &c.FrequencyDiscounts); err != nil {
		return nil, fmt.Errorf("frequency_discounts: %w", err)
	}

	c.Normalize()
	return &c, nil
}

func decodeJSON(data []byte, v interface{}) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	return json.Unmarshal(data, v)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
