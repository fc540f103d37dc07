package seen

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
	"github.com/m04kA/SMC-FacilityBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FacilityBookingService/pkg/psqlbuilder"
)

// PostgresRepository хранит счетчики в таблице seen_counts
type PostgresRepository struct {
	db dbmetrics.DBExecutor
}

func NewPostgresRepository(db dbmetrics.DBExecutor) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Get возвращает нули для пользователя без записи
func (r *PostgresRepository) Get(ctx context.Context, username string) (domain.SeenCounts, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("approved", "rejected").
		From("seen_counts").
		Where(squirrel.Eq{"username": username}).
		ToSql()
	if err != nil {
		return domain.SeenCounts{}, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var counts domain.SeenCounts
	err = executor.QueryRowContext(ctx, query, args...).Scan(&counts.Approved, &counts.Rejected)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.SeenCounts{}, nil
	}
	if err != nil {
		return domain.SeenCounts{}, fmt.Errorf("%w: Get - scan counts: %v", ErrScanRow, err)
	}

	return counts, nil
}

// Set создает или обновляет запись пользователя
func (r *PostgresRepository) Set(ctx context.Context, username string, counts domain.SeenCounts) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("seen_counts").
		Columns("username", "approved", "rejected", "updated_at").
		Values(username, counts.Approved, counts.Rejected, squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (username) DO UPDATE SET approved = EXCLUDED.approved, rejected = EXCLUDED.rejected, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Set - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Set - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
