package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
	"github.com/m04kA/SMC-FacilityBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FacilityBookingService/pkg/psqlbuilder"
)

const table = "reservations"

var columns = []string{
	"id",
	"room",
	"reservation_date",
	"reservation_time",
	"requester",
	"status",
	"requester_type",
	"organization",
	"purpose",
	"equipment",
	"rejection_reason",
	"created_at",
	"updated_at",
}

// Repository репозиторий бронирований в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// LoadAll читает все записи
func (r *Repository) LoadAll(ctx context.Context) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: LoadAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: LoadAll - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// CreateBatch вставляет записи одним запросом
// Если в контексте передана активная транзакция, использует её
func (r *Repository) CreateBatch(ctx context.Context, reservations []*domain.Reservation) error {
	if len(reservations) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildInsert(reservations)
	if err != nil {
		return fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// UpdateStatus обновляет статус и причину отказа
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus, reason *string, updatedAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", string(status)).
		Set("rejection_reason", reason).
		Set("updated_at", updatedAt).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "UpdateStatus")
}

// Delete удаляет запись
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "Delete")
}

// buildInsert строит многострочный INSERT
func buildInsert(reservations []*domain.Reservation) (string, []interface{}, error) {
	builder := psqlbuilder.Insert(table).Columns(columns...)
	for _, res := range reservations {
		builder = builder.Values(
			res.ID,
			res.Room,
			res.Date,
			res.Time,
			res.Requester,
			string(res.Status),
			nullString(res.RequesterType),
			nullString(res.Organization),
			res.Purpose,
			pq.Array(equipmentOrEmpty(res.Equipment)),
			res.RejectionReason,
			res.CreatedAt,
			res.UpdatedAt,
		)
	}
	return builder.ToSql()
}

func checkAffected(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}
	return nil
}

// rowScanner курсор результата запроса, реализуется *sql.Rows
type rowScanner interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// scanReservations читает строки; DATE приводится к полуночи UTC
func scanReservations(rows rowScanner) ([]*domain.Reservation, error) {
	var result []*domain.Reservation

	for rows.Next() {
		var (
			res                         domain.Reservation
			status                      string
			requesterType, organization sql.NullString
			rejectionReason             sql.NullString
			equipment                   []string
			createdAt, updatedAt        sql.NullTime
		)

		err := rows.Scan(
			&res.ID,
			&res.Room,
			&res.Date,
			&res.Time,
			&res.Requester,
			&status,
			&requesterType,
			&organization,
			&res.Purpose,
			pq.Array(&equipment),
			&rejectionReason,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}

		y, m, d := res.Date.Date()
		res.Date = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		res.Status = domain.ReservationStatus(status)
		res.RequesterType = requesterType.String
		res.Organization = organization.String
		res.Equipment = equipment
		if rejectionReason.Valid {
			reason := rejectionReason.String
			res.RejectionReason = &reason
		}
		res.CreatedAt = createdAt.Time
		res.UpdatedAt = updatedAt.Time

		result = append(result, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func equipmentOrEmpty(equipment []string) []string {
	if equipment == nil {
		return []string{}
	}
	return equipment
}
