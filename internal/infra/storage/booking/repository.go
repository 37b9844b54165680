package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/schwarztim/CSC425/internal/domain"
	"github.com/schwarztim/CSC425/pkg/dbmetrics"
	"github.com/schwarztim/CSC425/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL unique_violation
const pgUniqueViolation = "23505"

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Insert создает новое бронирование
// Уникальность слота гарантирует индекс bookings_time_slot_key:
// нарушение уникальности транслируется в ErrSlotTaken
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Insert(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"time_slot",
			"name",
			"phone_number",
		).
		Values(
			b.TimeSlot,
			b.Name,
			b.PhoneNumber,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Insert - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time

	return b, nil
}

// ExistsAtSlot проверяет, занят ли указанный слот
// Внутри транзакции блокирует найденную строку (FOR UPDATE), чтобы
// конкурентная проверка того же слота дождалась исхода текущей
func (r *Repository) ExistsAtSlot(ctx context.Context, timeSlot time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id").
		From("bookings").
		Where(squirrel.Eq{"time_slot": timeSlot})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsAtSlot - build select query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsAtSlot - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// ListTimeSlots возвращает значения time_slot всех бронирований
// Если date задан, результат ограничивается указанной датой
// Результат упорядочен по возрастанию
func (r *Repository) ListTimeSlots(ctx context.Context, date *time.Time) ([]time.Time, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("time_slot").
		From("bookings").
		OrderBy("time_slot ASC")

	if date != nil {
		dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		dayEnd := dayStart.AddDate(0, 0, 1)
		selectBuilder = selectBuilder.
			Where(squirrel.GtOrEq{"time_slot": dayStart}).
			Where(squirrel.Lt{"time_slot": dayEnd})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListTimeSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListTimeSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]time.Time, 0)
	for rows.Next() {
		var slot time.Time
		if err := rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("%w: ListTimeSlots - scan time_slot: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListTimeSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
