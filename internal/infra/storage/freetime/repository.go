package freetime

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

const table = "member_free_time"

// Repository репозиторий свободного времени участников
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория свободного времени
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByMember получает недельное свободное время одного участника
func (r *Repository) GetByMember(ctx context.Context, memberID int64) (*domain.MemberFreeTime, error) {
	result, err := r.query(ctx, "GetByMember", squirrel.Eq{"member_id": memberID})
	if err != nil {
		return nil, err
	}

	ft, ok := result[memberID]
	if !ok {
		return nil, ErrFreeTimeNotFound
	}
	return ft, nil
}

// GetByMembers получает свободное время нескольких участников.
// Участники без сохранённых интервалов в результат не попадают.
func (r *Repository) GetByMembers(ctx context.Context, memberIDs []int64) (map[int64]*domain.MemberFreeTime, error) {
	if len(memberIDs) == 0 {
		return map[int64]*domain.MemberFreeTime{}, nil
	}
	return r.query(ctx, "GetByMembers", squirrel.Expr("member_id = ANY(?)", pq.Array(memberIDs)))
}

func (r *Repository) query(ctx context.Context, op string, where squirrel.Sqlizer) (map[int64]*domain.MemberFreeTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"member_id",
		"day_of_week",
		"start_minute",
		"end_minute",
		"updated_at",
	).
		From(table).
		Where(where).
		OrderBy("member_id", "day_of_week", "start_minute", "end_minute").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	result := make(map[int64]*domain.MemberFreeTime)
	for rows.Next() {
		var (
			memberID  int64
			day       string
			interval  domain.Interval
			updatedAt sql.NullTime
		)
		if err := rows.Scan(&memberID, &day, &interval.Start, &interval.End, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: %s - scan free time: %v", ErrScanRow, op, err)
		}

		ft, ok := result[memberID]
		if !ok {
			ft = &domain.MemberFreeTime{
				MemberID: memberID,
				Days:     make(map[domain.DayOfWeek][]domain.Interval),
			}
			result[memberID] = ft
		}

		dow := domain.DayOfWeek(day)
		ft.Days[dow] = append(ft.Days[dow], interval)
		if updatedAt.Valid && updatedAt.Time.After(ft.UpdatedAt) {
			ft.UpdatedAt = updatedAt.Time
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - iterate rows: %v", ErrScanRow, op, err)
	}

	return result, nil
}

// CreateBatch сохраняет все интервалы участника одним запросом.
// Должен вызываться в транзакции вместе с DeleteByMember.
func (r *Repository) CreateBatch(ctx context.Context, ft *domain.MemberFreeTime) error {
	if ft.IsEmpty() {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Insert(table).
		Columns("member_id", "day_of_week", "start_minute", "end_minute")

	for _, day := range domain.AllDays() {
		for _, in := range ft.Days[day] {
			builder = builder.Values(ft.MemberID, day.String(), in.Start, in.End)
		}
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// DeleteByMember удаляет всё свободное время участника и возвращает число удалённых интервалов
func (r *Repository) DeleteByMember(ctx context.Context, memberID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"member_id": memberID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByMember - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByMember - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByMember - rows affected: %v", ErrExecQuery, err)
	}

	return affected, nil
}
