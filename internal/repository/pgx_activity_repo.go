package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"

	"github.com/octofit-labs/octofit-backend/internal/db"
)

type Activity struct {
	ID             string    `db:"id"`
	UserID         string    `db:"user_id"`
	ActivityType   string    `db:"activity_type"`
	Duration       int       `db:"duration"`
	Distance       *float64  `db:"distance"`
	CaloriesBurned int       `db:"calories_burned"`
	Date           time.Time `db:"date"`
	Notes          string    `db:"notes"`
}

type ActivityRepository interface {
	Create(ctx context.Context, activity *Activity) error
	Get(ctx context.Context, activityID string) (*Activity, error)
	List(ctx context.Context) ([]*Activity, error)
	ListByUser(ctx context.Context, userID string) ([]*Activity, error)
	Update(ctx context.Context, activity *Activity) (*Activity, error)
	Delete(ctx context.Context, activityID string) error
	DeleteAll(ctx context.Context) (int64, error)
}

type pgxActivityRepository struct {
	pool *pgxpool.Pool
}

func NewPgxActivityRepository(pool *pgxpool.Pool) ActivityRepository {
	return &pgxActivityRepository{pool: pool}
}

func (p *pgxActivityRepository) Create(ctx context.Context, activity *Activity) error {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Insert(
		im.Into("activities", "id", "user_id", "activity_type", "duration", "distance", "calories_burned", "date", "notes"),
		im.Values(
			psql.Arg(activity.ID),
			psql.Arg(activity.UserID),
			psql.Arg(activity.ActivityType),
			psql.Arg(activity.Duration),
			psql.Arg(activity.Distance),
			psql.Arg(activity.CaloriesBurned),
			psql.Arg(activity.Date),
			psql.Arg(activity.Notes),
		),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return err
	}

	_, err = e.Exec(ctx, sql, args...)
	return err
}

func (p *pgxActivityRepository) Get(ctx context.Context, activityID string) (*Activity, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns("id", "user_id", "activity_type", "duration", "distance", "calories_burned", "date", "notes"),
		sm.From("activities"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(activityID))),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return nil, err
	}

	a := &Activity{}
	if err = scanActivity(e.QueryRow(ctx, sql, args...), a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (p *pgxActivityRepository) List(ctx context.Context) ([]*Activity, error) {
	return p.list(ctx, nil)
}

func (p *pgxActivityRepository) ListByUser(ctx context.Context, userID string) ([]*Activity, error) {
	return p.list(ctx, &userID)
}

func (p *pgxActivityRepository) list(ctx context.Context, userID *string) ([]*Activity, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns("id", "user_id", "activity_type", "duration", "distance", "calories_burned", "date", "notes"),
		sm.From("activities"),
		sm.OrderBy("date"),
	)
	if userID != nil {
		q.Apply(sm.Where(psql.Quote("user_id").EQ(psql.Arg(*userID))))
	}

	sql, args, err := q.Build(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := e.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Activity, error) {
		a := &Activity{}
		if err = scanActivity(row, a); err != nil {
			return nil, err
		}
		return a, nil
	})
}

func (p *pgxActivityRepository) Update(ctx context.Context, activity *Activity) (*Activity, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Update(
		um.Table("activities"),
		um.SetCol("user_id").ToArg(activity.UserID),
		um.SetCol("activity_type").ToArg(activity.ActivityType),
		um.SetCol("duration").ToArg(activity.Duration),
		um.SetCol("distance").ToArg(activity.Distance),
		um.SetCol("calories_burned").ToArg(activity.CaloriesBurned),
		um.SetCol("date").ToArg(activity.Date),
		um.SetCol("notes").ToArg(activity.Notes),
		um.Where(psql.Quote("id").EQ(psql.Arg(activity.ID))),
		um.Returning("id", "user_id", "activity_type", "duration", "distance", "calories_burned", "date", "notes"),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return nil, err
	}

	a := &Activity{}
	if err = scanActivity(e.QueryRow(ctx, sql, args...), a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (p *pgxActivityRepository) Delete(ctx context.Context, activityID string) error {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Delete(
		dm.From("activities"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(activityID))),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return err
	}

	tag, err := e.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *pgxActivityRepository) DeleteAll(ctx context.Context) (int64, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Delete(dm.From("activities"))

	sql, args, err := q.Build(ctx)
	if err != nil {
		return 0, err
	}

	tag, err := e.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanActivity(row pgx.Row, a *Activity) error {
	return row.Scan(
		&a.ID,
		&a.UserID,
		&a.ActivityType,
		&a.Duration,
		&a.Distance,
		&a.CaloriesBurned,
		&a.Date,
		&a.Notes,
	)
}
