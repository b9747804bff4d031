package repository

import (
	"context"

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

// Workout keeps exercises as raw JSON; the service layer owns the descriptor
// shape and ordering.
type Workout struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Difficulty  string `db:"difficulty"`
	Duration    int    `db:"duration"`
	Category    string `db:"category"`
	Exercises   []byte `db:"exercises"`
}

type WorkoutRepository interface {
	Create(ctx context.Context, workout *Workout) error
	Get(ctx context.Context, workoutID string) (*Workout, error)
	List(ctx context.Context) ([]*Workout, error)
	Update(ctx context.Context, workout *Workout) (*Workout, error)
	Delete(ctx context.Context, workoutID string) error
	DeleteAll(ctx context.Context) (int64, error)
}

type pgxWorkoutRepository struct {
	pool *pgxpool.Pool
}

func NewPgxWorkoutRepository(pool *pgxpool.Pool) WorkoutRepository {
	return &pgxWorkoutRepository{pool: pool}
}

func (p *pgxWorkoutRepository) Create(ctx context.Context, workout *Workout) error {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Insert(
		im.Into("workouts", "id", "name", "description", "difficulty", "duration", "category", "exercises"),
		im.Values(
			psql.Arg(workout.ID),
			psql.Arg(workout.Name),
			psql.Arg(workout.Description),
			psql.Arg(workout.Difficulty),
			psql.Arg(workout.Duration),
			psql.Arg(workout.Category),
			psql.Arg(workout.Exercises),
		),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return err
	}

	_, err = e.Exec(ctx, sql, args...)
	return err
}

func (p *pgxWorkoutRepository) Get(ctx context.Context, workoutID string) (*Workout, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns("id", "name", "description", "difficulty", "duration", "category", "exercises"),
		sm.From("workouts"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(workoutID))),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return nil, err
	}

	w := &Workout{}
	if err = e.QueryRow(ctx, sql, args...).Scan(
		&w.ID,
		&w.Name,
		&w.Description,
		&w.Difficulty,
		&w.Duration,
		&w.Category,
		&w.Exercises,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return w, nil
}

func (p *pgxWorkoutRepository) List(ctx context.Context) ([]*Workout, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns("id", "name", "description", "difficulty", "duration", "category", "exercises"),
		sm.From("workouts"),
		sm.OrderBy("name"),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := e.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Workout, error) {
		w := &Workout{}
		if err = row.Scan(&w.ID, &w.Name, &w.Description, &w.Difficulty, &w.Duration, &w.Category, &w.Exercises); err != nil {
			return nil, err
		}
		return w, nil
	})
}

func (p *pgxWorkoutRepository) Update(ctx context.Context, workout *Workout) (*Workout, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Update(
		um.Table("workouts"),
		um.SetCol("name").ToArg(workout.Name),
		um.SetCol("description").ToArg(workout.Description),
		um.SetCol("difficulty").ToArg(workout.Difficulty),
		um.SetCol("duration").ToArg(workout.Duration),
		um.SetCol("category").ToArg(workout.Category),
		um.SetCol("exercises").ToArg(workout.Exercises),
		um.Where(psql.Quote("id").EQ(psql.Arg(workout.ID))),
		um.Returning("id", "name", "description", "difficulty", "duration", "category", "exercises"),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return nil, err
	}

	w := &Workout{}
	if err = e.QueryRow(ctx, sql, args...).Scan(
		&w.ID,
		&w.Name,
		&w.Description,
		&w.Difficulty,
		&w.Duration,
		&w.Category,
		&w.Exercises,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return w, nil
}

func (p *pgxWorkoutRepository) Delete(ctx context.Context, workoutID string) error {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Delete(
		dm.From("workouts"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(workoutID))),
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

func (p *pgxWorkoutRepository) DeleteAll(ctx context.Context) (int64, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Delete(dm.From("workouts"))

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
