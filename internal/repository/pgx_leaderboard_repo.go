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

type LeaderboardEntry struct {
	ID          string    `db:"id"`
	TeamID      string    `db:"team_id"`
	TotalPoints int       `db:"total_points"`
	Rank        int       `db:"rank"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type LeaderboardRepository interface {
	Create(ctx context.Context, entry *LeaderboardEntry) error
	Get(ctx context.Context, entryID string) (*LeaderboardEntry, error)
	List(ctx context.Context) ([]*LeaderboardEntry, error)
	Update(ctx context.Context, entry *LeaderboardEntry) (*LeaderboardEntry, error)
	Delete(ctx context.Context, entryID string) error
	DeleteAll(ctx context.Context) (int64, error)
}

type pgxLeaderboardRepository struct {
	pool *pgxpool.Pool
}

func NewPgxLeaderboardRepository(pool *pgxpool.Pool) LeaderboardRepository {
	return &pgxLeaderboardRepository{pool: pool}
}

func (p *pgxLeaderboardRepository) Create(ctx context.Context, entry *LeaderboardEntry) error {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Insert(
		im.Into("leaderboard", "id", "team_id", "total_points", "rank", "updated_at"),
		im.Values(
			psql.Arg(entry.ID),
			psql.Arg(entry.TeamID),
			psql.Arg(entry.TotalPoints),
			psql.Arg(entry.Rank),
			psql.Arg(entry.UpdatedAt),
		),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return err
	}

	_, err = e.Exec(ctx, sql, args...)
	return err
}

func (p *pgxLeaderboardRepository) Get(ctx context.Context, entryID string) (*LeaderboardEntry, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns("id", "team_id", "total_points", "rank", "updated_at"),
		sm.From("leaderboard"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(entryID))),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return nil, err
	}

	l := &LeaderboardEntry{}
	if err = e.QueryRow(ctx, sql, args...).Scan(&l.ID, &l.TeamID, &l.TotalPoints, &l.Rank, &l.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return l, nil
}

func (p *pgxLeaderboardRepository) List(ctx context.Context) ([]*LeaderboardEntry, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns("id", "team_id", "total_points", "rank", "updated_at"),
		sm.From("leaderboard"),
		sm.OrderBy("rank"),
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

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*LeaderboardEntry, error) {
		l := &LeaderboardEntry{}
		if err = row.Scan(&l.ID, &l.TeamID, &l.TotalPoints, &l.Rank, &l.UpdatedAt); err != nil {
			return nil, err
		}
		return l, nil
	})
}

func (p *pgxLeaderboardRepository) Update(ctx context.Context, entry *LeaderboardEntry) (*LeaderboardEntry, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Update(
		um.Table("leaderboard"),
		um.SetCol("team_id").ToArg(entry.TeamID),
		um.SetCol("total_points").ToArg(entry.TotalPoints),
		um.SetCol("rank").ToArg(entry.Rank),
		um.SetCol("updated_at").ToArg(entry.UpdatedAt),
		um.Where(psql.Quote("id").EQ(psql.Arg(entry.ID))),
		um.Returning("id", "team_id", "total_points", "rank", "updated_at"),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return nil, err
	}

	l := &LeaderboardEntry{}
	if err = e.QueryRow(ctx, sql, args...).Scan(&l.ID, &l.TeamID, &l.TotalPoints, &l.Rank, &l.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return l, nil
}

func (p *pgxLeaderboardRepository) Delete(ctx context.Context, entryID string) error {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Delete(
		dm.From("leaderboard"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(entryID))),
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

func (p *pgxLeaderboardRepository) DeleteAll(ctx context.Context) (int64, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Delete(dm.From("leaderboard"))

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
