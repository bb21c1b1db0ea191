// internal/app/store/orgstats/sqlstore.go
package orgstatstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dalemusser/mediaindex/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SQLStore is the Repository over database/sql. The same queries run on
// SQLite (modernc) and Postgres (pgx); see system/sqldb for the schema.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

const selectColumns = `SELECT id, name, name_ci, classroom_count, lectures, labs, practicals,
	survey_count, technical_index, created_at FROM organization_stats`

func (s *SQLStore) Save(ctx context.Context, stat models.OrganizationStat) (models.OrganizationStat, error) {
	stat.NameCI = text.Fold(stat.Name)
	stat.CreatedAt = stat.CreatedAt.UTC().Truncate(time.Microsecond)
	if stat.ID.IsZero() {
		stat.ID = primitive.NewObjectID()
	}

	_, err := s.db.ExecContext(ctx, `INSERT INTO organization_stats
		(id, name, name_ci, classroom_count, lectures, labs, practicals, survey_count, technical_index, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			name_ci = EXCLUDED.name_ci,
			classroom_count = EXCLUDED.classroom_count,
			lectures = EXCLUDED.lectures,
			labs = EXCLUDED.labs,
			practicals = EXCLUDED.practicals,
			survey_count = EXCLUDED.survey_count,
			technical_index = EXCLUDED.technical_index,
			created_at = EXCLUDED.created_at`,
		stat.ID.Hex(), stat.Name, stat.NameCI, stat.ClassroomCount, stat.Lectures, stat.Labs,
		stat.Practicals, stat.SurveyCount, stat.TechnicalIndex, stat.CreatedAt.UnixMicro())
	if err != nil {
		return models.OrganizationStat{}, err
	}
	return stat, nil
}

func (s *SQLStore) Latest(ctx context.Context) (models.OrganizationStat, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+` ORDER BY created_at DESC, id DESC LIMIT 1`)
	stat, err := scanStat(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.OrganizationStat{}, ErrNotFound
	}
	if err != nil {
		return models.OrganizationStat{}, err
	}
	return stat, nil
}

func (s *SQLStore) Recent(ctx context.Context, n int) ([]models.OrganizationStat, error) {
	stats := []models.OrganizationStat{}
	if n <= 0 {
		return stats, nil
	}

	rows, err := s.db.QueryContext(ctx, selectColumns+` ORDER BY created_at DESC, id DESC LIMIT $1`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		stat, err := scanStat(rows)
		if err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}
	return stats, rows.Err()
}

func (s *SQLStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM organization_stats`).Scan(&n)
	return n, err
}

func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanStat(sc scanner) (models.OrganizationStat, error) {
	var (
		stat    models.OrganizationStat
		id      string
		created int64
	)
	if err := sc.Scan(&id, &stat.Name, &stat.NameCI, &stat.ClassroomCount, &stat.Lectures,
		&stat.Labs, &stat.Practicals, &stat.SurveyCount, &stat.TechnicalIndex, &created); err != nil {
		return models.OrganizationStat{}, err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.OrganizationStat{}, err
	}
	stat.ID = oid
	stat.CreatedAt = time.UnixMicro(created).UTC()
	return stat, nil
}
