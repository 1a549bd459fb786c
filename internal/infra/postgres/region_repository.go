package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerflow/corresponsal-api/internal/domain"
	"github.com/ledgerflow/corresponsal-api/internal/gateway"
	"github.com/ledgerflow/corresponsal-api/internal/infra/postgres/db"
)

// regionTable descreve a tabela de um nível. As quatro tabelas têm o mesmo
// formato (id, name, <pai>_id), por isso as queries são montadas aqui e não no sqlc.
type regionTable struct {
	name         string
	parentColumn string
}

var regionTables = map[domain.RegionLevel]regionTable{
	domain.LevelDepartment:   {name: "departments"},
	domain.LevelMunicipality: {name: "municipalities", parentColumn: "department_id"},
	domain.LevelCommune:      {name: "communes", parentColumn: "municipality_id"},
	domain.LevelNeighborhood: {name: "neighborhoods", parentColumn: "commune_id"},
}

func (t regionTable) columns() string {
	if t.parentColumn == "" {
		return "id, name"
	}
	return "id, name, " + t.parentColumn
}

func (t regionTable) args(region *domain.Region) []any {
	if t.parentColumn == "" {
		return []any{region.ID, region.Name}
	}
	return []any{region.ID, region.Name, *region.ParentID}
}

func (t regionTable) placeholders() string {
	if t.parentColumn == "" {
		return "$1, $2"
	}
	return "$1, $2, $3"
}

type RegionRepository struct {
	pool *pgxpool.Pool
	conn db.DBTX
}

func NewRegionRepository(pool *pgxpool.Pool) *RegionRepository {
	return &RegionRepository{pool: pool, conn: pool}
}

func tableFor(level domain.RegionLevel) (regionTable, error) {
	t, ok := regionTables[level]
	if !ok {
		return regionTable{}, domain.ErrInvalidRegionLevel
	}
	return t, nil
}

func (r *RegionRepository) Create(ctx context.Context, region *domain.Region) error {
	t, err := tableFor(region.Level)
	if err != nil {
		return err
	}

	if region.ID == 0 {
		// Municípios podem não ter código oficial; o próximo id livre é usado.
		query := fmt.Sprintf(
			"INSERT INTO %s (%s) SELECT COALESCE(MAX(id), 0) + 1, $1%s FROM %s RETURNING id",
			t.name, t.columns(), parentPlaceholder(t, 2), t.name,
		)
		args := []any{region.Name}
		if t.parentColumn != "" {
			args = append(args, *region.ParentID)
		}
		err = r.conn.QueryRow(ctx, query, args...).Scan(&region.ID)
	} else {
		query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", t.name, t.columns(), t.placeholders())
		_, err = r.conn.Exec(ctx, query, t.args(region)...)
	}
	if err != nil {
		return mapRegionWriteError("create", err)
	}
	return nil
}

func parentPlaceholder(t regionTable, n int) string {
	if t.parentColumn == "" {
		return ""
	}
	return fmt.Sprintf(", $%d", n)
}

func (r *RegionRepository) Upsert(ctx context.Context, region *domain.Region) error {
	t, err := tableFor(region.Level)
	if err != nil {
		return err
	}
	set := "name = EXCLUDED.name"
	if t.parentColumn != "" {
		set += fmt.Sprintf(", %[1]s = EXCLUDED.%[1]s", t.parentColumn)
	}
	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (id) DO UPDATE SET %s",
		t.name, t.columns(), t.placeholders(), set,
	)
	if _, err := r.conn.Exec(ctx, query, t.args(region)...); err != nil {
		return mapRegionWriteError("upsert", err)
	}
	return nil
}

func (r *RegionRepository) GetByID(ctx context.Context, level domain.RegionLevel, id int64) (*domain.Region, error) {
	t, err := tableFor(level)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", t.columns(), t.name)
	region, err := scanRegion(r.conn.QueryRow(ctx, query, id), level, t)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRegionNotFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", t.name, err)
	}
	return region, nil
}

func (r *RegionRepository) List(ctx context.Context, level domain.RegionLevel, parentID *int64) ([]*domain.Region, error) {
	t, err := tableFor(level)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM %s", t.columns(), t.name)
	var args []any
	if parentID != nil && t.parentColumn != "" {
		query += fmt.Sprintf(" WHERE %s = $1", t.parentColumn)
		args = append(args, *parentID)
	}
	query += " ORDER BY id"

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", t.name, err)
	}
	defer rows.Close()

	out := make([]*domain.Region, 0)
	for rows.Next() {
		region, err := scanRegion(rows, level, t)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", t.name, err)
		}
		out = append(out, region)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", t.name, err)
	}
	return out, nil
}

func (r *RegionRepository) Update(ctx context.Context, region *domain.Region) error {
	t, err := tableFor(region.Level)
	if err != nil {
		return err
	}
	query := fmt.Sprintf("UPDATE %s SET name = $2 WHERE id = $1", t.name)
	if t.parentColumn != "" {
		query = fmt.Sprintf("UPDATE %s SET name = $2, %s = $3 WHERE id = $1", t.name, t.parentColumn)
	}
	tag, err := r.conn.Exec(ctx, query, t.args(region)...)
	if err != nil {
		return mapRegionWriteError("update", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRegionNotFound
	}
	return nil
}

func (r *RegionRepository) Delete(ctx context.Context, level domain.RegionLevel, id int64) error {
	t, err := tableFor(level)
	if err != nil {
		return err
	}
	tag, err := r.conn.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", t.name), id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrRegionInUse
		}
		return fmt.Errorf("failed to delete %s: %w", t.name, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRegionNotFound
	}
	return nil
}

func (r *RegionRepository) WithTx(tx gateway.TransactionObject) gateway.RegionRepository {
	pgTx, ok := tx.(pgx.Tx)
	if !ok {
		return r
	}
	return &RegionRepository{pool: r.pool, conn: pgTx}
}

func scanRegion(row pgx.Row, level domain.RegionLevel, t regionTable) (*domain.Region, error) {
	region := &domain.Region{Level: level}
	if t.parentColumn == "" {
		if err := row.Scan(&region.ID, &region.Name); err != nil {
			return nil, err
		}
		return region, nil
	}
	var parentID int64
	if err := row.Scan(&region.ID, &region.Name, &parentID); err != nil {
		return nil, err
	}
	region.ParentID = &parentID
	return region, nil
}

func mapRegionWriteError(op string, err error) error {
	switch {
	case isUniqueViolation(err, ""):
		return domain.ErrRegionAlreadyExists
	case isForeignKeyViolation(err):
		return domain.ErrParentRegionNotFound
	}
	return fmt.Errorf("failed to %s region: %w", op, err)
}
