package repository

import (
	"context"
	"fmt"

	"campus-booking/internal/data/entity"
	"campus-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ResourceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Resource, error)
	FindAllActive(ctx context.Context) ([]*entity.Resource, error)

	// ReplaceAll swaps the whole catalog in one transaction (seed endpoint)
	ReplaceAll(ctx context.Context, resources []*entity.Resource) error
}

type resourceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewResourceRepository(db database.PgxIface, log *zap.Logger) ResourceRepository {
	return &resourceRepository{
		db:  db,
		log: log.With(zap.String("repository", "resource")),
	}
}

func (r *resourceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Resource, error) {
	query := `
		SELECT id, name, type, capacity, location, description, is_active, created_at, updated_at
		FROM resources
		WHERE id = $1
	`

	var resource entity.Resource
	err := r.db.QueryRow(ctx, query, id).Scan(
		&resource.ID,
		&resource.Name,
		&resource.Type,
		&resource.Capacity,
		&resource.Location,
		&resource.Description,
		&resource.IsActive,
		&resource.CreatedAt,
		&resource.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find resource by ID",
			zap.Error(err),
			zap.String("resource_id", id.String()),
		)
		return nil, fmt.Errorf("find resource by ID %s: %w", id.String(), err)
	}

	return &resource, nil
}

func (r *resourceRepository) FindAllActive(ctx context.Context) ([]*entity.Resource, error) {
	query := `
		SELECT id, name, type, capacity, location, description, is_active, created_at, updated_at
		FROM resources
		WHERE is_active = TRUE
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find active resources", zap.Error(err))
		return nil, fmt.Errorf("find active resources: %w", err)
	}
	defer rows.Close()

	var resources []*entity.Resource
	for rows.Next() {
		var resource entity.Resource
		err := rows.Scan(
			&resource.ID,
			&resource.Name,
			&resource.Type,
			&resource.Capacity,
			&resource.Location,
			&resource.Description,
			&resource.IsActive,
			&resource.CreatedAt,
			&resource.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan resource row", zap.Error(err))
			return nil, fmt.Errorf("scan resource row: %w", err)
		}
		resources = append(resources, &resource)
	}

	return resources, nil
}

func (r *resourceRepository) ReplaceAll(ctx context.Context, resources []*entity.Resource) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin replace resources: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM resources`); err != nil {
		r.log.Error("Failed to clear resources", zap.Error(err))
		return fmt.Errorf("clear resources: %w", err)
	}

	query := `
		INSERT INTO resources (id, name, type, capacity, location, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	for _, resource := range resources {
		_, err := tx.Exec(ctx, query,
			resource.ID,
			resource.Name,
			resource.Type,
			resource.Capacity,
			resource.Location,
			resource.Description,
			resource.IsActive,
			resource.CreatedAt,
			resource.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to insert resource",
				zap.Error(err),
				zap.String("name", resource.Name),
			)
			return fmt.Errorf("insert resource %s: %w", resource.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit replace resources: %w", err)
	}

	r.log.Info("Resource catalog replaced", zap.Int("count", len(resources)))
	return nil
}
