package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chimailo/algorice/internal/app/models"
	"github.com/chimailo/algorice/internal/pkg/apperrors"
	"github.com/chimailo/algorice/internal/pkg/dberrors"
)

// IGroupRepository defines the interface for group database operations
type IGroupRepository interface {
	Create(ctx context.Context, group *models.Group) error
	GetByID(ctx context.Context, id int64) (*models.Group, error)
	GetByName(ctx context.Context, name string) (*models.Group, error)
	List(ctx context.Context) ([]*models.Group, error)
	AddMember(ctx context.Context, groupID, userID int64) error
	RemoveMember(ctx context.Context, groupID, userID int64) error
	IsMember(ctx context.Context, groupID, userID int64) (bool, error)
}

// GroupRepository handles group rows and the membership edge table.
type GroupRepository struct {
	db *pgxpool.Pool
}

// NewGroupRepository creates a new GroupRepository
func NewGroupRepository(db *pgxpool.Pool) *GroupRepository {
	return &GroupRepository{db: db}
}

// Create inserts a group; a duplicate name is a conflict.
func (r *GroupRepository) Create(ctx context.Context, group *models.Group) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO groups (name, description) VALUES ($1, $2)
		RETURNING id, created_at, updated_at`,
		group.Name, group.Description,
	).Scan(&group.ID, &group.CreatedAt, &group.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrGroupAlreadyExists
		}
		return fmt.Errorf("error creating group: %w", err)
	}
	return nil
}

// GetByID retrieves a group by id
func (r *GroupRepository) GetByID(ctx context.Context, id int64) (*models.Group, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

// GetByName retrieves a group by name
func (r *GroupRepository) GetByName(ctx context.Context, name string) (*models.Group, error) {
	return r.getOne(ctx, `WHERE name = $1`, name)
}

func (r *GroupRepository) getOne(ctx context.Context, where string, arg any) (*models.Group, error) {
	var g models.Group
	err := r.db.QueryRow(ctx,
		`SELECT id, name, description, created_at, updated_at FROM groups `+where, arg).
		Scan(&g.ID, &g.Name, &g.Description, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("error fetching group: %w", err)
	}
	return &g, nil
}

// List returns all groups ordered by name
func (r *GroupRepository) List(ctx context.Context) ([]*models.Group, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, description, created_at, updated_at FROM groups ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("error listing groups: %w", err)
	}
	defer rows.Close()

	var groups []*models.Group
	for rows.Next() {
		var g models.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		groups = append(groups, &g)
	}
	return groups, rows.Err()
}

// AddMember puts a user in a group; repeated adds are a no-op.
func (r *GroupRepository) AddMember(ctx context.Context, groupID, userID int64) error {
	query := squirrel.Insert("group_members").
		Columns("group_id", "user_id").
		Values(groupID, userID).
		Suffix("ON CONFLICT (group_id, user_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrResourceNotFound
		}
		return fmt.Errorf("error adding group member: %w", err)
	}
	return nil
}

// RemoveMember takes a user out of a group; an absent membership is a no-op.
func (r *GroupRepository) RemoveMember(ctx context.Context, groupID, userID int64) error {
	query := squirrel.Delete("group_members").
		Where(squirrel.Eq{"group_id": groupID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error removing group member: %w", err)
	}
	return nil
}

// IsMember checks whether a user belongs to a group
func (r *GroupRepository) IsMember(ctx context.Context, groupID, userID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM group_members WHERE group_id = $1 AND user_id = $2)`,
		groupID, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking membership: %w", err)
	}
	return exists, nil
}
