package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chimailo/algorice/internal/app/models"
)

// IPermissionRepository defines the interface for the permission store
type IPermissionRepository interface {
	Upsert(ctx context.Context, perm *models.Permission) error
	GetByIDs(ctx context.Context, ids []int64) ([]*models.Permission, error)
	GetByNames(ctx context.Context, names []string) ([]*models.Permission, error)
	List(ctx context.Context) ([]*models.Permission, error)
	DirectPermissions(ctx context.Context, userID int64) ([]*models.Permission, error)
	GroupPermissions(ctx context.Context, userID int64) ([]*models.Permission, error)
	GrantToUser(ctx context.Context, userID int64, permIDs []int64) error
	RevokeFromUser(ctx context.Context, userID int64, permIDs []int64) error
	GrantToGroup(ctx context.Context, groupID int64, permIDs []int64) error
	RevokeFromGroup(ctx context.Context, groupID int64, permIDs []int64) error
	UserPermissionNames(ctx context.Context, userID int64) ([]string, error)
}

// PermissionRepository handles permissions and the grant edge tables.
type PermissionRepository struct {
	db *pgxpool.Pool
}

// NewPermissionRepository creates a new PermissionRepository
func NewPermissionRepository(db *pgxpool.Pool) *PermissionRepository {
	return &PermissionRepository{db: db}
}

// Upsert inserts a permission if its name is new; used by startup seeding.
func (r *PermissionRepository) Upsert(ctx context.Context, perm *models.Permission) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO permissions (name, model) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET model = EXCLUDED.model
		RETURNING id, created_at`,
		perm.Name, perm.Model,
	).Scan(&perm.ID, &perm.CreatedAt)
	if err != nil {
		return fmt.Errorf("error upserting permission: %w", err)
	}
	return nil
}

// GetByIDs retrieves permissions by id
func (r *PermissionRepository) GetByIDs(ctx context.Context, ids []int64) ([]*models.Permission, error) {
	return r.selectWhere(ctx, squirrel.Eq{"id": ids})
}

// GetByNames retrieves permissions by name
func (r *PermissionRepository) GetByNames(ctx context.Context, names []string) ([]*models.Permission, error) {
	return r.selectWhere(ctx, squirrel.Eq{"name": names})
}

// List returns every permission, ordered by model then name.
func (r *PermissionRepository) List(ctx context.Context) ([]*models.Permission, error) {
	return r.selectWhere(ctx, nil)
}

func (r *PermissionRepository) selectWhere(ctx context.Context, where squirrel.Sqlizer) ([]*models.Permission, error) {
	query := squirrel.Select("id", "name", "model", "created_at").
		From("permissions").
		OrderBy("model", "name").
		PlaceholderFormat(squirrel.Dollar)
	if where != nil {
		query = query.Where(where)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	return scanPermissions(rows)
}

// DirectPermissions returns the permissions granted straight to the user.
func (r *PermissionRepository) DirectPermissions(ctx context.Context, userID int64) ([]*models.Permission, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.id, p.name, p.model, p.created_at
		FROM permissions p
		JOIN user_permissions up ON up.perm_id = p.id
		WHERE up.user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching direct permissions: %w", err)
	}
	defer rows.Close()

	return scanPermissions(rows)
}

// GroupPermissions returns the permissions the user holds through group
// membership.
func (r *PermissionRepository) GroupPermissions(ctx context.Context, userID int64) ([]*models.Permission, error) {
	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT p.id, p.name, p.model, p.created_at
		FROM permissions p
		JOIN group_permissions gp ON gp.perm_id = p.id
		JOIN group_members gm ON gm.group_id = gp.group_id
		WHERE gm.user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching group permissions: %w", err)
	}
	defer rows.Close()

	return scanPermissions(rows)
}

// GrantToUser grants permissions directly; re-granting is a no-op.
func (r *PermissionRepository) GrantToUser(ctx context.Context, userID int64, permIDs []int64) error {
	return r.grant(ctx, "user_permissions", "user_id", userID, permIDs)
}

// RevokeFromUser removes direct grants; absent grants are a no-op.
func (r *PermissionRepository) RevokeFromUser(ctx context.Context, userID int64, permIDs []int64) error {
	return r.revoke(ctx, "user_permissions", "user_id", userID, permIDs)
}

// GrantToGroup grants permissions to a group; re-granting is a no-op.
func (r *PermissionRepository) GrantToGroup(ctx context.Context, groupID int64, permIDs []int64) error {
	return r.grant(ctx, "group_permissions", "group_id", groupID, permIDs)
}

// RevokeFromGroup removes group grants; absent grants are a no-op.
func (r *PermissionRepository) RevokeFromGroup(ctx context.Context, groupID int64, permIDs []int64) error {
	return r.revoke(ctx, "group_permissions", "group_id", groupID, permIDs)
}

func (r *PermissionRepository) grant(ctx context.Context, table, col string, holderID int64, permIDs []int64) error {
	if len(permIDs) == 0 {
		return nil
	}

	query := squirrel.Insert(table).Columns(col, "perm_id")
	for _, permID := range permIDs {
		query = query.Values(holderID, permID)
	}
	query = query.
		Suffix(fmt.Sprintf("ON CONFLICT (%s, perm_id) DO NOTHING", col)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error granting permissions: %w", err)
	}
	return nil
}

func (r *PermissionRepository) revoke(ctx context.Context, table, col string, holderID int64, permIDs []int64) error {
	if len(permIDs) == 0 {
		return nil
	}

	query := squirrel.Delete(table).
		Where(squirrel.Eq{col: holderID, "perm_id": permIDs}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error revoking permissions: %w", err)
	}
	return nil
}

// UserPermissionNames returns the names of the user's effective
// permissions, direct and group grants combined, in one query.
func (r *PermissionRepository) UserPermissionNames(ctx context.Context, userID int64) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.name FROM permissions p
		JOIN user_permissions up ON up.perm_id = p.id
		WHERE up.user_id = $1
		UNION
		SELECT p.name FROM permissions p
		JOIN group_permissions gp ON gp.perm_id = p.id
		JOIN group_members gm ON gm.group_id = gp.group_id
		WHERE gm.user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching permission names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func scanPermissions(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]*models.Permission, error) {
	var perms []*models.Permission
	for rows.Next() {
		var p models.Permission
		if err := rows.Scan(&p.ID, &p.Name, &p.Model, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		perms = append(perms, &p)
	}
	return perms, rows.Err()
}
