package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/chimailo/algorice/internal/app/models"
	appRepos "github.com/chimailo/algorice/internal/app/repositories"
	"github.com/chimailo/algorice/internal/config"
	"github.com/chimailo/algorice/internal/pkg/apperrors"
	pkgAuth "github.com/chimailo/algorice/internal/pkg/auth"
)

// permissionActions are created for every permissioned model at startup.
var permissionActions = []string{"view", "add", "update", "delete"}

// permissionModels lists the models the permission system covers.
var permissionModels = []string{"user", "group", "post", "comment", "profile"}

// defaultGroups maps seed groups to the models their members get full
// grants on. Members only view; moderators manage content; admins manage
// everything.
var defaultGroups = map[string][]string{
	"members":    nil,
	"moderators": {"post", "comment"},
	"admins":     {"user", "group", "post", "comment", "profile"},
}

// PermissionName builds the canonical "can_<action>_<model>" name.
func PermissionName(action, model string) string {
	return fmt.Sprintf("can_%s_%s", action, model)
}

// CreateDefaultData seeds the permission catalogue, default groups with
// their grants, and an initial admin account. Safe to run on every boot.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	repos := appRepos.NewRepositories(dbPool)

	lgr.Info().Msg("Checking/Creating default data (permissions/groups/admin)...")
	var finalErr error

	permsByName := make(map[string]int64)
	for _, model := range permissionModels {
		for _, action := range permissionActions {
			perm := &appModels.Permission{Name: PermissionName(action, model), Model: model}
			if err := repos.PermissionRepository.Upsert(ctx, perm); err != nil {
				lgr.Error().Err(err).Str("permission", perm.Name).Msg("Error seeding permission")
				finalErr = errors.Join(finalErr, err)
				continue
			}
			permsByName[perm.Name] = perm.ID
		}
		// Everyone can view; only add/update/delete are group-gated, so the
		// view grant goes to the members group below.
	}

	for name, models := range defaultGroups {
		group := &appModels.Group{Name: name}
		err := repos.GroupRepository.Create(ctx, group)
		if err != nil && !errors.Is(err, apperrors.ErrGroupAlreadyExists) {
			lgr.Error().Err(err).Str("group", name).Msg("Error seeding group")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if errors.Is(err, apperrors.ErrGroupAlreadyExists) {
			existing, errGet := repos.GroupRepository.GetByName(ctx, name)
			if errGet != nil {
				lgr.Error().Err(errGet).Str("group", name).Msg("Error fetching existing group")
				finalErr = errors.Join(finalErr, errGet)
				continue
			}
			group = existing
		}

		var grantIDs []int64
		for _, model := range permissionModels {
			// Every group can view every model.
			if id, ok := permsByName[PermissionName("view", model)]; ok {
				grantIDs = append(grantIDs, id)
			}
		}
		for _, model := range models {
			for _, action := range permissionActions {
				if id, ok := permsByName[PermissionName(action, model)]; ok {
					grantIDs = append(grantIDs, id)
				}
			}
		}

		if err := repos.PermissionRepository.GrantToGroup(ctx, group.ID, grantIDs); err != nil {
			lgr.Error().Err(err).Str("group", name).Msg("Error granting group permissions")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if err := seedAdminUser(ctx, repos, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

// seedAdminUser creates the initial administrator when ADMIN_EMAIL and
// ADMIN_PASSWORD are set and the account doesn't exist yet.
func seedAdminUser(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	email := config.GetEnv("ADMIN_EMAIL", "")
	password := config.GetEnv("ADMIN_PASSWORD", "")
	if email == "" || password == "" {
		lgr.Debug().Msg("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	exists, err := repos.UserRepository.EmailExists(ctx, email)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for admin account")
		return err
	}
	if exists {
		return nil
	}

	hashed, err := pkgAuth.HashPassword(password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	username := config.GetEnv("ADMIN_USERNAME", "admin")
	name := "Administrator"
	user := &appModels.User{
		Username: username,
		Email:    email,
		Password: hashed,
		IsActive: true,
		IsAdmin:  true,
	}
	profile := &appModels.Profile{Name: &name}

	if err := repos.UserRepository.CreateWithProfile(ctx, user, profile); err != nil {
		lgr.Error().Err(err).Msg("Error creating admin account")
		return err
	}

	adminGroup, err := repos.GroupRepository.GetByName(ctx, "admins")
	if err != nil {
		lgr.Error().Err(err).Msg("Error fetching admins group")
		return err
	}
	if err := repos.GroupRepository.AddMember(ctx, adminGroup.ID, user.ID); err != nil {
		lgr.Error().Err(err).Msg("Error adding admin to admins group")
		return err
	}

	lgr.Info().Str("username", username).Msg("Admin account created")
	return nil
}
