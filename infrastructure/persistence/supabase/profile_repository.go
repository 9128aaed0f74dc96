package supabase

import (
	"context"

	"polyamgraph/application/ports"
	"polyamgraph/domain/core/entities"
	pkgerrors "polyamgraph/pkg/errors"

	supa "github.com/supabase-community/supabase-go"
	"go.uber.org/zap"
)

// ProfileRepository implements ports.ProfileRepository over PostgREST.
//
// The underlying client is not context-aware, so each call checks the
// request context before issuing the round trip; a canceled render
// cycle stops here instead of hitting the store.
type ProfileRepository struct {
	client *supa.Client
	logger *zap.Logger
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(client *supa.Client, logger *zap.Logger) ports.ProfileRepository {
	return &ProfileRepository{
		client: client,
		logger: logger,
	}
}

// FindByUserID retrieves a profile by its owner's user ID
func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (*entities.Profile, error) {
	return r.findOne(ctx, "user_id", userID)
}

// FindByUsername retrieves a profile by its unique username
func (r *ProfileRepository) FindByUsername(ctx context.Context, username string) (*entities.Profile, error) {
	return r.findOne(ctx, "username", username)
}

func (r *ProfileRepository) findOne(ctx context.Context, column, value string) (*entities.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows []entities.Profile
	_, err := r.client.From(profilesTable).
		Select("*", "", false).
		Eq(column, value).
		ExecuteTo(&rows)
	if err != nil {
		r.logger.Error("Profile lookup failed",
			zap.String("column", column),
			zap.Error(err),
		)
		return nil, pkgerrors.NewDatabaseError("find profile", err)
	}

	if len(rows) == 0 {
		return nil, pkgerrors.NewNotFoundError("profile")
	}

	return &rows[0], nil
}

// ListVisible retrieves all profiles flagged for the network view
func (r *ProfileRepository) ListVisible(ctx context.Context) ([]entities.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows []entities.Profile
	_, err := r.client.From(profilesTable).
		Select("*", "", false).
		Eq("show_in_network", "true").
		ExecuteTo(&rows)
	if err != nil {
		r.logger.Error("Visible profile list failed", zap.Error(err))
		return nil, pkgerrors.NewDatabaseError("list visible profiles", err)
	}

	if rows == nil {
		rows = []entities.Profile{}
	}
	return rows, nil
}

// Update applies the owner-mutable fields to a profile
func (r *ProfileRepository) Update(ctx context.Context, userID string, update entities.ProfileUpdate) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, _, err := r.client.From(profilesTable).
		Update(update, "", "").
		Eq("user_id", userID).
		Execute()
	if err != nil {
		r.logger.Error("Profile update failed",
			zap.String("userID", userID),
			zap.Error(err),
		)
		return pkgerrors.NewDatabaseError("update profile", err)
	}

	return nil
}
