package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/Misgexx/Fairtrack/internal/common"
	"github.com/Misgexx/Fairtrack/internal/config"
	"github.com/Misgexx/Fairtrack/internal/model"
	"github.com/Misgexx/Fairtrack/internal/session"
	"github.com/Misgexx/Fairtrack/internal/storage"
)

// initStore opens the configured database. Callers must Close the
// returned store.
func initStore() (*storage.SQLiteStore, error) {
	dbPath := config.DatabasePath(viper.GetString("database.path"))

	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return store, nil
}

// requireUser restores the session and returns the signed-in user, or a
// user-facing error telling the caller to sign in first.
func requireUser(ctx context.Context, store storage.Store) (session.User, error) {
	mgr := session.NewManager(store)
	if err := mgr.Load(ctx); err != nil {
		return session.User{}, err
	}
	user, ok := mgr.CurrentUser()
	if !ok {
		return session.User{}, common.NewUserError(
			"You are not signed in. Run 'fairtrack auth login' first.",
			common.ErrNotSignedIn)
	}
	return user, nil
}

// resolveRecord finds a record by id or, failing that, by company name.
func resolveRecord(ctx context.Context, records *storage.Records, ref string) (model.Record, error) {
	rec, err := records.Load(ctx, ref)
	if err == nil {
		return rec, nil
	}
	rec, err = records.FindByCompany(ctx, ref)
	if err != nil {
		return model.Record{}, common.NewUserError(
			fmt.Sprintf("No tracked company matches %q. Run 'fairtrack list' to see what you have.", ref),
			err)
	}
	return rec, nil
}

// positionLabel renders the position for display, substituting the
// custom text while the type is Other.
func positionLabel(rec model.Record) string {
	if rec.PositionType == model.PositionOther && rec.PositionOther != "" {
		return rec.PositionOther
	}
	return string(rec.PositionType)
}

// statusLabel renders the application status for display.
func statusLabel(rec model.Record) string {
	if rec.Status == model.StatusOther && rec.StatusOther != "" {
		return rec.StatusOther
	}
	return string(rec.Status)
}

// shortID returns the first segment of a UUID, enough to disambiguate
// in listings.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
