package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/Veraticus/ledgerfield/internal/config"
	"github.com/Veraticus/ledgerfield/internal/field"
	"github.com/Veraticus/ledgerfield/internal/fuzzy"
	"github.com/Veraticus/ledgerfield/internal/model"
	"github.com/Veraticus/ledgerfield/internal/storage"
)

// envKeyReplacer maps nested keys like database.path to LEDGERFIELD_DATABASE_PATH.
var envKeyReplacer = strings.NewReplacer(".", "_")

// initStorage opens the catalog database and brings its schema up to date.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	settings, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, err
	}

	store, err := storage.NewSQLiteStorage(settings.DatabasePath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// fieldTools bundles what the field commands need: the catalog snapshot,
// the matcher and the validator/stepper pair built on it.
type fieldTools struct {
	catalog  model.Catalog
	matcher  *fuzzy.Matcher
	verifier *field.Verifier
	stepper  *field.FieldStepper
}

func (t fieldTools) autofill(buf string) string {
	return field.TagAutofill(buf, t.catalog, t.matcher)
}

// loadFieldTools reads the catalog once and closes the database again.
func loadFieldTools(ctx context.Context) (fieldTools, error) {
	settings, err := config.Load(viper.GetViper())
	if err != nil {
		return fieldTools{}, err
	}

	store, err := initStorage(ctx)
	if err != nil {
		return fieldTools{}, err
	}
	defer store.Close()

	catalog, err := store.Snapshot(ctx)
	if err != nil {
		return fieldTools{}, fmt.Errorf("failed to load catalog: %w", err)
	}
	slog.Debug("Loaded catalog",
		"methods", len(catalog.TxMethods()),
		"tags", len(catalog.Tags()),
		"max_distance", settings.FuzzyMaxDistance)

	matcher := fuzzy.NewMatcher(settings.FuzzyMaxDistance)
	verifier := field.NewVerifier(matcher)
	return fieldTools{
		catalog:  catalog,
		matcher:  matcher,
		verifier: verifier,
		stepper:  field.NewStepper(verifier),
	}, nil
}

func fprintln(w io.Writer, a ...any) {
	if _, err := fmt.Fprintln(w, a...); err != nil {
		slog.Warn("Failed to write output", "error", err)
	}
}
