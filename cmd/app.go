package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tayloree/restock/internal/catalog"
	"github.com/tayloree/restock/internal/config"
	"github.com/tayloree/restock/internal/restock"
	"github.com/tayloree/restock/internal/store"
	"github.com/tayloree/restock/internal/translate"
)

// app is everything a command needs to read or edit the list.
type app struct {
	cfg        *config.Config
	logger     *slog.Logger
	catalog    *catalog.Catalog
	classifier *restock.Classifier
	store      *store.Store
	list       *restock.List
	lang       catalog.Language
}

var configFlagKeys = map[string]string{
	"list-file":  "list.file",
	"lang":       "list.language",
	"log-level":  "logging.level",
	"log-format": "logging.format",
}

// loadApp reads configuration, sets up logging and loads the stored list.
// A stored list that fails validation is discarded with a warning.
func loadApp(cmd *cobra.Command) (*app, error) {
	v := config.New()
	for name, key := range configFlagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding --%s: %w", name, err)
			}
		}
	}

	cfg, err := config.Load(v, flagConfig)
	if err != nil {
		return nil, invalidArgsError(
			err.Error(),
			"restock --lang fr",
			"restock --config ./config.yaml",
		)
	}

	logger := setupLogging(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr())
	cat := catalog.Default()

	tr, err := translate.New(cfg.Translate.TranslatorOptions(), cat, logger)
	if err != nil {
		return nil, invalidArgsError(err.Error(), "Set translate.provider to dictionary or remote.")
	}

	st, err := store.NewOS(cfg.List.File, cat, logger)
	if err != nil {
		return nil, err
	}

	classifier := restock.NewClassifier(cat, tr, restock.WithLogger(logger))
	entries, err := st.Load()
	if err != nil {
		if !errors.Is(err, store.ErrInvalidPayload) {
			return nil, err
		}
		entries = nil
	}
	logger.Debug("list loaded", "path", cfg.List.File, "entries", len(entries))

	return &app{
		cfg:        cfg,
		logger:     logger,
		catalog:    cat,
		classifier: classifier,
		store:      st,
		list:       restock.NewList(classifier, entries...),
		lang:       cfg.List.Lang(),
	}, nil
}

func (a *app) save() error {
	if err := a.store.Save(a.list.Entries()); err != nil {
		return fmt.Errorf("saving list: %w", err)
	}
	return nil
}

func (a *app) mode() restock.Mode {
	return restock.Mode{Quantity: a.cfg.List.QuantityMode}
}

func parseUnitArg(raw string) (catalog.Unit, error) {
	unit, ok := catalog.ParseUnit(raw)
	if !ok {
		names := make([]string, 0, len(catalog.Units()))
		for _, u := range catalog.Units() {
			names = append(names, string(u))
		}
		return "", invalidArgsError(
			fmt.Sprintf("unknown unit %q (use %s)", raw, strings.Join(names, ", ")),
			"restock add tomate -q 2 -u kg",
		)
	}
	return unit, nil
}

// parseQuantityArg reads a quantity, accepting a decimal comma. Blank input
// returns nil so the list applies its default.
func parseQuantityArg(raw, what string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, invalidArgsError(
			fmt.Sprintf("invalid %s %q (use a number like 2 or 2.5)", what, raw),
			"restock qty ID 2.5",
		)
	}
	return &v, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	return json.NewEncoder(cmd.OutOrStdout()).Encode(v)
}
