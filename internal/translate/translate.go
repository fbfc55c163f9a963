// Package translate turns a Spanish product name into its French display
// name. A Translator is chosen by configuration: the local dictionary is
// always available and the remote service is optional.
package translate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tayloree/restock/internal/catalog"
)

// Provider names accepted in configuration.
const (
	ProviderDictionary = "dictionary"
	ProviderRemote     = "remote"
)

var (
	ErrUnknownProvider = errors.New("unknown translation provider")
	ErrEmptyResult     = errors.New("empty translation")
)

// Translator converts text from the primary to the secondary language.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Func adapts a plain function to Translator.
type Func func(ctx context.Context, text string) (string, error)

// Translate calls f.
func (f Func) Translate(ctx context.Context, text string) (string, error) {
	return f(ctx, text)
}

// Options selects and configures a Translator.
type Options struct {
	Provider string
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// New builds the Translator named by opts.Provider. The remote provider is
// always chained in front of the dictionary so a failed call degrades to a
// local translation.
func New(opts Options, cat *catalog.Catalog, logger *slog.Logger) (Translator, error) {
	dict := NewDictionary(cat)

	switch strings.ToLower(strings.TrimSpace(opts.Provider)) {
	case "", ProviderDictionary:
		return dict, nil
	case ProviderRemote:
		remote, err := NewRemote(opts.Endpoint, opts.APIKey, opts.Timeout)
		if err != nil {
			return nil, err
		}
		return Chain(logger, remote, dict), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, opts.Provider)
	}
}

type chain struct {
	logger      *slog.Logger
	translators []Translator
}

// Chain tries each translator in order and returns the first non-empty
// result. Failures are logged and the next translator is tried.
func Chain(logger *slog.Logger, translators ...Translator) Translator {
	if logger == nil {
		logger = slog.Default()
	}
	return &chain{logger: logger, translators: translators}
}

func (c *chain) Translate(ctx context.Context, text string) (string, error) {
	var errs []error
	for i, t := range c.translators {
		out, err := t.Translate(ctx, text)
		if err == nil && strings.TrimSpace(out) != "" {
			return out, nil
		}
		if err == nil {
			err = ErrEmptyResult
		}
		c.logger.Warn("translation failed, trying next strategy", "step", i, "error", err)
		errs = append(errs, err)
	}
	return "", errors.Join(errs...)
}
