package restock

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tayloree/restock/internal/catalog"
	"github.com/tayloree/restock/internal/translate"
)

// Classifier turns raw chef input into fully populated entries.
type Classifier struct {
	catalog    *catalog.Catalog
	translator translate.Translator
	logger     *slog.Logger
	now        func() time.Time
	newID      func() string
}

// ClassifierOption customizes a Classifier.
type ClassifierOption func(*Classifier)

// WithLogger sets the logger; nil keeps slog.Default().
func WithLogger(logger *slog.Logger) ClassifierOption {
	return func(c *Classifier) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithClock replaces time.Now for unknown product IDs.
func WithClock(now func() time.Time) ClassifierOption {
	return func(c *Classifier) { c.now = now }
}

// WithIDGenerator replaces the random source for entry IDs and the suffix
// of unknown product IDs.
func WithIDGenerator(newID func() string) ClassifierOption {
	return func(c *Classifier) { c.newID = newID }
}

// NewClassifier builds a Classifier. A nil translator falls back to the
// local dictionary.
func NewClassifier(cat *catalog.Catalog, tr translate.Translator, opts ...ClassifierOption) *Classifier {
	if cat == nil {
		cat = catalog.Default()
	}
	if tr == nil {
		tr = translate.NewDictionary(cat)
	}
	c := &Classifier{
		catalog:    cat,
		translator: tr,
		logger:     slog.Default(),
		now:        time.Now,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Catalog returns the dictionary the classifier resolves against.
func (c *Classifier) Catalog() *catalog.Catalog {
	return c.catalog
}

// Classify validates the input and resolves it against the dictionary. A
// miss is not an error: the entry is filed under the miscellaneous category
// with a translated secondary name.
func (c *Classifier) Classify(ctx context.Context, rawName string, quantity float64, unit catalog.Unit) (Entry, error) {
	name, err := validateInput(rawName, quantity, unit)
	if err != nil {
		return Entry{}, err
	}

	if m, ok := c.catalog.Lookup(name); ok {
		cat, _ := c.catalog.Category(m.Product.CategoryID)
		return Entry{
			ID:             c.newID(),
			ProductID:      m.Product.ID,
			NameES:         m.Product.NameES,
			NameFR:         m.Product.NameFR,
			CategoryID:     cat.ID,
			CategoryNameES: cat.NameES,
			CategoryNameFR: cat.NameFR,
			Quantity:       quantity,
			Unit:           unit,
			IsKnown:        true,
		}, nil
	}

	misc := c.catalog.Misc()
	entry := Entry{
		ID:             c.newID(),
		ProductID:      c.unknownProductID(),
		NameES:         name,
		NameFR:         c.translate(ctx, name),
		CategoryID:     misc.ID,
		CategoryNameES: misc.NameES,
		CategoryNameFR: misc.NameFR,
		Quantity:       quantity,
		Unit:           unit,
	}
	c.logger.Debug("unknown product", "name", name, "product_id", entry.ProductID)
	return entry, nil
}

func (c *Classifier) translate(ctx context.Context, name string) string {
	out, err := c.translator.Translate(ctx, name)
	if err != nil {
		c.logger.Warn("translation failed, keeping original name", "name", name, "error", err)
		return name
	}
	if out = strings.TrimSpace(out); out == "" {
		return name
	}
	return out
}

func (c *Classifier) unknownProductID() string {
	suffix := strings.ReplaceAll(c.newID(), "-", "")
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	return fmt.Sprintf("%s%d-%s", UnknownProductPrefix, c.now().UnixNano(), suffix)
}

func validateInput(rawName string, quantity float64, unit catalog.Unit) (string, error) {
	name := strings.TrimSpace(rawName)
	if name == "" {
		return "", &ValidationError{Field: "name", Err: ErrEmptyName}
	}
	if err := validateQuantity(quantity); err != nil {
		return "", err
	}
	if !unit.Valid() {
		return "", &ValidationError{Field: "unit", Err: fmt.Errorf("%w: %q", ErrInvalidUnit, unit)}
	}
	return name, nil
}

func validateQuantity(quantity float64) error {
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) || quantity <= 0 {
		return &ValidationError{Field: "quantity", Err: ErrInvalidQuantity}
	}
	return nil
}
