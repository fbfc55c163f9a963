// Package share packs a restocking list into a URL-safe token and back.
//
// Each entry is written as name|secondaryName|quantity|unit, entries are
// joined with "~" and the UTF-8 bytes are base64 encoded without padding.
package share

import (
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tayloree/restock/internal/catalog"
	"github.com/tayloree/restock/internal/restock"
)

const (
	entrySep = "~"
	fieldSep = "|"
	fields   = 4
)

// ErrNothingToDecode is returned when a token yields no usable entry.
var ErrNothingToDecode = errors.New("share token contains no valid entries")

var fieldReplacer = strings.NewReplacer(fieldSep, " ", entrySep, " ")

// Encode serializes entries into a token. An empty list encodes to "".
func Encode(entries []restock.Entry) string {
	if len(entries) == 0 {
		return ""
	}

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, strings.Join([]string{
			cleanField(e.NameES),
			cleanField(e.NameFR),
			strconv.FormatFloat(e.Quantity, 'f', -1, 64),
			string(e.Unit),
		}, fieldSep))
	}
	return base64.RawURLEncoding.EncodeToString([]byte(strings.Join(parts, entrySep)))
}

func cleanField(s string) string {
	return strings.TrimSpace(fieldReplacer.Replace(s))
}

// Codec decodes tokens back into fully classified entries.
type Codec struct {
	classifier *restock.Classifier
	logger     *slog.Logger
}

// NewCodec returns a Codec that re-classifies decoded names with classifier.
func NewCodec(classifier *restock.Classifier, logger *slog.Logger) *Codec {
	if logger == nil {
		logger = slog.Default()
	}
	return &Codec{classifier: classifier, logger: logger}
}

// Decode parses token. Malformed entries are skipped; ErrNothingToDecode is
// returned when the token is unreadable or nothing survives.
func (c *Codec) Decode(ctx context.Context, token string) ([]restock.Entry, error) {
	raw, ok := decodeBase64(token)
	if !ok {
		return nil, ErrNothingToDecode
	}

	var out []restock.Entry
	for i, item := range strings.Split(raw, entrySep) {
		if strings.TrimSpace(item) == "" {
			continue
		}
		entry, ok := c.decodeEntry(ctx, item)
		if !ok {
			c.logger.Debug("skipping shared entry", "index", i, "raw", item)
			continue
		}
		out = append(out, entry)
	}

	if len(out) == 0 {
		return nil, ErrNothingToDecode
	}
	return out, nil
}

func (c *Codec) decodeEntry(ctx context.Context, item string) (restock.Entry, bool) {
	parts := strings.Split(item, fieldSep)
	if len(parts) != fields {
		return restock.Entry{}, false
	}

	name := strings.TrimSpace(parts[0])
	if name == "" {
		return restock.Entry{}, false
	}
	qty, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	if err != nil || math.IsNaN(qty) || math.IsInf(qty, 0) || qty <= 0 {
		return restock.Entry{}, false
	}
	unit, ok := catalog.ParseUnit(parts[3])
	if !ok {
		return restock.Entry{}, false
	}

	entry, err := c.classifier.Classify(ctx, name, qty, unit)
	if err != nil {
		return restock.Entry{}, false
	}
	if secondary := strings.TrimSpace(parts[1]); secondary != "" {
		entry.NameFR = secondary
	}
	return entry, true
}

// decodeBase64 accepts URL-safe or standard alphabets, padded or not, and
// requires the payload to be valid UTF-8.
func decodeBase64(token string) (string, bool) {
	token = strings.TrimRight(strings.TrimSpace(token), "=")
	if token == "" {
		return "", false
	}

	for _, enc := range []*base64.Encoding{base64.RawURLEncoding, base64.RawStdEncoding} {
		b, err := enc.DecodeString(token)
		if err != nil {
			continue
		}
		if !utf8.Valid(b) {
			return "", false
		}
		return string(b), true
	}
	return "", false
}
