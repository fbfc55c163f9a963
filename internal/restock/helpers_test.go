package restock_test

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/tayloree/restock/internal/catalog"
	"github.com/tayloree/restock/internal/restock"
)

func floatPtr(v float64) *float64 { return &v }

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%04d-aaaa-bbbb", n)
	}
}

func newTestClassifier() *restock.Classifier {
	return restock.NewClassifier(
		catalog.Default(),
		nil,
		restock.WithIDGenerator(sequentialIDs()),
		restock.WithClock(func() time.Time { return time.Unix(1700000000, 0) }),
		restock.WithLogger(quietLogger()),
	)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
