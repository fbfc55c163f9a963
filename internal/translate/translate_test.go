package translate_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tayloree/restock/internal/catalog"
	"github.com/tayloree/restock/internal/translate"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestChain_FallsBackOnError(t *testing.T) {
	failing := translate.Func(func(context.Context, string) (string, error) {
		return "", errors.New("service down")
	})
	fixed := translate.Func(func(_ context.Context, text string) (string, error) {
		return "fr:" + text, nil
	})

	out, err := translate.Chain(quietLogger(), failing, fixed).Translate(context.Background(), "pan")
	require.NoError(t, err)
	assert.Equal(t, "fr:pan", out)
}

func TestChain_SkipsEmptyResult(t *testing.T) {
	empty := translate.Func(func(context.Context, string) (string, error) { return " ", nil })
	fixed := translate.Func(func(context.Context, string) (string, error) { return "ok", nil })

	out, err := translate.Chain(quietLogger(), empty, fixed).Translate(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
}

func TestChain_AllFail(t *testing.T) {
	boom := errors.New("boom")
	failing := translate.Func(func(context.Context, string) (string, error) { return "", boom })

	_, err := translate.Chain(quietLogger(), failing, failing).Translate(context.Background(), "x")
	assert.ErrorIs(t, err, boom)
}

func TestNew_Providers(t *testing.T) {
	cat := catalog.Default()

	tr, err := translate.New(translate.Options{}, cat, quietLogger())
	require.NoError(t, err)
	assert.IsType(t, &translate.Dictionary{}, tr)

	tr, err = translate.New(translate.Options{Provider: "Dictionary"}, cat, quietLogger())
	require.NoError(t, err)
	assert.IsType(t, &translate.Dictionary{}, tr)

	_, err = translate.New(translate.Options{Provider: "remote"}, cat, quietLogger())
	assert.ErrorIs(t, err, translate.ErrNoEndpoint)

	_, err = translate.New(translate.Options{Provider: "carrier-pigeon"}, cat, quietLogger())
	assert.ErrorIs(t, err, translate.ErrUnknownProvider)
}
