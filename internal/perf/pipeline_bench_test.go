package perf_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hack-pad/hackpadfs/mem"
	"github.com/tayloree/restock/internal/catalog"
	"github.com/tayloree/restock/internal/display"
	"github.com/tayloree/restock/internal/filter"
	"github.com/tayloree/restock/internal/grouping"
	"github.com/tayloree/restock/internal/restock"
	"github.com/tayloree/restock/internal/share"
	"github.com/tayloree/restock/internal/store"
	"github.com/tayloree/restock/internal/translate"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

// benchmarkInputs mixes exact, prefix, fuzzy and unknown names the way a
// chef types them.
func benchmarkInputs(count int) []string {
	known := []string{"tomate", "Cebolla", "pimiento", "zanaoria", "pechuga de pollo", "Salmón", "leche", "sal", "vino"}
	out := make([]string, 0, count)
	for i := range count {
		if i%4 == 0 {
			out = append(out, fmt.Sprintf("salsa especial %d", i))
			continue
		}
		out = append(out, known[i%len(known)])
	}
	return out
}

func setupTranslatorServer(b *testing.B) translate.Translator {
	b.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Q string `json:"q"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"translatedText": strings.ToUpper(req.Q)})
	}))
	b.Cleanup(server.Close)

	tr, err := translate.New(translate.Options{
		Provider: translate.ProviderRemote,
		Endpoint: server.URL,
		Timeout:  time.Second,
	}, catalog.Default(), quiet)
	if err != nil {
		b.Fatalf("remote translator: %v", err)
	}
	return tr
}

func runPipeline(b *testing.B, tr translate.Translator, inputs []string) {
	b.Helper()

	ctx := context.Background()
	classifier := restock.NewClassifier(catalog.Default(), tr, restock.WithLogger(quiet))
	list := restock.NewList(classifier)
	for i, name := range inputs {
		qty := float64(i%5 + 1)
		if _, err := list.AddProduct(ctx, name, &qty, catalog.UnitKg); err != nil {
			b.Fatalf("add %q: %v", name, err)
		}
	}

	entries := filter.Apply(list.Entries(), filter.Options{})
	groups := grouping.GroupAndOrder(entries, entries[0].ID, catalog.Spanish)
	if err := display.PrintGroupsJSON(io.Discard, groups, catalog.Spanish); err != nil {
		b.Fatalf("print groups json: %v", err)
	}

	token := share.Encode(entries)
	decoded, err := share.NewCodec(classifier, quiet).Decode(ctx, token)
	if err != nil {
		b.Fatalf("decode: %v", err)
	}
	if len(decoded) != len(entries) {
		b.Fatalf("decode: got %d entries, want %d", len(decoded), len(entries))
	}
}

func BenchmarkListPipeline_1kInputs(b *testing.B) {
	inputs := benchmarkInputs(1000)

	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		runPipeline(b, nil, inputs)
	}
}

func BenchmarkListPipeline_RemoteTranslator_200Inputs(b *testing.B) {
	tr := setupTranslatorServer(b)
	inputs := benchmarkInputs(200)

	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		runPipeline(b, tr, inputs)
	}
}

func BenchmarkLookup(b *testing.B) {
	cat := catalog.Default()
	inputs := benchmarkInputs(64)

	b.ReportAllocs()
	b.ResetTimer()
	for i := range b.N {
		_, _ = cat.Lookup(inputs[i%len(inputs)])
	}
}

func BenchmarkStoreRoundTrip_500Entries(b *testing.B) {
	ctx := context.Background()
	list := restock.NewList(restock.NewClassifier(catalog.Default(), nil, restock.WithLogger(quiet)))
	for _, name := range benchmarkInputs(500) {
		if _, err := list.AddProduct(ctx, name, nil, catalog.UnitNone); err != nil {
			b.Fatalf("add %q: %v", name, err)
		}
	}
	entries := list.Entries()

	fs, err := mem.NewFS()
	if err != nil {
		b.Fatalf("mem fs: %v", err)
	}
	s := store.New(fs, "restock/list.json", catalog.Default(), quiet)

	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		if err := s.Save(entries); err != nil {
			b.Fatalf("save: %v", err)
		}
		if _, err := s.Load(); err != nil {
			b.Fatalf("load: %v", err)
		}
	}
}
