package share_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tayloree/restock/internal/share"
)

func TestBuildURL(t *testing.T) {
	got, err := share.BuildURL("https://restock.local/", "dG9tYXRl")
	require.NoError(t, err)
	assert.Equal(t, "https://restock.local/?list=dG9tYXRl", got)

	got, err = share.BuildURL("https://restock.local/app?lang=fr", "a-b_c")
	require.NoError(t, err)
	assert.Equal(t, "https://restock.local/app?lang=fr&list=a-b_c", got)
}

func TestBuildURL_InvalidBase(t *testing.T) {
	_, err := share.BuildURL("http://[::1", "tok")
	assert.Error(t, err)
}

func TestTokenFromInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "bare token", input: "  dG9tYXRl ", want: "dG9tYXRl"},
		{name: "share url", input: "https://restock.local/?list=dG9tYXRl", want: "dG9tYXRl"},
		{name: "extra params", input: "https://restock.local/?lang=fr&list=abc&x=1", want: "abc"},
		{name: "escaped padding", input: "https://restock.local/?list=YWJj%3D", want: "YWJj="},
		{name: "unparseable url", input: "http://[bad?list=abc&y=2", want: "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := share.TokenFromInput(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenFromInput_Empty(t *testing.T) {
	_, err := share.TokenFromInput("  ")
	assert.ErrorIs(t, err, share.ErrNothingToDecode)

	_, err = share.TokenFromInput("https://restock.local/?list=")
	assert.ErrorIs(t, err, share.ErrNothingToDecode)
}

func TestBuildURL_TokenFromInputRoundTrip(t *testing.T) {
	link, err := share.BuildURL("https://restock.local/", "YWJj+/=")
	require.NoError(t, err)

	got, err := share.TokenFromInput(link)
	require.NoError(t, err)
	assert.Equal(t, "YWJj+/=", got)
}
