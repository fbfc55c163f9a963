package share

import (
	"fmt"
	"net/url"
	"strings"
)

// QueryParam is the URL query key carrying the token.
const QueryParam = "list"

// BuildURL appends token to base as the list query parameter.
func BuildURL(base, token string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(base))
	if err != nil {
		return "", fmt.Errorf("parsing share base URL: %w", err)
	}
	q := u.Query()
	q.Set(QueryParam, token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// TokenFromInput accepts either a bare token or a URL carrying one.
func TokenFromInput(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", ErrNothingToDecode
	}
	if !strings.Contains(input, QueryParam+"=") {
		return input, nil
	}

	if u, err := url.Parse(input); err == nil {
		if token := u.Query().Get(QueryParam); token != "" {
			return token, nil
		}
	}

	// Fall back to a plain cut for inputs url.Parse rejects.
	_, after, _ := strings.Cut(input, QueryParam+"=")
	token, _, _ := strings.Cut(after, "&")
	if unescaped, err := url.QueryUnescape(token); err == nil {
		token = unescaped
	}
	if token = strings.TrimSpace(token); token == "" {
		return "", ErrNothingToDecode
	}
	return token, nil
}
