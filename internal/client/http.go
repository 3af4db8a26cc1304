package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"baseconv/internal/domain"
	"baseconv/internal/radix"
)

// HTTP talks to a baseconvd server.
type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for the server at base, e.g. http://127.0.0.1:8080.
func NewHTTP(base string, hc *http.Client) *HTTP {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: hc}
}

// apiError is the JSON body of a non-2xx reply.
type apiError struct {
	Error string `json:"error"`
}

func (c *HTTP) Bases(ctx context.Context) ([]domain.BaseDescriptor, error) {
	var out []domain.BaseDescriptor
	if err := c.getJSON(ctx, "/api/bases", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTP) Validate(ctx context.Context, value string, base domain.Base) (domain.Validation, error) {
	q := url.Values{"value": {value}, "base": {base.String()}}
	var out domain.Validation
	if err := c.getJSON(ctx, "/api/validate", q, &out); err != nil {
		return domain.Validation{}, err
	}
	return out, nil
}

func (c *HTTP) Convert(ctx context.Context, value string, from, to domain.Base) (domain.Conversion, error) {
	q := url.Values{"value": {value}, "from": {from.String()}, "to": {to.String()}}
	var out domain.Conversion
	if err := c.getJSON(ctx, "/api/convert", q, &out); err != nil {
		return domain.Conversion{}, err
	}
	return out, nil
}

func (c *HTTP) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	u := c.Base + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		var body apiError
		_ = json.NewDecoder(resp.Body).Decode(&body)
		if resp.StatusCode == http.StatusUnprocessableEntity {
			return fmt.Errorf("%w: %s", radix.ErrInvalidNumber, body.Error)
		}
		if body.Error != "" {
			return fmt.Errorf("get %s: %s: %s", path, resp.Status, body.Error)
		}
		return fmt.Errorf("get %s: %s", path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

var _ domain.ConverterClient = (*HTTP)(nil)
