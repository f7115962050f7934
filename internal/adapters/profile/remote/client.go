// Package remote trae el perfil ambiental del usuario desde el servicio de
// perfiles de la plataforma (el mismo que consumen los demás cálculos).
// Implementa profile.Provider.
package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"glucose-iob/internal/domain/profile"
	"glucose-iob/internal/platform/httpclient"
)

var (
	ErrNotConfigured = errors.New("profile client not configured")
	ErrUpstream      = errors.New("profile upstream error")
)

type Config struct {
	BaseURL string
	APIKey  string

	// Opcional: nombre del header donde se manda la API key.
	// Si está vacío, se usa "X-Api-Key".
	APIKeyHeader string
	Timeout      time.Duration
}

type Client struct {
	http         *httpclient.Client
	apiKey       string
	apiKeyHeader string
}

func NewClient(cfg Config) (*Client, error) {
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "X-Api-Key"
	}

	hc, err := httpclient.NewWithBaseURL(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}

	return &Client{
		http:         hc,
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: h,
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.http.BaseURL != ""
}

// profileResponse es el subset del perfil que este servicio necesita.
type profileResponse struct {
	DIAHours float64 `json:"dia"`
}

// Current trae el perfil activo del usuario. Usuario sin perfil => (nil, nil);
// el motor de IOB cae entonces a sus defaults.
func (c *Client) Current(ctx context.Context, userID string) (*profile.AmbientProfile, error) {
	if !c.IsConfigured() {
		return nil, ErrNotConfigured
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, errors.New("userID required")
	}

	headers := map[string]string{}
	if c.apiKey != "" {
		headers[c.apiKeyHeader] = c.apiKey
	}

	var out profileResponse
	path := "/v1/profiles/current?user_id=" + url.QueryEscape(userID)
	if err := c.http.DoJSON(ctx, http.MethodGet, path, headers, nil, &out); err != nil {
		var he *httpclient.HTTPError
		if errors.As(err, &he) && he.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if out.DIAHours <= 0 {
		// Perfil sin DIA configurado: tratarlo como ausente.
		return nil, nil
	}
	return &profile.AmbientProfile{DIAHours: out.DIAHours}, nil
}
