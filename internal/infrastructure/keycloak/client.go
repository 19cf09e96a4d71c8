// Package keycloak implements the privileged side channel for claims
// synchronization against the Keycloak Admin API.
package keycloak

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"

	"portal-server/internal/domain/identity"
)

// Attribute names mapped into the app_metadata token namespace by the realm's
// protocol mapper.
const (
	attrRole      = "portal_role"
	attrPartnerID = "portal_partner_id"
)

// Client wraps the Keycloak Admin and Token APIs. All admin calls run under a
// service-account token and inside a circuit breaker; a tripped breaker makes
// claim rewrites fail fast instead of stacking timeouts on live requests.
type Client struct {
	baseURL             string
	realm               string
	backendClientID     string
	backendClientSecret string
	httpClient          *http.Client
	logger              zerolog.Logger
	breaker             *gobreaker.CircuitBreaker
	syncTimeout         time.Duration
}

var _ identity.SideChannel = (*Client)(nil)

// NewClient constructs a Keycloak client.
func NewClient(baseURL, realm, backendClientID, backendClientSecret string, syncTimeout time.Duration, httpClient *http.Client, logger zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if syncTimeout <= 0 {
		syncTimeout = 10 * time.Second
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "keycloak-admin",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")
		},
	})

	return &Client{
		baseURL:             strings.TrimRight(baseURL, "/"),
		realm:               realm,
		backendClientID:     backendClientID,
		backendClientSecret: backendClientSecret,
		httpClient:          httpClient,
		logger:              logger,
		breaker:             breaker,
		syncTimeout:         syncTimeout,
	}
}

// TokenSet bundles token information returned by Keycloak.
type TokenSet struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Scope       string `json:"scope,omitempty"`
}

// UpdateApplicationClaims rewrites the role-bearing user attributes so the
// next issued token carries the store's assignment.
func (c *Client) UpdateApplicationClaims(ctx context.Context, subject string, role identity.Role, partnerID *uuid.UUID) error {
	_, err := c.breaker.Execute(func() (interface{}, error) {
		ctx, cancel := context.WithTimeout(ctx, c.syncTimeout)
		defer cancel()

		token, err := c.serviceAccountToken(ctx)
		if err != nil {
			return nil, err
		}

		existing, err := c.getUser(ctx, token.AccessToken, subject)
		if err != nil {
			return nil, err
		}

		attributes := mergeAttributes(existing)
		attributes[attrRole] = []string{string(role)}
		if partnerID != nil {
			attributes[attrPartnerID] = []string{partnerID.String()}
		} else {
			delete(attributes, attrPartnerID)
		}

		update := map[string]any{"attributes": attributes}
		body, err := json.Marshal(update)
		if err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.adminEndpoint("/users/"+url.PathEscape(subject)), bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+token.AccessToken)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 300 {
			payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return nil, fmt.Errorf("update user attributes failed: %s", strings.TrimSpace(string(payload)))
		}
		return nil, nil
	})
	return err
}

// RevokeSessions logs the user out of every active session so the next token
// is minted from the rewritten attributes.
func (c *Client) RevokeSessions(ctx context.Context, subject string) error {
	_, err := c.breaker.Execute(func() (interface{}, error) {
		ctx, cancel := context.WithTimeout(ctx, c.syncTimeout)
		defer cancel()

		token, err := c.serviceAccountToken(ctx)
		if err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.adminEndpoint("/users/"+url.PathEscape(subject)+"/logout"), nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+token.AccessToken)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 300 {
			payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return nil, fmt.Errorf("revoke sessions failed: %s", strings.TrimSpace(string(payload)))
		}
		return nil, nil
	})
	return err
}

func (c *Client) serviceAccountToken(ctx context.Context) (*TokenSet, error) {
	values := url.Values{}
	values.Set("grant_type", "client_credentials")
	values.Set("client_id", c.backendClientID)
	if c.backendClientSecret != "" {
		values.Set("client_secret", c.backendClientSecret)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenEndpoint(), strings.NewReader(values.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("service account token request failed: %s", strings.TrimSpace(string(payload)))
	}

	var token TokenSet
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, err
	}
	return &token, nil
}

func (c *Client) getUser(ctx context.Context, adminToken, userID string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.adminEndpoint("/users/"+url.PathEscape(userID)), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+adminToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("get user failed: %s", strings.TrimSpace(string(payload)))
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body, nil
}

// mergeAttributes preserves the user's unrelated attributes across a rewrite.
func mergeAttributes(existing map[string]any) map[string][]string {
	attributes := map[string][]string{}
	raw, ok := existing["attributes"].(map[string]any)
	if !ok {
		return attributes
	}
	for key, value := range raw {
		items, ok := value.([]any)
		if !ok {
			continue
		}
		var out []string
		for _, item := range items {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		if len(out) > 0 {
			attributes[key] = out
		}
	}
	return attributes
}

func (c *Client) adminEndpoint(p string) string {
	return c.baseURL + "/admin/realms/" + url.PathEscape(c.realm) + p
}

func (c *Client) tokenEndpoint() string {
	return c.baseURL + "/realms/" + url.PathEscape(c.realm) + "/protocol/openid-connect/token"
}
