package httpapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// The server needs no authentication. The oauth routes exist for clients
// that insist on running discovery first; they only advertise that.

type healthResponse struct {
	Status    string `json:"status"`
	Authless  bool   `json:"authless"`
	Timestamp string `json:"timestamp"`
	Server    string `json:"server"`
}

type infoResponse struct {
	Name      string            `json:"name"`
	Version   string            `json:"version"`
	Authless  bool              `json:"authless"`
	Endpoints map[string]string `json:"endpoints"`
}

type authorizationServerResponse struct {
	Issuer                                   string   `json:"issuer"`
	AuthorizationEndpoint                    string   `json:"authorization_endpoint"`
	TokenEndpoint                            string   `json:"token_endpoint"`
	TokenEndpointAuthMethodsSupported        []string `json:"token_endpoint_auth_methods_supported"`
	ResponseTypesSupported                   []string `json:"response_types_supported"`
	GrantTypesSupported                      []string `json:"grant_types_supported"`
	CodeChallengeMethodsSupported            []string `json:"code_challenge_methods_supported"`
	ScopesSupported                          []string `json:"scopes_supported"`
	SubjectTypesSupported                    []string `json:"subject_types_supported"`
	IDTokenSigningAlgValuesSupported         []string `json:"id_token_signing_alg_values_supported"`
	RegistrationEndpoint                     string   `json:"registration_endpoint"`
	RegistrationEndpointAuthMethodsSupported []string `json:"registration_endpoint_auth_methods_supported"`
	Authless                                 bool     `json:"authless"`
	RequireAuthentication                    bool     `json:"require_authentication"`
}

type protectedResourceResponse struct {
	Resource               string   `json:"resource"`
	AuthorizationServers   []string `json:"authorization_servers"`
	ScopesSupported        []string `json:"scopes_supported"`
	BearerMethodsSupported []string `json:"bearer_methods_supported"`
	Authless               bool     `json:"authless"`
	RequireAuthentication  bool     `json:"require_authentication"`
	TokenValidation        string   `json:"token_validation"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Scope       string `json:"scope"`
}

type registrationResponse struct {
	ClientID                string   `json:"client_id"`
	ClientSecret            string   `json:"client_secret"`
	ClientIDIssuedAt        int64    `json:"client_id_issued_at"`
	ClientSecretExpiresAt   int64    `json:"client_secret_expires_at"`
	RedirectURIs            []string `json:"redirect_uris"`
	TokenEndpointAuthMethod string   `json:"token_endpoint_auth_method"`
	GrantTypes              []string `json:"grant_types"`
	ResponseTypes           []string `json:"response_types"`
	Scope                   string   `json:"scope"`
}

func baseURL(c echo.Context) string {
	return c.Scheme() + "://" + c.Request().Host
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{
		Status:    "ok",
		Authless:  true,
		Timestamp: s.now().UTC().Format(time.RFC3339Nano),
		Server:    s.name,
	})
}

func (s *Server) handleInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, infoResponse{
		Name:     s.name,
		Version:  s.version,
		Authless: true,
		Endpoints: map[string]string{
			"mcp":                        PathMCP,
			"sse":                        PathSSE,
			"health":                     PathHealth,
			"oauth_authorization_server": "/.well-known/oauth-authorization-server",
			"oauth_protected_resource":   "/.well-known/oauth-protected-resource",
			"oauth_authorize":            "/oauth/authorize",
			"oauth_token":                "/oauth/token",
		},
	})
}

func (s *Server) handleAuthorizationServer(c echo.Context) error {
	base := baseURL(c)
	return c.JSON(http.StatusOK, authorizationServerResponse{
		Issuer:                                   base,
		AuthorizationEndpoint:                    base + "/oauth/authorize",
		TokenEndpoint:                            base + "/oauth/token",
		TokenEndpointAuthMethodsSupported:        []string{"none", "client_secret_basic", "client_secret_post"},
		ResponseTypesSupported:                   []string{"code", "token"},
		GrantTypesSupported:                      []string{"authorization_code", "client_credentials", "implicit"},
		CodeChallengeMethodsSupported:            []string{"plain", "S256"},
		ScopesSupported:                          []string{"read", "write", "openid"},
		SubjectTypesSupported:                    []string{"public"},
		IDTokenSigningAlgValuesSupported:         []string{"RS256"},
		RegistrationEndpoint:                     base + "/oauth/register",
		RegistrationEndpointAuthMethodsSupported: []string{"none"},
		Authless:                                 true,
		RequireAuthentication:                    false,
	})
}

func (s *Server) handleProtectedResource(c echo.Context) error {
	base := baseURL(c)
	return c.JSON(http.StatusOK, protectedResourceResponse{
		Resource:               base,
		AuthorizationServers:   []string{base},
		ScopesSupported:        []string{"read", "write"},
		BearerMethodsSupported: []string{"header", "query"},
		Authless:               true,
		RequireAuthentication:  false,
		TokenValidation:        "none",
	})
}

func authlessToken() tokenResponse {
	return tokenResponse{
		AccessToken: "authless-token",
		TokenType:   "Bearer",
		ExpiresIn:   3600,
		Scope:       "read write",
	}
}

// redirects straight back when the client names a redirect_uri
func (s *Server) handleAuthorize(c echo.Context) error {
	// Open redirect: any redirect_uri is followed unchecked. Acceptable only
	// while the server is authless and registers no clients.
	if uri := c.QueryParam("redirect_uri"); uri != "" {
		return c.Redirect(http.StatusFound, uri)
	}
	return c.JSON(http.StatusOK, authlessToken())
}

func (s *Server) handleToken(c echo.Context) error {
	return c.JSON(http.StatusOK, authlessToken())
}

func (s *Server) handleRegister(c echo.Context) error {
	return c.JSON(http.StatusOK, registrationResponse{
		ClientID:                "authless-client",
		ClientSecret:            "authless-secret",
		ClientIDIssuedAt:        s.now().Unix(),
		ClientSecretExpiresAt:   0,
		RedirectURIs:            []string{},
		TokenEndpointAuthMethod: "none",
		GrantTypes:              []string{"authorization_code", "client_credentials"},
		ResponseTypes:           []string{"code"},
		Scope:                   "read write",
	})
}
