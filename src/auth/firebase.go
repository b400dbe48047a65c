package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sukhman0345/theCarbonivore/src/applog"
)

// DefaultBaseURL is the Identity Toolkit v1 endpoint prefix.
const DefaultBaseURL = "https://identitytoolkit.googleapis.com/v1"

// FirebaseClient implements Authenticator against the Firebase Identity
// Toolkit REST API.
type FirebaseClient struct {
	// BaseURL may be overridden (tests point it at a local server).
	BaseURL string

	apiKey string
	client *http.Client
}

// NewFirebaseClient builds a client with a bounded request timeout.
func NewFirebaseClient(apiKey string) *FirebaseClient {
	return &FirebaseClient{
		BaseURL: DefaultBaseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type credentialsRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type identityResponse struct {
	IDToken string `json:"idToken"`
	Email   string `json:"email"`
	LocalID string `json:"localId"`
}

type errorEnvelope struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// SignIn exchanges credentials for an identity via accounts:signInWithPassword.
func (c *FirebaseClient) SignIn(ctx context.Context, email, password string) (*Identity, error) {
	return c.credentialCall(ctx, "accounts:signInWithPassword", email, password)
}

// SignUp creates an account via accounts:signUp.
func (c *FirebaseClient) SignUp(ctx context.Context, email, password string) (*Identity, error) {
	return c.credentialCall(ctx, "accounts:signUp", email, password)
}

// SendPasswordReset requests a reset email via accounts:sendOobCode.
func (c *FirebaseClient) SendPasswordReset(ctx context.Context, email string) error {
	body := map[string]string{"requestType": "PASSWORD_RESET", "email": email}
	var out struct {
		Email string `json:"email"`
	}
	return c.post(ctx, "accounts:sendOobCode", body, &out)
}

func (c *FirebaseClient) credentialCall(ctx context.Context, endpoint, email, password string) (*Identity, error) {
	var out identityResponse
	req := credentialsRequest{Email: email, Password: password, ReturnSecureToken: true}
	if err := c.post(ctx, endpoint, req, &out); err != nil {
		return nil, err
	}
	return &Identity{Email: out.Email, UserID: out.LocalID, Token: out.IDToken}, nil
}

func (c *FirebaseClient) post(ctx context.Context, endpoint string, in, out interface{}) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return &Error{Reason: ReasonUnknown, Message: err.Error()}
	}
	url := fmt.Sprintf("%s/%s?key=%s", c.BaseURL, endpoint, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return &Error{Reason: ReasonUnknown, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		applog.Warnf("identity call %s failed: %v", endpoint, err)
		return &Error{Reason: ReasonNetwork, Message: err.Error()}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		var env errorEnvelope
		_ = json.NewDecoder(resp.Body).Decode(&env)
		applog.Debugf("identity call %s rejected: %d %s", endpoint, resp.StatusCode, env.Error.Message)
		return &Error{Reason: mapFirebaseCode(env.Error.Message), Message: env.Error.Message}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Reason: ReasonUnknown, Message: err.Error()}
	}
	return nil
}

// mapFirebaseCode translates Identity Toolkit error strings to reasons.
// WEAK_PASSWORD arrives suffixed with detail text, so match on prefix.
func mapFirebaseCode(code string) Reason {
	switch {
	case code == "EMAIL_NOT_FOUND", code == "INVALID_PASSWORD", code == "INVALID_LOGIN_CREDENTIALS", code == "INVALID_EMAIL":
		return ReasonInvalidCredentials
	case code == "EMAIL_EXISTS":
		return ReasonEmailExists
	case strings.HasPrefix(code, "WEAK_PASSWORD"):
		return ReasonWeakPassword
	case code == "USER_DISABLED":
		return ReasonUserDisabled
	case strings.HasPrefix(code, "TOO_MANY_ATTEMPTS_TRY_LATER"):
		return ReasonTooManyAttempts
	}
	return ReasonUnknown
}
