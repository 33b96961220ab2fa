package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/watergo/tanktrip/internal/pkg/apperr"
	"github.com/watergo/tanktrip/internal/pkg/logger"
	"github.com/watergo/tanktrip/internal/pkg/models"
	"github.com/watergo/tanktrip/services/trips"
)

const verificationCompleted = "VERIFICATION_COMPLETED"

// MessageCentralGW implements the OTPProvider interface against the
// MessageCentral VerifyNow API.
type MessageCentralGW struct {
	cfg    models.OTPConfig
	client *http.Client

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// NewMessageCentralGW creates a new MessageCentral OTP gateway
func NewMessageCentralGW(cfg models.OTPConfig) trips.OTPProvider {
	return &MessageCentralGW{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

type tokenResponse struct {
	Status int    `json:"status"`
	Token  string `json:"token"`
}

type verificationResponse struct {
	ResponseCode int    `json:"responseCode"`
	Message      string `json:"message"`
	Data         struct {
		VerificationID     string `json:"verificationId"`
		VerificationStatus string `json:"verificationStatus"`
		ErrorMessage       string `json:"errorMessage"`
	} `json:"data"`
}

// SendOTP requests an SMS verification and returns the provider's
// verification id for the later validate call.
func (g *MessageCentralGW) SendOTP(ctx context.Context, phoneNumber string) (string, error) {
	token, err := g.authToken(ctx)
	if err != nil {
		return "", err
	}

	q := url.Values{}
	q.Set("countryCode", g.cfg.CountryCode)
	q.Set("flowType", "SMS")
	q.Set("mobileNumber", phoneNumber)
	q.Set("otpLength", strconv.Itoa(g.cfg.CodeLength))

	var resp verificationResponse
	if err := g.call(ctx, http.MethodPost, "/verification/v3/send", q, token, &resp); err != nil {
		return "", err
	}

	if resp.ResponseCode != http.StatusOK || resp.Message != "SUCCESS" {
		return "", apperr.Upstream(fmt.Sprintf("otp send rejected: %s", resp.Data.ErrorMessage), nil)
	}
	return resp.Data.VerificationID, nil
}

// VerifyOTP validates a code against a previously issued verification id.
// A definitive mismatch returns (false, nil); transport and provider
// failures return an error so the caller can fall back.
func (g *MessageCentralGW) VerifyOTP(ctx context.Context, verificationID, code string) (bool, error) {
	token, err := g.authToken(ctx)
	if err != nil {
		return false, err
	}

	q := url.Values{}
	q.Set("verificationId", verificationID)
	q.Set("code", code)

	var resp verificationResponse
	if err := g.call(ctx, http.MethodGet, "/verification/v3/validateOtp", q, token, &resp); err != nil {
		return false, err
	}

	if resp.ResponseCode != http.StatusOK || resp.Message != "SUCCESS" {
		logger.Debug("OTP validation rejected by provider",
			logger.String("verification_id", verificationID),
			logger.String("error", resp.Data.ErrorMessage))
		return false, nil
	}
	return resp.Data.VerificationStatus == verificationCompleted, nil
}

// authToken returns the cached provider token, fetching a fresh one when
// the cache is empty or expired.
func (g *MessageCentralGW) authToken(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.token != "" && time.Now().Before(g.tokenExpiry) {
		return g.token, nil
	}

	q := url.Values{}
	q.Set("customerId", g.cfg.CustomerID)
	q.Set("key", g.cfg.APIPassword)
	q.Set("scope", "NEW")
	q.Set("country", g.cfg.CountryCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		g.cfg.BaseURL+"/auth/v1/authentication/token?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("accept", "*/*")

	httpResp, err := g.client.Do(req)
	if err != nil {
		return "", apperr.Upstream("otp provider token request failed", err)
	}
	defer httpResp.Body.Close()

	var resp tokenResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return "", apperr.Upstream("otp provider token response malformed", err)
	}
	if resp.Status != http.StatusOK || resp.Token == "" {
		return "", apperr.Upstream(fmt.Sprintf("otp provider token rejected: status %d", resp.Status), nil)
	}

	g.token = resp.Token
	g.tokenExpiry = time.Now().Add(time.Duration(g.cfg.TokenTTLHours) * time.Hour)
	return g.token, nil
}

func (g *MessageCentralGW) call(ctx context.Context, method, path string, q url.Values, token string, out *verificationResponse) error {
	req, err := http.NewRequestWithContext(ctx, method, g.cfg.BaseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("authToken", token)

	httpResp, err := g.client.Do(req)
	if err != nil {
		return apperr.Upstream("otp provider request failed", err)
	}
	defer httpResp.Body.Close()

	if err := json.NewDecoder(httpResp.Body).Decode(out); err != nil {
		return apperr.Upstream("otp provider response malformed", err)
	}
	return nil
}
