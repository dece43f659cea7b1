// Command client drives a running auth server through the full end-to-end
// user lifecycle: registration, failed and successful logins, profile access
// with and without a session, logout, and the password-reset flow. It exits
// non-zero on the first step that deviates from the expected contract.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Yemmy22/alx-backend-user-data/internal/logger"
)

const (
	email       = "guillaume@holberton.io"
	password    = "b4l0u"
	newPassword = "t4rt1fl3tt3"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	baseURL := flag.String("a", "http://localhost:8080", "base URL of the auth server")
	sessionName := flag.String("session-name", "_my_session_id", "name of the session cookie")
	flag.Parse()

	log := logger.NewRedactedLogger("auth-client", "password", "new_password")

	f := &flow{
		client: resty.New().
			SetBaseURL(strings.TrimRight(*baseURL, "/")).
			SetTimeout(15 * time.Second),
		sessionName: *sessionName,
	}

	ctx := context.Background()

	steps := []struct {
		name string
		run  func(ctx context.Context) error
	}{
		{name: "register user", run: f.registerUser},
		{name: "register duplicate rejected", run: f.registerDuplicate},
		{name: "login with wrong password rejected", run: f.loginWrongPassword},
		{name: "profile without session rejected", run: f.profileUnlogged},
		{name: "login", run: f.login},
		{name: "profile with session", run: f.profileLogged},
		{name: "logout", run: f.logout},
		{name: "profile after logout rejected", run: f.profileUnlogged},
		{name: "issue reset token", run: f.issueResetToken},
		{name: "update password", run: f.updatePassword},
		{name: "login with new password", run: f.loginNewPassword},
	}

	for _, step := range steps {
		if err := step.run(ctx); err != nil {
			log.Fatal().Err(err).Str("step", step.name).Msg("flow failed")
		}

		log.Info().Str("step", step.name).Msg("ok")
	}

	log.Info().Msg("all steps passed")
}

// flow holds the state threaded through the scripted steps: the session
// cookie captured at login and the reset token captured from the reset
// endpoint.
type flow struct {
	client      *resty.Client
	sessionName string

	sessionID  string
	resetToken string
}

func (f *flow) registerUser(ctx context.Context) error {
	var body struct {
		Email   string `json:"email"`
		Message string `json:"message"`
	}

	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&body).
		Post("/api/user/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("register: unexpected status %d", resp.StatusCode())
	}
	if body.Email != email || body.Message != "user created" {
		return fmt.Errorf("register: unexpected payload %+v", body)
	}

	return nil
}

func (f *flow) registerDuplicate(ctx context.Context) error {
	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email, "password": password}).
		Post("/api/user/register")
	if err != nil {
		return fmt.Errorf("duplicate register request: %w", err)
	}
	if resp.StatusCode() != http.StatusBadRequest {
		return fmt.Errorf("duplicate register: expected 400, got %d", resp.StatusCode())
	}

	return nil
}

func (f *flow) loginWrongPassword(ctx context.Context) error {
	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email, "password": "WrongPwd"}).
		Post("/api/user/login")
	if err != nil {
		return fmt.Errorf("wrong-password login request: %w", err)
	}
	if resp.StatusCode() != http.StatusUnauthorized {
		return fmt.Errorf("wrong-password login: expected 401, got %d", resp.StatusCode())
	}

	return nil
}

func (f *flow) login(ctx context.Context) error {
	return f.loginWith(ctx, password)
}

func (f *flow) loginNewPassword(ctx context.Context) error {
	return f.loginWith(ctx, newPassword)
}

func (f *flow) loginWith(ctx context.Context, pwd string) error {
	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email, "password": pwd}).
		Post("/api/user/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("login: unexpected status %d", resp.StatusCode())
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == f.sessionName {
			f.sessionID = cookie.Value
		}
	}
	if f.sessionID == "" {
		return fmt.Errorf("login: no %q cookie in response", f.sessionName)
	}

	return nil
}

func (f *flow) profileUnlogged(ctx context.Context) error {
	resp, err := f.client.R().
		SetContext(ctx).
		Get("/api/user/profile")
	if err != nil {
		return fmt.Errorf("anonymous profile request: %w", err)
	}
	if resp.StatusCode() != http.StatusUnauthorized {
		return fmt.Errorf("anonymous profile: expected 401, got %d", resp.StatusCode())
	}

	return nil
}

func (f *flow) profileLogged(ctx context.Context) error {
	var body struct {
		Email string `json:"email"`
	}

	resp, err := f.client.R().
		SetContext(ctx).
		SetCookie(&http.Cookie{Name: f.sessionName, Value: f.sessionID}).
		SetResult(&body).
		Get("/api/user/profile")
	if err != nil {
		return fmt.Errorf("profile request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("profile: unexpected status %d", resp.StatusCode())
	}
	if body.Email != email {
		return fmt.Errorf("profile: unexpected email %q", body.Email)
	}

	return nil
}

func (f *flow) logout(ctx context.Context) error {
	resp, err := f.client.R().
		SetContext(ctx).
		SetCookie(&http.Cookie{Name: f.sessionName, Value: f.sessionID}).
		Delete("/api/user/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if resp.StatusCode() != http.StatusNoContent {
		return fmt.Errorf("logout: expected 204, got %d", resp.StatusCode())
	}

	f.sessionID = ""

	return nil
}

func (f *flow) issueResetToken(ctx context.Context) error {
	var body struct {
		Email      string `json:"email"`
		ResetToken string `json:"reset_token"`
	}

	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email}).
		SetResult(&body).
		Post("/api/user/reset_password")
	if err != nil {
		return fmt.Errorf("reset token request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("reset token: unexpected status %d", resp.StatusCode())
	}
	if body.ResetToken == "" {
		return fmt.Errorf("reset token: empty token in response")
	}

	f.resetToken = body.ResetToken

	return nil
}

func (f *flow) updatePassword(ctx context.Context) error {
	var body struct {
		Email   string `json:"email"`
		Message string `json:"message"`
	}

	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"email":        email,
			"reset_token":  f.resetToken,
			"new_password": newPassword,
		}).
		SetResult(&body).
		Put("/api/user/reset_password")
	if err != nil {
		return fmt.Errorf("update password request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("update password: unexpected status %d", resp.StatusCode())
	}
	if body.Message != "Password updated" {
		return fmt.Errorf("update password: unexpected payload %+v", body)
	}

	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
