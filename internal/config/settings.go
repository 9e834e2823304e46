package config

import (
	"errors"
	"time"
)

const (
	defaultPort          = 3000
	defaultMonPort       = 8888
	defaultLogLevel      = "info"
	defaultServiceName   = "messenger-bot"
	defaultGraphAPIURL   = "https://graph.facebook.com/v2.6"
	defaultSendTimeout   = 30 * time.Second
	defaultEventDedupTTL = 10 * time.Minute
	defaultLinkCodeTTL   = 10 * time.Minute
)

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT"`
	MonPort     int    `env:"MON_PORT"`
	EnablePprof bool   `env:"ENABLE_PPROF"`
	LogLevel    string `env:"LOG_LEVEL"`
	ServiceName string `env:"SERVICE_NAME"`

	// AppSecret signs inbound webhook payloads and account linking codes.
	AppSecret string `env:"MESSENGER_APP_SECRET"`
	// ValidationToken is the verify token entered in the webhook setup.
	ValidationToken string `env:"MESSENGER_VALIDATION_TOKEN"`
	// PageAccessToken authenticates calls to the Send API.
	PageAccessToken string `env:"MESSENGER_PAGE_ACCESS_TOKEN"`
	// ServerURL is the public URL of this service, including the protocol.
	ServerURL string `env:"SERVER_URL"`
	NowURL    string `env:"NOW_URL"`

	GraphAPIURL        string        `env:"GRAPH_API_URL"`
	SendTimeout        time.Duration `env:"SEND_TIMEOUT"`
	EventDedupTTL      time.Duration `env:"EVENT_DEDUP_TTL"`
	AccountLinkCodeTTL time.Duration `env:"ACCOUNT_LINK_CODE_TTL"`
}

// ApplyDefaults fills every unset optional field.
func (s *Settings) ApplyDefaults() {
	if s.Port == 0 {
		s.Port = defaultPort
	}
	if s.MonPort == 0 {
		s.MonPort = defaultMonPort
	}
	if s.LogLevel == "" {
		s.LogLevel = defaultLogLevel
	}
	if s.ServiceName == "" {
		s.ServiceName = defaultServiceName
	}
	if s.NowURL != "" {
		// NOW_URL is set by the hosting platform and wins over SERVER_URL.
		s.ServerURL = s.NowURL
	}
	if s.GraphAPIURL == "" {
		s.GraphAPIURL = defaultGraphAPIURL
	}
	if s.SendTimeout <= 0 {
		s.SendTimeout = defaultSendTimeout
	}
	if s.EventDedupTTL <= 0 {
		s.EventDedupTTL = defaultEventDedupTTL
	}
	if s.AccountLinkCodeTTL <= 0 {
		s.AccountLinkCodeTTL = defaultLinkCodeTTL
	}
}

// Validate reports the required values that are missing.
func (s *Settings) Validate() error {
	var errs []error
	if s.AppSecret == "" {
		errs = append(errs, errors.New("MESSENGER_APP_SECRET is required"))
	}
	if s.ValidationToken == "" {
		errs = append(errs, errors.New("MESSENGER_VALIDATION_TOKEN is required"))
	}
	if s.PageAccessToken == "" {
		errs = append(errs, errors.New("MESSENGER_PAGE_ACCESS_TOKEN is required"))
	}
	return errors.Join(errs...)
}
