package smsgate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// defaultCountryCode код страны, подставляемый для локальных номеров (Босния и Герцеговина)
const defaultCountryCode = "+387"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент SMS-шлюза (Twilio-совместимый REST API)
type Client struct {
	baseURL    string
	accountSID string
	authToken  string
	fromNumber string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента SMS-шлюза
func NewClient(baseURL, accountSID, authToken, fromNumber string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		accountSID: accountSID,
		authToken:  authToken,
		fromNumber: fromNumber,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Send отправляет SMS на указанный номер.
// Номер приводится к формату E.164; локальные номера получают код страны +387.
func (c *Client) Send(ctx context.Context, toPhoneNumber, message string) error {
	if c.accountSID == "" || c.authToken == "" || c.fromNumber == "" {
		return ErrNotConfigured
	}

	to := NormalizePhoneNumber(toPhoneNumber)
	if to == "" {
		return fmt.Errorf("%w: empty phone number", ErrInvalidInput)
	}

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.baseURL, c.accountSID)

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", c.fromNumber)
	form.Set("Body", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.accountSID, c.authToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var result MessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("SMS sent to %s, sid=%s", to, result.SID)
	return nil
}

// NormalizePhoneNumber приводит номер к формату E.164.
// Номера без "+" считаются локальными: ведущий ноль отбрасывается,
// подставляется код страны по умолчанию. Пробелы удаляются.
func NormalizePhoneNumber(phone string) string {
	cleaned := strings.ReplaceAll(strings.TrimSpace(phone), " ", "")
	if cleaned == "" {
		return ""
	}

	if strings.HasPrefix(cleaned, "+") {
		return cleaned
	}

	if strings.HasPrefix(cleaned, "0") {
		return defaultCountryCode + cleaned[1:]
	}
	return defaultCountryCode + cleaned
}
