package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// email request payload for the transactional mail HTTP API
type emailRequest struct {
	From     emailAddress  `json:"from"`
	To       []toRecipient `json:"to"`
	Subject  string        `json:"subject"`
	HtmlBody string        `json:"htmlbody"`
}

type emailAddress struct {
	Address string `json:"address"`
}

type toRecipient struct {
	Email emailWithName `json:"email_address"`
}

type emailWithName struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

// EmailSender delivers mail through an HTTP mail API (ZeptoMail-style).
type EmailSender struct {
	apiURL   string
	apiKey   string
	from     string
	fromName string
	client   *http.Client
}

func NewEmailSender(apiURL, apiKey, from, fromName string) *EmailSender {
	return &EmailSender{
		apiURL:   apiURL,
		apiKey:   apiKey,
		from:     from,
		fromName: fromName,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// Send posts an HTML email to the mail API.
func (s *EmailSender) Send(to, subject, body string) error {
	if s.apiURL == "" || s.apiKey == "" || s.from == "" {
		logrus.Warn("missing email API configuration")
		return fmt.Errorf("missing required email config")
	}

	payload := emailRequest{
		From: emailAddress{Address: s.from},
		To: []toRecipient{
			{
				Email: emailWithName{
					Address: to,
					Name:    s.fromName,
				},
			},
		},
		Subject:  subject,
		HtmlBody: body,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("create email request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("email API error: %s", resp.Status)
	}

	logrus.Infof("email sent to %s", to)
	return nil
}
