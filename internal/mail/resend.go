package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const defaultResendBaseURL = "https://api.resend.com"

// Message is one outbound contact notification.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
	Headers map[string]string
}

// ISender delivers a message and returns the provider's message id.
type ISender interface {
	Send(ctx context.Context, msg *Message) (string, error)
}

type resendClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

type resendSendRequest struct {
	From    string            `json:"from"`
	To      []string          `json:"to"`
	ReplyTo string            `json:"reply_to,omitempty"`
	Subject string            `json:"subject"`
	HTML    string            `json:"html,omitempty"`
	Text    string            `json:"text,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
}

type resendSendResponse struct {
	ID string `json:"id"`
}

// NewResendClient builds a sender backed by the Resend HTTP API.
func NewResendClient(apiKey string) ISender {
	return &resendClient{
		apiKey:  apiKey,
		baseURL: defaultResendBaseURL,
		client:  http.DefaultClient,
	}
}

func (c *resendClient) Send(ctx context.Context, msg *Message) (string, error) {
	endpoint := strings.TrimRight(c.baseURL, "/") + "/emails"
	reqBody := resendSendRequest{
		From:    msg.From,
		To:      []string{msg.To},
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
		Headers: msg.Headers,
	}
	data, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("resend request failed: %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}
	var out resendSendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.ID == "" {
		return "", fmt.Errorf("resend response has no id")
	}
	return out.ID, nil
}
