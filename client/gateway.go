package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// Gateway is the single chokepoint for every network call. It attaches the
// stored bearer credential when present, normalizes the success/error shape
// and logs every failure. It never retries.
type Gateway struct {
	http    *resty.Client
	session *Session
}

func NewGateway(baseURL string, session *Session) *Gateway {
	return &Gateway{
		http:    resty.New().SetBaseURL(baseURL),
		session: session,
	}
}

type messageEnvelope struct {
	Message string `json:"message"`
}

// Call issues an authenticated JSON request and returns the raw success
// payload. Non-2xx responses become *RequestError carrying the server
// message (or a synthesized one), transport failures become *NetworkError.
func (g *Gateway) Call(ctx context.Context, method, endpoint string, body interface{}) (json.RawMessage, error) {
	req := g.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Request-ID", uuid.NewString())

	if token := g.session.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}

	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, endpoint)
	if err != nil {
		log.Printf("API error (%s %s): %v", method, endpoint, err)
		return nil, &NetworkError{Err: err}
	}

	raw := bytes.TrimSpace(resp.Body())

	if resp.IsSuccess() {
		// A 2xx body that is empty or not JSON counts as an empty payload.
		if len(raw) == 0 || !json.Valid(raw) {
			return json.RawMessage("{}"), nil
		}
		return json.RawMessage(raw), nil
	}

	var envelope messageEnvelope
	message := ""
	if json.Unmarshal(raw, &envelope) == nil && envelope.Message != "" {
		message = envelope.Message
	} else {
		message = fmt.Sprintf("request failed with status %d", resp.StatusCode())
	}

	log.Printf("API error (%s %s): %s", method, endpoint, message)
	return nil, &RequestError{Status: resp.StatusCode(), Message: message}
}

// CallMessage issues a mutating call whose success payload is the uniform
// {"message": ...} confirmation and returns that message.
func (g *Gateway) CallMessage(ctx context.Context, method, endpoint string, body interface{}) (string, error) {
	raw, err := g.Call(ctx, method, endpoint, body)
	if err != nil {
		return "", err
	}
	var envelope messageEnvelope
	_ = json.Unmarshal(raw, &envelope)
	return envelope.Message, nil
}
