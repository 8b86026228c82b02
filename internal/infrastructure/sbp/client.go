package sbp

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// Client forwards payment initiations to the SBP (Fast Payment System)
// gateway. The gateway does all the heavy lifting; this is a thin signed
// pass-through.
type Client struct {
	gatewayURL string
	merchant   string
	terminal   string
	httpClient *http.Client
}

func NewClient(gatewayURL, merchant, terminal string) *Client {
	return &Client{
		gatewayURL: gatewayURL,
		merchant:   merchant,
		terminal:   terminal,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// CreateTransactionInput is the client-supplied part of the gateway payload.
type CreateTransactionInput struct {
	Amount        float64
	Description   string
	ClientBackURL string
	UserIP        string
	UserInfo      map[string]any
}

type transactionPayload struct {
	OrderID       string `json:"orderId"`
	Amount        string `json:"amount"`
	Terminal      string `json:"terminal"`
	Merchant      string `json:"merchant"`
	Description   string `json:"description"`
	ClientBackURL string `json:"clientBackUrl"`
	UserIP        string `json:"userIp"`
	TokenType     string `json:"tokenType"`
	Token         string `json:"token"`
}

// CreateTransaction posts a transaction to the gateway and returns its raw
// JSON response. The token field is the base64 of the user info blob, which
// is what the gateway expects for SBP.
func (c *Client) CreateTransaction(ctx context.Context, in CreateTransactionInput) (json.RawMessage, error) {
	userInfo, err := json.Marshal(map[string]any{"userInfo": in.UserInfo})
	if err != nil {
		return nil, err
	}
	payload := transactionPayload{
		OrderID:       strconv.FormatInt(time.Now().UnixMilli(), 10),
		Amount:        fmt.Sprintf("%.2f", in.Amount),
		Terminal:      c.terminal,
		Merchant:      c.merchant,
		Description:   in.Description,
		ClientBackURL: in.ClientBackURL,
		UserIP:        in.UserIP,
		TokenType:     "SBP",
		Token:         base64.StdEncoding.EncodeToString(userInfo),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.gatewayURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("gateway returned %d: %s", resp.StatusCode, respBody)
	}
	return respBody, nil
}
