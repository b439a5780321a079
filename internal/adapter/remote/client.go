// Package remote implements the client protocol against the remote
// balance/player/transaction service. Transport failures and HTTP status
// codes are mapped to a typed error taxonomy before any caller sees them.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/HenriqueMichelini/craftalism-economy-sub001/internal/core/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Response bodies above this size indicate a misbehaving service.
const maxBodyBytes = 1 << 20

// Client talks JSON over HTTP to the remote economy service. It is safe for
// concurrent use.
type Client struct {
	base string
	http *http.Client
	log  zerolog.Logger
}

// NewClient builds a client for the given base URL. connectTimeout bounds
// dialing, requestTimeout bounds the whole exchange.
func NewClient(baseURL string, connectTimeout, requestTimeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		base: baseURL,
		http: &http.Client{
			Timeout: requestTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: connectTimeout}).DialContext,
			},
		},
		log: log,
	}
}

// --- Players ---

func (c *Client) GetPlayer(ctx context.Context, id uuid.UUID) (domain.Player, error) {
	var p domain.Player
	err := c.do(ctx, http.MethodGet, "/players/"+id.String(), "GET /players/{id}", nil, &p)
	if err != nil {
		return domain.Player{}, err
	}
	if p.ID == uuid.Nil {
		return domain.Player{}, &Error{Kind: KindMalformedResponse, Op: "GET /players/{id}"}
	}
	return p, nil
}

func (c *Client) GetPlayerByName(ctx context.Context, name string) (domain.Player, error) {
	var p domain.Player
	err := c.do(ctx, http.MethodGet, "/players/"+url.PathEscape(name), "GET /players/{name}", nil, &p)
	if err != nil {
		return domain.Player{}, err
	}
	if p.ID == uuid.Nil {
		return domain.Player{}, &Error{Kind: KindMalformedResponse, Op: "GET /players/{name}"}
	}
	return p, nil
}

func (c *Client) CreatePlayer(ctx context.Context, id uuid.UUID, name string) (domain.Player, error) {
	body := struct {
		ID   uuid.UUID `json:"id"`
		Name string    `json:"name"`
	}{ID: id, Name: name}

	var p domain.Player
	err := c.do(ctx, http.MethodPost, "/players", "POST /players", body, &p)
	if err != nil {
		return domain.Player{}, err
	}
	if p.ID == uuid.Nil {
		return domain.Player{}, &Error{Kind: KindMalformedResponse, Op: "POST /players"}
	}
	return p, nil
}

// GetOrCreatePlayer fetches the player, creating it only when the fetch
// reports not-found. Any other fetch failure propagates unchanged so that
// transient faults can never trigger duplicate-creation attempts.
func (c *Client) GetOrCreatePlayer(ctx context.Context, id uuid.UUID, name string) (domain.Player, error) {
	p, err := c.GetPlayer(ctx, id)
	if err == nil {
		return p, nil
	}
	if !IsNotFound(err) {
		return domain.Player{}, err
	}
	c.log.Debug().Str("player_id", id.String()).Msg("player absent remotely, creating")
	return c.CreatePlayer(ctx, id, name)
}

// --- Balances ---

// balancePayload is the wire form of a remote balance record.
type balancePayload struct {
	AccountID uuid.UUID `json:"account_id"`
	Balance   int64     `json:"balance"`
}

func (p balancePayload) snapshot() domain.BalanceSnapshot {
	return domain.BalanceSnapshot{
		AccountID:   p.AccountID,
		Balance:     p.Balance,
		RetrievedAt: time.Now().UTC(),
	}
}

func (c *Client) GetBalance(ctx context.Context, id uuid.UUID) (domain.BalanceSnapshot, error) {
	var p balancePayload
	err := c.do(ctx, http.MethodGet, "/balances/"+id.String(), "GET /balances/{id}", nil, &p)
	if err != nil {
		return domain.BalanceSnapshot{}, err
	}
	if p.AccountID == uuid.Nil {
		return domain.BalanceSnapshot{}, &Error{Kind: KindMalformedResponse, Op: "GET /balances/{id}"}
	}
	return p.snapshot(), nil
}

func (c *Client) CreateBalance(ctx context.Context, id uuid.UUID, initial int64) (domain.BalanceSnapshot, error) {
	body := balancePayload{AccountID: id, Balance: initial}

	var p balancePayload
	err := c.do(ctx, http.MethodPost, "/balances", "POST /balances", body, &p)
	if err != nil {
		return domain.BalanceSnapshot{}, err
	}
	if p.AccountID == uuid.Nil {
		return domain.BalanceSnapshot{}, &Error{Kind: KindMalformedResponse, Op: "POST /balances"}
	}
	return p.snapshot(), nil
}

// GetOrCreateBalance mirrors GetOrCreatePlayer for balance records.
func (c *Client) GetOrCreateBalance(ctx context.Context, id uuid.UUID, initial int64) (domain.BalanceSnapshot, error) {
	s, err := c.GetBalance(ctx, id)
	if err == nil {
		return s, nil
	}
	if !IsNotFound(err) {
		return domain.BalanceSnapshot{}, err
	}
	c.log.Debug().Str("account_id", id.String()).Msg("balance absent remotely, creating")
	return c.CreateBalance(ctx, id, initial)
}

func (c *Client) Deposit(ctx context.Context, id uuid.UUID, amount int64) (domain.BalanceSnapshot, error) {
	return c.balanceMutation(ctx, id, amount, "deposit")
}

func (c *Client) Withdraw(ctx context.Context, id uuid.UUID, amount int64) (domain.BalanceSnapshot, error) {
	return c.balanceMutation(ctx, id, amount, "withdraw")
}

func (c *Client) balanceMutation(ctx context.Context, id uuid.UUID, amount int64, verb string) (domain.BalanceSnapshot, error) {
	op := fmt.Sprintf("POST /balances/{id}/%s", verb)
	body := struct {
		Amount int64 `json:"amount"`
	}{Amount: amount}

	var p balancePayload
	err := c.do(ctx, http.MethodPost, "/balances/"+id.String()+"/"+verb, op, body, &p)
	if err != nil {
		return domain.BalanceSnapshot{}, err
	}
	if p.AccountID == uuid.Nil {
		return domain.BalanceSnapshot{}, &Error{Kind: KindMalformedResponse, Op: op}
	}
	return p.snapshot(), nil
}

// --- Transactions ---

func (c *Client) RegisterTransaction(ctx context.Context, from, to uuid.UUID, amount int64) (domain.Transaction, error) {
	body := struct {
		From   uuid.UUID `json:"from"`
		To     uuid.UUID `json:"to"`
		Amount int64     `json:"amount"`
	}{From: from, To: to, Amount: amount}

	var txn domain.Transaction
	err := c.do(ctx, http.MethodPost, "/transactions", "POST /transactions", body, &txn)
	if err != nil {
		return domain.Transaction{}, err
	}
	if txn.ID == uuid.Nil {
		return domain.Transaction{}, &Error{Kind: KindMalformedResponse, Op: "POST /transactions"}
	}
	return txn, nil
}

// --- Exchange plumbing ---

func (c *Client) do(ctx context.Context, method, path, op string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindBadRequest, Op: op, Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return &Error{Kind: KindBadRequest, Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: classifyTransport(err), Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &Error{Kind: KindTransport, Op: op, Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(op, resp.StatusCode)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return &Error{Kind: KindMalformedResponse, Op: op, Status: resp.StatusCode}
	}
	if out != nil {
		if err := json.Unmarshal(trimmed, out); err != nil {
			return &Error{Kind: KindMalformedResponse, Op: op, Status: resp.StatusCode, Err: err}
		}
	}
	return nil
}

// statusError applies the uniform status → taxonomy mapping.
func statusError(op string, status int) *Error {
	var kind Kind
	switch {
	case status == http.StatusBadRequest:
		kind = KindBadRequest
	case status == http.StatusNotFound:
		kind = KindNotFound
	case status == http.StatusRequestTimeout:
		kind = KindTimeout
	case status == http.StatusTooManyRequests:
		kind = KindRateLimited
	case status >= 500 && status <= 599:
		kind = KindServerError
	default:
		kind = KindUnexpectedStatus
	}
	return &Error{Kind: kind, Op: op, Status: status}
}

func classifyTransport(err error) Kind {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	return KindTransport
}
