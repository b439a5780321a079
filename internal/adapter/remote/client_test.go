package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/HenriqueMichelini/craftalism-economy-sub001/internal/core/domain"
	"github.com/HenriqueMichelini/craftalism-economy-sub001/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient(srv.URL, 2*time.Second, 5*time.Second, logger.NewWithWriter("error", os.Stderr))
	return c, srv
}

func kindOf(t *testing.T, err error) Kind {
	t.Helper()
	var re *Error
	require.True(t, errors.As(err, &re), "expected *remote.Error, got %v", err)
	return re.Kind
}

func TestGetPlayer_Success(t *testing.T) {
	id := uuid.New()
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/players/"+id.String(), r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		json.NewEncoder(w).Encode(domain.Player{ID: id, Name: "steve", CreatedAt: time.Now().UTC()})
	}))

	p, err := c.GetPlayer(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, p.ID)
	assert.Equal(t, "steve", p.Name)
}

func TestGetPlayerByName_Success(t *testing.T) {
	id := uuid.New()
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/players/steve", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		json.NewEncoder(w).Encode(domain.Player{ID: id, Name: "steve", CreatedAt: time.Now().UTC()})
	}))

	p, err := c.GetPlayerByName(context.Background(), "steve")
	require.NoError(t, err)
	assert.Equal(t, id, p.ID)
	assert.Equal(t, "steve", p.Name)
}

func TestGetPlayerByName_EscapesName(t *testing.T) {
	id := uuid.New()
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/players/a%2Fb", r.URL.RawPath)
		json.NewEncoder(w).Encode(domain.Player{ID: id, Name: "a/b", CreatedAt: time.Now().UTC()})
	}))

	p, err := c.GetPlayerByName(context.Background(), "a/b")
	require.NoError(t, err)
	assert.Equal(t, "a/b", p.Name)
}

func TestGetPlayerByName_NotFound(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := c.GetPlayerByName(context.Background(), "nobody")
	assert.Equal(t, KindNotFound, kindOf(t, err))
	assert.True(t, IsNotFound(err))
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		status    int
		kind      Kind
		retryable bool
	}{
		{http.StatusBadRequest, KindBadRequest, false},
		{http.StatusNotFound, KindNotFound, false},
		{http.StatusRequestTimeout, KindTimeout, true},
		{http.StatusTooManyRequests, KindRateLimited, true},
		{http.StatusInternalServerError, KindServerError, true},
		{http.StatusBadGateway, KindServerError, true},
		{http.StatusTeapot, KindUnexpectedStatus, false},
		{http.StatusConflict, KindUnexpectedStatus, false},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))

			_, err := c.GetBalance(context.Background(), uuid.New())
			require.Error(t, err)

			var re *Error
			require.True(t, errors.As(err, &re))
			assert.Equal(t, tt.kind, re.Kind)
			assert.Equal(t, tt.status, re.Status)
			assert.Equal(t, tt.retryable, re.Retryable())
		})
	}
}

func TestNullBody_IsMalformedResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"null literal", "null"},
		{"empty body", ""},
		{"whitespace", "  \n "},
		{"invalid json", "{nope"},
		{"zero entity", "{}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(tt.body))
			}))

			_, err := c.GetPlayer(context.Background(), uuid.New())
			assert.Equal(t, KindMalformedResponse, kindOf(t, err))
		})
	}
}

func TestTimeout_MapsToKindTimeout(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.GetBalance(ctx, uuid.New())
	require.Error(t, err)
	assert.Equal(t, KindTimeout, kindOf(t, err))

	var re *Error
	require.True(t, errors.As(err, &re))
	assert.True(t, re.Retryable())
}

func TestGetOrCreatePlayer_CreatesOnlyOnNotFound(t *testing.T) {
	id := uuid.New()
	var creates atomic.Int64
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			creates.Add(1)
			var req struct {
				ID   uuid.UUID `json:"id"`
				Name string    `json:"name"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(domain.Player{ID: req.ID, Name: req.Name, CreatedAt: time.Now().UTC()})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))

	p, err := c.GetOrCreatePlayer(context.Background(), id, "steve")
	require.NoError(t, err)
	assert.Equal(t, id, p.ID)
	assert.Equal(t, int64(1), creates.Load())
}

func TestGetOrCreatePlayer_NoCreateOnOtherFailures(t *testing.T) {
	statuses := []int{
		http.StatusInternalServerError,
		http.StatusTooManyRequests,
		http.StatusBadRequest,
	}
	for _, status := range statuses {
		t.Run(http.StatusText(status), func(t *testing.T) {
			var creates atomic.Int64
			c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method == http.MethodPost {
					creates.Add(1)
					return
				}
				w.WriteHeader(status)
			}))

			_, err := c.GetOrCreatePlayer(context.Background(), uuid.New(), "steve")
			require.Error(t, err)
			assert.Equal(t, int64(0), creates.Load(), "a %d fetch must not trigger a create", status)
		})
	}
}

func TestGetOrCreateBalance_CreatesWithInitial(t *testing.T) {
	id := uuid.New()
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			var req balancePayload
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, int64(500000), req.Balance)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(req)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))

	s, err := c.GetOrCreateBalance(context.Background(), id, 500000)
	require.NoError(t, err)
	assert.Equal(t, id, s.AccountID)
	assert.Equal(t, int64(500000), s.Balance)
	assert.False(t, s.RetrievedAt.IsZero())
}

func TestDepositWithdraw_Paths(t *testing.T) {
	id := uuid.New()
	var gotPaths []string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPaths = append(gotPaths, r.URL.Path)
		json.NewEncoder(w).Encode(balancePayload{AccountID: id, Balance: 77})
	}))

	_, err := c.Deposit(context.Background(), id, 10)
	require.NoError(t, err)
	_, err = c.Withdraw(context.Background(), id, 10)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/balances/" + id.String() + "/deposit",
		"/balances/" + id.String() + "/withdraw",
	}, gotPaths)
}

func TestRegisterTransaction(t *testing.T) {
	from, to := uuid.New(), uuid.New()
	txID := uuid.New()
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transactions", r.URL.Path)
		var req struct {
			From   uuid.UUID `json:"from"`
			To     uuid.UUID `json:"to"`
			Amount int64     `json:"amount"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(domain.Transaction{
			ID: txID, From: req.From, To: req.To, Amount: req.Amount, CreatedAt: time.Now().UTC(),
		})
	}))

	txn, err := c.RegisterTransaction(context.Background(), from, to, 30000)
	require.NoError(t, err)
	assert.Equal(t, txID, txn.ID)
	assert.Equal(t, from, txn.From)
	assert.Equal(t, to, txn.To)
	assert.Equal(t, int64(30000), txn.Amount)
}

func TestTransportFailure_IsRetryable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // client now dials a dead address

	c := NewClient(srv.URL, time.Second, 2*time.Second, logger.NewWithWriter("error", os.Stderr))
	_, err := c.GetPlayer(context.Background(), uuid.New())
	require.Error(t, err)

	var re *Error
	require.True(t, errors.As(err, &re))
	assert.True(t, re.Retryable())
}
