package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/HenriqueMichelini/craftalism-economy-sub001/internal/adapter/cache"
	"github.com/HenriqueMichelini/craftalism-economy-sub001/internal/adapter/http/dto"
	"github.com/HenriqueMichelini/craftalism-economy-sub001/internal/adapter/remote"
	"github.com/HenriqueMichelini/craftalism-economy-sub001/internal/adapter/storage/memory"
	"github.com/HenriqueMichelini/craftalism-economy-sub001/internal/core/domain"
	"github.com/HenriqueMichelini/craftalism-economy-sub001/internal/core/ports/mocks"
	"github.com/HenriqueMichelini/craftalism-economy-sub001/internal/service"
	"github.com/HenriqueMichelini/craftalism-economy-sub001/pkg/logger"
	"github.com/HenriqueMichelini/craftalism-economy-sub001/pkg/money"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testCodec(t *testing.T) *money.Codec {
	t.Helper()
	codec, err := money.NewCodec("en-US", "$", "ERR")
	require.NoError(t, err)
	return codec
}

func newAccountHandler(t *testing.T) (*AccountHandler, *memory.BalanceStore) {
	t.Helper()
	store := memory.NewBalanceStore(0)
	svc := service.NewAccountService(store, logger.NewWithWriter("error", os.Stderr))
	return NewAccountHandler(svc, nil, testCodec(t)), store
}

func testContext(t *testing.T, method, path string, id uuid.UUID, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	c.Request = httptest.NewRequest(method, path, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	return c, w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "response has no data envelope: %s", w.Body.String())
	return data
}

// --- Account Handler Tests ---

func TestGetBalance_Formatted(t *testing.T) {
	h, store := newAccountHandler(t)
	id := uuid.New()
	store.Set(id, 1005000)

	c, w := testContext(t, http.MethodGet, "/", id, nil)
	h.GetBalance(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, float64(1005000), data["raw"])
	assert.Equal(t, "$100.50", data["formatted"])
}

func TestGetBalance_InvalidUUID(t *testing.T) {
	h, _ := newAccountHandler(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	h.GetBalance(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeposit_TextualAmount(t *testing.T) {
	h, store := newAccountHandler(t)
	id := uuid.New()

	c, w := testContext(t, http.MethodPost, "/", id, dto.AmountRequest{Amount: "1,000.50"})
	h.Deposit(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(10005000), store.Get(id))
}

func TestDeposit_RejectsNonPositive(t *testing.T) {
	h, store := newAccountHandler(t)
	id := uuid.New()

	c, w := testContext(t, http.MethodPost, "/", id, dto.AmountRequest{Amount: "0"})
	h.Deposit(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(0), store.Get(id))
}

func TestDeposit_RejectsFifthDecimal(t *testing.T) {
	h, _ := newAccountHandler(t)

	c, w := testContext(t, http.MethodPost, "/", uuid.New(), dto.AmountRequest{Amount: "10.12345"})
	h.Deposit(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWithdraw_InsufficientFunds(t *testing.T) {
	h, store := newAccountHandler(t)
	id := uuid.New()
	store.Set(id, 5000)

	c, w := testContext(t, http.MethodPost, "/", id, dto.AmountRequest{Amount: "10.00"})
	h.Withdraw(c)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.Equal(t, int64(5000), store.Get(id))
}

func TestTransfer_MovesFunds(t *testing.T) {
	h, store := newAccountHandler(t)
	from, to := uuid.New(), uuid.New()
	store.Set(from, 100000)

	c, w := testContext(t, http.MethodPost, "/", from, dto.TransferRequest{
		To:     to.String(),
		Amount: "3.00",
	})
	h.Transfer(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(70000), store.Get(from))
	assert.Equal(t, int64(30000), store.Get(to))

	data := decodeData(t, w)
	assert.Equal(t, "$3.00", data["amount"])
}

func TestTransfer_SelfRejected(t *testing.T) {
	h, store := newAccountHandler(t)
	id := uuid.New()
	store.Set(id, 100000)

	c, w := testContext(t, http.MethodPost, "/", id, dto.TransferRequest{
		To:     id.String(),
		Amount: "1.00",
	})
	h.Transfer(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(100000), store.Get(id))
}

func TestSetBalance_AllowsZero(t *testing.T) {
	h, store := newAccountHandler(t)
	id := uuid.New()
	store.Set(id, 42)

	c, w := testContext(t, http.MethodPut, "/", id, dto.SetBalanceRequest{Balance: "0"})
	h.SetBalance(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(0), store.Get(id))
}

func TestSetBalance_RejectsNegative(t *testing.T) {
	h, store := newAccountHandler(t)
	id := uuid.New()
	store.Set(id, 42)

	c, w := testContext(t, http.MethodPut, "/", id, dto.SetBalanceRequest{Balance: "-5"})
	h.SetBalance(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(42), store.Get(id))
}

// --- Player Handler Tests ---

func newPlayerHandler(t *testing.T, ctrl *gomock.Controller) (*PlayerHandler, *mocks.MockRemoteStore) {
	t.Helper()
	remoteStore := mocks.NewMockRemoteStore(ctrl)
	svc := service.NewPlayerService(
		cache.New[domain.Player](100, time.Minute),
		cache.New[domain.BalanceSnapshot](100, time.Minute),
		remoteStore,
		500000,
		logger.NewWithWriter("error", os.Stderr),
	)
	return NewPlayerHandler(svc, testCodec(t)), remoteStore
}

func TestJoin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, remoteStore := newPlayerHandler(t, ctrl)
	id := uuid.New()
	remoteStore.EXPECT().GetOrCreatePlayer(gomock.Any(), id, "Steve").
		Return(domain.Player{ID: id, Name: "Steve", CreatedAt: time.Now()}, nil)

	c, w := testContext(t, http.MethodPost, "/", id, dto.JoinRequest{Name: "Steve"})
	h.Join(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "Steve", data["name"])
	assert.Equal(t, id.String(), data["id"])
}

func TestJoin_MissingName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newPlayerHandler(t, ctrl)

	c, w := testContext(t, http.MethodPost, "/", uuid.New(), map[string]string{})
	h.Join(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetByName_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, remoteStore := newPlayerHandler(t, ctrl)
	id := uuid.New()
	remoteStore.EXPECT().GetPlayerByName(gomock.Any(), "Steve").
		Return(domain.Player{ID: id, Name: "Steve", CreatedAt: time.Now()}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "name", Value: "Steve"}}

	h.GetByName(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, id.String(), data["id"])
}

func TestGetByName_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, remoteStore := newPlayerHandler(t, ctrl)
	remoteStore.EXPECT().GetPlayerByName(gomock.Any(), "Nobody").
		Return(domain.Player{}, &remote.Error{Kind: remote.KindNotFound, Op: "GET /players/{name}"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "name", Value: "Nobody"}}

	h.GetByName(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "ECON_005")
}

func TestRemoteBalance_FormatsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, remoteStore := newPlayerHandler(t, ctrl)
	id := uuid.New()
	remoteStore.EXPECT().GetOrCreateBalance(gomock.Any(), id, int64(500000)).
		Return(domain.BalanceSnapshot{AccountID: id, Balance: 1005000, RetrievedAt: time.Now()}, nil)

	c, w := testContext(t, http.MethodGet, "/", id, nil)
	h.RemoteBalance(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "$100.50", data["formatted"])
}
