package dto

// JoinRequest is the request body for a player join event.
type JoinRequest struct {
	Name string `json:"name" binding:"required,min=1,max=48"`
}

// AmountRequest is the request body for deposit and withdraw. Amount is
// textual and goes through the currency codec, so clients may send
// locale-formatted values ("1,000.50") as well as plain decimals.
type AmountRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// TransferRequest is the request body for a transfer between accounts.
type TransferRequest struct {
	To     string `json:"to" binding:"required,uuid"`
	Amount string `json:"amount" binding:"required"`
}

// SetBalanceRequest is the request body for the administrative overwrite.
type SetBalanceRequest struct {
	Balance string `json:"balance" binding:"required"`
}

// BalanceResponse is the response for balance queries and mutations.
type BalanceResponse struct {
	AccountID string `json:"account_id"`
	Raw       int64  `json:"raw"`
	Formatted string `json:"formatted"`
}

// TransferResponse echoes both sides of a completed transfer.
type TransferResponse struct {
	From   BalanceResponse `json:"from"`
	To     BalanceResponse `json:"to"`
	Amount string          `json:"amount"`
}

// PlayerResponse is the response body for player lookups.
type PlayerResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

// RemoteBalanceResponse is the response for remote snapshot queries.
type RemoteBalanceResponse struct {
	AccountID   string `json:"account_id"`
	Raw         int64  `json:"raw"`
	Formatted   string `json:"formatted"`
	RetrievedAt string `json:"retrieved_at"`
}

// CacheStatsResponse reports counters for one entity cache.
type CacheStatsResponse struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
	Size      int   `json:"size"`
}

// StatsResponse is the response for the operational stats endpoint.
type StatsResponse struct {
	Accounts      int                `json:"accounts"`
	PlayerCache   CacheStatsResponse `json:"player_cache"`
	SnapshotCache CacheStatsResponse `json:"snapshot_cache"`
	UptimeSeconds int64              `json:"uptime_seconds"`
}
