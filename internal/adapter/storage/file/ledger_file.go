// Package file persists the ledger as a YAML key-value document: one entry
// per account, canonical id string mapped to a fixed-point balance.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// LedgerFile implements ports.LedgerDocument over a single YAML file.
type LedgerFile struct {
	path string
	log  zerolog.Logger
}

func NewLedgerFile(path string, log zerolog.Logger) *LedgerFile {
	return &LedgerFile{path: path, log: log}
}

// Load parses the document. Entries whose key is not a valid account id or
// whose value is not numeric are skipped and logged, never fatal. A missing
// file is an empty ledger, not an error.
func (f *LedgerFile) Load() (map[uuid.UUID]int64, error) {
	if _, err := os.Stat(f.path); os.IsNotExist(err) {
		f.log.Info().Str("path", f.path).Msg("ledger document absent, starting empty")
		return map[uuid.UUID]int64{}, nil
	}

	v := viper.New()
	v.SetConfigFile(f.path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading ledger document %s: %w", f.path, err)
	}

	balances := make(map[uuid.UUID]int64)
	for key, raw := range v.AllSettings() {
		id, err := uuid.Parse(key)
		if err != nil {
			f.log.Warn().Str("key", key).Msg("skipping ledger entry with malformed account id")
			continue
		}
		balance, err := cast.ToInt64E(raw)
		if err != nil {
			f.log.Warn().Str("key", key).Interface("value", raw).Msg("skipping ledger entry with non-numeric balance")
			continue
		}
		balances[id] = balance
	}
	return balances, nil
}

// Save rewrites the document from the given map. The write goes to a
// temporary file first and is swapped in with a rename, so a crash mid-save
// cannot truncate the previous document.
func (f *LedgerFile) Save(balances map[uuid.UUID]int64) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("creating ledger directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	for id, balance := range balances {
		v.Set(id.String(), balance)
	}

	tmp := f.path + ".tmp.yaml"
	if err := v.WriteConfigAs(tmp); err != nil {
		return fmt.Errorf("writing ledger document: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replacing ledger document: %w", err)
	}
	return nil
}
