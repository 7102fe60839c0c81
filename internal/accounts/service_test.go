package accounts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/statements/internal/lineitem"
	"github.com/cleared-dev/statements/internal/model"
)

func TestGet(t *testing.T) {
	svc := NewService(DefaultChart("pty_ltd"))

	acct, ok := svc.Get("1050")
	assert.True(t, ok)
	assert.Equal(t, "Petty Cash", acct.Name)

	_, ok = svc.Get("9999")
	assert.False(t, ok)

	acct, ok = svc.Get(" 1050 ")
	assert.True(t, ok)
	assert.Equal(t, "1050", acct.Number)
}

func TestMappingFromChart(t *testing.T) {
	svc := NewService([]model.Account{
		{Number: "1000", Name: "Bank", Type: model.AccountTypeAsset, LineItem: lineitem.Cash},
		{Number: "9100", Name: "Suspense", Type: model.AccountTypeExpense},
	})

	m := svc.Mapping()
	assert.Equal(t, Mapping{"1000": lineitem.Cash}, m)
}

func TestAnnotate(t *testing.T) {
	svc := NewService([]model.Account{
		{Number: "9100", Name: "Loan to director", Type: model.AccountTypeAsset},
	})
	entries := []model.LedgerEntry{
		{AccountNumber: "9100"},
		{AccountNumber: "9100", AccountType: model.AccountTypeExpense},
		{AccountNumber: "1000"},
	}

	got := svc.Annotate(entries)
	require.Len(t, got, 3)
	assert.Equal(t, model.AccountTypeAsset, got[0].AccountType)
	assert.Equal(t, model.AccountTypeExpense, got[1].AccountType)
	assert.Empty(t, got[2].AccountType)

	// Input untouched.
	assert.Empty(t, entries[0].AccountType)
}

func TestAnnotate_PaddedNumber(t *testing.T) {
	svc := NewService([]model.Account{
		{Number: "9100", Name: "Loan to director", Type: model.AccountTypeAsset},
	})

	got := svc.Annotate([]model.LedgerEntry{{AccountNumber: " 9100 "}})
	assert.Equal(t, model.AccountTypeAsset, got[0].AccountType)
	assert.Equal(t, " 9100 ", got[0].AccountNumber)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	chart := DefaultChart("pty_ltd")
	svc := NewService(chart)

	dir := t.TempDir()
	require.NoError(t, svc.Save(dir))

	_, err := os.Stat(filepath.Join(dir, "accounts", "chart-of-accounts.csv"))
	require.NoError(t, err)

	svc2, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, svc.Mapping(), svc2.Mapping())

	for _, orig := range chart {
		got, ok := svc2.Get(orig.Number)
		require.True(t, ok, "account %s should exist", orig.Number)
		assert.Equal(t, orig, got)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
