package accounts

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/statements/internal/lineitem"
	"github.com/cleared-dev/statements/internal/model"
)

func TestRoundTrip(t *testing.T) {
	accounts := []model.Account{
		{Number: "1000", Name: "Bank - Current Account", Type: model.AccountTypeAsset, LineItem: lineitem.Cash, Description: "Primary account"},
		{Number: "7700", Name: "Salaries and Wages", Type: model.AccountTypeExpense, LineItem: lineitem.AdministrativeExpenses},
	}

	var buf bytes.Buffer
	err := WriteAccounts(&buf, accounts)
	require.NoError(t, err)

	got, err := ReadAccounts(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, accounts, got)
}

func TestParentNumber(t *testing.T) {
	accounts := []model.Account{
		{Number: "2000", Name: "Equipment", Type: model.AccountTypeAsset},
		{Number: "2010", Name: "Accumulated Depreciation", Type: model.AccountTypeAsset, ParentNumber: "2000"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteAccounts(&buf, accounts))

	got, err := ReadAccounts(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Empty(t, got[0].ParentNumber)
	assert.Equal(t, "2000", got[1].ParentNumber)
}

func TestReadAccounts_LowercaseType(t *testing.T) {
	in := "account_number,account_name,account_type,line_item,parent_number,description\n" +
		"1000,Bank,asset,cash,,\n"

	got, err := ReadAccounts(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, model.AccountTypeAsset, got[0].Type)
}

func TestReadAccounts_Errors(t *testing.T) {
	header := "account_number,account_name,account_type,line_item,parent_number,description\n"

	_, err := ReadAccounts(strings.NewReader(header + "1000,Bank,contra,cash,,\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")

	_, err = ReadAccounts(strings.NewReader(header + ",Bank,asset,cash,,\n"))
	require.Error(t, err)

	_, err = ReadAccounts(strings.NewReader(header + "1000,Bank\n"))
	require.Error(t, err)
}

func TestReadAccounts_Empty(t *testing.T) {
	got, err := ReadAccounts(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDefaultChart(t *testing.T) {
	chart := DefaultChart("pty_ltd")
	require.NotEmpty(t, chart)

	c := NewClassifier(DefaultRules())
	catalogue := lineitem.Default()
	numbers := make(map[string]bool)
	for _, acct := range chart {
		assert.False(t, numbers[acct.Number], "duplicate account %s", acct.Number)
		numbers[acct.Number] = true

		assert.NotEmpty(t, acct.Name, "account %s missing name", acct.Number)
		assert.Equal(t, c.Classify(acct.Number), acct.Type, "account %s type disagrees with numbering", acct.Number)
		assert.True(t, catalogue.Contains(acct.LineItem), "account %s line item %q not catalogued", acct.Number, acct.LineItem)
	}
	assert.True(t, numbers["1000"])
	assert.True(t, numbers["5000"])
}

func TestDefaultChart_UnknownEntityType(t *testing.T) {
	assert.Equal(t, DefaultChart("pty_ltd"), DefaultChart("unknown_type"))
	assert.NotEqual(t, DefaultChart("pty_ltd"), DefaultChart("sole_proprietor"))
}

func TestAllAccountTypes(t *testing.T) {
	for _, at := range model.AccountTypes() {
		acct := model.Account{Number: "1000", Name: "Test", Type: at}

		var buf bytes.Buffer
		require.NoError(t, WriteAccounts(&buf, []model.Account{acct}))

		got, err := ReadAccounts(&buf)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, at, got[0].Type, "account type %q should survive round-trip", at)
	}
}
