package trialbalance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/statements/internal/accounts"
	"github.com/cleared-dev/statements/internal/lineitem"
	"github.com/cleared-dev/statements/internal/model"
)

func TestCheck(t *testing.T) {
	classifier := accounts.NewClassifier(accounts.DefaultRules())
	catalogue := lineitem.Default()
	overrides := map[string]string{"1000": lineitem.Cash}

	entries := []model.LedgerEntry{
		{AccountNumber: "1000", Debit: dec("10")},
		{AccountNumber: "1200", Debit: dec("5"), Credit: dec("5"), MappedLineItem: lineitem.TradeReceivables},
		{AccountNumber: "XYZ", MappedLineItem: lineitem.Cash},
		{AccountNumber: "3000"},
		{AccountNumber: "5000", MappedLineItem: "goodwill_on_the_moon"},
	}

	issues := Check(entries, classifier, catalogue, overrides)
	require.Len(t, issues, 4)

	assert.Equal(t, 2, issues[0].Row)
	assert.Equal(t, IssueDebitAndCredit, issues[0].Kind)

	assert.Equal(t, 3, issues[1].Row)
	assert.Equal(t, IssueUnknownType, issues[1].Kind)

	assert.Equal(t, 4, issues[2].Row)
	assert.Equal(t, IssueUnmapped, issues[2].Kind)

	assert.Equal(t, 5, issues[3].Row)
	assert.Equal(t, IssueUnknownLineItem, issues[3].Kind)
	assert.Contains(t, issues[3].Error(), "goodwill_on_the_moon")
}

func TestCheck_Clean(t *testing.T) {
	classifier := accounts.NewClassifier(accounts.DefaultRules())
	entries := []model.LedgerEntry{
		{AccountNumber: "1000", Debit: dec("10"), MappedLineItem: lineitem.Cash},
		{AccountNumber: "5000", Credit: dec("10"), MappedLineItem: lineitem.ShareCapital},
	}
	assert.Empty(t, Check(entries, classifier, lineitem.Default(), nil))
}
