package accounts

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/statements/internal/lineitem"
)

func TestMappingRoundTrip(t *testing.T) {
	m := Mapping{"7700": lineitem.AdministrativeExpenses, "1000": lineitem.Cash}

	var buf bytes.Buffer
	require.NoError(t, WriteMapping(&buf, m))
	assert.Equal(t, "account_number,line_item\n1000,cash\n7700,administrative_expenses\n", buf.String())

	got, err := ReadMapping(&buf)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestReadMapping_SkipsBlankItems(t *testing.T) {
	in := "account_number,line_item\n1000, cash \n1200,\n"
	got, err := ReadMapping(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, Mapping{"1000": "cash"}, got)
}

func TestReadMapping_EmptyNumber(t *testing.T) {
	_, err := ReadMapping(strings.NewReader("account_number,line_item\n,cash\n"))
	require.Error(t, err)
}

func TestMappingValidate(t *testing.T) {
	m := Mapping{
		"1000": lineitem.Cash,
		"2000": "goodwill_on_the_moon",
		"1500": "prepaid_stuff",
	}
	errs := m.Validate(lineitem.Default())
	require.Len(t, errs, 2)
	assert.Equal(t, "1500", errs[0].AccountNumber)
	assert.Equal(t, "2000", errs[1].AccountNumber)
	assert.Contains(t, errs[1].Error(), "goodwill_on_the_moon")
}

func TestMappingMerge(t *testing.T) {
	base := Mapping{"1000": lineitem.Cash, "3000": lineitem.TradePayables}
	over := Mapping{"3000": lineitem.OtherPayables}

	got := base.Merge(over)
	assert.Equal(t, Mapping{"1000": lineitem.Cash, "3000": lineitem.OtherPayables}, got)
	assert.Equal(t, lineitem.TradePayables, base["3000"], "merge must not modify the receiver")
}

func TestLoadSaveMapping(t *testing.T) {
	dir := t.TempDir()

	m, err := LoadMapping(dir)
	require.NoError(t, err)
	assert.Empty(t, m)

	require.NoError(t, SaveMapping(dir, Mapping{"1000": lineitem.Cash}))

	m, err = LoadMapping(dir)
	require.NoError(t, err)
	assert.Equal(t, Mapping{"1000": lineitem.Cash}, m)
}
