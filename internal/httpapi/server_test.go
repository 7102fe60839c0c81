package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/statements/internal/accounts"
)

func newTestServer(t *testing.T, opts Options) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(New(opts).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, ts *httptest.Server, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Post(ts.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func get(t *testing.T, ts *httptest.Server, path string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

const balancedBody = `{
  "entries": [
    {"account_number": "1000", "account_name": "Bank", "balance": 1300, "debit_amount": "1,300.00"},
    {"account_number": "5000", "account_name": "Share capital", "balance": "-1000", "credit_amount": 1000},
    {"account_number": "6000", "account_name": "Sales", "balance": -500, "credit_amount": "500"},
    {"account_number": "7700", "account_name": "Salaries", "balance": 200, "debit_amount": 200}
  ],
  "overrides": {
    "1000": "cash", "5000": "share_capital", "6000": "revenue", "7700": "administrative_expenses"
  }
}`

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, Options{Version: "v1.2.3"})
	resp, body := get(t, ts, "/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "v1.2.3", body["version"])
}

func TestValidate(t *testing.T) {
	ts := newTestServer(t, Options{})

	resp, body := post(t, ts, "/v1/validate", balancedBody)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["isBalanced"])
	assert.Equal(t, "1500", body["totalDebits"])
	assert.Empty(t, body["issues"])
}

func TestValidate_Unbalanced(t *testing.T) {
	ts := newTestServer(t, Options{})

	resp, body := post(t, ts, "/v1/validate", `{"entries":[{"account_number":"1000","debit_amount":"100","mapped_line_item":"cash"}]}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["isBalanced"])
	assert.Equal(t, "100", body["difference"])
}

func TestValidate_MissingEntries(t *testing.T) {
	ts := newTestServer(t, Options{})

	_, body := post(t, ts, "/v1/validate", `{}`)
	assert.Equal(t, false, body["isBalanced"])

	_, body = post(t, ts, "/v1/validate", `{"entries":[]}`)
	assert.Equal(t, true, body["isBalanced"])
}

func TestValidate_Issues(t *testing.T) {
	ts := newTestServer(t, Options{})

	_, body := post(t, ts, "/v1/validate", `{"entries":[{"account_number":"1000","debit_amount":"5","credit_amount":"5"}]}`)
	issues, ok := body["issues"].([]any)
	require.True(t, ok)
	require.Len(t, issues, 2)
	assert.Equal(t, "debit_and_credit", issues[0].(map[string]any)["kind"])
	assert.Equal(t, "unmapped", issues[1].(map[string]any)["kind"])
}

func TestStatements(t *testing.T) {
	ts := newTestServer(t, Options{})

	resp, body := post(t, ts, "/v1/statements", balancedBody)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["id"])
	assert.NotEmpty(t, body["generated_at"])

	pos := body["financial_position"].(map[string]any)
	assert.Equal(t, "1300", pos["totalAssets"])
	ci := body["comprehensive_income"].(map[string]any)
	assert.Equal(t, "300", ci["profit_for_year"])

	identity := body["identity"].(map[string]any)
	assert.Equal(t, false, identity["holds"])
	assert.Equal(t, true, identity["explained_by_profit"])
	assert.Empty(t, body["unclassified"])
}

func TestStatements_ProjectOverrides(t *testing.T) {
	ts := newTestServer(t, Options{Overrides: accounts.Mapping{"1000": "cash", "5000": "share_capital"}})

	_, body := post(t, ts, "/v1/statements", `{"entries":[
		{"account_number":"1000","balance":"250"},
		{"account_number":"5000","balance":"-250"}
	]}`)
	pos := body["financial_position"].(map[string]any)
	assert.Equal(t, "250", pos["totalAssets"])
	assert.Equal(t, "250", pos["totalEquityAndLiabilities"])
	assert.Equal(t, true, body["identity"].(map[string]any)["holds"])
}

func TestStatements_ValidationError(t *testing.T) {
	ts := newTestServer(t, Options{})

	resp, body := post(t, ts, "/v1/statements", `{"entries":[{"account_name":"No number"}]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "application/problem+json", resp.Header.Get("Content-Type"))
	assert.Equal(t, "Validation Failed", body["title"])
	fields := body["fields"].(map[string]any)
	assert.Contains(t, fields, "EntriesRequest.Entries[0].AccountNumber")
}

func TestStatements_MalformedJSON(t *testing.T) {
	ts := newTestServer(t, Options{})

	resp, body := post(t, ts, "/v1/statements", `{"entries": [`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Malformed JSON", body["title"])
}

func TestStatements_BodyTooLarge(t *testing.T) {
	ts := newTestServer(t, Options{MaxBodyBytes: 64})

	resp, body := post(t, ts, "/v1/statements", balancedBody)
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
	assert.Equal(t, "Request Too Large", body["title"])
}

func TestRatios(t *testing.T) {
	ts := newTestServer(t, Options{})

	resp, body := post(t, ts, "/v1/ratios", `{
		"financial_position": {
			"currentAssets": {"total": "200"},
			"currentLiabilities": {"total": "100"}
		},
		"comprehensive_income": {}
	}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	r := body["ratios"].(map[string]any)
	assert.Equal(t, "2", r["currentRatio"])
	assert.NotContains(t, r, "returnOnEquity")
}

func TestRatios_LenientAmounts(t *testing.T) {
	ts := newTestServer(t, Options{})

	tests := []struct {
		name string
		body string
		want map[string]any
	}{
		{
			name: "malformed total counts as zero",
			body: `{"financial_position": {"totalAssets": "abc"}}`,
			want: map[string]any{},
		},
		{
			name: "grouped amounts",
			body: `{"financial_position": {
				"currentAssets": {"total": "1,000", "lines": {"inventories": "250.00"}},
				"currentLiabilities": {"total": "(500)"}
			}}`,
			want: map[string]any{},
		},
		{
			name: "grouped amounts with positive liabilities",
			body: `{"financial_position": {
				"currentAssets": {"total": "1,000", "lines": {"inventories": "250.00"}},
				"currentLiabilities": {"total": "500"}
			}}`,
			want: map[string]any{"currentRatio": "2", "quickRatio": "1.5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := post(t, ts, "/v1/ratios", tt.body)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.want, body["ratios"])
		})
	}
}

func TestRatios_WrongShape(t *testing.T) {
	ts := newTestServer(t, Options{})

	resp, body := post(t, ts, "/v1/ratios", `{"financial_position": {"currentAssets": "lots"}}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Malformed JSON", body["title"])
}

func TestClassify(t *testing.T) {
	ts := newTestServer(t, Options{})

	resp, body := get(t, ts, "/v1/classify/1050?name=Petty%20Cash")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ASSET", body["account_type"])
	assert.Equal(t, []any{"cash"}, body["suggestions"])

	_, body = get(t, ts, "/v1/classify/ABC")
	assert.Equal(t, "UNKNOWN", body["account_type"])
	assert.Equal(t, []any{}, body["suggestions"])
}

func TestTax(t *testing.T) {
	ts := newTestServer(t, Options{})

	resp, body := post(t, ts, "/v1/tax", `{"profit": "100000", "vat_exclusive": 1000, "monthly_remuneration": 50000}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "27000", body["corporate_tax"])
	assert.Equal(t, "150", body["vat"])
	assert.Equal(t, "177.12", body["uif_employee"])
	assert.NotContains(t, body, "sdl")

	formatted := body["formatted"].(map[string]any)
	assert.Equal(t, "R 27,000.00", formatted["corporate_tax"])
}

func TestRateLimit(t *testing.T) {
	ts := newTestServer(t, Options{RateLimit: 2})

	for i := 0; i < 2; i++ {
		resp, _ := get(t, ts, "/v1/classify/1000")
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
	resp, body := get(t, ts, "/v1/classify/1000")
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "Too Many Requests", body["title"])

	// Health checks are not limited.
	resp, _ = get(t, ts, "/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
