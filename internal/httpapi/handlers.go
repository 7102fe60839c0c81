package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/statements/internal/model"
	"github.com/cleared-dev/statements/internal/ratios"
	"github.com/cleared-dev/statements/internal/trialbalance"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]string{"status": "ok", "version": s.version})
}

func (s *Server) decodeEntries(w http.ResponseWriter, r *http.Request) (EntriesRequest, bool) {
	var req EntriesRequest
	if err := decodeJSON(w, r, s.maxBody, &req); err != nil {
		RespondError(w, err)
		return req, false
	}
	if err := s.validate.Struct(req); err != nil {
		RespondError(w, err)
		return req, false
	}
	return req, true
}

func (s *Server) mergedOverrides(req EntriesRequest) map[string]string {
	if len(s.overrides) == 0 {
		return req.Overrides
	}
	return s.overrides.Merge(req.Overrides)
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeEntries(w, r)
	if !ok {
		return
	}
	entries := req.LedgerEntries()

	issues := trialbalance.Check(entries, s.classifier, s.catalogue, s.mergedOverrides(req))
	if issues == nil {
		issues = []trialbalance.Issue{}
	}
	JSON(w, http.StatusOK, ValidateResponse{
		Result: trialbalance.ValidateWithTolerance(entries, s.builder.Tolerance()),
		Issues: issues,
	})
}

func (s *Server) handleStatements(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeEntries(w, r)
	if !ok {
		return
	}

	report := s.builder.Build(req.LedgerEntries(), s.mergedOverrides(req))
	if n := len(report.Unclassified); n > 0 {
		s.logger.Warn("entries excluded from statements", slog.Int("count", n))
	}
	JSON(w, http.StatusOK, StatementsResponse{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Report:      report,
	})
}

func (s *Server) handleRatios(w http.ResponseWriter, r *http.Request) {
	var req RatiosRequest
	if err := decodeJSON(w, r, s.maxBody, &req); err != nil {
		RespondError(w, err)
		return
	}
	JSON(w, http.StatusOK, RatiosResponse{Ratios: ratios.Compute(req.FinancialPosition.Position(), req.ComprehensiveIncome.Income())})
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")
	JSON(w, http.StatusOK, ClassifyResponse{
		AccountNumber: number,
		AccountType:   s.classifier.Classify(number),
		Suggestions:   s.classifier.SuggestLineItems(number, r.URL.Query().Get("name")),
	})
}

func (s *Server) handleTax(w http.ResponseWriter, r *http.Request) {
	var req TaxRequest
	if err := decodeJSON(w, r, s.maxBody, &req); err != nil {
		RespondError(w, err)
		return
	}

	resp := TaxResponse{Formatted: map[string]string{}}
	set := func(name string, dst **model.Amount, v decimal.Decimal) {
		*dst = &model.Amount{Decimal: v}
		resp.Formatted[name] = s.formatter.Currency(v)
	}
	if req.Profit != nil {
		set("corporate_tax", &resp.CorporateTax, s.rates.CorporateTax(req.Profit.Decimal))
	}
	if req.VATExclusive != nil {
		set("vat", &resp.VAT, s.rates.VAT(req.VATExclusive.Decimal))
	}
	if req.VATInclusive != nil {
		set("vat_included", &resp.VATIncluded, s.rates.VATFromInclusive(req.VATInclusive.Decimal))
	}
	if req.Payroll != nil {
		set("sdl", &resp.SDL, s.rates.SDL(req.Payroll.Decimal))
	}
	if req.Salary != nil {
		employee, employer := s.rates.UIF(req.Salary.Decimal)
		set("uif_employee", &resp.UIFEmployee, employee)
		set("uif_employer", &resp.UIFEmployer, employer)
	}
	JSON(w, http.StatusOK, resp)
}
