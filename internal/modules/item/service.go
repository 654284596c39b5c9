package item

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/georgemunganga/printa-pos/internal/metrics"
	"github.com/georgemunganga/printa-pos/internal/outcome"
	"github.com/georgemunganga/printa-pos/internal/store"
	"github.com/georgemunganga/printa-pos/internal/validation"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var hundred = decimal.NewFromInt(100)

// Service defines item lookup at the till.
type Service interface {
	Lookup(ctx context.Context, barcode string) ItemLookupResult
}

type service struct {
	repo       Repository
	classifier *outcome.Classifier
	metrics    *metrics.Metrics
	log        *zap.Logger
	now        func() time.Time
}

func NewService(repo Repository, classifier *outcome.Classifier, m *metrics.Metrics, log *zap.Logger) Service {
	return &service{repo: repo, classifier: classifier, metrics: m, log: log, now: time.Now}
}

func (s *service) Lookup(ctx context.Context, barcode string) ItemLookupResult {
	res := s.lookup(ctx, barcode)
	res.QueryTime = s.now()
	s.metrics.ObserveOutcome("item_lookup", resultType(res).String())
	return res
}

func resultType(res ItemLookupResult) outcome.ResultType {
	switch {
	case res.Success:
		return outcome.Success
	case res.ErrorCode == CodeInvalidBarcode:
		return outcome.ValidationError
	case res.ErrorCode == CodeException || res.ErrorCode == CodeDatabaseError:
		return outcome.SystemError
	default:
		return outcome.BusinessError
	}
}

func (s *service) lookup(ctx context.Context, barcode string) ItemLookupResult {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return ItemLookupResult{ErrorCode: CodeInvalidBarcode, ErrorMessage: "Barcode cannot be null or empty"}
	}
	if len([]rune(barcode)) > validation.BarcodeMaxLength {
		return ItemLookupResult{
			ErrorCode:    CodeInvalidBarcode,
			ErrorMessage: fmt.Sprintf("Barcode cannot exceed %d characters", validation.BarcodeMaxLength),
		}
	}

	resp, err := s.repo.WithPromotions(ctx, barcode)
	if err != nil {
		s.log.Error("item lookup failed", zap.String("barcode", barcode), zap.Error(err))
		msg := err.Error()
		if f, ok := store.AsFault(err); ok {
			msg = f.Message
		}
		return ItemLookupResult{ErrorCode: CodeException, ErrorMessage: msg}
	}
	if len(resp.Rows) == 0 {
		return ItemLookupResult{ErrorCode: CodeNoData, ErrorMessage: "No data returned from stored procedure"}
	}

	out := s.classifier.Classify(resp, outcome.AcceptDataRows())
	if !out.Succeeded() {
		if out.Code != "" {
			return ItemLookupResult{ErrorCode: out.Code, ErrorMessage: out.Message}
		}
		msg := "An error occurred while retrieving item information"
		if out.Row.Has("ErrorMessage") {
			msg = out.Row.String("ErrorMessage")
		}
		return ItemLookupResult{ErrorCode: CodeDatabaseError, ErrorMessage: msg}
	}

	it := Map(out.Row)
	return ItemLookupResult{Success: true, Item: &it}
}

// PriceWithTax is FinalPrice plus SalesTaxPercent of it. A nil item costs
// nothing.
func PriceWithTax(it *ItemWithPromotions) decimal.Decimal {
	if it == nil {
		return decimal.Zero
	}
	return it.FinalPrice.Add(it.FinalPrice.Mul(it.SalesTaxPercent.Div(hundred)))
}
