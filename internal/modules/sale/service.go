package sale

import (
	"context"

	"github.com/georgemunganga/printa-pos/internal/metrics"
	"github.com/georgemunganga/printa-pos/internal/outcome"
	"github.com/georgemunganga/printa-pos/internal/store"
	"go.uber.org/zap"
)

const (
	msgNoTransactionID = "Sale was not recorded - no transaction ID returned"
	msgEncodeFailed    = "An error occurred while preparing the sale"
	msgFaultPrefix     = "An error occurred while processing the sale: "
)

// Service defines sale processing.
type Service interface {
	ProcessSale(ctx context.Context, req *SaleTransactionRequest) SaleTransactionResult
}

type service struct {
	repo       Repository
	classifier *outcome.Classifier
	metrics    *metrics.Metrics
	log        *zap.Logger
}

func NewService(repo Repository, classifier *outcome.Classifier, m *metrics.Metrics, log *zap.Logger) Service {
	return &service{repo: repo, classifier: classifier, metrics: m, log: log}
}

func (s *service) ProcessSale(ctx context.Context, req *SaleTransactionRequest) SaleTransactionResult {
	res := s.process(ctx, req)
	s.metrics.ObserveOutcome("process_sale", res.ResultType.String())
	return res
}

func (s *service) process(ctx context.Context, req *SaleTransactionRequest) SaleTransactionResult {
	if v := Validate(req); !v.IsValid {
		return SaleTransactionResult{ResultType: outcome.ValidationError, Message: v.ErrorMessage}
	}

	doc, err := BuildDocument(req).Encode()
	if err != nil {
		s.log.Error("encode sale document", zap.Error(err))
		return SaleTransactionResult{ResultType: outcome.SystemError, Message: msgEncodeFailed, Err: err}
	}

	resp, err := s.repo.Process(ctx, req.SessionID, req.PrivilegeCardNumber, req.UserID, doc)
	if err != nil {
		s.log.Error("process sale failed",
			zap.String("session_id", req.SessionID),
			zap.Int("items", len(req.SalesItems)),
			zap.Error(err))
		msg := err.Error()
		if f, ok := store.AsFault(err); ok {
			msg = f.Message
		}
		return SaleTransactionResult{ResultType: outcome.SystemError, Message: msgFaultPrefix + msg, Err: err}
	}

	out := s.classifier.Classify(resp, outcome.AcceptDataRows())
	res := SaleTransactionResult{
		IsSuccess:     out.Succeeded(),
		ResultType:    out.Type,
		TransactionID: out.Row.String("TransactionID"),
		ReceiptNumber: out.Row.String("ReceiptNumber"),
		Message:       out.Message,
	}
	if res.IsSuccess && res.TransactionID == "" {
		return SaleTransactionResult{ResultType: outcome.SystemError, Message: msgNoTransactionID}
	}
	if res.IsSuccess {
		s.log.Info("sale processed",
			zap.String("transaction_id", res.TransactionID),
			zap.String("receipt_number", res.ReceiptNumber))
	}
	return res
}
