package void

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/georgemunganga/printa-pos/internal/metrics"
	"github.com/georgemunganga/printa-pos/internal/outcome"
	"github.com/georgemunganga/printa-pos/internal/store"
	"github.com/georgemunganga/printa-pos/internal/validation"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	msgNoResponse     = "No response from stored procedure"
	msgIncomplete     = "Incomplete response from stored procedure"
	msgVoidFault      = "An error occurred while voiding the transaction: "
	msgAlreadyVoided  = "Transaction is already voided"
	msgNotFound       = "Transaction not found"
	msgSummaryFault   = "Error retrieving transaction summary: "
	msgStatusFault    = "Error checking transaction status: "
	msgReasonsFault   = "Error loading void reasons: "
	msgUnknownReason  = "The selected void reason is not available"
	msgApprovalNeeded = "Approval code is required for the selected void reason"
)

// Service defines the void workflow. No call is retried.
type Service interface {
	CanVoid(ctx context.Context, transactionID string) CanVoidResult
	GetVoidReasons(ctx context.Context) ([]VoidReason, error)
	GetSummary(ctx context.Context, transactionID string) TransactionSummary
	Void(ctx context.Context, req *VoidTransactionRequest) VoidTransactionResponse
	// Process checks eligibility and the reason's approval rule against the
	// store before voiding; Void trusts the request as given.
	Process(ctx context.Context, req *VoidTransactionRequest) VoidTransactionResponse
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

// Validate checks a void request, stopping at the first problem.
func Validate(req *VoidTransactionRequest) validation.Result {
	if req == nil {
		return validation.Invalid("Request cannot be null")
	}
	return validation.FailFast(
		validation.Required(req.TransactionID, "Transaction ID is required"),
		validation.Required(req.VoidReasonID, "Void reason is required"),
		validation.Required(req.VoidedBy, "Voided by field is required"),
		validation.Required(req.UserID, "User ID is required"),
		validation.When(req.RequiresApproval, validation.Required(req.ApprovalCode, msgApprovalNeeded)),
		validation.MaxLength(req.TransactionID, validation.CodeMaxLength, "Transaction ID"),
		validation.MaxLength(req.VoidReasonID, validation.IDMaxLength, "Void reason ID"),
		validation.MaxLength(req.VoidedBy, validation.IDMaxLength, "Voided by"),
		validation.MaxLength(req.UserID, validation.IDMaxLength, "User ID"),
		validation.MaxLength(req.ApprovalCode, validation.CodeMaxLength, "Approval code"),
	)
}

func (s *service) CanVoid(ctx context.Context, transactionID string) CanVoidResult {
	if msg := checkTransactionID(transactionID); msg != "" {
		return CanVoidResult{Reason: msg}
	}
	summary, err := s.lookupSummary(ctx, transactionID)
	if err != nil {
		s.log.Warn("void eligibility check failed", zap.String("transaction_id", transactionID), zap.Error(err))
		return CanVoidResult{Reason: msgStatusFault + faultMessage(err), Err: err}
	}
	switch {
	case !summary.Found:
		return CanVoidResult{Reason: msgNotFound}
	case strings.EqualFold(summary.Status, StatusVoided):
		return CanVoidResult{Reason: msgAlreadyVoided, CurrentStatus: summary.Status}
	case !strings.EqualFold(summary.Status, StatusCompleted):
		return CanVoidResult{
			Reason:        fmt.Sprintf("Transaction must be completed to be voided (current status: %s)", summary.Status),
			CurrentStatus: summary.Status,
		}
	}
	return CanVoidResult{CanVoid: true, CurrentStatus: summary.Status}
}

func (s *service) GetVoidReasons(ctx context.Context) ([]VoidReason, error) {
	all, err := s.repo.Reasons(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load void reasons")
	}
	active := make([]VoidReason, 0, len(all))
	for _, r := range all {
		if r.IsActive {
			active = append(active, r)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].ReasonDescription < active[j].ReasonDescription
	})
	return active, nil
}

func (s *service) GetSummary(ctx context.Context, transactionID string) TransactionSummary {
	if msg := checkTransactionID(transactionID); msg != "" {
		return TransactionSummary{ErrorMessage: msg}
	}
	summary, err := s.lookupSummary(ctx, transactionID)
	if err != nil {
		s.log.Warn("transaction summary failed", zap.String("transaction_id", transactionID), zap.Error(err))
		return TransactionSummary{ErrorMessage: msgSummaryFault + faultMessage(err)}
	}
	return summary
}

// lookupSummary returns Found=false with a nil error when the transaction
// does not exist.
func (s *service) lookupSummary(ctx context.Context, transactionID string) (TransactionSummary, error) {
	resp, err := s.repo.Summary(ctx, transactionID)
	if err != nil {
		return TransactionSummary{}, err
	}
	if len(resp.Rows) == 0 {
		return TransactionSummary{}, nil
	}

	out := s.classifier.Classify(resp, outcome.AcceptDataRows())
	if !out.Succeeded() {
		if strings.EqualFold(out.Code, "TRANSACTION_NOT_FOUND") {
			return TransactionSummary{}, nil
		}
		return TransactionSummary{}, errors.New(out.Message)
	}
	row := out.Row
	return TransactionSummary{
		Found:               true,
		TransactionID:       row.String("TransactionID"),
		TransactionDate:     row.Time("TransactionDate"),
		TotalAmount:         row.Decimal("TotalAmount"),
		Status:              row.String("Status"),
		CashierID:           row.String("CashierID"),
		PrivilegeCardNumber: row.String("PrivilegeCardNumber"),
		ItemCount:           row.Int("ItemCount"),
	}, nil
}

func checkTransactionID(id string) string {
	if validation.Blank(id) {
		return "Transaction ID is required"
	}
	return validation.MaxLength(id, validation.CodeMaxLength, "Transaction ID")()
}

func (s *service) Void(ctx context.Context, req *VoidTransactionRequest) VoidTransactionResponse {
	res := s.void(ctx, req)
	s.metrics.ObserveOutcome("void_transaction", res.ResultType.String())
	return res
}

func (s *service) void(ctx context.Context, req *VoidTransactionRequest) VoidTransactionResponse {
	if v := Validate(req); !v.IsValid {
		return VoidTransactionResponse{ResultType: outcome.ValidationError, ErrorMessage: v.ErrorMessage}
	}

	resp, err := s.repo.Void(ctx, req)
	if err != nil {
		s.log.Error("void transaction failed", zap.String("transaction_id", req.TransactionID), zap.Error(err))
		return VoidTransactionResponse{
			ResultType:   outcome.SystemError,
			ErrorMessage: msgVoidFault + faultMessage(err),
			Err:          err,
		}
	}

	res := decodeVoid(s.classifier.Classify(resp, outcome.PreferDiscriminator()))
	if res.IsSuccess {
		s.log.Info("transaction voided",
			zap.String("transaction_id", req.TransactionID),
			zap.String("void_reason_id", req.VoidReasonID),
			zap.Stringer("result_type", res.ResultType))
	}
	return res
}

func decodeVoid(out outcome.Outcome) VoidTransactionResponse {
	switch out.Type {
	case outcome.Success:
		return decodeVoidSuccess(out)
	case outcome.Warning:
		return VoidTransactionResponse{
			IsSuccess:     true,
			ResultType:    outcome.Warning,
			Message:       out.Message,
			ErrorMessage:  out.Message,
			TransactionID: out.Row.String("TransactionID"),
		}
	case outcome.BusinessError:
		return VoidTransactionResponse{
			ResultType:    outcome.BusinessError,
			ErrorMessage:  out.Message,
			TransactionID: out.Row.String("TransactionID"),
		}
	}
	msg := out.Message
	if msg == outcome.MsgUnrecognized {
		msg = msgNoResponse
	}
	return VoidTransactionResponse{ResultType: outcome.SystemError, ErrorMessage: msg}
}

func decodeVoidSuccess(out outcome.Outcome) VoidTransactionResponse {
	row := out.Row
	res := VoidTransactionResponse{IsSuccess: true, ResultType: outcome.Success}
	var err error
	if res.Message, err = row.RequireString("Message"); err != nil {
		return incomplete(err)
	}
	if res.TransactionID, err = row.RequireString("TransactionID"); err != nil {
		return incomplete(err)
	}
	if res.DetailRowsVoided, err = row.RequireInt("DetailRowsVoided"); err != nil {
		return incomplete(err)
	}
	if res.PaymentRowsVoided, err = row.RequireInt("PaymentRowsVoided"); err != nil {
		return incomplete(err)
	}
	ts, err := row.RequireTime("VoidedTimeStamp")
	if err != nil {
		return incomplete(err)
	}
	res.VoidedTimestamp = &ts
	return res
}

func incomplete(err error) VoidTransactionResponse {
	return VoidTransactionResponse{
		ResultType:   outcome.SystemError,
		ErrorMessage: msgIncomplete + ": " + err.Error(),
		Err:          err,
	}
}

func (s *service) Process(ctx context.Context, req *VoidTransactionRequest) VoidTransactionResponse {
	if v := Validate(req); !v.IsValid {
		s.metrics.ObserveOutcome("void_transaction", outcome.ValidationError.String())
		return VoidTransactionResponse{ResultType: outcome.ValidationError, ErrorMessage: v.ErrorMessage}
	}
	eligible := s.CanVoid(ctx, req.TransactionID)
	if eligible.Err != nil {
		s.metrics.ObserveOutcome("void_transaction", outcome.SystemError.String())
		return VoidTransactionResponse{ResultType: outcome.SystemError, ErrorMessage: eligible.Reason, Err: eligible.Err}
	}
	if !eligible.CanVoid {
		s.metrics.ObserveOutcome("void_transaction", outcome.BusinessError.String())
		return VoidTransactionResponse{
			ResultType:    outcome.BusinessError,
			ErrorMessage:  eligible.Reason,
			TransactionID: req.TransactionID,
		}
	}

	reasons, err := s.GetVoidReasons(ctx)
	if err != nil {
		s.metrics.ObserveOutcome("void_transaction", outcome.SystemError.String())
		return VoidTransactionResponse{ResultType: outcome.SystemError, ErrorMessage: msgReasonsFault + faultMessage(err), Err: err}
	}
	reason, ok := findReason(reasons, req.VoidReasonID)
	if !ok {
		s.metrics.ObserveOutcome("void_transaction", outcome.ValidationError.String())
		return VoidTransactionResponse{ResultType: outcome.ValidationError, ErrorMessage: msgUnknownReason}
	}
	gated := *req
	gated.RequiresApproval = req.RequiresApproval || reason.RequiresApproval
	return s.Void(ctx, &gated)
}

func findReason(reasons []VoidReason, id string) (VoidReason, bool) {
	for _, r := range reasons {
		if strings.EqualFold(r.ReasonID, strings.TrimSpace(id)) {
			return r, true
		}
	}
	return VoidReason{}, false
}

func faultMessage(err error) string {
	if f, ok := store.AsFault(err); ok {
		return f.Message
	}
	return err.Error()
}
