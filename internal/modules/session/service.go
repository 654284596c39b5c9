package session

import (
	"context"
	"strings"

	"github.com/georgemunganga/printa-pos/internal/metrics"
	"github.com/georgemunganga/printa-pos/internal/outcome"
	"github.com/georgemunganga/printa-pos/internal/store"
	"github.com/georgemunganga/printa-pos/internal/validation"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const msgNoSessionID = "Failed to start cashier session - no session ID returned"

// Service defines cashier session operations.
type Service interface {
	StartSession(ctx context.Context, req *StartSessionRequest) CashierSessionResult
	IsTerminalActive(ctx context.Context, terminalID string) bool
	HasOpenSession(ctx context.Context, cashierID string) bool
	ActiveTerminals(ctx context.Context) ([]Terminal, error)
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

// Validate checks a start request in a fixed order and reports the first
// violation.
func Validate(req *StartSessionRequest) validation.Result {
	if req == nil {
		return validation.Invalid("Request cannot be null")
	}
	return validation.FailFast(
		validation.Required(req.TerminalID, "Terminal ID is required"),
		validation.Required(req.CashierID, "Cashier ID is required"),
		validation.Required(req.UserID, "User ID is required"),
		validation.NotNegative(req.StartingAmount, "Starting amount cannot be negative"),
		validation.MaxLength(req.TerminalID, validation.IDMaxLength, "Terminal ID"),
		validation.MaxLength(req.CashierID, validation.IDMaxLength, "Cashier ID"),
		validation.MaxLength(req.UserID, validation.IDMaxLength, "User ID"),
	)
}

func (s *service) StartSession(ctx context.Context, req *StartSessionRequest) CashierSessionResult {
	if v := Validate(req); !v.IsValid {
		s.metrics.ObserveOutcome("start_session", outcome.ValidationError.String())
		return CashierSessionResult{ResultType: outcome.ValidationError, ErrorMessage: v.ErrorMessage}
	}

	resp, err := s.repo.Start(ctx, req.TerminalID, req.CashierID, req.StartingAmount, req.UserID)
	if err != nil {
		s.log.Error("start cashier session failed",
			zap.String("terminal_id", req.TerminalID),
			zap.String("cashier_id", req.CashierID),
			zap.Error(err))
		rt := faultResultType(err)
		s.metrics.ObserveOutcome("start_session", rt.String())
		return CashierSessionResult{ResultType: rt, ErrorMessage: FriendlyMessage(err), Err: err}
	}

	out := s.classifier.Classify(resp, outcome.ExpectOutput(outSessionID))
	s.metrics.ObserveOutcome("start_session", out.Type.String())
	if !out.Succeeded() {
		msg := out.Message
		if out.Message == outcome.MsgUnrecognized {
			msg = msgNoSessionID
		}
		return CashierSessionResult{ResultType: out.Type, ErrorMessage: msg}
	}

	sessionID := strings.TrimSpace(store.ToText(out.Payload))
	if sessionID == "" {
		sessionID = strings.TrimSpace(out.Row.String("SessionID"))
	}
	if sessionID == "" {
		return CashierSessionResult{ResultType: outcome.SystemError, ErrorMessage: msgNoSessionID}
	}

	s.log.Info("cashier session started",
		zap.String("session_id", sessionID),
		zap.String("terminal_id", req.TerminalID),
		zap.String("cashier_id", req.CashierID))
	return CashierSessionResult{IsSuccess: true, ResultType: out.Type, SessionID: sessionID}
}

// IsTerminalActive is an advisory check; the store enforces the rule again
// when the session starts.
func (s *service) IsTerminalActive(ctx context.Context, terminalID string) bool {
	if validation.Blank(terminalID) || len(terminalID) > validation.IDMaxLength {
		return false
	}
	n, err := s.repo.CountActiveTerminal(ctx, terminalID)
	if err != nil {
		s.log.Warn("terminal check failed", zap.String("terminal_id", terminalID), zap.Error(err))
		return false
	}
	return n > 0
}

// HasOpenSession is an advisory check, see IsTerminalActive.
func (s *service) HasOpenSession(ctx context.Context, cashierID string) bool {
	if validation.Blank(cashierID) || len(cashierID) > validation.IDMaxLength {
		return false
	}
	n, err := s.repo.CountOpenSessions(ctx, cashierID)
	if err != nil {
		s.log.Warn("open session check failed", zap.String("cashier_id", cashierID), zap.Error(err))
		return false
	}
	return n > 0
}

func (s *service) ActiveTerminals(ctx context.Context) ([]Terminal, error) {
	terminals, err := s.repo.ActiveTerminals(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "retrieve active terminals")
	}
	return terminals, nil
}
