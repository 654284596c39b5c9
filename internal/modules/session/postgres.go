package session

import (
	"context"

	"github.com/georgemunganga/printa-pos/internal/store"
	"github.com/georgemunganga/printa-pos/internal/validation"
	"github.com/shopspring/decimal"
)

const (
	procStartSession    = "sp_start_cashier_session"
	procTerminalActive  = "sp_is_terminal_active"
	procHasOpenSession  = "sp_has_open_session"
	procActiveTerminals = "sp_get_active_terminals"

	outSessionID = "session_id"
)

type gatewayRepo struct{ gw store.Gateway }

func NewRepository(gw store.Gateway) Repository { return &gatewayRepo{gw: gw} }

func (r *gatewayRepo) Start(ctx context.Context, terminalID, cashierID string, amount decimal.Decimal, userID string) (*store.Response, error) {
	return r.gw.Execute(ctx, procStartSession,
		store.Text("terminal_id", validation.IDMaxLength, terminalID),
		store.Text("cashier_id", validation.IDMaxLength, cashierID),
		store.Decimal("starting_amount", amount),
		store.Text("user_id", validation.IDMaxLength, userID),
		store.OutputText(outSessionID, validation.CodeMaxLength),
	)
}

func (r *gatewayRepo) CountActiveTerminal(ctx context.Context, terminalID string) (int, error) {
	v, err := r.gw.Scalar(ctx, procTerminalActive, store.Text("terminal_id", validation.IDMaxLength, terminalID))
	if err != nil {
		return 0, err
	}
	return store.ToInt(v)
}

func (r *gatewayRepo) CountOpenSessions(ctx context.Context, cashierID string) (int, error) {
	v, err := r.gw.Scalar(ctx, procHasOpenSession, store.Text("cashier_id", validation.IDMaxLength, cashierID))
	if err != nil {
		return 0, err
	}
	return store.ToInt(v)
}

func (r *gatewayRepo) ActiveTerminals(ctx context.Context) ([]Terminal, error) {
	resp, err := r.gw.Execute(ctx, procActiveTerminals)
	if err != nil {
		return nil, err
	}
	terminals := make([]Terminal, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		terminals = append(terminals, Terminal{
			TerminalID:   row.String("TerminalID"),
			TerminalName: row.String("TerminalName"),
			Location:     row.String("Location"),
		})
	}
	return terminals, nil
}
