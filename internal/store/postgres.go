package store

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Config is the connection configuration handed to Open. It is built once
// at start-up and injected; nothing in this package holds it globally.
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Open connects to PostgreSQL and verifies the connection.
func Open(ctx context.Context, cfg Config) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "open store")
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, classify("", errors.Wrap(err, "ping store"))
	}
	return db, nil
}

// PostgresGateway calls PostgreSQL functions.
//
// Every parameter that is not Out is bound positionally, with a cast to its
// declared kind. Out and InOut parameters name columns of the function's
// result: those columns are moved from the first row into Response.Outputs
// and the remaining columns stay in Rows. A function whose only columns are
// output slots therefore yields outputs and no rows.
type PostgresGateway struct {
	db  *sqlx.DB
	log *zap.Logger
}

// NewPostgresGateway wraps an open pool.
func NewPostgresGateway(db *sqlx.DB, log *zap.Logger) *PostgresGateway {
	return &PostgresGateway{db: db, log: log}
}

var _ Gateway = (*PostgresGateway)(nil)

var procedureName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

func (g *PostgresGateway) Execute(ctx context.Context, procedure string, params ...Param) (*Response, error) {
	query, args, outputs, err := buildCall("SELECT * FROM", procedure, params)
	if err != nil {
		return nil, err
	}

	conn, err := g.db.Connx(ctx)
	if err != nil {
		return nil, classify(procedure, errors.Wrap(err, "acquire connection"))
	}
	defer conn.Close()

	rows, err := conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, classify(procedure, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, classify(procedure, err)
	}
	var result []Row
	for rows.Next() {
		values := make(map[string]any, len(columns))
		if err := rows.MapScan(values); err != nil {
			return nil, classify(procedure, errors.Wrap(err, "scan row"))
		}
		result = append(result, NewRow(values))
	}
	if err := rows.Err(); err != nil {
		return nil, classify(procedure, err)
	}

	g.log.Debug("procedure executed",
		zap.String("procedure", procedure),
		zap.Int("rows", len(result)),
		zap.Int("outputs", len(outputs)))

	return splitOutputs(columns, result, outputs), nil
}

func (g *PostgresGateway) Scalar(ctx context.Context, procedure string, params ...Param) (any, error) {
	query, args, _, err := buildCall("SELECT", procedure, params)
	if err != nil {
		return nil, err
	}

	conn, err := g.db.Connx(ctx)
	if err != nil {
		return nil, classify(procedure, errors.Wrap(err, "acquire connection"))
	}
	defer conn.Close()

	var v any
	if err := conn.QueryRowxContext(ctx, query, args...).Scan(&v); err != nil {
		return nil, classify(procedure, err)
	}
	if b, ok := v.([]byte); ok {
		v = string(b)
	}
	return v, nil
}

func (g *PostgresGateway) Ping(ctx context.Context) error {
	return classify("", g.db.PingContext(ctx))
}

// ServerInfo describes the connected server, e.g. "Server: 10.0.0.5, Database: pos".
func (g *PostgresGateway) ServerInfo(ctx context.Context) (string, error) {
	var info struct {
		Server   string `db:"server_name"`
		Database string `db:"database_name"`
		Version  string `db:"version"`
	}
	err := g.db.GetContext(ctx, &info, `
		SELECT COALESCE(inet_server_addr()::text, 'local') AS server_name,
		       current_database()                         AS database_name,
		       current_setting('server_version')          AS version`)
	if err != nil {
		return "", classify("", err)
	}
	return fmt.Sprintf("Server: %s, Database: %s, Version: %s", info.Server, info.Database, info.Version), nil
}

// buildCall renders "<verb> procedure($1::type, ...)" for the bound parameters
// and returns the names of the output slots.
func buildCall(verb, procedure string, params []Param) (string, []any, []string, error) {
	if !procedureName.MatchString(procedure) {
		return "", nil, nil, fmt.Errorf("invalid procedure name %q", procedure)
	}
	placeholders := make([]string, 0, len(params))
	args := make([]any, 0, len(params))
	var outputs []string
	for _, p := range params {
		if err := p.Validate(); err != nil {
			return "", nil, nil, err
		}
		if p.IsOutput() {
			outputs = append(outputs, p.Name)
		}
		if p.Direction == Out {
			continue
		}
		args = append(args, p.Value)
		placeholders = append(placeholders, fmt.Sprintf("$%d::%s", len(args), castFor(p.Kind)))
	}
	query := fmt.Sprintf("%s %s(%s)", verb, procedure, strings.Join(placeholders, ", "))
	return query, args, outputs, nil
}

func castFor(k Kind) string {
	switch k {
	case KindDecimal:
		return "numeric"
	case KindInt:
		return "bigint"
	case KindBool:
		return "boolean"
	case KindDocument:
		return "jsonb"
	case KindTimestamp:
		return "timestamptz"
	default:
		return "varchar"
	}
}

func splitOutputs(columns []string, rows []Row, outputs []string) *Response {
	if len(outputs) == 0 {
		resp := NewResponse(rows, nil)
		resp.Columns = columns
		return resp
	}

	isOutput := make(map[string]bool, len(outputs))
	for _, name := range outputs {
		isOutput[strings.ToLower(name)] = true
	}
	var rowColumns []string
	for _, c := range columns {
		if !isOutput[strings.ToLower(c)] {
			rowColumns = append(rowColumns, c)
		}
	}

	values := make(map[string]any, len(outputs))
	if len(rows) > 0 {
		for _, name := range outputs {
			if v, ok := rows[0].Value(name); ok {
				values[name] = v
			}
		}
	}

	var kept []Row
	if len(rowColumns) > 0 {
		kept = make([]Row, 0, len(rows))
		for _, r := range rows {
			m := make(map[string]any, len(rowColumns))
			for _, c := range rowColumns {
				v, _ := r.Value(c)
				m[c] = v
			}
			kept = append(kept, NewRow(m))
		}
	}

	resp := NewResponse(kept, values)
	resp.Columns = rowColumns
	return resp
}
