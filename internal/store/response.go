package store

import "strings"

// Response is what a procedure call returns: zero or more rows, plus the
// values written into output parameters.
type Response struct {
	Columns []string
	Rows    []Row
	Outputs map[string]any
}

// NewResponse builds a Response. Output names are matched case-insensitively.
func NewResponse(rows []Row, outputs map[string]any) *Response {
	resp := &Response{Rows: rows, Outputs: make(map[string]any, len(outputs))}
	for k, v := range outputs {
		if b, ok := v.([]byte); ok {
			v = string(b)
		}
		resp.Outputs[strings.ToLower(k)] = v
	}
	return resp
}

// First returns the first row, if any.
func (r *Response) First() (Row, bool) {
	if r == nil || len(r.Rows) == 0 {
		return Row{}, false
	}
	return r.Rows[0], true
}

// Output returns a non-NULL output value.
func (r *Response) Output(name string) (any, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r.Outputs[strings.ToLower(name)]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// OutputString returns an output value as text, or "" when it is NULL.
func (r *Response) OutputString(name string) string {
	v, ok := r.Output(name)
	if !ok {
		return ""
	}
	return toText(v)
}
