package ilerr

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

type Errors struct {
	errs []IleError
}

func (r *Errors) With(err ...IleError) *Errors {
	if r == nil {
		return &Errors{errs: err}
	}
	r.errs = append(r.errs, err...)
	return r
}

func (r *Errors) Merge(err *Errors) *Errors {
	if r == nil {
		return err
	}
	if err == nil {
		return r
	}
	if len(err.errs) == 0 {
		return r
	}
	return r.With(err.errs...)
}

func (r *Errors) Errors() []IleError {
	if r == nil {
		return nil
	}
	return r.errs
}

func (r *Errors) HasError() bool {
	if r == nil {
		return false
	}
	return len(r.errs) > 0
}

// Error joins the formatted messages of all errors, one per line
func (r *Errors) Error() string {
	lines := make([]string, len(r.Errors()))
	for i, err := range r.Errors() {
		lines[i] = FormatWithCode(err)
	}
	return strings.Join(lines, "\n")
}

// Err returns r as an error, or nil if r holds no errors
func (r *Errors) Err() error {
	if !r.HasError() {
		return nil
	}
	return r
}

func (r *Errors) LogValue() slog.Value {
	var vals []slog.Attr
	for i, v := range r.Errors() {
		vals = append(vals, slog.Attr{
			Key: fmt.Sprint("e", i),
			Value: slog.GroupValue(
				slog.Attr{
					Key:   "msg",
					Value: slog.StringValue(FormatWithCode(v)),
				},
			),
		})
	}
	return slog.GroupValue(vals...)
}

// CodeOf returns the code of the first IleError found in err's chain, or None
func CodeOf(err error) ErrCode {
	var ileErr IleError
	if errors.As(err, &ileErr) {
		return ileErr.Code()
	}
	var all *Errors
	if errors.As(err, &all) && all.HasError() {
		return all.errs[0].Code()
	}
	return None
}
