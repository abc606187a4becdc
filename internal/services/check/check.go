// Package check validates records line by line for the cadastro-check CLI
package check

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"cadastro/internal/core/brdoc"
	"cadastro/internal/core/profile"
	perr "cadastro/internal/platform/errors"
)

// Kind selects which rule set a line is checked against
type Kind string

// Supported kinds
const (
	KindCPF   Kind = "cpf"
	KindPhone Kind = "phone"
	KindName  Kind = "name"
)

// ErrInvalid is returned in strict mode when at least one record failed
var ErrInvalid = perr.New(perr.ErrorCodeValidation, "invalid records found")

// ExitCode maps a command error to a process status
// 0 on success, 2 when the input itself was unusable, 1 otherwise
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case perr.IsCode(err, perr.ErrorCodeInvalidArgument):
		return 2
	default:
		return 1
	}
}

// maxLine bounds a single input line
const maxLine = 64 * 1024

// Options controls output
type Options struct {
	JSON        bool
	InvalidOnly bool
	Strict      bool
}

// Result is one checked line
type Result struct {
	Source    string `json:"source"`
	Line      int    `json:"line"`
	Value     string `json:"value"`
	Formatted string `json:"formatted"`
	Valid     bool   `json:"valid"`
	Reason    string `json:"reason"`
}

// Summary counts what Run saw
type Summary struct {
	Total   int
	Invalid int
}

// Add folds another summary into s
func (s *Summary) Add(o Summary) {
	s.Total += o.Total
	s.Invalid += o.Invalid
}

// Evaluate checks a single value
func Evaluate(kind Kind, value string) (formatted string, valid bool, reason brdoc.Reason, err error) {
	switch kind {
	case KindCPF:
		c := brdoc.CheckCPF(value)
		return c.Formatted, c.Valid, c.Reason, nil
	case KindPhone:
		c := brdoc.CheckMobilePhone(value)
		return c.Formatted, c.Valid, c.Reason, nil
	case KindName:
		c := profile.CheckName(value)
		return c.Normalized, c.Valid, c.Reason, nil
	}
	return "", false, 0, perr.InvalidArgf("unknown kind %q", kind)
}

// Run reads one value per line from r and writes a result per non blank line to w
// source names r in JSON output. It stops between lines once ctx is done
func Run(ctx context.Context, kind Kind, source string, r io.Reader, w io.Writer, opt Options) (Summary, error) {
	var sum Summary
	enc := json.NewEncoder(w)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLine)
	line := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		line++
		value := strings.TrimSpace(sc.Text())
		if value == "" {
			continue
		}

		formatted, valid, reason, err := Evaluate(kind, value)
		if err != nil {
			return sum, err
		}
		sum.Total++
		if !valid {
			sum.Invalid++
		}
		if opt.InvalidOnly && valid {
			continue
		}

		res := Result{
			Source:    source,
			Line:      line,
			Value:     value,
			Formatted: formatted,
			Valid:     valid,
			Reason:    reason.String(),
		}
		if opt.JSON {
			err = enc.Encode(res)
		} else {
			_, err = fmt.Fprintf(w, "%s\t%s\t%s\n", res.Value, res.Formatted, res.Reason)
		}
		if err != nil {
			return sum, perr.Wrap(err, perr.ErrorCodeUnavailable, "write result")
		}
	}
	if err := sc.Err(); err != nil {
		return sum, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "read %s", source)
	}
	return sum, nil
}
