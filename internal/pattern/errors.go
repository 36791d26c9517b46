// ============================================================================
// nomen - pattern based name and code generator
// ============================================================================
//
// Package:     pattern
// Description: Compile error kinds
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package pattern

import (
	"fmt"
	"unicode/utf8"

	nomerror "github.com/msto63/nomen/foundation/core/error"
)

// Sentinels for the five compile error kinds. Match with errors.Is.
var (
	ErrMalformedToken  = nomerror.New("malformed token").WithCode(nomerror.CodePatternMalformedToken)
	ErrUnbalancedGroup = nomerror.New("unbalanced group").WithCode(nomerror.CodePatternUnbalancedGroup)
	ErrEmptyConstruct  = nomerror.New("empty construct").WithCode(nomerror.CodePatternEmptyConstruct)
	ErrInvalidRange    = nomerror.New("invalid range").WithCode(nomerror.CodePatternInvalidRange)
	ErrUnknownClass    = nomerror.New("unknown class key").WithCode(nomerror.CodePatternUnknownClass)
)

// Kinds lists the codes every compile error carries exactly one of
var Kinds = []nomerror.Code{
	nomerror.CodePatternMalformedToken,
	nomerror.CodePatternUnbalancedGroup,
	nomerror.CodePatternEmptyConstruct,
	nomerror.CodePatternInvalidRange,
	nomerror.CodePatternUnknownClass,
}

// KindOf returns the compile error kind of err, or false when err is not
// a compile error
func KindOf(err error) (nomerror.Code, bool) {
	code := nomerror.GetCode(err)
	for _, k := range Kinds {
		if k == code {
			return code, true
		}
	}
	return "", false
}

// compileError builds a coded error positioned at a rune offset.
// r is zero for errors raised at end of input.
func compileError(code nomerror.Code, offset int, r rune, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	err := nomerror.Newf("%s at offset %d", msg, offset).
		WithCode(code).
		WithOperation("compile").
		WithDetail("offset", offset)
	if r != 0 {
		err.WithDetail("rune", string(r))
	}
	return err
}

// invalidEncoding reports the first byte of expr that is not valid UTF-8
// as a malformed token at its rune offset
func invalidEncoding(expr string) error {
	offset := 0
	for i := 0; i < len(expr); offset++ {
		r, size := utf8.DecodeRuneInString(expr[i:])
		if r == utf8.RuneError && size == 1 {
			return nomerror.Newf("invalid UTF-8 byte 0x%02x at offset %d", expr[i], offset).
				WithCode(nomerror.CodePatternMalformedToken).
				WithOperation("compile").
				WithDetail("offset", offset).
				WithDetail("byte", expr[i])
		}
		i += size
	}
	return nil
}
