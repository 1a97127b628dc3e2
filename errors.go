package scicalc

import (
	"errors"
	"strconv"
)

// Error kinds. Every error returned by this package matches at least one of
// ErrSyntax, ErrUnresolved, ErrArgument, ErrDegenerate, or ErrNesting under
// errors.Is. Failures of unary, multi-argument, and boolean functions
// additionally match ErrFunc.
var (
	// ErrSyntax is malformed arithmetic: an unexpected character, an
	// unmatched parenthesis, or a missing operand.
	ErrSyntax = errors.New("syntax error")
	// ErrUnresolved is a function call whose closing parenthesis cannot be
	// located.
	ErrUnresolved = errors.New("unresolved call")
	// ErrArgument is a wrong argument count, a non-numeric argument to a
	// boolean function, a domain violation, or a failed precondition.
	ErrArgument = errors.New("invalid argument")
	// ErrDegenerate is GCD or LCM with both inputs zero.
	ErrDegenerate = errors.New("degenerate arithmetic")
	// ErrNesting is an expression nested more deeply than the context allows.
	ErrNesting = errors.New("nesting too deep")
	// ErrFunc is the coarse category for any failure while applying a unary,
	// multi-argument, or boolean function.
	ErrFunc = errors.New("function evaluation failed")
)

// LexError indicates a character that cannot begin any token. It implements
// InputError.
type LexError struct {
	// Text is the offending character.
	Text string
	// Col is the position of the character.
	Col int
}

func (err *LexError) Error() string {
	return errpos(err.Col, "unexpected character "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}

func (err *LexError) Is(target error) bool {
	return target == ErrSyntax
}

// NumberError indicates a malformed number, e.g. one with two decimal points.
// It implements InputError.
type NumberError struct {
	// Text is the number token as scanned up to and including the bad rune.
	Text string
	// Col is the position of the start of the number.
	Col int
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int {
	return err.Col
}

func (err *NumberError) Is(target error) bool {
	return target == ErrSyntax
}

// UnexpectedError indicates a token that is valid on its own but cannot
// appear where it does, e.g. trailing input after a complete expression. It
// implements InputError.
type UnexpectedError struct {
	// Col is the position of the token.
	Col int
	// Text is the token.
	Text string
}

func (err *UnexpectedError) Error() string {
	return "unexpected character at position " + strconv.Itoa(err.Col) + ": " + strconv.Quote(err.Text)
}

func (err *UnexpectedError) Pos() int {
	return err.Col
}

func (err *UnexpectedError) Is(target error) bool {
	return target == ErrSyntax
}

// BracketError is an error indicating mismatched parentheses in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the unmatched bracket or of the end of input.
	Col int
	// Open is true when an open parenthesis was never closed and false when a
	// close parenthesis had no open.
	Open bool
}

func (err *BracketError) Error() string {
	if err.Open {
		return errpos(err.Col, "open bracket ( with no close bracket")
	}
	return errpos(err.Col, "close bracket ) with no open bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) Is(target error) bool {
	return target == ErrSyntax
}

// EmptyExpressionError is an error indicating a missing operand or an empty
// (sub)expression.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression, or "" at end of input.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

func (err *EmptyExpressionError) Is(target error) bool {
	return target == ErrSyntax
}

// NameError indicates a name left in the expression after rewriting, either
// an unknown function or a known one used without a call.
type NameError struct {
	// Name is the leftover name.
	Name string
	// Col is its position in the rewritten text.
	Col int
}

func (err *NameError) Error() string {
	return errpos(err.Col, "unknown name "+strconv.Quote(err.Name))
}

func (err *NameError) Pos() int {
	return err.Col
}

func (err *NameError) Is(target error) bool {
	return target == ErrSyntax
}

// UnclosedCallError is a call site whose closing parenthesis could not be
// found under the matching policy in effect for its function.
type UnclosedCallError struct {
	// Func is the called function's name.
	Func string
	// Col is the position of the call's name in the text being rewritten.
	Col int
}

func (err *UnclosedCallError) Error() string {
	return errpos(err.Col, "no closing bracket for call to "+err.Func)
}

func (err *UnclosedCallError) Pos() int {
	return err.Col
}

func (err *UnclosedCallError) Is(target error) bool {
	return target == ErrUnresolved
}

// CallError is an error indicating a function call with the wrong number of
// arguments.
type CallError struct {
	// Func is the function name that was called.
	Func string
	// Len is the number of arguments the call supplied.
	Len int
}

func (err *CallError) Error() string {
	return "cannot call " + err.Func + " with " + strconv.Itoa(err.Len) + " arguments"
}

func (err *CallError) Is(target error) bool {
	return target == ErrArgument
}

// ArgumentError indicates an argument that could not be turned into a number
// for a function, e.g. a boolean function given something other than a plain
// numeric literal. Err, if not nil, is the reason.
type ArgumentError struct {
	// Func is the function name.
	Func string
	// Text is the argument as written.
	Text string
	// Err is the underlying failure, if any.
	Err error
}

func (err *ArgumentError) Error() string {
	r := "invalid " + err.Func + " input " + strconv.Quote(err.Text)
	if err.Err != nil {
		r += ": " + err.Err.Error()
	}
	return r
}

func (err *ArgumentError) Unwrap() error {
	return err.Err
}

func (err *ArgumentError) Is(target error) bool {
	return target == ErrArgument
}

// DomainError is an error returned when a function is called on an argument
// outside its domain, or when its result cannot be represented as a literal.
type DomainError struct {
	// X is the out-of-domain argument.
	X float64
	// Arg is the 1-based index of the argument, or 0 if the whole call is at
	// fault.
	Arg int
	// Func is a name identifying the function.
	Func string
}

func (err *DomainError) Error() string {
	r := strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	if err.Arg > 0 {
		r += " (argument " + strconv.Itoa(err.Arg) + ")"
	}
	return r
}

func (err *DomainError) Is(target error) bool {
	return target == ErrArgument
}

// DigitsError reports a number with too few digits for a function that
// requires a minimum, namely palindrome.
type DigitsError struct {
	// X is the truncated integer argument.
	X int64
	// Min is the required number of digits.
	Min int
	// Func is the function name.
	Func string
}

func (err *DigitsError) Error() string {
	return err.Func + " needs a number of " + strconv.Itoa(err.Min) + " or more digits, not " + strconv.FormatInt(err.X, 10)
}

func (err *DigitsError) Is(target error) bool {
	return target == ErrArgument
}

// DegenerateError reports GCD or LCM of two zeros.
type DegenerateError struct {
	// Func is the function name.
	Func string
}

func (err *DegenerateError) Error() string {
	return err.Func + " of 0 and 0 is undefined"
}

func (err *DegenerateError) Is(target error) bool {
	return target == ErrDegenerate
}

// DepthError reports an expression nested beyond the context's limit.
type DepthError struct {
	// Max is the limit that was exceeded.
	Max int
	// Col is the position at which the limit was reached, if known.
	Col int
}

func (err *DepthError) Error() string {
	msg := "expression nested more than " + strconv.Itoa(err.Max) + " levels deep"
	if err.Col > 0 {
		return errpos(err.Col, msg)
	}
	return msg
}

func (err *DepthError) Is(target error) bool {
	return target == ErrNesting
}

// FuncError wraps any failure while evaluating the argument of, or applying,
// a unary, multi-argument, or boolean function. It matches ErrFunc as well as
// whatever its cause matches.
type FuncError struct {
	// Func is the function name.
	Func string
	// Err is the cause.
	Err error
}

func (err *FuncError) Error() string {
	return err.Func + ": " + err.Err.Error()
}

func (err *FuncError) Unwrap() error {
	return err.Err
}

func (err *FuncError) Is(target error) bool {
	return target == ErrFunc
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error from the
// arithmetic stage implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*UnexpectedError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*NameError)(nil)
	_ InputError = (*UnclosedCallError)(nil)
)
