package ilerr

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/cottand/overload/frontend/ast"
)

// enableDebugErrorPrinting makes errors include the frame that created them when printed
var enableDebugErrorPrinting = false

const enableDebugFullStacktrace bool = false

type ErrCode int

const (
	None ErrCode = iota
	Syntax
	ConeNotAllowed
	UnknownType
	DuplicateType
	CyclicHierarchy
	NotGeneric
	TypeArity
	NoOverloadMatch
	AmbiguousOverload
	InvalidReceiver
	ConflictingReceiver
)

// IleError is an error a malformed program or call can cause, as opposed to a
// bug in this module
type IleError interface {
	Error() string
	Code() ErrCode
	ast.Positioner

	withStack([]byte) IleError
	getStack() []byte
}

// SetDebugPrinting makes FormatWithCode prefix errors with the frame that created them
func SetDebugPrinting(enabled bool) {
	enableDebugErrorPrinting = enabled
}

func FormatWithCode(e IleError) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			lines := strings.Split(stack, "\n")
			if len(lines) > 6 {
				stack = strings.TrimSpace(lines[6])
			}
		}
		return fmt.Sprintf("%s:(E%03d) %s", stack, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

// FormatWithCodeAndSource is FormatWithCode followed by the offending source
// text, with the range of the error underlined
func FormatWithCodeAndSource(e IleError, source string) string {
	formatted := FormatWithCode(e)
	if source == "" {
		return formatted
	}
	start := min(max(e.Pos(), 0), len(source))
	end := min(max(e.End(), start+1), len(source)+1)
	sb := strings.Builder{}
	sb.WriteString(formatted)
	sb.WriteString("\n\t")
	sb.WriteString(source)
	sb.WriteString("\n\t")
	sb.WriteString(strings.Repeat(" ", start))
	sb.WriteString(strings.Repeat("^", end-start))
	return sb.String()
}

func New[E IleError](err E) IleError {
	return err.withStack(debug.Stack())
}

type Unclassified struct {
	From error
	ast.Positioner
	stack []byte
}

func (e Unclassified) Error() string {
	return fmt.Sprintf("unclassified error: %v", e.From)
}
func (e Unclassified) Unwrap() error    { return e.From }
func (e Unclassified) Code() ErrCode    { return None }
func (e Unclassified) getStack() []byte { return e.stack }
func (e Unclassified) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewSyntax struct {
	ast.Positioner
	ParserMessage string
	stack         []byte
}

func (e NewSyntax) Error() string {
	return e.ParserMessage
}
func (e NewSyntax) Code() ErrCode    { return Syntax }
func (e NewSyntax) getStack() []byte { return e.stack }
func (e NewSyntax) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewConeNotAllowed struct {
	ast.Positioner
	Name  string
	stack []byte
}

func (e NewConeNotAllowed) Error() string {
	return fmt.Sprintf("hierarchy type '%s+' cannot be written in a restriction", e.Name)
}
func (e NewConeNotAllowed) Code() ErrCode    { return ConeNotAllowed }
func (e NewConeNotAllowed) getStack() []byte { return e.stack }
func (e NewConeNotAllowed) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewUnknownType struct {
	ast.Positioner
	Name  string
	stack []byte
}

func (e NewUnknownType) Error() string {
	return fmt.Sprintf("type '%s' is not defined", e.Name)
}
func (e NewUnknownType) Code() ErrCode    { return UnknownType }
func (e NewUnknownType) getStack() []byte { return e.stack }
func (e NewUnknownType) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewDuplicateType struct {
	ast.Positioner
	Name  string
	stack []byte
}

func (e NewDuplicateType) Error() string {
	return fmt.Sprintf("type '%s' is defined more than once", e.Name)
}
func (e NewDuplicateType) Code() ErrCode    { return DuplicateType }
func (e NewDuplicateType) getStack() []byte { return e.stack }
func (e NewDuplicateType) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewCyclicHierarchy struct {
	ast.Positioner
	Cycle []string
	stack []byte
}

func (e NewCyclicHierarchy) Error() string {
	return fmt.Sprintf("type hierarchy contains a cycle: %s", strings.Join(e.Cycle, " < "))
}
func (e NewCyclicHierarchy) Code() ErrCode    { return CyclicHierarchy }
func (e NewCyclicHierarchy) getStack() []byte { return e.stack }
func (e NewCyclicHierarchy) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewNotGeneric struct {
	ast.Positioner
	Name  string
	stack []byte
}

func (e NewNotGeneric) Error() string {
	return fmt.Sprintf("type '%s' is not generic", e.Name)
}
func (e NewNotGeneric) Code() ErrCode    { return NotGeneric }
func (e NewNotGeneric) getStack() []byte { return e.stack }
func (e NewNotGeneric) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewTypeArity struct {
	ast.Positioner
	Name     string
	Expected int
	Found    int
	stack    []byte
}

func (e NewTypeArity) Error() string {
	return fmt.Sprintf("wrong number of type arguments for '%s': expected %d, found %d", e.Name, e.Expected, e.Found)
}
func (e NewTypeArity) Code() ErrCode    { return TypeArity }
func (e NewTypeArity) getStack() []byte { return e.stack }
func (e NewTypeArity) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewNoOverloadMatch struct {
	ast.Positioner
	Name  string
	Args  []string
	stack []byte
}

func (e NewNoOverloadMatch) Error() string {
	return fmt.Sprintf("no overload of '%s' matches (%s)", e.Name, strings.Join(e.Args, ", "))
}
func (e NewNoOverloadMatch) Code() ErrCode    { return NoOverloadMatch }
func (e NewNoOverloadMatch) getStack() []byte { return e.stack }
func (e NewNoOverloadMatch) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewAmbiguousOverload struct {
	ast.Positioner
	Name       string
	Args       []string
	Candidates []string
	stack      []byte
}

func (e NewAmbiguousOverload) Error() string {
	return fmt.Sprintf("call to '%s' with (%s) is ambiguous between %s",
		e.Name, strings.Join(e.Args, ", "), strings.Join(e.Candidates, " and "))
}
func (e NewAmbiguousOverload) Code() ErrCode    { return AmbiguousOverload }
func (e NewAmbiguousOverload) getStack() []byte { return e.stack }
func (e NewAmbiguousOverload) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewInvalidReceiver struct {
	ast.Positioner
	Receiver string
	stack    []byte
}

func (e NewInvalidReceiver) Error() string {
	return fmt.Sprintf("receiver '%s' cannot be or contain self", e.Receiver)
}
func (e NewInvalidReceiver) Code() ErrCode    { return InvalidReceiver }
func (e NewInvalidReceiver) getStack() []byte { return e.stack }
func (e NewInvalidReceiver) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewConflictingReceiver struct {
	ast.Positioner
	Method   string
	First    string
	Conflict string
	stack    []byte
}

func (e NewConflictingReceiver) Error() string {
	return fmt.Sprintf("method '%s' is declared with receiver '%s' and again with '%s'", e.Method, e.First, e.Conflict)
}
func (e NewConflictingReceiver) Code() ErrCode    { return ConflictingReceiver }
func (e NewConflictingReceiver) getStack() []byte { return e.stack }
func (e NewConflictingReceiver) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}
