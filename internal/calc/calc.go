// Package calc evaluates arithmetic expressions in postfix (reverse Polish)
// notation over arbitrary-precision decimals.
//
// Tokens are separated by white space. Operands are decimals in the syntax of
// [bigdecimal.Parse]. Operators pop their operands and push the result:
//
//	| Token  | Arity | Result                               |
//	| ------ | ----- | ------------------------------------ |
//	| +      | 2     | a + b                                |
//	| -      | 2     | a - b                                |
//	| *      | 2     | a × b                                |
//	| /      | 2     | a / b                                |
//	| %      | 2     | remainder of a / b                   |
//	| ^      | 2     | a^b, b must be an integer            |
//	| sqrt   | 1     | square root of a                     |
//	| neg    | 1     | -a                                   |
//	| abs    | 1     | |a|                                  |
//
// Every operation uses the context passed to [Evaluate]; an unlimited context
// makes them exact, so division fails on non-terminating quotients.
package calc

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/govalues/bigdecimal"
)

var (
	// ErrNoTokens is returned for an empty expression.
	ErrNoTokens = errors.New("no tokens")
	// ErrStackUnderflow is returned when an operator lacks operands.
	ErrStackUnderflow = errors.New("not enough operands")
	// ErrUnbalanced is returned when more than one value is left after evaluation.
	ErrUnbalanced = errors.New("unbalanced expression")
)

// Evaluate computes the value of a postfix expression such as "1.23 4.56 + 10 *".
func Evaluate(expr string, ctx bigdecimal.Context) (*bigdecimal.Decimal, error) {
	tokens, err := parseTokens(expr)
	if err != nil {
		return nil, errors.Wrap(err, "parsing tokens")
	}
	stack, err := processTokens(tokens, ctx)
	if err != nil {
		return nil, errors.Wrap(err, "processing tokens")
	}
	if len(stack) != 1 {
		return nil, errors.Wrapf(ErrUnbalanced, "post-processed stack contains %v, expected exactly one item", stack)
	}
	return stack[0], nil
}

func parseTokens(expr string) ([]string, error) {
	tokens := strings.Fields(expr)
	if len(tokens) == 0 {
		return nil, ErrNoTokens
	}
	return tokens, nil
}

func processTokens(tokens []string, ctx bigdecimal.Context) ([]*bigdecimal.Decimal, error) {
	stack := make([]*bigdecimal.Decimal, 0, len(tokens))
	var err error
	for _, token := range tokens {
		switch token {
		case "+", "-", "*", "/", "%", "^":
			stack, err = processBinary(stack, token, ctx)
		case "sqrt", "neg", "abs":
			stack, err = processUnary(stack, token, ctx)
		default:
			stack, err = processOperand(stack, token)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "processing token %q", token)
		}
	}
	return stack, nil
}

func processBinary(stack []*bigdecimal.Decimal, token string, ctx bigdecimal.Context) ([]*bigdecimal.Decimal, error) {
	if len(stack) < 2 {
		return nil, ErrStackUnderflow
	}
	left := stack[len(stack)-2]
	right := stack[len(stack)-1]
	stack = stack[:len(stack)-2]
	var (
		result *bigdecimal.Decimal
		err    error
	)
	switch token {
	case "+":
		result, err = left.AddContext(right, ctx)
	case "-":
		result, err = left.SubContext(right, ctx)
	case "*":
		result, err = left.MulContext(right, ctx)
	case "/":
		result, err = left.QuoContext(right, ctx)
	case "%":
		result, err = left.RemContext(right, ctx)
	case "^":
		var n int32
		n, err = right.Int32Exact()
		if err == nil {
			result, err = left.PowContext(int(n), ctx)
		}
	}
	if err != nil {
		return nil, errors.Wrapf(err, "evaluating \"%v %v %s\"", left, right, token)
	}
	return append(stack, result), nil
}

func processUnary(stack []*bigdecimal.Decimal, token string, ctx bigdecimal.Context) ([]*bigdecimal.Decimal, error) {
	if len(stack) < 1 {
		return nil, ErrStackUnderflow
	}
	arg := stack[len(stack)-1]
	stack = stack[:len(stack)-1]
	var (
		result *bigdecimal.Decimal
		err    error
	)
	switch token {
	case "sqrt":
		result, err = arg.Sqrt(ctx)
	case "neg":
		result, err = arg.Neg().Round(ctx)
	case "abs":
		result, err = arg.Abs().Round(ctx)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "evaluating \"%v %s\"", arg, token)
	}
	return append(stack, result), nil
}

func processOperand(stack []*bigdecimal.Decimal, token string) ([]*bigdecimal.Decimal, error) {
	d, err := bigdecimal.Parse(token)
	if err != nil {
		return nil, err
	}
	return append(stack, d), nil
}
