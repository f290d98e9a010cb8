package calculator

import (
	"fmt"
	"math"

	"github.com/Knetic/govaluate"
)

func float64Arg(name string, args []interface{}) (float64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%s expects exactly one argument", name)
	}
	v, ok := args[0].(float64)
	if !ok {
		return 0, fmt.Errorf("%s expects a number argument", name)
	}
	return v, nil
}

func wrap1(name string, fn func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		v, err := float64Arg(name, args)
		if err != nil {
			return nil, err
		}
		return fn(v), nil
	}
}

var exprFunctions = map[string]govaluate.ExpressionFunction{
	"abs":   wrap1("abs", math.Abs),
	"sqrt":  wrap1("sqrt", math.Sqrt),
	"cbrt":  wrap1("cbrt", math.Cbrt),
	"exp":   wrap1("exp", math.Exp),
	"ln":    wrap1("ln", math.Log),
	"log2":  wrap1("log2", math.Log2),
	"log10": wrap1("log10", math.Log10),
	"sin":   wrap1("sin", math.Sin),
	"cos":   wrap1("cos", math.Cos),
	"tan":   wrap1("tan", math.Tan),
	"asin":  wrap1("asin", math.Asin),
	"acos":  wrap1("acos", math.Acos),
	"atan":  wrap1("atan", math.Atan),
	"floor": wrap1("floor", math.Floor),
	"ceil":  wrap1("ceil", math.Ceil),
	"round": wrap1("round", math.Round),
	"pow": func(args ...interface{}) (interface{}, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("pow expects exactly two arguments")
		}
		x, ok := args[0].(float64)
		if !ok {
			return nil, fmt.Errorf("pow expects number arguments")
		}
		y, ok := args[1].(float64)
		if !ok {
			return nil, fmt.Errorf("pow expects number arguments")
		}
		return math.Pow(x, y), nil
	},
}
