// Package expr оборачивает внешний вычислитель выражений для
// пер-воксельных формул редактора. Выражение компилируется один раз
// (с константной свёрткой), затем вычисляется на каждый воксель.
//
// Формула формы возвращает либо скаляр (<= 0 — воксель исключён),
// либо вектор [sel, type, data] — включение плюс выбор материала.
// Формула деформации возвращает вектор [x, y, z] — координату-источник.
package expr

import (
	"fmt"
	"math"

	extexpr "github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// mathFuncs — математические функции, доступные в формулах
var mathFuncs = map[string]interface{}{
	"sqrt":  math.Sqrt,
	"cbrt":  math.Cbrt,
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"asin":  math.Asin,
	"acos":  math.Acos,
	"atan":  math.Atan,
	"atan2": math.Atan2,
	"exp":   math.Exp,
	"log":   math.Log,
	"pow":   math.Pow,
	"hypot": math.Hypot,
	"pi":    math.Pi,
}

// Expression скомпилированная формула с именованными переменными
type Expression struct {
	prog *vm.Program
	vars []string
}

// Compile компилирует формулу с указанными именами переменных.
// Все переменные числовые (float64).
func Compile(src string, vars ...string) (*Expression, error) {
	env := make(map[string]interface{}, len(vars)+len(mathFuncs))
	for name, fn := range mathFuncs {
		env[name] = fn
	}
	for _, v := range vars {
		env[v] = float64(0)
	}

	prog, err := extexpr.Compile(src, extexpr.Env(env))
	if err != nil {
		return nil, fmt.Errorf("expr compile: %w", err)
	}

	return &Expression{prog: prog, vars: vars}, nil
}

// Eval вычисляет формулу для значений переменных в порядке их
// объявления в Compile. Результат — скаляр или вектор.
func (e *Expression) Eval(args ...float64) (interface{}, error) {
	if len(args) != len(e.vars) {
		return nil, fmt.Errorf("expr: ожидалось %d аргументов, получено %d", len(e.vars), len(args))
	}

	env := make(map[string]interface{}, len(e.vars)+len(mathFuncs))
	for name, fn := range mathFuncs {
		env[name] = fn
	}
	for i, v := range e.vars {
		env[v] = args[i]
	}

	out, err := vm.Run(e.prog, env)
	if err != nil {
		return nil, fmt.Errorf("expr eval: %w", err)
	}
	return out, nil
}

// Evaluate вычисляет формулу и приводит результат к скаляру
func (e *Expression) Evaluate(args ...float64) (float64, error) {
	out, err := e.Eval(args...)
	if err != nil {
		return 0, err
	}
	val, ok := ToFloat(out)
	if !ok {
		return 0, fmt.Errorf("expr: результат %T не является числом", out)
	}
	return val, nil
}

// EvaluateVector вычисляет формулу и приводит результат к вектору чисел
func (e *Expression) EvaluateVector(args ...float64) ([]float64, error) {
	out, err := e.Eval(args...)
	if err != nil {
		return nil, err
	}
	vec, ok := ToVector(out)
	if !ok {
		return nil, fmt.Errorf("expr: результат %T не является вектором", out)
	}
	return vec, nil
}

// ToFloat приводит результат вычисления к числу.
// Булевы значения трактуются как 1/0.
func ToFloat(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case bool:
		if val {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// ToVector приводит результат вычисления к вектору чисел
func ToVector(v interface{}) ([]float64, bool) {
	arr, ok := v.([]interface{})
	if !ok {
		return nil, false
	}
	out := make([]float64, len(arr))
	for i, item := range arr {
		val, ok := ToFloat(item)
		if !ok {
			return nil, false
		}
		out[i] = val
	}
	return out, true
}
