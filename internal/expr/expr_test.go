package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpression_Scalar(t *testing.T) {
	// Тест скалярной формулы с переменными
	e, err := Compile("x*x + y*y", "x", "y")
	require.NoError(t, err)

	val, err := e.Evaluate(3, 4)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, val, 1e-9)
}

func TestExpression_Boolean(t *testing.T) {
	// Тест предиката: булев результат приводится к 1/0
	e, err := Compile("x <= 1", "x")
	require.NoError(t, err)

	val, err := e.Evaluate(0.5)
	require.NoError(t, err)
	assert.Equal(t, 1.0, val)

	val, err = e.Evaluate(2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, val)
}

func TestExpression_Vector(t *testing.T) {
	// Тест векторного результата
	e, err := Compile("[x + 1, y - 1, 0]", "x", "y", "z")
	require.NoError(t, err)

	out, err := e.EvaluateVector(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 1, 0}, out)
}

func TestExpression_MathFunctions(t *testing.T) {
	// Тест математических функций в формулах
	e, err := Compile("sqrt(x*x + z*z)", "x", "z")
	require.NoError(t, err)

	val, err := e.Evaluate(3, 4)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, val, 1e-9)
}

func TestExpression_CompileError(t *testing.T) {
	// Тест синтаксической ошибки и неизвестной переменной
	_, err := Compile("x +* y", "x", "y")
	assert.Error(t, err)

	_, err = Compile("unknown + 1", "x")
	assert.Error(t, err, "Неизвестный идентификатор должен не пройти компиляцию")
}

func TestExpression_ArgCount(t *testing.T) {
	// Тест несоответствия числа аргументов
	e, err := Compile("x", "x", "y")
	require.NoError(t, err)

	_, err = e.Eval(1)
	assert.Error(t, err, "Неполный набор аргументов должен вернуть ошибку")
}
