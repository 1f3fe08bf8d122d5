package calculator

import (
	"math"
	"strconv"
)

// Func is a scientific function of one real variable.
type Func func(x float64) float64

var scientific = map[string]Func{
	"sin": math.Sin,
	"cos": math.Cos,
	"tan": math.Tan,
	// log is the natural logarithm.
	"log": math.Log,
	"exp": math.Exp,
}

// Scientific evaluates the scientific function with the given name at x. If
// there is no such function, the result is 0.
func Scientific(name string, x float64) float64 {
	f := scientific[name]
	if f == nil {
		return 0
	}
	return f(x)
}

// ScientificNames returns the names understood by Scientific in sorted order.
func ScientificNames() []string {
	names := make([]string, 0, len(scientific))
	for k := range scientific {
		names = append(names, k)
	}
	sortstrs(names)
	return names
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

// Factorial returns n!, or -1 if n is negative. The result silently
// overflows for n > 20.
func Factorial(n int) int64 {
	if n < 0 {
		return -1
	}
	r := int64(1)
	for i := 2; i <= n; i++ {
		r *= int64(i)
	}
	return r
}

// ComplexSum returns z1 + z2.
func ComplexSum(z1, z2 complex128) complex128 {
	return z1 + z2
}

// ComplexProduct returns z1 * z2.
func ComplexProduct(z1, z2 complex128) complex128 {
	return z1 * z2
}

// FormatComplex formats z as (re,im) with each part in the shortest
// representation that reads back as the same value.
func FormatComplex(z complex128) string {
	return "(" + strconv.FormatFloat(real(z), 'g', -1, 64) + "," + strconv.FormatFloat(imag(z), 'g', -1, 64) + ")"
}
