// Package supercalc implements an interactive calculator language over exact
// integers, exact fractions, and floating-point reals.
//
// Arithmetic stays exact as long as it can. "1/3 + 1/6" is the fraction 1/2,
// and "(8/27)^(1/3)" is 2/3. Operations that cannot be exact, like "2^0.5" or
// "sin(1)", give reals. Integer overflow is not checked.
//
// Expressions look like math written in notes. "2pi" and "3(x + 1)" are
// products, "-2^2" is -4, "4^3^2" groups to the right, and "5!" is a
// factorial. Vectors are written "<1, 2, 3>" and indexed with "v[0]".
// Functions are defined with "f(x, y) = x y" or written inline as closures,
// "|x| x^2".
//
// A Context holds global variables, including the special variable ans, which
// holds the most recent result. Statements run with Context.Run assign
// variables, define functions, and delete them with "~name".
package supercalc
