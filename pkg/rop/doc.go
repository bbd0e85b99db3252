// Package rop defines Result[T], the railway value shared by the gate and
// period packages: a success carrying a value, a failure carrying an error,
// or a cancel carrying the context error that stopped the work.
package rop
