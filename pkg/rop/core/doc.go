// Package core carries cross-cutting options through context.Context so that
// library code (the gate, the period helpers) can pick them up without extra
// parameters. Only the logger is carried today.
package core
