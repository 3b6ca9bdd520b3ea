// Package context provides a rounding context for chained decimal
// computations.
//
// A Context carries a RoundingMode and latches the first error produced by a
// fallible operation. Once an error is latched, further operations on the
// Context are no-ops returning zero, so a whole computation can be written
// without intermediate error checks and inspected once at the end:
//
//	ctx := context.New(decimal.ToNearestEven)
//	q := ctx.Quo(a, b)
//	r := ctx.Add(q, ctx.Parse("0.5"))
//	if err := ctx.Err(); err != nil {
//		// a/b divided by zero, or "0.5" failed to parse
//	}
package context

import "github.com/milliard/decimal"

// Context is a decimal computation context. It is not safe for concurrent
// use.
type Context struct {
	mode decimal.RoundingMode
	err  error
}

// New returns a Context rounding with the given mode.
func New(mode decimal.RoundingMode) *Context {
	return &Context{mode: mode}
}

// Mode returns the context's rounding mode.
func (c *Context) Mode() decimal.RoundingMode {
	return c.mode
}

// SetMode changes the context's rounding mode and returns c for chaining.
func (c *Context) SetMode(mode decimal.RoundingMode) *Context {
	c.mode = mode
	return c
}

// Err returns the first error recorded by a failed operation, then clears
// it. It returns nil if no operation has failed.
func (c *Context) Err() error {
	err := c.err
	c.err = nil
	return err
}

// Add returns x+y, or zero if an error is latched.
func (c *Context) Add(x, y decimal.Decimal) decimal.Decimal {
	if c.err != nil {
		return decimal.Zero
	}
	return decimal.Add(x, y, c.mode)
}

// Sub returns x-y, or zero if an error is latched.
func (c *Context) Sub(x, y decimal.Decimal) decimal.Decimal {
	if c.err != nil {
		return decimal.Zero
	}
	return decimal.Sub(x, y, c.mode)
}

// Mul returns x*y, or zero if an error is latched.
func (c *Context) Mul(x, y decimal.Decimal) decimal.Decimal {
	if c.err != nil {
		return decimal.Zero
	}
	return decimal.Mul(x, y, c.mode)
}

// Quo returns x/y. Division by zero latches ErrDivisionByZero and returns
// zero, as does any previously latched error.
func (c *Context) Quo(x, y decimal.Decimal) decimal.Decimal {
	if c.err != nil {
		return decimal.Zero
	}
	q, err := decimal.Quo(x, y, c.mode)
	if err != nil {
		c.err = err
		return decimal.Zero
	}
	return q
}

// Rcp returns 1/x, latching errors like Quo.
func (c *Context) Rcp(x decimal.Decimal) decimal.Decimal {
	return c.Quo(decimal.One, x)
}

// Parse converts s, latching ErrInvalidFormat and returning zero on bad
// input.
func (c *Context) Parse(s string) decimal.Decimal {
	if c.err != nil {
		return decimal.Zero
	}
	d, err := decimal.Parse(s)
	if err != nil {
		c.err = err
		return decimal.Zero
	}
	return d
}
