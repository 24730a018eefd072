// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bounded

import "github.com/avdva/bounded/interval"

// SelectWidth picks the width of a result with bounds iv, computed from
// operands of widths a and b. The candidates are tried in this order:
//	a, b, the width next to a, the width next to b.
// The first one able to represent iv wins, so an operand's width is kept
// whenever the result doesn't grow, and the left operand wins ties.
// If none fits, a *WidthError is returned.
func SelectWidth(iv interval.Interval, a, b Width) (Width, error) {
	return selectWidth(OpNone, iv, a, b)
}

func selectWidth(op Op, iv interval.Interval, a, b Width) (Width, error) {
	if a.Fits(iv.Lo, iv.Hi) {
		return a, nil
	}
	if b.Fits(iv.Lo, iv.Hi) {
		return b, nil
	}
	if next, ok := a.Next(); ok && next.Fits(iv.Lo, iv.Hi) {
		return next, nil
	}
	if next, ok := b.Next(); ok && next.Fits(iv.Lo, iv.Hi) {
		return next, nil
	}
	return 0, &WidthError{Op: op, Interval: iv, A: a, B: b}
}
