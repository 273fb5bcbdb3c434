// Package diff compares two slices sorted under the same ordering and reports the
// items found in only one of them. Equal items are matched pairwise, so repeated
// values are treated as a multiset.
package diff

import (
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/lanrat/inplace"
)

// ErrNilResultFunc is returned when no ResultFunc is given.
var ErrNilResultFunc = errors.New("diff: result func must not be nil")

// Sorted walks a and b, which MUST both be sorted by compareFunc, and calls resultFunc
// for every item present in only one of them, in merged order. Order is not validated.
// It returns counts of the items visited and the first error returned by resultFunc,
// wrapped with the position of the item being reported.
func Sorted[E any](a, b []E, compareFunc inplace.CompareFunc[E], resultFunc ResultFunc[E]) (r Result, err error) {
	if resultFunc == nil {
		return r, ErrNilResultFunc
	}
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		c := compareFunc(a[i], b[j])
		switch {
		case c > 0:
			r.TotalB++
			r.ExtraB++
			if err = resultFunc(NEW, b[j]); err != nil {
				return r, errors.Wrapf(err, "diff: B[%d]", j)
			}
			j++
		case c < 0:
			r.TotalA++
			r.ExtraA++
			if err = resultFunc(OLD, a[i]); err != nil {
				return r, errors.Wrapf(err, "diff: A[%d]", i)
			}
			i++
		default:
			r.Common++
			r.TotalA++
			r.TotalB++
			i++
			j++
		}
	}
	// at most one of the slices has items left
	for ; i < len(a); i++ {
		r.TotalA++
		r.ExtraA++
		if err = resultFunc(OLD, a[i]); err != nil {
			return r, errors.Wrapf(err, "diff: A[%d]", i)
		}
	}
	for ; j < len(b); j++ {
		r.TotalB++
		r.ExtraB++
		if err = resultFunc(NEW, b[j]); err != nil {
			return r, errors.Wrapf(err, "diff: B[%d]", j)
		}
	}
	return
}

// Ordered is Sorted using the natural ordering of E.
func Ordered[E constraints.Ordered](a, b []E, resultFunc ResultFunc[E]) (Result, error) {
	return Sorted(a, b, inplace.Ascending[E](), resultFunc)
}

// Unsorted sorts a and b in place with inplace.Sort and then diffs them as Sorted.
func Unsorted[E any](a, b []E, compareFunc inplace.CompareFunc[E], resultFunc ResultFunc[E]) (Result, error) {
	if resultFunc == nil {
		return Result{}, ErrNilResultFunc
	}
	inplace.Sort(a, compareFunc)
	inplace.Sort(b, compareFunc)
	return Sorted(a, b, compareFunc, resultFunc)
}

// PrintDiff is a ResultFunc that prints each difference to stdout, prefixed with the
// Delta symbol (< for OLD, > for NEW).
func PrintDiff[E any](d Delta, item E) error {
	_, err := fmt.Printf("%s %v\n", d, item)
	return err
}
