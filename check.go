package quaternions

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats/scalar"
)

// validateUnitNorm panics if the given norm deviates from 1 by more than
// NormTolerance. The check only runs in builds carrying the "debug" tag; release
// builds compile it out entirely, so the unit-norm invariant is advisory there.
func validateUnitNorm(norm float64) {
	if debugChecks {
		if !scalar.EqualWithinAbs(norm, 1, NormTolerance) {
			panic(errors.AssertionFailedf("input quaternion has not unit length: norm is %v", norm))
		}
	}
}
