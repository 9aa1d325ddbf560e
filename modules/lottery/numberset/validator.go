package numberset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/solotto/draw-engine/common/errs"
)

// Validation error kinds. Match against these with errors.Is; the offending
// values travel on the wrapping ValidationError.
const (
	ErrWrongCardinality         = errs.ErrorKind("wrong cardinality")
	ErrOutOfRange               = errs.ErrorKind("out of range")
	ErrDuplicateWithinSelection = errs.ErrorKind("duplicate within selection")
	ErrCombinationAlreadyUsed   = errs.ErrorKind("combination already used")
)

// ValidationError is a user-correctable selection error. It carries the
// offending values so callers can tell the user exactly which numbers were
// rejected.
type ValidationError struct {
	kind    errs.ErrorKind
	message string
	values  []int32
}

func (e *ValidationError) Error() string {
	if len(e.values) == 0 {
		return e.message
	}
	return fmt.Sprintf("%s: %s", e.message, joinNumbers(e.values))
}

func (e *ValidationError) Unwrap() error {
	return e.kind
}

// Values returns the offending numbers, if any.
func (e *ValidationError) Values() []int32 {
	return e.values
}

func newValidationError(kind errs.ErrorKind, message string, values []int32) *ValidationError {
	return &ValidationError{kind: kind, message: message, values: values}
}

// Validate checks a raw candidate selection: exactly Size numbers, all in
// [Min, Max], no repeats. It has no side effects and consults no state.
func Validate(candidate []int32) error {
	if len(candidate) != Size {
		return newValidationError(ErrWrongCardinality, fmt.Sprintf("must select exactly %d numbers", Size), nil)
	}

	outOfRange := lo.Filter(candidate, func(n int32, _ int) bool {
		return n < Min || n > Max
	})
	if len(outOfRange) > 0 {
		return newValidationError(ErrOutOfRange, "invalid numbers", outOfRange)
	}

	seen := make(map[int32]int, Size)
	for _, n := range candidate {
		seen[n]++
	}
	duplicates := lo.Filter(lo.Uniq(candidate), func(n int32, _ int) bool {
		return seen[n] > 1
	})
	if len(duplicates) > 0 {
		return newValidationError(ErrDuplicateWithinSelection, "duplicate numbers found", duplicates)
	}

	return nil
}

// CheckAgainstUsed rejects a candidate whose combination (order-independent)
// matches any previously used selection.
//
// This is an advisory, point-in-time check against a snapshot: two concurrent
// purchase flows can both pass it before either is recorded. The atomic
// enforcement lives in the purchase usecase and the store's unique
// combination constraint; UIs call this for an early, friendly rejection.
func CheckAgainstUsed(candidate NumberSet, used []NumberSet) error {
	for _, u := range used {
		if candidate.SameCombination(u) {
			return AlreadyUsedError(candidate)
		}
	}
	return nil
}

// AlreadyUsedError is the validation error for a taken combination. Exposed
// so the atomic purchase path can report store-level rejections identically
// to the advisory check.
func AlreadyUsedError(candidate NumberSet) error {
	return newValidationError(ErrCombinationAlreadyUsed, "this combination has already been used", candidate.Slice())
}

func joinNumbers(values []int32) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, strconv.FormatInt(int64(v), 10))
	}
	return strings.Join(parts, ", ")
}
