package generator

import (
	"fmt"

	"github.com/pkg/errors"
)

// UnknownKindError is returned when the dispatch table has no formatter
// for a node's Type() (spec §7.1). No output is considered valid once
// this occurs; the caller should discard any partial text already
// produced.
type UnknownKindError struct {
	Kind string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("generator: no formatter for kind %q", e.Kind)
}

// MalformedNodeError is returned when a required attribute is missing
// from an otherwise-recognized node (spec §7.2), e.g. a BinaryExpression
// with an empty Operator. This is treated as a caller-side programming
// error, not something the emitter attempts to repair.
type MalformedNodeError struct {
	Kind   string
	Detail string
}

func (e *MalformedNodeError) Error() string {
	return fmt.Sprintf("generator: malformed %s node: %s", e.Kind, e.Detail)
}

// sinkError wraps a write failure from a caller-supplied Writer (spec
// §7.3). The emitter does not retry and does not
// roll back text already written; errors.Cause(err) recovers the
// original error from the sink.
func sinkError(err error) error {
	return errors.Wrap(err, "generator: sink write failed")
}

// fail is the single panic path for all three error kinds documented in
// spec §7: emission aborts immediately, and recover() at the Render
// boundary turns the panic back into a returned error.
func fail(err error) {
	panic(err)
}
