package generator

import (
	"errors"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/estree-gen/ast"
)

// unknownKindNode is a Node whose Type() has no dispatch table entry, to
// exercise the "unknown node kind" error path of spec §7.1.
type unknownKindNode struct{ ast.BaseNode }

func (*unknownKindNode) Type() string { return "TotallyMadeUpNodeKind" }

func TestRenderFailsOnUnknownKind(t *testing.T) {
	_, err := Generate(&unknownKindNode{})
	require.Error(t, err)

	var uk *UnknownKindError
	require.True(t, errors.As(err, &uk), "expected an *UnknownKindError, got %T", err)
	assert.Equal(t, "TotallyMadeUpNodeKind", uk.Kind)
}

// failingWriter always reports a write failure, exercising spec §7.3's
// sink-I/O-failure path.
type failingWriter struct{ cause error }

func (w *failingWriter) WriteString(string) (int, error) { return 0, w.cause }

func TestRenderPropagatesSinkFailureWithCause(t *testing.T) {
	cause := errors.New("disk full")
	_, err := Render(id("x"), Options{Output: &failingWriter{cause: cause}})
	require.Error(t, err)
	assert.Same(t, cause, pkgerrors.Cause(err))
}

func TestRenderNoPartialOutputReturnedOnFailure(t *testing.T) {
	out, err := Generate(&unknownKindNode{})
	require.Error(t, err)
	assert.Empty(t, out)
}
