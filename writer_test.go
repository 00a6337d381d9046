package serd

import (
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"
)

func requireSameLines(t *testing.T, want, got string) {
	t.Helper()
	if want == got {
		return
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	require.NoError(t, err)
	t.Fatalf("output mismatch:\n%s", diff)
}

func TestWriteGroupedAppliesSugar(t *testing.T) {
	env := NewEnv(Node{})
	require.NoError(t, env.SetPrefix("ex", NewIRIUnsafe("http://example.org/")))

	stmts := []Statement{
		{Subject: NewIRIUnsafe("http://example.org/alice"), Predicate: RDFType, Object: NewIRIUnsafe("http://example.org/Person")},
		{Subject: NewIRIUnsafe("http://example.org/alice"), Predicate: NewIRIUnsafe("http://example.org/knows"), Object: NewIRIUnsafe("http://example.org/bob")},
		{Subject: NewIRIUnsafe("http://example.org/alice"), Predicate: NewIRIUnsafe("http://example.org/knows"), Object: NewIRIUnsafe("http://example.org/carol")},
	}

	var buf strings.Builder
	w := NewWriter(&buf, env, nil)
	require.NoError(t, w.WriteGrouped(stmts))

	want := "ex:alice a ex:Person ;\n    ex:knows ex:bob ,\n    ex:carol .\n"
	requireSameLines(t, want, buf.String())
}

func TestWriteCollectionSugar(t *testing.T) {
	env := NewEnv(Node{})
	require.NoError(t, env.SetPrefix("ex", NewIRIUnsafe("http://example.org/")))

	head := NewBlankUnsafe("b1")
	stmts := []Statement{
		{Subject: NewIRIUnsafe("http://example.org/alice"), Predicate: NewIRIUnsafe("http://example.org/likes"), Object: head},
		{Subject: head, Predicate: RDFFirst, Object: NewIRIUnsafe("http://example.org/tea")},
		{Subject: head, Predicate: RDFRest, Object: RDFNil},
	}

	var buf strings.Builder
	w := NewWriter(&buf, env, nil)
	require.NoError(t, w.WriteGrouped(stmts))
	require.Contains(t, buf.String(), "(ex:tea)")
}

func TestRoundTripTurtleToNTriples(t *testing.T) {
	input := `@prefix ex: <http://example.org/> .
ex:alice ex:knows ex:bob .
`
	stmts := collectStatements(t, SyntaxTurtle, input)
	require.Len(t, stmts, 1)
	require.Equal(t, "<http://example.org/alice> <http://example.org/knows> <http://example.org/bob> .\n", stmts[0].String())
}
