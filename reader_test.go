package serd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func collectStatements(t *testing.T, syn Syntax, input string) []Statement {
	t.Helper()
	var stmts []Statement
	sink := SinkFunc{OnStatement: func(s Statement) error {
		stmts = append(stmts, s)
		return nil
	}}
	r := NewReader(syn, sink, nil)
	err := r.Read(strings.NewReader(input), Node{}, Node{})
	require.NoError(t, err)
	return stmts
}

func TestReadNTriplesBasic(t *testing.T) {
	input := `<http://ex/a> <http://ex/p> "hello" .
<http://ex/a> <http://ex/p> "42"^^<http://www.w3.org/2001/XMLSchema#integer> .
<http://ex/a> <http://ex/p> "bonjour"@fr .
`
	stmts := collectStatements(t, SyntaxNTriples, input)
	require.Len(t, stmts, 3)
	require.Equal(t, "hello", stmts[0].Object.Value())
	require.Equal(t, "42", stmts[1].Object.Value())
	lang, ok := stmts[2].Object.Language()
	require.True(t, ok)
	require.Equal(t, "fr", lang)
}

func TestReadTurtlePrefixesAndSugar(t *testing.T) {
	input := `@prefix ex: <http://example.org/> .
ex:alice a ex:Person ;
    ex:knows ex:bob, ex:carol .
`
	var prefixes []string
	var stmts []Statement
	sink := SinkFunc{
		OnPrefix: func(tag string, uri Node) error {
			prefixes = append(prefixes, tag+"="+uri.Value())
			return nil
		},
		OnStatement: func(s Statement) error {
			stmts = append(stmts, s)
			return nil
		},
	}
	r := NewReader(SyntaxTurtle, sink, nil)
	require.NoError(t, r.Read(strings.NewReader(input), Node{}, Node{}))
	require.Equal(t, []string{"ex=http://example.org/"}, prefixes)
	require.Len(t, stmts, 3)
	require.True(t, stmts[0].Predicate.Equal(RDFType))
	require.Equal(t, "http://example.org/Person", stmts[0].Object.Value())
	require.Equal(t, "http://example.org/bob", stmts[1].Object.Value())
	require.Equal(t, "http://example.org/carol", stmts[2].Object.Value())
}

func TestReadTurtleCollection(t *testing.T) {
	input := `@prefix ex: <http://example.org/> .
ex:alice ex:likes ( ex:tea ex:coffee ) .
`
	stmts := collectStatements(t, SyntaxTurtle, input)
	// one rdf:first/rdf:rest pair per item, plus the list-head triple; the
	// backbone is emitted before the statement that references its head,
	// since the parser discovers it while still parsing the object term.
	require.Len(t, stmts, 5)
	last := stmts[len(stmts)-1]
	require.True(t, last.Predicate.Equal(NewIRIUnsafe("http://example.org/likes")))
	require.Equal(t, KindBlank, last.Object.Kind())
	require.True(t, stmts[0].Predicate.Equal(RDFFirst))
	require.Equal(t, "http://example.org/tea", stmts[0].Object.Value())
}

func TestReadTurtleBlankNodePropertyList(t *testing.T) {
	input := `@prefix ex: <http://example.org/> .
ex:alice ex:address [ ex:city "Oslo" ] .
`
	stmts := collectStatements(t, SyntaxTurtle, input)
	require.Len(t, stmts, 2)
	require.Equal(t, "Oslo", stmts[0].Object.Value())
	require.Equal(t, KindBlank, stmts[1].Object.Kind())
}

func TestReadTurtleFeedInChunks(t *testing.T) {
	input := `@prefix ex: <http://example.org/> .
ex:a ex:p ex:b .
ex:a ex:p ex:c .
`
	var stmts []Statement
	sink := SinkFunc{OnStatement: func(s Statement) error {
		stmts = append(stmts, s)
		return nil
	}}
	r := NewReader(SyntaxTurtle, sink, nil)
	require.NoError(t, r.Start(Node{}, Node{}))
	for i := 0; i < len(input); i++ {
		require.NoError(t, r.Feed([]byte{input[i]}))
	}
	require.NoError(t, r.Finish())
	require.Len(t, stmts, 2)
}

func TestReadTurtleSyntaxError(t *testing.T) {
	sink := SinkFunc{}
	r := NewReader(SyntaxTurtle, sink, nil)
	err := r.Read(strings.NewReader(`<http://ex/a> <http://ex/p> `), Node{}, Node{})
	require.Error(t, err)
	require.Equal(t, StatusBadSyntax, StatusOf(err))
}

func TestReadTurtleStackBudget(t *testing.T) {
	var b strings.Builder
	b.WriteString("@prefix ex: <http://example.org/> .\nex:a ex:p ")
	for i := 0; i < maxNestingDepth+10; i++ {
		b.WriteString("[ ex:q ")
	}
	b.WriteString(`"x"`)
	for i := 0; i < maxNestingDepth+10; i++ {
		b.WriteString(" ]")
	}
	b.WriteString(" .\n")

	sink := SinkFunc{}
	r := NewReader(SyntaxTurtle, sink, nil)
	err := r.Read(strings.NewReader(b.String()), Node{}, Node{})
	require.Error(t, err)
	require.Equal(t, StatusBadStack, StatusOf(err))
}
