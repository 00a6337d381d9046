package serd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mkStatement(s, p, o string) Statement {
	return Statement{
		Subject:   NewIRIUnsafe(s),
		Predicate: NewIRIUnsafe(p),
		Object:    NewIRIUnsafe(o),
	}
}

func TestModelAddAskErase(t *testing.T) {
	m, err := NewModel(OrderSPO, 0, nil, nil)
	require.NoError(t, err)

	s1 := mkStatement("http://ex/a", "http://ex/p", "http://ex/b")
	added, err := m.Add(s1)
	require.NoError(t, err)
	require.True(t, added)
	require.Equal(t, 1, m.Count())
	require.True(t, m.Ask(s1))

	added, err = m.Add(s1)
	require.NoError(t, err)
	require.False(t, added, "adding a duplicate statement must be a no-op")
	require.Equal(t, 1, m.Count())

	require.True(t, m.Erase(s1))
	require.Equal(t, 0, m.Count())
	require.False(t, m.Ask(s1))
}

func TestModelFindByPattern(t *testing.T) {
	m, err := NewModel(OrderSPO, 0, nil, nil)
	require.NoError(t, err)

	stmts := []Statement{
		mkStatement("http://ex/a", "http://ex/knows", "http://ex/b"),
		mkStatement("http://ex/a", "http://ex/knows", "http://ex/c"),
		mkStatement("http://ex/b", "http://ex/knows", "http://ex/c"),
	}
	for _, s := range stmts {
		_, err := m.Add(s)
		require.NoError(t, err)
	}

	matches, err := m.All(Pattern{Subject: NewIRIUnsafe("http://ex/a")})
	require.NoError(t, err)
	require.Len(t, matches, 2)

	matches, err = m.All(Pattern{})
	require.NoError(t, err)
	require.Len(t, matches, 3)
}

func TestModelRequiresStoreGraphsForGraphOrder(t *testing.T) {
	_, err := NewModel(OrderGSPO, 0, nil, nil)
	require.Error(t, err)

	_, err = NewModel(OrderGSPO, FlagStoreGraphs, nil, nil)
	require.NoError(t, err)
}

func TestModelAddIndexDropIndex(t *testing.T) {
	m, err := NewModel(OrderSPO, 0, nil, nil)
	require.NoError(t, err)
	_, err = m.Add(mkStatement("http://ex/a", "http://ex/p", "http://ex/b"))
	require.NoError(t, err)

	require.NoError(t, m.AddIndex(OrderOPS))
	require.Contains(t, m.Orders(), OrderOPS)

	matches, err := m.All(Pattern{Object: NewIRIUnsafe("http://ex/b")})
	require.NoError(t, err)
	require.Len(t, matches, 1)

	require.NoError(t, m.DropIndex(OrderOPS))
	require.NotContains(t, m.Orders(), OrderOPS)

	require.Error(t, m.DropIndex(OrderSPO), "dropping the primary index must fail")
}

func TestCursorInvalidatedByMutation(t *testing.T) {
	m, err := NewModel(OrderSPO, 0, nil, nil)
	require.NoError(t, err)
	_, err = m.Add(mkStatement("http://ex/a", "http://ex/p", "http://ex/b"))
	require.NoError(t, err)
	_, err = m.Add(mkStatement("http://ex/a", "http://ex/p", "http://ex/c"))
	require.NoError(t, err)

	c := m.Find(Pattern{Subject: NewIRIUnsafe("http://ex/a")})
	require.True(t, c.Next())

	_, err = m.Add(mkStatement("http://ex/x", "http://ex/p", "http://ex/y"))
	require.NoError(t, err)

	require.False(t, c.Next())
	require.ErrorIs(t, c.Err(), ErrBadCursor)
}

func TestFaultAllocatorDeniesGrowth(t *testing.T) {
	m, err := NewModel(OrderSPO, 0, faultAfter(0), nil)
	require.NoError(t, err)

	_, err = m.Add(mkStatement("http://ex/a", "http://ex/p", "http://ex/b"))
	require.Error(t, err)
	require.Equal(t, StatusBadAlloc, StatusOf(err))
}

// faultAfter returns an Allocator whose Reserve fails starting with the
// (n+1)'th call, for deterministic allocation-failure injection in tests.
type faultAllocator struct {
	failFrom int
	calls    int
}

func faultAfter(n int) *faultAllocator { return &faultAllocator{failFrom: n} }

func (f *faultAllocator) Reserve(want int) error {
	defer func() { f.calls++ }()
	if f.calls >= f.failFrom {
		return statusErr(StatusBadAlloc, "fault injected")
	}
	return nil
}
