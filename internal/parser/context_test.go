package parser

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextStoreAssignsSequentialIDs(t *testing.T) {
	store := NewContextStore()

	first := NewContext(NewVirtualSource("a.surn", ""), 0)
	second := NewContext(NewVirtualSource("b.surn", ""), 0)

	assert.Equal(t, ContextID(1), store.Add(first))
	assert.Equal(t, ContextID(2), store.Add(second))
	assert.Equal(t, ContextID(1), first.Origin())
	assert.Equal(t, ContextID(2), second.Origin())
	assert.Equal(t, ContextID(3), store.NextID())
}

func TestContextStoreGet(t *testing.T) {
	store := NewContextStore()
	ctx := store.New(NewVirtualSource("a.surn", ""))

	got, ok := store.Get(ctx.Origin())
	require.True(t, ok)
	assert.Same(t, ctx, got)

	_, ok = store.Get(0)
	assert.False(t, ok)
	_, ok = store.Get(99)
	assert.False(t, ok)
}

func TestContextStoreRemoveTombstones(t *testing.T) {
	store := NewContextStore()
	store.New(NewVirtualSource("a.surn", ""))
	second := store.New(NewVirtualSource("b.surn", ""))

	require.True(t, store.Remove(1))
	_, ok := store.Get(1)
	assert.False(t, ok)

	// The surviving context keeps its id and the slot is never reused.
	got, ok := store.Get(2)
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.Equal(t, ContextID(3), store.NextID())

	assert.False(t, store.Remove(1))
}

func TestContextStoreGlobals(t *testing.T) {
	store := NewContextStore()
	store.New(NewVirtualSource("a.surn", ""))
	store.New(NewVirtualSource("b.surn", ""))

	store.MarkGlobal(2)
	store.MarkGlobal(1)
	assert.Equal(t, []ContextID{2, 1}, store.Globals())
}

func TestContextLocalIDs(t *testing.T) {
	first := NewContext(NewVirtualSource("a.surn", ""), 1)
	second := NewContext(NewVirtualSource("b.surn", ""), 2)

	assert.Equal(t, uint64(1), first.NextLocalID())
	assert.Equal(t, uint64(2), first.NextLocalID())
	assert.Equal(t, uint64(3), first.NextLocalID())

	// Counters are per context.
	assert.Equal(t, uint64(1), second.NextLocalID())
}

func TestVirtualSource(t *testing.T) {
	origin := NewVirtualSource("repl", "var x = 1;")

	assert.True(t, origin.IsVirtual())
	assert.Equal(t, "repl", origin.DisplayName())

	contents, err := origin.Contents()
	require.NoError(t, err)
	assert.Equal(t, "var x = 1;", contents)
}

func TestFileSource(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "main.surn", []byte("var x = 1;"), 0o644))

	origin := NewSourceOrigin(fs, "main.surn")
	assert.False(t, origin.IsVirtual())
	assert.Equal(t, "main.surn", origin.DisplayName())

	contents, err := origin.Contents()
	require.NoError(t, err)
	assert.Equal(t, "var x = 1;", contents)
}

func TestFileSourceRereads(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "main.surn", []byte("var x = 1;"), 0o644))
	origin := NewSourceOrigin(fs, "main.surn")

	_, err := origin.Contents()
	require.NoError(t, err)

	require.NoError(t, afero.WriteFile(fs, "main.surn", []byte("var y = 2;"), 0o644))
	contents, err := origin.Contents()
	require.NoError(t, err)
	assert.Equal(t, "var y = 2;", contents)
}

func TestFileSourceMissing(t *testing.T) {
	origin := NewSourceOrigin(afero.NewMemMapFs(), "absent.surn")

	_, err := origin.Contents()
	assert.Error(t, err)
}

func TestSourceMap(t *testing.T) {
	sources := NewSourceMap()

	assert.True(t, sources.Add(NewVirtualSource("main", "var x;")))
	assert.False(t, sources.Add(NewVirtualSource("main", "var y;")), "same name registers once")

	// A file whose path matches a virtual name is a different origin.
	fs := afero.NewMemMapFs()
	assert.True(t, sources.Add(NewSourceOrigin(fs, "main")))
	assert.False(t, sources.Add(NewSourceOrigin(fs, "main")))

	assert.Equal(t, 2, sources.Len())

	origin, ok := sources.Get(1)
	require.True(t, ok)
	assert.Equal(t, "main", origin.DisplayName())

	_, ok = sources.Get(99)
	assert.False(t, ok)
}
