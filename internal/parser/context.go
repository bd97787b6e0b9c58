package parser

import (
	"github.com/spf13/afero"

	"github.com/surn-lang/surn/internal/ast"
)

// ContextID identifies a context inside a ContextStore. IDs are 1-based;
// the zero value means unassigned.
type ContextID int

// Context is the per-source parsing state: where the source came from,
// the program body built from it, and a counter handing out node ids
// local to the source.
type Context struct {
	Source SourceOrigin
	// Body is the parsed program; set once parsing finishes.
	Body *ast.Body

	origin  ContextID
	localID uint64
}

// NewContext returns a context for source with an empty body.
func NewContext(source SourceOrigin, id ContextID) *Context {
	return &Context{Source: source, Body: ast.NewBody(), origin: id}
}

// Origin returns the id the owning store assigned to this context.
func (c *Context) Origin() ContextID { return c.origin }

// NextLocalID returns the next node id local to this context. The first
// call returns 1.
func (c *Context) NextLocalID() uint64 {
	c.localID++
	return c.localID
}

// ContextStore owns every context of a compilation. Contexts live in an
// arena indexed by ContextID; removing one tombstones its slot so the
// ids of the others never shift. Single-writer, no locking.
type ContextStore struct {
	contexts []*Context
	globals  []ContextID
}

// NewContextStore returns an empty store.
func NewContextStore() *ContextStore {
	return &ContextStore{}
}

// Add places ctx in the store and stamps the assigned id onto it.
func (s *ContextStore) Add(ctx *Context) ContextID {
	id := ContextID(len(s.contexts) + 1)
	ctx.origin = id
	s.contexts = append(s.contexts, ctx)
	return id
}

// New creates a context for source, adds it, and returns it.
func (s *ContextStore) New(source SourceOrigin) *Context {
	ctx := NewContext(source, 0)
	s.Add(ctx)
	return ctx
}

// Get returns the context registered under id.
func (s *ContextStore) Get(id ContextID) (*Context, bool) {
	idx := int(id) - 1
	if idx < 0 || idx >= len(s.contexts) || s.contexts[idx] == nil {
		return nil, false
	}
	return s.contexts[idx], true
}

// Remove drops the context registered under id and reports whether it
// was present. The slot is tombstoned, never reused.
func (s *ContextStore) Remove(id ContextID) bool {
	idx := int(id) - 1
	if idx < 0 || idx >= len(s.contexts) || s.contexts[idx] == nil {
		return false
	}
	s.contexts[idx] = nil
	return true
}

// NextID returns the id the next Add will assign.
func (s *ContextStore) NextID() ContextID {
	return ContextID(len(s.contexts) + 1)
}

// MarkGlobal records a context as contributing declarations to the
// global scope.
func (s *ContextStore) MarkGlobal(id ContextID) {
	s.globals = append(s.globals, id)
}

// Globals returns the contexts marked global, in marking order.
func (s *ContextStore) Globals() []ContextID {
	return s.globals
}

// SourceOrigin names where a piece of source text came from: a file on a
// filesystem, or a virtual source held fully in memory (REPL input,
// tests, editor buffers).
type SourceOrigin struct {
	// Path of the backing file; empty for virtual sources.
	Path string
	// Name of a virtual source; empty for file sources.
	Name string

	contents string
	virtual  bool
	fs       afero.Fs
}

// NewSourceOrigin returns an origin backed by a file on fs. The file is
// read again on every Contents call.
func NewSourceOrigin(fs afero.Fs, path string) SourceOrigin {
	return SourceOrigin{Path: path, fs: fs}
}

// NewVirtualSource returns an origin holding contents in memory.
func NewVirtualSource(name, contents string) SourceOrigin {
	return SourceOrigin{Name: name, contents: contents, virtual: true}
}

// IsVirtual reports whether the origin is memory-backed.
func (o SourceOrigin) IsVirtual() bool { return o.virtual }

// Contents returns the source text.
func (o SourceOrigin) Contents() (string, error) {
	if o.virtual {
		return o.contents, nil
	}
	data, err := afero.ReadFile(o.fs, o.Path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DisplayName returns the name diagnostics show for this origin.
func (o SourceOrigin) DisplayName() string {
	if o.virtual {
		return o.Name
	}
	return o.Path
}

// SourceMap registers every origin of a compilation under a numeric id.
// Duplicates are keyed by name for virtual sources and by path for file
// sources.
type SourceMap struct {
	origins map[uint64]SourceOrigin
	current uint64
}

// NewSourceMap returns an empty map.
func NewSourceMap() *SourceMap {
	return &SourceMap{origins: make(map[uint64]SourceOrigin)}
}

// Add registers origin and reports whether it was new.
func (m *SourceMap) Add(origin SourceOrigin) bool {
	key := originKey(origin)
	for _, existing := range m.origins {
		if originKey(existing) == key {
			return false
		}
	}
	m.current++
	m.origins[m.current] = origin
	return true
}

// Get returns the origin registered under id.
func (m *SourceMap) Get(id uint64) (SourceOrigin, bool) {
	origin, ok := m.origins[id]
	return origin, ok
}

// Len returns the number of registered origins.
func (m *SourceMap) Len() int {
	return len(m.origins)
}

// originKey prefixes by backing so a virtual source never collides with
// a file whose path equals its name.
func originKey(o SourceOrigin) string {
	if o.virtual {
		return "virtual:" + o.Name
	}
	return "file:" + o.Path
}
