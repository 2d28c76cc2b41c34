package scopes

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/funvibe/fxresolve/internal/ast"
)

// Session caches one declared-member scope per class for the lifetime of a
// resolution session.
type Session struct {
	log zerolog.Logger

	mu     sync.Mutex
	scopes map[*ast.ClassDeclaration]*ClassMemberScope
}

func NewSession(log zerolog.Logger) *Session {
	return &Session{
		log:    log.With().Str("component", "scopes").Logger(),
		scopes: make(map[*ast.ClassDeclaration]*ClassMemberScope),
	}
}

// DeclaredMemberScope returns the member scope of klass, creating it on the
// first request. Creation is cheap; the index itself is built on first lookup.
func (s *Session) DeclaredMemberScope(klass *ast.ClassDeclaration) *ClassMemberScope {
	s.mu.Lock()
	defer s.mu.Unlock()
	if scope, ok := s.scopes[klass]; ok {
		return scope
	}
	scope := newClassMemberScope(klass, s.log)
	s.scopes[klass] = scope
	return scope
}

// Len returns the number of scopes created so far.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.scopes)
}
