// Package scopes implements name-indexed member lookup for class
// declarations.
//
// Lookups hand every match to a processor, which answers Next to keep going
// or Stop to end the iteration. A lookup reports Stop only when a processor
// asked for it; a lookup that found nothing reports Next.
package scopes

import (
	"github.com/funvibe/fxresolve/internal/symbols"
)

// ProcessorAction is the control signal returned by lookup processors.
type ProcessorAction int

const (
	Next ProcessorAction = iota
	Stop
)

func (a ProcessorAction) String() string {
	if a == Stop {
		return "stop"
	}
	return "next"
}

// CallableProcessor receives function or variable symbols.
type CallableProcessor func(*symbols.Callable) ProcessorAction

// ClassifierProcessor receives classifier symbols.
type ClassifierProcessor func(*symbols.Class) ProcessorAction

// Scope is a name-indexed view of symbols.
type Scope interface {
	LookupFunctions(name string, process CallableProcessor) ProcessorAction
	LookupProperties(name string, process CallableProcessor) ProcessorAction
	LookupClassifiers(name string, process ClassifierProcessor) ProcessorAction
}

// CompositeScope queries its scopes in order and stops at the first Stop.
type CompositeScope []Scope

func (cs CompositeScope) LookupFunctions(name string, process CallableProcessor) ProcessorAction {
	for _, s := range cs {
		if s.LookupFunctions(name, process) == Stop {
			return Stop
		}
	}
	return Next
}

func (cs CompositeScope) LookupProperties(name string, process CallableProcessor) ProcessorAction {
	for _, s := range cs {
		if s.LookupProperties(name, process) == Stop {
			return Stop
		}
	}
	return Next
}

func (cs CompositeScope) LookupClassifiers(name string, process ClassifierProcessor) ProcessorAction {
	for _, s := range cs {
		if s.LookupClassifiers(name, process) == Stop {
			return Stop
		}
	}
	return Next
}

// CollectFunctions returns every function symbol named name in scope.
func CollectFunctions(scope Scope, name string) []*symbols.Callable {
	var out []*symbols.Callable
	scope.LookupFunctions(name, func(c *symbols.Callable) ProcessorAction {
		out = append(out, c)
		return Next
	})
	return out
}

// CollectProperties returns every variable symbol named name in scope.
func CollectProperties(scope Scope, name string) []*symbols.Callable {
	var out []*symbols.Callable
	scope.LookupProperties(name, func(c *symbols.Callable) ProcessorAction {
		out = append(out, c)
		return Next
	})
	return out
}
