package router

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/manicotti/pkg/manicotti"
)

// Flow is a type-safe identifier for menu flows. Applications define
// their own Flow constants with iota.
//
// Example:
//
//	const (
//	    FlowInventory Flow = iota
//	    FlowItemDetail
//	)
type Flow int

// FlowExit is a special Flow value that signals the router to stop.
const FlowExit Flow = -1

// FlowFunc runs one menu flow: typically it builds a Menu, shows it,
// and converts the selection into a flow-specific result.
type FlowFunc func(input any) (result any, err error)

// TransitionFunc is called after each flow completes to pick the next
// one. It receives the flow that just finished, its result, and the
// navigation stack, and returns the next flow with its input, or
// FlowExit to stop.
type TransitionFunc func(from Flow, result any, stack *Stack) (next Flow, input any)

// Router chains menu flows with explicit data flow: each flow gets a
// typed input and returns a typed result, and a single transition
// function holds all the routing logic.
type Router struct {
	flows      map[Flow]FlowFunc
	transition TransitionFunc
	stack      *Stack
}

// New creates an empty router.
func New() *Router {
	return &Router{
		flows: make(map[Flow]FlowFunc),
		stack: NewStack(),
	}
}

// Register adds a flow to the router.
func (r *Router) Register(flow Flow, fn FlowFunc) *Router {
	r.flows[flow] = fn
	return r
}

// OnTransition sets the transition function.
func (r *Router) OnTransition(fn TransitionFunc) *Router {
	r.transition = fn
	return r
}

// Run starts at the given flow and keeps transitioning until the
// transition function returns FlowExit or a flow fails.
//
// A flow returning manicotti.ErrCancelled is not a failure: the error
// is swallowed and the transition function sees a nil result, so a
// cancelled menu routes like a "back" action.
func (r *Router) Run(start Flow, input any) error {
	if r.transition == nil {
		return fmt.Errorf("router: no transition function set")
	}

	current := start
	currentInput := input

	for {
		fn, ok := r.flows[current]
		if !ok {
			return fmt.Errorf("router: flow %d not registered", current)
		}

		result, err := fn(currentInput)
		if err != nil {
			if errors.Is(err, manicotti.ErrCancelled) {
				result = nil
			} else {
				return fmt.Errorf("router: flow %d: %w", current, err)
			}
		}

		next, nextInput := r.transition(current, result, r.stack)
		if next == FlowExit {
			return nil
		}
		current = next
		currentInput = nextInput
	}
}

// Stack returns the navigation stack for use in transition functions.
func (r *Router) Stack() *Stack {
	return r.stack
}
