// Package router chains menu flows into a navigable application.
//
// A flow is a function that shows one menu (or any other blocking
// interaction) and returns a result. The router runs flows in a loop:
// after each one finishes, a single transition function inspects the
// result and decides which flow runs next, with what input. All routing
// logic lives in that one function, so the flow graph is readable in
// one place instead of being scattered across callbacks.
//
// A navigation Stack is available to the transition function for
// back-style navigation: push the current flow before descending into a
// detail flow, pop it when the detail flow is cancelled. Entries carry
// an optional resume payload (e.g. the hover index to restore).
//
// A flow that returns manicotti.ErrCancelled is treated as a "back"
// action rather than a failure: the router swallows the error and hands
// the transition function a nil result.
package router
