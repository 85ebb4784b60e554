package router

// StackEntry is one entry in the navigation stack: the flow, the input
// it was called with, and any resume state it returned (scroll
// position, hover index) for restoring on back navigation.
type StackEntry struct {
	Flow   Flow
	Input  any
	Resume any
}

// Stack manages navigation history for back navigation.
type Stack struct {
	entries []StackEntry
}

// NewStack creates an empty navigation stack.
func NewStack() *Stack {
	return &Stack{entries: make([]StackEntry, 0)}
}

// Push records a flow before navigating away from it.
func (s *Stack) Push(flow Flow, input any, resume any) {
	s.entries = append(s.entries, StackEntry{Flow: flow, Input: input, Resume: resume})
}

// Pop removes and returns the top entry, or nil when empty.
func (s *Stack) Pop() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the top entry without removing it, or nil when empty.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// IsEmpty reports whether the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}
