// Package ui contains the Bubble Tea program for the menu editor.
// Model keeps message orchestration small and delegates the rest: keys.go
// declares bindings and help text, input.go routes key presses for each tab,
// form.go owns the add-item inputs and view.go renders the screen.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a handler registry keyed by message type.
//   - Key presses either switch tabs, move the list cursor, edit the draft or
//     submit it. Every edit is written straight into the state.Session, which
//     is the single owner of the menu, the active tab and the draft.
//   - A successful submit returns a command producing itemCommittedMsg so
//     follow-up feedback (the verbose "Added …" line) runs as its own update.
//
// State ownership:
//   - state.Session (internal/state) holds everything that has behavioural
//     meaning. The addForm mirrors the draft into text inputs and is reloaded
//     from the session whenever the session resets the draft.
//   - internal/ui/state.List tracks the list cursor and viewport only.
package ui
