// Package ui contains the Bubble Tea program that hosts the launcher
// session. The package is structured so the Model type focuses on message
// orchestration, while the session controller owns every state transition.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update routes each message through a typed handler registry so every
//     tea.Msg is handled by a focused function (key presses, pointer motion,
//     bridge events, the external activation signal).
//   - Handlers translate raw input into session actions via internal/keybind
//     and forward them to the controller; they never mutate session state
//     themselves.
//
// State ownership:
//   - Session state lives in internal/session.State, owned exclusively by
//     the controller. The model only mirrors the input text into its
//     textinput widget after transitions.
//   - Surface visibility is owned by internal/surface.Manager driving the
//     terminal compositor in this package; View simply renders whatever
//     surfaces currently exist.
//
// Backend interactions:
//   - A bridge.Bridge streams backend events; Update waits for those events
//     with a re-arming command and hands them to the controller, which runs
//     the result pipeline and decides on surface and request commands.
package ui
