// Package speech runs text-to-speech playback off the foreground context.
//
// # Overview
//
// The Queue owns the only state shared between execution contexts: one
// pending-request cell and the cancel handle of the in-flight playback, both
// guarded by a mutex. The foreground calls RequestSpeak; a lone background
// worker does the blocking playback so slow audio never stalls the UI.
//
// # Queue Discipline
//
// Latest wins. The pending request is a single replaceable cell plus a
// condition signal — not a drained queue — so rapid repeated requests
// coalesce to exactly one playback of the newest text:
//
//	RequestSpeak("a")   worker busy or not yet scheduled
//	RequestSpeak("b")   replaces "a"
//	RequestSpeak("c")   replaces "b", cancels in-flight playback if any
//	→ worker speaks "c" once
//
// Cancellation of in-progress playback is best effort: the engine's context
// is cancelled and the worker moves on as soon as Speak returns.
//
// # Events
//
// The worker reports Started/Finished/Failed events on a buffered channel
// the foreground drains at its own pace. Emission never blocks the worker;
// under a stalled consumer events are dropped, which is acceptable because
// they only drive notices. A failed utterance is reported once and the
// worker stays alive for the next request.
//
// # Engines
//
// Engine is a one-method interface. The shipped CommandEngine shells out to
// a configurable synthesizer command; tests substitute fakes.
package speech
