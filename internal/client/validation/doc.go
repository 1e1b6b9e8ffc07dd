// Package validation holds the local credential rules applied before anything
// is sent to the authentication API.
//
// Every function is pure: no I/O, no shared state, safe to call on every
// keystroke and from several goroutines. Failures are reported as values
// (Outcome / PasswordOutcome), never as errors or panics.
//
// Lengths are counted in Unicode code points, not UTF-16 code units: a
// character outside the Basic Multilingual Plane, such as an emoji, counts
// once. "Aa1!😀😀" is 6 long here and too short for a password, where a
// UTF-16 count would give 8. Usernames are ASCII, so only passwords and the
// score's length predicates are affected.
package validation
