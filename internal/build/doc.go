// Package build runs the localization pipeline: it materializes an output
// file from the HTML template, substitutes environment and language
// placeholder tokens in it, and optionally renames it to the canonical
// output name.
//
// A placeholder token is the literal text "<namespace>:<dotted-key>" with
// namespace "env" or "i18n". Tokens are matched as plain substrings, never
// parsed. Unresolvable keys substitute the token itself, so untranslated
// placeholders stay visible in the output instead of disappearing.
//
// The pipeline is a strict state machine — Idle, Loaded, Selected,
// Substituted, Finalized — where each step is a transition action: a step
// that fails leaves the machine in its previous state and no later step can
// run. Substitution outcomes are explicit Result values distinguishing
// fatal conditions from recovered soft failures; nothing in the engine
// panics or leaks an exception-style abort into the output file.
package build
