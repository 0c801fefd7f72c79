// Package sanitizer normalizes inbound booking text before validation.
//
// All functions are idempotent - applying them twice produces the same
// result - and side-effect free. Field values are only tidied (whitespace
// collapse, trimming); their content is otherwise stored verbatim.
//
// Phone canonicalization to E.164 is used solely for rate-limit keying,
// never for the persisted booking record.
package sanitizer
