// Package history stores accepted command lines for recall.
//
// Entries carry a unique ID and a timestamp and live in memory, optionally
// mirrored to a JSON-lines file so they survive restarts. Searches run
// newest first and de-duplicate repeated command lines.
package history
