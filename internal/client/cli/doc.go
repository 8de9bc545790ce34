// Package cli provides the interactive field-reporting command-line client.
//
// It wires configuration, the SIGER API client, local sqlite storage and an
// interactive REPL around the daily-progress workflow. Typical flow: log in,
// pick a project, activity and sub-activity, fill in the form, attach photos
// and submit.
//
// Key features:
//   - Catalog browsing with cached/demo fallback when the API is unreachable
//   - Create/update resolution for today's report per sub-activity
//   - Concurrent photo uploads with per-photo status
//   - Submission history (remote) and a local submission journal
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
