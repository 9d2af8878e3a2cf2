//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// Tools in use (pinned via the tool directive in go.mod):
// - github.com/matryer/moq: regenerates the interface mocks next to the
//   //go:generate lines in the service and transport tests.
// - github.com/pressly/goose/v3/cmd/goose: authors and applies the SQL
//   migrations under migrations/.
