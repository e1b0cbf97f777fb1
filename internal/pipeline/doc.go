// Package pipeline implements the stages that turn a book item written in
// Markdown into published HTML.
//
// The stages are:
//   - Markdown preprocessing (line normalization, highlight syntax)
//   - Markdown to HTML fragment conversion via Goldmark
//   - Relative image and link path rewriting
//   - Table decoration: numbering, labelling and templating of every table
//
// Each stage is defined by a small interface so the root easybook package can
// orchestrate them and tests can replace any of them. Publishing the list of
// tables is left to the orchestrator.
package pipeline
