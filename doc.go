// Package casetools provides string case-conversion utilities for identifier
// and config-key formatting.
//
// casetools transforms arbitrary free-form text into two normalized forms:
// camelCase (for generated identifiers) and dot.case (for config keys and
// API parameter names). A shared pipeline handles separator unification,
// character filtering, validation, and word splitting; the two output styles
// differ only in how words are joined.
//
// # Overview
//
// The module consists of four primary packages:
//
//   - caseconv: Convert strings to camelCase and dot.case
//   - caseerrors: Structured error types for programmatic error handling
//   - rewriter: Rewrite YAML config keys to a target case style
//   - generator: Generate Go constant declarations from converted names
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/casetools
//
// # Quick Start
//
// Convert a string to camelCase:
//
//	out, err := caseconv.ToCamelCase("hello-world")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(out) // helloWorld
//
// Convert a string to dot.case:
//
//	out, err := caseconv.ToDotCase("hello_world")
//	fmt.Println(out) // hello.world
//
// Digits are expanded to their English word forms on the camelCase path
// only, so converted names are always valid identifiers:
//
//	out, _ := caseconv.ToCamelCase("hello-123-world")
//	fmt.Println(out) // helloOnetwothreeWorld
//
// # Error Handling
//
// Validation failures are reported through the caseerrors package and can be
// matched with errors.Is:
//
//	_, err := caseconv.ToCamelCase("!!!")
//	if errors.Is(err, caseerrors.ErrNoLetterOrDigit) {
//	    // input had no letters or numbers
//	}
//
// # CLI
//
// The casetools command exposes the library on the command line:
//
//	casetools camel hello-world
//	casetools dot Hello_World
//	casetools rewrite -s camel config.yaml
//	casetools generate -pkg keys server-port http-timeout
//	casetools mcp
//
// The mcp command runs a Model Context Protocol server over stdio exposing
// the same operations as MCP tools.
package casetools
