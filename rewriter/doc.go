// Package rewriter rewrites YAML config keys to a target case style.
//
// The rewriter parses a YAML document (or stream of documents), converts
// every string mapping key with the caseconv pipeline, and re-encodes the
// result. Values, sequences, anchors, and comments are preserved; only key
// scalars change.
//
// # Quick Start
//
//	result, err := rewriter.RewriteYAML(data, caseconv.StyleCamel)
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.Stdout.Write(result.Document)
//
// Keys that cannot be converted are not errors: punctuation-only keys,
// non-string keys, and keys whose rewrite would collide with a sibling are
// left as-is and reported in [RewriteResult.Skipped] with their line number
// and reason. A rewrite therefore always produces a structurally valid
// document.
//
// # Related Packages
//
//   - [github.com/erraggy/casetools/caseconv] - The conversion pipeline applied to each key
//   - [github.com/erraggy/casetools/caseerrors] - Error types surfaced for invalid styles
package rewriter
