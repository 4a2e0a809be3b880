// Package sym implements the SYM configuration notation: a less verbose,
// line-oriented alternative to JSON with nested mappings and sequences,
// symbols, multi-radix numbers, variable definitions and references,
// import directives, and deep-merge/replace/append duplicate-key
// semantics.
//
// # Parsing pipeline
//
// [Parse], [ParseWithVars], and [ParseFile] each run a single-pass,
// character-oriented recognizer over the input text. The recognizer
// layers four concerns on top of one another:
//
//  1. A character cursor tracks byte offset, line, and column (in code
//     points) as it advances through the input.
//
//  2. A trivia skipper discards whitespace and both comment styles
//     (`// line` and `/* block */`) between structural tokens, and a
//     narrower horizontal-only mode skips spaces/tabs after a key to
//     reach its value without crossing a line boundary.
//
//  3. A scalar recognizer classifies a line-lookahead slice as a number
//     (decimal/hex/binary/octal, optionally fractional or scientific),
//     a keyword literal (true/false/null/inf/-inf/nan), or a multi-line
//     unquoted string, taking care not to swallow a trailing `,`
//     separator or a `//` comment, while leaving URL-like `https://`
//     text alone.
//
//  4. A structural parser assembles objects and arrays from fields
//     separated by a comma that may itself straddle a line break, and
//     applies a field's key modifier: merge (via [DeepMerge]), replace
//     `!`, or append `+`.
//
// Above the recognizer, the document engine treats the input as a
// sequence of top-level blocks: any `@import` directives are collected
// (never resolved) into the returned [Result], every non-final block
// whose keys are all prefixed with `$` is registered as variable
// definitions, and the final block is walked to substitute `$name`
// placeholder strings with deep copies of their bound values.
//
// # Values
//
// [Value] is a small tagged union (see [Kind]) rather than an
// interface, so a zero [Value] is a well-formed null and copying a
// [Value] never requires a type switch. Use the `As*` accessors to read
// a [Value], and [NullValue], [BoolValue], [IntValue], [FloatValue],
// [StringValue], [SymbolValue], [ArrayValue], and [ObjectValue] to build
// one.
package sym
