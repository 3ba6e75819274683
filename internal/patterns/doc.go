// Package patterns holds the ordered list of regular expressions that
// classify a source file's HTTP client usage.
//
// Detection is textual and approximate. It does not parse JavaScript or
// TypeScript, so it reports false positives (a .get() on a Map or a
// URLSearchParams) and misses calls that the expressions do not anticipate.
// Argument spans are captured up to the first closing parenthesis, so a call
// such as fetch(url(id)) is reported as "fetch(url(id)". Neither limitation is
// meant to be fixed here.
//
// Expressions are compiled with github.com/dlclark/regexp2 without the
// Multiline option. A negated class such as [^)] still spans line breaks.
package patterns
