// Package render serializes committed vdom trees to HTML. It is a
// plain one-way serializer used by the demo server to push frames over
// the wire; there is no hydration or streaming.
package render
