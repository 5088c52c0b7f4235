// Package el provides tag-named helpers over the reactive element
// factory, so component code reads as markup. Every helper accepts
// optional vdom.Props as its first argument followed by children, and
// goes through reactive.H, so signal handles embedded anywhere in the
// arguments are picked up automatically.
package el
