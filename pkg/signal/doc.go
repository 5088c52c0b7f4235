// Package signal implements lazy, identity-stable handles onto derived
// values of an external observable store.
//
// A Handle is obtained from Derive and stands for "the current value of
// selector(store.CurrentState())" without reading it eagerly. Handles can
// be chained with Field, Call, and Map to derive further values, embedded
// into element-creation arguments, and resolved to concrete values only
// at render time. Subscribing to a handle fires exactly when the selected
// value changes according to the equality function, not on every store
// mutation.
//
// Handles for the same (store, selector, equality) triple are cached by
// identity, so repeated derivations across renders return the same
// instance and the store is subscribed at most once per triple. Selectors
// and equality functions therefore carry identity: create them once with
// NewSelector / NewEquality and reuse the pointers. Passing a freshly
// constructed selector on every derivation is not an error, but it
// defeats the cache.
package signal
