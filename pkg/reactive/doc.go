// Package reactive connects signal handles to element creation. H is a
// drop-in element factory: calls whose props and children carry no
// handles pass straight through to vdom.El, while calls that do are
// wrapped in a coordinator component that subscribes to exactly the
// discovered handles and re-renders only that element when one fires.
package reactive
