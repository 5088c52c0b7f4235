// Package vdom defines the virtual element tree shared by the
// reactivity layer and the host runtime: VNode, Props, and the
// Component contract with its hook-style capability surface (Ctx).
package vdom
