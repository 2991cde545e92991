// Package elevation answers whether the current process holds administrator rights.
package elevation

// Checker queries the privilege level of the running process
type Checker struct{}
