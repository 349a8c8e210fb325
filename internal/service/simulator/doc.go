// Package simulator runs a scenario file through a number of activation
// passes and renders the resulting severity as a text table or JSON.
package simulator
