// Package harness runs a fixed battery of emergency scenarios and
// reports PASS or FAIL for each of them.
package harness
