// Package config loads, validates and saves simulation scenarios in YAML.
//
// A scenario names the initial severity of an emergency, its ordered
// response plan and how many activation passes to run. BuildEmergency
// turns a validated scenario into a domain emergency.
package config
