// Package emergency contains the core simulation model.
//
// An Emergency holds five severity scores and an ordered response plan.
// Each call to Activate runs one activation pass: every Response in the
// plan mutates the severity in place, in plan order. Firefighters, Medics
// and RescueTeam derive a capped effect fraction from their resource
// count; Delayed suppresses a wrapped response for a number of passes.
package emergency
