// Package logger wraps zap with a global sugared logger and context helpers.
//
// Services take a context and log through FromContext, so names and
// key-value pairs attached with WithName and WithKV follow a simulation
// run through every layer. WithLevel lets a single run log more or less
// than the process-wide level.
package logger
