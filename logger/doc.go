// Package logger provides structured logging for lazycollect pipelines
// using zerolog.
//
// The library never writes logs unless a Logger is supplied: the default is
// [Nop]. Pipelines log drain start and completion at debug level and failed
// drains at warn level, tagged with the pipeline id.
//
// # Configuration
//
//	logging:
//	  level: debug     # trace, debug, info, warn, error
//	  format: json     # json or console
//	  output: stderr   # stdout or stderr
package logger
