// Package plog gives each package of this module its own named trace
// logger, the way pdfcpu's pkg/log is used throughout the teacher
// codebase (log.Parse.Printf(...), log.Read.Printf(...)). Logging is
// silent by default; callers of this module configure the underlying
// pdfcpu logger (e.g. log.SetDefaultDebugLogger) if they want the
// trace output.
package plog

import "github.com/pdfcpu/pdfcpu/pkg/log"

// Scan traces the byte-scanning primitives (whitespace/EOL/delimiter).
var Scan = log.Parse

// Object traces the object parser (primitives, composites, dispatcher,
// indirect objects).
var Object = log.Parse

// Filter traces the filter pipeline (ASCII-hex, ASCII-85).
var Filter = log.Read

// Struct traces header and cross-reference table parsing.
var Struct = log.Read
