// Package templog parses temperature log files.
//
// # Overview
//
// A temperature log is a plain text file that sensors append to, one reading
// per line, newest last. Each line holds three ';'-separated fields: a date,
// a time, and the measured value:
//
//	2024-10-20;11:57:00;23.12
//	2024-10-20;12:00:00;23.47
//
// Only the final line is current, so the package exposes a single function,
// Latest, which returns that line decoded into a Reading. Everything before
// the last line is ignored; no history is kept.
//
// # Parsing Rules
//
// Latest reads the file front to back, retaining only the most recent line.
// That line is stripped of leading and trailing whitespace and split on ';'.
// Exactly three fields must result, and the third must parse as a float64.
// The first two fields are carried verbatim into Reading.Date and
// Reading.Time; their content is never validated.
//
// # Error Taxonomy
//
// Every way a reading can fail to materialize maps to a Kind on *Failure:
//
//   - NotFound: the file does not exist
//   - IOError: the file exists but could not be opened or read
//   - EmptyFile: the file has zero lines
//   - MalformedLine: the last line does not have exactly three fields
//     (a blank last line lands here too, since it trims to a single
//     empty field)
//   - InvalidNumber: the third field is not a number; Failure.Field
//     carries the offending text
//
// Failure implements error and Unwrap, so errors.Is(err, os.ErrNotExist)
// works for NotFound and errors.As recovers the full detail. Failure.Notice
// renders the short message shown to the user.
//
// All failures are non-fatal to the caller: the refresh loop reports them
// and tries again on the next tick.
//
// # Design Rationale
//
// Latest is a pure function of the file contents. It holds no state, does
// no retrying, and carries no knowledge of timers or display concerns, so
// repeated calls against an unchanged file return identical results. The
// scheduling of calls belongs to the refresh package and presentation to
// the ui package.
package templog
