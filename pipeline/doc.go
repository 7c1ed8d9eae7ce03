// Package pipeline takes register writes from a trace, describes them and
// decides which of them are sent to the packed event stream.
//
// Events must be processed in the order they appear in the trace. The
// description of a write to one of the pulse timer registers depends on the
// last value written to the sibling register, so every event depends on the
// state left by the events before it.
//
// A Pipeline is not safe for concurrent use. Create a new Pipeline for every
// trace.
package pipeline
