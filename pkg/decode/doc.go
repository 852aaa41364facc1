// Package decode implements Decode(bytes) -> TypedRecord for every
// endpoint (§4.2). JSON decoders discriminate polymorphic shapes
// structurally, by probing a raw map for the presence of distinguishing
// fields, since Go has no equivalent of an untagged/adjacently-tagged
// union. The HTML decoder for /tablet-server-clocks walks the first
// <table> in source order using golang.org/x/net/html.
//
// Every decoder is pure and side-effect free beyond debug-level logging
// of malformed input; a decoder never panics and never performs I/O of
// its own (the bytes it decodes always arrive already fetched).
package decode
