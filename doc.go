package derbyjson

// Package derbyjson maps DerbyJSON v0.2 documents (roller-derby rosters,
// games, and statistics interchange) to a typed value tree and back:
//
// - Decode/DecodeReader/DecodeYAML: JSON or YAML text -> Document
// - Encode/EncodeYAML: Document -> schema-compliant text
// - A stable error model via Issues (JSON Pointer, code, message)
// - LoadRosters for the common roster-file case, with type/version checks
//
// Design policy:
// - Keep only public APIs in the root package; token-level machinery lives
//   under internal/wire, scalar codecs under codec/, the CLI under
//   cmd/derbyjson.
// - Polymorphic shapes (document type, jam events, timestamps) decode
//   through closed tag tables; unknown tags are a hard error.
// - Unknown keys are tolerated by default (the spec is an evolving 0.x):
//   top-level extras land in Game.Extra, nested extras are dropped. Roster
//   documents are strict, matching the published subset.
// - Absent and null optional members both map to nil; Encode omits them.
//   Canonical output therefore drops explicit nulls, which re-decode to
//   the same value.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	doc, err := derbyjson.Decode(data)
//	ros, err := derbyjson.LoadRosters(f)
//	out, err := derbyjson.Encode(doc, derbyjson.EncodeOpt{Indent: "  "})
