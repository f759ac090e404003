package derbyjson

import (
	"encoding/json"
	"fmt"
	"sort"
)

func decodePeriods(o *obj) []Period {
	arr, path := o.requiredArray("periods")
	periods := make([]Period, 0, len(arr))
	for i, e := range arr {
		if o.d.stopped() {
			break
		}
		m, ok := e.(map[string]any)
		if !ok {
			o.d.reportAt(path.Index(i), CodeInvalidType, "expected object")
			continue
		}
		periods = append(periods, decodePeriod(&obj{d: o.d, path: path.Index(i), m: m}))
	}
	return periods
}

func decodePeriod(o *obj) Period {
	p := Period{
		Timestamp: optTimestamp(o, "timestamp"),
		End:       optTimestamp(o, "end"),
	}
	arr, path := o.requiredArray("jams")
	p.Jams = make([]ClockEvent, 0, len(arr))
	for i, e := range arr {
		if o.d.stopped() {
			break
		}
		m, ok := e.(map[string]any)
		if !ok {
			o.d.reportAt(path.Index(i), CodeInvalidType, "expected object")
			continue
		}
		if ev := decodeClockEvent(&obj{d: o.d, path: path.Index(i), m: m}); ev != nil {
			p.Jams = append(p.Jams, ev)
		}
	}
	o.finishNested()
	return p
}

// decodeClockEvent discriminates the untagged jam/timeout/note union
// structurally: a "timeout" member marks a Timeout, "number" or "events"
// marks a Jam, and "note" marks a bare Note.
func decodeClockEvent(o *obj) ClockEvent {
	if _, ok := o.m["timeout"]; ok {
		t := decodeTimeout(o)
		return &t
	}
	_, hasNumber := o.m["number"]
	_, hasEvents := o.m["events"]
	if hasNumber || hasEvents {
		j := decodeJam(o)
		return &j
	}
	if _, ok := o.m["note"]; ok {
		n := decodeNote(o)
		return &n
	}
	o.d.reportAt(o.path, CodeInvalidType, "unrecognized clock event: expected a jam, timeout, or note")
	return nil
}

func decodeJam(o *obj) Jam {
	j := Jam{
		Number:    o.requiredInt("number"),
		Timestamp: optTimestamp(o, "timestamp"),
		Duration:  o.optInt("duration"),
		Notes:     decodeNoteList(o, "notes", true),
	}
	arr, path := o.requiredArray("events")
	j.Events = make([]JamEvent, 0, len(arr))
	for i, e := range arr {
		if o.d.stopped() {
			break
		}
		m, ok := e.(map[string]any)
		if !ok {
			o.d.reportAt(path.Index(i), CodeInvalidType, "expected object")
			continue
		}
		if ev := decodeJamEvent(&obj{d: o.d, path: path.Index(i), m: m}); ev != nil {
			j.Events = append(j.Events, ev)
		}
	}
	o.finishNested()
	return j
}

func decodeTimeout(o *obj) Timeout {
	t := Timeout{
		Timeout:    requiredEnum(o, "timeout", teamTypeTable),
		Notes:      decodeNoteList(o, "notes", false),
		Injury:     o.optString("injury"),
		Duration:   o.requiredInt("duration"),
		Timestamp:  optTimestamp(o, "timestamp"),
		Review:     o.optString("review"),
		Resolution: o.optString("resolution"),
		Retained:   o.optBool("retained"),
	}
	o.finishNested()
	return t
}

// eventDecoders is the closed tag-to-shape table for jam events. Decode
// dispatches through it in a single step; encode walks the inverse via
// EventKind.
var eventDecoders = map[EventKind]func(*obj) JamEvent{
	EventLineup: func(o *obj) JamEvent {
		return &Lineup{
			Skater:     o.requiredString("skater"),
			StartInBox: o.requiredBool("start_in_box"),
			Position:   requiredEnum(o, "position", positionTable),
		}
	},
	EventPackLap: func(o *obj) JamEvent {
		return &PackLap{
			Timestamp: optTimestamp(o, "timestamp"),
			Count:     o.optInt("count"),
		}
	},
	EventPenalty: func(o *obj) JamEvent {
		return &Penalty{
			Timestamp: optTimestamp(o, "timestamp"),
			Skater:    o.requiredString("skater"),
			Penalty:   o.requiredString("penalty"),
			Severity:  optEnum(o, "severity", severityTable),
			Rescinded: o.optBool("rescinded"),
			Involved:  decodeInvolved(o),
			Cue:       o.optString("cue"),
		}
	},
	EventPass: func(o *obj) JamEvent {
		return &Pass{
			Timestamp:   optTimestamp(o, "timestamp"),
			Completed:   o.optBool("completed"),
			Number:      o.requiredInt("number"),
			Points:      o.optInt("points"),
			Skater:      o.optString("skater"),
			GhostPoints: decodeGhostPoints(o),
		}
	},
	EventStarPass: func(o *obj) JamEvent {
		return &StarPass{
			Timestamp: optTimestamp(o, "timestamp"),
			Skater:    o.optString("skater"),
			Team:      o.optString("team"),
			Completed: o.optBool("completed"),
			Failure:   o.optString("failure"),
		}
	},
	EventLead: func(o *obj) JamEvent {
		return &Lead{
			Timestamp: optTimestamp(o, "timestamp"),
			Skater:    o.requiredString("skater"),
		}
	},
	EventLostLead: func(o *obj) JamEvent {
		return &LostLead{
			Timestamp: optTimestamp(o, "timestamp"),
			Skater:    o.requiredString("skater"),
		}
	},
	EventCall: func(o *obj) JamEvent {
		return &Call{
			Timestamp: optTimestamp(o, "timestamp"),
			Skater:    o.optString("skater"),
			Team:      o.optString("team"),
			Official:  o.optString("official"),
		}
	},
	EventEnterBox: func(o *obj) JamEvent {
		e := &EnterBox{
			Timestamp: optTimestamp(o, "timestamp"),
			Skater:    o.requiredString("skater"),
			Duration:  o.optNumber("duration"),
			Notes:     decodeNoteList(o, "notes", false),
		}
		if so, ok := o.optObject("substitute"); ok {
			e.Substitute = &Substitute{
				Skater: so.requiredString("skater"),
				Reason: so.requiredString("reason"),
			}
			so.finishNested()
		}
		return e
	},
	EventExitBox: func(o *obj) JamEvent {
		return &ExitBox{
			Timestamp: optTimestamp(o, "timestamp"),
			Skater:    o.requiredString("skater"),
			Duration:  o.optNumber("duration"),
			Premature: optEnum(o, "premature", prematureTable),
			NoSkater:  o.optBool("no-skater"),
		}
	},
	EventBoxTime: func(_ *obj) JamEvent {
		return &BoxTime{}
	},
	EventInjury: func(o *obj) JamEvent {
		return &InjuryEvent{
			Timestamp: optTimestamp(o, "timestamp"),
			Skater:    o.requiredString("skater"),
		}
	},
	EventNote: func(o *obj) JamEvent {
		n := &NoteEvent{
			Note:   o.requiredString("note"),
			Author: o.optString("author"),
			Date:   o.optString("date"),
		}
		if no, ok := o.requiredObject("notes"); ok {
			n.Notes = decodeNote(no)
		}
		return n
	},
	EventLeaveTrack: func(o *obj) JamEvent {
		return &LeaveTrack{
			Timestamp:    optTimestamp(o, "timestamp"),
			Skater:       o.requiredString("skater"),
			Reason:       optEnum(o, "reason", leaveReasonTable),
			OpposingPass: o.requiredInt("opposing-pass"),
		}
	},
	EventReturnTrack: func(o *obj) JamEvent {
		return &ReturnTrack{
			Timestamp:    optTimestamp(o, "timestamp"),
			Skater:       o.requiredString("skater"),
			OpposingPass: o.requiredInt("opposing-pass"),
		}
	},
}

func decodeJamEvent(o *obj) JamEvent {
	tagRaw, ok := o.get("event")
	if !ok {
		o.d.reportAt(o.at("event"), CodeDiscriminatorMissing, `missing "event" member`)
		return nil
	}
	tag, ok := tagRaw.(string)
	if !ok {
		o.wrongType("event", "string")
		return nil
	}
	dec, ok := eventDecoders[EventKind(tag)]
	if !ok {
		o.d.report(Issue{
			Path:    o.at("event").Pointer(),
			Code:    CodeDiscriminatorUnknown,
			Message: fmt.Sprintf("unknown event kind %q", tag),
			Hint:    eventKindHint(),
			Params:  map[string]any{"event": tag},
		})
		return nil
	}
	ev := dec(o)
	o.finishNested()
	return ev
}

func eventKindHint() string {
	kinds := make([]string, 0, len(eventDecoders))
	for k := range eventDecoders {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)
	return enumHint(kinds)
}

func decodeInvolved(o *obj) []Involved {
	arr, path, ok := o.optArray("involved")
	if !ok {
		return nil
	}
	out := make([]Involved, 0, len(arr))
	for i, e := range arr {
		m, ok := e.(map[string]any)
		if !ok {
			o.d.reportAt(path.Index(i), CodeInvalidType, "expected object")
			continue
		}
		io := &obj{d: o.d, path: path.Index(i), m: m}
		inv := Involved{
			Skater: io.requiredString("skater"),
			Notes:  decodeNoteList(io, "notes", false),
		}
		io.finishNested()
		out = append(out, inv)
	}
	return out
}

func decodeGhostPoints(o *obj) []GhostPoint {
	arr, path, ok := o.optArray("ghost_points")
	if !ok {
		return nil
	}
	out := make([]GhostPoint, 0, len(arr))
	for i, e := range arr {
		m, ok := e.(map[string]any)
		if !ok {
			o.d.reportAt(path.Index(i), CodeInvalidType, "expected object")
			continue
		}
		gpo := &obj{d: o.d, path: path.Index(i), m: m}
		gp := GhostPoint{
			Skater:     gpo.optString("skater"),
			GhostPoint: requiredEnum(gpo, "ghost_point", ghostTable),
		}
		gpo.finishNested()
		out = append(out, gp)
	}
	return out
}

// optTimestamp decodes the single-key timestamp object: the key picks the
// clock, the value is a string for wall/period and a number for the rest.
func optTimestamp(o *obj, key string) *Timestamp {
	to, ok := o.optObject(key)
	if !ok {
		return nil
	}
	return decodeTimestamp(to)
}

var timestampKinds = []TimestampKind{
	TimestampWall, TimestampEpoch, TimestampPeriod, TimestampSeconds, TimestampJam,
}

func decodeTimestamp(o *obj) *Timestamp {
	if len(o.m) == 0 {
		o.d.reportAt(o.path, CodeDiscriminatorMissing, "timestamp object is empty")
		return nil
	}
	if len(o.m) > 1 {
		o.d.reportAt(o.path, CodeInvalidType, "timestamp must have exactly one member")
		return nil
	}
	var tag string
	var raw any
	for k, v := range o.m {
		tag, raw = k, v
	}
	o.mark(tag)
	kind, ok := timestampKind(tag)
	if !ok {
		o.d.report(Issue{
			Path:    o.at(tag).Pointer(),
			Code:    CodeDiscriminatorUnknown,
			Message: fmt.Sprintf("unknown timestamp kind %q", tag),
			Hint:    enumHint(timestampKinds),
		})
		return nil
	}
	ts := &Timestamp{Kind: kind}
	switch kind {
	case TimestampWall, TimestampPeriod:
		s, ok := raw.(string)
		if !ok {
			o.wrongType(tag, "string")
			return nil
		}
		ts.Text = s
	default:
		num, ok := raw.(json.Number)
		if !ok {
			o.wrongType(tag, "number")
			return nil
		}
		ts.Number = num
	}
	return ts
}

func timestampKind(tag string) (TimestampKind, bool) {
	for _, k := range timestampKinds {
		if string(k) == tag {
			return k, true
		}
	}
	return "", false
}

var (
	teamTypeTable    = []TeamType{TeamHome, TeamAway, TeamOfficials}
	positionTable    = []Position{PositionJammer, PositionPivot, PositionBlocker}
	severityTable    = []PenaltySeverity{SeverityNo, SeverityMinor, SeverityMajor, SeverityExpulsion}
	prematureTable   = []PrematureExitReason{ExitOfficial, ExitSkater, ExitRescinded, ExitMistake}
	leaveReasonTable = []LeaveTrackReason{LeavePenalty, LeaveInjury, LeaveMalfunction, LeaveOther}
	ghostTable       = []GhostPointType{GhostLap, GhostJammerBox, GhostBlockerBox, GhostPivotBox, GhostNotOnTrack, GhostOutOfPlay, GhostUnknown}
)
