package derbyjson

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/crzwdjk/derbyjson/internal/wire"
)

// ValidateDocument checks the invariants a typed value must satisfy before
// it can be encoded: a supported version, well-formed UUIDs, non-empty
// required names, and enum members inside their closed sets. Violations
// come back as Issues with the offending path.
func ValidateDocument(doc Document) Issues {
	v := &validator{}
	root := wire.Root()
	switch t := doc.(type) {
	case *Game:
		v.game(root, t)
	case *Rosters:
		v.rosters(root, t)
	}
	return v.iss
}

type validator struct {
	iss Issues
}

func (v *validator) report(p *wire.Path, code, msg string) {
	v.iss = append(v.iss, Issue{Path: p.Pointer(), Code: code, Message: msg})
}

func (v *validator) version(p *wire.Path, ver *string) {
	if ver != nil && *ver != Version {
		v.report(p.Field("version"), CodeInvalidVersion, fmt.Sprintf("unsupported DerbyJSON version %q", *ver))
	}
}

func (v *validator) uuids(p *wire.Path, ids []string) {
	for i, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			v.report(p.Index(i), CodeInvalidFormat, fmt.Sprintf("malformed uuid %q", id))
		}
	}
}

func (v *validator) game(p *wire.Path, g *Game) {
	switch g.Type {
	case ObjectGame, ObjectStats, ObjectLeague:
	default:
		v.report(p.Field("type"), CodeInvalidEnum, fmt.Sprintf("invalid document type %q", g.Type))
	}
	v.version(p, g.Version)
	v.uuids(p.Field("uuid"), g.UUID)
	checkEnum(v, p.Field("association"), string(g.Association), associationTable)
	for id, t := range g.Teams {
		v.team(p.Field("teams").Field(id), t)
	}
	for i := range g.Periods {
		v.period(p.Field("periods").Index(i), &g.Periods[i])
	}
	v.notes(p.Field("notes"), g.Notes)
	for i, e := range g.Expulsions {
		if e.Skater == "" {
			v.report(p.Field("expulsions").Index(i).Field("skater"), CodeInvariant, "empty skater")
		}
	}
	for i := range g.Leagues {
		v.league(p.Field("leagues").Index(i), &g.Leagues[i])
	}
}

func (v *validator) rosters(p *wire.Path, r *Rosters) {
	if r.Type != ObjectRosters {
		v.report(p.Field("type"), CodeInvalidEnum, fmt.Sprintf("invalid document type %q", r.Type))
	}
	v.version(p, r.Version)
	v.uuids(p.Field("uuid"), r.UUID)
	for id, t := range r.Teams {
		v.team(p.Field("teams").Field(id), t)
	}
	v.notes(p.Field("notes"), r.Notes)
	for i := range r.Leagues {
		v.league(p.Field("leagues").Index(i), &r.Leagues[i])
	}
}

func (v *validator) team(p *wire.Path, t *Team) {
	if t == nil {
		v.report(p, CodeInvariant, "nil team")
		return
	}
	// Team names may be empty (sole team of a league); person names may not.
	if t.Level != nil {
		checkEnum(v, p.Field("level"), string(*t.Level), teamLevelTable)
	}
	for i := range t.Persons {
		v.person(p.Field("persons").Index(i), &t.Persons[i])
	}
}

func (v *validator) person(p *wire.Path, per *Person) {
	if per.Name == "" {
		v.report(p.Field("name"), CodeInvariant, "empty name")
	}
	v.uuids(p.Field("uuid"), per.UUID)
	for i, c := range per.Certifications {
		checkEnum(v, p.Field("certifications").Index(i).Field("association"), string(c.Association), associationTable)
	}
}

func (v *validator) league(p *wire.Path, l *League) {
	if l.Name == "" {
		v.report(p.Field("name"), CodeInvariant, "empty name")
	}
	v.uuids(p.Field("uuid"), l.UUID)
	for i := range l.Teams {
		v.team(p.Field("teams").Index(i), &l.Teams[i])
	}
}

func (v *validator) notes(p *wire.Path, notes []Note) {
	for i, n := range notes {
		if n.Note == "" {
			v.report(p.Index(i).Field("note"), CodeInvariant, "empty note")
		}
	}
}

func (v *validator) period(p *wire.Path, per *Period) {
	v.timestamp(p.Field("timestamp"), per.Timestamp)
	v.timestamp(p.Field("end"), per.End)
	for i, ev := range per.Jams {
		ep := p.Field("jams").Index(i)
		switch t := ev.(type) {
		case *Jam:
			v.jam(ep, t)
		case *Timeout:
			checkEnum(v, ep.Field("timeout"), string(t.Timeout), teamTypeTable)
			v.timestamp(ep.Field("timestamp"), t.Timestamp)
		case *Note:
			if t.Note == "" {
				v.report(ep.Field("note"), CodeInvariant, "empty note")
			}
		default:
			v.report(ep, CodeInvariant, "unsupported clock event")
		}
	}
}

func (v *validator) jam(p *wire.Path, jam *Jam) {
	if jam.Number < 1 {
		v.report(p.Field("number"), CodeInvariant, "jam numbers start at 1")
	}
	v.timestamp(p.Field("timestamp"), jam.Timestamp)
	v.notes(p.Field("notes"), jam.Notes)
	for i, ev := range jam.Events {
		v.jamEvent(p.Field("events").Index(i), ev)
	}
}

func (v *validator) jamEvent(p *wire.Path, ev JamEvent) {
	if ev == nil {
		v.report(p, CodeInvariant, "nil event")
		return
	}
	if _, ok := eventDecoders[ev.EventKind()]; !ok {
		v.report(p.Field("event"), CodeInvalidEnum, fmt.Sprintf("unknown event kind %q", ev.EventKind()))
		return
	}
	switch t := ev.(type) {
	case *Lineup:
		checkEnum(v, p.Field("position"), string(t.Position), positionTable)
	case *Penalty:
		if t.Severity != nil {
			checkEnum(v, p.Field("severity"), string(*t.Severity), severityTable)
		}
		v.timestamp(p.Field("timestamp"), t.Timestamp)
	case *Pass:
		if t.Number < 1 {
			v.report(p.Field("number"), CodeInvariant, "pass numbers start at 1")
		}
		for i, gp := range t.GhostPoints {
			checkEnum(v, p.Field("ghost_points").Index(i).Field("ghost_point"), string(gp.GhostPoint), ghostTable)
		}
	case *ExitBox:
		if t.Premature != nil {
			checkEnum(v, p.Field("premature"), string(*t.Premature), prematureTable)
		}
	case *LeaveTrack:
		if t.Reason != nil {
			checkEnum(v, p.Field("reason"), string(*t.Reason), leaveReasonTable)
		}
	case *NoteEvent:
		if t.Note == "" {
			v.report(p.Field("note"), CodeInvariant, "empty note")
		}
	}
}

func (v *validator) timestamp(p *wire.Path, ts *Timestamp) {
	if ts == nil {
		return
	}
	if _, ok := timestampKind(string(ts.Kind)); !ok {
		v.report(p, CodeInvalidEnum, fmt.Sprintf("unknown timestamp kind %q", ts.Kind))
	}
}

func checkEnum[T ~string](v *validator, p *wire.Path, got string, table []T) {
	for _, t := range table {
		if string(t) == got {
			return
		}
	}
	v.report(p, CodeInvalidEnum, fmt.Sprintf("invalid value %q", got))
}
