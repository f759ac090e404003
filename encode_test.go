package derbyjson_test

import (
	"encoding/json"
	"reflect"
	"testing"

	derbyjson "github.com/crzwdjk/derbyjson"
)

func ptr[T any](v T) *T { return &v }

func wallTS(s string) *derbyjson.Timestamp {
	return &derbyjson.Timestamp{Kind: derbyjson.TimestampWall, Text: s}
}

func secondsTS(n string) *derbyjson.Timestamp {
	return &derbyjson.Timestamp{Kind: derbyjson.TimestampSeconds, Number: json.Number(n)}
}

// buildGame covers every jam event kind, every clock event shape, and both
// timestamp value forms.
func buildGame() *derbyjson.Game {
	sev := derbyjson.SeverityMajor
	prem := derbyjson.ExitOfficial
	reason := derbyjson.LeaveMalfunction
	return &derbyjson.Game{
		Version:  ptr("0.2"),
		Metadata: map[string]any{"producer": "statsbook-tool", "revision": json.Number("3")},
		Type:     derbyjson.ObjectGame,
		Teams: map[string]*derbyjson.Team{
			"home": {
				Name:  "Home",
				Level: ptr(derbyjson.LevelAllStar),
				Persons: []derbyjson.Person{
					{Name: "Mean Mary", Number: ptr("111"), Roles: []string{"skater"}},
					{Name: "Nasty Nancy", Number: ptr("22X")},
				},
			},
			"away": {
				Name: "Away",
				Persons: []derbyjson.Person{
					{Name: "Fast Frieda", Number: ptr("44")},
				},
			},
		},
		Periods: []derbyjson.Period{
			{
				Timestamp: wallTS("2026-03-14T18:05:00Z"),
				End:       wallTS("2026-03-14T19:02:00Z"),
				Jams: []derbyjson.ClockEvent{
					&derbyjson.Jam{
						Number:    1,
						Timestamp: secondsTS("0"),
						Duration:  ptr(120),
						Events: []derbyjson.JamEvent{
							&derbyjson.Lineup{Skater: "111", StartInBox: false, Position: derbyjson.PositionJammer},
							&derbyjson.Lineup{Skater: "22X", StartInBox: true, Position: derbyjson.PositionBlocker},
							&derbyjson.PackLap{Timestamp: secondsTS("15"), Count: ptr(1)},
							&derbyjson.Penalty{Skater: "22X", Penalty: "B", Severity: &sev,
								Involved: []derbyjson.Involved{{Skater: "44"}}},
							&derbyjson.Pass{Number: 1, Points: ptr(4), Skater: ptr("111"),
								Completed: ptr(true),
								GhostPoints: []derbyjson.GhostPoint{
									{Skater: ptr("44"), GhostPoint: derbyjson.GhostJammerBox},
								}},
							&derbyjson.StarPass{Skater: ptr("111"), Completed: ptr(false), Failure: ptr("dropped")},
							&derbyjson.Lead{Skater: "111"},
							&derbyjson.LostLead{Skater: "111"},
							&derbyjson.Call{Skater: ptr("111")},
							&derbyjson.EnterBox{Skater: "22X", Duration: json.Number("30"),
								Substitute: &derbyjson.Substitute{Skater: "33", Reason: "injury"}},
							&derbyjson.ExitBox{Skater: "22X", Duration: json.Number("28.5"), Premature: &prem},
							&derbyjson.BoxTime{},
							&derbyjson.InjuryEvent{Skater: "44"},
							&derbyjson.NoteEvent{Note: "track wet in turn 3", Author: ptr("HNSO"),
								Notes: derbyjson.Note{Note: "mopped before jam 2"}},
							&derbyjson.LeaveTrack{Skater: "44", Reason: &reason, OpposingPass: 2},
							&derbyjson.ReturnTrack{Skater: "44", OpposingPass: 3},
						},
					},
					&derbyjson.Timeout{Timeout: derbyjson.TeamHome, Duration: 60,
						Review: ptr("was the call correct"), Retained: ptr(true)},
					&derbyjson.Note{Note: "clock stopped for cleanup"},
				},
			},
		},
		UUID:        []string{"e2c1bd63-90e5-4e5c-b0b8-0a9a1e5a7d10"},
		Notes:       []derbyjson.Note{{Note: "sanctioned bout", Author: ptr("THR")}},
		Date:        "2026-03-14",
		Time:        "18:00",
		EndTime:     "20:15",
		Timers:      derbyjson.Timers{Period: derbyjson.Timer{Duration: 1800, CountsDown: true}},
		Expulsions:  []derbyjson.Expulsion{{Skater: "22X", Suspension: false}},
		Sanctioned:  true,
		Association: derbyjson.AssociationWFTDA,
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	doc := buildGame()
	first, err := derbyjson.Encode(doc)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	redecoded, err := derbyjson.Decode(first)
	if err != nil {
		t.Fatalf("decode of encoded output: %v", err)
	}
	second, err := derbyjson.Encode(redecoded)
	if err != nil {
		t.Fatalf("re-encode: %v", err)
	}
	var a, b any
	if err := json.Unmarshal(first, &a); err != nil {
		t.Fatalf("unmarshal first: %v", err)
	}
	if err := json.Unmarshal(second, &b); err != nil {
		t.Fatalf("unmarshal second: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("round trip not stable:\n%s\n%s", first, second)
	}
}

func TestEncodeRoundTripPreservesEvents(t *testing.T) {
	out, err := derbyjson.Encode(buildGame())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	doc, err := derbyjson.Decode(out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	g := doc.(*derbyjson.Game)
	jam, ok := g.Periods[0].Jams[0].(*derbyjson.Jam)
	if !ok {
		t.Fatalf("first clock event should be a jam, got %T", g.Periods[0].Jams[0])
	}
	if len(jam.Events) != 16 {
		t.Fatalf("expected 16 events, got %d", len(jam.Events))
	}
	seen := map[derbyjson.EventKind]bool{}
	for _, ev := range jam.Events {
		seen[ev.EventKind()] = true
	}
	if len(seen) != 15 {
		t.Fatalf("expected all 15 event kinds, got %d: %v", len(seen), seen)
	}
	exit, ok := jam.Events[10].(*derbyjson.ExitBox)
	if !ok {
		t.Fatalf("event 10 should be exit box, got %T", jam.Events[10])
	}
	if exit.Duration != "28.5" {
		t.Fatalf("fractional duration lost: %q", exit.Duration)
	}
	if _, ok := g.Periods[0].Jams[1].(*derbyjson.Timeout); !ok {
		t.Fatalf("second clock event should be a timeout, got %T", g.Periods[0].Jams[1])
	}
	if _, ok := g.Periods[0].Jams[2].(*derbyjson.Note); !ok {
		t.Fatalf("third clock event should be a note, got %T", g.Periods[0].Jams[2])
	}
}

func TestEncodeRoundTripFixture(t *testing.T) {
	doc, err := derbyjson.Decode([]byte(rostersFixture))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	out, err := derbyjson.Encode(doc, derbyjson.EncodeOpt{Indent: "  "})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	again, err := derbyjson.Decode(out)
	if err != nil {
		t.Fatalf("re-decode: %v", err)
	}
	if !reflect.DeepEqual(doc, again) {
		t.Fatalf("typed round trip not stable:\n%#v\n%#v", doc, again)
	}
}

func TestEncodeInvariantEmptyPersonName(t *testing.T) {
	g := buildGame()
	g.Teams["home"].Persons[0].Name = ""
	_, err := derbyjson.Encode(g)
	iss, ok := derbyjson.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	it, ok := iss.At("/teams/home/persons/0/name")
	if !ok || it.Code != derbyjson.CodeInvariant {
		t.Fatalf("expected invariant at the person name, got %v", iss)
	}
}

func TestEncodeInvariantBadUUID(t *testing.T) {
	g := buildGame()
	g.UUID = []string{"not-a-uuid"}
	_, err := derbyjson.Encode(g)
	iss, ok := derbyjson.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	it, ok := iss.At("/uuid/0")
	if !ok || it.Code != derbyjson.CodeInvalidFormat {
		t.Fatalf("expected invalid_format at /uuid/0, got %v", iss)
	}
}

func TestEncodeInvariantBadVersion(t *testing.T) {
	g := buildGame()
	g.Version = ptr("0.1")
	_, err := derbyjson.Encode(g)
	iss, ok := derbyjson.AsIssues(err)
	if !ok || !iss.HasCode(derbyjson.CodeInvalidVersion) {
		t.Fatalf("expected invalid_version, got %v", err)
	}
}

func TestEncodeSkipInvariants(t *testing.T) {
	g := buildGame()
	g.UUID = []string{"not-a-uuid"}
	out, err := derbyjson.Encode(g, derbyjson.EncodeOpt{SkipInvariants: true})
	if err != nil {
		t.Fatalf("skip-invariants encode should succeed: %v", err)
	}
	if len(out) == 0 {
		t.Fatalf("empty output")
	}
}

func TestEncodeNilDocument(t *testing.T) {
	if _, err := derbyjson.Encode(nil); err == nil {
		t.Fatalf("expected error for nil document")
	}
}

func TestValidateDocument(t *testing.T) {
	if iss := derbyjson.ValidateDocument(buildGame()); len(iss) > 0 {
		t.Fatalf("valid game should pass: %v", iss)
	}
	g := buildGame()
	jam := g.Periods[0].Jams[0].(*derbyjson.Jam)
	jam.Number = 0
	iss := derbyjson.ValidateDocument(g)
	it, ok := iss.At("/periods/0/jams/0/number")
	if !ok || it.Code != derbyjson.CodeInvariant {
		t.Fatalf("expected invariant for jam number 0, got %v", iss)
	}
}

func TestNewRostersAndEnsureUUID(t *testing.T) {
	ros := derbyjson.NewRosters(map[string]*derbyjson.Team{
		"home": {Name: "Home", Persons: []derbyjson.Person{{Name: "Mean Mary"}}},
	})
	if len(ros.UUID) != 1 {
		t.Fatalf("new rosters should carry a uuid")
	}
	if iss := derbyjson.ValidateDocument(ros); len(iss) > 0 {
		t.Fatalf("minted uuid should validate: %v", iss)
	}
	first := ros.EnsureUUID()
	if first != ros.UUID[0] || len(ros.UUID) != 1 {
		t.Fatalf("EnsureUUID must not mint twice")
	}

	g := &derbyjson.Game{Type: derbyjson.ObjectGame}
	id := g.EnsureUUID()
	if id == "" || len(g.UUID) != 1 {
		t.Fatalf("EnsureUUID should mint for a bare game")
	}
}
