package derbyjson

import "encoding/json"

// Period is one period of play: an ordered sequence of clock events.
type Period struct {
	Timestamp *Timestamp
	End       *Timestamp
	Jams      []ClockEvent
}

// ClockEvent is a thing that happens during a period: a jam, a stoppage of
// the game clock, or just a note. The wire form carries no tag; the shape
// is discriminated structurally.
type ClockEvent interface {
	clockNode()
}

// Jam is the basic unit of play. Points, penalties, lineups, and just about
// anything else associated with a jam goes into its ordered event list.
type Jam struct {
	Number    int
	Timestamp *Timestamp
	Duration  *int
	Events    []JamEvent
	Notes     []Note
}

func (*Jam) clockNode() {}

// Timeout is a stoppage of the game clock, whether for a team timeout, an
// official review, or an official timeout.
type Timeout struct {
	Timeout TeamType
	Notes   []Note
	Injury  *string // skater
	// Duration in seconds, including lineup time.
	Duration   int
	Timestamp  *Timestamp
	Review     *string
	Resolution *string
	Retained   *bool
}

func (*Timeout) clockNode() {}

// TeamType identifies which bench a clock event belongs to.
type TeamType string

const (
	TeamHome      TeamType = "Home"
	TeamAway      TeamType = "Away"
	TeamOfficials TeamType = "Officials"
)

// EventKind is the closed tag set for jam events; the wire value of the
// "event" member.
type EventKind string

const (
	EventLineup      EventKind = "line up"
	EventPackLap     EventKind = "pack lap"
	EventPenalty     EventKind = "penalty"
	EventPass        EventKind = "pass"
	EventStarPass    EventKind = "star pass"
	EventLead        EventKind = "lead"
	EventLostLead    EventKind = "lost lead"
	EventCall        EventKind = "call"
	EventEnterBox    EventKind = "enter box"
	EventExitBox     EventKind = "exit box"
	EventBoxTime     EventKind = "box time"
	EventInjury      EventKind = "injury"
	EventNote        EventKind = "note"
	EventLeaveTrack  EventKind = "leave track"
	EventReturnTrack EventKind = "return track"
)

// JamEvent is an event that happens during a jam. Each wire event object is
// tagged with an "event" member, which determines what information it
// carries; the set of tags is closed per spec revision.
type JamEvent interface {
	EventKind() EventKind
	jamNode()
}

// Lineup records one skater that has skated in a given jam. A typical jam
// carries ten of these among its events.
type Lineup struct {
	Skater     string
	StartInBox bool
	Position   Position
}

func (*Lineup) EventKind() EventKind { return EventLineup }
func (*Lineup) jamNode()             {}

// PackLap counts laps of the pack, for overtime jams and similar.
type PackLap struct {
	Timestamp *Timestamp
	Count     *int
}

func (*PackLap) EventKind() EventKind { return EventPackLap }
func (*PackLap) jamNode()             {}

// Penalty records a penalty called on a skater.
type Penalty struct {
	Timestamp *Timestamp
	Skater    string
	Penalty   string
	Severity  *PenaltySeverity
	Rescinded *bool
	Involved  []Involved
	Cue       *string
}

func (*Penalty) EventKind() EventKind { return EventPenalty }
func (*Penalty) jamNode()             {}

// Pass is one scoring trip by a jammer.
type Pass struct {
	Timestamp   *Timestamp
	Completed   *bool
	Number      int
	Points      *int
	Skater      *string
	GhostPoints []GhostPoint
}

func (*Pass) EventKind() EventKind { return EventPass }
func (*Pass) jamNode()             {}

// StarPass records a star pass from jammer to pivot.
type StarPass struct {
	Timestamp *Timestamp
	Skater    *string
	Team      *string
	Completed *bool
	Failure   *string
}

func (*StarPass) EventKind() EventKind { return EventStarPass }
func (*StarPass) jamNode()             {}

// Lead marks a jammer earning lead.
type Lead struct {
	Timestamp *Timestamp
	Skater    string
}

func (*Lead) EventKind() EventKind { return EventLead }
func (*Lead) jamNode()             {}

// LostLead marks a lead jammer losing lead.
type LostLead struct {
	Timestamp *Timestamp
	Skater    string
}

func (*LostLead) EventKind() EventKind { return EventLostLead }
func (*LostLead) jamNode()             {}

// Call records a jam being called off.
type Call struct {
	Timestamp *Timestamp
	Skater    *string
	Team      *string
	Official  *string
}

func (*Call) EventKind() EventKind { return EventCall }
func (*Call) jamNode()             {}

// EnterBox records a skater reporting to the penalty box.
type EnterBox struct {
	Timestamp  *Timestamp
	Skater     string
	Duration   json.Number
	Substitute *Substitute
	Notes      []Note
}

func (*EnterBox) EventKind() EventKind { return EventEnterBox }
func (*EnterBox) jamNode()             {}

// ExitBox records a skater leaving the penalty box.
type ExitBox struct {
	Timestamp *Timestamp
	Skater    string
	Duration  json.Number
	Premature *PrematureExitReason
	NoSkater  *bool // wire key "no-skater"
}

func (*ExitBox) EventKind() EventKind { return EventExitBox }
func (*ExitBox) jamNode()             {}

// BoxTime appears in published data but its contents are not actually
// specified; it decodes and encodes as an empty event.
type BoxTime struct{}

func (*BoxTime) EventKind() EventKind { return EventBoxTime }
func (*BoxTime) jamNode()             {}

// InjuryEvent records a skater injured during the jam.
type InjuryEvent struct {
	Timestamp *Timestamp
	Skater    string
}

func (*InjuryEvent) EventKind() EventKind { return EventInjury }
func (*InjuryEvent) jamNode()             {}

// NoteEvent attaches a free-form note to the jam's event stream.
type NoteEvent struct {
	Note   string
	Author *string
	Date   *string
	Notes  Note
}

func (*NoteEvent) EventKind() EventKind { return EventNote }
func (*NoteEvent) jamNode()             {}

// LeaveTrack records a skater leaving the track mid-jam.
type LeaveTrack struct {
	Timestamp *Timestamp
	Skater    string
	Reason    *LeaveTrackReason
	// OpposingPass is the opposing jammer's scoring trip at the time; wire
	// key "opposing-pass".
	OpposingPass int
}

func (*LeaveTrack) EventKind() EventKind { return EventLeaveTrack }
func (*LeaveTrack) jamNode()             {}

// ReturnTrack records a skater returning to the track.
type ReturnTrack struct {
	Timestamp    *Timestamp
	Skater       string
	OpposingPass int // wire key "opposing-pass"
}

func (*ReturnTrack) EventKind() EventKind { return EventReturnTrack }
func (*ReturnTrack) jamNode()             {}

// Position is a skater's position in a jam.
type Position string

const (
	PositionJammer  Position = "jammer"
	PositionPivot   Position = "pivot"
	PositionBlocker Position = "blocker"
)

// PenaltySeverity grades a penalty call.
type PenaltySeverity string

const (
	SeverityNo        PenaltySeverity = "no"
	SeverityMinor     PenaltySeverity = "minor"
	SeverityMajor     PenaltySeverity = "major"
	SeverityExpulsion PenaltySeverity = "expulsion"
)

// PrematureExitReason is why a skater left the penalty box early: an
// officiating error, the skater leaving early, a rescinded penalty, or a
// skater who mistakenly reported to the box.
type PrematureExitReason string

const (
	ExitOfficial  PrematureExitReason = "official"
	ExitSkater    PrematureExitReason = "skater"
	ExitRescinded PrematureExitReason = "rescinded"
	ExitMistake   PrematureExitReason = "mistake"
)

// LeaveTrackReason is why a skater left the track. The "malfuction"
// spelling is what the published spec uses; it is kept verbatim for
// interchange.
type LeaveTrackReason string

const (
	LeavePenalty     LeaveTrackReason = "penalty"
	LeaveInjury      LeaveTrackReason = "injury"
	LeaveMalfunction LeaveTrackReason = "malfuction"
	LeaveOther       LeaveTrackReason = "other"
)

// GhostPoint is a point scored by means other than passing an opponent's
// hips.
type GhostPoint struct {
	Skater     *string
	GhostPoint GhostPointType
}

// GhostPointType classifies a ghost point: lap of jammer, jammer in box,
// blocker in box, pivot in box, not on the track, out of play, or unknown
// causes.
type GhostPointType string

const (
	GhostLap        GhostPointType = "L"
	GhostJammerBox  GhostPointType = "J"
	GhostBlockerBox GhostPointType = "B"
	GhostPivotBox   GhostPointType = "P"
	GhostNotOnTrack GhostPointType = "N"
	GhostOutOfPlay  GhostPointType = "O"
	GhostUnknown    GhostPointType = "G"
)

// Involved names another skater involved in a penalty.
type Involved struct {
	Skater string
	Notes  []Note
}

// Substitute is a skater serving box time for another.
type Substitute struct {
	Skater string
	Reason string
}

// TimestampKind discriminates the timestamp representation; the wire form
// is a single-key object whose key is the kind.
type TimestampKind string

const (
	TimestampWall    TimestampKind = "wall"
	TimestampEpoch   TimestampKind = "epoch"
	TimestampPeriod  TimestampKind = "period"
	TimestampSeconds TimestampKind = "seconds"
	TimestampJam     TimestampKind = "jam"
)

// Timestamp is a point in time expressed against one of several clocks:
// wall-clock and period are strings, epoch, seconds, and jam are numbers.
type Timestamp struct {
	Kind   TimestampKind
	Text   string      // wall, period
	Number json.Number // epoch, seconds, jam
}
