package derbyjson

import "github.com/google/uuid"

// Version is the DerbyJSON revision this package tracks.
const Version = "0.2"

// ObjectType discriminates the top-level document shape. The set is closed
// per spec revision.
type ObjectType string

const (
	ObjectGame    ObjectType = "game"
	ObjectRosters ObjectType = "rosters"
	ObjectStats   ObjectType = "stats"
	ObjectLeague  ObjectType = "league"
)

// Document is the decoded top-level value, one of a closed set of shapes
// discriminated by the "type" member: *Game for game/stats/league documents
// and *Rosters for roster documents.
type Document interface {
	Kind() ObjectType
	docNode()
}

// Game is the full DerbyJSON object. It stores information about a game, a
// league, or a team; which one is determined by Type, which also decides
// which fields carry meaning. The "stats" and "league" kinds share this
// shape.
type Game struct {
	Version     *string
	Metadata    map[string]any
	Type        ObjectType
	Teams       map[string]*Team
	Periods     []Period
	Ruleset     *Ruleset
	Venue       *Venue
	UUID        []string
	Notes       []Note
	Date        string
	Time        string
	EndTime     string
	Leagues     []League
	Timers      Timers
	Tournament  *string
	HostLeague  *string
	Expulsions  []Expulsion
	Suspensions []string
	Signatures  []any // the spec sketches signature objects but does not pin them down
	Sanctioned  bool
	Association Association

	// Extra holds unknown top-level members kept under UnknownPassthrough.
	Extra map[string]any
}

func (g *Game) Kind() ObjectType { return g.Type }
func (*Game) docNode()           {}

// Rosters is the subset of the general object that only stores team and
// league rosters. Unknown keys are rejected when decoding this shape.
type Rosters struct {
	Version  *string
	Metadata map[string]any
	Type     ObjectType
	Teams    map[string]*Team
	UUID     []string
	Notes    []Note
	Leagues  []League

	// Extra holds unknown top-level members kept under UnknownPassthrough.
	// The default policy for this shape is strict, so it is normally nil.
	Extra map[string]any
}

func (r *Rosters) Kind() ObjectType { return r.Type }
func (*Rosters) docNode()           {}

// NewRosters builds a roster document for the given teams, stamped with the
// current spec version and a fresh UUID.
func NewRosters(teams map[string]*Team) *Rosters {
	v := Version
	return &Rosters{
		Version: &v,
		Type:    ObjectRosters,
		Teams:   teams,
		UUID:    []string{uuid.NewString()},
		Notes:   []Note{},
		Leagues: []League{},
	}
}

// EnsureUUID appends a freshly minted UUID when the document carries none
// and returns the first UUID either way.
func (g *Game) EnsureUUID() string {
	if len(g.UUID) == 0 {
		g.UUID = append(g.UUID, uuid.NewString())
	}
	return g.UUID[0]
}

// EnsureUUID appends a freshly minted UUID when the document carries none
// and returns the first UUID either way.
func (r *Rosters) EnsureUUID() string {
	if len(r.UUID) == 0 {
		r.UUID = append(r.UUID, uuid.NewString())
	}
	return r.UUID[0]
}

// Note is a remark about something that happened. Notes may be attached to
// quite a few objects found elsewhere in the schema.
type Note struct {
	Note   string
	Author *string
}

func (*Note) clockNode() {}

// Expulsion records a skater expelled from a game and whether the expulsion
// carries a suspension.
type Expulsion struct {
	Skater     string
	Suspension bool
	Notes      []Note
}

// Ruleset describes the ruleset a game is played under. Clock fields
// (Period, Jam, Lineup, Timeout, Penalty) are "MM:SS" strings; the codec
// package converts them to durations.
type Ruleset struct {
	Version                string
	PeriodCount            int
	Period                 string
	Jam                    string
	Lineup                 string
	Timeout                string
	TimeoutCount           int
	OfficialReviewCount    int
	OfficialReviewRetained bool
	OfficialReviewMaximum  int
	Penalty                string
	Minors                 bool
	MinorsPerMajor         int
	Foulout                int
}

// Timers captures the state of the game clocks.
type Timers struct {
	Countdown *Timer
	Period    Timer
	Halftime  *Timer // wire key "haltime", as published
	Jam       *Timer
}

// Timer is a single clock: duration in seconds, direction, and whether it
// is running.
type Timer struct {
	Duration   int
	CountsDown bool
	Running    bool
}
