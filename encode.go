package derbyjson

import (
	"encoding/json"

	j "github.com/goccy/go-json"
)

// Encode serializes a typed Document back to schema-compliant JSON. The
// document is checked against its invariants first (unless
// EncodeOpt.SkipInvariants is set), so Decode(Encode(d)) holds for every
// valid d. Encode is pure.
func Encode(doc Document, opts ...EncodeOpt) ([]byte, error) {
	opt := pickEncodeOpt(opts)
	if doc == nil {
		return nil, singleIssue("/", CodeInvalidType, "nil document")
	}
	if !opt.SkipInvariants {
		if iss := ValidateDocument(doc); len(iss) > 0 {
			return nil, iss
		}
	}
	var v map[string]any
	switch t := doc.(type) {
	case *Game:
		v = encodeGame(t)
	case *Rosters:
		v = encodeRosters(t)
	default:
		return nil, singleIssue("/", CodeInvalidType, "unsupported document shape")
	}
	var out []byte
	var err error
	if opt.Indent != "" {
		out, err = j.MarshalIndent(v, "", opt.Indent)
	} else {
		out, err = j.Marshal(v)
	}
	if err != nil {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: "marshal output", Cause: err}}
	}
	return out, nil
}

// ---- wire map construction ----

type wireObj map[string]any

func (m wireObj) putStr(key string, v *string) {
	if v != nil {
		m[key] = *v
	}
}

func (m wireObj) putBool(key string, v *bool) {
	if v != nil {
		m[key] = *v
	}
}

func (m wireObj) putInt(key string, v *int) {
	if v != nil {
		m[key] = *v
	}
}

func (m wireObj) putNum(key string, v json.Number) {
	if v != "" {
		m[key] = v
	}
}

func (m wireObj) putTimestamp(key string, ts *Timestamp) {
	if ts != nil {
		m[key] = encodeTimestamp(ts)
	}
}

func (m wireObj) putNotes(key string, notes []Note) {
	if notes != nil {
		m[key] = encodeNotes(notes)
	}
}

func (m wireObj) putStrings(key string, v []string) {
	if v != nil {
		m[key] = v
	}
}

func encodeGame(g *Game) map[string]any {
	m := wireObj{}
	m.putStr("version", g.Version)
	m["metadata"] = orEmptyMap(g.Metadata)
	m["type"] = string(g.Type)
	m["teams"] = encodeTeams(g.Teams)
	m["periods"] = encodePeriods(g.Periods)
	if g.Ruleset != nil {
		m["ruleset"] = encodeRuleset(g.Ruleset)
	}
	if g.Venue != nil {
		m["venue"] = encodeVenue(g.Venue)
	}
	m.putStrings("uuid", g.UUID)
	m["notes"] = encodeNotes(g.Notes)
	m["date"] = g.Date
	m["time"] = g.Time
	m["end_time"] = g.EndTime
	if g.Leagues != nil {
		m["leagues"] = encodeLeagues(g.Leagues)
	}
	m["timers"] = encodeTimers(g.Timers)
	m.putStr("tournament", g.Tournament)
	m.putStr("host-league", g.HostLeague)
	m["expulsions"] = encodeExpulsions(g.Expulsions)
	m["suspensions"] = orEmptyStrings(g.Suspensions)
	m["signatures"] = orEmptyAny(g.Signatures)
	m["sanctioned"] = g.Sanctioned
	m["association"] = string(g.Association)
	for k, v := range g.Extra {
		if _, taken := m[k]; !taken {
			m[k] = v
		}
	}
	return m
}

func encodeRosters(r *Rosters) map[string]any {
	m := wireObj{}
	m.putStr("version", r.Version)
	if r.Metadata != nil {
		m["metadata"] = r.Metadata
	}
	m["type"] = string(ObjectRosters)
	m["teams"] = encodeTeams(r.Teams)
	m.putStrings("uuid", r.UUID)
	m.putNotes("notes", r.Notes)
	if r.Leagues != nil {
		m["leagues"] = encodeLeagues(r.Leagues)
	}
	for k, v := range r.Extra {
		if _, taken := m[k]; !taken {
			m[k] = v
		}
	}
	return m
}

func encodeTeams(teams map[string]*Team) map[string]any {
	out := make(map[string]any, len(teams))
	for id, t := range teams {
		out[id] = encodeTeam(t)
	}
	return out
}

func encodeTeam(t *Team) map[string]any {
	m := wireObj{}
	m["name"] = t.Name
	m.putStr("league", t.League)
	m.putStr("abbreviation", t.Abbreviation)
	persons := make([]any, 0, len(t.Persons))
	for i := range t.Persons {
		persons = append(persons, encodePerson(&t.Persons[i]))
	}
	m["persons"] = persons
	if t.Level != nil {
		m["level"] = string(*t.Level)
	}
	m.putStr("date", t.Date)
	m.putStr("color", t.Color)
	if t.Logo != nil {
		m["logo"] = encodeLogo(t.Logo)
	}
	return m
}

func encodePerson(p *Person) map[string]any {
	m := wireObj{}
	m["name"] = p.Name
	m.putStr("number", p.Number)
	m.putStr("league", p.League)
	if p.Certifications != nil {
		certs := make([]any, 0, len(p.Certifications))
		for i := range p.Certifications {
			certs = append(certs, encodeCertification(&p.Certifications[i]))
		}
		m["certifications"] = certs
	}
	m.putStr("legal", p.Legal)
	m.putStrings("roles", p.Roles)
	m.putBool("skated", p.Skated)
	m.putStrings("uuid", p.UUID)
	m.putStrings("insurance", p.Insurance)
	return m
}

func encodeCertification(c *Certification) map[string]any {
	m := wireObj{}
	m["association"] = string(c.Association)
	m["certification"] = c.Certification
	m.putInt("level", c.Level)
	m.putStr("endorsement", c.Endorsement)
	return m
}

func encodeLeagues(leagues []League) []any {
	out := make([]any, 0, len(leagues))
	for i := range leagues {
		out = append(out, encodeLeague(&leagues[i]))
	}
	return out
}

func encodeLeague(l *League) map[string]any {
	m := wireObj{}
	m["name"] = l.Name
	m.putStr("abbreviation", l.Abbreviation)
	m.putStrings("uuid", l.UUID)
	if l.Venue != nil {
		m["venue"] = encodeVenue(l.Venue)
	}
	teams := make([]any, 0, len(l.Teams))
	for i := range l.Teams {
		teams = append(teams, encodeTeam(&l.Teams[i]))
	}
	m["teams"] = teams
	if l.Logo != nil {
		m["logo"] = encodeLogo(l.Logo)
	}
	return m
}

func encodeVenue(v *Venue) map[string]any {
	m := wireObj{}
	m["name"] = v.Name
	m["city"] = v.City
	m["state"] = v.State
	m.putStr("url", v.URL)
	m.putStr("country", v.Country)
	m.putStr("email", v.Email)
	m.putStr("fax", v.Fax)
	m.putStr("otheraddr", v.OtherAddr)
	m.putStr("phone", v.Phone)
	m.putStr("pob", v.POB)
	m.putStr("postcode", v.Postcode)
	m.putStr("street", v.Street)
	m.putNotes("notes", v.Notes)
	m.putStrings("uuid", v.UUID)
	if v.Logo != nil {
		logos := make([]any, 0, len(v.Logo))
		for i := range v.Logo {
			logos = append(logos, encodeLogo(&v.Logo[i]))
		}
		m["logo"] = logos
	}
	return m
}

func encodeLogo(l *Logo) map[string]any {
	m := wireObj{}
	m.putStr("url", l.URL)
	m.putStr("small", l.Small)
	m.putStr("medium", l.Medium)
	m.putStr("large", l.Large)
	m.putStr("small_dark", l.SmallDark)
	m.putStr("medium_dark", l.MediumDark)
	m.putStr("large_dark", l.LargeDark)
	m.putStr("small_light", l.SmallLight)
	m.putStr("medium_light", l.MediumLight)
	m.putStr("large_light", l.LargeLight)
	m.putStr("small_greyscale", l.SmallGreyscale)
	m.putStr("medium_greyscale", l.MediumGreyscale)
	m.putStr("large_greyscale", l.LargeGreyscale)
	return m
}

func encodeNotes(notes []Note) []any {
	out := make([]any, 0, len(notes))
	for i := range notes {
		out = append(out, encodeNote(&notes[i]))
	}
	return out
}

func encodeNote(n *Note) map[string]any {
	m := wireObj{}
	m["note"] = n.Note
	m.putStr("author", n.Author)
	return m
}

func encodeExpulsions(exps []Expulsion) []any {
	out := make([]any, 0, len(exps))
	for _, e := range exps {
		m := wireObj{}
		m["skater"] = e.Skater
		m["suspension"] = e.Suspension
		m["notes"] = encodeNotes(e.Notes)
		out = append(out, map[string]any(m))
	}
	return out
}

func encodeRuleset(r *Ruleset) map[string]any {
	return map[string]any{
		"version":                  r.Version,
		"period-count":             r.PeriodCount,
		"period":                   r.Period,
		"jam":                      r.Jam,
		"lineup":                   r.Lineup,
		"timeout":                  r.Timeout,
		"timeout-count":            r.TimeoutCount,
		"official-review-count":    r.OfficialReviewCount,
		"official-review-retained": r.OfficialReviewRetained,
		"official-review-maximum":  r.OfficialReviewMaximum,
		"penalty":                  r.Penalty,
		"minors":                   r.Minors,
		"minors-per-major":         r.MinorsPerMajor,
		"foulout":                  r.Foulout,
	}
}

func encodeTimers(t Timers) map[string]any {
	m := wireObj{}
	if t.Countdown != nil {
		m["countdown"] = encodeTimer(*t.Countdown)
	}
	m["period"] = encodeTimer(t.Period)
	if t.Halftime != nil {
		m["haltime"] = encodeTimer(*t.Halftime)
	}
	if t.Jam != nil {
		m["jam"] = encodeTimer(*t.Jam)
	}
	return m
}

func encodeTimer(t Timer) map[string]any {
	return map[string]any{
		"duration":    t.Duration,
		"counts_down": t.CountsDown,
		"running":     t.Running,
	}
}

func encodePeriods(periods []Period) []any {
	out := make([]any, 0, len(periods))
	for i := range periods {
		out = append(out, encodePeriod(&periods[i]))
	}
	return out
}

func encodePeriod(p *Period) map[string]any {
	m := wireObj{}
	m.putTimestamp("timestamp", p.Timestamp)
	m.putTimestamp("end", p.End)
	jams := make([]any, 0, len(p.Jams))
	for _, ev := range p.Jams {
		jams = append(jams, encodeClockEvent(ev))
	}
	m["jams"] = jams
	return m
}

func encodeClockEvent(ev ClockEvent) map[string]any {
	switch t := ev.(type) {
	case *Jam:
		return encodeJam(t)
	case *Timeout:
		return encodeTimeout(t)
	case *Note:
		return encodeNote(t)
	default:
		return map[string]any{}
	}
}

func encodeJam(jam *Jam) map[string]any {
	m := wireObj{}
	m["number"] = jam.Number
	m.putTimestamp("timestamp", jam.Timestamp)
	m.putInt("duration", jam.Duration)
	events := make([]any, 0, len(jam.Events))
	for _, ev := range jam.Events {
		events = append(events, encodeJamEvent(ev))
	}
	m["events"] = events
	m["notes"] = encodeNotes(jam.Notes)
	return m
}

func encodeTimeout(t *Timeout) map[string]any {
	m := wireObj{}
	m["timeout"] = string(t.Timeout)
	m.putNotes("notes", t.Notes)
	m.putStr("injury", t.Injury)
	m["duration"] = t.Duration
	m.putTimestamp("timestamp", t.Timestamp)
	m.putStr("review", t.Review)
	m.putStr("resolution", t.Resolution)
	m.putBool("retained", t.Retained)
	return m
}

// encodeJamEvent is the inverse of the decode tag table: each variant
// writes its "event" tag plus its own members.
func encodeJamEvent(ev JamEvent) map[string]any {
	m := wireObj{"event": string(ev.EventKind())}
	switch t := ev.(type) {
	case *Lineup:
		m["skater"] = t.Skater
		m["start_in_box"] = t.StartInBox
		m["position"] = string(t.Position)
	case *PackLap:
		m.putTimestamp("timestamp", t.Timestamp)
		m.putInt("count", t.Count)
	case *Penalty:
		m.putTimestamp("timestamp", t.Timestamp)
		m["skater"] = t.Skater
		m["penalty"] = t.Penalty
		if t.Severity != nil {
			m["severity"] = string(*t.Severity)
		}
		m.putBool("rescinded", t.Rescinded)
		if t.Involved != nil {
			inv := make([]any, 0, len(t.Involved))
			for _, iv := range t.Involved {
				im := wireObj{"skater": iv.Skater}
				im.putNotes("notes", iv.Notes)
				inv = append(inv, map[string]any(im))
			}
			m["involved"] = inv
		}
		m.putStr("cue", t.Cue)
	case *Pass:
		m.putTimestamp("timestamp", t.Timestamp)
		m.putBool("completed", t.Completed)
		m["number"] = t.Number
		m.putInt("points", t.Points)
		m.putStr("skater", t.Skater)
		if t.GhostPoints != nil {
			gps := make([]any, 0, len(t.GhostPoints))
			for _, gp := range t.GhostPoints {
				gm := wireObj{"ghost_point": string(gp.GhostPoint)}
				gm.putStr("skater", gp.Skater)
				gps = append(gps, map[string]any(gm))
			}
			m["ghost_points"] = gps
		}
	case *StarPass:
		m.putTimestamp("timestamp", t.Timestamp)
		m.putStr("skater", t.Skater)
		m.putStr("team", t.Team)
		m.putBool("completed", t.Completed)
		m.putStr("failure", t.Failure)
	case *Lead:
		m.putTimestamp("timestamp", t.Timestamp)
		m["skater"] = t.Skater
	case *LostLead:
		m.putTimestamp("timestamp", t.Timestamp)
		m["skater"] = t.Skater
	case *Call:
		m.putTimestamp("timestamp", t.Timestamp)
		m.putStr("skater", t.Skater)
		m.putStr("team", t.Team)
		m.putStr("official", t.Official)
	case *EnterBox:
		m.putTimestamp("timestamp", t.Timestamp)
		m["skater"] = t.Skater
		m.putNum("duration", t.Duration)
		if t.Substitute != nil {
			m["substitute"] = map[string]any{
				"skater": t.Substitute.Skater,
				"reason": t.Substitute.Reason,
			}
		}
		m.putNotes("notes", t.Notes)
	case *ExitBox:
		m.putTimestamp("timestamp", t.Timestamp)
		m["skater"] = t.Skater
		m.putNum("duration", t.Duration)
		if t.Premature != nil {
			m["premature"] = string(*t.Premature)
		}
		m.putBool("no-skater", t.NoSkater)
	case *BoxTime:
		// contents unspecified; the tag alone survives
	case *InjuryEvent:
		m.putTimestamp("timestamp", t.Timestamp)
		m["skater"] = t.Skater
	case *NoteEvent:
		m["note"] = t.Note
		m.putStr("author", t.Author)
		m.putStr("date", t.Date)
		m["notes"] = encodeNote(&t.Notes)
	case *LeaveTrack:
		m.putTimestamp("timestamp", t.Timestamp)
		m["skater"] = t.Skater
		if t.Reason != nil {
			m["reason"] = string(*t.Reason)
		}
		m["opposing-pass"] = t.OpposingPass
	case *ReturnTrack:
		m.putTimestamp("timestamp", t.Timestamp)
		m["skater"] = t.Skater
		m["opposing-pass"] = t.OpposingPass
	}
	return m
}

func encodeTimestamp(ts *Timestamp) map[string]any {
	switch ts.Kind {
	case TimestampWall, TimestampPeriod:
		return map[string]any{string(ts.Kind): ts.Text}
	default:
		return map[string]any{string(ts.Kind): ts.Number}
	}
}

func orEmptyMap(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}

func orEmptyStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func orEmptyAny(s []any) []any {
	if s == nil {
		return []any{}
	}
	return s
}
