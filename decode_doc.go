package derbyjson

// decodeGameDoc maps the full DerbyJSON object shape, shared by the
// "game", "stats", and "league" kinds.
func decodeGameDoc(o *obj, typ ObjectType) *Game {
	g := &Game{Type: typ}
	g.Version = o.optString("version")
	g.Metadata = o.requiredMap("metadata")
	g.Teams = decodeTeams(o)
	g.Periods = decodePeriods(o)
	if ro, ok := o.optObject("ruleset"); ok {
		g.Ruleset = decodeRuleset(ro)
	}
	if vo, ok := o.optObject("venue"); ok {
		g.Venue = decodeVenue(vo)
	}
	g.UUID = o.strings("uuid")
	g.Notes = decodeNoteList(o, "notes", true)
	g.Date = o.requiredString("date")
	g.Time = o.requiredString("time")
	g.EndTime = o.requiredString("end_time")
	g.Leagues = decodeLeagueList(o, "leagues")
	g.Timers = decodeTimers(o)
	g.Tournament = o.optString("tournament")
	g.HostLeague = o.optString("host-league")
	g.Expulsions = decodeExpulsions(o)
	g.Suspensions = o.requiredStrings("suspensions")
	g.Signatures = decodeSignatures(o)
	g.Sanctioned = o.requiredBool("sanctioned")
	g.Association = requiredEnum(o, "association", associationTable)
	g.Extra = o.finishTop(false)
	return g
}

// decodeRosters maps the roster subset. The shape is strict: unknown keys
// are rejected unless the caller overrides the policy.
func decodeRosters(o *obj) *Rosters {
	r := &Rosters{Type: ObjectRosters}
	r.Version = o.optString("version")
	r.Metadata = o.optMap("metadata")
	r.Teams = decodeTeams(o)
	r.UUID = o.strings("uuid")
	r.Notes = decodeNoteList(o, "notes", false)
	r.Leagues = decodeLeagueList(o, "leagues")
	r.Extra = o.finishTop(true)
	return r
}

func decodeTeams(o *obj) map[string]*Team {
	to, ok := o.requiredObject("teams")
	if !ok {
		return nil
	}
	teams := make(map[string]*Team, len(to.m))
	for id, v := range to.m {
		if o.d.stopped() {
			break
		}
		m, ok := v.(map[string]any)
		if !ok {
			o.d.reportAt(to.path.Field(id), CodeInvalidType, "expected object")
			continue
		}
		teams[id] = decodeTeam(&obj{d: o.d, path: to.path.Field(id), m: m})
	}
	return teams
}

// decodeNoteList reads a notes array. When required is false an absent
// member yields nil, keeping absence visible for the round trip.
func decodeNoteList(o *obj, key string, required bool) []Note {
	var arr []any
	var path = o.at(key)
	if required {
		arr, path = o.requiredArray(key)
	} else {
		var ok bool
		arr, path, ok = o.optArray(key)
		if !ok {
			return nil
		}
	}
	notes := make([]Note, 0, len(arr))
	for i, e := range arr {
		m, ok := e.(map[string]any)
		if !ok {
			o.d.reportAt(path.Index(i), CodeInvalidType, "expected object")
			continue
		}
		notes = append(notes, decodeNote(&obj{d: o.d, path: path.Index(i), m: m}))
	}
	return notes
}

func decodeNote(o *obj) Note {
	n := Note{
		Note:   o.requiredString("note"),
		Author: o.optString("author"),
	}
	o.finishNested()
	return n
}

func decodeLeagueList(o *obj, key string) []League {
	arr, path, ok := o.optArray(key)
	if !ok {
		return nil
	}
	leagues := make([]League, 0, len(arr))
	for i, e := range arr {
		m, ok := e.(map[string]any)
		if !ok {
			o.d.reportAt(path.Index(i), CodeInvalidType, "expected object")
			continue
		}
		leagues = append(leagues, decodeLeague(&obj{d: o.d, path: path.Index(i), m: m}))
	}
	return leagues
}

func decodeExpulsions(o *obj) []Expulsion {
	arr, path := o.requiredArray("expulsions")
	out := make([]Expulsion, 0, len(arr))
	for i, e := range arr {
		m, ok := e.(map[string]any)
		if !ok {
			o.d.reportAt(path.Index(i), CodeInvalidType, "expected object")
			continue
		}
		eo := &obj{d: o.d, path: path.Index(i), m: m}
		ex := Expulsion{
			Skater:     eo.requiredString("skater"),
			Suspension: eo.requiredBool("suspension"),
			Notes:      decodeNoteList(eo, "notes", true),
		}
		eo.finishNested()
		out = append(out, ex)
	}
	return out
}

// decodeSignatures keeps signature entries verbatim; the published spec
// sketches signature objects without pinning their shape down.
func decodeSignatures(o *obj) []any {
	arr, _ := o.requiredArray("signatures")
	if arr == nil {
		return []any{}
	}
	return arr
}

func decodeRuleset(o *obj) *Ruleset {
	r := &Ruleset{
		Version:                o.requiredString("version"),
		PeriodCount:            o.requiredInt("period-count"),
		Period:                 o.requiredString("period"),
		Jam:                    o.requiredString("jam"),
		Lineup:                 o.requiredString("lineup"),
		Timeout:                o.requiredString("timeout"),
		TimeoutCount:           o.requiredInt("timeout-count"),
		OfficialReviewCount:    o.requiredInt("official-review-count"),
		OfficialReviewRetained: o.requiredBool("official-review-retained"),
		OfficialReviewMaximum:  o.requiredInt("official-review-maximum"),
		Penalty:                o.requiredString("penalty"),
		Minors:                 o.requiredBool("minors"),
		MinorsPerMajor:         o.requiredInt("minors-per-major"),
		Foulout:                o.requiredInt("foulout"),
	}
	o.finishNested()
	return r
}

func decodeTimers(o *obj) Timers {
	to, ok := o.requiredObject("timers")
	if !ok {
		return Timers{}
	}
	var t Timers
	if co, ok := to.optObject("countdown"); ok {
		timer := decodeTimer(co)
		t.Countdown = &timer
	}
	if po, ok := to.requiredObject("period"); ok {
		t.Period = decodeTimer(po)
	}
	// "haltime" is the published key, typo and all
	if ho, ok := to.optObject("haltime"); ok {
		timer := decodeTimer(ho)
		t.Halftime = &timer
	}
	if jo, ok := to.optObject("jam"); ok {
		timer := decodeTimer(jo)
		t.Jam = &timer
	}
	to.finishNested()
	return t
}

func decodeTimer(o *obj) Timer {
	t := Timer{
		Duration:   o.requiredInt("duration"),
		CountsDown: o.requiredBool("counts_down"),
		Running:    o.requiredBool("running"),
	}
	o.finishNested()
	return t
}

var associationTable = []Association{AssociationWFTDA, AssociationMRDA, AssociationJRDA, AssociationOther}
