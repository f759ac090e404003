package derbyjson

func decodeTeam(o *obj) *Team {
	t := &Team{
		Name:         o.requiredString("name"),
		League:       o.optString("league"),
		Abbreviation: o.optString("abbreviation"),
		Persons:      decodePersons(o),
		Level:        optEnum(o, "level", teamLevelTable),
		Date:         o.optString("date"),
		// The spec refers to a coloring object here; published data carries
		// a plain string.
		Color: o.optString("color"),
	}
	if lo, ok := o.optObject("logo"); ok {
		t.Logo = decodeLogo(lo)
	}
	o.finishNested()
	return t
}

func decodePersons(o *obj) []Person {
	arr, path := o.requiredArray("persons")
	persons := make([]Person, 0, len(arr))
	for i, e := range arr {
		m, ok := e.(map[string]any)
		if !ok {
			o.d.reportAt(path.Index(i), CodeInvalidType, "expected object")
			continue
		}
		persons = append(persons, decodePerson(&obj{d: o.d, path: path.Index(i), m: m}))
	}
	return persons
}

func decodePerson(o *obj) Person {
	p := Person{
		Name:      o.requiredString("name"),
		Number:    o.optString("number"),
		League:    o.optString("league"),
		Legal:     o.optString("legal"),
		Roles:     o.strings("roles"),
		Skated:    o.optBool("skated"),
		UUID:      o.strings("uuid"),
		Insurance: o.strings("insurance"),
	}
	if arr, path, ok := o.optArray("certifications"); ok {
		p.Certifications = make([]Certification, 0, len(arr))
		for i, e := range arr {
			m, ok := e.(map[string]any)
			if !ok {
				o.d.reportAt(path.Index(i), CodeInvalidType, "expected object")
				continue
			}
			p.Certifications = append(p.Certifications, decodeCertification(&obj{d: o.d, path: path.Index(i), m: m}))
		}
	}
	o.finishNested()
	return p
}

func decodeCertification(o *obj) Certification {
	c := Certification{
		Association:   requiredEnum(o, "association", associationTable),
		Certification: o.requiredString("certification"),
		Level:         o.optInt("level"),
		Endorsement:   o.optString("endorsement"),
	}
	o.finishNested()
	return c
}

func decodeLeague(o *obj) League {
	l := League{
		Name:         o.requiredString("name"),
		Abbreviation: o.optString("abbreviation"),
		UUID:         o.strings("uuid"),
	}
	if vo, ok := o.optObject("venue"); ok {
		l.Venue = decodeVenue(vo)
	}
	arr, path := o.requiredArray("teams")
	l.Teams = make([]Team, 0, len(arr))
	for i, e := range arr {
		m, ok := e.(map[string]any)
		if !ok {
			o.d.reportAt(path.Index(i), CodeInvalidType, "expected object")
			continue
		}
		l.Teams = append(l.Teams, *decodeTeam(&obj{d: o.d, path: path.Index(i), m: m}))
	}
	if lo, ok := o.optObject("logo"); ok {
		l.Logo = decodeLogo(lo)
	}
	o.finishNested()
	return l
}

func decodeVenue(o *obj) *Venue {
	v := &Venue{
		Name:      o.requiredString("name"),
		City:      o.requiredString("city"),
		State:     o.requiredString("state"),
		URL:       o.optString("url"),
		Country:   o.optString("country"),
		Email:     o.optString("email"),
		Fax:       o.optString("fax"),
		OtherAddr: o.optString("otheraddr"),
		Phone:     o.optString("phone"),
		POB:       o.optString("pob"),
		Postcode:  o.optString("postcode"),
		Street:    o.optString("street"),
		Notes:     decodeNoteList(o, "notes", false),
		UUID:      o.strings("uuid"),
	}
	if arr, path, ok := o.optArray("logo"); ok {
		v.Logo = make([]Logo, 0, len(arr))
		for i, e := range arr {
			m, ok := e.(map[string]any)
			if !ok {
				o.d.reportAt(path.Index(i), CodeInvalidType, "expected object")
				continue
			}
			v.Logo = append(v.Logo, *decodeLogo(&obj{d: o.d, path: path.Index(i), m: m}))
		}
	}
	o.finishNested()
	return v
}

func decodeLogo(o *obj) *Logo {
	l := &Logo{
		URL:             o.optString("url"),
		Small:           o.optString("small"),
		Medium:          o.optString("medium"),
		Large:           o.optString("large"),
		SmallDark:       o.optString("small_dark"),
		MediumDark:      o.optString("medium_dark"),
		LargeDark:       o.optString("large_dark"),
		SmallLight:      o.optString("small_light"),
		MediumLight:     o.optString("medium_light"),
		LargeLight:      o.optString("large_light"),
		SmallGreyscale:  o.optString("small_greyscale"),
		MediumGreyscale: o.optString("medium_greyscale"),
		LargeGreyscale:  o.optString("large_greyscale"),
	}
	o.finishNested()
	return l
}

var teamLevelTable = []TeamLevel{
	LevelAllStar, LevelB, LevelC, LevelRec, LevelOfficials, LevelHome, LevelAdhoc,
}
