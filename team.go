package derbyjson

// Team is a collection of skaters or officials.
type Team struct {
	// Name of the team, unique within its league. May be the empty string
	// for a team that is the only member of its league.
	Name         string
	League       *string
	Abbreviation *string
	// Persons lists skaters (or refs) on the team in roster order.
	Persons []Person
	Level   *TeamLevel
	// Date as of which this roster is current.
	Date  *string
	Color *string
	Logo  *Logo
}

// TeamLevel is the closed set of competitive levels.
type TeamLevel string

const (
	LevelAllStar   TeamLevel = "All Star"
	LevelB         TeamLevel = "B"
	LevelC         TeamLevel = "C"
	LevelRec       TeamLevel = "Rec"
	LevelOfficials TeamLevel = "Officials"
	LevelHome      TeamLevel = "Home"
	LevelAdhoc     TeamLevel = "Adhoc"
)

// League is a collection of teams.
type League struct {
	Name         string
	Abbreviation *string
	UUID         []string
	Venue        *Venue
	Teams        []Team
	Logo         *Logo
}

// Person is a skater or official.
type Person struct {
	Name string
	// Number is the skater (or official) number. Required for skaters.
	// Derby numbers permit non-numeric characters, so this is a string.
	Number         *string
	League         *string
	Certifications []Certification
	Legal          *string
	Roles          []string
	Skated         *bool
	UUID           []string
	Insurance      []string
}

// Venue describes where a game is played.
type Venue struct {
	Name      string
	City      string
	State     string
	URL       *string
	Country   *string
	Email     *string
	Fax       *string
	OtherAddr *string
	Phone     *string
	POB       *string
	Postcode  *string
	Street    *string
	Notes     []Note
	UUID      []string
	Logo      []Logo
}

// Certification is an officiating certification held by a person.
type Certification struct {
	Association   Association
	Certification string
	Level         *int
	Endorsement   *string
}

// Association is the sanctioning body.
type Association string

const (
	AssociationWFTDA Association = "WFTDA"
	AssociationMRDA  Association = "MRDA"
	AssociationJRDA  Association = "JRDA"
	AssociationOther Association = "Other"
)

// Logo points at team or league logo art. Each field may contain a URL to
// the appropriate size/style variant; URL alone is used when only one
// variant exists.
type Logo struct {
	URL             *string
	Small           *string
	Medium          *string
	Large           *string
	SmallDark       *string
	MediumDark      *string
	LargeDark       *string
	SmallLight      *string
	MediumLight     *string
	LargeLight      *string
	SmallGreyscale  *string
	MediumGreyscale *string
	LargeGreyscale  *string
}
