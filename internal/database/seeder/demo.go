package seeder

// DemoUser is one account created by the demo seed, with its profile.
type DemoUser struct {
	Username    string
	FullName    string
	JobTitle    string
	Information string
	Skills      []string
}

// DemoRating records that Source has liked Target's profile.
type DemoRating struct {
	Target string
	Source string
}

var demoUsers = []DemoUser{
	{
		Username:    "alice",
		FullName:    "Alice Lindqvist",
		JobTitle:    "Backend Engineer",
		Information: "Distributed systems, climbing, bad puns.",
		Skills:      []string{"Go", "PostgreSQL", "Kubernetes"},
	},
	{
		Username:    "bob",
		FullName:    "Bob Haataja",
		JobTitle:    "Product Designer",
		Information: "Figma by day, film photography by night.",
		Skills:      []string{"Figma", "User Research"},
	},
	{
		Username:    "carol",
		FullName:    "Carol Mensah",
		JobTitle:    "Data Analyst",
		Information: "Turning spreadsheets into stories.",
		Skills:      []string{"SQL", "Python", "dbt"},
	},
	{
		Username:    "dave",
		FullName:    "Dave Okafor",
		JobTitle:    "SRE",
		Information: "",
		Skills:      []string{},
	},
}

var demoRatings = []DemoRating{
	{Target: "bob", Source: "alice"},
	{Target: "carol", Source: "bob"},
	{Target: "carol", Source: "dave"},
}

func DemoUsers() []DemoUser {
	out := make([]DemoUser, len(demoUsers))
	copy(out, demoUsers)
	return out
}

func DemoRatings() []DemoRating {
	out := make([]DemoRating, len(demoRatings))
	copy(out, demoRatings)
	return out
}
