package seeder

// Defaults returns the demo seeders in dependency order.
func Defaults(password string) []Seeder {
	return []Seeder{
		UsersSeeder{Password: password},
		ProfilesSeeder{},
		RatingsSeeder{},
	}
}
