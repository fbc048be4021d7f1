package integration_test

const (
	dbName      = "cinema"
	dbUser      = "test_user"
	dbPassword  = "test_password"
	dbImageName = "postgres:17-alpine"

	migrationsSource = "file://../../migrations"
)
