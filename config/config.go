package config

// Config struct holds application configuration
// This is a simple way to make config accessible globally.
// A more advanced approach might use dependency injection.
type Config struct {
	// JWTSecret signs login tokens. When empty the API runs in open mode
	// and the auth middleware passes every request through.
	JWTSecret string
	// AdminEmail and AdminPasswordHash (bcrypt) define the single
	// dashboard login.
	AdminEmail        string
	AdminPasswordHash string
	// GeminiAPIKey enables the insights endpoint when set.
	GeminiAPIKey string
}

// AppConfig holds the application-wide configuration
var AppConfig Config
