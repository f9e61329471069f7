// Package config loads the application configuration from environment
// variables, command-line flags, and an optional JSON file, merging all
// sources into a single validated [StructuredConfig].
//
// Priority order (earlier wins): environment, flags, JSON file, built-in
// defaults. Environment variable names preserve the original deployment
// contract of the wall backend (DATABASE_URI, JWT_SECRET_KEY,
// JWT_ALGORITHM, ACCESS_TOKEN_EXPIRE_MINUTES, ADDRESS, UPLOADS_DIR).
package config
