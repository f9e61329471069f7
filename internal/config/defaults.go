package config

// Default configuration values, matching the original deployment
// contract of the wall backend.
const (
	DefaultHTTPAddress     = "0.0.0.0:8001"
	DefaultTokenSignKey    = "your-secret-key-change-in-production"
	DefaultTokenAlgorithm  = "HS256"
	DefaultTokenTTLMinutes = 43200 // 30 days
	DefaultBcryptCost      = 10
	DefaultUploadsDir      = "uploads"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			TokenSignKey:    DefaultTokenSignKey,
			TokenAlgorithm:  DefaultTokenAlgorithm,
			TokenTTLMinutes: DefaultTokenTTLMinutes,
			BcryptCost:      DefaultBcryptCost,
		},
		Storage: Storage{
			Files: Files{
				UploadsDir: DefaultUploadsDir,
			},
		},
		Server: Server{
			HTTPAddress: DefaultHTTPAddress,
		},
	}
}
