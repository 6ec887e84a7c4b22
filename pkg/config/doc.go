// Package config loads application configuration from environment variables
// into plain Go structs.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`: the
// default `.env` file in the working directory is loaded once, best-effort,
// then the environment is parsed into the target struct based on field tags.
//
//	type Settings struct {
//	    LangDir string `env:"LOCALIZE_LANG_DIR" envDefault:"lang"`
//	    EnvFile string `env:"LOCALIZE_ENV_FILE" envDefault:"env.yml"`
//	}
//
//	var settings Settings
//	if err := config.Load(&settings); err != nil {
//	    // handle error
//	}
//
// MustLoad panics on failure for configuration the process cannot start
// without.
package config
