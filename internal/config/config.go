// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"go/token"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/dangerclosesec/ninjaparse/internal/domain"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	Log struct {
		Level string `json:"level" validate:"oneof=debug info warn error"`
	} `json:"log"`
	Fixture struct {
		Output string `json:"output" validate:"required"`
		Edges  int    `json:"edges" validate:"min=1,max=1000000"`
		Sleep  int    `json:"sleep" validate:"min=0"`
	} `json:"fixture"`
	Table struct {
		Package string `json:"package" validate:"required,goident"`
		Format  string `json:"format" validate:"oneof=go hex"`
	} `json:"table"`
	// Jobs bounds how many manifests are parsed at once.
	Jobs int `json:"jobs" validate:"min=1"`
}

func Load() *Config {
	cfg := &Config{}

	// Logging
	cfg.Log.Level = strings.ToLower(getEnv("NINJAPARSE_LOG_LEVEL", "info"))

	// fd stress fixture
	cfg.Fixture.Output = getEnv("NINJAPARSE_FIXTURE_OUTPUT", "build.ninja")
	cfg.Fixture.Edges = getEnvInt("NINJAPARSE_FIXTURE_EDGES", 1000)
	cfg.Fixture.Sleep = getEnvInt("NINJAPARSE_FIXTURE_SLEEP", 300)

	// Table generation
	cfg.Table.Package = getEnv("NINJAPARSE_TABLE_PACKAGE", "charclass")
	cfg.Table.Format = getEnv("NINJAPARSE_TABLE_FORMAT", "go")

	cfg.Jobs = getEnvInt("NINJAPARSE_JOBS", 8)

	return cfg
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.RegisterValidation("goident", func(fl validator.FieldLevel) bool {
		return token.IsIdentifier(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
	return v
}

// Fields checked by each command. Names are relative to Config.
var (
	rootFields    = []string{"Log.Level", "Jobs"}
	tableFields   = []string{"Table.Package", "Table.Format"}
	fixtureFields = []string{"Fixture.Output", "Fixture.Edges", "Fixture.Sleep"}
)

// Validate checks every struct tag on c.
func (c *Config) Validate() error {
	return wrapValidation(validate.Struct(c))
}

// ValidateRoot checks the settings every command uses.
func (c *Config) ValidateRoot() error {
	return wrapValidation(validate.StructPartial(c, rootFields...))
}

// ValidateTable checks the table generation settings.
func (c *Config) ValidateTable() error {
	return wrapValidation(validate.StructPartial(c, tableFields...))
}

// ValidateFixture checks the fd fixture settings.
func (c *Config) ValidateFixture() error {
	return wrapValidation(validate.StructPartial(c, fixtureFields...))
}

func wrapValidation(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, len(verrs))
		for i, fe := range verrs {
			fields[i] = fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag())
		}
		return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, strings.Join(fields, ", "))
	}
	return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
}

// SlogLevel maps Log.Level onto a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt returns -1 for unparsable values so Validate reports them.
func getEnvInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return -1
	}
	return n
}
