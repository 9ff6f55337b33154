package internal

import (
	"fmt"
	"time"
)

type Config struct {
	Host                 string        `env:"HOST,required=true"`
	Port                 int           `env:"PORT,required=true"`
	LogLevel             string        `env:"LOG_LEVEL,required=true"`
	BadgerFilepath       string        `env:"BADGER_FILEPATH,required=true"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,required=true"`
	AuthTokenDuration    time.Duration `env:"AUTH_TOKEN_DURATION,required=true"`
	TokenSecret          string        `env:"TOKEN_SECRET,required=true"`
	CharReplacement      string        `env:"CHARACTER_REPLACEMENT,required=true"`
	CensoredWordsFile    *string       `env:"CENSORED_WORDS_FILE"`
	MetricInterval       time.Duration `env:"METRIC_INTERVAL,required=true"`
	StorageGCInterval    time.Duration `env:"STORAGE_GC_INTERVAL,required=true"`
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
