package logx

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Debug        bool `split_words:"true" default:"false"`
	PrettyFormat bool `split_words:"true" default:"false"`

	// FileName enables a rotating file sink next to stdout.
	FileName   string `split_words:"true"`
	MaxSizeMB  int    `envconfig:"MAX_SIZE_MB" default:"100"`
	MaxBackups int    `split_words:"true" default:"5"`
	MaxAgeDays int    `split_words:"true" default:"30"`
	Compress   bool   `split_words:"true" default:"true"`
}

var DefaultConfig = &Config{
	Debug:        false,
	PrettyFormat: false,
}

func safe(opts ...Config) *Config {
	if len(opts) == 0 {
		return DefaultConfig
	}
	return &opts[0]
}

func Init(opts ...Config) {
	conf := safe(opts...)

	var out io.Writer = os.Stdout
	if conf.PrettyFormat {
		out = zerolog.NewConsoleWriter()
	}
	if name := strings.TrimSpace(conf.FileName); name != "" {
		out = zerolog.MultiLevelWriter(out, &lumberjack.Logger{
			Filename:   name,
			MaxSize:    conf.MaxSizeMB,
			MaxBackups: conf.MaxBackups,
			MaxAge:     conf.MaxAgeDays,
			Compress:   conf.Compress,
		})
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()

	if conf.Debug {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	log.Logger = log.Logger.With().Caller().Stack().Logger()
	zerolog.DefaultContextLogger = &log.Logger
}
