package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Run("default initialization", func(t *testing.T) {
		log = nil
		userLog = nil

		Init(false, false, false, "")

		require.NotNil(t, log)
		require.NotNil(t, userLog)
	})

	t.Run("verbose mode sets debug level", func(t *testing.T) {
		log = nil
		userLog = nil

		Init(true, false, false, "")

		require.NotNil(t, log)
		require.True(t, verboseEnabled)
		require.Equal(t, zerolog.DebugLevel, currentLogLevel)
	})

	t.Run("quiet mode sets error level", func(t *testing.T) {
		log = nil
		userLog = nil

		Init(false, true, false, "")

		require.NotNil(t, log)
		require.Equal(t, zerolog.ErrorLevel, currentLogLevel)
	})
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]bool{
		"trace": true, "debug": true, "info": true, "warn": true,
		"warning": true, "error": true, "fatal": true, "panic": true,
		"disabled": true, "": true, "nonsense": true,
	}
	for level := range cases {
		// parseLogLevel must never panic and must return a valid zerolog level
		_ = parseLogLevel(level)
	}
}

func TestGetInitializesLazily(t *testing.T) {
	log = nil
	userLog = nil

	l := Get()
	require.NotNil(t, l)
}
