package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLevelMapping(t *testing.T) {
	cases := []struct {
		verbosity int
		want      logrus.Level
	}{
		{-5, logrus.PanicLevel},
		{-2, logrus.PanicLevel},
		{-1, logrus.ErrorLevel},
		{0, logrus.WarnLevel},
		{1, logrus.InfoLevel},
		{2, logrus.DebugLevel},
		{3, logrus.TraceLevel},
		{9, logrus.TraceLevel},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Level(c.verbosity), "verbosity %d", c.verbosity)
	}
}

func TestNewDefaultsToWarn(t *testing.T) {
	log := New(0)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())
}
