package logging

import (
	"bytes"
	"testing"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/stretchr/testify/assert"
)

func TestNew_Filters(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn")

	_ = level.Info(logger).Log("msg", "hidden")
	assert.Empty(t, buf.String())

	_ = level.Error(logger).Log("msg", "shown")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "level=error")
	assert.Contains(t, buf.String(), "ts=")
}

func TestNew_DefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "")

	_ = level.Debug(logger).Log("msg", "hidden")
	assert.Empty(t, buf.String())

	_ = level.Info(logger).Log("msg", "shown")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestNew_CallerIsCallSite(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "debug")

	_ = level.Info(logger).Log("msg", "leveled")
	assert.Contains(t, buf.String(), "caller=logging_test.go:")

	buf.Reset()
	_ = log.With(logger, "component", "test").Log("msg", "plain")
	assert.Contains(t, buf.String(), "caller=logging_test.go:")
	assert.Contains(t, buf.String(), "component=test")

	buf.Reset()
	_ = level.Warn(log.With(logger, "component", "test")).Log("msg", "both")
	assert.Contains(t, buf.String(), "caller=logging_test.go:")
}
