package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitWithOutputUsesJSONInProduction(t *testing.T) {
	var buffer bytes.Buffer
	InitWithOutput(&buffer, "debug", "production")
	t.Cleanup(func() { InitWithOutput(&bytes.Buffer{}, "info", "test") })

	Log.WithField("component", "test").Debug("hello")

	var payload map[string]any
	if err := json.Unmarshal(buffer.Bytes(), &payload); err != nil {
		t.Fatalf("expected json log line, got %q: %v", buffer.String(), err)
	}
	if payload["msg"] != "hello" || payload["component"] != "test" {
		t.Fatalf("unexpected payload %v", payload)
	}
}

func TestInitWithOutputFallsBackToInfo(t *testing.T) {
	var buffer bytes.Buffer
	InitWithOutput(&buffer, "chatty", "development")
	t.Cleanup(func() { InitWithOutput(&bytes.Buffer{}, "info", "test") })

	if Log.GetLevel() != logrus.InfoLevel {
		t.Fatalf("expected info level, got %s", Log.GetLevel())
	}
	if !strings.Contains(buffer.String(), "invalid log level") {
		t.Fatalf("expected warning about invalid level, got %q", buffer.String())
	}
}
