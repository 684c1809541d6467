package logger

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestNewWithWriterStampsServiceName(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf)

	log.Info("checkout complete", "orderId", 10)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if record["service"] != "tezcart" {
		t.Fatalf("expected service attribute, got %v", record["service"])
	}
	if record["msg"] != "checkout complete" {
		t.Fatalf("unexpected message: %v", record["msg"])
	}
}

func TestNewWithWriterSuppressesDebug(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf)

	log.Debug("noise")

	if buf.Len() != 0 {
		t.Fatalf("expected debug records to be filtered, got %s", buf.String())
	}
}
