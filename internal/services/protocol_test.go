package services

import (
	"reflect"
	"testing"

	"iot-lambda-functions/internal/models"

	"github.com/sirupsen/logrus/hooks/test"
)

func TestClassifyProtocol(t *testing.T) {
	tests := []struct {
		name      string
		protocols []string
		want      models.ProtocolVariant
	}{
		{"single http", []string{"http"}, models.ProtocolHTTPS},
		{"tls then http", []string{"tls", "http"}, models.ProtocolHTTPS},
		{"any first then http", []string{"anything", "http"}, models.ProtocolHTTPS},
		{"single mqtt", []string{"mqtt"}, models.ProtocolMQTTOverTLS},
		{"tls then mqtt", []string{"tls", "mqtt"}, models.ProtocolMQTTOverTLS},
		{"websocket", []string{"tls", "http", "mqtt"}, models.ProtocolMQTTOverWebsocket},
		{"websocket any first", []string{"x", "http", "mqtt"}, models.ProtocolMQTTOverWebsocket},
		{"empty", []string{}, models.ProtocolUnknown},
		{"nil", nil, models.ProtocolUnknown},
		{"no match", []string{"a", "b", "c"}, models.ProtocolUnknown},
		{"middle not http", []string{"tls", "mqtt", "mqtt"}, models.ProtocolUnknown},
		{"two middle tokens", []string{"tls", "http", "http", "mqtt"}, models.ProtocolUnknown},
		{"http over mqtt", []string{"tls", "mqtt", "http"}, models.ProtocolUnknown},
		{"case sensitive", []string{"MQTT"}, models.ProtocolUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, _ := test.NewNullLogger()
			if got := ClassifyProtocol(logger, tt.protocols); got != tt.want {
				t.Errorf("ClassifyProtocol(%v) = %v, want %v", tt.protocols, got, tt.want)
			}
		})
	}
}

func TestClassifyProtocolLogsParts(t *testing.T) {
	logger, hook := test.NewNullLogger()

	ClassifyProtocol(logger, []string{"tls", "http", "mqtt"})

	entries := hook.AllEntries()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 log entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.Data["first"] != "tls" || entry.Data["last"] != "mqtt" {
		t.Errorf("Unexpected first/last fields: %v", entry.Data)
	}
	if !reflect.DeepEqual(entry.Data["middle"], []string{"http"}) {
		t.Errorf("Unexpected middle field: %v", entry.Data["middle"])
	}
}

func TestClassifyProtocolLogsUnknown(t *testing.T) {
	t.Run("no match", func(t *testing.T) {
		logger, hook := test.NewNullLogger()

		ClassifyProtocol(logger, []string{"a", "b", "c"})

		if len(hook.AllEntries()) != 2 {
			t.Fatalf("Expected 2 log entries, got %d", len(hook.AllEntries()))
		}
		last := hook.LastEntry()
		if last.Message != "Unknown protocol" {
			t.Errorf("Expected unknown protocol line, got %q", last.Message)
		}
		if !reflect.DeepEqual(last.Data["protocols"], []string{"a", "b", "c"}) {
			t.Errorf("Expected full sequence in log, got %v", last.Data["protocols"])
		}
	})

	t.Run("empty", func(t *testing.T) {
		logger, hook := test.NewNullLogger()

		ClassifyProtocol(logger, nil)

		if len(hook.AllEntries()) != 1 {
			t.Fatalf("Expected only the unknown protocol line, got %d entries", len(hook.AllEntries()))
		}
		if hook.LastEntry().Message != "Unknown protocol" {
			t.Errorf("Unexpected message %q", hook.LastEntry().Message)
		}
	})
}
