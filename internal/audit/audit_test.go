package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
)

func TestNewEventStampsIDAndTime(t *testing.T) {
	a := NewEvent("login_success")
	b := NewEvent("login_success")
	if a.EventID == "" || a.EventID == b.EventID {
		t.Fatalf("expected distinct non-empty event IDs, got %q and %q", a.EventID, b.EventID)
	}
	if a.Timestamp.IsZero() {
		t.Fatal("expected timestamp to be set")
	}
}

func TestChannelSinkDeliversEvents(t *testing.T) {
	sink := NewChannelSink(4)
	ev := NewEvent("signup_success")
	ev.Email = "new@gmail.com"
	sink.Emit(context.Background(), ev)

	select {
	case got := <-sink.Events():
		if got.EventType != "signup_success" || got.Email != "new@gmail.com" {
			t.Fatalf("unexpected event: %+v", got)
		}
	default:
		t.Fatal("expected buffered event")
	}
}

func TestJSONWriterSinkWritesOneLine(t *testing.T) {
	var buf bytes.Buffer
	sink := NewJSONWriterSink(&buf)

	ev := NewEvent("otp_failed")
	ev.Success = false
	ev.Error = "wrong code"
	sink.Emit(context.Background(), ev)

	line := bytes.TrimSpace(buf.Bytes())
	var decoded Event
	if err := json.Unmarshal(line, &decoded); err != nil {
		t.Fatalf("decode line: %v", err)
	}
	if decoded.EventType != "otp_failed" || decoded.Error != "wrong code" {
		t.Fatalf("unexpected decoded event: %+v", decoded)
	}
}
