package log

import (
	"context"
	"errors"
	"testing"
)

func TestMessageAndFields(t *testing.T) {
	tests := []struct {
		name       string
		arg        []any
		wantMsg    string
		wantFields int
	}{
		{name: "empty", arg: nil, wantMsg: "", wantFields: 0},
		{name: "plain message", arg: []any{"started"}, wantMsg: "started", wantFields: 0},
		{name: "message with error", arg: []any{"failed: ", errors.New("boom")}, wantMsg: "failed: boom", wantFields: 0},
		{name: "key value pairs", arg: []any{"merged", "pr", 7, "author", "alice"}, wantMsg: "merged", wantFields: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := message(tt.arg); got != tt.wantMsg {
				t.Errorf("message() = %q, want %q", got, tt.wantMsg)
			}
			if got := len(fields(tt.arg)); got != tt.wantFields {
				t.Errorf("len(fields()) = %d, want %d", got, tt.wantFields)
			}
		})
	}
}

func TestDeliveryID(t *testing.T) {
	ctx := WithDeliveryID(context.Background(), "abc-123")
	if got := DeliveryID(ctx); got != "abc-123" {
		t.Errorf("DeliveryID() = %q, want %q", got, "abc-123")
	}
	if got := DeliveryID(context.Background()); got != "" {
		t.Errorf("DeliveryID() on empty ctx = %q, want empty", got)
	}
}

func TestInit_DoesNotPanic(t *testing.T) {
	for _, cfg := range []ZapConfig{
		{Level: "debug", Mode: ModeDevelopment, Encoding: EncodingConsole, ColorEnabled: true},
		{Level: "info", Mode: ModeProduction, Encoding: EncodingJSON},
		{Level: "not-a-level", Mode: ModeProduction, Encoding: EncodingConsole},
	} {
		l := Init(cfg)
		l.Debug(WithDeliveryID(context.Background(), "d1"), "hello", "k", "v")
		l.Infof(context.Background(), "hello %s", "world")
	}
}
