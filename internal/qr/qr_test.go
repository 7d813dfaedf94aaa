package qr_test

import (
	"encoding/base64"
	"strings"
	"testing"

	"govt-appointments-api/internal/qr"
)

func TestPayloadRoundTrip(t *testing.T) {
	p := qr.Payload("abc-123", "2025-03-01", "09:30", "Passport Application")
	if p != "abc-123:2025-03-01:09:30:Passport Application" {
		t.Fatalf("unexpected payload: %s", p)
	}

	id, date, tod, svc, err := qr.DecodePayload(p)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if id != "abc-123" || date != "2025-03-01" || tod != "09:30" || svc != "Passport Application" {
		t.Errorf("decode mismatch: %s %s %s %s", id, date, tod, svc)
	}
}

func TestDecodePayloadMalformed(t *testing.T) {
	if _, _, _, _, err := qr.DecodePayload("just-one-part"); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}

func TestDataURL(t *testing.T) {
	u, err := qr.DataURL(qr.Payload("id", "2025-03-01", "10:00", "Driving License"))
	if err != nil {
		t.Fatalf("data url: %v", err)
	}
	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(u, prefix) {
		t.Fatalf("expected png data url, got %.40s", u)
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(u, prefix))
	if err != nil {
		t.Fatalf("base64: %v", err)
	}
	// PNG magic
	if len(raw) < 8 || raw[1] != 'P' || raw[2] != 'N' || raw[3] != 'G' {
		t.Error("payload is not a PNG")
	}
}
