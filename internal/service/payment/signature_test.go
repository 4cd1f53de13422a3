package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"

	"github.com/lumenprint/calendarshop-backend/internal/domain"
)

func signedHeader(t *testing.T, secret, paymentID, requestID, ts string) string {
	t.Helper()
	manifest := fmt.Sprintf("id:%s;request-id:%s;ts:%s;", paymentID, requestID, ts)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(manifest))
	return fmt.Sprintf("ts=%s,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func TestVerifySignature_Valid(t *testing.T) {
	t.Parallel()

	header := signedHeader(t, testSecret, "12345", "req-1", "1700000000")
	if err := verifySignature(testSecret, header, "req-1", "12345"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestVerifySignature_ToleratesSpacing(t *testing.T) {
	t.Parallel()

	header := signedHeader(t, testSecret, "12345", "req-1", "1700000000")
	// Same header with spaces around the separators.
	spaced := ""
	for i, c := range header {
		spaced += string(c)
		if c == ',' && i < len(header)-1 {
			spaced += " "
		}
	}
	if err := verifySignature(testSecret, spaced, "req-1", "12345"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestVerifySignature_WrongSecret(t *testing.T) {
	t.Parallel()

	header := signedHeader(t, "another-secret", "12345", "req-1", "1700000000")
	err := verifySignature(testSecret, header, "req-1", "12345")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestVerifySignature_TamperedPaymentID(t *testing.T) {
	t.Parallel()

	header := signedHeader(t, testSecret, "12345", "req-1", "1700000000")
	err := verifySignature(testSecret, header, "req-1", "99999")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestVerifySignature_MalformedHeader(t *testing.T) {
	t.Parallel()

	for _, header := range []string{"", "ts=123", "v1=abc", "garbage"} {
		if err := verifySignature(testSecret, header, "req-1", "12345"); !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("header %q: expected ErrUnauthorized, got %v", header, err)
		}
	}
}

func TestHandleNotification_BadSignatureStopsReconciliation(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	svc := f.service(t)

	err := svc.HandleNotification(context.Background(), Notification{
		PaymentID: "12345",
		RequestID: "req-1",
		Signature: "ts=1700000000,v1=deadbeef",
	})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if len(f.provider.GetPaymentCalls()) != 0 {
		t.Error("the processor must not be queried for an unsigned delivery")
	}
}

func TestHandleNotification_ValidDeliveryReconciles(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	svc := f.service(t)

	err := svc.HandleNotification(context.Background(), Notification{
		PaymentID: "12345",
		RequestID: "req-1",
		Signature: signedHeader(t, testSecret, "12345", "req-1", "1700000000"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls := f.provider.GetPaymentCalls(); len(calls) != 1 || calls[0] != "12345" {
		t.Errorf("GetPayment calls: got %v", calls)
	}
}
