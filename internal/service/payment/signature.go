package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/lumenprint/calendarshop-backend/internal/domain"
)

// verifySignature checks a webhook's x-signature header. The header carries
// comma-separated key=value pairs, of which ts and v1 matter; v1 is the
// hex HMAC-SHA256 of the manifest
//
//	id:<paymentID>;request-id:<requestID>;ts:<ts>;
//
// keyed with the webhook secret. Any mismatch or malformed header verifies
// as ErrUnauthorized.
func verifySignature(secret, header, requestID, paymentID string) error {
	ts, v1, err := parseSignatureHeader(header)
	if err != nil {
		return err
	}

	manifest := fmt.Sprintf("id:%s;request-id:%s;ts:%s;", paymentID, requestID, ts)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(manifest))
	want := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(want), []byte(v1)) {
		return fmt.Errorf("webhook signature mismatch: %w", domain.ErrUnauthorized)
	}
	return nil
}

func parseSignatureHeader(header string) (ts, v1 string, err error) {
	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch strings.TrimSpace(key) {
		case "ts":
			ts = strings.TrimSpace(value)
		case "v1":
			v1 = strings.TrimSpace(value)
		}
	}
	if ts == "" || v1 == "" {
		return "", "", fmt.Errorf("malformed signature header: %w", domain.ErrUnauthorized)
	}
	return ts, v1, nil
}
