package gateway

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"desawisata/pkg/utils"
)

const testServerKey = "SB-Mid-server-testkey"

func signedNotification(orderID, statusCode, grossAmount string) *Notification {
	n := &Notification{
		OrderID:           orderID,
		StatusCode:        statusCode,
		GrossAmount:       grossAmount,
		TransactionStatus: "settlement",
	}
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + testServerKey))
	n.SignatureKey = hex.EncodeToString(sum[:])
	return n
}

func TestVerifySignature(t *testing.T) {
	gw := NewSnapGateway(Config{ServerKey: testServerKey, ProviderName: "midtrans"})

	tests := []struct {
		name    string
		mutate  func(*Notification)
		wantErr bool
	}{
		{
			name:   "valid signature",
			mutate: func(n *Notification) {},
		},
		{
			name:   "uppercase signature accepted",
			mutate: func(n *Notification) { n.SignatureKey = strings.ToUpper(n.SignatureKey) },
		},
		{
			name:    "tampered gross amount",
			mutate:  func(n *Notification) { n.GrossAmount = "99999.00" },
			wantErr: true,
		},
		{
			name:    "tampered order id",
			mutate:  func(n *Notification) { n.OrderID = "DW-other" },
			wantErr: true,
		},
		{
			name:    "signature missing",
			mutate:  func(n *Notification) { n.SignatureKey = "" },
			wantErr: true,
		},
		{
			name:    "garbage signature",
			mutate:  func(n *Notification) { n.SignatureKey = "deadbeef" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := signedNotification("DW-20260901120000-AB12CD", "200", "20000.00")
			tt.mutate(n)

			err := gw.VerifySignature(n)
			if tt.wantErr {
				if !errors.Is(err, utils.ErrInvalidSignature) {
					t.Fatalf("error = %v, want ErrInvalidSignature", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("VerifySignature() error = %v", err)
			}
		})
	}
}

func TestVerifySignatureWrongServerKey(t *testing.T) {
	gw := NewSnapGateway(Config{ServerKey: "a-different-key"})

	n := signedNotification("DW-1", "200", "20000.00")
	if err := gw.VerifySignature(n); !errors.Is(err, utils.ErrInvalidSignature) {
		t.Fatalf("error = %v, want ErrInvalidSignature", err)
	}
}

func TestTruncateItemName(t *testing.T) {
	long := strings.Repeat("Pantai ", 12) // 84 chars
	if got := truncateItemName(long); len(got) != 50 {
		t.Errorf("len = %d, want 50", len(got))
	}
	if got := truncateItemName("Air Terjun"); got != "Air Terjun" {
		t.Errorf("short name changed: %s", got)
	}
}
