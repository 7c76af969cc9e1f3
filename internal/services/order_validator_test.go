package services

import (
	"errors"
	"testing"
	"time"

	"desawisata/internal/models/request_models"
	"desawisata/pkg/utils"
)

func validOrderRequest() request_models.CreateOrderRequest {
	tomorrow := time.Now().In(utils.JakartaLocation()).AddDate(0, 0, 1).Format("2006-01-02")
	return request_models.CreateOrderRequest{
		DestinationID: "8a7f9c44-2f6b-4a95-9f57-0b2f6f1c2f11",
		Quantity:      2,
		VisitDate:     tomorrow,
		Buyer: request_models.BuyerDetail{
			Name:  "Siti Rahma",
			Email: "siti@example.com",
			Phone: "081234567890",
		},
	}
}

func TestValidateOrder(t *testing.T) {
	today := time.Now().In(utils.JakartaLocation()).Format("2006-01-02")
	yesterday := time.Now().In(utils.JakartaLocation()).AddDate(0, 0, -1).Format("2006-01-02")

	tests := []struct {
		name    string
		mutate  func(*request_models.CreateOrderRequest)
		wantErr bool
	}{
		{
			name:    "valid request",
			mutate:  func(r *request_models.CreateOrderRequest) {},
			wantErr: false,
		},
		{
			name:    "phone with country code",
			mutate:  func(r *request_models.CreateOrderRequest) { r.Buyer.Phone = "+6281234567890" },
			wantErr: false,
		},
		{
			name:    "phone with bare 62 prefix",
			mutate:  func(r *request_models.CreateOrderRequest) { r.Buyer.Phone = "6281234567" },
			wantErr: false,
		},
		{
			name:    "quantity zero",
			mutate:  func(r *request_models.CreateOrderRequest) { r.Quantity = 0 },
			wantErr: true,
		},
		{
			name:    "quantity above limit",
			mutate:  func(r *request_models.CreateOrderRequest) { r.Quantity = 11 },
			wantErr: true,
		},
		{
			name:    "visit date today",
			mutate:  func(r *request_models.CreateOrderRequest) { r.VisitDate = today },
			wantErr: true,
		},
		{
			name:    "visit date in the past",
			mutate:  func(r *request_models.CreateOrderRequest) { r.VisitDate = yesterday },
			wantErr: true,
		},
		{
			name:    "visit date malformed",
			mutate:  func(r *request_models.CreateOrderRequest) { r.VisitDate = "15-01-2026" },
			wantErr: true,
		},
		{
			name:    "email malformed",
			mutate:  func(r *request_models.CreateOrderRequest) { r.Buyer.Email = "not-an-email" },
			wantErr: true,
		},
		{
			name:    "phone wrong prefix",
			mutate:  func(r *request_models.CreateOrderRequest) { r.Buyer.Phone = "0712345678" },
			wantErr: true,
		},
		{
			name:    "phone too short",
			mutate:  func(r *request_models.CreateOrderRequest) { r.Buyer.Phone = "08123456" },
			wantErr: true,
		},
		{
			name:    "phone too long",
			mutate:  func(r *request_models.CreateOrderRequest) { r.Buyer.Phone = "081234567890123" },
			wantErr: true,
		},
		{
			name:    "phone with letters",
			mutate:  func(r *request_models.CreateOrderRequest) { r.Buyer.Phone = "0812abc4567" },
			wantErr: true,
		},
		{
			name:    "destination id not a uuid",
			mutate:  func(r *request_models.CreateOrderRequest) { r.DestinationID = "desa-1" },
			wantErr: true,
		},
	}

	validator := NewOrderValidator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validOrderRequest()
			tt.mutate(&req)

			err := validator.ValidateOrder(req)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOrder() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateOrderCollectsAllFields(t *testing.T) {
	req := validOrderRequest()
	req.Quantity = 0
	req.Buyer.Email = "broken"
	req.Buyer.Phone = "12345"

	err := NewOrderValidator().ValidateOrder(req)
	if err == nil {
		t.Fatal("expected a validation error")
	}

	var verrs utils.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}

	fields := make(map[string]bool)
	for _, fe := range verrs {
		fields[fe.Field] = true
	}
	for _, want := range []string{"quantity", "email", "phone"} {
		if !fields[want] {
			t.Errorf("expected a collected error for field %q, got %v", want, verrs)
		}
	}
}
