package services

import (
	"testing"

	"routerider/internal/domain/models"
)

func TestValidatePassengerDetailsAllValid(t *testing.T) {
	fields := ValidatePassengerDetails([]models.Passenger{
		{Name: "Jane Doe", Phone: "+1 (555) 010-0100", Email: "jane@example.com", SeatNumber: "1A"},
	})
	if len(fields) != 0 {
		t.Fatalf("expected no field errors, got %v", fields)
	}
}

func TestValidatePassengerDetailsRequired(t *testing.T) {
	fields := ValidatePassengerDetails([]models.Passenger{
		{Name: "  ", Phone: "", Email: ""},
	})
	want := map[string]string{
		"0-name":  "Name is required",
		"0-phone": "Phone is required",
		"0-email": "Email is required",
	}
	for key, msg := range want {
		if fields[key] != msg {
			t.Fatalf("expected %q for %s, got %q", msg, key, fields[key])
		}
	}
}

func TestValidatePassengerDetailsFormats(t *testing.T) {
	fields := ValidatePassengerDetails([]models.Passenger{
		{Name: "Jane", Phone: "call me", Email: "not-an-email"},
	})
	if fields["0-phone"] != "Invalid phone format" {
		t.Fatalf("phone: got %q", fields["0-phone"])
	}
	if fields["0-email"] != "Invalid email format" {
		t.Fatalf("email: got %q", fields["0-email"])
	}
}

func TestValidatePassengerDetailsKeysByIndex(t *testing.T) {
	fields := ValidatePassengerDetails([]models.Passenger{
		{Name: "Jane", Phone: "+15550100", Email: "jane@example.com"},
		{Name: "", Phone: "+15550101", Email: "john@example.com"},
	})
	if len(fields) != 1 {
		t.Fatalf("expected one error, got %v", fields)
	}
	if fields["1-name"] != "Name is required" {
		t.Fatalf("expected error keyed to second passenger, got %v", fields)
	}
}

func TestPhonePatternAcceptsSeparators(t *testing.T) {
	for _, phone := range []string{"+1 555 0100", "555-0100", "(555) 0100", "5550100"} {
		if !phonePattern.MatchString(phone) {
			t.Fatalf("expected %q to be accepted", phone)
		}
	}
	for _, phone := range []string{"phone", "555x0100", "+1.555.0100"} {
		if phonePattern.MatchString(phone) {
			t.Fatalf("expected %q to be rejected", phone)
		}
	}
}
