package handler

import (
	"strings"
	"testing"
	"time"
)

func TestValidator_RoleTag_AcceptsKnownRoles(t *testing.T) {
	v := NewValidator()

	for _, role := range []string{"super_admin", "admin", "staff"} {
		req := registerRequest{
			Email:    "a@example.com",
			Name:     "A",
			Password: "secret-pw",
			Role:     role,
		}
		if err := v.Validate(req); err != nil {
			t.Errorf("role %q must validate: %v", role, err)
		}
	}
}

func TestValidator_RoleTag_RejectsUnknownRole(t *testing.T) {
	v := NewValidator()

	req := registerRequest{
		Email:    "a@example.com",
		Name:     "A",
		Password: "secret-pw",
		Role:     "owner",
	}
	err := v.Validate(req)
	if err == nil {
		t.Fatal("unknown role must fail validation")
	}
	if !strings.Contains(err.Error(), "role must be one of") {
		t.Errorf("expected role enum message, got %q", err)
	}
}

func TestValidator_ReminderTypeTag(t *testing.T) {
	v := NewValidator()

	base := func(typ string) createReminderRequest {
		return createReminderRequest{Type: typ, Title: "x", DueDate: time.Now().AddDate(0, 0, 30)}
	}

	if err := v.Validate(base("payment-due")); err != nil {
		t.Errorf("payment-due must validate: %v", err)
	}
	if err := v.Validate(base("anniversary")); err == nil {
		t.Error("unknown reminder type must fail validation")
	}
}

func TestValidator_Messages_UseJSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(createReminderRequest{Type: "custom", DueDate: time.Now().AddDate(0, 0, 30)})
	if err == nil {
		t.Fatal("missing title must fail validation")
	}
	if !strings.Contains(err.Error(), "title is required") {
		t.Errorf("messages must name the json field, got %q", err)
	}
}

func TestValidator_PasswordLengthMessage(t *testing.T) {
	v := NewValidator()

	req := registerRequest{
		Email:    "a@example.com",
		Name:     "A",
		Password: "short",
		Role:     "staff",
	}
	err := v.Validate(req)
	if err == nil {
		t.Fatal("short password must fail validation")
	}
	if !strings.Contains(err.Error(), "password must be at least 8 characters") {
		t.Errorf("expected length message, got %q", err)
	}
}
