package validator

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/rowjay/countdown-token-service/internal/dto"
	"github.com/rowjay/countdown-token-service/internal/errors"
)

func ptr[T any](v T) *T { return &v }

func TestValidateCreateRequest(t *testing.T) {
	v := NewCountdownValidator(10)

	tests := []struct {
		name    string
		req     dto.CreateCountdownRequest
		wantErr bool
	}{
		{"timestamp", dto.CreateCountdownRequest{Timestamp: ptr(int64(1700000000)), TimezoneOffset: ptr(0)}, false},
		{"zero timestamp", dto.CreateCountdownRequest{Timestamp: ptr(int64(0)), TimezoneOffset: ptr(-720)}, false},
		{"date time", dto.CreateCountdownRequest{DateTime: "2025-01-01 05:30", TimezoneOffset: ptr(330)}, false},
		{"with title", dto.CreateCountdownRequest{Timestamp: ptr(int64(1)), TimezoneOffset: ptr(0), Title: ptr("Launch")}, false},
		{"negative timestamp", dto.CreateCountdownRequest{Timestamp: ptr(int64(-1)), TimezoneOffset: ptr(0)}, true},
		{"missing offset", dto.CreateCountdownRequest{Timestamp: ptr(int64(1))}, true},
		{"offset too low", dto.CreateCountdownRequest{Timestamp: ptr(int64(1)), TimezoneOffset: ptr(-721)}, true},
		{"offset too high", dto.CreateCountdownRequest{Timestamp: ptr(int64(1)), TimezoneOffset: ptr(841)}, true},
		{"no target", dto.CreateCountdownRequest{TimezoneOffset: ptr(0)}, true},
		{"both targets", dto.CreateCountdownRequest{Timestamp: ptr(int64(1)), DateTime: "2025-01-01 05:30", TimezoneOffset: ptr(0)}, true},
		{"bad date time", dto.CreateCountdownRequest{DateTime: "2025-01-01T05:30", TimezoneOffset: ptr(0)}, true},
		{"title too long", dto.CreateCountdownRequest{Timestamp: ptr(int64(1)), TimezoneOffset: ptr(0), Title: ptr(strings.Repeat("a", 11))}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateCreateRequest(&tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateCreateRequest() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !stderrors.Is(err, errors.ErrValidation) {
				t.Errorf("error kind = %v, want validation", errors.CodeOf(err))
			}
		})
	}
}

func TestValidateTitleCountsRunes(t *testing.T) {
	v := NewCountdownValidator(3)
	if err := v.ValidateTitle("日本語"); err != nil {
		t.Errorf("three runes rejected: %v", err)
	}
	if err := v.ValidateTitle("日本語!"); err == nil {
		t.Error("four runes accepted")
	}
	if err := v.ValidateTitle("\xff"); err == nil {
		t.Error("invalid UTF-8 accepted")
	}
}

func TestValidateToken(t *testing.T) {
	v := NewCountdownValidator(0)

	tests := []struct {
		token   string
		wantErr bool
	}{
		{"1000", false},
		{"2xg0m4oz", false},
		{"", true},
		{"ab", true},
		{"10-00", true},
		{"1000 ", true},
	}
	for _, tt := range tests {
		err := v.ValidateToken(tt.token)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateToken(%q) error = %v, wantErr %v", tt.token, err, tt.wantErr)
		}
		if err != nil && !stderrors.Is(err, errors.ErrInvalidToken) {
			t.Errorf("ValidateToken(%q) kind = %v, want InvalidToken", tt.token, errors.CodeOf(err))
		}
	}
}
