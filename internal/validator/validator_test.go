package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veloxrent/rental-admin/internal/model"
)

func TestNew(t *testing.T) {
	v := New()
	require.NotNil(t, v, "New() should return a non-nil validator")
}

func TestNotblank(t *testing.T) {
	v := New()

	type testStruct struct {
		Code string `validate:"notblank"`
	}

	testCases := []struct {
		name        string
		input       string
		expectError bool
	}{
		{"valid_string", "SAVE10", false},
		{"valid_with_spaces", "  SAVE10  ", false},
		{"whitespace_only_spaces", "   ", true},
		{"whitespace_only_tabs", "\t\t", true},
		{"whitespace_mixed", " \t\n ", true},
		{"empty_string", "", true},
		{"single_char", "a", false},
		{"unicode_content", "خصم", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(testStruct{Code: tc.input})
			if tc.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateCouponRequest_Validation(t *testing.T) {
	v := New()
	rate := func(f float64) *float64 { return &f }

	testCases := []struct {
		name        string
		req         model.CreateCouponRequest
		expectError bool
	}{
		{"valid", model.CreateCouponRequest{Code: "SAVE10", DiscountRate: rate(10)}, false},
		{"missing_code", model.CreateCouponRequest{DiscountRate: rate(10)}, true},
		{"blank_code", model.CreateCouponRequest{Code: "   ", DiscountRate: rate(10)}, true},
		{"missing_rate", model.CreateCouponRequest{Code: "SAVE10"}, true},
		{"negative_rate", model.CreateCouponRequest{Code: "SAVE10", DiscountRate: rate(-1)}, true},
		{"rate_above_hundred", model.CreateCouponRequest{Code: "SAVE10", DiscountRate: rate(101)}, true},
		{"rate_at_bounds", model.CreateCouponRequest{Code: "SAVE10", DiscountRate: rate(100)}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(tc.req)
			if tc.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApplyCouponRequest_Validation(t *testing.T) {
	v := New()

	testCases := []struct {
		name        string
		req         model.ApplyCouponRequest
		expectError bool
	}{
		{"valid", model.ApplyCouponRequest{UserID: "u1", Code: "SAVE10"}, false},
		{"missing_user", model.ApplyCouponRequest{Code: "SAVE10"}, true},
		{"blank_user", model.ApplyCouponRequest{UserID: " ", Code: "SAVE10"}, true},
		{"missing_code", model.ApplyCouponRequest{UserID: "u1"}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(tc.req)
			if tc.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestListCouponsRequest_Validation(t *testing.T) {
	v := New()

	valid := model.ListCouponsRequest{Offset: 0, Limit: 25}
	assert.NoError(t, v.Struct(valid))

	negOffset := model.ListCouponsRequest{Offset: -1, Limit: 25}
	assert.Error(t, v.Struct(negOffset))

	zeroLimit := model.ListCouponsRequest{Offset: 0, Limit: 0}
	assert.Error(t, v.Struct(zeroLimit))

	hugeLimit := model.ListCouponsRequest{Offset: 0, Limit: 500}
	assert.Error(t, v.Struct(hugeLimit))

	badDirection := model.ListCouponsRequest{Offset: 0, Limit: 25,
		Sort: &model.ListSort{ColumnIndex: 0, Direction: "sideways"}}
	assert.Error(t, v.Struct(badDirection))
}
