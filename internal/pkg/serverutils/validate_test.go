package serverutils

import (
	"testing"

	"leafit-be/internal/dto"

	"github.com/stretchr/testify/assert"
)

func TestValidateRegisterRequest(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		req := dto.RegisterRequest{
			Name:            "Eco User",
			Email:           "eco@example.com",
			Password:        "supersecret",
			ConfirmPassword: "supersecret",
		}
		assert.Nil(t, ValidateRequest(&req))
	})

	t.Run("mismatched confirm password", func(t *testing.T) {
		req := dto.RegisterRequest{
			Name:            "Eco User",
			Email:           "eco@example.com",
			Password:        "supersecret",
			ConfirmPassword: "different1",
		}
		fields := ValidateRequest(&req)
		assert.Contains(t, fields, "confirmpassword")
		assert.Equal(t, "Passwords do not match", fields["confirmpassword"])
	})

	t.Run("invalid email and short password", func(t *testing.T) {
		req := dto.RegisterRequest{
			Name:            "Eco User",
			Email:           "not-an-email",
			Password:        "short",
			ConfirmPassword: "short",
		}
		fields := ValidateRequest(&req)
		assert.Contains(t, fields, "email")
		assert.Contains(t, fields, "password")
	})

	t.Run("missing everything", func(t *testing.T) {
		fields := ValidateRequest(&dto.RegisterRequest{})
		assert.Len(t, fields, 4)
		assert.Equal(t, "This field is required", fields["name"])
	})
}

func TestValidateCreateActivityRequest(t *testing.T) {
	valid := dto.CreateActivityRequest{
		ActivityType:    "transport",
		ActivitySubtype: "cycling",
		ActivityName:    "Bike to Work",
		Quantity:        5,
		Unit:            "km",
	}

	t.Run("valid request passes", func(t *testing.T) {
		assert.Nil(t, ValidateRequest(&valid))
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		req := valid
		req.Quantity = 0
		fields := ValidateRequest(&req)
		assert.Contains(t, fields, "quantity")
	})

	t.Run("negative quantity rejected", func(t *testing.T) {
		req := valid
		req.Quantity = -2
		assert.Contains(t, ValidateRequest(&req), "quantity")
	})

	t.Run("unknown category rejected", func(t *testing.T) {
		req := valid
		req.ActivityType = "teleportation"
		assert.Contains(t, ValidateRequest(&req), "activitytype")
	})
}

func TestValidateChangePasswordRequest(t *testing.T) {
	req := dto.ChangePasswordRequest{
		OldPassword:     "oldpassword",
		NewPassword:     "newpassword",
		ConfirmPassword: "newpassword",
	}
	assert.Nil(t, ValidateRequest(&req))

	req.ConfirmPassword = "other"
	assert.Contains(t, ValidateRequest(&req), "confirmpassword")
}
