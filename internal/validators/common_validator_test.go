package validators

import "testing"

func TestObjectIDRule(t *testing.T) {
	type payload struct {
		ID string `validate:"required,object_id"`
	}

	if errs := ValidateStruct(&payload{ID: "64a0f0c2e1b2c3d4e5f60718"}); errs != nil {
		t.Errorf("valid object id rejected: %v", errs)
	}
	if errs := ValidateStruct(&payload{ID: "not-hex"}); errs == nil {
		t.Error("invalid object id accepted")
	}
}

func TestClockTimeRule(t *testing.T) {
	type payload struct {
		At string `validate:"omitempty,clock_time"`
	}

	for _, ok := range []string{"00:00", "08:30", "23:59"} {
		if errs := ValidateStruct(&payload{At: ok}); errs != nil {
			t.Errorf("%q rejected: %v", ok, errs)
		}
	}
	for _, bad := range []string{"24:00", "8:30:00", "noonish", "12:60"} {
		if errs := ValidateStruct(&payload{At: bad}); errs == nil {
			t.Errorf("%q accepted", bad)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidateStruct(&LoginRequest{Email: "nope", Password: ""})
	if errs == nil {
		t.Fatal("expected validation errors")
	}
	m := errs.ToMap()
	if _, ok := m["email"]; !ok {
		t.Errorf("missing email error, got %v", m)
	}
	if _, ok := m["password"]; !ok {
		t.Errorf("missing password error, got %v", m)
	}
}
