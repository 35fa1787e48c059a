package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/operator-codex/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) fieldErrors(err error) map[string][]string {
	meta := errors.GetMeta(err)
	s.Require().NotNil(meta)
	return meta["validation_errors"].(map[string][]string)
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("root", "is required")
	ve.AddFieldError("ttl", "is invalid")
	ve.AddFieldErrorf("professions", "expected at least %d", 1)

	s.Assert().True(ve.HasErrors())
	s.Assert().Equal(
		"validation failed: professions: expected at least 1; root: is required; ttl: is invalid",
		ve.Error(),
	)

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("root", "is required").
		Fieldf("ttl", "must be at least %d seconds", 1).
		RequiredField("client").
		InvalidField("prefix", "contains whitespace")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Len(s.fieldErrors(err), 4)
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	s.Assert().Nil(vb.Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "test", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  test  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateNotEmpty() {
	vb := errors.NewValidationBuilder()
	errors.ValidateNotEmpty("professions", 0, vb)
	errors.ValidateNotEmpty("types", 2, vb)

	fields := s.fieldErrors(vb.Build())
	s.Assert().Equal([]string{"must not be empty"}, fields["professions"])
	s.Assert().NotContains(fields, "types")
}

func (s *ValidationTestSuite) TestValidateUnique() {
	vb := errors.NewValidationBuilder()
	errors.ValidateUnique("professions", []string{"PIONEER", "WARRIOR", "PIONEER"}, vb)
	errors.ValidateUnique("types", []string{"MELEE", "RANGED"}, vb)

	fields := s.fieldErrors(vb.Build())
	s.Assert().Equal([]string{`duplicate value "PIONEER"`}, fields["professions"])
	s.Assert().NotContains(fields, "types")
}

func (s *ValidationTestSuite) TestValidateEnum() {
	allowed := []string{"debug", "info", "warn", "error"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("log_level", "verbose", allowed, vb)
	errors.ValidateEnum("other_level", "info", allowed, vb)

	fields := s.fieldErrors(vb.Build())
	s.Assert().Contains(fields["log_level"][0], "must be one of: debug, info, warn, error")
	s.Assert().NotContains(fields, "other_level")
}
