package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metal-toolbox/user-echo/internal/model"
)

func strPtr(s string) *string { return &s }

func TestValidateUser(t *testing.T) {
	v := New()

	testcases := []struct {
		name      string
		user      *model.User
		wantRules []string
		wantField []string
	}{
		{
			"valid names",
			model.NewUser("John", "Doe"),
			nil,
			nil,
		},
		{
			"thirty letters is fine",
			model.NewUser(strings.Repeat("a", 30), "Z"),
			nil,
			nil,
		},
		{
			"digit in first name",
			model.NewUser("J0hn", "Doe"),
			[]string{"personname"},
			[]string{"first_name"},
		},
		{
			"empty last name",
			model.NewUser("John", ""),
			[]string{"personname"},
			[]string{"last_name"},
		},
		{
			"thirty one letters",
			model.NewUser(strings.Repeat("a", 31), "Doe"),
			[]string{"personname"},
			[]string{"first_name"},
		},
		{
			"whitespace",
			model.NewUser("John ", "Doe"),
			[]string{"personname"},
			[]string{"first_name"},
		},
		{
			"letters outside ascii",
			model.NewUser("Jöhn", "Doe"),
			[]string{"personname"},
			[]string{"first_name"},
		},
		{
			"punctuation",
			model.NewUser("John", "O'Neil"),
			[]string{"personname"},
			[]string{"last_name"},
		},
		{
			"null first name",
			&model.User{LastName: strPtr("Doe")},
			[]string{"required"},
			[]string{"first_name"},
		},
		{
			"every field reported in declaration order",
			&model.User{FirstName: strPtr("J0hn")},
			[]string{"personname", "required"},
			[]string{"first_name", "last_name"},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.ValidateStruct(tc.user)
			if tc.wantRules == nil {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			violations, ok := err.(Violations)
			require.True(t, ok, "expected Violations, got %T", err)

			rules := make([]string, 0, len(violations))
			for _, vi := range violations {
				rules = append(rules, vi.Rule)
			}

			assert.Equal(t, tc.wantRules, rules)
			assert.Equal(t, tc.wantField, violations.Fields())
		})
	}
}

func TestViolationsMessage(t *testing.T) {
	err := New().ValidateStruct(&model.User{FirstName: strPtr("J0hn")})
	require.Error(t, err)

	assert.Equal(t,
		"validation failed: first_name must match ^[A-Za-z]{1,30}$; last_name must not be null",
		err.Error(),
	)
}

func TestValidateStructIgnoresNonStructs(t *testing.T) {
	v := New()

	var nilUser *model.User
	assert.NoError(t, v.ValidateStruct(nil))
	assert.NoError(t, v.ValidateStruct(nilUser))
	assert.NoError(t, v.ValidateStruct(map[string]any{"first_name": "1"}))
	assert.NotNil(t, v.Engine())
}

func TestValidateSlice(t *testing.T) {
	users := []*model.User{
		model.NewUser("John", "Doe"),
		model.NewUser("Jane", "D0e"),
	}

	err := New().ValidateStruct(users)
	require.Error(t, err)
	assert.Equal(t, []string{"last_name"}, err.(Violations).Fields())
}
