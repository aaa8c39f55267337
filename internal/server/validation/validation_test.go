package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSignup_Valid(t *testing.T) {
	req, msgs := ParseSignup([]byte(`{"email":"a@b.com","password":"Abcdef1"}`))
	require.Nil(t, msgs)
	assert.Equal(t, SignupRequest{Email: "a@b.com", Password: "Abcdef1"}, req)
}

func TestParseSignup_EmailFormatNotEnforced(t *testing.T) {
	req, msgs := ParseSignup([]byte(`{"email":"not-an-email","password":"Abcdef"}`))
	require.Nil(t, msgs)
	assert.Equal(t, "not-an-email", req.Email)
}

func TestParseSignup_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "missing both",
			body: `{}`,
			want: []string{"email is required", "password is required"},
		},
		{
			name: "missing password",
			body: `{"email":"a@b.com"}`,
			want: []string{"password is required"},
		},
		{
			name: "null email",
			body: `{"email":null,"password":"Abcdef1"}`,
			want: []string{"email is required"},
		},
		{
			name: "short and lowercase",
			body: `{"email":"a@b.com","password":"abc"}`,
			want: []string{
				"Password must be at least 6 characters long",
				"Password must contain at least one uppercase letter",
			},
		},
		{
			name: "long enough but no uppercase",
			body: `{"email":"a@b.com","password":"abcdef1"}`,
			want: []string{"Password must contain at least one uppercase letter"},
		},
		{
			name: "short with uppercase",
			body: `{"email":"a@b.com","password":"Ab1"}`,
			want: []string{"Password must be at least 6 characters long"},
		},
		{
			name: "wrong types",
			body: `{"email":42,"password":true}`,
			want: []string{"email must be a string", "password must be a string"},
		},
		{
			name: "empty strings",
			body: `{"email":"","password":""}`,
			want: []string{"email must not be empty", "password must not be empty"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, msgs := ParseSignup([]byte(tt.body))
			assert.Equal(t, tt.want, msgs)
		})
	}
}

func TestParseSignup_MultibyteLengthCountsRunes(t *testing.T) {
	_, msgs := ParseSignup([]byte(`{"email":"a@b.com","password":"Aäääää"}`))
	assert.Nil(t, msgs)
}

func TestParseSignup_PasswordByteLimit(t *testing.T) {
	_, msgs := ParseSignup([]byte(`{"email":"a@b.com","password":"A` + strings.Repeat("b", 71) + `"}`))
	assert.Nil(t, msgs)

	_, msgs = ParseSignup([]byte(`{"email":"a@b.com","password":"A` + strings.Repeat("b", 72) + `"}`))
	assert.Equal(t, []string{"Password must be at most 72 bytes long"}, msgs)

	// 36 two-byte runes pass max-style rune counting but exceed 72 bytes.
	_, msgs = ParseSignup([]byte(`{"email":"a@b.com","password":"A` + strings.Repeat("ä", 36) + `"}`))
	assert.Equal(t, []string{"Password must be at most 72 bytes long"}, msgs)
}

func TestParseLogin_NoStrengthRules(t *testing.T) {
	req, msgs := ParseLogin([]byte(`{"email":"a@b.com","password":"x"}`))
	require.Nil(t, msgs)
	assert.Equal(t, LoginRequest{Email: "a@b.com", Password: "x"}, req)
}

func TestParseLogin_Missing(t *testing.T) {
	_, msgs := ParseLogin([]byte(`{"password":"x"}`))
	assert.Equal(t, []string{"email is required"}, msgs)

	_, msgs = ParseLogin([]byte(`{"email":"a@b.com"}`))
	assert.Equal(t, []string{"password is required"}, msgs)
}

func TestParseTranslate(t *testing.T) {
	req, msgs := ParseTranslate([]byte(`{"text":"hello","target":"es"}`))
	require.Nil(t, msgs)
	assert.Equal(t, TranslateRequest{Text: "hello", Target: "es"}, req)

	_, msgs = ParseTranslate([]byte(`{"text":"","target":"es"}`))
	assert.Equal(t, []string{"text must not be empty"}, msgs)

	_, msgs = ParseTranslate([]byte(`{"text":"hello"}`))
	assert.Equal(t, []string{"target is required"}, msgs)
}

func TestCheck_MalformedBodies(t *testing.T) {
	tests := []struct {
		body string
		want []string
	}{
		{body: ``, want: []string{"email is required", "password is required"}},
		{body: `   `, want: []string{"email is required", "password is required"}},
		{body: `{`, want: []string{"Invalid JSON body"}},
		{body: `[]`, want: []string{"Expected object, received array"}},
		{body: `"str"`, want: []string{"Expected object, received string"}},
		{body: `12`, want: []string{"Expected object, received number"}},
		{body: `true`, want: []string{"Expected object, received boolean"}},
		{body: `null`, want: []string{"Expected object, received null"}},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			values, msgs := LoginSchema.Check([]byte(tt.body))
			assert.Nil(t, values)
			assert.Equal(t, tt.want, msgs)
		})
	}
}

func TestCheck_ExtraFieldsIgnored(t *testing.T) {
	values, msgs := TranslateSchema.Check([]byte(`{"text":"hi","target":"de","source":"en"}`))
	require.Nil(t, msgs)
	assert.Equal(t, map[string]string{"text": "hi", "target": "de"}, values)
}
