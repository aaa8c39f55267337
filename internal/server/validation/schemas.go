package validation

// SignupRequest is a schema-valid /signup payload.
type SignupRequest struct {
	Email    string
	Password string
}

// LoginRequest is a schema-valid /login payload.
type LoginRequest struct {
	Email    string
	Password string
}

// TranslateRequest is a schema-valid /text payload.
type TranslateRequest struct {
	Text   string
	Target string
}

// The alphanumeric rule on signup passwords matches almost any input; it is
// kept for compatibility with existing clients.
var (
	SignupSchema = Schema{
		Name: "signup",
		Fields: []Field{
			{Name: "email"},
			{Name: "password", Rules: []Rule{
				{Tag: "min=6", Message: "Password must be at least 6 characters long"},
				// bcrypt only accepts up to 72 bytes.
				{Tag: "maxbytes=72", Message: "Password must be at most 72 bytes long"},
				{Tag: "hasupper", Message: "Password must contain at least one uppercase letter"},
				{Tag: "hasalnum", Message: "Password must contain at least one alphanumeric character"},
			}},
		},
	}

	LoginSchema = Schema{
		Name:   "login",
		Fields: []Field{{Name: "email"}, {Name: "password"}},
	}

	TranslateSchema = Schema{
		Name:   "translate",
		Fields: []Field{{Name: "text"}, {Name: "target"}},
	}
)

// ParseSignup validates a /signup body.
func ParseSignup(raw []byte) (SignupRequest, []string) {
	v, msgs := SignupSchema.Check(raw)
	if msgs != nil {
		return SignupRequest{}, msgs
	}
	return SignupRequest{Email: v["email"], Password: v["password"]}, nil
}

// ParseLogin validates a /login body. Password strength is not re-checked.
func ParseLogin(raw []byte) (LoginRequest, []string) {
	v, msgs := LoginSchema.Check(raw)
	if msgs != nil {
		return LoginRequest{}, msgs
	}
	return LoginRequest{Email: v["email"], Password: v["password"]}, nil
}

// ParseTranslate validates a /text body.
func ParseTranslate(raw []byte) (TranslateRequest, []string) {
	v, msgs := TranslateSchema.Check(raw)
	if msgs != nil {
		return TranslateRequest{}, msgs
	}
	return TranslateRequest{Text: v["text"], Target: v["target"]}, nil
}
