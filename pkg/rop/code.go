package rop

// Code is the status of an outcome. CodeOk is the only success code.
type Code int

const (
	CodeOk Code = iota
	CodeError
	CodeCustomError
	CodeInvalidOperation
	CodeMissingValue
	CodeInternalServiceError
)

var codeNames = [...]string{
	CodeOk:                   "Ok",
	CodeError:                "Error",
	CodeCustomError:          "CustomError",
	CodeInvalidOperation:     "InvalidOperation",
	CodeMissingValue:         "MissingValue",
	CodeInternalServiceError: "InternalServiceError",
}

// CodeCustomError has no fixed text, its meaning lives in the outcome message.
var codeTexts = [...]string{
	CodeOk:                   "",
	CodeError:                "An error has occurred.",
	CodeCustomError:          "",
	CodeInvalidOperation:     "Invalid operation error.",
	CodeMissingValue:         "Expected value was missing.",
	CodeInternalServiceError: "An internal server error occurred.",
}

// Valid reports whether c is one of the declared codes.
func (c Code) Valid() bool {
	return c >= CodeOk && c <= CodeInternalServiceError
}

func (c Code) String() string {
	if !c.Valid() {
		return "Code(unknown)"
	}
	return codeNames[c]
}

// Text returns the fixed human-readable text for c.
func (c Code) Text() string {
	if !c.Valid() {
		return ""
	}
	return codeTexts[c]
}

// IsSuccess reports whether c is Ok.
func (c Code) IsSuccess() bool {
	return c == CodeOk
}

// ErrorText returns the fixed text for code, empty for CodeOk and CodeCustomError.
func ErrorText(code Code) string {
	return code.Text()
}
