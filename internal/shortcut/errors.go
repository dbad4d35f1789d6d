package shortcut

// ValidationError describes why a canonical string is not a usable shortcut.
// Values are comparable, so errors.Is works against the exported variables.
type ValidationError int

const (
	NoModifierKeys ValidationError = iota + 1
	NoMainKey
	MoreThanOneMainKey
	DuplicateModifierKeys
)

var validationCodes = map[ValidationError]string{
	NoModifierKeys:        "NO_MODIFIER_KEYS",
	NoMainKey:             "NO_MAIN_KEY",
	MoreThanOneMainKey:    "MORE_THAN_ONE_MAIN_KEY",
	DuplicateModifierKeys: "DUPLICATE_MODIFIER_KEYS",
}

var validationMessages = map[ValidationError]string{
	NoModifierKeys:        "No modifier keys",
	NoMainKey:             "No main key",
	MoreThanOneMainKey:    "More than one main key",
	DuplicateModifierKeys: "Duplicate modifier keys",
}

// Code returns the stable identifier, e.g. "NO_MAIN_KEY".
func (e ValidationError) Code() string {
	if code, ok := validationCodes[e]; ok {
		return code
	}
	return "UNKNOWN"
}

// Message returns the text shown to users.
func (e ValidationError) Message() string {
	if msg, ok := validationMessages[e]; ok {
		return msg
	}
	return "Invalid shortcut"
}

func (e ValidationError) Error() string {
	return e.Message()
}

func (e ValidationError) String() string {
	return e.Code()
}
