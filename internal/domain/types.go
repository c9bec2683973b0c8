package domain

// Policy controls which characters a generated password may contain.
type Policy struct {
	Length           int  `yaml:"length"`
	Lowercase        bool `yaml:"lowercase"`
	Uppercase        bool `yaml:"uppercase"`
	Digits           bool `yaml:"digits"`
	Symbols          bool `yaml:"symbols"`
	ExcludeAmbiguous bool `yaml:"exclude_ambiguous"`

	// RequireEachClass guarantees at least one character from every
	// selected class.
	RequireEachClass bool `yaml:"require_each_class"`
}

// DefaultPolicy mirrors the tool's flag defaults: 12 characters, letters and
// digits, one of each class guaranteed.
func DefaultPolicy() Policy {
	return Policy{
		Length:           12,
		Lowercase:        true,
		Uppercase:        true,
		Digits:           true,
		RequireEachClass: true,
	}
}

// WordlistPolicy controls passphrase generation.
type WordlistPolicy struct {
	Words      int    `yaml:"words"`
	Separator  string `yaml:"separator"`
	Capitalize bool   `yaml:"capitalize"`

	// AppendDigit adds a random digit to the final word, a common site
	// requirement.
	AppendDigit bool `yaml:"append_digit"`
}

// DefaultWordlistPolicy is six words joined by hyphens.
func DefaultWordlistPolicy() WordlistPolicy {
	return WordlistPolicy{Words: 6, Separator: "-"}
}

// StrengthReport summarises a password's composition and estimated strength.
type StrengthReport struct {
	Length       int
	HasLowercase bool
	HasUppercase bool
	HasDigits    bool
	HasSymbols   bool

	// ClassCount is how many of the four classes appear (0..4).
	ClassCount int

	// Score is 0..5; Label is the human reading of it.
	Score int
	Label string

	// EntropyBits estimates length * log2(alphabet implied by the classes
	// present). It assumes uniform random selection and overstates strength
	// for human-chosen passwords.
	EntropyBits float64
}

// VaultEntry is one stored secret. List operations return entries with
// Password cleared.
type VaultEntry struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	Password   string `json:"password,omitempty"`
	Notes      string `json:"notes,omitempty"`
	Strength   string `json:"strength"`
	CreatedUTC int64  `json:"created_utc"`
}
