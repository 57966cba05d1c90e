// Package morse translates dot/dash sequences using a fixed code table.
package morse

// Unknown is the sentinel returned for sequences absent from the table.
// Callers decide whether to render or drop it; the decoder itself never
// treats an unrecognized sequence as an error.
const Unknown = "?"

// codeTable maps whole sequences to their decoded token. Lookup is exact:
// partial or ambiguous runs fall through to Unknown. The distress signal
// keeps its own nine-element entry so it never decomposes into S-O-S.
//
// The historical table carried two entries for ".-..-." (quote and
// apostrophe); the apostrophe is the one kept here.
var codeTable = map[string]string{
	".-":   "A",
	"-...": "B",
	"-.-.": "C",
	"-..":  "D",
	".":    "E",
	"..-.": "F",
	"--.":  "G",
	"....": "H",
	"..":   "I",
	".---": "J",
	"-.-":  "K",
	".-..": "L",
	"--":   "M",
	"-.":   "N",
	"---":  "O",
	".--.": "P",
	"--.-": "Q",
	".-.":  "R",
	"...":  "S",
	"-":    "T",
	"..-":  "U",
	"...-": "V",
	".--":  "W",
	"-..-": "X",
	"-.--": "Y",
	"--..": "Z",

	"-----": "0",
	".----": "1",
	"..---": "2",
	"...--": "3",
	"....-": "4",
	".....": "5",
	"-....": "6",
	"--...": "7",
	"---..": "8",
	"----.": "9",

	".-.-.-": ".",
	"--..--": ",",
	"---...": ":",
	"..--..": "?",
	"-....-": "-",
	"-.-.--": "!",
	".-.-.":  "+",
	".-..-.": "'",
	"---.":   "(",
	"-.--.-": ")",
	".-...":  "&",
	"--.-.":  "@",
	"...-.-": "$",
	".-.-..": "_",
	"..--.-": "/",

	"...---...": "SOS",
}

// reverse is derived from codeTable at init for encoding test matrices.
var reverse = func() map[string]string {
	m := make(map[string]string, len(codeTable))
	for seq, token := range codeTable {
		m[token] = seq
	}
	return m
}()

// Translate returns the token for an exact sequence match, or Unknown.
func Translate(sequence string) string {
	if token, ok := codeTable[sequence]; ok {
		return token
	}
	return Unknown
}

// SequenceOf returns the dot/dash sequence encoding a token, if the token
// exists in the table.
func SequenceOf(token string) (string, bool) {
	seq, ok := reverse[token]
	return seq, ok
}
