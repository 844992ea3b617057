package normalize

import "strings"

// ipaRules maps Haitian Creole spellings to IPA symbols. Rules run as
// separate passes in this order, each over the output of the previous one,
// so the j produced by "ay" and "ye" is rewritten to ʒ by the later j rule.
var ipaRules = []struct {
	old, new string
}{
	{"ch", "ʃ"},
	{"ou", "u"},
	{"ay", "aj"},
	{"ye", "je"},
	{"ò", "ɔ"},
	{"j", "ʒ"},
	{"pe", "pˈe"},
}

// ApplyIPARules rewrites Haitian Creole orthography into IPA where the
// spelling is unambiguous.
func ApplyIPARules(s string) string {
	for _, r := range ipaRules {
		s = strings.ReplaceAll(s, r.old, r.new)
	}
	return s
}
