// Package data embeds the lookup tables used by the cleaning pipeline.
package data

import _ "embed"

// HaitianAbbreviations is a tab-separated table of Haitian Creole
// abbreviations and their spoken expansions, one pair per line.
//
//go:embed abbrev_ht.tsv
var HaitianAbbreviations string
