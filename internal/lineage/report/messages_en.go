package report

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	mustSet(lang, TotalKey, plural.Selectf(1, "",
		plural.One, "The tree contains %d person total.",
		plural.Other, "The tree contains %d people total."))
	message.SetString(lang, DecadeLineKey, "%s: %d")
	mustSet(lang, DuplicatesHeaderKey, plural.Selectf(1, "",
		plural.One, "There is %d duplicate name in the tree:",
		plural.Other, "There are %d duplicate names in the tree:"))
	message.SetString(lang, DuplicateLineKey, "* %s")

	message.SetString(lang, ReadingFilesKey, "Reading files...")
	message.SetString(lang, GeneratingKey, "Generating family tree...")

	message.SetString(lang, MenuPromptKey, "Are you interested in:\n"+
		"(T)otal number of people in the tree\n"+
		"Total number of people in the tree by (D)ecade\n"+
		"(N)ames duplicated\n"+
		"(Q)uit\n"+
		"> ")
	message.SetString(lang, MenuInvalidKey, "Invalid choice, please enter T, D, N, or Q.")
	message.SetString(lang, MenuShutdownKey, "Shutting down...")
}
