package report

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.MustParse("pt-BR")

	mustSet(lang, TotalKey, plural.Selectf(1, "",
		plural.One, "A árvore contém %d pessoa no total.",
		plural.Other, "A árvore contém %d pessoas no total."))
	message.SetString(lang, DecadeLineKey, "%s: %d")
	mustSet(lang, DuplicatesHeaderKey, plural.Selectf(1, "",
		plural.One, "Há %d nome duplicado na árvore:",
		plural.Other, "Há %d nomes duplicados na árvore:"))
	message.SetString(lang, DuplicateLineKey, "* %s")

	message.SetString(lang, ReadingFilesKey, "Lendo arquivos...")
	message.SetString(lang, GeneratingKey, "Gerando árvore genealógica...")

	message.SetString(lang, MenuPromptKey, "Você tem interesse em:\n"+
		"(T)otal de pessoas na árvore\n"+
		"Total de pessoas na árvore por (D)écada\n"+
		"(N)omes duplicados\n"+
		"(Q) Sair\n"+
		"> ")
	message.SetString(lang, MenuInvalidKey, "Opção inválida, digite T, D, N ou Q.")
	message.SetString(lang, MenuShutdownKey, "Encerrando...")
}
