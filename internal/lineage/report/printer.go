package report

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var supportedTags = []language.Tag{
	language.English,
	language.MustParse("pt-BR"),
}

var tagMatcher = language.NewMatcher(supportedTags)

// ResolveTag maps a language name such as "pt-BR" to a supported tag,
// defaulting to English.
func ResolveTag(value string) language.Tag {
	parsed, err := language.Parse(value)
	if err != nil {
		return language.English
	}
	_, index, confidence := tagMatcher.Match(parsed)
	if confidence == language.No {
		return language.English
	}
	return supportedTags[index]
}

// Printer writes localized reports.
type Printer struct {
	out io.Writer
	loc *message.Printer
	tag language.Tag
}

// NewPrinter returns a Printer writing to out in the given language.
func NewPrinter(out io.Writer, tag language.Tag) *Printer {
	return &Printer{out: out, loc: message.NewPrinter(tag), tag: tag}
}

// Println writes one localized message followed by a newline.
func (p *Printer) Println(key message.Reference, args ...any) {
	p.loc.Fprintf(p.out, key, args...)
	fmt.Fprintln(p.out)
}

// Print writes one localized message.
func (p *Printer) Print(key message.Reference, args ...any) {
	p.loc.Fprintf(p.out, key, args...)
}

// Total prints the registry size.
func (p *Printer) Total(people People) {
	p.Println(TotalKey, Total(people))
}

// ByDecade prints one "1950s: N" line per decade.
func (p *Printer) ByDecade(people People) {
	for _, dc := range ByDecade(people) {
		p.Println(DecadeLineKey, dc.Decade, dc.Count)
	}
}

// Duplicates prints the duplicate-name header and one line per name.
func (p *Printer) Duplicates(people People) {
	names := Duplicates(people, p.tag)
	p.Println(DuplicatesHeaderKey, len(names))
	for _, name := range names {
		p.Println(DuplicateLineKey, name)
	}
}

func mustSet(tag language.Tag, key string, msg catalog.Message) {
	if err := message.Set(tag, key, msg); err != nil {
		panic(fmt.Sprintf("register %s message %q: %v", tag, key, err))
	}
}
