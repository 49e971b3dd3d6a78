// Command appicon writes the application icon to app_icon.png in the
// current directory.
package main

import (
	"io"
	"log"
	"log/slog"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/arkadasbulma/appicon"
	"github.com/arkadasbulma/appicon/logo"
)

// msgIconWritten is the catalog key of the confirmation line. Its argument
// is the file name.
const msgIconWritten = "Icon created successfully: %s\n"

// messages holds the console output. Turkish is the default locale.
var messages = newCatalog()

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.Turkish))
	for tag, msg := range map[language.Tag]string{
		language.Turkish: "Icon başarıyla oluşturuldu: %s\n",
		language.English: msgIconWritten,
	} {
		if err := b.SetString(tag, msgIconWritten, msg); err != nil {
			panic(err)
		}
	}
	return b
}

func main() {
	appicon.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdout); err != nil {
		log.Fatalf("appicon: %v", err)
	}
}

// run writes the icon and prints the confirmation line. Nothing is printed
// when the icon could not be written.
func run(stdout io.Writer) error {
	if err := logo.Save(logo.FileName); err != nil {
		return err
	}
	return confirm(stdout, language.Turkish, logo.FileName)
}

// confirm prints the localized confirmation for the written file.
func confirm(w io.Writer, tag language.Tag, name string) error {
	p := message.NewPrinter(tag, message.Catalog(messages))
	_, err := p.Fprintf(w, msgIconWritten, name)
	return err
}
