package convert

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"

	"formtree/config"
	"formtree/visual"
)

// writeOutput generates output in the specified format and writes it to the
// file.
func writeOutput(name string, frag *visual.Fragment, title string, format config.OutputFmt) (err error) {
	out, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, out.Close())
	}()

	switch format {
	case config.OutputFmtHtml:
		return visual.RenderDocument(out, frag, title)
	case config.OutputFmtTree:
		_, err = io.WriteString(out, frag.Dump())
		return err
	}
	return fmt.Errorf("unsupported output format: %s", format)
}
