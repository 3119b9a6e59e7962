// gervigogn converts a Þjóðskrá Einstaklingar XML dataset to JSON, with a
// validation block attached to every record.
//
// Usage:
//
//	gervigogn [-out file.json] [-pretty] dataset.xml
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/olgasafonova/iceland-registry-mcp-server/internal/gervigogn"
)

func main() {
	out := flag.String("out", "", "write JSON to this file instead of stdout")
	pretty := flag.Bool("pretty", false, "indent the JSON output")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-out file.json] [-pretty] dataset.xml\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	if err := run(flag.Arg(0), *out, *pretty); err != nil {
		logger.Error("Conversion failed", "error", err)
		os.Exit(1)
	}
}

// document mirrors the dataset's XML root, so the JSON keeps the
// Einstaklingar envelope.
type document struct {
	Einstaklingar []gervigogn.ValidatedRecord `json:"Einstaklingar"`
}

func run(path, out string, pretty bool) error {
	records, err := gervigogn.LoadFile(path)
	if err != nil {
		return err
	}
	validated := gervigogn.ValidateRecords(records)
	doc := document{Einstaklingar: validated}

	var data []byte
	if pretty {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	data = append(data, '\n')

	if out == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	strictValid := 0
	for _, rec := range validated {
		if rec.Validation.Strict {
			strictValid++
		}
	}
	fmt.Fprintf(os.Stderr, "Wrote %d records to %s (%d strict-valid)\n", len(validated), out, strictValid)
	return nil
}
