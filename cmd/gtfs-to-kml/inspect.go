package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/gtfs-to-kml/kml"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.kml>",
	Short: "Print the folder structure of a KML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		root, err := kml.Decode(f)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		printSummary(cmd.OutOrStdout(), summarize(root))
		return nil
	},
}

type folderSummary struct {
	Path       string
	Placemarks int
}

// summarize lists every folder that directly holds placemarks, with its
// path of folder names from the document.
func summarize(root *kml.Element) []folderSummary {
	var out []folderSummary
	var visit func(e *kml.Element, path string)
	visit = func(e *kml.Element, path string) {
		for _, f := range e.FindAll("Folder") {
			p := f.ChildText("name")
			if path != "" {
				p = path + "/" + p
			}
			if n := len(f.FindAll("Placemark")); n > 0 {
				out = append(out, folderSummary{Path: p, Placemarks: n})
			}
			visit(f, p)
		}
	}
	doc := root.Find("Document")
	if doc == nil {
		doc = root
	}
	visit(doc, "")
	return out
}

func printSummary(w io.Writer, folders []folderSummary) {
	total := 0
	for _, f := range folders {
		fmt.Fprintf(w, "%6d  %s\n", f.Placemarks, f.Path)
		total += f.Placemarks
	}
	fmt.Fprintf(w, "%6d  placemarks in %d folders\n", total, len(folders))
}
