//go:build ignore

package main

import (
	"fmt"
	"os"

	"github.com/ormasoftchile/cmsgen/pkg/catalog"
)

func main() {
	data, err := catalog.ExportContentTypesSchema()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile("schemas/content-types.schema.json", data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("wrote schemas/content-types.schema.json")

	sectionData, err := catalog.ExportSectionsSchema()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error generating section schema: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile("schemas/sections.schema.json", sectionData, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("wrote schemas/sections.schema.json")
}
