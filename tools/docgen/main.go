// Package main generates CLI reference documentation from the upsell and
// upsell-engine command trees, and writes the OpenAPI document of the engine.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/donaldgifford/rental-upsell/api/openapi"
	enginecmd "github.com/donaldgifford/rental-upsell/cmd/upsell-engine/cmd"
	clientcmd "github.com/donaldgifford/rental-upsell/cmd/upsell/cmd"
)

func main() {
	output := flag.String("output", "docs/cli", "output directory for generated markdown")
	specOut := flag.String("openapi", "docs/openapi", "output directory for the OpenAPI document")
	flag.Parse()

	for name, root := range map[string]*cobra.Command{
		"upsell":        clientcmd.Root(),
		"upsell-engine": enginecmd.Root(),
	} {
		if err := genMarkdown(root, filepath.Join(*output, name)); err != nil {
			log.Fatalf("generating %s docs: %v", name, err)
		}
	}
	fmt.Printf("CLI docs generated in %s/\n", *output)

	if err := writeSpec(*specOut); err != nil {
		log.Fatalf("writing openapi: %v", err)
	}
	fmt.Printf("OpenAPI document written to %s/\n", *specOut)
}

func genMarkdown(root *cobra.Command, dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	root.DisableAutoGenTag = true
	return doc.GenMarkdownTree(root, dir)
}

func writeSpec(dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	api := humaecho.New(echo.New(), huma.DefaultConfig("Rental Upsell Engine API", enginecmd.Version))
	enginecmd.RegisterAPI(api)

	for _, format := range []string{"json", "yaml"} {
		data, err := openapi.Render(api, format)
		if err != nil {
			return err
		}
		path := filepath.Join(dir, "openapi."+format)
		if err := os.WriteFile(path, data, 0o600); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}
