package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-cardkit/cardkit/pkg/component"
	"github.com/go-cardkit/cardkit/pkg/content"
	"github.com/go-cardkit/cardkit/pkg/templates"
)

var renderCmd = &Command{
	Name:  "render",
	Short: "Convert a YAML card description and print the component tree",
	Usage: "cardpreview render -template <small|large|image-only> -file <card.yaml> [-height N]",
	Run:   runRender,
}

func runRender(args []string) error {
	flags := flag.NewFlagSet("render", flag.ContinueOnError)
	template := flags.String("template", "small", "card template: small, large, or image-only")
	file := flags.String("file", "", "path to the YAML card description")
	height := flags.Float64("height", 0, "optional max card height")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *file == "" {
		return fmt.Errorf("render: -file is required")
	}

	card, err := loadCard(*file)
	if err != nil {
		return err
	}

	opts := templates.Options{MaxHeight: *height}

	var tree *component.Component
	switch *template {
	case "small":
		tree = templates.SmallImage(card, opts)
	case "large":
		tree = templates.LargeImage(card, opts)
	case "image-only":
		tree = templates.ImageOnly(card, opts)
	default:
		return fmt.Errorf("render: unknown template %q", *template)
	}

	fmt.Print(component.Dump(tree))
	return nil
}

func loadCard(path string) (*content.CardContent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read card description: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse card description: %w", err)
	}

	return content.Decode(raw)
}
