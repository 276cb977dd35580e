package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"docuagent/internal/model"
)

func (c *cli) settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Read or replace application settings",
	}

	get := &cobra.Command{
		Use:   "get",
		Short: "Print the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()
			s, err := c.settings.Get(ctx)
			if err != nil {
				return err
			}
			return c.printer.print(s)
		},
	}

	var file string
	set := &cobra.Command{
		Use:   "set --file settings.yaml",
		Short: "Replace all settings with the contents of a YAML or JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readSettingsFile(file)
			if err != nil {
				return err
			}
			ctx, cancel := c.context(cmd)
			defer cancel()
			stored, err := c.settings.Replace(ctx, s)
			if err != nil {
				return err
			}
			return c.printer.print(stored)
		},
	}
	set.Flags().StringVarP(&file, "file", "f", "", "Settings file (YAML or JSON)")
	_ = set.MarkFlagRequired("file")

	cmd.AddCommand(get, set)
	return cmd
}

// readSettingsFile parses YAML (and therefore JSON) into a settings bag.
func readSettingsFile(path string) (model.Settings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("parse %s: expected a mapping of settings", path)
	}

	// Round-trip through JSON so values take the backend's wire shape.
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", path, err)
	}
	var s model.Settings
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return s, nil
}
