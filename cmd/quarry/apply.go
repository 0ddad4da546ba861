package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/quarryos/quarry/pkg/configdb"
	"github.com/quarryos/quarry/pkg/device"
	"github.com/quarryos/quarry/pkg/types"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply a configuration file",
	Long: `Apply a quarry configuration from a YAML file.

Examples:
  # Apply a storage pool definition
  quarry apply -f pool.yaml

  # Apply a mount entry
  quarry apply -f mount.yaml`,
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringP("file", "f", "", "YAML file to apply (required)")
	_ = applyCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(applyCmd)
}

// QuarryResource represents a generic quarry resource
type QuarryResource struct {
	APIVersion string                 `yaml:"apiVersion"`
	Kind       string                 `yaml:"kind"`
	Metadata   ResourceMetadata       `yaml:"metadata"`
	Spec       map[string]interface{} `yaml:"spec"`
}

type ResourceMetadata struct {
	Name   string            `yaml:"name"`
	Labels map[string]string `yaml:"labels,omitempty"`
}

func runApply(cmd *cobra.Command, args []string) error {
	filename, _ := cmd.Flags().GetString("file")

	// Read YAML file
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file: %v", err)
	}

	// Parse YAML
	var resource QuarryResource
	if err := yaml.Unmarshal(data, &resource); err != nil {
		return fmt.Errorf("failed to parse YAML: %v", err)
	}

	db, engine, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer engine.Close()

	// Apply resource based on kind
	switch resource.Kind {
	case "StoragePool":
		return applyPool(db, &resource)
	case "MountEntry":
		return applyMount(db, &resource)
	default:
		return fmt.Errorf("unsupported resource kind: %s", resource.Kind)
	}
}

func applyPool(db *configdb.DB, resource *QuarryResource) error {
	name := resource.Metadata.Name
	devPath := getString(resource.Spec, "device", "")

	if devPath == "" {
		return fmt.Errorf("pool device is required")
	}

	resolver := device.NewResolver(device.NewUdevRunProvider(""))
	d := device.New(devPath, resolver)
	if err := d.AssertExists(); err != nil {
		return err
	}

	ref, ok := d.DeviceFileByID()
	if !ok {
		var err error
		ref, err = d.CanonicalDeviceFile()
		if err != nil {
			return err
		}
	}

	pool := types.StoragePool{
		ID:        uuid.New().String(),
		Name:      name,
		Device:    ref,
		CreatedAt: time.Now(),
	}
	if err := db.Replace(types.PoolPath(name), &pool); err != nil {
		return fmt.Errorf("failed to apply pool: %w", err)
	}

	fmt.Printf("✓ Pool %s applied (%s)\n", name, ref)
	return nil
}

func applyMount(db *configdb.DB, resource *QuarryResource) error {
	dir := getString(resource.Spec, "dir", "")
	if dir == "" {
		return fmt.Errorf("mount dir is required")
	}

	mount := types.MountEntry{
		Device:  getString(resource.Spec, "device", ""),
		Dir:     dir,
		Type:    getString(resource.Spec, "type", "auto"),
		Options: getStringSlice(resource.Spec, "options"),
	}
	if err := db.Replace(types.MountPath(dir), &mount); err != nil {
		return fmt.Errorf("failed to apply mount: %w", err)
	}

	fmt.Printf("✓ Mount %s applied\n", dir)
	return nil
}

func getString(spec map[string]interface{}, key, fallback string) string {
	if v, ok := spec[key].(string); ok {
		return v
	}
	return fallback
}

func getStringSlice(spec map[string]interface{}, key string) []string {
	raw, ok := spec[key].([]interface{})
	if !ok {
		return nil
	}
	var out []string
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
