package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/quarryos/quarry/pkg/device"
	"github.com/quarryos/quarry/pkg/log"
	"github.com/quarryos/quarry/pkg/types"
)

var poolCmd = &cobra.Command{
	Use:   "pool",
	Short: "Manage storage pools",
}

var poolCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a storage pool on a block device",
	Long: `Create a storage pool bound to a block device.

The device reference persisted in the configuration store is the preferred
by-id alias when the device has one, so the pool keeps pointing at the same
disk when kernel device names move around after a reboot.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		devPath, _ := cmd.Flags().GetString("device")

		resolver := device.NewResolver(device.NewUdevRunProvider(""))
		d := device.New(devPath, resolver)
		if err := d.AssertExists(); err != nil {
			return err
		}

		// Persist the stable alias; fall back to the canonical node for
		// devices that expose none.
		ref, ok := d.DeviceFileByID()
		if !ok {
			logger := log.WithDevice(devPath)
			logger.Warn().Msg("device has no by-id alias, storing kernel path")
			var err error
			ref, err = d.CanonicalDeviceFile()
			if err != nil {
				return err
			}
		}

		db, engine, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer engine.Close()

		pool := types.StoragePool{
			ID:        uuid.New().String(),
			Name:      name,
			Device:    ref,
			CreatedAt: time.Now(),
		}
		if err := db.Set(types.PoolPath(name), &pool); err != nil {
			return fmt.Errorf("failed to create pool: %w", err)
		}

		fmt.Printf("✓ Pool %s created on %s\n", name, ref)
		return nil
	},
}

var poolListCmd = &cobra.Command{
	Use:   "list",
	Short: "List storage pools",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, engine, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer engine.Close()

		docs, err := db.List(types.PoolPathPrefix)
		if err != nil {
			return err
		}

		fmt.Printf("%-16s %-38s %s\n", "NAME", "ID", "DEVICE")
		for _, doc := range docs {
			var pool types.StoragePool
			if err := json.Unmarshal(doc, &pool); err != nil {
				continue
			}
			fmt.Printf("%-16s %-38s %s\n", pool.Name, pool.ID, pool.Device)
		}

		return nil
	},
}

func init() {
	poolCreateCmd.Flags().String("name", "", "Pool name (required)")
	poolCreateCmd.Flags().String("device", "", "Block device path (required)")
	_ = poolCreateCmd.MarkFlagRequired("name")
	_ = poolCreateCmd.MarkFlagRequired("device")

	poolCmd.AddCommand(poolCreateCmd)
	poolCmd.AddCommand(poolListCmd)
}
