package main

import (
	"fmt"

	"github.com/jaypipes/ghw"
	"github.com/spf13/cobra"

	"github.com/quarryos/quarry/pkg/device"
)

var deviceCmd = &cobra.Command{
	Use:   "device",
	Short: "Inspect block devices",
}

var deviceInspectCmd = &cobra.Command{
	Use:   "inspect <path>",
	Short: "Show the identity and geometry of a block device",
	Long: `Show the resolved identity of a block device.

The path may be a kernel device node (/dev/sda) or a by-id alias
(/dev/disk/by-id/ata-...). The output includes the canonical kernel path,
the preferred by-id alias, the major:minor device numbers, and, unless
--no-probe is given, the device geometry.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver := device.NewResolver(device.NewUdevRunProvider(""))
		d := device.New(args[0], resolver)

		if err := d.AssertExists(); err != nil {
			return err
		}

		fmt.Println(d.Description())

		canonical, err := d.CanonicalDeviceFile()
		if err != nil {
			return err
		}
		fmt.Printf("  Canonical: %s\n", canonical)

		if byID, ok := d.DeviceFileByID(); ok {
			fmt.Printf("  By-id:     %s\n", byID)
		} else {
			fmt.Printf("  By-id:     (none)\n")
		}

		if major, minor, err := d.DeviceNumber(); err == nil {
			fmt.Printf("  Number:    %d:%d\n", major, minor)
		}

		noProbe, _ := cmd.Flags().GetBool("no-probe")
		if !noProbe {
			if err := d.ProbeGeometry(device.UnixProber{}); err != nil {
				return fmt.Errorf("failed to probe geometry: %w", err)
			}
			size, _ := d.Size()
			blockSize, _ := d.BlockSize()
			sectorSize, _ := d.SectorSize()
			fmt.Printf("  Size:      %d bytes\n", size)
			fmt.Printf("  Block:     %d bytes\n", blockSize)
			fmt.Printf("  Sector:    %d bytes\n", sectorSize)
		}

		return nil
	},
}

var deviceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List disks on this host",
	RunE: func(cmd *cobra.Command, args []string) error {
		blockInfo, err := ghw.Block()
		if err != nil {
			return fmt.Errorf("failed to enumerate block devices: %w", err)
		}

		fmt.Printf("%-12s %-14s %-24s %-20s %s\n", "NAME", "SIZE", "MODEL", "SERIAL", "WWN")
		for _, disk := range blockInfo.Disks {
			fmt.Printf("%-12s %-14d %-24s %-20s %s\n",
				disk.Name, disk.SizeBytes, disk.Model, disk.SerialNumber, disk.WWN)
		}

		return nil
	},
}

func init() {
	deviceInspectCmd.Flags().Bool("no-probe", false, "Skip the geometry ioctls")

	deviceCmd.AddCommand(deviceInspectCmd)
	deviceCmd.AddCommand(deviceListCmd)
}
