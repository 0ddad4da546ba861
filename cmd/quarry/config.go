package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Operate on the configuration store",
}

var configGetCmd = &cobra.Command{
	Use:   "get <path>",
	Short: "Print the object at a configuration path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, engine, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer engine.Close()

		var obj any
		if err := db.Get(args[0], &obj); err != nil {
			return err
		}

		out, err := json.MarshalIndent(obj, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <path> <json>",
	Short: "Store a new object at a configuration path",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigMutation("set"),
}

var configReplaceCmd = &cobra.Command{
	Use:   "replace <path> <json>",
	Short: "Store an object at a configuration path, overwriting any existing one",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigMutation("replace"),
}

var configUpdateCmd = &cobra.Command{
	Use:   "update <path> <json>",
	Short: "Overwrite the existing object at a configuration path",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigMutation("update"),
}

var configDeleteCmd = &cobra.Command{
	Use:   "delete <path>",
	Short: "Remove the object at a configuration path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, engine, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer engine.Close()

		if err := db.Delete(args[0]); err != nil {
			return err
		}
		fmt.Printf("✓ Deleted %s\n", args[0])
		return nil
	},
}

func runConfigMutation(op string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		path, doc := args[0], args[1]

		var obj any
		if err := json.Unmarshal([]byte(doc), &obj); err != nil {
			return fmt.Errorf("invalid JSON document: %w", err)
		}

		db, engine, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer engine.Close()

		switch op {
		case "set":
			err = db.Set(path, obj)
		case "replace":
			err = db.Replace(path, obj)
		case "update":
			err = db.Update(path, obj)
		}
		if err != nil {
			return err
		}

		fmt.Printf("✓ Stored %s\n", path)
		return nil
	}
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configReplaceCmd)
	configCmd.AddCommand(configUpdateCmd)
	configCmd.AddCommand(configDeleteCmd)
}
