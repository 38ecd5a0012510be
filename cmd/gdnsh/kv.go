package main

import (
	"github.com/spf13/cobra"

	"github.com/kartikbazzad/gdnsh/cmd/gdnsh/commands"
	"github.com/kartikbazzad/gdnsh/pkg/gdn"
)

func newKVCmd(opts *options) *cobra.Command {
	kvCmd := &cobra.Command{
		Use:   "kv",
		Short: "Manage key-value collections",
	}

	var configJSON string
	createCmd := &cobra.Command{
		Use:   "create <collection>",
		Short: "Create a key-value collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			result, err := commands.CreateKeyValueCollection(cmd.Context(), a.clients.KeyValue, args[0], configJSON)
			if err != nil {
				return err
			}
			result.Print(cmd.OutOrStdout())
			return nil
		},
	}
	createCmd.Flags().StringVar(&configJSON, "config", commands.DefaultKeyValueCollectionConfig, "collection configuration as JSON")

	var expireAt int64
	setCmd := &cobra.Command{
		Use:   "set <collection> <key> <value>",
		Short: "Write one key-value pair",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			records := []gdn.KeyValuePair{gdn.NewStringPair(args[1], args[2], expireAt)}
			result, err := commands.AddDataToCollection(cmd.Context(), a.clients.KeyValue, args[0], records)
			if err != nil {
				return err
			}
			result.Print(cmd.OutOrStdout())
			return nil
		},
	}
	setCmd.Flags().Int64Var(&expireAt, "expire-at", gdn.NoExpiration, "expiration as a unix timestamp; -1 never expires")

	getCmd := &cobra.Command{
		Use:   "get <collection> <key>",
		Short: "Read one key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			result, err := commands.GetDataFromCollection(cmd.Context(), a.clients.KeyValue, args[0], args[1])
			if err != nil {
				return err
			}
			result.Print(cmd.OutOrStdout())
			return nil
		},
	}

	kvCmd.AddCommand(createCmd, setCmd, getCmd)
	return kvCmd
}
