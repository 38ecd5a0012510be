package main

import (
	"github.com/spf13/cobra"

	"github.com/kartikbazzad/gdnsh/cmd/gdnsh/commands"
	"github.com/kartikbazzad/gdnsh/cmd/gdnsh/parser"
	"github.com/kartikbazzad/gdnsh/internal/errors"
)

func newDocCmd(opts *options) *cobra.Command {
	docCmd := &cobra.Command{
		Use:   "doc",
		Short: "Manage document collections",
	}

	createCmd := &cobra.Command{
		Use:   "create-collection <name>",
		Short: "Create a document collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			result, err := commands.CreateDocumentCollection(cmd.Context(), a.clients.Collections, args[0])
			if err != nil {
				return err
			}
			result.Print(cmd.OutOrStdout())
			return nil
		},
	}

	insertCmd := &cobra.Command{
		Use:   "insert <collection> <json>",
		Short: "Insert one JSON document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			document, err := parser.DecodeDocument(args[1])
			if err != nil {
				return errors.Config("add document to collection", err)
			}
			a, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			result, err := commands.AddDocumentToCollection(cmd.Context(), a.clients.Documents, args[0], document)
			if err != nil {
				return err
			}
			result.Print(cmd.OutOrStdout())
			return nil
		},
	}

	docCmd.AddCommand(createCmd, insertCmd)
	return docCmd
}
