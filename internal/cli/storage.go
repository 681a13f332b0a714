package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/vladislavprovich/nft-api-sdk/pkg/client/ipfs"
)

func (a *app) uploadFileCommand() *cobra.Command {
	var filename string
	cmd := &cobra.Command{
		Use:   "upload-file <path>",
		Short: "Upload a file to IPFS",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer f.Close()

			if filename == "" {
				filename = filepath.Base(args[0])
			}
			req := &ipfs.UploadFileRequest{Filename: filename, File: f}
			return a.run(cmd, func(ctx context.Context) (json.RawMessage, error) {
				return a.api.UploadFile(ctx, req)
			})
		},
	}
	cmd.Flags().StringVar(&filename, "name", "", "file name to store (default: base name of path)")
	return cmd
}

func (a *app) uploadMetadataCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "upload-metadata <file.json|file.yaml>",
		Short: "Upload token metadata to IPFS",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			metadata, err := readMetadata(args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context) (json.RawMessage, error) {
				return a.api.UploadMetadata(ctx, metadata)
			})
		},
	}
}

// readMetadata returns the file as JSON. YAML files are converted.
func readMetadata(path string) (json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.YAMLToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("yaml to json failed: %w", err)
		}
	default:
		if !json.Valid(data) {
			return nil, fmt.Errorf("%s is not valid JSON", path)
		}
	}

	return data, nil
}
