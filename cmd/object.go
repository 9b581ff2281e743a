package cmd

import (
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"

	"bucket-manager/feature/objects"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// objectCmd groups the object commands. All of them operate on the bucket
// from the storage configuration.
var objectCmd = &cobra.Command{
	Use:   "object",
	Short: "Manage objects in the configured bucket",
}

var objectPutCmd = &cobra.Command{
	Use:   "put [key] [file]",
	Short: "Upload a local file to the bucket",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg := loadRuntime()
		key, path := args[0], args[1]

		store, err := newStore(cmd.Context(), cfg)
		if err != nil {
			logg.Fatal("Failed to create object store", zap.Error(err))
		}

		f, err := os.Open(path)
		if err != nil {
			logg.Fatal("Failed to open file", zap.String("file", path), zap.Error(err))
		}
		defer f.Close()

		fi, err := f.Stat()
		if err != nil {
			logg.Fatal("Failed to stat file", zap.String("file", path), zap.Error(err))
		}

		contentType := mime.TypeByExtension(filepath.Ext(path))
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		info, err := store.Put(cmd.Context(), key, f, fi.Size(), contentType)
		if err != nil {
			logg.Fatal("Failed to upload object", zap.String("key", key), zap.Error(err))
		}

		fmt.Printf("Uploaded %s (%d bytes, etag %s)\n", key, info.Size, info.ETag)
	},
}

var objectGetCmd = &cobra.Command{
	Use:   "get [key] [file]",
	Short: "Download an object, to a file or stdout",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg := loadRuntime()
		key := args[0]

		store, err := newStore(cmd.Context(), cfg)
		if err != nil {
			logg.Fatal("Failed to create object store", zap.Error(err))
		}

		rc, _, err := store.Get(cmd.Context(), key)
		if err != nil {
			logg.Fatal("Failed to download object", zap.String("key", key), zap.Error(err))
		}
		defer rc.Close()

		var out io.Writer = os.Stdout
		if len(args) == 2 {
			f, err := os.Create(args[1])
			if err != nil {
				logg.Fatal("Failed to create file", zap.String("file", args[1]), zap.Error(err))
			}
			defer f.Close()
			out = f
		}

		if _, err := io.Copy(out, rc); err != nil {
			logg.Fatal("Failed to write object", zap.String("key", key), zap.Error(err))
		}
	},
}

var objectStatCmd = &cobra.Command{
	Use:   "stat [key]",
	Short: "Print an object's metadata",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg := loadRuntime()
		key := args[0]

		store, err := newStore(cmd.Context(), cfg)
		if err != nil {
			logg.Fatal("Failed to create object store", zap.Error(err))
		}

		info, err := store.Head(cmd.Context(), key)
		if err != nil {
			logg.Fatal("Failed to stat object", zap.String("key", key), zap.Error(err))
		}

		printObjectInfo(info)
	},
}

var objectRemoveCmd = &cobra.Command{
	Use:   "rm [key]",
	Short: "Delete an object",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg := loadRuntime()
		key := args[0]

		store, err := newStore(cmd.Context(), cfg)
		if err != nil {
			logg.Fatal("Failed to create object store", zap.Error(err))
		}

		if err := store.Remove(cmd.Context(), key); err != nil {
			logg.Fatal("Failed to remove object", zap.String("key", key), zap.Error(err))
		}
		fmt.Printf("Removed %s\n", key)
	},
}

var objectCopyCmd = &cobra.Command{
	Use:   "cp [source] [target]",
	Short: "Copy an object within the bucket",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg := loadRuntime()
		source, target := args[0], args[1]

		store, err := newStore(cmd.Context(), cfg)
		if err != nil {
			logg.Fatal("Failed to create object store", zap.Error(err))
		}

		if err := store.Copy(cmd.Context(), source, target); err != nil {
			logg.Fatal("Failed to copy object",
				zap.String("source", source), zap.String("target", target), zap.Error(err))
		}
		fmt.Printf("Copied %s -> %s\n", source, target)
	},
}

var objectExistsCmd = &cobra.Command{
	Use:   "exists [key]",
	Short: "Check whether an object exists",
	Long:  `Prints the result and exits non-zero when the object is absent or unreachable.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg := loadRuntime()
		key := args[0]

		store, err := newStore(cmd.Context(), cfg)
		if err != nil {
			logg.Fatal("Failed to create object store", zap.Error(err))
		}

		if !store.Has(cmd.Context(), key) {
			fmt.Printf("Object %q does not exist\n", key)
			os.Exit(1)
		}
		fmt.Printf("Object %q exists\n", key)
	},
}

func printObjectInfo(info objects.ObjectInfo) {
	fmt.Println("--- Object ---")
	fmt.Printf("Key:           %s\n", info.Key)
	fmt.Printf("Size:          %d\n", info.Size)
	fmt.Printf("ETag:          %s\n", info.ETag)
	fmt.Printf("Content-Type:  %s\n", info.ContentType)
	if !info.LastModified.IsZero() {
		fmt.Printf("Last-Modified: %s\n", info.LastModified.Format("2006-01-02 15:04:05 MST"))
	}
	fmt.Println("--------------")
}

func init() {
	objectCmd.AddCommand(objectPutCmd, objectGetCmd, objectStatCmd,
		objectRemoveCmd, objectCopyCmd, objectExistsCmd)
	RootCmd.AddCommand(objectCmd)
}
