// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// BucketOptions captures the bucket selection flag.
type BucketOptions struct {
	Bucket string
}

func AddBucketArgs(cmd *cobra.Command, o *BucketOptions) {
	cmd.Flags().StringVarP(&o.Bucket, "bucket", "b", "",
		"Specify the bucket by name or id.")
}
