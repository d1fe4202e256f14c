package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/calebjsmith7/cue/pkg/commands/options"
	"github.com/calebjsmith7/cue/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show the cue, or list tasks, buckets, and tags",
		Example: `
cue get
cue get tasks --bucket Home
cue get buckets
cue get tags
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			s := get.Get{
				Service: svc,
				Kind:    get.KindCue,
				ShowID:  io.ShowID,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddShowIDArgs(cmd, io)

	addGetTasks(cmd)
	addGetBuckets(cmd)
	addGetTags(cmd)

	topLevel.AddCommand(cmd)
}

func addGetTasks(topLevel *cobra.Command) {
	bo := &options.BucketOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"task"},
		Short:   "List tasks by bucket, in stored order",
		RunE: func(_ *cobra.Command, _ []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			s := get.Get{
				Service:   svc,
				Kind:      get.KindTasks,
				BucketRef: bo.Bucket,
				ShowID:    io.ShowID,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddBucketArgs(cmd, bo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addGetBuckets(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "buckets",
		Aliases: []string{"bucket"},
		Short:   "List buckets",
		RunE: func(_ *cobra.Command, _ []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			s := get.Get{Service: svc, Kind: get.KindBuckets}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}

func addGetTags(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "tags",
		Aliases: []string{"tag"},
		Short:   "List tags and their urgencies",
		RunE: func(_ *cobra.Command, _ []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			s := get.Get{Service: svc, Kind: get.KindTags}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
