package main

import (
	"github.com/spf13/cobra"

	"github.com/vango-dev/commonui/pkg/publish"
	"github.com/vango-dev/commonui/pkg/styles"
)

func exportCmd(load configLoader) *cobra.Command {
	var (
		bucket   string
		prefix   string
		region   string
		platform string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Publish the gallery to S3",
		Long: `Render the gallery for each platform and upload it to S3 as
<prefix>index-<platform>.html.

Credentials are read from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and
AWS_SESSION_TOKEN.

Examples:
  commonui export --bucket ui-gallery
  commonui export --bucket ui-gallery --prefix review/ --platform mobile`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			if bucket != "" {
				cfg.Export.Bucket = bucket
			}
			if prefix != "" {
				cfg.Export.Prefix = prefix
			}
			if region != "" {
				cfg.Export.Region = region
			}
			if err := cfg.ValidateExport(); err != nil {
				return err
			}

			platforms := styles.Platforms()
			if platform != "" {
				p, err := platformFor(platform, cfg)
				if err != nil {
					return err
				}
				platforms = []styles.Platform{p}
			}
			if cfg.Export.Region == "" {
				warn(cmd, "No region set, requests may fail")
			}

			pub := publish.New(publish.NewS3Client(cfg.Export.Region), cfg.Export.Bucket, cfg.Export.Prefix)
			objects, err := pub.Publish(cmd.Context(), platforms...)
			for _, obj := range objects {
				success(cmd, "Uploaded s3://%s/%s (%d bytes)", cfg.Export.Bucket, obj.Key, obj.Size)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "Destination bucket (default from commonui.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Object key prefix (default from commonui.json)")
	cmd.Flags().StringVarP(&region, "region", "r", "", "AWS region (default from commonui.json)")
	cmd.Flags().StringVarP(&platform, "platform", "p", "", "Only this platform (default all)")

	return cmd
}
