package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/chris-lally/lally/internal/catalog"
	"github.com/chris-lally/lally/internal/config"
	"github.com/chris-lally/lally/internal/export"
	"github.com/chris-lally/lally/internal/publish"
	"github.com/chris-lally/lally/internal/serve"
)

func registryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registry [command]",
		Short: "Work with the registry as a publisher",
		Long: `Work with the registry as a publisher.

Commands:
  export     Write registry JSON documents to a directory
  serve      Serve the registry over HTTP
  publish    Upload the registry documents to S3
  connect    Point a project at the hosted registry

Examples:
  lally registry export --out public/r
  lally registry serve --addr :4100 --templates ./templates --watch
  lally registry publish --bucket my-registry --prefix registry
  lally registry connect`,
	}

	cmd.AddCommand(
		registryExportCmd(),
		registryServeCmd(),
		registryPublishCmd(),
		registryConnectCmd(),
	)

	return cmd
}

func registryExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write registry JSON documents to a directory",
		Long: `Write the registry JSON documents to a directory.

One document per item plus the aggregate registry.json, written last
so a reader never sees a manifest referencing a missing item. The
documents follow the shadcn registry schema.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegistryExport(out)
		},
	}

	cmd.Flags().StringVar(&out, "out", "registry", "Output directory")

	return cmd
}

func runRegistryExport(out string) error {
	fmt.Println("  Exporting registry...")
	fmt.Println()

	result, err := export.New(catalog.Default()).Export(out)
	if err != nil {
		return err
	}

	for _, doc := range result.Items {
		success("Wrote %s/%s.json", out, doc.Name)
	}
	success("Wrote %s/%s", out, export.ManifestFileName)

	fmt.Println()
	info("%d items exported", len(result.Items))
	fmt.Println()

	return nil
}

func registryServeCmd() *cobra.Command {
	var opts serve.Options
	var metricsNamespace string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the registry over HTTP",
		Long: `Serve the registry documents over HTTP.

Routes:
  GET /registry.json    Aggregate registry manifest
  GET /r/{name}.json    Per-item document
  GET /healthz          Health check
  GET /metrics          Prometheus metrics
  GET /__reload         Websocket reload notifications

With --templates and --watch, changes to the template directory
rebuild the documents and notify connected reload clients.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegistryServe(opts, metricsNamespace)
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", serve.DefaultAddr, "Listen address")
	cmd.Flags().StringVar(&opts.TemplatesDir, "templates", "", "Serve templates from a directory instead of the embedded set")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Rebuild on template changes (requires --templates)")
	cmd.Flags().StringVar(&metricsNamespace, "metrics-namespace", "lally", "Prometheus metrics namespace")

	return cmd
}

func runRegistryServe(opts serve.Options, metricsNamespace string) error {
	server := serve.New(catalog.Default(), opts, serve.WithNamespace(metricsNamespace))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	fmt.Println()
	success("Registry listening on http://localhost%s", server.Addr())
	if opts.Watch && opts.TemplatesDir != "" {
		info("Watching %s for changes", opts.TemplatesDir)
	}
	fmt.Println()

	return server.Run(ctx)
}

func registryPublishCmd() *cobra.Command {
	var opts publish.Options

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload the registry documents to S3",
		Long: `Upload the registry documents to an S3 bucket.

Per-item documents go under <prefix>/r/, and the aggregate
registry.json is uploaded last. Credentials and region come from the
standard AWS configuration chain unless --region is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegistryPublish(opts)
		},
	}

	cmd.Flags().StringVar(&opts.Bucket, "bucket", "", "Destination S3 bucket (required)")
	cmd.Flags().StringVar(&opts.Prefix, "prefix", "", "Key prefix for uploaded documents")
	cmd.Flags().StringVar(&opts.Region, "region", "", "AWS region override")
	cmd.MarkFlagRequired("bucket")

	return cmd
}

func runRegistryPublish(opts publish.Options) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	fmt.Println("  Publishing registry...")
	fmt.Println()

	result, err := export.New(catalog.Default()).Build()
	if err != nil {
		return err
	}

	publisher, err := publish.NewFromDefaultConfig(ctx, opts)
	if err != nil {
		return err
	}

	keys, err := publisher.Publish(ctx, result)
	if err != nil {
		return err
	}

	for _, key := range keys {
		success("Uploaded s3://%s/%s", opts.Bucket, key)
	}

	fmt.Println()
	info("%d objects uploaded", len(keys))
	fmt.Println()

	return nil
}

func registryConnectCmd() *cobra.Command {
	var url string

	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Point a project at the hosted registry",
		Long: `Point the current project at the hosted registry.

Records the ` + config.RegistryNamespace + ` registry URL in components.json so
compatible tooling can fetch items by name. Other fields in the
configuration are preserved.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegistryConnect(url)
		},
	}

	cmd.Flags().StringVar(&url, "url", config.DefaultRegistryURL, "Registry item URL template")

	return cmd
}

func runRegistryConnect(url string) error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}

	cfg.SetRegistry(config.RegistryNamespace, url)
	if err := cfg.Save(); err != nil {
		return err
	}

	fmt.Println()
	success("Connected %s → %s", config.RegistryNamespace, url)
	fmt.Println()

	return nil
}
