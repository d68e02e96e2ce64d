package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/bridges/pkg/cache"
	"github.com/matzehuels/bridges/pkg/observability"
	"github.com/matzehuels/bridges/pkg/transport"
)

// apiKeyEnv is read when neither --api-key nor the config sets a key.
const apiKeyEnv = "BRIDGES_API_KEY"

type pushOpts struct {
	docOpts
	server     string
	assignment int
	user       string
	apiKey     string
	timeout    time.Duration
	force      bool
	noCache    bool
}

func (c *CLI) pushCommand() *cobra.Command {
	var opts pushOpts

	cmd := &cobra.Command{
		Use:   "push <input>",
		Short: "Render a .json or .dot file and post it to a BRIDGES server",
		Long: `Push renders the input like "render" and posts the document to
<server>/assignments/<assignment>. Uploads of a payload already accepted for
the same assignment are skipped unless --force is given.

The server may be a preset (live, clone, local) or a full URL.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.resolve(cmd, c)
			return c.runPush(cmd, args[0], &opts)
		},
	}

	addDocFlags(cmd, &opts.docOpts)
	cmd.Flags().StringVarP(&opts.server, "server", "s", "", "server preset or URL (default from config, else live)")
	cmd.Flags().IntVarP(&opts.assignment, "assignment", "a", 0, "assignment number")
	cmd.Flags().StringVarP(&opts.user, "user", "u", "", "BRIDGES user name")
	cmd.Flags().StringVar(&opts.apiKey, "api-key", "", "API key (default $"+apiKeyEnv+")")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "request timeout")
	cmd.Flags().BoolVar(&opts.force, "force", false, "upload even if the payload was already delivered")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "neither read nor record delivered payloads")

	return cmd
}

// resolve fills unset server flags from the config and environment.
func (o *pushOpts) resolve(cmd *cobra.Command, c *CLI) {
	s := c.cfg.Server
	if !cmd.Flags().Changed("server") {
		o.server = s.URL
	}
	if !cmd.Flags().Changed("assignment") {
		o.assignment = s.Assignment
	}
	if !cmd.Flags().Changed("user") {
		o.user = s.User
	}
	if !cmd.Flags().Changed("api-key") {
		o.apiKey = s.APIKey
	}
	if o.apiKey == "" {
		o.apiKey = os.Getenv(apiKeyEnv)
	}
	if !cmd.Flags().Changed("timeout") {
		o.timeout = s.Timeout
	}
}

func (c *CLI) runPush(cmd *cobra.Command, input string, opts *pushOpts) error {
	ctx := cmd.Context()

	b, g, err := c.buildDocument(cmd, input, &opts.docOpts)
	if err != nil {
		return err
	}
	payload, err := b.Marshal()
	observability.Document().OnSerialize(ctx, g.DataStructureType(), len(payload), err)
	if err != nil {
		return err
	}

	conn, err := transport.New(transport.Options{
		Server:     opts.server,
		Assignment: opts.assignment,
		User:       opts.user,
		APIKey:     opts.apiKey,
		Timeout:    opts.timeout,
		Logger:     c.Logger,
	})
	if err != nil {
		return err
	}

	store, err := c.openCache(cmd, opts.noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	id := conn.AssignmentID()
	key := cache.DocumentKey(conn.Server(), id, payload)

	if !opts.force {
		if url, ok := c.delivered(ctx, store, key); ok {
			printSuccess(c.out, "Assignment %s is up to date", id)
			printStats(c.out, g.Len(), g.EdgeCount(), true)
			printLink(c.out, url)
			return nil
		}
	}

	prog := newProgress(c.Logger)
	url, err := conn.Submit(ctx, payload)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Posted %s", id))

	if err := store.Set(ctx, key, []byte(url), c.cfg.Cache.TTL); err != nil {
		c.Logger.Warn("could not record delivery", "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, key, len(url))
	}

	printSuccess(c.out, "Delivered assignment %s", id)
	printStats(c.out, g.Len(), g.EdgeCount(), false)
	printLink(c.out, url)
	return nil
}

// delivered looks key up in store. Cache failures are logged and treated as
// misses.
func (c *CLI) delivered(ctx context.Context, store cache.Cache, key string) (string, bool) {
	data, hit, err := store.Get(ctx, key)
	if err != nil {
		c.Logger.Warn("cache lookup failed", "error", err)
		return "", false
	}
	if hit {
		observability.Cache().OnCacheHit(ctx, key)
	} else {
		observability.Cache().OnCacheMiss(ctx, key)
	}
	return string(data), hit
}
