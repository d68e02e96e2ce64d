package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/bridges/pkg/cache"
	"github.com/matzehuels/bridges/pkg/config"
)

func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the record of delivered documents",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget every delivered document so the next push uploads again",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openCache(cmd, false)
			if err != nil {
				return err
			}
			defer store.Close()

			clearer, ok := store.(cache.Clearer)
			if !ok {
				printInfo(c.out, "Cache is disabled")
				return nil
			}
			if err := clearer.Clear(cmd.Context()); err != nil {
				return err
			}

			printSuccess(c.out, "Cleared %s cache", c.cfg.Cache.Backend)
			if fc, ok := store.(*cache.FileCache); ok {
				printDetail(c.out, "Directory: %s", fc.Dir())
			}
			return nil
		},
	}
}

func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where delivered documents are recorded",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch c.cfg.Cache.Backend {
			case config.BackendRedis:
				fmt.Fprintln(c.out, "redis://"+c.cfg.Cache.RedisAddr)
			case config.BackendNone:
				printWarning(c.out, "Cache is disabled")
			default:
				dir, err := c.cacheDir()
				if err != nil {
					return fmt.Errorf("get cache dir: %w", err)
				}
				fmt.Fprintln(c.out, dir)
			}
			return nil
		},
	}
}
