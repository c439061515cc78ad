package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/jsxcache/internal/app"
)

func (c *CLI) newTransformCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transform [files or directories...]",
		Short: "Transform sources through the cache",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			noCache, _ := cmd.Flags().GetBool("no-cache")
			outDir, _ := cmd.Flags().GetString("out-dir")
			passthrough, _ := cmd.Flags().GetBool("passthrough")
			jobs, _ := cmd.Flags().GetInt("jobs")
			watch, _ := cmd.Flags().GetBool("watch")
			return c.app.Transform(cmd.Context(), args, app.RunOptions{
				NoCache:     noCache,
				OutDir:      outDir,
				Output:      cmd.OutOrStdout(),
				Passthrough: passthrough,
				Parallelism: jobs,
				ConfigPath:  configPath(cmd),
				Watch:       watch,
			})
		},
	}
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass the cache and always run the transformer")
	cmd.Flags().StringP("out-dir", "o", "", "Write outputs below this directory instead of stdout")
	cmd.Flags().Bool("passthrough", false, "Emit the original source for files that fail to transform")
	cmd.Flags().IntP("jobs", "j", 0, "Number of concurrent transforms (default: number of CPUs)")
	cmd.Flags().BoolP("watch", "w", false, "Re-transform sources when they change")
	return cmd
}

func (c *CLI) newLoadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load <module>",
		Short: "Resolve a module id and print its transformed source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			baseDir, _ := cmd.Flags().GetString("base-dir")
			noCache, _ := cmd.Flags().GetBool("no-cache")
			passthrough, _ := cmd.Flags().GetBool("passthrough")
			output, err := c.app.Load(cmd.Context(), args[0], app.LoadOptions{
				BaseDir:     baseDir,
				NoCache:     noCache,
				Passthrough: passthrough,
				ConfigPath:  configPath(cmd),
			})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write([]byte(output))
			return err
		},
	}
	cmd.Flags().StringP("base-dir", "b", "", "Directory the module id is resolved from (default: working directory)")
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass the cache and always run the transformer")
	cmd.Flags().Bool("passthrough", false, "Print the original source when the transform fails")
	return cmd
}
