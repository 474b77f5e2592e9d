package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shiroemons/go-prnglab/internal/lab/app"
	"github.com/shiroemons/go-prnglab/internal/lab/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "エラー: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "prnglab",
		Short:         "Pseudo-random generator lab: generators, state-recovery attacks and statistical tests",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.AddGlobalFlags(rootCmd.PersistentFlags())

	attackCmd := &cobra.Command{
		Use:   "attack",
		Short: "Recover the internal state of a generator from its outputs",
	}
	attackCmd.AddCommand(newLCGCmd(), newMTCmd())

	rootCmd.AddCommand(newDemoCmd(), attackCmd, newStatsCmd(), newVersionCmd())
	return rootCmd
}

// newApp は実行中のコマンドのフラグから設定を読み込み、Appを作成します
func newApp(cmd *cobra.Command) (*app.App, error) {
	cfg, err := config.Load(cmd.Flags(), viper.New())
	if err != nil {
		return nil, err
	}
	return app.New(cfg), nil
}

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print a few bytes from every generator and five Box-Muller normals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			_, err = a.RunDemo(cmd.Context())
			return err
		},
	}
	config.AddStatsFlags(cmd.Flags())
	return cmd
}

func newLCGCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lcg",
		Short: "Recover m, a and c of a linear congruential generator and predict its next outputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			_, err = a.RunLCGAttack(cmd.Context())
			return err
		},
	}
	config.AddLCGFlags(cmd.Flags())
	return cmd
}

func newMTCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mt",
		Short: "Clone an MT19937 generator from 624 consecutive outputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			_, err = a.RunMTAttack(cmd.Context())
			return err
		},
	}
	config.AddMTFlags(cmd.Flags())
	return cmd
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Run entropy, chi-squared, Kolmogorov-Smirnov and autocorrelation tests on each generator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			_, err = a.RunStats(cmd.Context())
			return err
		},
	}
	config.AddStatsFlags(cmd.Flags())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "prnglab version %s\n", config.Version)
		},
	}
}
