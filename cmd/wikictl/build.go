package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MrFadiAi/vibe-wiki-sub003/internal/build"
)

var buildForce bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Ingest content and emit the static API artifacts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cfg.Build.Force = buildForce

		log, err := newLogger()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		b := &build.Builder{Cfg: cfg, Log: log}
		res, err := b.Run(cmd.Context())
		if err != nil {
			return err
		}
		if res.Skipped {
			log.Info("nothing to do")
			return nil
		}
		log.Info("done",
			zap.Int("articles", res.Articles),
			zap.Int("routes", res.Routes),
			zap.Int("warnings", len(res.Warnings)))
		return nil
	},
}

func init() {
	buildCmd.Flags().BoolVar(&buildForce, "force", false, "rebuild even when content is unchanged")
}
