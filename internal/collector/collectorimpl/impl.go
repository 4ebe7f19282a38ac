package collectorimpl

import (
	"github.com/brandbrain/metrics-pipeline/internal/collector"
	"github.com/brandbrain/metrics-pipeline/internal/platform"
	"github.com/brandbrain/metrics-pipeline/internal/ratelimit"
	"github.com/brandbrain/metrics-pipeline/internal/repositories/organization"
	"github.com/brandbrain/metrics-pipeline/internal/repositories/post"
	"github.com/brandbrain/metrics-pipeline/internal/repositories/snapshot"
	"github.com/brandbrain/metrics-pipeline/pkg/config"
	"github.com/brandbrain/metrics-pipeline/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Registry     platform.Registry
	Pacer        ratelimit.Pacer
	OrgRepo      organization.Repository
	PostRepo     post.Repository
	SnapshotRepo snapshot.Repository
	Logger       logger.Logger
	Config       *config.Config
}

type CollectorImpl struct {
	Registry     platform.Registry
	Pacer        ratelimit.Pacer
	OrgRepo      organization.Repository
	PostRepo     post.Repository
	SnapshotRepo snapshot.Repository
	Logger       logger.Logger
	Config       *config.Config
}

func New(opts Opts) *CollectorImpl {
	return &CollectorImpl{
		Registry:     opts.Registry,
		Pacer:        opts.Pacer,
		OrgRepo:      opts.OrgRepo,
		PostRepo:     opts.PostRepo,
		SnapshotRepo: opts.SnapshotRepo,
		Logger:       opts.Logger.WithComponent("Collector"),
		Config:       opts.Config,
	}
}

var _ collector.Client = (*CollectorImpl)(nil)
