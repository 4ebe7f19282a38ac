package learningimpl

import (
	"github.com/brandbrain/metrics-pipeline/internal/aggregator"
	"github.com/brandbrain/metrics-pipeline/internal/learning"
	"github.com/brandbrain/metrics-pipeline/internal/llm"
	learningrepo "github.com/brandbrain/metrics-pipeline/internal/repositories/learning"
	"github.com/brandbrain/metrics-pipeline/internal/repositories/organization"
	"github.com/brandbrain/metrics-pipeline/internal/repositories/snapshot"
	"github.com/brandbrain/metrics-pipeline/pkg/config"
	"github.com/brandbrain/metrics-pipeline/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	LLM          llm.Client
	Aggregator   aggregator.Client
	OrgRepo      organization.Repository
	SnapshotRepo snapshot.Repository
	LearningRepo learningrepo.Repository
	Logger       logger.Logger
	Config       *config.Config
}

type GeneratorImpl struct {
	LLM          llm.Client
	Aggregator   aggregator.Client
	OrgRepo      organization.Repository
	SnapshotRepo snapshot.Repository
	LearningRepo learningrepo.Repository
	Dedup        DuplicateChecker
	Logger       logger.Logger
	Config       *config.Config
}

func New(opts Opts) *GeneratorImpl {
	return &GeneratorImpl{
		LLM:          opts.LLM,
		Aggregator:   opts.Aggregator,
		OrgRepo:      opts.OrgRepo,
		SnapshotRepo: opts.SnapshotRepo,
		LearningRepo: opts.LearningRepo,
		Dedup:        NewPrefixChecker(),
		Logger:       opts.Logger.WithComponent("LearningGenerator"),
		Config:       opts.Config,
	}
}

var _ learning.Client = (*GeneratorImpl)(nil)
