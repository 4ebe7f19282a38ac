package fx

import (
	"github.com/brandbrain/metrics-pipeline/internal/repositories/learning"
	"github.com/brandbrain/metrics-pipeline/internal/repositories/organization"
	"github.com/brandbrain/metrics-pipeline/internal/repositories/post"
	"github.com/brandbrain/metrics-pipeline/internal/repositories/snapshot"
	"go.uber.org/fx"
)

var Module = fx.Options(
	organization.Module,
	post.Module,
	snapshot.Module,
	learning.Module,
)
