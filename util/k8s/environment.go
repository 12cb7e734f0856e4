package k8s

import (
	"errors"
	"strings"

	"github.com/sololabs/demos2/util/common"
	"github.com/sololabs/demos2/util/setup"
)

type K8sEnvironment interface {
	StartCluster() error
	StopCluster() error
	DeleteCluster() error
	ClusterExists() (bool, error)
}

func GetEnvironment(cfg *setup.Configuration) (K8sEnvironment, error) {
	switch strings.ToLower(cfg.K8s.Tool) {
	case common.ToolKind:
		return NewKindEnv(cfg)
	case common.ToolMinikube:
		return NewMinikubeEnv(cfg)
	case common.ToolK3d:
		return NewK3dEnv(cfg)
	case common.ToolMinishift:
		return NewMinishiftEnv(cfg)
	case common.ToolGcloud:
		return NewGkeEnv(cfg)
	case common.ToolEksctl:
		return NewEksEnv(cfg)
	default:
		return nil, errors.New("unknown provisioning tool " + cfg.K8s.Tool)
	}
}
