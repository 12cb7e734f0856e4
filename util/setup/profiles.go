package setup

import (
	"github.com/pkg/errors"
	"gopkg.in/ini.v1"

	"github.com/sololabs/demos2/util/common"
)

// cloud profiles live in an ini file, e.g.
//
//	[gke]
//	project = my-project
//	zone = europe-west1-b
//	machine-type = n1-standard-2
//	num-nodes = 3
//
//	[eks]
//	region = eu-west-1
//	node-type = t3.medium
//	nodes = 3
func loadCloudProfiles(cfg Configuration) (Configuration, error) {
	profiles, err := ini.Load(cfg.Cloud.Profiles)
	if err != nil {
		return cfg, errors.Wrapf(err, "cannot load cloud profiles from %s", cfg.Cloud.Profiles)
	}

	switch cfg.K8s.Tool {
	case common.ToolGcloud:
		return loadGkeProfile(cfg, profiles)
	case common.ToolEksctl:
		return loadEksProfile(cfg, profiles)
	default:
		return cfg, nil
	}
}

func loadGkeProfile(cfg Configuration, profiles *ini.File) (Configuration, error) {
	const GkeSection = "gke"
	section, err := profiles.GetSection(GkeSection)
	if err != nil {
		return cfg, errors.Wrapf(err, "no [%s] profile in %s", GkeSection, cfg.Cloud.Profiles)
	}

	cfg.Gke.Project = section.Key("project").String()
	cfg.Gke.Zone = section.Key("zone").String()
	cfg.Gke.MachineType = section.Key("machine-type").MustString(cfg.Gke.MachineType)
	cfg.Gke.NumNodes = section.Key("num-nodes").MustInt(cfg.Gke.NumNodes)

	if cfg.Gke.Project == "" || cfg.Gke.Zone == "" {
		return cfg, errors.Errorf("gke profile in %s requires both project and zone", cfg.Cloud.Profiles)
	}

	return cfg, nil
}

func loadEksProfile(cfg Configuration, profiles *ini.File) (Configuration, error) {
	const EksSection = "eks"
	section, err := profiles.GetSection(EksSection)
	if err != nil {
		return cfg, errors.Wrapf(err, "no [%s] profile in %s", EksSection, cfg.Cloud.Profiles)
	}

	cfg.Eks.Region = section.Key("region").String()
	cfg.Eks.NodeType = section.Key("node-type").MustString(cfg.Eks.NodeType)
	cfg.Eks.Nodes = section.Key("nodes").MustInt(cfg.Eks.Nodes)

	if cfg.Eks.Region == "" {
		return cfg, errors.Errorf("eks profile in %s requires a region", cfg.Cloud.Profiles)
	}

	return cfg, nil
}
