package setup

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/sololabs/demos2/util/common"
	"github.com/sololabs/demos2/util/log"
	"github.com/sololabs/demos2/util/system"
)

func resolveRootDirectory() (string, error) {
	workingDir, err := os.Getwd()
	if err != nil {
		log.Error.Fatal(err)
	}

	return system.FindFileUpwards(workingDir, DefaultConfigurationFile)
}

const DefaultConfigurationFile = "default.cfg"

func loadConfiguration(cfgFilename string, initCfg Configuration, obligatory bool) (Configuration, error) {
	cfgPath := filepath.Join(initCfg.Demo.RootDirectory, cfgFilename)
	if obligatory || system.DoesFileExist(cfgPath) {
		return loadConfigFile(cfgPath, initCfg)
	}
	return initCfg, nil
}

func ensureAllNecessaryItems(cfg Configuration) error {
	return system.EnsureDirExist(cfg.Demo.OutputDirectory)
}

// returns true if runs under 'go test'
func runsUnderTestGo() bool {
	return flag.Lookup("test.v") != nil
}

func CreateConfiguration(ignoreCommand bool) (Configuration, common.Command, error) {
	var cfg Configuration
	var err error

	cfg.Demo.RootDirectory, err = resolveRootDirectory()
	if err != nil {
		return cfg, common.Unknown, err
	}

	cfg, err = loadConfiguration(DefaultConfigurationFile, cfg, true)
	if err != nil {
		return cfg, common.Unknown, err
	}

	cfg, err = applyEnvironment(cfg)
	if err != nil {
		return cfg, common.Unknown, err
	}

	const CustomConfigurationFile = "custom.cfg"
	cfg, err = loadConfiguration(CustomConfigurationFile, cfg, false)
	if err != nil {
		return cfg, common.Unknown, err
	}

	var cmd common.Command = common.Unknown
	if !runsUnderTestGo() {
		cmd, cfg, err = parseCommandLine(cfg, ignoreCommand)
		if err != nil {
			return cfg, common.Unknown, err
		}
	}

	cfg, err = resolveSettings(cfg)
	if err != nil {
		return cfg, common.Unknown, err
	}

	err = ensureAllNecessaryItems(cfg)
	if err != nil {
		return cfg, common.Unknown, err
	}

	return cfg, cmd, nil
}
