package workflows

import (
	"context"
	"fmt"

	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/configs"
	fferrors "github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/errors"
)

// InitConfigOptions configures the config init workflow.
// Empty fields keep their defaults.
type InitConfigOptions struct {
	RepoPath       string
	FlashforgePath string
	MachineID      string
	Nozzle         string

	// Force overwrites an existing config file.
	Force bool
}

// InitConfigResult contains the outcome of config init.
type InitConfigResult struct {
	Path        string
	Config      *configs.Config
	Overwritten bool
}

// InitConfig writes a new config.toml.
//
// Returns ErrConfigExists if a config already exists and Force is false.
func InitConfig(ctx context.Context, opts InitConfigOptions) (*InitConfigResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	exists := configs.ConfigExists()
	if exists && !opts.Force {
		return nil, fmt.Errorf("%w: %s", fferrors.ErrConfigExists, configs.ConfigPath())
	}

	config := configs.NewConfig()
	if opts.RepoPath != "" {
		config.Paths.Repo = opts.RepoPath
	}
	if opts.FlashforgePath != "" {
		config.Paths.Flashforge = opts.FlashforgePath
	}
	config.Defaults.MachineID = opts.MachineID
	config.Defaults.Nozzle = opts.Nozzle

	if err := configs.SaveConfig(config); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	return &InitConfigResult{
		Path:        configs.ConfigPath(),
		Config:      config,
		Overwritten: exists,
	}, nil
}

// ShowConfigResult contains the current configuration.
type ShowConfigResult struct {
	Path   string
	Exists bool
	Config *configs.Config
}

// ShowConfig loads config.toml. A missing file is not an error.
func ShowConfig(ctx context.Context) (*ShowConfigResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	config, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &ShowConfigResult{
		Path:   configs.ConfigPath(),
		Exists: configs.ConfigExists(),
		Config: config,
	}, nil
}
