package cli

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/YoshitsuguKoike/propbrief/internal/app"
	"github.com/YoshitsuguKoike/propbrief/internal/app/config"
	"github.com/YoshitsuguKoike/propbrief/internal/application/usecase/submission"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/disclosure"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/model"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/wizard"
	infraConfig "github.com/YoshitsuguKoike/propbrief/internal/infra/config"
	"github.com/YoshitsuguKoike/propbrief/internal/infra/gazetteer"
	"github.com/YoshitsuguKoike/propbrief/internal/infra/submitter"
)

// environment is the set of loaded collaborators shared by commands
type environment struct {
	cfg     config.Config
	fs      afero.Fs
	rates   disclosure.RateTable
	regions *gazetteer.Gazetteer
	logger  app.Logger
}

func loadEnvironment() (*environment, error) {
	cfg := globalConfig
	if cfg == nil {
		cfg = defaultConfig()
	}

	rates, err := infraConfig.LoadRates(appFs, cfg.RatesPath())
	if err != nil {
		return nil, err
	}
	regions, err := gazetteer.Load(appFs, cfg.RegionsPath())
	if err != nil {
		return nil, err
	}
	return &environment{
		cfg:     cfg,
		fs:      appFs,
		rates:   rates,
		regions: regions,
		logger:  componentLogger("submit"),
	}, nil
}

// catalog returns the flow's catalog with location validation wired in
func (e *environment) catalog(flow string) (*wizard.Catalog, error) {
	c, err := wizard.ForFlow(model.Flow(flow))
	if err != nil {
		return nil, fmt.Errorf("%w (use brief or preference)", err)
	}
	return c.WithRegions(e.regions), nil
}

func (e *environment) submitUseCase() *submission.SubmitUseCase {
	return submission.NewSubmitUseCase(submitter.New(e.cfg, e.fs), e.rates, e.logger)
}
