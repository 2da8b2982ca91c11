// Package factory builds error models from configuration by name.
package factory

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"firestige.xyz/erratic/internal/core"
	"firestige.xyz/erratic/internal/errmodel"
)

// ModelConfig names a model type and carries its free-form options, decoded
// by the matching builder.
type ModelConfig struct {
	Type    string         `mapstructure:"type"`
	Options map[string]any `mapstructure:"options"`
}

// Builder constructs a configured model from its options.
type Builder func(cfg ModelConfig) (errmodel.ErrorModel, error)

var registry = make(map[string]Builder)

func init() {
	Register("rate", buildRate)
	Register("list", buildList)
	Register("composite", buildComposite)
}

// Register adds a builder under the given model type name.
func Register(name string, b Builder) {
	registry[name] = b
}

// Build constructs the model named by cfg.Type.
func Build(cfg ModelConfig) (errmodel.ErrorModel, error) {
	b, ok := registry[cfg.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownModel, cfg.Type)
	}
	return b(cfg)
}

type rateOptions struct {
	Unit string  `mapstructure:"unit"`
	Rate float64 `mapstructure:"rate"`
	Seed int64   `mapstructure:"seed"`
}

func buildRate(cfg ModelConfig) (errmodel.ErrorModel, error) {
	opts := rateOptions{Unit: "byte"}
	if err := mapstructure.Decode(cfg.Options, &opts); err != nil {
		return nil, fmt.Errorf("decode rate options: %w", err)
	}
	unit, err := errmodel.ParseUnit(opts.Unit)
	if err != nil {
		return nil, err
	}
	m := errmodel.NewRateErrorModel()
	m.SetUnit(unit)
	m.SetRate(opts.Rate)
	if opts.Seed != 0 {
		m.SetRandomSource(errmodel.NewDefaultSource(opts.Seed))
	}
	return m, nil
}

type listOptions struct {
	UIDs  []uint64 `mapstructure:"uids"`
	Trace string   `mapstructure:"trace"`
}

func buildList(cfg ModelConfig) (errmodel.ErrorModel, error) {
	var opts listOptions
	if err := mapstructure.Decode(cfg.Options, &opts); err != nil {
		return nil, fmt.Errorf("decode list options: %w", err)
	}
	uids := opts.UIDs
	if opts.Trace != "" {
		traced, err := LoadTrace(opts.Trace)
		if err != nil {
			return nil, err
		}
		uids = append(uids, traced...)
	}
	m := errmodel.NewListErrorModel()
	m.SetList(uids)
	return m, nil
}

type compositeOptions struct {
	Models []ModelConfig `mapstructure:"models"`
}

func buildComposite(cfg ModelConfig) (errmodel.ErrorModel, error) {
	var opts compositeOptions
	if err := mapstructure.Decode(cfg.Options, &opts); err != nil {
		return nil, fmt.Errorf("decode composite options: %w", err)
	}
	children := make([]errmodel.ErrorModel, 0, len(opts.Models))
	for i, childCfg := range opts.Models {
		child, err := Build(childCfg)
		if err != nil {
			return nil, fmt.Errorf("composite child %d: %w", i, err)
		}
		children = append(children, child)
	}
	return errmodel.NewCompositeErrorModel(children...), nil
}
