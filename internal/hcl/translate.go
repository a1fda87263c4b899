package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/featmatrix/internal/config"
	"github.com/vk/featmatrix/internal/schema"
)

// translateProject converts the HCL-specific project schema into the
// agnostic manifest model, evaluating and validating the feature list.
func (l *Loader) translateProject(p *schema.Project) (*config.Manifest, error) {
	features, err := evalFeatures(p.Features)
	if err != nil {
		return nil, fmt.Errorf("project %q: %w", p.Name, err)
	}

	seen := make(map[string]bool, len(features))
	for _, f := range features {
		if f == "" {
			return nil, fmt.Errorf("project %q: feature names must not be empty", p.Name)
		}
		if seen[f] {
			return nil, fmt.Errorf("project %q: duplicate feature %q", p.Name, f)
		}
		seen[f] = true
	}

	tool := p.Tool
	if tool == "" {
		tool = config.DefaultTool
	}

	return &config.Manifest{
		Project:  p.Name,
		Tool:     tool,
		Features: features,
	}, nil
}

// evalFeatures evaluates the features attribute into a list of strings.
func evalFeatures(expr hcl.Expression) ([]string, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to evaluate features: %w", diags)
	}

	val, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, fmt.Errorf("features must be a list of strings: %w", err)
	}
	if val.IsNull() {
		return nil, fmt.Errorf("features must not be null")
	}

	var features []string
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		if elem.IsNull() {
			return nil, fmt.Errorf("features must not contain null elements")
		}
		features = append(features, elem.AsString())
	}
	return features, nil
}
