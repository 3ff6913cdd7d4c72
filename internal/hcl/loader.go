package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/primespectgo/internal/config"
	"github.com/vk/primespectgo/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL analysis definition loader.
func NewLoader() *Loader {
	return &Loader{}
}

// analysisBlock mirrors a single `analysis` block on disk. Bound stays an
// hcl.Expression so it can be evaluated and range-checked as a cty value
// before it is narrowed to a Go int.
type analysisBlock struct {
	Name  string         `hcl:"name,label"`
	Bound hcl.Expression `hcl:"bound,optional"`
}

// fileRoot is a struct used to decode all top-level blocks from any file.
type fileRoot struct {
	Analyses []*analysisBlock `hcl:"analysis,block"`
	Remain   hcl.Body         `hcl:",remain"`
}

// Load orchestrates the HCL loading process. It is agnostic to the origin
// of the paths and merges analysis blocks from every file it discovers.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := l.findAnalysisFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := &config.Model{}
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range root.Analyses {
			analysis, err := l.translateAnalysis(block)
			if err != nil {
				return nil, fmt.Errorf("in file %s: %w", file, err)
			}
			model.Analyses = append(model.Analyses, analysis)
		}
	}

	logger.Debug("HCL loading complete.", "analyses", len(model.Analyses))
	return model, nil
}

// translateAnalysis converts the HCL-specific block into the agnostic model,
// applying the reference default when no bound is given.
func (l *Loader) translateAnalysis(block *analysisBlock) (*config.Analysis, error) {
	bound := int64(config.DefaultBound)

	if block.Bound != nil {
		val, diags := block.Bound.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid bound for analysis %q: %w", block.Name, diags)
		}
		// A null value means the attribute was omitted; keep the default.
		if !val.IsNull() {
			converted, err := convert.Convert(val, cty.Number)
			if err != nil {
				return nil, fmt.Errorf("analysis %q: bound must be a number: %w", block.Name, err)
			}
			if err := gocty.FromCtyValue(converted, &bound); err != nil {
				return nil, fmt.Errorf("analysis %q: bound must be a whole number: %w", block.Name, err)
			}
		}
	}

	if bound > int64(config.MaxBound) {
		return nil, fmt.Errorf("analysis %q: bound %d exceeds the maximum supported value %d", block.Name, bound, config.MaxBound)
	}

	return &config.Analysis{
		Name:  block.Name,
		Bound: int(bound),
	}, nil
}

// findAnalysisFiles walks all given paths and returns a flat list of all
// .hcl files found. A path that does not exist is an error: unlike optional
// default directories, every path here was asked for explicitly.
func (l *Loader) findAnalysisFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if info.IsDir() {
			err := filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if !info.IsDir() && filepath.Ext(p) == ".hcl" {
					if _, wasSeen := seen[p]; !wasSeen {
						allFiles = append(allFiles, p)
						seen[p] = struct{}{}
					}
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
		} else if filepath.Ext(path) == ".hcl" {
			if _, wasSeen := seen[path]; !wasSeen {
				allFiles = append(allFiles, path)
				seen[path] = struct{}{}
			}
		}
	}
	return allFiles, nil
}
