package terraform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"go.uber.org/zap"

	"cloudcost/core/types"
	"cloudcost/internal/errors"
	"cloudcost/internal/logging"
)

// Scanner parses Terraform HCL source into raw resource records, for
// estimating cost before anything has been applied.
type Scanner struct {
	parser *hclparse.Parser
}

// NewScanner creates an HCL scanner
func NewScanner() *Scanner {
	return &Scanner{
		parser: hclparse.NewParser(),
	}
}

// ScanDir parses every .tf file under path and returns the declared
// resources as raw records. A file that fails to parse is logged and
// skipped; the scan continues with the remaining files.
func (s *Scanner) ScanDir(path string) ([]types.RawRecord, error) {
	var tfFiles []string
	err := filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(p, ".tf") {
			tfFiles = append(tfFiles, p)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Parsing("failed to walk terraform directory", err)
	}

	if len(tfFiles) == 0 {
		return nil, errors.Inputf("no .tf files found under %s", path)
	}

	var records []types.RawRecord
	for _, file := range tfFiles {
		recs, err := s.parseFile(file)
		if err != nil {
			logging.Component(logging.StageTerraform).Warn("skipping unparseable terraform file",
				zap.String("file", file),
				zap.Error(err))
			continue
		}
		records = append(records, recs...)
	}

	return records, nil
}

func (s *Scanner) parseFile(file string) ([]types.RawRecord, error) {
	src, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	hclFile, diags := s.parser.ParseHCL(src, file)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %s", file, diags.Error())
	}

	body, ok := hclFile.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("parse %s: unexpected body type", file)
	}

	var records []types.RawRecord
	for _, block := range body.Blocks {
		if block.Type != "resource" || len(block.Labels) < 2 {
			continue
		}

		attrs := extractAttributes(block.Body, "")

		records = append(records, types.RawRecord{
			Name:       block.Labels[1],
			SourceType: block.Labels[0],
			Region:     resolveRegion(attrs),
			State:      "declared",
			Attributes: attrs,
			Tags:       resolveTags(attrs),
		})
	}

	return records, nil
}

// extractAttributes evaluates a block body's attributes, flattening
// nested blocks one level with the "<block>.0.<attr>" spelling the
// state file uses. Unevaluable expressions (references, functions)
// are kept as computed with a nil value.
func extractAttributes(body *hclsyntax.Body, prefix string) types.Attributes {
	attrs := make(types.Attributes)

	for name, attr := range body.Attributes {
		key := prefix + name
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			attrs[key] = types.Attribute{Value: nil, IsComputed: true}
			continue
		}
		attrs[key] = types.Attribute{Value: ctyToGo(val)}
	}

	if prefix == "" {
		for _, block := range body.Blocks {
			nested := extractAttributes(block.Body, block.Type+".0.")
			for k, v := range nested {
				attrs[k] = v
			}
		}
	}

	return attrs
}

// ctyToGo converts an evaluated cty value into plain Go values.
// Unknown and null values become nil.
func ctyToGo(val cty.Value) interface{} {
	if !val.IsKnown() || val.IsNull() {
		return nil
	}

	ty := val.Type()
	switch {
	case ty == cty.String:
		return val.AsString()
	case ty == cty.Number:
		f, _ := val.AsBigFloat().Float64()
		return f
	case ty == cty.Bool:
		return val.True()
	case ty.IsListType() || ty.IsSetType() || ty.IsTupleType():
		var out []interface{}
		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			out = append(out, ctyToGo(elem))
		}
		return out
	case ty.IsMapType() || ty.IsObjectType():
		out := make(map[string]interface{})
		for it := val.ElementIterator(); it.Next(); {
			k, elem := it.Element()
			out[k.AsString()] = ctyToGo(elem)
		}
		return out
	default:
		return nil
	}
}

// ReconcileDir runs the full HCL pipeline: scan, normalize into
// unified resources.
func ReconcileDir(path string) ([]types.UnifiedResource, error) {
	records, err := NewScanner().ScanDir(path)
	if err != nil {
		return nil, err
	}
	return Reconcile(records), nil
}
