package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	request "house_calculator/internal/adapter/http/dto/request"
	response "house_calculator/internal/adapter/http/dto/response"
	"house_calculator/internal/domain/entities"
	"house_calculator/internal/domain/estimator"
	"house_calculator/internal/usecase"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	estimateFile      string
	estimateHouseType string
	estimateOutput    string
	estimatePrice     bool
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate materials from a JSON or YAML file",
	Long: `Read a calculation input (the body of POST /api/calculations) from a file
and print the estimated materials. Files ending in .yaml or .yml are read as
YAML, anything else as JSON. Use "-" to read JSON from stdin.

With --price the lines are priced with the default catalog.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readInput(cmd.InOrStdin(), estimateFile)
		if err != nil {
			return err
		}

		in, err := parseInput(raw, inputFormat(estimateFile), estimateHouseType)
		if err != nil {
			return err
		}

		result, err := estimator.Estimate(in.HouseType, in)
		if err != nil {
			return err
		}
		if estimatePrice {
			result = estimator.ApplyPrices(result, estimator.NewPriceList(in.HouseType, usecase.DefaultCatalog()))
		}

		return writeResult(cmd.OutOrStdout(), response.FromEstimationResult(result), estimateOutput)
	},
}

func init() {
	estimateCmd.Flags().StringVarP(&estimateFile, "file", "f", "", "input file (.json, .yaml, .yml or - for stdin)")
	estimateCmd.Flags().StringVar(&estimateHouseType, "house-type", "", "override the houseType of the input")
	estimateCmd.Flags().StringVarP(&estimateOutput, "output", "o", formatJSON, "output format: json or yaml")
	estimateCmd.Flags().BoolVar(&estimatePrice, "price", false, "price the lines with the default catalog")
	_ = estimateCmd.MarkFlagRequired("file")
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}
	return data, nil
}

func inputFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

// parseInput decodes raw into a calculation input. YAML documents use the
// same field names as the JSON API.
func parseInput(raw []byte, format, houseType string) (entities.CalculationInput, error) {
	if format == formatYAML {
		var doc map[string]any
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return entities.CalculationInput{}, fmt.Errorf("error parsing YAML input: %w", err)
		}
		var err error
		if raw, err = json.Marshal(doc); err != nil {
			return entities.CalculationInput{}, fmt.Errorf("error converting YAML input: %w", err)
		}
	}

	var req request.CalculationRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return entities.CalculationInput{}, fmt.Errorf("error parsing JSON input: %w", err)
	}
	if houseType != "" {
		req.HouseType = houseType
	}
	return req.ToInput()
}

func writeResult(w io.Writer, result response.CalculationResultResponse, format string) error {
	switch strings.ToLower(format) {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case formatYAML:
		// Round-trip through JSON so YAML keys match the API field names.
		data, err := json.Marshal(result)
		if err != nil {
			return err
		}
		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			return err
		}
		out, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("error marshaling result: %w", err)
		}
		_, err = w.Write(out)
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
