package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	response "house_calculator/internal/adapter/http/dto/response"
	"house_calculator/internal/domain/entities"
)

const yamlInput = `
houseType: brick
foundation:
  width: 10
  depth: 1
  length: 12
  type: Ленточный
  hasBasement: false
  hasBasementFloor: false
walls:
  - width: 1
    length: 10
    height: 2.5
    material: Brick
    insulation: Mineral Wool
roof:
  type: Скатная
  material: Shingle
  length: 10
  width: 8
`

func TestParseInput(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		in, err := parseInput([]byte(yamlInput), formatYAML, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in.HouseType != entities.HouseTypeBrick || len(in.Walls) != 1 || in.Walls[0].Height != 2.5 {
			t.Fatalf("unexpected input: %+v", in)
		}
		if in.Foundation.Type != "Ленточный" || in.Roof.Material != "Shingle" {
			t.Fatalf("unexpected input: %+v", in)
		}
	})

	t.Run("json with override", func(t *testing.T) {
		in, err := parseInput([]byte(`{"houseType":"brick","walls":[]}`), formatJSON, "concrete")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in.HouseType != entities.HouseTypeConcrete {
			t.Fatalf("expected concrete, got %s", in.HouseType)
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := parseInput([]byte(`{"houseType":"straw"}`), formatJSON, "")
		if !errors.Is(err, entities.ErrUnsupportedHouseType) {
			t.Fatalf("expected ErrUnsupportedHouseType, got %v", err)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		if _, err := parseInput([]byte("walls: ["), formatYAML, ""); err == nil {
			t.Fatalf("expected yaml error")
		}
		if _, err := parseInput([]byte("{"), formatJSON, ""); err == nil {
			t.Fatalf("expected json error")
		}
	})
}

func TestInputFormat(t *testing.T) {
	cases := map[string]string{
		"house.yaml": formatYAML,
		"house.YML":  formatYAML,
		"house.json": formatJSON,
		"-":          formatJSON,
	}
	for path, expected := range cases {
		if got := inputFormat(path); got != expected {
			t.Fatalf("%s: expected %s, got %s", path, expected, got)
		}
	}
}

func TestWriteResult(t *testing.T) {
	result := response.CalculationResultResponse{
		Materials: []response.MaterialLineResponse{{Name: "Foundation Concrete", Quantity: 288000, Unit: "kg"}},
		TotalArea: 96,
	}

	var buf bytes.Buffer
	if err := writeResult(&buf, result, formatYAML); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "total_area: 96") || !strings.Contains(buf.String(), "name: Foundation Concrete") {
		t.Fatalf("unexpected yaml: %s", buf.String())
	}

	buf.Reset()
	if err := writeResult(&buf, result, formatJSON); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded response.CalculationResultResponse
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded.TotalArea != 96 {
		t.Fatalf("expected 96, got %v", decoded.TotalArea)
	}

	if err := writeResult(&buf, result, "xml"); err == nil {
		t.Fatalf("expected unknown format error")
	}
}

func TestEstimateCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "house.yaml")
	if err := os.WriteFile(path, []byte(yamlInput), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"estimate", "--file", path, "--output", "json", "--price"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	if err := Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var result response.CalculationResultResponse
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("unexpected error: %v: %s", err, out.String())
	}
	if result.TotalArea != 121 {
		t.Fatalf("expected 121, got %v", result.TotalArea)
	}
	if result.TotalCost == nil {
		t.Fatalf("expected priced result")
	}
	if result.Materials[0].Name != "Standard Brick" || result.Materials[0].Quantity != 1308 {
		t.Fatalf("unexpected first line: %+v", result.Materials[0])
	}
}
