package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	apperrors "himaya-assistant/internal/common/errors"
	"himaya-assistant/internal/common/validation"
)

//go:embed data/schemes.json
var embeddedSchemes []byte

// datasetSchema guards the invariants a file-loaded catalog must hold,
// most importantly that every scheme carries an English translation.
const datasetSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "name", "category", "eligibility", "translations"],
    "properties": {
      "id": {"type": "string", "pattern": "^[a-z0-9]+(-[a-z0-9]+)*$"},
      "name": {"type": "string", "minLength": 1},
      "category": {"type": "string", "minLength": 1},
      "ministry": {"type": "string"},
      "benefitAmount": {"type": "number", "minimum": 0},
      "benefitFrequency": {"type": "string"},
      "benefitDescription": {"type": "string"},
      "isActive": {"type": "boolean"},
      "launchYear": {"type": "integer"},
      "documents": {"type": "array", "items": {"type": "string"}},
      "website": {"type": "string"},
      "eligibility": {
        "type": "object",
        "properties": {
          "minAge": {"type": ["integer", "null"], "minimum": 0},
          "maxAge": {"type": ["integer", "null"], "minimum": 0},
          "maxIncome": {"type": ["number", "null"], "minimum": 0},
          "occupation": {"type": ["array", "null"], "items": {"type": "string"}},
          "gender": {"type": ["string", "null"]},
          "bpl": {"type": ["boolean", "null"]},
          "hasLand": {"type": ["boolean", "null"]},
          "category": {"type": ["string", "null"]}
        }
      },
      "translations": {
        "type": "object",
        "required": ["en"],
        "additionalProperties": {"$ref": "#/definitions/translation"}
      }
    }
  },
  "definitions": {
    "translation": {
      "type": "object",
      "required": ["name", "shortDescription"],
      "properties": {
        "name": {"type": "string", "minLength": 1},
        "shortDescription": {"type": "string"},
        "description": {"type": "string"},
        "eligibilityText": {"type": "string"},
        "howToApply": {"type": "string"},
        "helplineNumber": {"type": "string"},
        "benefitDescription": {"type": "string"}
      }
    }
  }
}`

var dataset = validation.MustCompile("scheme-catalog", datasetSchema)

// LoadEmbedded builds the catalog compiled into the binary.
func LoadEmbedded() (*Catalog, error) {
	return Parse(embeddedSchemes)
}

// Load reads a catalog file from disk.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// LoadOrEmbedded loads path when set and falls back to the embedded dataset.
func LoadOrEmbedded(path string) (*Catalog, error) {
	if path == "" {
		return LoadEmbedded()
	}
	return Load(path)
}

// Parse validates data against the dataset schema and decodes it.
func Parse(data []byte) (*Catalog, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}

	var schemes []Scheme
	if err := json.Unmarshal(data, &schemes); err != nil {
		return nil, apperrors.NewCatalogInvalidError(err.Error())
	}

	c, err := New(schemes)
	if err != nil {
		return nil, apperrors.NewCatalogInvalidError(err.Error())
	}
	return c, nil
}

// Validate checks a raw dataset without building a catalog.
func Validate(data []byte) error {
	result, err := dataset.ValidateBytes(data)
	if err != nil {
		return apperrors.NewCatalogInvalidError(err.Error())
	}
	if !result.Valid {
		return apperrors.NewCatalogInvalidError(fmt.Sprintf("%v", result.GetErrorMessages())).
			WithMetadata("violations", result.GetErrorMessages())
	}
	return nil
}
