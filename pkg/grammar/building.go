package grammar

import (
	"encoding/json"
	"strings"

	"github.com/matzehuels/facadegen/pkg/errors"
)

// FloorRecord is one entry of the building JSON format. Pattern holds one
// grammar line per side in the order front, left, back, right.
type FloorRecord struct {
	Name    string   `json:"Name"`
	Height  int      `json:"Height"`
	Pattern []string `json:"Pattern"`
}

// rawRecord detects missing fields, which FloorRecord cannot distinguish
// from zero values.
type rawRecord struct {
	Name    *string   `json:"Name"`
	Height  *int      `json:"Height"`
	Pattern *[]string `json:"Pattern"`
}

// DecodeBuildingJSON decodes and parses a building JSON document: a list
// of floor records listed according to order (normally [OrderBottomUp]).
func DecodeBuildingJSON(data []byte, order Order) (*Pattern, error) {
	var raw []rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeSyntax, err, "decode building JSON")
	}

	records := make([]FloorRecord, len(raw))
	for i, r := range raw {
		switch {
		case r.Name == nil:
			return nil, errors.New(errors.ErrCodeSyntax, "floor %d: missing Name", i)
		case r.Height == nil:
			return nil, errors.New(errors.ErrCodeSyntax, "floor %d (%s): missing Height", i, *r.Name)
		case r.Pattern == nil:
			return nil, errors.New(errors.ErrCodeSyntax, "floor %d (%s): missing Pattern", i, *r.Name)
		}
		records[i] = FloorRecord{Name: *r.Name, Height: *r.Height, Pattern: *r.Pattern}
	}
	return ParseBuildingJSON(records, order)
}

// ParseBuildingJSON parses already-decoded floor records. Every record must
// name its floor, have a non-negative height and exactly four pattern lines.
func ParseBuildingJSON(records []FloorRecord, order Order) (*Pattern, error) {
	if len(records) == 0 {
		return nil, errors.New(errors.ErrCodeSyntax, "empty pattern: no floor records")
	}

	floors := make([]Floor, len(records))
	for i, r := range records {
		if r.Name == "" {
			return nil, errors.New(errors.ErrCodeSyntax, "floor %d: missing Name", i)
		}
		if r.Height < 0 {
			return nil, errors.New(errors.ErrCodeSyntax, "floor %d (%s): negative Height %d", i, r.Name, r.Height)
		}
		if len(r.Pattern) != len(Sides) {
			return nil, errors.New(errors.ErrCodeSyntax, "floor %d (%s): Pattern must have exactly %d entries (front, left, back, right), got %d",
				i, r.Name, len(Sides), len(r.Pattern))
		}

		sides := make(map[Side]Facade, len(Sides))
		for j, s := range Sides {
			if strings.ContainsAny(r.Pattern[j], "\r\n") {
				return nil, errors.New(errors.ErrCodeSyntax, "floor %d (%s): %s pattern contains a newline", i, r.Name, s)
			}
			f, err := ParseFacade(r.Pattern[j])
			if err != nil {
				return nil, errors.Annotate(err, "floor %d (%s) %s", i, r.Name, s)
			}
			sides[s] = f
		}
		floors[i] = Floor{Name: r.Name, Height: r.Height, Sides: sides}
	}

	return &Pattern{Floors: reorder(floors, order)}, nil
}

// EncodeBuildingJSON is the inverse of [DecodeBuildingJSON].
func EncodeBuildingJSON(p *Pattern, order Order) ([]byte, error) {
	records := make([]FloorRecord, len(p.Floors))
	for i, fl := range p.Floors {
		lines := make([]string, len(Sides))
		for j, s := range Sides {
			f, ok := fl.Sides[s]
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidInput, "floor %d (%s): missing %s facade", i, fl.Name, s)
			}
			lines[j] = f.String()
		}
		records[i] = FloorRecord{Name: fl.Name, Height: fl.Height, Pattern: lines}
	}
	return json.MarshalIndent(reorder(records, order), "", "  ")
}
