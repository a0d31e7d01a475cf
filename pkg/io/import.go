package io

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/facadegen/pkg/director"
	"github.com/matzehuels/facadegen/pkg/errors"
)

// ReadSpecTOML decodes a TOML building spec from r.
func ReadSpecTOML(r io.Reader) (director.BuildingSpec, error) {
	var spec director.BuildingSpec
	md, err := toml.NewDecoder(r).Decode(&spec)
	if err != nil {
		return director.BuildingSpec{}, errors.Wrap(errors.ErrCodeInvalidSpec, err, "decode spec")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return director.BuildingSpec{}, errors.New(errors.ErrCodeInvalidSpec, "unknown keys in spec: %s", strings.Join(keys, ", "))
	}
	return spec, nil
}

// ReadSpecJSON decodes a JSON building spec from r.
func ReadSpecJSON(r io.Reader) (director.BuildingSpec, error) {
	var spec director.BuildingSpec
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&spec); err != nil {
		return director.BuildingSpec{}, errors.Wrap(errors.ErrCodeInvalidSpec, err, "decode spec")
	}
	return spec, nil
}

// LoadSpec reads a building spec file. Files ending in .json are decoded
// as JSON, everything else as TOML.
func LoadSpec(path string) (director.BuildingSpec, error) {
	if err := errors.ValidatePath(path); err != nil {
		return director.BuildingSpec{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return director.BuildingSpec{}, errors.Wrap(errors.ErrCodeNotFound, err, "spec %s", path)
		}
		return director.BuildingSpec{}, err
	}
	defer f.Close()

	var spec director.BuildingSpec
	if strings.EqualFold(filepath.Ext(path), ".json") {
		spec, err = ReadSpecJSON(f)
	} else {
		spec, err = ReadSpecTOML(f)
	}
	if err != nil {
		return director.BuildingSpec{}, errors.Annotate(err, "%s", path)
	}
	return spec, nil
}

// ReadBlueprintJSON decodes a blueprint document from r.
func ReadBlueprintJSON(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode blueprint")
	}
	for s, floors := range doc.Sides {
		if s.Opposite() == "" {
			return Document{}, errors.New(errors.ErrCodeInvalidInput, "blueprint has unknown side %q", s)
		}
		if len(floors) != doc.Floors {
			return Document{}, errors.New(errors.ErrCodeInvalidInput, "side %s has %d floors, document declares %d", s, len(floors), doc.Floors)
		}
	}
	return doc, nil
}
