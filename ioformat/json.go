package ioformat

import (
	"encoding/json"
	"io"

	"github.com/discopt/seymour-go/cmrerrors"
	"github.com/discopt/seymour-go/params"
)

// ReadParams decodes a JSON-encoded params.Params from r, as consumed by
// the CLI's --params-file flag. Fields absent from the JSON document keep
// their params.New default.
func ReadParams(r io.Reader) (params.Params, error) {
	p := params.New()
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return params.Params{}, cmrerrors.New(cmrerrors.Input, err)
	}
	if err := p.Validate(); err != nil {
		return params.Params{}, err
	}
	return p, nil
}

// WriteParams encodes p as indented JSON to w.
func WriteParams(w io.Writer, p params.Params) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return cmrerrors.New(cmrerrors.Output, err)
	}
	return nil
}

// WriteStatistics encodes st as indented JSON to w, for the `seymour
// stats` subcommand.
func WriteStatistics(w io.Writer, st params.Statistics) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(st); err != nil {
		return cmrerrors.New(cmrerrors.Output, err)
	}
	return nil
}
