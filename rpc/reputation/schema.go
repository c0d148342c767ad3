package reputation

import (
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/smartcontract"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
)

// Abstract type names used in schema entries.
const (
	TypeAddress = "Address"
	TypeU64     = "u64"
)

// WorkerTypeName is a name of Worker type in contract ABI.
const WorkerTypeName = "Worker"

type (
	// SchemaField describes single record field.
	SchemaField struct {
		Name string `json:"name" yaml:"name"`
		Type string `json:"type" yaml:"type"`
	}

	// Schema is a self-describing ABI entry of a record type. Fields go in
	// the encoding order.
	Schema struct {
		Name   string
		Fields []SchemaField
	}

	// TypeEntry is a record type as it's listed in ABI "types" section.
	TypeEntry struct {
		Type   string        `json:"type" yaml:"type"`
		Fields []SchemaField `json:"fields" yaml:"fields"`
	}
)

// paramTypes maps abstract field types to neo-go contract parameter types.
var paramTypes = map[string]smartcontract.ParamType{
	TypeAddress: smartcontract.ByteArrayType,
	TypeU64:     smartcontract.IntegerType,
}

// WorkerSchema returns schema entry of Worker. Each call returns a new
// value, so callers are free to modify it.
func WorkerSchema() Schema {
	return Schema{
		Name: WorkerTypeName,
		Fields: []SchemaField{
			{Name: "worker_address", Type: TypeAddress},
			{Name: "reputation", Type: TypeU64},
		},
	}
}

// Types returns schema as ABI "types" section keyed by the type name.
func (s Schema) Types() map[string]TypeEntry {
	return map[string]TypeEntry{
		s.Name: {
			Type:   "struct",
			Fields: append([]SchemaField(nil), s.Fields...),
		},
	}
}

// Parameters returns schema fields as neo-go manifest parameters.
func (s Schema) Parameters() ([]manifest.Parameter, error) {
	res := make([]manifest.Parameter, 0, len(s.Fields))
	for _, f := range s.Fields {
		typ, ok := paramTypes[f.Type]
		if !ok {
			return nil, fmt.Errorf("field %s: unsupported type %q", f.Name, f.Type)
		}

		res = append(res, manifest.NewParameter(f.Name, typ))
	}

	return res, nil
}
