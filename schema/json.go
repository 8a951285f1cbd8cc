package schema

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// JSON encoding of the AST. Each sum type is rendered as an object with a
// "kind" discriminator so the three alternatives stay distinguishable:
//
//	{"kind": "table", "name": "T", "key": ["k"], "fields": [...]}
//	{"kind": "field", "number": 1, "name": "k", "datatype": {...}, ...}
//	{"kind": "timeseries", "elem": {"kind": "scalar", "name": "int32"}}
//
// The encoding round-trips: UnmarshalDefinitions(MarshalDefinitions(defs))
// reproduces the tree.

// MarshalDefinitions renders a parsed schema as JSON.
func MarshalDefinitions(defs []Definition) ([]byte, error) {
	return json.Marshal(defs)
}

// UnmarshalDefinitions rebuilds a definition list from its JSON encoding.
func UnmarshalDefinitions(data []byte) ([]Definition, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}
	defs := make([]Definition, 0, len(raws))
	for _, raw := range raws {
		def, err := unmarshalDefinition(raw)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func (t Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind   string       `json:"kind"`
		Name   string       `json:"name"`
		Key    []string     `json:"key"`
		Fields []ObjectDecl `json:"fields"`
	}{"table", t.Name, t.Key, t.Fields})
}

func (kv KV) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind string `json:"kind"`
		Name string `json:"name"`
	}{"kv", kv.Name})
}

func (f Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind     string   `json:"kind"`
		Number   uint64   `json:"number"`
		Name     string   `json:"name"`
		Datatype Datatype `json:"datatype"`
		Repeated bool     `json:"repeated"`
		Breakout bool     `json:"breakout"`
	}{"field", f.Number, f.Name, f.Datatype, f.Repeated, f.Breakout})
}

func (r Reserved) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind   string `json:"kind"`
		Number uint64 `json:"number"`
	}{"reserved", r.Number})
}

func (s Scalar) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind string `json:"kind"`
		Name string `json:"name"`
	}{"scalar", string(s)})
}

func (o Object) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind  string       `json:"kind"`
		Decls []ObjectDecl `json:"decls"`
	}{"object", o.Decls})
}

func (ts TimeSeries) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind string   `json:"kind"`
		Elem Datatype `json:"elem"`
	}{"timeseries", ts.Elem})
}

func kindOf(raw json.RawMessage) (string, error) {
	var probe struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return "", err
	}
	return probe.Kind, nil
}

func unmarshalDefinition(raw json.RawMessage) (Definition, error) {
	kind, err := kindOf(raw)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "table":
		var shadow struct {
			Name   string            `json:"name"`
			Key    []string          `json:"key"`
			Fields []json.RawMessage `json:"fields"`
		}
		if err := json.Unmarshal(raw, &shadow); err != nil {
			return nil, err
		}
		fields, err := unmarshalObjectDecls(shadow.Fields)
		if err != nil {
			return nil, err
		}
		return Table{Name: shadow.Name, Key: shadow.Key, Fields: fields}, nil
	case "kv":
		var shadow struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(raw, &shadow); err != nil {
			return nil, err
		}
		return KV{Name: shadow.Name}, nil
	default:
		return nil, fmt.Errorf("schema: unknown definition kind %q", kind)
	}
}

func unmarshalObjectDecls(raws []json.RawMessage) ([]ObjectDecl, error) {
	decls := make([]ObjectDecl, 0, len(raws))
	for _, raw := range raws {
		decl, err := unmarshalObjectDecl(raw)
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}
	return decls, nil
}

func unmarshalObjectDecl(raw json.RawMessage) (ObjectDecl, error) {
	kind, err := kindOf(raw)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "field":
		var shadow struct {
			Number   uint64          `json:"number"`
			Name     string          `json:"name"`
			Datatype json.RawMessage `json:"datatype"`
			Repeated bool            `json:"repeated"`
			Breakout bool            `json:"breakout"`
		}
		if err := json.Unmarshal(raw, &shadow); err != nil {
			return nil, err
		}
		dt, err := unmarshalDatatype(shadow.Datatype)
		if err != nil {
			return nil, err
		}
		return Field{
			Number:   shadow.Number,
			Name:     shadow.Name,
			Datatype: dt,
			Repeated: shadow.Repeated,
			Breakout: shadow.Breakout,
		}, nil
	case "reserved":
		var shadow struct {
			Number uint64 `json:"number"`
		}
		if err := json.Unmarshal(raw, &shadow); err != nil {
			return nil, err
		}
		return Reserved{Number: shadow.Number}, nil
	default:
		return nil, fmt.Errorf("schema: unknown declaration kind %q", kind)
	}
}

func unmarshalDatatype(raw json.RawMessage) (Datatype, error) {
	kind, err := kindOf(raw)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "scalar":
		var shadow struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(raw, &shadow); err != nil {
			return nil, err
		}
		return Scalar(shadow.Name), nil
	case "object":
		var shadow struct {
			Decls []json.RawMessage `json:"decls"`
		}
		if err := json.Unmarshal(raw, &shadow); err != nil {
			return nil, err
		}
		decls, err := unmarshalObjectDecls(shadow.Decls)
		if err != nil {
			return nil, err
		}
		return Object{Decls: decls}, nil
	case "timeseries":
		var shadow struct {
			Elem json.RawMessage `json:"elem"`
		}
		if err := json.Unmarshal(raw, &shadow); err != nil {
			return nil, err
		}
		elem, err := unmarshalDatatype(shadow.Elem)
		if err != nil {
			return nil, err
		}
		return TimeSeries{Elem: elem}, nil
	default:
		return nil, fmt.Errorf("schema: unknown datatype kind %q", kind)
	}
}
