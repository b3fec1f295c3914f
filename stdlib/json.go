package stdlib

import (
	"encoding/json"

	"github.com/jung-lang/jung/value"
)

func init() {
	register("jsonStringify", jsonStringifyFn)
	registerAlias("stringify", "jsonStringify")
	register("jsonParse", jsonParseFn)
	registerAlias("parse", "jsonParse")
}

func jsonStringifyFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.NullValue, argErr(1, len(args), "jsonStringify")
	}
	data, err := json.Marshal(toPlain(args[0]))
	if err != nil {
		return value.NullValue, err
	}
	return value.NewString(string(data)), nil
}

func jsonParseFn(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 || args[0].Kind != value.String {
		return value.NullValue, typeErr("jsonParse", "expects a JSON string")
	}
	var raw interface{}
	if err := json.Unmarshal([]byte(args[0].Str), &raw); err != nil {
		return value.NullValue, err
	}
	return fromPlain(raw), nil
}

// toPlain converts a Value into the plain Go types encoding/json
// knows how to marshal. Functions and builtins have no JSON
// representation and are rendered as null.
func toPlain(v value.Value) interface{} {
	switch v.Kind {
	case value.Null:
		return nil
	case value.Bool:
		return v.Bool
	case value.Number:
		return v.Number
	case value.String:
		return v.Str
	case value.Array:
		out := make([]interface{}, len(v.Arr))
		for i, e := range v.Arr {
			out[i] = toPlain(e)
		}
		return out
	case value.Object:
		out := map[string]interface{}{}
		for _, k := range v.Obj.Fields.Keys {
			if k == "__class__" {
				continue
			}
			fv, _ := v.Obj.Fields.Get(k)
			out[k] = toPlain(fv)
		}
		return out
	default:
		return nil
	}
}

// fromPlain converts encoding/json's decoded interface{} tree (bool,
// float64, string, []interface{}, map[string]interface{}, nil) into
// Values.
func fromPlain(raw interface{}) value.Value {
	switch x := raw.(type) {
	case nil:
		return value.NullValue
	case bool:
		return value.NewBool(x)
	case float64:
		return value.NewNumber(x)
	case string:
		return value.NewString(x)
	case []interface{}:
		out := make([]value.Value, len(x))
		for i, e := range x {
			out[i] = fromPlain(e)
		}
		return value.NewArray(out)
	case map[string]interface{}:
		m := value.NewMap()
		for k, e := range x {
			m.Set(k, fromPlain(e))
		}
		return value.NewObject(m)
	default:
		return value.NullValue
	}
}
