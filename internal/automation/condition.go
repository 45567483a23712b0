// Package automation evaluates automation rules against incoming events.
package automation

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"masteria.app/panel/internal/model"
)

// Lookup resolves a dotted path such as "leads.status.0.status_id" in a
// decoded payload. Numeric segments index into lists.
func Lookup(payload map[string]any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}

	var cur any = payload
	for _, seg := range strings.Split(path, ".") {
		switch node := cur.(type) {
		case map[string]any:
			next, ok := node[seg]
			if !ok {
				return nil, false
			}
			cur = next
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(node) {
				return nil, false
			}
			cur = node[i]
		default:
			return nil, false
		}
	}
	return cur, true
}

// Matches reports whether every condition holds for payload. An empty
// condition list always matches.
func Matches(conditions []model.Condition, payload map[string]any) bool {
	for _, c := range conditions {
		if !matchOne(c, payload) {
			return false
		}
	}
	return true
}

func matchOne(c model.Condition, payload map[string]any) bool {
	actual, found := Lookup(payload, c.Field)

	switch c.Operator {
	case model.OperatorExists:
		want := true
		if b, ok := c.Value.(bool); ok {
			want = b
		}
		return found == want
	case model.OperatorEquals:
		return found && equal(actual, c.Value)
	case model.OperatorNotEquals:
		return !found || !equal(actual, c.Value)
	case model.OperatorContains:
		return found && contains(actual, c.Value)
	default:
		return false
	}
}

// equal compares loosely: form-encoded webhooks deliver every scalar as a
// string, so 142 and "142" are the same value.
func equal(actual, expected any) bool {
	if reflect.DeepEqual(actual, expected) {
		return true
	}
	a, aok := scalar(actual)
	e, eok := scalar(expected)
	return aok && eok && a == e
}

func contains(actual, expected any) bool {
	switch v := actual.(type) {
	case []any:
		for _, item := range v {
			if equal(item, expected) {
				return true
			}
		}
		return false
	case string:
		e, ok := scalar(expected)
		return ok && strings.Contains(strings.ToLower(v), strings.ToLower(e))
	default:
		return false
	}
}

func scalar(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), true
	case int, int32, int64, uint, uint32, uint64:
		return fmt.Sprint(t), true
	default:
		return "", false
	}
}
