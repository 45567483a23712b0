package mapper

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// HeaderKommoEvent lets a sender name the event explicitly instead of having
// it derived from the body.
const HeaderKommoEvent = "X-Kommo-Event"

var kommoEntities = map[string]bool{
	"leads":     true,
	"contacts":  true,
	"companies": true,
	"customers": true,
	"tasks":     true,
	"unsorted":  true,
	"talk":      true,
	"message":   true,
}

type KommoEventMapper struct{}

func NewKommoEventMapper() *KommoEventMapper {
	return &KommoEventMapper{}
}

// Map returns "<entity>.<action>", e.g. "leads.status" for a body carrying
// leads[status][0][...]. When several entities are present the first in
// alphabetical order wins.
func (m *KommoEventMapper) Map(ctx context.Context, body map[string]any, headers map[string]string) (string, error) {
	if explicit := strings.TrimSpace(headers[HeaderKommoEvent]); explicit != "" {
		return explicit, nil
	}

	entities := make([]string, 0, len(body))
	for key := range body {
		if kommoEntities[key] {
			entities = append(entities, key)
		}
	}
	sort.Strings(entities)

	for _, entity := range entities {
		actions, ok := body[entity].(map[string]any)
		if !ok {
			continue
		}
		names := make([]string, 0, len(actions))
		for action := range actions {
			names = append(names, action)
		}
		sort.Strings(names)
		if len(names) > 0 {
			return entity + "." + names[0], nil
		}
	}

	return "", fmt.Errorf("%w: no kommo entity in body", ErrUnknownEvent)
}

// DecodeKommoBody decodes a Kommo webhook body. Kommo posts
// application/x-www-form-urlencoded with bracketed keys; JSON is accepted too.
func DecodeKommoBody(contentType string, body []byte) (map[string]any, error) {
	mediaType, _, _ := mime.ParseMediaType(contentType)
	if mediaType == "application/json" {
		out := map[string]any{}
		if err := json.Unmarshal(body, &out); err != nil {
			return nil, fmt.Errorf("decoding json body: %w", err)
		}
		return out, nil
	}

	values, err := url.ParseQuery(string(body))
	if err != nil {
		return nil, fmt.Errorf("decoding form body: %w", err)
	}
	return ExpandForm(values), nil
}

// ExpandForm turns bracketed form keys into nested values:
// leads[add][0][id]=7 becomes {"leads":{"add":[{"id":"7"}]}}.
func ExpandForm(values url.Values) map[string]any {
	root := map[string]any{}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		path := splitFormKey(key)
		if len(path) == 0 {
			continue
		}
		var value any
		if vals := values[key]; len(vals) == 1 {
			value = vals[0]
		} else {
			list := make([]any, len(vals))
			for i, v := range vals {
				list[i] = v
			}
			value = list
		}
		insert(root, path, value)
	}

	for k, child := range root {
		root[k] = listify(child)
	}
	return root
}

func splitFormKey(key string) []string {
	head, rest, found := strings.Cut(key, "[")
	path := []string{head}
	if !found {
		return path
	}
	for _, part := range strings.Split(rest, "[") {
		path = append(path, strings.TrimSuffix(part, "]"))
	}
	return path
}

func insert(node map[string]any, path []string, value any) {
	for _, seg := range path[:len(path)-1] {
		child, ok := node[seg].(map[string]any)
		if !ok {
			child = map[string]any{}
			node[seg] = child
		}
		node = child
	}
	node[path[len(path)-1]] = value
}

// listify converts maps keyed 0..n-1 into slices, recursively.
func listify(v any) any {
	m, ok := v.(map[string]any)
	if !ok {
		return v
	}
	for k, child := range m {
		m[k] = listify(child)
	}

	if len(m) == 0 {
		return m
	}
	list := make([]any, len(m))
	for k, child := range m {
		i, err := strconv.Atoi(k)
		if err != nil || i < 0 || i >= len(m) {
			return m
		}
		list[i] = child
	}
	return list
}
