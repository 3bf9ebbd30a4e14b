package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/gameadmin/internal/constants"
	"github.com/fivetwenty-io/gameadmin/pkg/admin"
)

// parseID parses a resource id argument.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: '%s'", constants.ErrInvalidID, arg)
	}

	return id, nil
}

// parseIDs parses every argument as a resource id.
func parseIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))

	for _, arg := range args {
		id, err := parseID(arg)
		if err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, nil
}

// splitKeyValue splits a "key=value" argument.
func splitKeyValue(pair string) (string, string, error) {
	parts := strings.SplitN(pair, "=", constants.KeyValueParts)
	if len(parts) != constants.KeyValueParts || strings.TrimSpace(parts[0]) == "" {
		return "", "", fmt.Errorf("%w, got '%s'", constants.ErrInvalidKeyValue, pair)
	}

	return strings.TrimSpace(parts[0]), parts[1], nil
}

// buildQuery turns --query key=value flags into list parameters. Values are
// passed through as typed, in flag order.
func buildQuery(pairs []string) (*admin.Query, error) {
	query := admin.NewQuery()

	for _, pair := range pairs {
		key, value, err := splitKeyValue(pair)
		if err != nil {
			return nil, err
		}

		query.Set(key, value)
	}

	return query, nil
}

// buildPayload reads the request body for create and update: the YAML or
// JSON document in file, then each --set key=value on top. Dotted keys
// address nested objects, e.g. product.price=9.99.
func buildPayload(file string, sets []string) (map[string]any, error) {
	payload := make(map[string]any)

	if file != "" {
		// #nosec G304 -- the path is supplied by the operator on purpose
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read payload file: %w", err)
		}

		err = yaml.Unmarshal(data, &payload)
		if err != nil {
			return nil, fmt.Errorf("failed to parse payload file: %w", err)
		}
	}

	for _, set := range sets {
		key, value, err := splitKeyValue(set)
		if err != nil {
			return nil, err
		}

		setNested(payload, strings.Split(key, "."), parseValue(value))
	}

	if len(payload) == 0 {
		return nil, constants.ErrPayloadRequired
	}

	return payload, nil
}

// parseValue converts a --set value to the JSON type it reads as.
func parseValue(value string) any {
	switch value {
	case "null":
		return nil
	case constants.BooleanTrue:
		return true
	case constants.BooleanFalse:
		return false
	}

	if number, err := strconv.ParseInt(value, 10, 64); err == nil {
		return number
	}

	if number, err := strconv.ParseFloat(value, 64); err == nil {
		return number
	}

	return value
}

func setNested(target map[string]any, path []string, value any) {
	if len(path) == 1 {
		target[path[0]] = value

		return
	}

	child, ok := target[path[0]].(map[string]any)
	if !ok {
		child = make(map[string]any)
		target[path[0]] = child
	}

	setNested(child, path[1:], value)
}
