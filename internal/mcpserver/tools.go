package mcpserver

import "github.com/aleister1102/pageprobe/internal/common"

// Tool names exposed over tools/list
const (
	toolCheckSiteHealth = "check_site_health"
	toolTakeScreenshot  = "take_screenshot"
	toolCheckElement    = "check_element"
)

// toolDefinitions returns the MCP tool schemas for the three operations
func toolDefinitions() []map[string]interface{} {
	return []map[string]interface{}{
		{
			"name":        toolCheckSiteHealth,
			"description": "Navigate to a URL in a headless browser and report HTTP status, page title, description, load time, and console errors.",
			"inputSchema": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"url": map[string]interface{}{
						"type":        "string",
						"description": "The http(s) URL to inspect",
					},
				},
				"required": []string{"url"},
			},
		},
		{
			"name":        toolTakeScreenshot,
			"description": "Capture a full-page PNG screenshot of a URL into the configured output directory.",
			"inputSchema": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"url": map[string]interface{}{
						"type":        "string",
						"description": "The http(s) URL to capture",
					},
					"filename": map[string]interface{}{
						"type":        "string",
						"description": "Optional output filename; unsafe characters are replaced and a timestamped name is used when omitted",
					},
				},
				"required": []string{"url"},
			},
		},
		{
			"name":        toolCheckElement,
			"description": "Navigate to a URL and check whether a CSS selector matches an element, whether it is visible, and return its text content.",
			"inputSchema": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"url": map[string]interface{}{
						"type":        "string",
						"description": "The http(s) URL to inspect",
					},
					"selector": map[string]interface{}{
						"type":        "string",
						"description": "The CSS selector to probe",
					},
				},
				"required": []string{"url", "selector"},
			},
		},
	}
}

// requiredStringArg extracts a mandatory string argument. A missing,
// empty, or wrongly typed value is an argument-shape violation.
func requiredStringArg(args map[string]interface{}, key string) (string, error) {
	raw, exists := args[key]
	if !exists {
		return "", common.WrapErrorf(common.ErrInvalidInput, "missing required argument '%s'", key)
	}
	value, ok := raw.(string)
	if !ok {
		return "", common.WrapErrorf(common.ErrInvalidInput, "argument '%s' must be a string", key)
	}
	if value == "" {
		return "", common.WrapErrorf(common.ErrInvalidInput, "argument '%s' must not be empty", key)
	}
	return value, nil
}

// optionalStringArg extracts an optional string argument. Absence yields
// an empty string; a present non-string value is still a shape violation.
func optionalStringArg(args map[string]interface{}, key string) (string, error) {
	raw, exists := args[key]
	if !exists || raw == nil {
		return "", nil
	}
	value, ok := raw.(string)
	if !ok {
		return "", common.WrapErrorf(common.ErrInvalidInput, "argument '%s' must be a string", key)
	}
	return value, nil
}
