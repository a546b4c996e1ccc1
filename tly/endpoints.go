package tly

import "sort"

// Endpoint describes one remote operation: its HTTP method, path template
// and the documentation group it belongs to.
type Endpoint struct {
	Method string
	Path   string
	Group  string
	Label  string
}

// endpoints is the fixed operation table. Methods and paths must match the
// remote API exactly, including the singular /stat on the OneLink delete
// endpoint, and `{id}` marks path-parameter interpolation.
var endpoints = map[string]Endpoint{
	"get_onelink_stats":    {Method: "GET", Path: "/api/v1/onelink/stats", Group: "OneLink Stats Management", Label: "Get OneLink Stats"},
	"delete_onelink_stats": {Method: "DELETE", Path: "/api/v1/onelink/stat", Group: "OneLink Stats Management", Label: "Delete OneLink Stats"},
	"create_short_link":    {Method: "POST", Path: "/api/v1/link/shorten", Group: "ShortLink Management", Label: "Create Short Link"},
	"get_short_link":       {Method: "GET", Path: "/api/v1/link", Group: "ShortLink Management", Label: "Get Short Link"},
	"update_short_link":    {Method: "PUT", Path: "/api/v1/link", Group: "ShortLink Management", Label: "Update Short Link"},
	"delete_short_link":    {Method: "DELETE", Path: "/api/v1/link", Group: "ShortLink Management", Label: "Delete Short Link"},
	"expand_short_link":    {Method: "POST", Path: "/api/v1/link/expand", Group: "ShortLink Management", Label: "Expand Short Link"},
	"list_short_links":     {Method: "GET", Path: "/api/v1/link/list", Group: "ShortLink Management", Label: "List Short Links"},
	"bulk_shorten_links":   {Method: "POST", Path: "/api/v1/link/bulk", Group: "ShortLink Management", Label: "Bulk Shorten Links"},
	"bulk_update_links":    {Method: "POST", Path: "/api/v1/link/bulk/update", Group: "ShortLink Management", Label: "Bulk Update Links"},
	"get_link_stats":       {Method: "GET", Path: "/api/v1/link/stats", Group: "ShortLink Stats", Label: "Stats"},
	"create_utm_preset":    {Method: "POST", Path: "/api/v1/link/utm-preset", Group: "UTM Preset Management", Label: "Create UTM Preset"},
	"list_utm_presets":     {Method: "GET", Path: "/api/v1/link/utm-preset", Group: "UTM Preset Management", Label: "List UTM Presets"},
	"get_utm_preset":       {Method: "GET", Path: "/api/v1/link/utm-preset/{id}", Group: "UTM Preset Management", Label: "Get UTM Preset"},
	"update_utm_preset":    {Method: "PUT", Path: "/api/v1/link/utm-preset/{id}", Group: "UTM Preset Management", Label: "Update UTM Preset"},
	"delete_utm_preset":    {Method: "DELETE", Path: "/api/v1/link/utm-preset/{id}", Group: "UTM Preset Management", Label: "Delete UTM Preset"},
	"list_onelinks":        {Method: "GET", Path: "/api/v1/onelink/list", Group: "OneLink Management", Label: "List OneLinks"},
	"create_pixel":         {Method: "POST", Path: "/api/v1/link/pixel", Group: "Pixel Management", Label: "Create Pixel"},
	"list_pixels":          {Method: "GET", Path: "/api/v1/link/pixel", Group: "Pixel Management", Label: "List Pixel"},
	"get_pixel":            {Method: "GET", Path: "/api/v1/link/pixel/{id}", Group: "Pixel Management", Label: "Get Pixel"},
	"update_pixel":         {Method: "PUT", Path: "/api/v1/link/pixel/{id}", Group: "Pixel Management", Label: "Update Pixel"},
	"delete_pixel":         {Method: "DELETE", Path: "/api/v1/link/pixel/{id}", Group: "Pixel Management", Label: "Delete Pixel"},
	"get_qr_code":          {Method: "GET", Path: "/api/v1/link/qr-code", Group: "QR Code Management", Label: "Get QR Code"},
	"update_qr_code":       {Method: "PUT", Path: "/api/v1/link/qr-code", Group: "QR Code Management", Label: "Update QR Code"},
	"list_tags":            {Method: "GET", Path: "/api/v1/link/tag", Group: "Tag Management", Label: "List Tag"},
	"create_tag":           {Method: "POST", Path: "/api/v1/link/tag", Group: "Tag Management", Label: "Create Tag"},
	"get_tag":              {Method: "GET", Path: "/api/v1/link/tag/{id}", Group: "Tag Management", Label: "Get Tag"},
	"update_tag":           {Method: "PUT", Path: "/api/v1/link/tag/{id}", Group: "Tag Management", Label: "Update Tag"},
	"delete_tag":           {Method: "DELETE", Path: "/api/v1/link/tag/{id}", Group: "Tag Management", Label: "Delete Tag"},
}

// Lookup returns the endpoint for an operation name.
func Lookup(name string) (Endpoint, bool) {
	ep, ok := endpoints[name]
	return ep, ok
}

// OperationNames returns the sorted allow-list of names accepted by Call.
func OperationNames() []string {
	names := make([]string, 0, len(endpoints))
	for name := range endpoints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Endpoints returns a copy of the endpoint table keyed by operation name.
func Endpoints() map[string]Endpoint {
	table := make(map[string]Endpoint, len(endpoints))
	for name, ep := range endpoints {
		table[name] = ep
	}
	return table
}
