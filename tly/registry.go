package tly

import (
	"context"
	"fmt"
	"math"
	"strconv"
)

// Handler executes one named operation from a decoded argument bag.
type Handler func(ctx context.Context, c *Client, args map[string]any) (Result, error)

// Call invokes a named operation with a JSON-object argument bag. The name
// must be one of OperationNames and the bag keys use the wire's snake_case
// spelling. Argument problems are reported before any request is built.
func (c *Client) Call(ctx context.Context, name string, args map[string]any) (Result, error) {
	handler, ok := handlers[name]
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownOperation, name)
	}
	if args == nil {
		args = map[string]any{}
	}
	return handler(ctx, c, args)
}

// handlers maps operation names to typed dispatchers. Every name here must
// have a matching entry in the endpoint table.
var handlers = map[string]Handler{
	"get_onelink_stats": func(ctx context.Context, c *Client, args map[string]any) (Result, error) {
		shortURL, err := stringArg(args, "short_url")
		if err != nil {
			return Result{}, err
		}
		opts, err := statsOptionsArgs(args)
		if err != nil {
			return Result{}, err
		}
		return c.OneLinkStats(ctx, shortURL, opts)
	},
	"delete_onelink_stats": func(ctx context.Context, c *Client, args map[string]any) (Result, error) {
		shortURL, err := stringArg(args, "short_url")
		if err != nil {
			return Result{}, err
		}
		return c.DeleteOneLinkStats(ctx, shortURL)
	},
	"create_short_link": func(ctx context.Context, c *Client, args map[string]any) (Result, error) {
		longURL, err := stringArg(args, "long_url")
		if err != nil {
			return Result{}, err
		}
		opts := &ShortenOptions{Meta: args["meta"]}
		if opts.Domain, err = optStringArg(args, "domain"); err != nil {
			return Result{}, err
		}
		if opts.ExpireAt, err = optTimestampArg(args, "expire_at_datetime"); err != nil {
			return Result{}, err
		}
		if opts.Description, err = optStringArg(args, "description"); err != nil {
			return Result{}, err
		}
		if opts.PublicStats, err = optBoolArg(args, "public_stats"); err != nil {
			return Result{}, err
		}
		return c.CreateShortLink(ctx, longURL, opts)
	},
	"get_short_link": func(ctx context.Context, c *Client, args map[string]any) (Result, error) {
		shortURL, err := stringArg(args, "short_url")
		if err != nil {
			return Result{}, err
		}
		return c.GetShortLink(ctx, shortURL)
	},
	"update_short_link": func(ctx context.Context, c *Client, args map[string]any) (Result, error) {
		shortURL, err := stringArg(args, "short_url")
		if err != nil {
			return Result{}, err
		}
		opts := &UpdateLinkOptions{Meta: args["meta"]}
		if opts.LongURL, err = optStringArg(args, "long_url"); err != nil {
			return Result{}, err
		}
		if opts.ExpireAt, err = optTimestampArg(args, "expire_at_datetime"); err != nil {
			return Result{}, err
		}
		if opts.Description, err = optStringArg(args, "description"); err != nil {
			return Result{}, err
		}
		if opts.PublicStats, err = optBoolArg(args, "public_stats"); err != nil {
			return Result{}, err
		}
		return c.UpdateShortLink(ctx, shortURL, opts)
	},
	"delete_short_link": func(ctx context.Context, c *Client, args map[string]any) (Result, error) {
		shortURL, err := stringArg(args, "short_url")
		if err != nil {
			return Result{}, err
		}
		return c.DeleteShortLink(ctx, shortURL)
	},
	"expand_short_link": func(ctx context.Context, c *Client, args map[string]any) (Result, error) {
		shortURL, err := stringArg(args, "short_url")
		if err != nil {
			return Result{}, err
		}
		password, err := optStringPtrArg(args, "password")
		if err != nil {
			return Result{}, err
		}
		return c.ExpandShortLink(ctx, shortURL, &ExpandOptions{Password: password})
	},
	"list_short_links": func(ctx context.Context, c *Client, args map[string]any) (Result, error) {
		opts := &ListLinksOptions{}
		var err error
		if opts.Search, err = optStringArg(args, "search"); err != nil {
			return Result{}, err
		}
		if opts.TagIDs, err = optIDListArg(args, "tag_ids"); err != nil {
			return Result{}, err
		}
		if opts.PixelIDs, err = optIDListArg(args, "pixel_ids"); err != nil {
			return Result{}, err
		}
		if opts.Domains, err = optIDListArg(args, "domains"); err != nil {
			return Result{}, err
		}
		if opts.StartDate, err = optTimestampArg(args, "start_date"); err != nil {
			return Result{}, err
		}
		if opts.EndDate, err = optTimestampArg(args, "end_date"); err != nil {
			return Result{}, err
		}
		return c.ListShortLinks(ctx, opts)
	},
	"bulk_shorten_links": func(ctx context.Context, c *Client, args map[string]any) (Result, error) {
		links, ok := args["links"]
		if !ok {
			return Result{}, fmt.Errorf("%w: links", ErrMissingArgument)
		}
		opts := &BulkShortenOptions{}
		var err error
		if opts.Domain, err = optStringArg(args, "domain"); err != nil {
			return Result{}, err
		}
		if opts.Tags, err = optIDListArg(args, "tags"); err != nil {
			return Result{}, err
		}
		if opts.Pixels, err = optIDListArg(args, "pixels"); err != nil {
			return Result{}, err
		}
		return c.BulkShortenLinks(ctx, links, opts)
	},
	"bulk_update_links": func(ctx context.Context, c *Client, args map[string]any) (Result, error) {
		links, ok := args["links"]
		if !ok {
			return Result{}, fmt.Errorf("%w: links", ErrMissingArgument)
		}
		opts := &BulkUpdateOptions{}
		var err error
		if opts.Tags, err = optIDListArg(args, "tags"); err != nil {
			return Result{}, err
		}
		if opts.Pixels, err = optIDListArg(args, "pixels"); err != nil {
			return Result{}, err
		}
		return c.BulkUpdateLinks(ctx, links, opts)
	},
	"get_link_stats": func(ctx context.Context, c *Client, args map[string]any) (Result, error) {
		shortURL, err := stringArg(args, "short_url")
		if err != nil {
			return Result{}, err
		}
		opts, err := statsOptionsArgs(args)
		if err != nil {
			return Result{}, err
		}
		return c.LinkStats(ctx, shortURL, opts)
	},
	"create_utm_preset": func(ctx context.Context, c *Client, args map[string]any) (Result, error) {
		preset, err := utmPresetArgs(args)
		if err != nil {
			return Result{}, err
		}
		return c.CreateUTMPreset(ctx, preset)
	},
	"list_utm_presets": func(ctx context.Context, c *Client, args map[string]any) (Result, error) {
		return c.ListUTMPresets(ctx)
	},
	"get_utm_preset": func(ctx context.Context, c *Client, args map[string]any) (Result, error) {
		id, err := idArg(args, "preset_id")
		if err != nil {
			return Result{}, err
		}
		return c.GetUTMPreset(ctx, id)
	},
	"update_utm_preset": func(ctx context.Context, c *Client, args map[string]any) (Result, error) {
		id, err := idArg(args, "preset_id")
		if err != nil {
			return Result{}, err
		}
		preset, err := utmPresetArgs(args)
		if err != nil {
			return Result{}, err
		}
		return c.UpdateUTMPreset(ctx, id, preset)
	},
	"delete_utm_preset": func(ctx context.Context, c *Client, args map[string]any) (Result, error) {
		id, err := idArg(args, "preset_id")
		if err != nil {
			return Result{}, err
		}
		return c.DeleteUTMPreset(ctx, id)
	},
	"list_onelinks": func(ctx context.Context, c *Client, args map[string]any) (Result, error) {
		// Page defaults to 1, matching the API documentation examples.
		page := 1
		if _, ok := args["page"]; ok {
			var err error
			if page, err = intArg(args, "page"); err != nil {
				return Result{}, err
			}
		}
		return c.ListOneLinks(ctx, page)
	},
	"create_pixel": func(ctx context.Context, c *Client, args map[string]any) (Result, error) {
		pixel, err := pixelArgs(args)
		if err != nil {
			return Result{}, err
		}
		return c.CreatePixel(ctx, pixel)
	},
	"list_pixels": func(ctx context.Context, c *Client, args map[string]any) (Result, error) {
		return c.ListPixels(ctx)
	},
	"get_pixel": func(ctx context.Context, c *Client, args map[string]any) (Result, error) {
		id, err := idArg(args, "pixel_id")
		if err != nil {
			return Result{}, err
		}
		return c.GetPixel(ctx, id)
	},
	"update_pixel": func(ctx context.Context, c *Client, args map[string]any) (Result, error) {
		id, err := idArg(args, "pixel_record_id")
		if err != nil {
			return Result{}, err
		}
		pixel, err := pixelArgs(args)
		if err != nil {
			return Result{}, err
		}
		return c.updatePixel(ctx, id, args["pixel_record_id"], pixel)
	},
	"delete_pixel": func(ctx context.Context, c *Client, args map[string]any) (Result, error) {
		id, err := idArg(args, "pixel_id")
		if err != nil {
			return Result{}, err
		}
		return c.DeletePixel(ctx, id)
	},
	"get_qr_code": func(ctx context.Context, c *Client, args map[string]any) (Result, error) {
		shortURL, err := stringArg(args, "short_url")
		if err != nil {
			return Result{}, err
		}
		output, err := optStringArg(args, "output")
		if err != nil {
			return Result{}, err
		}
		format, err := optStringArg(args, "fmt")
		if err != nil {
			return Result{}, err
		}
		return c.QRCode(ctx, shortURL, output, format)
	},
	"update_qr_code": func(ctx context.Context, c *Client, args map[string]any) (Result, error) {
		shortURL, err := stringArg(args, "short_url")
		if err != nil {
			return Result{}, err
		}
		opts := &QRCodeOptions{}
		if opts.Image, err = optStringArg(args, "image"); err != nil {
			return Result{}, err
		}
		if opts.BackgroundColor, err = optStringArg(args, "background_color"); err != nil {
			return Result{}, err
		}
		if opts.CornerDotsColor, err = optStringArg(args, "corner_dots_color"); err != nil {
			return Result{}, err
		}
		if opts.DotsColor, err = optStringArg(args, "dots_color"); err != nil {
			return Result{}, err
		}
		if opts.DotsStyle, err = optStringArg(args, "dots_style"); err != nil {
			return Result{}, err
		}
		if opts.CornerStyle, err = optStringArg(args, "corner_style"); err != nil {
			return Result{}, err
		}
		return c.UpdateQRCode(ctx, shortURL, opts)
	},
	"list_tags": func(ctx context.Context, c *Client, args map[string]any) (Result, error) {
		return c.ListTags(ctx)
	},
	"create_tag": func(ctx context.Context, c *Client, args map[string]any) (Result, error) {
		tag, err := stringArg(args, "tag")
		if err != nil {
			return Result{}, err
		}
		return c.CreateTag(ctx, tag)
	},
	"get_tag": func(ctx context.Context, c *Client, args map[string]any) (Result, error) {
		id, err := idArg(args, "tag_id")
		if err != nil {
			return Result{}, err
		}
		return c.GetTag(ctx, id)
	},
	"update_tag": func(ctx context.Context, c *Client, args map[string]any) (Result, error) {
		id, err := idArg(args, "tag_id")
		if err != nil {
			return Result{}, err
		}
		tag, err := stringArg(args, "tag")
		if err != nil {
			return Result{}, err
		}
		return c.UpdateTag(ctx, id, tag)
	},
	"delete_tag": func(ctx context.Context, c *Client, args map[string]any) (Result, error) {
		id, err := idArg(args, "tag_id")
		if err != nil {
			return Result{}, err
		}
		return c.DeleteTag(ctx, id)
	},
}

func statsOptionsArgs(args map[string]any) (*StatsOptions, error) {
	opts := &StatsOptions{}
	var err error
	if opts.StartDate, err = optTimestampArg(args, "start_date"); err != nil {
		return nil, err
	}
	if opts.EndDate, err = optTimestampArg(args, "end_date"); err != nil {
		return nil, err
	}
	return opts, nil
}

func utmPresetArgs(args map[string]any) (UTMPreset, error) {
	var preset UTMPreset
	var err error
	if preset.Name, err = stringArg(args, "name"); err != nil {
		return preset, err
	}
	if preset.Source, err = stringArg(args, "source"); err != nil {
		return preset, err
	}
	if preset.Medium, err = stringArg(args, "medium"); err != nil {
		return preset, err
	}
	if preset.Campaign, err = stringArg(args, "campaign"); err != nil {
		return preset, err
	}
	if preset.Content, err = optStringArg(args, "content"); err != nil {
		return preset, err
	}
	if preset.Term, err = optStringArg(args, "term"); err != nil {
		return preset, err
	}
	return preset, nil
}

func pixelArgs(args map[string]any) (Pixel, error) {
	var pixel Pixel
	var err error
	if pixel.Name, err = stringArg(args, "name"); err != nil {
		return pixel, err
	}
	if pixel.PixelID, err = stringArg(args, "pixel_id"); err != nil {
		return pixel, err
	}
	if pixel.PixelType, err = stringArg(args, "pixel_type"); err != nil {
		return pixel, err
	}
	return pixel, nil
}

func stringArg(args map[string]any, key string) (string, error) {
	value, ok := args[key]
	if !ok || value == nil {
		return "", fmt.Errorf("%w: %s", ErrMissingArgument, key)
	}
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string", ErrInvalidArgument, key)
	}
	return s, nil
}

func optStringArg(args map[string]any, key string) (string, error) {
	value, ok := args[key]
	if !ok || value == nil {
		return "", nil
	}
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string", ErrInvalidArgument, key)
	}
	return s, nil
}

// optStringPtrArg distinguishes an absent key from an empty string. Used
// where the empty string is itself a legal value.
func optStringPtrArg(args map[string]any, key string) (*string, error) {
	value, ok := args[key]
	if !ok || value == nil {
		return nil, nil
	}
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be a string", ErrInvalidArgument, key)
	}
	return &s, nil
}

func optTimestampArg(args map[string]any, key string) (Timestamp, error) {
	s, err := optStringArg(args, key)
	if err != nil {
		return Timestamp{}, err
	}
	return TimestampString(s), nil
}

func optBoolArg(args map[string]any, key string) (*bool, error) {
	value, ok := args[key]
	if !ok || value == nil {
		return nil, nil
	}
	b, ok := value.(bool)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be a boolean", ErrInvalidArgument, key)
	}
	return &b, nil
}

func idArg(args map[string]any, key string) (int64, error) {
	value, ok := args[key]
	if !ok || value == nil {
		return 0, fmt.Errorf("%w: %s", ErrMissingArgument, key)
	}
	return toID(value, key)
}

func intArg(args map[string]any, key string) (int, error) {
	id, err := idArg(args, key)
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

func optIDListArg(args map[string]any, key string) ([]int64, error) {
	value, ok := args[key]
	if !ok || value == nil {
		return nil, nil
	}
	list, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be an array of ids", ErrInvalidArgument, key)
	}
	ids := make([]int64, 0, len(list))
	for _, item := range list {
		id, err := toID(item, key)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// toID accepts the two spellings JSON callers use for ids: numbers (which
// decode as float64) and numeric strings.
func toID(value any, key string) (int64, error) {
	switch v := value.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidArgument, key)
		}
		return int64(v), nil
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidArgument, key)
		}
		return id, nil
	}
	return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidArgument, key)
}
