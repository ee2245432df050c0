package jsonschema

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

// Loader fetches the raw bytes of a schema document named by a URL,
// keyed by scheme in a Validator's loader registry. Grounded on
// compiler.go's Compiler.Loaders map[string]func(url string)(io.ReadCloser,error).
type Loader func(ctx context.Context, url string) (io.ReadCloser, error)

// Validator is the engine: it owns the document cache, the scheme-handler
// registry, the format/content registries and the keyword Registry, and
// backs the four entry shapes of §4.7 (entrypoints.go). Grounded on compiler.go's
// Compiler, generalized from a single draft-2020-12 pipeline to this
// spec's resolver+dispatcher core.
type Validator struct {
	Registry       *Registry
	DefaultBaseURI string
	AssertFormat   bool
	// Localizer renders every Result's errors in a caller-chosen locale
	// once validation completes (§12); defaults to English.
	Localizer *Localizer

	cache      *documentCache
	loaders    map[string]Loader
	decoders   map[string]Decoder
	mediaTypes map[string]MediaTypeParser

	customFormats map[string]FormatFunc

	httpClient *http.Client
}

// NewValidator builds a Validator with the default keyword registry,
// default HTTP(S) loaders, and the default content/format registries —
// a complete, usable validator out of the box, matching compiler.go's
// NewCompiler/initDefaults.
func NewValidator() *Validator {
	v := &Validator{
		Registry:      NewRegistry(),
		Localizer:     defaultLocalizer,
		cache:         newDocumentCache(),
		loaders:       make(map[string]Loader),
		decoders:      make(map[string]Decoder, len(defaultDecoders)),
		mediaTypes:    make(map[string]MediaTypeParser, len(defaultMediaTypes)),
		customFormats: make(map[string]FormatFunc),
		httpClient:    &http.Client{Timeout: 10 * time.Second},
	}
	for k, d := range defaultDecoders {
		v.decoders[k] = d
	}
	for k, m := range defaultMediaTypes {
		v.mediaTypes[k] = m
	}
	v.loaders["http"] = v.httpLoader
	v.loaders["https"] = v.httpLoader
	return v
}

// WithDefaultBaseURI sets the base URI used to resolve relative document
// references when no enclosing id has established one.
func (v *Validator) WithDefaultBaseURI(uri string) *Validator {
	v.DefaultBaseURI = uri
	return v
}

// WithAssertFormat toggles whether format mismatches are reported as
// errors (true) or silently ignored (false, the default), matching
// compiler.go's SetAssertFormat.
func (v *Validator) WithAssertFormat(assert bool) *Validator {
	v.AssertFormat = assert
	return v
}

// WithLocale selects the locale every subsequent Validate/ValidateValue
// call renders its Result's errors in, matched against this package's
// supported locales the way NewLocalizer matches an Accept-Language list.
func (v *Validator) WithLocale(preferred ...string) *Validator {
	v.Localizer = NewLocalizer(preferred...)
	return v
}

// RegisterLoader installs a fetcher for the given URI scheme, grounded on
// compiler.go's RegisterLoader.
func (v *Validator) RegisterLoader(scheme string, loader Loader) *Validator {
	v.loaders[scheme] = loader
	return v
}

// RegisterFormat installs or overrides a named format predicate, grounded
// on compiler.go's custom-format registration.
func (v *Validator) RegisterFormat(name string, fn FormatFunc) *Validator {
	v.customFormats[name] = fn
	return v
}

// RegisterDecoder installs a contentEncoding decoder.
func (v *Validator) RegisterDecoder(name string, fn Decoder) *Validator {
	v.decoders[name] = fn
	return v
}

// RegisterMediaType installs a contentMediaType parser.
func (v *Validator) RegisterMediaType(name string, fn MediaTypeParser) *Validator {
	v.mediaTypes[name] = fn
	return v
}

// fetch opens and fully reads the document at uri through the loader
// registered for its scheme, always closing the stream on every exit
// path, per §5's resource-acquisition rule.
func (v *Validator) fetch(ctx context.Context, uri string) ([]byte, error) {
	scheme := getURLScheme(uri)
	loader, ok := v.loaders[scheme]
	if !ok {
		return nil, ErrSchemeNotSupported
	}
	rc, err := loader(ctx, uri)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// httpLoader is the default scheme handler for http/https, grounded on
// compiler.go's setupLoaders default HTTP fetcher: a context-bound
// request, a 10s client timeout, and a status-code check before handing
// the body back.
func (v *Validator) httpLoader(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, ErrFetchFailed
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, ErrInvalidStatus
	}
	return resp.Body, nil
}

// PreloadSchemas fetches and parses a batch of remote schemas
// concurrently, populating the document cache ahead of time so that
// later Validate calls hit no network latency. Concurrency is confined to
// this cache warm-up; a single Validate call never spawns goroutines
// (§5). Grounded on compiler.go's (sequential) CompileBatch, parallelized
// with golang.org/x/sync/errgroup.
func (v *Validator) PreloadSchemas(ctx context.Context, uris []string) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, uri := range uris {
		uri := uri
		g.Go(func() error {
			if _, ok := v.cache.get(uri); ok {
				return nil
			}
			doc, err := v.fetchDocument(gctx, uri)
			if err != nil {
				slog.Warn("jsonschema: preload failed", "uri", uri, "err", err)
				return err
			}
			v.cache.put(uri, doc)
			return nil
		})
	}
	return g.Wait()
}

// SetSchema registers a schema under uri in the document cache directly,
// without fetching, matching compiler.go's SetSchema for in-memory
// documents a caller has already parsed.
func (v *Validator) SetSchema(uri string, schema *Schema) {
	v.cache.put(uri, schema)
}

// Validate runs the full pipeline (§4.7 entry shape 1): parse schema and
// instance as raw JSON, validate, and return the Result.
func (v *Validator) Validate(ctx context.Context, schemaJSON, instanceJSON []byte) (*Result, error) {
	schema, err := ParseSchema(schemaJSON)
	if err != nil {
		return nil, err
	}
	instance, err := parseInstance(instanceJSON)
	if err != nil {
		return nil, err
	}
	return v.ValidateValue(ctx, schema, instance), nil
}

// ValidateValue runs the dispatcher directly against an already-parsed
// schema and a decoded instance value, building a fresh scope per §5's
// "visited reset at the top of each validation call" rule.
func (v *Validator) ValidateValue(ctx context.Context, schema *Schema, instance interface{}) *Result {
	scope := NewScope(schema)
	result := v.process(ctx, schema, instance, scope)
	return result.Localize(v.Localizer)
}
